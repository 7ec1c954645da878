package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"

	mw "github.com/vunguyen10111995/horse-racing-game/middleware"
)

const playerName = "player"

type credentials struct {
	Password string `json:"password"`
}

// HashPassword validates password input and returns a bcrypt hash suitable
// for PLAYER_PASSWORD_HASH.
func HashPassword(password string) (string, error) {
	if strings.TrimSpace(password) == "" {
		return "", errors.New("password is required")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	return string(hashedPassword), nil
}

// Signin validates the player password and returns a JWT token valid for 30 days.
func (h *Handler) Signin(c echo.Context) error {
	if len(h.JWTKey) == 0 {
		return echo.NewHTTPError(http.StatusNotFound, "authentication is disabled")
	}

	var creds credentials
	if err := c.Bind(&creds); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := bcrypt.CompareHashAndPassword([]byte(h.passwordHash), []byte(creds.Password)); err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	tokenString, err := mw.NewToken(playerName, h.JWTKey, time.Now())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, map[string]string{"token": tokenString})
}
