package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/vunguyen10111995/horse-racing-game/game"
	mw "github.com/vunguyen10111995/horse-racing-game/middleware"
	"github.com/vunguyen10111995/horse-racing-game/racing"
)

// Handler holds shared dependencies used by all route handlers.
type Handler struct {
	engine *game.Engine
	// runCtx outlives requests; the race runner and event streams hang off it.
	runCtx       context.Context
	logger       *zap.Logger
	JWTKey       []byte
	passwordHash string
}

// New creates a Handler. An empty jwtKey leaves the command routes open.
func New(runCtx context.Context, engine *game.Engine, jwtKey []byte, passwordHash string, logger *zap.Logger) *Handler {
	return &Handler{
		engine:       engine,
		runCtx:       runCtx,
		logger:       logger,
		JWTKey:       jwtKey,
		passwordHash: passwordHash,
	}
}

// Register mounts every route on e.
func (h *Handler) Register(e *echo.Echo) {
	e.GET("/healthz", h.Health)

	// Public
	e.POST("/api/signin", h.Signin)
	e.GET("/api/events", h.Events)

	api := e.Group("/api")
	api.GET("/state", h.State)
	api.GET("/status", h.Status)
	api.GET("/horses", h.Horses)
	api.GET("/horses/:id", h.Horse)
	api.GET("/schedule", h.Schedule)
	api.GET("/race/current", h.CurrentRace)
	api.GET("/results", h.Results)

	// Commands: require a valid JWT when a signing key is configured
	var guards []echo.MiddlewareFunc
	if len(h.JWTKey) > 0 {
		guards = append(guards, mw.JWT(h.JWTKey))
	}
	cmd := e.Group("/api", guards...)
	cmd.POST("/horses", h.GenerateHorses)
	cmd.PUT("/horses/:id/condition", h.UpdateCondition)
	cmd.POST("/schedule", h.GenerateSchedule)
	cmd.POST("/race/start", h.StartRacing)
	cmd.POST("/race/pause", h.PauseRacing)
	cmd.POST("/race/resume", h.ResumeRacing)
	cmd.POST("/reset", h.Reset)
}

// Health reports liveness.
func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// httpError maps engine errors onto HTTP status codes.
func httpError(err error) error {
	switch {
	case errors.Is(err, game.ErrInvalidCondition),
		errors.Is(err, racing.ErrInvalidHorseCount):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, game.ErrHorseNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, game.ErrNoHorses),
		errors.Is(err, game.ErrRaceInProgress),
		errors.Is(err, game.ErrCannotGenerate),
		errors.Is(err, game.ErrCannotStart),
		errors.Is(err, game.ErrNotRacing),
		errors.Is(err, game.ErrAlreadyPaused),
		errors.Is(err, game.ErrNotPaused),
		errors.Is(err, racing.ErrNotEnoughHorses):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	}
	return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
}
