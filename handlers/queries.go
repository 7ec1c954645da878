package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/vunguyen10111995/horse-racing-game/game"
	"github.com/vunguyen10111995/horse-racing-game/models"
)

type statusData struct {
	Status         models.GameStatus `json:"status"`
	IsRacing       bool              `json:"isRacing"`
	IsPaused       bool              `json:"isPaused"`
	CanGenerate    bool              `json:"canGenerate"`
	CanStart       bool              `json:"canStart"`
	CanPause       bool              `json:"canPause"`
	CanResume      bool              `json:"canResume"`
	CompletedRaces int               `json:"completedRaces"`
	TotalRaces     int               `json:"totalRaces"`
	AllCompleted   bool              `json:"allCompleted"`
}

func statusOf(s game.State) statusData {
	return statusData{
		Status:         s.Status,
		IsRacing:       s.Racing,
		IsPaused:       s.Paused,
		CanGenerate:    game.CanGenerate(s),
		CanStart:       game.CanStart(s),
		CanPause:       game.CanPause(s),
		CanResume:      game.CanResume(s),
		CompletedRaces: game.CompletedCount(s),
		TotalRaces:     len(s.Schedule),
		AllCompleted:   game.AllRacesCompleted(s),
	}
}

// State returns the whole session snapshot.
func (h *Handler) State(c echo.Context) error {
	return c.JSON(http.StatusOK, h.engine.Snapshot())
}

// Status returns the game status and which commands are currently allowed.
func (h *Handler) Status(c echo.Context) error {
	return c.JSON(http.StatusOK, statusOf(h.engine.Snapshot()))
}

func (h *Handler) Horses(c echo.Context) error {
	return c.JSON(http.StatusOK, h.engine.Horses())
}

func (h *Handler) Horse(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "id must be an integer")
	}

	horse, ok := game.HorseByID(h.engine.Snapshot(), id)
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "horse not found")
	}
	return c.JSON(http.StatusOK, horse)
}

func (h *Handler) Schedule(c echo.Context) error {
	return c.JSON(http.StatusOK, h.engine.Schedule())
}

// CurrentRace returns the race most recently started, or 204 before the first one.
func (h *Handler) CurrentRace(c echo.Context) error {
	race, ok := h.engine.CurrentRace()
	if !ok {
		return c.NoContent(http.StatusNoContent)
	}
	return c.JSON(http.StatusOK, race)
}

func (h *Handler) Results(c echo.Context) error {
	return c.JSON(http.StatusOK, h.engine.Results())
}
