package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

type conditionRequest struct {
	Condition int `json:"condition"`
}

// GenerateHorses replaces the horse pool.
func (h *Handler) GenerateHorses(c echo.Context) error {
	if err := h.engine.GenerateHorses(); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, h.engine.Horses())
}

// UpdateCondition sets one horse's condition.
func (h *Handler) UpdateCondition(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "id must be an integer")
	}

	var req conditionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	horse, err := h.engine.UpdateHorseCondition(id, req.Condition)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, horse)
}

// GenerateSchedule draws a fresh six-race schedule.
func (h *Handler) GenerateSchedule(c echo.Context) error {
	id, err := h.engine.GenerateSchedule()
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, map[string]any{
		"scheduleId": id,
		"schedule":   h.engine.Schedule(),
	})
}

// StartRacing launches the runner; races then advance in the background.
func (h *Handler) StartRacing(c echo.Context) error {
	if err := h.engine.Start(h.runCtx); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusAccepted, statusOf(h.engine.Snapshot()))
}

func (h *Handler) PauseRacing(c echo.Context) error {
	if err := h.engine.Pause(); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, statusOf(h.engine.Snapshot()))
}

func (h *Handler) ResumeRacing(c echo.Context) error {
	if err := h.engine.Resume(); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, statusOf(h.engine.Snapshot()))
}

// Reset discards the schedule and results. It is always allowed.
func (h *Handler) Reset(c echo.Context) error {
	h.engine.Reset()
	return c.JSON(http.StatusOK, statusOf(h.engine.Snapshot()))
}
