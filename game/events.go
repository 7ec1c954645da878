package game

import (
	"time"

	"github.com/google/uuid"

	"github.com/vunguyen10111995/horse-racing-game/models"
)

type EventKind string

const (
	EventHorsesGenerated   EventKind = "horses_generated"
	EventHorseUpdated      EventKind = "horse_updated"
	EventScheduleGenerated EventKind = "schedule_generated"
	EventRacingStarted     EventKind = "racing_started"
	EventRaceStarted       EventKind = "race_started"
	EventRaceCompleted     EventKind = "race_completed"
	EventRacingPaused      EventKind = "racing_paused"
	EventRacingResumed     EventKind = "racing_resumed"
	EventAllCompleted      EventKind = "all_races_completed"
	EventGameReset         EventKind = "game_reset"
)

// Event describes one state transition for observers.
type Event struct {
	Kind       EventKind         `json:"kind"`
	ScheduleID uuid.UUID         `json:"scheduleId"`
	Status     models.GameStatus `json:"status"`
	Round      int               `json:"round,omitempty"`
	Count      int               `json:"count,omitempty"`
	Race       *models.Race      `json:"race,omitempty"`
	Horse      *models.Horse     `json:"horse,omitempty"`
	At         time.Time         `json:"at"`
}

func newEvent(kind EventKind, s State, at time.Time) Event {
	return Event{Kind: kind, ScheduleID: s.ScheduleID, Status: s.Status, At: at}
}
