package game

import (
	"github.com/google/uuid"

	"github.com/vunguyen10111995/horse-racing-game/models"
	"github.com/vunguyen10111995/horse-racing-game/racing"
)

// State is the whole game session. Values are treated as immutable: Reduce
// returns a new State and never writes through the slices of its input.
type State struct {
	Status       models.GameStatus    `json:"status"`
	Racing       bool                 `json:"isRacing"`
	Paused       bool                 `json:"isPaused"`
	Horses       []models.Horse       `json:"horses"`
	ScheduleID   uuid.UUID            `json:"scheduleId"`
	Schedule     []models.Race        `json:"schedule"`
	CurrentIndex int                  `json:"currentRaceIndex"`
	Results      []models.RoundResult `json:"allResults"`
	// Generation changes whenever the schedule is replaced or discarded.
	Generation uint64 `json:"generation"`
}

// NewState returns an idle session with no horses.
func NewState() State {
	return State{
		Status:       models.StatusIdle,
		Horses:       []models.Horse{},
		Schedule:     []models.Race{},
		CurrentIndex: -1,
		Results:      []models.RoundResult{},
	}
}

// Clone deep-copies s so readers never share memory with the engine.
func (s State) Clone() State {
	out := s
	out.Horses = append([]models.Horse{}, s.Horses...)
	out.Schedule = make([]models.Race, len(s.Schedule))
	for i, r := range s.Schedule {
		out.Schedule[i] = r.Clone()
	}
	out.Results = make([]models.RoundResult, len(s.Results))
	for i, rr := range s.Results {
		rr.Results = append([]models.Result{}, rr.Results...)
		out.Results[i] = rr
	}
	return out
}

func HasHorses(s State) bool   { return len(s.Horses) > 0 }
func HasSchedule(s State) bool { return len(s.Schedule) > 0 }

// CanGenerate reports whether a new schedule may replace the current one.
func CanGenerate(s State) bool {
	return checkGenerate(s) == nil
}

func checkGenerate(s State) error {
	if !HasHorses(s) {
		return ErrNoHorses
	}
	if s.Racing {
		return ErrRaceInProgress
	}
	switch s.Status {
	case models.StatusIdle, models.StatusReady, models.StatusCompleted:
		return nil
	}
	return ErrCannotGenerate
}

// CanStart needs both a ready game and a schedule with something left to run.
func CanStart(s State) bool {
	return s.Status == models.StatusReady && !s.Racing && HasPendingRace(s)
}

func CanPause(s State) bool  { return s.Racing && !s.Paused }
func CanResume(s State) bool { return s.Racing && s.Paused }

func HasPendingRace(s State) bool {
	for _, r := range s.Schedule {
		if r.Status == models.RacePending {
			return true
		}
	}
	return false
}

// CurrentRace is the race most recently started, if any.
func CurrentRace(s State) (models.Race, bool) {
	if s.CurrentIndex < 0 || s.CurrentIndex >= len(s.Schedule) {
		return models.Race{}, false
	}
	return s.Schedule[s.CurrentIndex], true
}

func CompletedCount(s State) int {
	n := 0
	for _, r := range s.Schedule {
		if r.IsCompleted() {
			n++
		}
	}
	return n
}

func AllRacesCompleted(s State) bool {
	return HasSchedule(s) && CompletedCount(s) == len(s.Schedule)
}

func HorseByID(s State, id int) (models.Horse, bool) {
	return poolLookup(s.Horses)(id)
}

func poolLookup(horses []models.Horse) racing.Lookup {
	return func(id int) (models.Horse, bool) {
		for _, h := range horses {
			if h.ID == id {
				return h, true
			}
		}
		return models.Horse{}, false
	}
}
