package game

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/vunguyen10111995/horse-racing-game/models"
)

// Command is an input to Reduce.
type Command interface{ command() }

type (
	// SetHorses replaces the pool and discards any schedule built on the old one.
	SetHorses struct{ Horses []models.Horse }

	UpdateCondition struct {
		HorseID   int
		Condition int
	}

	SetSchedule struct {
		ID    uuid.UUID
		Races []models.Race
	}

	StartRacing struct{}

	// StartRace, CompleteRace and FinishRacing are issued by the runner and
	// carry the generation it was started with.
	StartRace struct {
		Generation uint64
		Index      int
		Duration   time.Duration
	}

	CompleteRace struct {
		Generation uint64
		Index      int
		Results    []models.Result
	}

	FinishRacing struct{ Generation uint64 }

	Pause  struct{}
	Resume struct{}
	Reset  struct{}
)

func (SetHorses) command()       {}
func (UpdateCondition) command() {}
func (SetSchedule) command()     {}
func (StartRacing) command()     {}
func (StartRace) command()       {}
func (CompleteRace) command()    {}
func (FinishRacing) command()    {}
func (Pause) command()           {}
func (Resume) command()          {}
func (Reset) command()           {}

// Reduce applies cmd to s at time now. On error the returned state is s.
func Reduce(s State, cmd Command, now time.Time) (State, []Event, error) {
	switch c := cmd.(type) {
	case SetHorses:
		return setHorses(s, c, now)
	case UpdateCondition:
		return updateCondition(s, c, now)
	case SetSchedule:
		return setSchedule(s, c, now)
	case StartRacing:
		return startRacing(s, now)
	case StartRace:
		return startRace(s, c, now)
	case CompleteRace:
		return completeRace(s, c, now)
	case FinishRacing:
		return finishRacing(s, c, now)
	case Pause:
		return pause(s, now)
	case Resume:
		return resume(s, now)
	case Reset:
		return reset(s, now)
	}
	return s, nil, fmt.Errorf("unknown command %T", cmd)
}

func setHorses(s State, c SetHorses, now time.Time) (State, []Event, error) {
	if s.Racing {
		return s, nil, ErrRaceInProgress
	}
	if len(c.Horses) == 0 {
		return s, nil, ErrNoHorses
	}

	next := discardSchedule(s)
	next.Horses = append([]models.Horse{}, c.Horses...)
	ev := newEvent(EventHorsesGenerated, next, now)
	ev.Count = len(next.Horses)
	return next, []Event{ev}, nil
}

func updateCondition(s State, c UpdateCondition, now time.Time) (State, []Event, error) {
	if !models.ValidCondition(c.Condition) {
		return s, nil, fmt.Errorf("%w: got %d", ErrInvalidCondition, c.Condition)
	}

	next := s
	next.Horses = append([]models.Horse{}, s.Horses...)
	for i := range next.Horses {
		if next.Horses[i].ID != c.HorseID {
			continue
		}
		next.Horses[i].Condition = c.Condition
		h := next.Horses[i]
		ev := newEvent(EventHorseUpdated, next, now)
		ev.Horse = &h
		return next, []Event{ev}, nil
	}
	return s, nil, fmt.Errorf("%w: %d", ErrHorseNotFound, c.HorseID)
}

func setSchedule(s State, c SetSchedule, now time.Time) (State, []Event, error) {
	if err := checkGenerate(s); err != nil {
		return s, nil, err
	}
	if len(c.Races) == 0 {
		return s, nil, ErrEmptySchedule
	}

	next := discardSchedule(s)
	next.ScheduleID = c.ID
	next.Schedule = make([]models.Race, len(c.Races))
	for i, r := range c.Races {
		next.Schedule[i] = r.Clone()
	}
	next.Status = models.StatusReady
	ev := newEvent(EventScheduleGenerated, next, now)
	ev.Count = len(next.Schedule)
	return next, []Event{ev}, nil
}

func startRacing(s State, now time.Time) (State, []Event, error) {
	if !CanStart(s) {
		return s, nil, ErrCannotStart
	}

	next := s
	next.Racing = true
	next.Paused = false
	next.Status = models.StatusRacing
	return next, []Event{newEvent(EventRacingStarted, next, now)}, nil
}

func startRace(s State, c StartRace, now time.Time) (State, []Event, error) {
	if err := checkRunner(s, c.Generation); err != nil {
		return s, nil, err
	}
	if c.Index != s.CurrentIndex+1 || c.Index >= len(s.Schedule) {
		return s, nil, fmt.Errorf("%w: start %d after %d", ErrRaceOutOfOrder, c.Index, s.CurrentIndex)
	}
	if s.Schedule[c.Index].Status != models.RacePending {
		return s, nil, fmt.Errorf("%w: round %d is %s", ErrRaceOutOfOrder, c.Index+1, s.Schedule[c.Index].Status)
	}
	if s.CurrentIndex >= 0 && !s.Schedule[s.CurrentIndex].IsCompleted() {
		return s, nil, fmt.Errorf("%w: round %d has not finished", ErrRaceOutOfOrder, s.CurrentIndex+1)
	}

	next := withSchedule(s)
	race := &next.Schedule[c.Index]
	race.Status = models.RaceRunning
	race.StartTime = &now
	race.Duration = c.Duration
	race.DurationMS = c.Duration.Milliseconds()
	next.CurrentIndex = c.Index

	ev := newEvent(EventRaceStarted, next, now)
	ev.Round = race.Round
	r := race.Clone()
	ev.Race = &r
	return next, []Event{ev}, nil
}

func completeRace(s State, c CompleteRace, now time.Time) (State, []Event, error) {
	if err := checkRunner(s, c.Generation); err != nil {
		return s, nil, err
	}
	if c.Index != s.CurrentIndex || c.Index < 0 || !s.Schedule[c.Index].IsRunning() {
		return s, nil, fmt.Errorf("%w: complete %d while current is %d", ErrRaceOutOfOrder, c.Index, s.CurrentIndex)
	}

	next := withSchedule(s)
	race := &next.Schedule[c.Index]
	race.Status = models.RaceCompleted
	race.EndTime = &now
	race.Results = append([]models.Result{}, c.Results...)

	next.Results = append(append([]models.RoundResult{}, s.Results...), models.RoundResult{
		Round:    race.Round,
		Distance: race.Distance,
		Results:  append([]models.Result{}, c.Results...),
	})

	ev := newEvent(EventRaceCompleted, next, now)
	ev.Round = race.Round
	r := race.Clone()
	ev.Race = &r
	return next, []Event{ev}, nil
}

func finishRacing(s State, c FinishRacing, now time.Time) (State, []Event, error) {
	if err := checkRunner(s, c.Generation); err != nil {
		return s, nil, err
	}
	if !AllRacesCompleted(s) {
		return s, nil, ErrRacesPending
	}

	next := s
	next.Racing = false
	next.Paused = false
	next.Status = models.StatusCompleted
	ev := newEvent(EventAllCompleted, next, now)
	ev.Count = len(next.Results)
	return next, []Event{ev}, nil
}

func pause(s State, now time.Time) (State, []Event, error) {
	if !s.Racing {
		return s, nil, ErrNotRacing
	}
	if s.Paused {
		return s, nil, ErrAlreadyPaused
	}

	next := s
	next.Paused = true
	next.Status = models.StatusPaused
	return next, []Event{newEvent(EventRacingPaused, next, now)}, nil
}

func resume(s State, now time.Time) (State, []Event, error) {
	if !s.Racing {
		return s, nil, ErrNotRacing
	}
	if !s.Paused {
		return s, nil, ErrNotPaused
	}

	next := s
	next.Paused = false
	next.Status = models.StatusRacing
	return next, []Event{newEvent(EventRacingResumed, next, now)}, nil
}

func reset(s State, now time.Time) (State, []Event, error) {
	next := discardSchedule(s)
	return next, []Event{newEvent(EventGameReset, next, now)}, nil
}

// discardSchedule drops the schedule and results, keeps the horses and bumps
// the generation so in-flight runner transitions are rejected.
func discardSchedule(s State) State {
	next := s
	next.Status = models.StatusIdle
	next.Racing = false
	next.Paused = false
	next.ScheduleID = uuid.Nil
	next.Schedule = []models.Race{}
	next.CurrentIndex = -1
	next.Results = []models.RoundResult{}
	next.Generation++
	return next
}

func checkRunner(s State, gen uint64) error {
	if gen != s.Generation {
		return ErrStaleGeneration
	}
	if !s.Racing {
		return ErrNotRacing
	}
	return nil
}

// withSchedule copies the schedule slice so single races can be edited in place.
func withSchedule(s State) State {
	next := s
	next.Schedule = append([]models.Race{}, s.Schedule...)
	return next
}
