package game

import "errors"

// Precondition errors. Every one of them leaves the state untouched.
var (
	ErrNoHorses         = errors.New("no horses generated")
	ErrRaceInProgress   = errors.New("races are in progress")
	ErrCannotGenerate   = errors.New("schedule cannot be generated in the current state")
	ErrCannotStart      = errors.New("racing cannot start without a ready schedule")
	ErrNotRacing        = errors.New("no races are running")
	ErrAlreadyPaused    = errors.New("racing is already paused")
	ErrNotPaused        = errors.New("racing is not paused")
	ErrHorseNotFound    = errors.New("horse not found")
	ErrInvalidCondition = errors.New("condition must be between 1 and 100")
	ErrEmptySchedule    = errors.New("schedule has no races")
	ErrRaceOutOfOrder   = errors.New("race transition out of order")
	ErrRacesPending     = errors.New("schedule still has unfinished races")
	ErrStaleGeneration  = errors.New("transition belongs to a discarded schedule")
)
