package racing

import "errors"

var (
	ErrInvalidHorseCount = errors.New("horse count must be between 1 and the name pool size")
	ErrNotEnoughHorses   = errors.New("not enough horses to fill a race")
	ErrUnknownHorse      = errors.New("race references a horse missing from the pool")
	ErrEmptyRace         = errors.New("race has no participants")
)
