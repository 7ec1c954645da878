package racing

import (
	"fmt"

	"github.com/vunguyen10111995/horse-racing-game/models"
)

// HorsesPerRace is the field size of every round.
const HorsesPerRace = 10

var raceDistances = []int{1200, 1400, 1600, 1800, 2000, 2200}

// Distances returns the round distances in schedule order.
func Distances() []int {
	return append([]int(nil), raceDistances...)
}

// TotalRounds is the number of races in a schedule.
func TotalRounds() int { return len(raceDistances) }

// GenerateSchedule builds one pending race per distance. Every race draws its
// field independently, so a horse may run several rounds or none at all.
func GenerateSchedule(horses []models.Horse, rng RNG) ([]models.Race, error) {
	if len(horses) < HorsesPerRace {
		return nil, fmt.Errorf("%w: have %d, need %d", ErrNotEnoughHorses, len(horses), HorsesPerRace)
	}

	races := make([]models.Race, 0, len(raceDistances))
	for i, d := range raceDistances {
		races = append(races, models.Race{
			Round:    i + 1,
			Distance: d,
			HorseIDs: pickField(horses, HorsesPerRace, rng),
			Results:  []models.Result{},
			Status:   models.RacePending,
		})
	}
	return races, nil
}

// pickField shuffles the pool ids (Fisher-Yates) and keeps the first n.
func pickField(horses []models.Horse, n int, rng RNG) []int {
	ids := make([]int, len(horses))
	for i, h := range horses {
		ids[i] = h.ID
	}
	for i := len(ids) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		ids[i], ids[j] = ids[j], ids[i]
	}
	return ids[:n:n]
}
