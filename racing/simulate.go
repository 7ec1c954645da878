package racing

import (
	"cmp"
	"fmt"
	"math"
	"slices"
	"time"

	"github.com/vunguyen10111995/horse-racing-game/models"
)

const (
	baseDurationMS   = 10000
	msPerMeter       = 5
	shortestDistance = 1200
	maxMultiplier    = 1.5
)

// Lookup resolves a horse id against the live pool.
type Lookup func(id int) (models.Horse, bool)

// Outcome is everything a simulated race produces before it is allowed to finish.
type Outcome struct {
	Results       []models.Result
	Fastest       float64
	Slowest       float64
	RawMultiplier float64
	Multiplier    float64
	BaseDuration  time.Duration
	Duration      time.Duration
}

// BaseDuration is the animation length of the fastest horse over distance.
func BaseDuration(distance int) time.Duration {
	return time.Duration(baseDurationMS+(distance-shortestDistance)*msPerMeter) * time.Millisecond
}

// DurationMultiplier stretches the base duration by the finishing spread,
// clamped to [1, 1.5].
func DurationMultiplier(fastest, slowest float64) float64 {
	return math.Min(spread(fastest, slowest), maxMultiplier)
}

func spread(fastest, slowest float64) float64 {
	if fastest <= 0 || slowest <= fastest {
		return 1
	}
	return slowest / fastest
}

// Simulate computes finishing times and positions for one race and the pacing
// the caller must wait before the race counts as completed. The race itself is
// not modified.
func Simulate(race models.Race, lookup Lookup, rng RNG) (Outcome, error) {
	if len(race.HorseIDs) == 0 {
		return Outcome{}, fmt.Errorf("round %d: %w", race.Round, ErrEmptyRace)
	}

	results := make([]models.Result, 0, len(race.HorseIDs))
	for _, id := range race.HorseIDs {
		h, ok := lookup(id)
		if !ok {
			return Outcome{}, fmt.Errorf("round %d, horse %d: %w", race.Round, id, ErrUnknownHorse)
		}
		speed := Speed(h.Condition, rng)
		results = append(results, models.Result{
			HorseID:    h.ID,
			HorseName:  h.Name,
			HorseColor: h.Color,
			Time:       float64(race.Distance) / speed * (1 + rng.Float64()*0.2),
			Speed:      speed,
		})
	}

	slices.SortStableFunc(results, func(a, b models.Result) int {
		return cmp.Compare(a.Time, b.Time)
	})
	for i := range results {
		results[i].Position = i + 1
	}

	out := Outcome{
		Results:      results,
		Fastest:      results[0].Time,
		Slowest:      results[len(results)-1].Time,
		BaseDuration: BaseDuration(race.Distance),
	}
	out.RawMultiplier = spread(out.Fastest, out.Slowest)
	out.Multiplier = DurationMultiplier(out.Fastest, out.Slowest)
	out.Duration = time.Duration(float64(out.BaseDuration) * out.Multiplier)
	return out, nil
}
