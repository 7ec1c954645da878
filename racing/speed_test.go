package racing_test

import (
	"math"
	"testing"

	"github.com/vunguyen10111995/horse-racing-game/racing"
)

const eps = 1e-9

func TestSpeed_Bounds(t *testing.T) {
	tests := []struct {
		condition int
		lo, hi    float64
	}{
		{100, 0.9, 1.1},
		{1, 0.4545, 0.5555},
	}

	rng := racing.NewRNG(99)
	for _, tt := range tests {
		for range 5000 {
			s := racing.Speed(tt.condition, rng)
			if s < tt.lo-eps || s > tt.hi+eps {
				t.Fatalf("condition %d: speed %f outside [%f, %f]", tt.condition, s, tt.lo, tt.hi)
			}
		}
	}
}

func TestSpeed_Jitter(t *testing.T) {
	if s := racing.Speed(100, &seqRNG{floats: []float64{0}}); math.Abs(s-0.9) > eps {
		t.Errorf("expected 0.9 at the jitter floor, got %f", s)
	}
	if s := racing.Speed(100, &seqRNG{floats: []float64{0.5}}); math.Abs(s-1.0) > eps {
		t.Errorf("expected 1.0 at mid jitter, got %f", s)
	}
	if s := racing.Speed(1, &seqRNG{floats: []float64{0.5}}); math.Abs(s-0.505) > eps {
		t.Errorf("expected 0.505 baseline for condition 1, got %f", s)
	}
}

func TestSpeed_ConditionBiasesMean(t *testing.T) {
	rng := racing.NewRNG(3)
	const trials = 10000

	var strong, average float64
	for range trials {
		strong += racing.Speed(100, rng)
		average += racing.Speed(50, rng)
	}
	if strong/trials <= average/trials {
		t.Errorf("mean speed at 100 (%f) should exceed mean at 50 (%f)", strong/trials, average/trials)
	}
}

func TestSpeed_FreshSamples(t *testing.T) {
	rng := racing.NewRNG(11)
	first := racing.Speed(70, rng)
	for range 100 {
		if racing.Speed(70, rng) != first {
			return
		}
	}
	t.Error("speed never varied across 100 samples")
}
