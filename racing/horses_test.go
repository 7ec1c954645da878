package racing_test

import (
	"errors"
	"testing"

	"github.com/vunguyen10111995/horse-racing-game/racing"
)

func TestGenerateHorses_UniqueIdentity(t *testing.T) {
	for _, n := range []int{1, 10, racing.DefaultHorseCount} {
		horses, err := racing.GenerateHorses(n, racing.NewRNG(7))
		if err != nil {
			t.Fatalf("n=%d: unexpected error: %v", n, err)
		}
		if len(horses) != n {
			t.Fatalf("n=%d: expected %d horses, got %d", n, n, len(horses))
		}

		names := make(map[string]bool)
		colors := make(map[string]bool)
		for i, h := range horses {
			if h.ID != i+1 {
				t.Errorf("n=%d: horse %d has id %d", n, i, h.ID)
			}
			if names[h.Name] {
				t.Errorf("n=%d: duplicate name %q", n, h.Name)
			}
			if colors[h.Color] {
				t.Errorf("n=%d: duplicate color %q", n, h.Color)
			}
			names[h.Name] = true
			colors[h.Color] = true
			if h.Condition < 1 || h.Condition > 100 {
				t.Errorf("n=%d: horse %d condition %d out of range", n, h.ID, h.Condition)
			}
		}
	}
}

func TestGenerateHorses_ConditionBounds(t *testing.T) {
	rng := &seqRNG{ints: []int{0, 99, 49}}

	horses, err := racing.GenerateHorses(3, rng)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := []int{1, 100, 50}
	for i, h := range horses {
		if h.Condition != expected[i] {
			t.Errorf("horse %d: expected condition %d, got %d", h.ID, expected[i], h.Condition)
		}
	}
}

func TestGenerateHorses_PositionalNames(t *testing.T) {
	a, _ := racing.GenerateHorses(5, racing.NewRNG(1))
	b, _ := racing.GenerateHorses(5, racing.NewRNG(2))

	for i := range a {
		if a[i].Name != b[i].Name || a[i].Color != b[i].Color {
			t.Errorf("horse %d: name/color should not depend on randomness", i+1)
		}
	}
	if a[0].Name != "Thunder" || a[0].Color != "#FF6B6B" {
		t.Errorf("unexpected first horse: %+v", a[0])
	}
}

func TestGenerateHorses_InvalidCount(t *testing.T) {
	for _, n := range []int{0, -1, racing.PoolSize() + 1} {
		_, err := racing.GenerateHorses(n, racing.NewRNG(1))
		if !errors.Is(err, racing.ErrInvalidHorseCount) {
			t.Errorf("n=%d: expected ErrInvalidHorseCount, got %v", n, err)
		}
	}
}
