package racing_test

import (
	"errors"
	"slices"
	"testing"

	"github.com/vunguyen10111995/horse-racing-game/models"
	"github.com/vunguyen10111995/horse-racing-game/racing"
)

func TestGenerateSchedule_Shape(t *testing.T) {
	rng := racing.NewRNG(5)
	horses, err := racing.GenerateHorses(20, rng)
	if err != nil {
		t.Fatalf("generate horses: %v", err)
	}
	pool := make(map[int]bool)
	for _, h := range horses {
		pool[h.ID] = true
	}

	races, err := racing.GenerateSchedule(horses, rng)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(races) != 6 {
		t.Fatalf("expected 6 races, got %d", len(races))
	}

	distances := []int{1200, 1400, 1600, 1800, 2000, 2200}
	for i, r := range races {
		if r.Round != i+1 {
			t.Errorf("race %d: expected round %d, got %d", i, i+1, r.Round)
		}
		if r.Distance != distances[i] {
			t.Errorf("race %d: expected distance %d, got %d", i, distances[i], r.Distance)
		}
		if r.Status != models.RacePending {
			t.Errorf("race %d: expected pending, got %s", i, r.Status)
		}
		if len(r.Results) != 0 {
			t.Errorf("race %d: expected no results, got %d", i, len(r.Results))
		}
		if r.StartTime != nil || r.EndTime != nil {
			t.Errorf("race %d: timestamps should be unset", i)
		}
		if len(r.HorseIDs) != 10 {
			t.Fatalf("race %d: expected 10 horses, got %d", i, len(r.HorseIDs))
		}
		seen := make(map[int]bool)
		for _, id := range r.HorseIDs {
			if !pool[id] {
				t.Errorf("race %d: horse %d not in pool", i, id)
			}
			if seen[id] {
				t.Errorf("race %d: horse %d selected twice", i, id)
			}
			seen[id] = true
		}
	}
}

func TestGenerateSchedule_ExactPool(t *testing.T) {
	horses, _ := racing.GenerateHorses(10, racing.NewRNG(1))

	races, err := racing.GenerateSchedule(horses, racing.NewRNG(2))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, r := range races {
		ids := slices.Clone(r.HorseIDs)
		slices.Sort(ids)
		if !slices.Equal(ids, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}) {
			t.Errorf("round %d: a 10-horse pool should field everyone, got %v", r.Round, r.HorseIDs)
		}
	}
}

func TestGenerateSchedule_DoesNotMutatePool(t *testing.T) {
	horses, _ := racing.GenerateHorses(20, racing.NewRNG(1))
	before := slices.Clone(horses)

	if _, err := racing.GenerateSchedule(horses, racing.NewRNG(4)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !slices.Equal(before, horses) {
		t.Error("schedule generation reordered or changed the pool")
	}
}

func TestGenerateSchedule_NotEnoughHorses(t *testing.T) {
	horses, _ := racing.GenerateHorses(9, racing.NewRNG(1))

	_, err := racing.GenerateSchedule(horses, racing.NewRNG(1))
	if !errors.Is(err, racing.ErrNotEnoughHorses) {
		t.Errorf("expected ErrNotEnoughHorses, got %v", err)
	}
}

func TestDistances_Copy(t *testing.T) {
	d := racing.Distances()
	d[0] = 1
	if racing.Distances()[0] != 1200 {
		t.Error("Distances must return a copy")
	}
	if racing.TotalRounds() != 6 {
		t.Errorf("expected 6 rounds, got %d", racing.TotalRounds())
	}
}
