package main

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap/zaptest"

	"github.com/vunguyen10111995/horse-racing-game/game"
	"github.com/vunguyen10111995/horse-racing-game/racing"
)

func TestRun_PrintsEveryRound(t *testing.T) {
	opts := game.DefaultOptions()
	opts.TimeScale = 0.0001

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var out bytes.Buffer
	if err := run(ctx, &out, opts, racing.NewRNG(42), zaptest.NewLogger(t)); err != nil {
		t.Fatalf("run: %v", err)
	}

	text := out.String()
	for _, want := range []string{"Round 1 - 1200m", "Round 6 - 2200m", "All 6 rounds completed."} {
		if !strings.Contains(text, want) {
			t.Errorf("output missing %q:\n%s", want, text)
		}
	}
	if got := strings.Count(text, "POS"); got != 6 {
		t.Errorf("expected 6 result tables, got %d", got)
	}
}

func TestRun_InvalidPool(t *testing.T) {
	opts := game.DefaultOptions()
	opts.HorseCount = 30

	err := run(context.Background(), &bytes.Buffer{}, opts, racing.NewRNG(1), zaptest.NewLogger(t))
	if err == nil {
		t.Fatal("expected an error for an oversized pool")
	}
}
