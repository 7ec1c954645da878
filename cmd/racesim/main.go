// cmd/racesim/main.go
// Runs one full game headless and prints every round.
//
// Usage:
//
//	go run ./cmd/racesim -scale 0.001 -seed 42
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"text/tabwriter"
	"time"

	"go.uber.org/zap"

	"github.com/vunguyen10111995/horse-racing-game/game"
	applog "github.com/vunguyen10111995/horse-racing-game/logger"
	"github.com/vunguyen10111995/horse-racing-game/models"
	"github.com/vunguyen10111995/horse-racing-game/racing"
)

func main() {
	horses := flag.Int("horses", racing.DefaultHorseCount, "pool size")
	scale := flag.Float64("scale", 0.001, "time scale applied to race pacing (1 is real time)")
	seed := flag.Uint64("seed", 0, "random seed (0 picks one)")
	debug := flag.Bool("debug", false, "log race pacing")
	flag.Parse()

	logger, err := applog.New(*debug)
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	opts := game.DefaultOptions()
	opts.HorseCount = *horses
	opts.TimeScale = *scale

	if err := run(ctx, os.Stdout, opts, racing.NewRNG(*seed), logger); err != nil {
		logger.Error("simulation failed", zap.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, w io.Writer, opts game.Options, rng racing.RNG, logger *zap.Logger) error {
	engine := game.NewEngine(opts, rng, logger)
	defer engine.Close()

	if err := engine.Initialize(); err != nil {
		return fmt.Errorf("initialize: %w", err)
	}

	events, unsubscribe := engine.Subscribe()
	defer unsubscribe()
	if _, err := engine.GenerateSchedule(); err != nil {
		return fmt.Errorf("generate schedule: %w", err)
	}
	if err := engine.Start(ctx); err != nil {
		return fmt.Errorf("start: %w", err)
	}

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return fmt.Errorf("event stream closed early")
			}
			switch ev.Kind {
			case game.EventRaceStarted:
				fmt.Fprintf(w, "Round %d (%dm) under way, paced at %s\n",
					ev.Round, ev.Race.Distance, ev.Race.Duration.Round(time.Millisecond))
			case game.EventRaceCompleted:
				printRace(w, *ev.Race)
			case game.EventAllCompleted:
				fmt.Fprintf(w, "All %d rounds completed.\n", ev.Count)
				return nil
			case game.EventGameReset:
				return fmt.Errorf("game was reset before finishing")
			}
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func printRace(w io.Writer, race models.Race) {
	fmt.Fprintf(w, "\nRound %d - %dm\n", race.Round, race.Distance)
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "POS\tHORSE\tCOLOR\tTIME\tSPEED")
	for _, r := range race.Results {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%.2f\t%.3f\n", r.Position, r.HorseName, r.HorseColor, r.Time, r.Speed)
	}
	_ = tw.Flush()
	fmt.Fprintln(w)
}
