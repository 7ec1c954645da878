package game

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/vunguyen10111995/horse-racing-game/models"
	"github.com/vunguyen10111995/horse-racing-game/racing"
)

// AfterFunc matches time.After and lets tests decide when waits end.
type AfterFunc func(d time.Duration) <-chan time.Time

// Options tune an Engine.
type Options struct {
	HorseCount     int
	InterRaceDelay time.Duration
	// TimeScale multiplies every real wait. 1 is real time.
	TimeScale   float64
	EventBuffer int
	After       AfterFunc
	Now         func() time.Time
}

// DefaultOptions is real-time pacing with the standard pool size.
func DefaultOptions() Options {
	return Options{
		HorseCount:     racing.DefaultHorseCount,
		InterRaceDelay: 500 * time.Millisecond,
		TimeScale:      1,
		EventBuffer:    64,
		After:          time.After,
		Now:            time.Now,
	}
}

// Engine owns one game session. Commands run under a single lock; the race
// runner is one goroutine per Start that advances the schedule race by race.
type Engine struct {
	opts   Options
	rng    racing.RNG
	logger *zap.Logger
	bus    *Bus

	mu     sync.Mutex
	state  State
	cancel context.CancelFunc
	done   chan struct{}
	resume chan struct{}
}

func NewEngine(opts Options, rng racing.RNG, logger *zap.Logger) *Engine {
	def := DefaultOptions()
	if opts.HorseCount == 0 {
		opts.HorseCount = def.HorseCount
	}
	if opts.TimeScale <= 0 {
		opts.TimeScale = def.TimeScale
	}
	if opts.EventBuffer <= 0 {
		opts.EventBuffer = def.EventBuffer
	}
	if opts.After == nil {
		opts.After = def.After
	}
	if opts.Now == nil {
		opts.Now = def.Now
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Engine{
		opts:   opts,
		rng:    racing.Locked(rng),
		logger: logger,
		bus:    NewBus(logger),
		state:  NewState(),
	}
}

// apply runs cmd through the reducer and publishes its events. Caller holds e.mu.
func (e *Engine) apply(cmd Command) (State, error) {
	next, events, err := Reduce(e.state, cmd, e.opts.Now())
	if err != nil {
		return e.state, err
	}
	e.state = next
	e.bus.Publish(events...)
	return next, nil
}

// Initialize puts the session back to idle with a fresh pool of horses.
func (e *Engine) Initialize() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.stopRunner()
	if _, err := e.apply(Reset{}); err != nil {
		return err
	}
	return e.generateHorses()
}

// GenerateHorses replaces the pool. It is rejected while races are running.
func (e *Engine) GenerateHorses() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.generateHorses()
}

func (e *Engine) generateHorses() error {
	if e.state.Racing {
		return ErrRaceInProgress
	}
	horses, err := racing.GenerateHorses(e.opts.HorseCount, e.rng)
	if err != nil {
		return fmt.Errorf("generate horses: %w", err)
	}
	if _, err := e.apply(SetHorses{Horses: horses}); err != nil {
		return err
	}
	e.logger.Info("horses generated", zap.Int("count", len(horses)))
	return nil
}

func (e *Engine) UpdateHorseCondition(id, condition int) (models.Horse, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	st, err := e.apply(UpdateCondition{HorseID: id, Condition: condition})
	if err != nil {
		return models.Horse{}, err
	}
	h, _ := HorseByID(st, id)
	return h, nil
}

// GenerateSchedule draws a new six-race schedule from the current pool,
// replacing the previous schedule and its results.
func (e *Engine) GenerateSchedule() (uuid.UUID, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := checkGenerate(e.state); err != nil {
		return uuid.Nil, err
	}
	races, err := racing.GenerateSchedule(e.state.Horses, e.rng)
	if err != nil {
		return uuid.Nil, fmt.Errorf("generate schedule: %w", err)
	}
	id := uuid.New()
	if _, err := e.apply(SetSchedule{ID: id, Races: races}); err != nil {
		return uuid.Nil, err
	}
	e.logger.Info("schedule generated", zap.Stringer("schedule", id), zap.Int("races", len(races)))
	return id, nil
}

// Start launches the runner. ctx bounds the whole run; cancelling it abandons
// the schedule the same way Reset does.
func (e *Engine) Start(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	st, err := e.apply(StartRacing{})
	if err != nil {
		return err
	}

	runCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	e.cancel, e.done = cancel, done
	e.logger.Info("racing started", zap.Stringer("schedule", st.ScheduleID), zap.Int("races", len(st.Schedule)))

	go e.run(runCtx, st.Generation, len(st.Schedule), done)
	return nil
}

// Pause stops the runner before the next race. A running race still finishes.
func (e *Engine) Pause() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, err := e.apply(Pause{}); err != nil {
		return err
	}
	e.resume = make(chan struct{})
	return nil
}

func (e *Engine) Resume() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, err := e.apply(Resume{}); err != nil {
		return err
	}
	if e.resume != nil {
		close(e.resume)
		e.resume = nil
	}
	return nil
}

// Reset cancels any in-flight race and discards the schedule and results.
// Horses are kept.
func (e *Engine) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.stopRunner()
	_, _ = e.apply(Reset{})
	e.logger.Info("game reset")
}

// stopRunner cancels the runner context. Caller holds e.mu.
func (e *Engine) stopRunner() {
	if e.cancel != nil {
		e.cancel()
		e.cancel = nil
	}
	e.resume = nil
}

// Wait blocks until the current runner goroutine, if any, has exited.
func (e *Engine) Wait(ctx context.Context) error {
	e.mu.Lock()
	done := e.done
	e.mu.Unlock()
	if done == nil {
		return nil
	}

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close stops the runner and closes every subscription.
func (e *Engine) Close() {
	e.mu.Lock()
	e.stopRunner()
	done := e.done
	e.mu.Unlock()

	if done != nil {
		<-done
	}
	e.bus.Close()
}

func (e *Engine) Subscribe() (<-chan Event, func()) {
	return e.bus.Subscribe(e.opts.EventBuffer)
}

// Snapshot returns a deep copy of the session.
func (e *Engine) Snapshot() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.Clone()
}

func (e *Engine) Status() models.GameStatus {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.Status
}

func (e *Engine) Horses() []models.Horse        { return e.Snapshot().Horses }
func (e *Engine) Schedule() []models.Race       { return e.Snapshot().Schedule }
func (e *Engine) Results() []models.RoundResult { return e.Snapshot().Results }

func (e *Engine) CurrentRace() (models.Race, bool) {
	return CurrentRace(e.Snapshot())
}

func (e *Engine) run(ctx context.Context, gen uint64, rounds int, done chan struct{}) {
	defer close(done)

	for i := range rounds {
		if err := e.waitUnpaused(ctx); err != nil {
			e.abandon(gen, err)
			return
		}

		outcome, err := e.startRace(gen, i)
		if err != nil {
			e.abandon(gen, err)
			return
		}

		select {
		case <-e.opts.After(e.scaled(outcome.Duration)):
		case <-ctx.Done():
			e.abandon(gen, ctx.Err())
			return
		}

		if err := e.completeRace(gen, i, outcome); err != nil {
			e.abandon(gen, err)
			return
		}

		if i < rounds-1 {
			select {
			case <-e.opts.After(e.scaled(e.opts.InterRaceDelay)):
			case <-ctx.Done():
				e.abandon(gen, ctx.Err())
				return
			}
		}
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if _, err := e.apply(FinishRacing{Generation: gen}); err != nil {
		e.logger.Debug("finish racing rejected", zap.Error(err))
		return
	}
	e.logger.Info("all races completed", zap.Int("rounds", rounds))
}

func (e *Engine) waitUnpaused(ctx context.Context) error {
	for {
		e.mu.Lock()
		paused, resume := e.state.Paused, e.resume
		e.mu.Unlock()
		if !paused || resume == nil {
			return ctx.Err()
		}

		select {
		case <-resume:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (e *Engine) startRace(gen uint64, index int) (racing.Outcome, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if gen != e.state.Generation {
		return racing.Outcome{}, ErrStaleGeneration
	}
	if index >= len(e.state.Schedule) {
		return racing.Outcome{}, fmt.Errorf("%w: no round %d", ErrRaceOutOfOrder, index+1)
	}

	race := e.state.Schedule[index]
	outcome, err := racing.Simulate(race, poolLookup(e.state.Horses), e.rng)
	if err != nil {
		return racing.Outcome{}, err
	}

	if _, err := e.apply(StartRace{Generation: gen, Index: index, Duration: outcome.Duration}); err != nil {
		return racing.Outcome{}, err
	}

	e.logger.Info("race started",
		zap.Int("round", race.Round),
		zap.Int("distance", race.Distance),
		zap.Duration("duration", outcome.Duration),
	)
	e.logger.Debug("race pacing",
		zap.Int("round", race.Round),
		zap.Duration("base", outcome.BaseDuration),
		zap.Float64("fastest", outcome.Fastest),
		zap.Float64("slowest", outcome.Slowest),
		zap.Float64("rawMultiplier", outcome.RawMultiplier),
		zap.Float64("multiplier", outcome.Multiplier),
	)
	return outcome, nil
}

func (e *Engine) completeRace(gen uint64, index int, outcome racing.Outcome) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	st, err := e.apply(CompleteRace{Generation: gen, Index: index, Results: outcome.Results})
	if err != nil {
		return err
	}
	e.logger.Info("race completed",
		zap.Int("round", st.Schedule[index].Round),
		zap.Int("winner", outcome.Results[0].HorseID),
		zap.Float64("multiplier", outcome.Multiplier),
	)
	return nil
}

// abandon ends a run that could not finish. Runs that were superseded by a
// reset or a new schedule are dropped quietly; anything else resets the game.
func (e *Engine) abandon(gen uint64, cause error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if gen != e.state.Generation || errors.Is(cause, ErrStaleGeneration) {
		e.logger.Debug("stale race runner stopped", zap.Error(cause))
		return
	}
	e.logger.Error("race runner abandoned schedule", zap.Error(cause))
	if e.cancel != nil {
		e.cancel()
		e.cancel = nil
	}
	e.resume = nil
	_, _ = e.apply(Reset{})
}

func (e *Engine) scaled(d time.Duration) time.Duration {
	return time.Duration(float64(d) * e.opts.TimeScale)
}
