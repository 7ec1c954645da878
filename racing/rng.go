package racing

import (
	"math/rand/v2"
	"sync"
)

// RNG abstracts random sampling so tests can pin outcomes.
type RNG interface {
	// Float64 returns a uniform sample in [0, 1).
	Float64() float64
	// IntN returns a uniform int in [0, n).
	IntN(n int) int
}

// NewRNG returns a PCG-backed source. A zero seed picks a random one.
func NewRNG(seed uint64) RNG {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return rand.New(rand.NewPCG(seed, seed>>1|1))
}

type lockedRNG struct {
	mu  sync.Mutex
	rng RNG
}

// Locked serialises access to rng so command handlers and the race runner can share it.
func Locked(rng RNG) RNG {
	if l, ok := rng.(*lockedRNG); ok {
		return l
	}
	return &lockedRNG{rng: rng}
}

func (l *lockedRNG) Float64() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.rng.Float64()
}

func (l *lockedRNG) IntN(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.rng.IntN(n)
}
