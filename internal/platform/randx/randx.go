// Package randx provides an injectable, seedable random source.
// Every generator in Mirage draws from a Rand passed in by the caller, so a
// fixed seed makes a whole run reproducible. Implementations are safe for
// concurrent use; modules run in parallel and share one source per run.
package randx

import (
	"math/rand"
	"sync"
	"time"
)

// Rand is the random surface used by query planning and record synthesis.
type Rand interface {
	// Intn returns a uniform int in [0, n). Panics if n <= 0.
	Intn(n int) int

	// Float64 returns a uniform float64 in [0.0, 1.0).
	Float64() float64

	// Shuffle pseudo-randomizes the order of n elements.
	Shuffle(n int, swap func(i, j int))

	// Pick returns a uniformly chosen element of the slice.
	Pick(values []string) string

	// Between returns a uniform int in [lo, hi]. Returns lo when hi <= lo.
	Between(lo, hi int) int
}

type lockedRand struct {
	mu  sync.Mutex
	src *rand.Rand
}

// New creates a seeded source. The same seed always yields the same
// sequence of draws.
func New(seed int64) Rand {
	return &lockedRand{src: rand.New(rand.NewSource(seed))}
}

// NewUnseeded creates a source seeded from the wall clock. Output is not
// reproducible; prefer New with an explicit seed in tests.
func NewUnseeded() Rand {
	return New(time.Now().UnixNano())
}

func (r *lockedRand) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.src.Intn(n)
}

func (r *lockedRand) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.src.Float64()
}

func (r *lockedRand) Shuffle(n int, swap func(i, j int)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.src.Shuffle(n, swap)
}

func (r *lockedRand) Pick(values []string) string {
	if len(values) == 0 {
		return ""
	}
	return values[r.Intn(len(values))]
}

func (r *lockedRand) Between(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.Intn(hi-lo+1)
}
