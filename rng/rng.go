package rng

import (
	"math/rand/v2"
	"sync"
	"time"

	"github.com/seehuhn/mt19937"
)

const (
	goldenRatio64 = 0x9e3779b97f4a7c15
)

// Source supplies the randomness the shuffle engine consumes.
type Source interface {
	// IntRange returns a uniformly distributed integer in [low, high].
	IntRange(low, high int) int
	// Float64 returns a uniformly distributed float in [0, 1).
	Float64() float64
}

// Rand adapts a *rand.Rand to Source
type Rand struct {
	r *rand.Rand
}

// New returns a Source backed by a PCG generator seeded deterministically from seed.
func New(seed int64) *Rand {
	u := uint64(seed)
	return &Rand{r: rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))}
}

// NewMersenneTwister returns a Source backed by MT19937.
func NewMersenneTwister(seed int64) *Rand {
	mt := mt19937.New()
	mt.Seed(seed)
	return &Rand{r: rand.New(mt)}
}

// NewTimeSeeded returns a PCG source seeded from the wall clock.
func NewTimeSeeded() *Rand {
	return New(time.Now().UnixNano())
}

func (s *Rand) IntRange(low, high int) int {
	if high <= low {
		return low
	}
	return low + s.r.IntN(high-low+1)
}

func (s *Rand) Float64() float64 {
	return s.r.Float64()
}

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}

// Locked serialises access to a Source so one generator can be shared
// between goroutines.
type Locked struct {
	mu  sync.Mutex
	src Source
}

// NewLocked wraps src
func NewLocked(src Source) *Locked {
	return &Locked{src: src}
}

func (l *Locked) IntRange(low, high int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.src.IntRange(low, high)
}

func (l *Locked) Float64() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.src.Float64()
}
