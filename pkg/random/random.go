// Package random provides an injectable source of uniform draws so that
// services depending on randomness stay testable with a fixed source.
package random

import (
	"math/rand"
	"sync"
	"time"
)

// Source yields uniform random values within a range.
type Source interface {
	// IntBetween returns a uniform int in [min, max], both inclusive.
	IntBetween(min, max int) int
	// FloatBetween returns a uniform float64 in [min, max).
	FloatBetween(min, max float64) float64
}

type lockedSource struct {
	mu sync.Mutex
	r  *rand.Rand
}

// New returns a time-seeded Source safe for concurrent use.
func New() Source {
	return &lockedSource{r: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// NewSeeded returns a deterministic Source for tests.
func NewSeeded(seed int64) Source {
	return &lockedSource{r: rand.New(rand.NewSource(seed))}
}

func (s *lockedSource) IntBetween(min, max int) int {
	if max <= min {
		return min
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return min + s.r.Intn(max-min+1)
}

func (s *lockedSource) FloatBetween(min, max float64) float64 {
	if max <= min {
		return min
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return min + s.r.Float64()*(max-min)
}
