package reward

import (
	"math/rand/v2"
	"sync"
)

// Source is the only randomness the engine consumes. *rand.Rand satisfies it.
type Source interface {
	Float64() float64
	IntN(n int) int
}

func NewSeeded(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// LockedSource makes a single Source safe to share between goroutines.
type LockedSource struct {
	mu  sync.Mutex
	src Source
}

func NewLockedSource(src Source) *LockedSource {
	return &LockedSource{src: src}
}

func (s *LockedSource) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.src.Float64()
}

func (s *LockedSource) IntN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.src.IntN(n)
}
