package gen

import (
	"math/rand/v2"
	"sync"
)

// source is the pseudo-random source shared by all modules of a single
// Generator. math/rand/v2 generators are not safe for concurrent use, so
// every draw goes through the mutex; evaluations touching the source are
// otherwise independent.
type source struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// newSource creates a PCG-backed source. With seeded false, the sequence is
// seeded from the global random source and differs per Generator.
func newSource(seed uint64, seeded bool) *source {
	if !seeded {
		seed = rand.Uint64()
	}

	return &source{rnd: newPCG(seed)}
}

func newPCG(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// reseed restarts the sequence from seed. Safe against concurrent draws.
func (s *source) reseed(seed uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.rnd = newPCG(seed)
}

// IntN returns a uniform int in [0, n). It panics if n <= 0, matching
// math/rand/v2; callers guard against empty ranges.
func (s *source) IntN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.rnd.IntN(n)
}

// Float64 returns a uniform float64 in [0, 1).
func (s *source) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.rnd.Float64()
}

// Uint64 returns a uniform uint64.
func (s *source) Uint64() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.rnd.Uint64()
}

// pick returns a uniformly random element of items, which must be non-empty.
func pick[T any](s *source, items []T) T {
	return items[s.IntN(len(items))]
}
