package quizgen

import (
	"math/rand/v2"
	"sync"

	"doc-quiz/internal/domain"
)

// lockedSource serializes access to a *rand.Rand so one generator can be
// shared by concurrent requests.
type lockedSource struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewRandomSource returns a process-wide source seeded unpredictably.
func NewRandomSource() domain.RandomSource {
	return &lockedSource{rnd: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
}

// NewSeededSource returns a reproducible source. Two sources built from the
// same seed yield the same sequence.
func NewSeededSource(seed uint64) domain.RandomSource {
	return &lockedSource{rnd: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (s *lockedSource) IntN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rnd.IntN(n)
}

func (s *lockedSource) Shuffle(n int, swap func(i, j int)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rnd.Shuffle(n, swap)
}
