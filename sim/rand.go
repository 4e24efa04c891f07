package sim

import (
	"math/rand"

	"github.com/milk9111/hordecore/ecs/system"
)

// Rand is the injectable random source shared by every system of a run.
type Rand = system.Rand

// SeededRand is a deterministic Rand that counts how often it was drawn.
type SeededRand struct {
	r     *rand.Rand
	calls int
}

func NewSeededRand(seed int64) *SeededRand {
	return &SeededRand{r: rand.New(rand.NewSource(seed))}
}

func (s *SeededRand) Float64() float64 {
	s.calls++
	return s.r.Float64()
}

func (s *SeededRand) Intn(n int) int {
	s.calls++
	return s.r.Intn(n)
}

// Calls is the number of draws so far.
func (s *SeededRand) Calls() int {
	return s.calls
}
