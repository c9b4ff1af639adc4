// Package rng provides the random sources threaded through every generator.
package rng

import (
	"fmt"
	"math/rand/v2"

	"github.com/KirkDiggler/rpg-toolkit/dice"
)

// Source is the randomness consumed by map generation
type Source interface {
	// Intn returns a uniform int in [0, n). n must be positive.
	Intn(n int) int
	// Float64 returns a uniform float in [0, 1).
	Float64() float64
}

// Streams used by the level orchestrator so that each phase draws independently
const (
	StreamSelection uint64 = iota + 1
	StreamLayout
	StreamPlacement
)

// Rand is a seeded PCG source
type Rand struct {
	r *rand.Rand
}

// New returns a deterministic source for seed
func New(seed int64) *Rand {
	return NewStream(seed, 0)
}

// NewStream returns a deterministic source for (seed, stream). Different
// streams of the same seed are independent.
func NewStream(seed int64, stream uint64) *Rand {
	return &Rand{r: rand.New(rand.NewPCG(uint64(seed), 0x9e3779b97f4a7c15^stream))}
}

// Intn implements Source
func (s *Rand) Intn(n int) int {
	return s.r.IntN(n)
}

// Float64 implements Source
func (s *Rand) Float64() float64 {
	return s.r.Float64()
}

// floatResolution is the number of distinct values FromRoller's Float64 can return
const floatResolution = 1 << 30

type rollerSource struct {
	roller dice.Roller
}

// FromRoller adapts an rpg-toolkit dice roller. A d(n) roll minus one gives
// Intn; Float64 is a d(2^30) roll scaled into [0, 1).
func FromRoller(roller dice.Roller) Source {
	if roller == nil {
		roller = dice.DefaultRoller
	}
	return &rollerSource{roller: roller}
}

// Intn implements Source
func (s *rollerSource) Intn(n int) int {
	if n <= 0 {
		panic(fmt.Sprintf("rng: invalid argument to Intn: %d", n))
	}
	v, err := s.roller.Roll(n)
	if err != nil {
		// Roll only fails for non-positive sizes, which Intn already rejects
		panic(fmt.Sprintf("rng: dice roller failed for d%d: %v", n, err))
	}
	return v - 1
}

// Float64 implements Source
func (s *rollerSource) Float64() float64 {
	return float64(s.Intn(floatResolution)) / floatResolution
}

// Between returns a uniform int in [lo, hi], both inclusive. A degenerate
// range (hi < lo) collapses to lo.
func Between(src Source, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + src.Intn(hi-lo+1)
}

// Chance returns true with probability p
func Chance(src Source, p float64) bool {
	return src.Float64() < p
}

// Coin returns true with probability 0.5
func Coin(src Source) bool {
	return src.Float64() < 0.5
}

// Uniform returns a uniform float in [lo, hi)
func Uniform(src Source, lo, hi float64) float64 {
	return lo + (hi-lo)*src.Float64()
}

// Step returns -1, 0 or 1 uniformly
func Step(src Source) int {
	return src.Intn(3) - 1
}

// Pick returns a uniformly chosen element of items. items must not be empty.
func Pick[T any](src Source, items []T) T {
	return items[src.Intn(len(items))]
}
