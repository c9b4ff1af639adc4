package rng_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-mapgen/internal/pkg/rng"
)

// fixedRoller always rolls the same face, clamped to the die size
type fixedRoller struct {
	face  int
	sizes []int
}

func (r *fixedRoller) Roll(size int) (int, error) {
	r.sizes = append(r.sizes, size)
	return min(r.face, size), nil
}

func (r *fixedRoller) RollN(count, size int) ([]int, error) {
	out := make([]int, count)
	for i := range out {
		out[i], _ = r.Roll(size)
	}
	return out, nil
}

func TestNew_IsDeterministic(t *testing.T) {
	a := rng.New(42)
	b := rng.New(42)

	for i := 0; i < 100; i++ {
		require.Equal(t, a.Intn(1000), b.Intn(1000))
		require.Equal(t, a.Float64(), b.Float64())
	}
}

func TestNewStream_StreamsDiffer(t *testing.T) {
	a := rng.NewStream(42, rng.StreamLayout)
	b := rng.NewStream(42, rng.StreamPlacement)

	same := 0
	for i := 0; i < 50; i++ {
		if a.Intn(1_000_000) == b.Intn(1_000_000) {
			same++
		}
	}
	assert.Less(t, same, 5)
}

func TestBetween(t *testing.T) {
	src := rng.New(1)
	seen := map[int]bool{}
	for i := 0; i < 500; i++ {
		v := rng.Between(src, 4, 7)
		require.GreaterOrEqual(t, v, 4)
		require.LessOrEqual(t, v, 7)
		seen[v] = true
	}
	assert.Len(t, seen, 4, "every value in the inclusive range is reachable")

	t.Run("degenerate range collapses to lower bound", func(t *testing.T) {
		assert.Equal(t, 15, rng.Between(src, 15, 10))
		assert.Equal(t, 3, rng.Between(src, 3, 3))
	})
}

func TestUniformAndStep(t *testing.T) {
	src := rng.New(7)
	for i := 0; i < 500; i++ {
		u := rng.Uniform(src, -0.5, 0.5)
		require.GreaterOrEqual(t, u, -0.5)
		require.Less(t, u, 0.5)

		s := rng.Step(src)
		require.Contains(t, []int{-1, 0, 1}, s)
	}
}

func TestFromRoller(t *testing.T) {
	t.Run("Intn is roll minus one", func(t *testing.T) {
		roller := &fixedRoller{face: 3}
		src := rng.FromRoller(roller)

		assert.Equal(t, 2, src.Intn(6))
		assert.Equal(t, 0, src.Intn(1))
		assert.Equal(t, []int{6, 1}, roller.sizes)
	})

	t.Run("Float64 stays in the unit interval", func(t *testing.T) {
		src := rng.FromRoller(&fixedRoller{face: 1})
		assert.Equal(t, 0.0, src.Float64())

		src = rng.FromRoller(&fixedRoller{face: 1 << 30})
		f := src.Float64()
		assert.Less(t, f, 1.0)
		assert.Greater(t, f, 0.99)
	})

	t.Run("nil roller uses the toolkit default", func(t *testing.T) {
		src := rng.FromRoller(nil)
		for i := 0; i < 100; i++ {
			v := src.Intn(10)
			require.GreaterOrEqual(t, v, 0)
			require.Less(t, v, 10)
		}
	})

	t.Run("non-positive n panics", func(t *testing.T) {
		src := rng.FromRoller(&fixedRoller{face: 1})
		assert.Panics(t, func() { src.Intn(0) })
	})
}

func TestPick(t *testing.T) {
	src := rng.New(3)
	items := []string{"forest", "dungeon", "village"}
	for i := 0; i < 50; i++ {
		assert.Contains(t, items, rng.Pick(src, items))
	}
}
