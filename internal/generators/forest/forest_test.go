package forest_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-mapgen/internal/entities"
	"github.com/KirkDiggler/rpg-mapgen/internal/generators/forest"
	"github.com/KirkDiggler/rpg-mapgen/internal/pkg/rng"
	"github.com/KirkDiggler/rpg-mapgen/internal/terrain"
)

func TestGenerate_Invariants(t *testing.T) {
	gen := forest.New()
	sizes := []struct{ w, h int }{{80, 40}, {100, 60}, {20, 20}}

	for _, size := range sizes {
		for seed := int64(0); seed < 30; seed++ {
			grid := gen.Generate(rng.New(seed), size.w, size.h)

			require.NoError(t, terrain.CheckEnclosed(grid), "%dx%d seed %d", size.w, size.h, seed)
			require.NoError(t, terrain.CheckConnected(grid), "%dx%d seed %d\n%s", size.w, size.h, seed, grid)
			assert.NotEmpty(t, grid.OpenInteriorCells())

			grid.Each(func(x, y int, kind entities.TileKind) {
				assert.NotContains(t, []entities.TileKind{entities.TileDirt, entities.TileUpstairs, entities.TileDownstairs}, kind)
			})
		}
	}
}

func TestGenerate_HasForestFeatures(t *testing.T) {
	grid := forest.New().Generate(rng.New(8), 100, 60)

	assert.Positive(t, grid.Count(entities.TileTrees))
	assert.Positive(t, grid.Count(entities.TileWater))
	assert.Positive(t, grid.Count(entities.TileGrass))
	assert.Equal(t, "forest", forest.New().Name())
}

func TestTreeCluster_StaysInside(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		grid := terrain.New(12, 12, entities.TileFloor)

		forest.TreeCluster(grid, rng.New(seed), entities.Pt(2, 2), 6, 0.6, 1.0)

		assert.Equal(t, entities.TileTrees, grid.Get(2, 2), "density 1 keeps the seed")
		for i := 0; i < 12; i++ {
			assert.Equal(t, entities.TileFloor, grid.Get(i, 0))
			assert.Equal(t, entities.TileFloor, grid.Get(0, i))
			assert.Equal(t, entities.TileFloor, grid.Get(i, 11))
			assert.Equal(t, entities.TileFloor, grid.Get(11, i))
		}
	}
}

func TestTreeCluster_NoSpread(t *testing.T) {
	grid := terrain.New(10, 10, entities.TileFloor)

	forest.TreeCluster(grid, rng.New(1), entities.Pt(5, 5), 5, 0, 1.0)

	assert.Equal(t, 1, grid.Count(entities.TileTrees))
}

func TestPond(t *testing.T) {
	grid := terrain.New(30, 30, entities.TileFloor)
	center := entities.Pt(15, 15)

	forest.Pond(grid, rng.New(2), center, 4)

	assert.Equal(t, entities.TileWater, grid.Get(15, 15))
	assert.Equal(t, entities.TileWater, grid.Get(18, 15), "distance 3 is inside any jitter")
	grid.Each(func(x, y int, kind entities.TileKind) {
		if kind != entities.TileWater {
			return
		}
		dx, dy := float64(x-center.X), float64(y-center.Y)
		assert.LessOrEqual(t, dx*dx+dy*dy, 4.5*4.5, "(%d,%d) outside jittered radius", x, y)
	})
}

func TestPond_ClippedToInterior(t *testing.T) {
	grid := terrain.New(10, 10, entities.TileFloor)

	forest.Pond(grid, rng.New(2), entities.Pt(1, 1), 3)

	for i := 0; i < 10; i++ {
		assert.NotEqual(t, entities.TileWater, grid.Get(i, 0))
		assert.NotEqual(t, entities.TileWater, grid.Get(0, i))
	}
	assert.Equal(t, entities.TileWater, grid.Get(1, 1))
}

func TestClearing_KeepsWater(t *testing.T) {
	grid := terrain.New(20, 20, entities.TileTrees)
	grid.Set(10, 10, entities.TileWater)
	grid.Set(11, 10, entities.TileGrass)

	forest.Clearing(grid, entities.Pt(10, 10), 3)

	assert.Equal(t, entities.TileWater, grid.Get(10, 10))
	assert.Equal(t, entities.TileFloor, grid.Get(11, 10))
	assert.Equal(t, entities.TileFloor, grid.Get(13, 10))
	assert.Equal(t, entities.TileTrees, grid.Get(13, 13), "corner of the box is outside the circle")
	assert.Equal(t, entities.TileTrees, grid.Get(14, 10))
}

func TestStream(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		grid := terrain.New(40, 30, entities.TileFloor)

		forest.Stream(grid, rng.New(seed), entities.Pt(2, 15), entities.Pt(37, 15), 0.3)

		assert.Equal(t, entities.TileWater, grid.Get(2, 15), "seed %d", seed)
		assert.Positive(t, grid.Count(entities.TileWater))
	}
}

func TestGrass(t *testing.T) {
	grid := terrain.New(40, 20, entities.TileFloor)

	forest.Grass(grid, rng.New(1), 5, 1.0, 0.0)
	assert.Zero(t, grid.Count(entities.TileGrass), "no trees means the open rate applies")

	grid.Set(5, 5, entities.TileTrees)
	forest.Grass(grid, rng.New(1), 5, 1.0, 0.0)

	assert.Equal(t, entities.TileGrass, grid.Get(10, 10))
	assert.Equal(t, entities.TileGrass, grid.Get(1, 1))
	assert.Equal(t, entities.TileFloor, grid.Get(11, 5), "six cells away is out of reach")
	assert.Equal(t, entities.TileTrees, grid.Get(5, 5))
	assert.Equal(t, 99, grid.Count(entities.TileGrass), "interior cells within reach of the tree")
}
