package terrain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/rpg-mapgen/internal/entities"
	"github.com/KirkDiggler/rpg-mapgen/internal/pkg/rng"
	"github.com/KirkDiggler/rpg-mapgen/internal/terrain"
)

func TestCarveCorridor_VerticalRunIgnoresLegOrder(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		g := terrain.New(8, 8, entities.TileWall)

		terrain.CarveCorridor(g, rng.New(seed), 2, 2, 2, 5, 1, entities.TileFloor)

		for y := 2; y <= 5; y++ {
			assert.Equal(t, entities.TileFloor, g.Get(2, y), "seed %d y %d", seed, y)
		}
		assert.Equal(t, 4, g.Count(entities.TileFloor), "seed %d", seed)
	}
}

func TestCarveCorridor_LShapeConnectsEndpoints(t *testing.T) {
	shapes := map[string]bool{}
	for seed := int64(0); seed < 40; seed++ {
		g := terrain.New(12, 12, entities.TileWall)

		terrain.CarveCorridor(g, rng.New(seed), 2, 3, 9, 8, 1, entities.TileDirt)

		assert.Equal(t, entities.TileDirt, g.Get(2, 3))
		assert.Equal(t, entities.TileDirt, g.Get(9, 8))
		assert.Equal(t, 7+5+1, g.Count(entities.TileDirt), "two legs share the corner")
		assert.True(t, terrain.IsConnected(g))
		shapes[g.String()] = true
	}
	assert.Len(t, shapes, 2, "both leg orders are chosen")
}

func TestCarveCorridor_Width(t *testing.T) {
	g := terrain.New(10, 10, entities.TileWall)

	terrain.CarveCorridor(g, rng.New(1), 1, 1, 6, 1, 2, entities.TileFloor)

	for x := 1; x <= 6; x++ {
		assert.Equal(t, entities.TileFloor, g.Get(x, 1))
		assert.Equal(t, entities.TileFloor, g.Get(x, 2))
	}
}

func TestCarveCorridor_ZeroWidthCarvesOneCell(t *testing.T) {
	g := terrain.New(5, 5, entities.TileWall)

	terrain.CarveCorridor(g, rng.New(1), 1, 1, 1, 1, 0, entities.TileFloor)

	assert.Equal(t, 1, g.Count(entities.TileFloor))
}

func TestDrunkWalk(t *testing.T) {
	g := terrain.New(40, 30, entities.TileFloor)
	start := entities.Pt(1, 15)
	end := entities.Pt(38, 15)

	for seed := int64(0); seed < 30; seed++ {
		path := terrain.DrunkWalk(g, rng.New(seed), start, end)

		assert.Equal(t, start, path[0])
		assert.LessOrEqual(t, len(path), 2*g.Width()+1)
		for i, p := range path {
			assert.True(t, g.InInterior(p.X, p.Y), "seed %d step %d left interior: %v", seed, i, p)
			if i > 0 {
				assert.LessOrEqual(t, p.Chebyshev(path[i-1]), 1, "steps are unit moves")
			}
		}
		if last := path[len(path)-1]; last.Chebyshev(end) > 1 {
			assert.Len(t, path, 2*g.Width()+1, "a walk only stops short at the step cap")
		}
	}
}

func TestDrunkWalk_StartsAtTarget(t *testing.T) {
	g := terrain.New(20, 20, entities.TileFloor)

	path := terrain.DrunkWalk(g, rng.New(1), entities.Pt(5, 5), entities.Pt(6, 6))

	assert.Equal(t, []entities.Point{{X: 5, Y: 5}}, path)
}
