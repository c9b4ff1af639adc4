package terrain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-mapgen/internal/entities"
	"github.com/KirkDiggler/rpg-mapgen/internal/pkg/rng"
	"github.com/KirkDiggler/rpg-mapgen/internal/terrain"
)

func TestFloodFill_WalledCenter(t *testing.T) {
	g := terrain.New(3, 3, entities.TileWall)

	assert.Empty(t, terrain.FloodFill(g, 1, 1))
}

func TestFloodFill_IsolatedFloorCenter(t *testing.T) {
	g := terrain.New(3, 3, entities.TileWall)
	g.Set(1, 1, entities.TileFloor)

	assert.Equal(t, terrain.Region{{X: 1, Y: 1}}, terrain.FloodFill(g, 1, 1))
}

func TestFloodFill_OutOfBoundsStart(t *testing.T) {
	g := terrain.New(3, 3, entities.TileFloor)

	assert.Empty(t, terrain.FloodFill(g, -1, 1))
	assert.Empty(t, terrain.FloodFill(g, 3, 3))
}

func TestFloodFill_StopsAtBlockingTiles(t *testing.T) {
	g := terrain.MustParse(
		"#######",
		"#..~..#",
		"#.:T\".#",
		"#..#..#",
		"#######",
	)

	left := terrain.FloodFill(g, 1, 1)
	assert.Len(t, left, 6)
	assert.Contains(t, left, entities.Pt(2, 2), "dirt is walkable")
	assert.NotContains(t, left, entities.Pt(4, 1))

	right := terrain.FloodFill(g, 5, 3)
	assert.Len(t, right, 6)
	assert.Contains(t, right, entities.Pt(4, 2), "grass is walkable")
}

func TestFloodFill_LargeOpenGridDoesNotRecurse(t *testing.T) {
	g := terrain.New(200, 120, entities.TileFloor)

	assert.Len(t, terrain.FloodFill(g, 0, 0), 200*120)
}

func TestRegions(t *testing.T) {
	g := terrain.MustParse(
		"#########",
		"#..#....#",
		"#..#....#",
		"####.####",
		"#.#.....#",
		"#########",
	)

	regions := terrain.Regions(g)
	require.Len(t, regions, 3)
	assert.Equal(t, entities.Pt(1, 1), regions[0][0])
	assert.Len(t, regions[0], 4)
	assert.Equal(t, entities.Pt(4, 1), regions[1][0])
	assert.Len(t, regions[1], 14)
	assert.Equal(t, terrain.Region{{X: 1, Y: 4}}, regions[2])

	assert.False(t, terrain.IsConnected(g))
	assert.Error(t, terrain.CheckConnected(g))
}

func TestRegions_NoOpenCells(t *testing.T) {
	g := terrain.New(5, 5, entities.TileWall)

	assert.Empty(t, terrain.Regions(g))
	assert.True(t, terrain.IsConnected(g))
	assert.Zero(t, terrain.EnsureConnected(g, rng.New(1), 2, entities.TileFloor))
}

func TestEnsureConnected(t *testing.T) {
	for seed := int64(0); seed < 25; seed++ {
		g := terrain.MustParse(
			"##############",
			"#...#######..#",
			"#...#######..#",
			"#...#######..#",
			"############.#",
			"#.##########.#",
			"##############",
		)

		joined := terrain.EnsureConnected(g, rng.New(seed), 2, entities.TileFloor)

		assert.Equal(t, 2, joined, "seed %d", seed)
		assert.True(t, terrain.IsConnected(g), "seed %d\n%s", seed, g)
	}
}

func TestEnsureConnected_UsesRequestedTile(t *testing.T) {
	g := terrain.MustParse(
		"#######",
		"#.###.#",
		"#######",
	)

	terrain.EnsureConnected(g, rng.New(3), 1, entities.TileDirt)

	assert.True(t, terrain.IsConnected(g))
	assert.Equal(t, 5, g.Count(entities.TileDirt), "the endpoints are repainted too")
}
