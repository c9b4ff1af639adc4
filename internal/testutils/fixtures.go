package testutils

import (
	"github.com/KirkDiggler/rpg-mapgen/internal/entities"
	"github.com/KirkDiggler/rpg-mapgen/internal/terrain"
)

// TestSeed is the seed deterministic tests share
const TestSeed int64 = 42

// Fixture dimensions and ID prefixes
const (
	TestWidth     = 40
	TestHeight    = 24
	TestLevelID   = "lvl_test_001"
	TestEntityIDs = "ent"
)

// CreateRoomGrid returns a walled width x height grid with one open room
// covering the interior
func CreateRoomGrid(width, height int) *terrain.Grid {
	g := terrain.New(width, height, entities.TileFloor)
	g.AddBorderWalls()
	return g
}

// CreateSolidGrid returns a grid with no open cells
func CreateSolidGrid(width, height int) *terrain.Grid {
	return terrain.New(width, height, entities.TileWall)
}

// CreateTwoRoomGrid returns two rooms separated by a wall column, each
// 3 wide, for connectivity tests
func CreateTwoRoomGrid() *terrain.Grid {
	return terrain.MustParse(
		"#########",
		"#...#...#",
		"#...#...#",
		"#...#...#",
		"#########",
	)
}
