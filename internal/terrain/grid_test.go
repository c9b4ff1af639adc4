package terrain_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-mapgen/internal/entities"
	"github.com/KirkDiggler/rpg-mapgen/internal/errors"
	"github.com/KirkDiggler/rpg-mapgen/internal/terrain"
)

type GridTestSuite struct {
	suite.Suite
	grid *terrain.Grid
}

func (s *GridTestSuite) SetupTest() {
	s.grid = terrain.New(10, 6, entities.TileFloor)
}

func (s *GridTestSuite) TestDimensions() {
	s.Equal(10, s.grid.Width())
	s.Equal(6, s.grid.Height())
	s.Equal(60, s.grid.Count(entities.TileFloor))
}

func (s *GridTestSuite) TestGetOutOfBoundsIsWall() {
	for _, p := range []entities.Point{{X: -1, Y: 0}, {X: 0, Y: -1}, {X: 10, Y: 0}, {X: 0, Y: 6}, {X: 100, Y: 100}} {
		s.Equal(entities.TileWall, s.grid.Get(p.X, p.Y), "point %v", p)
		s.True(s.grid.IsBlocked(p.X, p.Y))
	}
}

func (s *GridTestSuite) TestSetOutOfBoundsIsNoOp() {
	before := s.grid.String()
	s.grid.Set(-1, 3, entities.TileWater)
	s.grid.Set(10, 3, entities.TileWater)
	s.grid.Set(3, 6, entities.TileWater)
	s.Equal(before, s.grid.String())
}

func (s *GridTestSuite) TestIsBlocked() {
	s.grid.Set(1, 1, entities.TileWall)
	s.grid.Set(2, 1, entities.TileWater)
	s.grid.Set(3, 1, entities.TileTrees)
	s.grid.Set(4, 1, entities.TileGrass)
	s.grid.Set(5, 1, entities.TileDirt)

	s.True(s.grid.IsBlocked(1, 1))
	s.True(s.grid.IsBlocked(2, 1))
	s.True(s.grid.IsBlocked(3, 1))
	s.False(s.grid.IsBlocked(4, 1))
	s.False(s.grid.IsBlocked(5, 1))
	s.False(s.grid.IsBlocked(6, 1))
}

func (s *GridTestSuite) TestAddBorderWalls() {
	s.grid.AddBorderWalls()

	s.NoError(terrain.CheckEnclosed(s.grid))
	s.Equal(2*10+2*4, s.grid.Count(entities.TileWall))
	s.Equal(entities.TileFloor, s.grid.Get(1, 1))
	s.Equal(entities.TileFloor, s.grid.Get(8, 4))
}

func (s *GridTestSuite) TestCheckEnclosedReportsBreach() {
	s.grid.AddBorderWalls()
	s.grid.Set(9, 2, entities.TileFloor)

	err := terrain.CheckEnclosed(s.grid)
	s.Require().Error(err)
	s.True(errors.IsFailedPrecondition(err))
	s.Equal(9, errors.GetMeta(err)["x"])
	s.Equal(2, errors.GetMeta(err)["y"])
}

func (s *GridTestSuite) TestCloneIsIndependent() {
	clone := s.grid.Clone()
	clone.Set(2, 2, entities.TileWall)

	s.Equal(entities.TileFloor, s.grid.Get(2, 2))
	s.Equal(entities.TileWall, clone.Get(2, 2))
}

func (s *GridTestSuite) TestOpenInteriorCells() {
	g := terrain.MustParse(
		"#####",
		"#.~.#",
		"#T..#",
		"#####",
	)
	cells := g.OpenInteriorCells()
	s.Equal([]entities.Point{{X: 1, Y: 1}, {X: 3, Y: 1}, {X: 2, Y: 2}, {X: 3, Y: 2}}, cells)
}

func TestGridSuite(t *testing.T) {
	suite.Run(t, new(GridTestSuite))
}

func TestNew_NonPositiveDimensions(t *testing.T) {
	g := terrain.New(0, -3, entities.TileFloor)
	assert.Equal(t, 0, g.Width())
	assert.Equal(t, 0, g.Height())
	assert.Equal(t, entities.TileWall, g.Get(0, 0))
}

func TestGridJSON(t *testing.T) {
	g := terrain.MustParse(
		"######",
		"#.~T\"#",
		"#:<>.#",
		"######",
	)

	data, err := json.Marshal(g)
	require.NoError(t, err)
	assert.JSONEq(t, `{"width":6,"height":4,"rows":["######","#.~T\"#","#:<>.#","######"]}`, string(data))

	var decoded terrain.Grid
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, g.String(), decoded.String())
	assert.Equal(t, entities.TileUpstairs, decoded.Get(2, 2))
}

func TestGridJSON_Rejects(t *testing.T) {
	testCases := []struct {
		name string
		data string
	}{
		{name: "ragged rows", data: `{"width":3,"height":2,"rows":["###","##"]}`},
		{name: "unknown glyph", data: `{"width":3,"height":1,"rows":["#x#"]}`},
		{name: "header mismatch", data: `{"width":4,"height":1,"rows":["###"]}`},
		{name: "not an object", data: `[1,2,3]`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var g terrain.Grid
			assert.Error(t, json.Unmarshal([]byte(tc.data), &g))
		})
	}
}
