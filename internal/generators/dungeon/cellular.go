package dungeon

import (
	"log/slog"

	"github.com/KirkDiggler/rpg-mapgen/internal/entities"
	"github.com/KirkDiggler/rpg-mapgen/internal/pkg/rng"
	"github.com/KirkDiggler/rpg-mapgen/internal/terrain"
)

// CellularConfig tunes the cave layout
type CellularConfig struct {
	WallProbability float64
	MinIterations   int
	MaxIterations   int
	// WallThreshold is how many walls in a 3x3 window (self included) turn
	// a cell into wall
	WallThreshold int
	// CorridorWidth is used when joining isolated caves to the main one
	CorridorWidth int
}

// DefaultCellularConfig returns the standard 4-5 rule tunables
func DefaultCellularConfig() CellularConfig {
	return CellularConfig{
		WallProbability: 0.45,
		MinIterations:   4,
		MaxIterations:   5,
		WallThreshold:   5,
		CorridorWidth:   2,
	}
}

// Cellular grows caves with a cellular automaton then joins them
type Cellular struct {
	Config CellularConfig
}

// NewCellular returns the generator with default tunables
func NewCellular() *Cellular {
	return &Cellular{Config: DefaultCellularConfig()}
}

// Name returns the algorithm identifier
func (g *Cellular) Name() string {
	return string(entities.AlgorithmCellular)
}

// Generate carves a cave layout
func (g *Cellular) Generate(src rng.Source, width, height int) *terrain.Grid {
	cfg := g.Config
	grid := terrain.New(width, height, entities.TileWall)

	Seed(grid, src, cfg.WallProbability)

	iterations := rng.Between(src, cfg.MinIterations, cfg.MaxIterations)
	for i := 0; i < iterations; i++ {
		grid = Step(grid, cfg.WallThreshold)
	}

	joined := terrain.EnsureConnected(grid, src, cfg.CorridorWidth, entities.TileFloor)
	grid.AddBorderWalls()

	slog.Debug("cellular layout generated",
		"iterations", iterations,
		"regions_joined", joined,
		"width", width,
		"height", height)
	return grid
}

// Seed randomizes every interior cell to wall with probability p, else floor
func Seed(grid *terrain.Grid, src rng.Source, p float64) {
	for y := 1; y < grid.Height()-1; y++ {
		for x := 1; x < grid.Width()-1; x++ {
			if rng.Chance(src, p) {
				grid.Set(x, y, entities.TileWall)
			} else {
				grid.Set(x, y, entities.TileFloor)
			}
		}
	}
}

// Step applies one synchronous automaton iteration and returns the new
// grid. Interior cells become wall when at least threshold cells of their
// 3x3 window are wall, otherwise floor. Off-grid cells count as wall and
// the border is copied unchanged.
func Step(grid *terrain.Grid, threshold int) *terrain.Grid {
	next := grid.Clone()
	for y := 1; y < grid.Height()-1; y++ {
		for x := 1; x < grid.Width()-1; x++ {
			if countWalls(grid, x, y) >= threshold {
				next.Set(x, y, entities.TileWall)
			} else {
				next.Set(x, y, entities.TileFloor)
			}
		}
	}
	return next
}

func countWalls(grid *terrain.Grid, x, y int) int {
	n := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if grid.Get(x+dx, y+dy) == entities.TileWall {
				n++
			}
		}
	}
	return n
}
