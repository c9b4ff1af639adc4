// Package village generates settlements: a main road with cross streets, a
// central square, walled buildings with doors, and light vegetation.
package village

import (
	"log/slog"

	"github.com/KirkDiggler/rpg-mapgen/internal/entities"
	"github.com/KirkDiggler/rpg-mapgen/internal/pkg/rng"
	"github.com/KirkDiggler/rpg-mapgen/internal/terrain"
)

// Side names a building wall
type Side int

// Building sides in the order a door side is drawn
const (
	SideTop Side = iota
	SideBottom
	SideLeft
	SideRight
)

var sides = []Side{SideTop, SideBottom, SideLeft, SideRight}

// Config tunes the village layout
type Config struct {
	MainRoadWidth  int
	CrossRoadWidth int
	MinCrossRoads  int
	MaxCrossRoads  int

	MinSquare int
	MaxSquare int

	MinBuildings        int
	MaxBuildings        int
	AttemptsPerBuilding int
	MinBuildingWidth    int
	MaxBuildingWidth    int
	MinBuildingHeight   int
	MaxBuildingHeight   int
	// EdgeMargin keeps buildings this many cells from the map edge
	EdgeMargin int
	DoorChance float64

	TreeChance   float64
	TreeSpread   float64
	GrassChance  float64
	ConnectWidth int
}

// DefaultConfig returns the standard tunables
func DefaultConfig() Config {
	return Config{
		MainRoadWidth:       3,
		CrossRoadWidth:      2,
		MinCrossRoads:       2,
		MaxCrossRoads:       3,
		MinSquare:           12,
		MaxSquare:           18,
		MinBuildings:        8,
		MaxBuildings:        12,
		AttemptsPerBuilding: 5,
		MinBuildingWidth:    5,
		MaxBuildingWidth:    12,
		MinBuildingHeight:   5,
		MaxBuildingHeight:   10,
		EdgeMargin:          5,
		DoorChance:          0.8,
		TreeChance:          0.02,
		TreeSpread:          0.4,
		GrassChance:         0.15,
		ConnectWidth:        1,
	}
}

// Generator builds village maps
type Generator struct {
	Config Config
}

// New returns a village generator with default tunables
func New() *Generator {
	return &Generator{Config: DefaultConfig()}
}

// Name returns the environment identifier
func (g *Generator) Name() string {
	return string(entities.EnvironmentVillage)
}

// Generate builds a village
func (g *Generator) Generate(src rng.Source, width, height int) *terrain.Grid {
	grid, buildings := g.Layout(src, width, height)
	slog.Debug("village generated",
		"buildings", len(buildings),
		"width", width,
		"height", height)
	return grid
}

// Layout is Generate that also returns the placed buildings
func (g *Generator) Layout(src rng.Source, width, height int) (*terrain.Grid, []entities.Room) {
	cfg := g.Config
	grid := terrain.New(width, height, entities.TileFloor)

	horizontal := rng.Coin(src)
	if horizontal {
		Road(grid, entities.Pt(1, height/2), entities.Pt(width-2, height/2), cfg.MainRoadWidth, false)
	} else {
		Road(grid, entities.Pt(width/2, 1), entities.Pt(width/2, height-2), cfg.MainRoadWidth, true)
	}

	crossRoads := rng.Between(src, cfg.MinCrossRoads, cfg.MaxCrossRoads)
	for i := 0; i < crossRoads; i++ {
		if horizontal {
			x := rng.Between(src, width/4, 3*width/4)
			Road(grid, entities.Pt(x, 1), entities.Pt(x, height-2), cfg.CrossRoadWidth, true)
		} else {
			y := rng.Between(src, height/4, 3*height/4)
			Road(grid, entities.Pt(1, y), entities.Pt(width-2, y), cfg.CrossRoadWidth, false)
		}
	}

	size := rng.Between(src, cfg.MinSquare, cfg.MaxSquare)
	square := entities.Room{X: (width - size) / 2, Y: (height - size) / 2, Width: size, Height: size}
	TownSquare(grid, square)

	buildings := PlaceBuildings(grid, src, cfg, square)

	Vegetation(grid, src, cfg.TreeChance, cfg.TreeSpread, cfg.GrassChance)

	grid.AddBorderWalls()
	terrain.EnsureConnected(grid, src, cfg.ConnectWidth, entities.TileFloor)
	grid.AddBorderWalls()
	return grid, buildings
}

// Road lays a straight dirt road from a to b widened toward +x for
// vertical roads or +y for horizontal ones
func Road(grid *terrain.Grid, a, b entities.Point, width int, vertical bool) {
	if vertical {
		for y := min(a.Y, b.Y); y <= max(a.Y, b.Y); y++ {
			for w := 0; w < width; w++ {
				grid.Set(a.X+w, y, entities.TileDirt)
			}
		}
		return
	}
	for x := min(a.X, b.X); x <= max(a.X, b.X); x++ {
		for w := 0; w < width; w++ {
			grid.Set(x, a.Y+w, entities.TileDirt)
		}
	}
}

// TownSquare clears the interior cells of square to floor, leaving roads
func TownSquare(grid *terrain.Grid, square entities.Room) {
	for y := square.Y; y < square.Y+square.Height; y++ {
		for x := square.X; x < square.X+square.Width; x++ {
			if grid.InInterior(x, y) && grid.Get(x, y) != entities.TileDirt {
				grid.Set(x, y, entities.TileFloor)
			}
		}
	}
}

// PlaceBuildings rejection samples buildings whose footprint plus a 1 cell
// margin stays on the map, off every road, and out of the square
func PlaceBuildings(grid *terrain.Grid, src rng.Source, cfg Config, square entities.Room) []entities.Room {
	target := rng.Between(src, cfg.MinBuildings, cfg.MaxBuildings)
	maxAttempts := target * cfg.AttemptsPerBuilding

	var buildings []entities.Room
	for attempt := 0; attempt < maxAttempts && len(buildings) < target; attempt++ {
		w := rng.Between(src, cfg.MinBuildingWidth, cfg.MaxBuildingWidth)
		h := rng.Between(src, cfg.MinBuildingHeight, cfg.MaxBuildingHeight)

		maxX := grid.Width() - w - cfg.EdgeMargin
		maxY := grid.Height() - h - cfg.EdgeMargin
		if maxX < cfg.EdgeMargin || maxY < cfg.EdgeMargin {
			continue
		}

		b := entities.Room{
			X:      rng.Between(src, cfg.EdgeMargin, maxX),
			Y:      rng.Between(src, cfg.EdgeMargin, maxY),
			Width:  w,
			Height: h,
		}
		if !siteClear(grid, b, square) {
			continue
		}

		Building(grid, src, b, cfg.DoorChance)
		buildings = append(buildings, b)
	}
	return buildings
}

func siteClear(grid *terrain.Grid, b entities.Room, square entities.Room) bool {
	site := b.Expand(1)
	for y := site.Y; y < site.Y+site.Height; y++ {
		for x := site.X; x < site.X+site.Width; x++ {
			if !grid.InBounds(x, y) {
				return false
			}
			if grid.Get(x, y) == entities.TileDirt || square.Contains(entities.Pt(x, y)) {
				return false
			}
		}
	}
	return true
}

// Building walls the perimeter of b, floors its interior and, with
// probability doorChance when both sides exceed 2, opens one door centered
// on a random side. It returns the door position when one was made.
func Building(grid *terrain.Grid, src rng.Source, b entities.Room, doorChance float64) (entities.Point, bool) {
	for x := b.X; x < b.X+b.Width; x++ {
		grid.Set(x, b.Y, entities.TileWall)
		grid.Set(x, b.Y+b.Height-1, entities.TileWall)
	}
	for y := b.Y; y < b.Y+b.Height; y++ {
		grid.Set(b.X, y, entities.TileWall)
		grid.Set(b.X+b.Width-1, y, entities.TileWall)
	}
	grid.FillRect(entities.Room{X: b.X + 1, Y: b.Y + 1, Width: b.Width - 2, Height: b.Height - 2}, entities.TileFloor)

	if !rng.Chance(src, doorChance) || b.Width <= 2 || b.Height <= 2 {
		return entities.Point{}, false
	}

	door := DoorPosition(b, rng.Pick(src, sides))
	grid.Set(door.X, door.Y, entities.TileFloor)
	return door, true
}

// DoorPosition returns the center cell of the given side of b
func DoorPosition(b entities.Room, side Side) entities.Point {
	switch side {
	case SideTop:
		return entities.Pt(b.X+b.Width/2, b.Y)
	case SideBottom:
		return entities.Pt(b.X+b.Width/2, b.Y+b.Height-1)
	case SideLeft:
		return entities.Pt(b.X, b.Y+b.Height/2)
	default:
		return entities.Pt(b.X+b.Width-1, b.Y+b.Height/2)
	}
}

// Vegetation scatters trees and grass over interior floor. A tree seeds
// with probability treeChance and each 4-neighbor still on floor follows
// with probability spread; otherwise grass appears with probability grass.
func Vegetation(grid *terrain.Grid, src rng.Source, treeChance, spread, grass float64) {
	for y := 1; y < grid.Height()-1; y++ {
		for x := 1; x < grid.Width()-1; x++ {
			if grid.Get(x, y) != entities.TileFloor {
				continue
			}

			if rng.Chance(src, treeChance) {
				grid.Set(x, y, entities.TileTrees)
				for _, d := range entities.CardinalOffsets {
					if rng.Chance(src, spread) && grid.Get(x+d.X, y+d.Y) == entities.TileFloor {
						grid.Set(x+d.X, y+d.Y, entities.TileTrees)
					}
				}
				continue
			}

			if rng.Chance(src, grass) {
				grid.Set(x, y, entities.TileGrass)
			}
		}
	}
}
