// Package forest generates open woodland: tree clusters, ponds, an optional
// stream, clearings and scattered grass.
package forest

import (
	"log/slog"
	"math"
	"sort"

	"github.com/zyedidia/generic/mapset"

	"github.com/KirkDiggler/rpg-mapgen/internal/entities"
	"github.com/KirkDiggler/rpg-mapgen/internal/pkg/rng"
	"github.com/KirkDiggler/rpg-mapgen/internal/terrain"
)

// Config tunes the forest layout
type Config struct {
	MinClusters    int
	MaxClusters    int
	MinClusterIter int
	MaxClusterIter int
	// SpreadChance is the per-neighbor chance a tree spreads each iteration
	SpreadChance float64
	// TreeDensity is the chance a grown cluster cell actually holds trees
	TreeDensity float64

	MinPonds      int
	MaxPonds      int
	MinPondRadius int
	MaxPondRadius int

	StreamChance float64
	// WidenChance is the chance a stream cell also floods one neighbor
	WidenChance float64

	MinClearings      int
	MaxClearings      int
	MinClearingRadius int
	MaxClearingRadius int

	// GrassNearTrees applies when a tree lies within GrassReach cells
	GrassNearTrees float64
	GrassOpen      float64
	GrassReach     int

	// ConnectWidth is the corridor width used to rejoin sealed pockets
	ConnectWidth int
}

// DefaultConfig returns the standard tunables
func DefaultConfig() Config {
	return Config{
		MinClusters:       8,
		MaxClusters:       15,
		MinClusterIter:    3,
		MaxClusterIter:    6,
		SpreadChance:      0.6,
		TreeDensity:       0.7,
		MinPonds:          2,
		MaxPonds:          4,
		MinPondRadius:     2,
		MaxPondRadius:     4,
		StreamChance:      0.7,
		WidenChance:       0.3,
		MinClearings:      2,
		MaxClearings:      3,
		MinClearingRadius: 5,
		MaxClearingRadius: 8,
		GrassNearTrees:    0.2,
		GrassOpen:         0.05,
		GrassReach:        5,
		ConnectWidth:      1,
	}
}

// Generator builds forest maps
type Generator struct {
	Config Config
}

// New returns a forest generator with default tunables
func New() *Generator {
	return &Generator{Config: DefaultConfig()}
}

// Name returns the environment identifier
func (g *Generator) Name() string {
	return string(entities.EnvironmentForest)
}

// Generate builds a forest. Features are laid down in a fixed order since
// each reads the terrain the previous ones left: clusters, ponds, stream,
// clearings, grass.
func (g *Generator) Generate(src rng.Source, width, height int) *terrain.Grid {
	cfg := g.Config
	grid := terrain.New(width, height, entities.TileFloor)

	clusters := rng.Between(src, cfg.MinClusters, cfg.MaxClusters)
	for i := 0; i < clusters; i++ {
		seed := entities.Pt(rng.Between(src, 5, width-5), rng.Between(src, 5, height-5))
		iterations := rng.Between(src, cfg.MinClusterIter, cfg.MaxClusterIter)
		TreeCluster(grid, src, seed, iterations, cfg.SpreadChance, cfg.TreeDensity)
	}

	ponds := rng.Between(src, cfg.MinPonds, cfg.MaxPonds)
	for i := 0; i < ponds; i++ {
		center := entities.Pt(rng.Between(src, 10, width-10), rng.Between(src, 10, height-10))
		Pond(grid, src, center, rng.Between(src, cfg.MinPondRadius, cfg.MaxPondRadius))
	}

	stream := rng.Chance(src, cfg.StreamChance)
	if stream {
		start, end := streamEnds(src, width, height)
		Stream(grid, src, start, end, cfg.WidenChance)
	}

	clearings := rng.Between(src, cfg.MinClearings, cfg.MaxClearings)
	for i := 0; i < clearings; i++ {
		center := entities.Pt(rng.Between(src, 15, width-15), rng.Between(src, 15, height-15))
		Clearing(grid, center, rng.Between(src, cfg.MinClearingRadius, cfg.MaxClearingRadius))
	}

	Grass(grid, src, cfg.GrassReach, cfg.GrassNearTrees, cfg.GrassOpen)

	grid.AddBorderWalls()
	joined := terrain.EnsureConnected(grid, src, cfg.ConnectWidth, entities.TileFloor)
	grid.AddBorderWalls()

	slog.Debug("forest generated",
		"clusters", clusters,
		"ponds", ponds,
		"stream", stream,
		"clearings", clearings,
		"regions_joined", joined)
	return grid
}

// streamEnds picks a west to east or north to south crossing
func streamEnds(src rng.Source, width, height int) (entities.Point, entities.Point) {
	if rng.Coin(src) {
		start := entities.Pt(rng.Between(src, 1, 5), rng.Between(src, height/4, 3*height/4))
		end := entities.Pt(rng.Between(src, width-5, width-2), rng.Between(src, height/4, 3*height/4))
		return start, end
	}
	start := entities.Pt(rng.Between(src, width/4, 3*width/4), rng.Between(src, 1, 5))
	end := entities.Pt(rng.Between(src, width/4, 3*width/4), rng.Between(src, height-5, height-2))
	return start, end
}

// TreeCluster grows a cluster from seed for the given number of iterations.
// Each iteration every cluster cell may spread to each 8-neighbor with
// probability spread, staying one cell inside the border. Grown cells then
// become trees with probability density.
func TreeCluster(grid *terrain.Grid, src rng.Source, seed entities.Point, iterations int, spread, density float64) {
	members := mapset.New[entities.Point]()
	members.Put(seed)
	cells := []entities.Point{seed}

	for i := 0; i < iterations; i++ {
		var grown []entities.Point
		for _, c := range cells {
			for dx := -1; dx <= 1; dx++ {
				for dy := -1; dy <= 1; dy++ {
					if dx == 0 && dy == 0 {
						continue
					}
					n := c.Add(dx, dy)
					if members.Has(n) || !rng.Chance(src, spread) {
						continue
					}
					if !grid.InInterior(n.X, n.Y) {
						continue
					}
					members.Put(n)
					grown = append(grown, n)
				}
			}
		}
		cells = append(cells, grown...)
	}

	sort.Slice(cells, func(i, j int) bool { return cells[i].Less(cells[j]) })
	for _, c := range cells {
		if rng.Chance(src, density) {
			grid.Set(c.X, c.Y, entities.TileTrees)
		}
	}
}

// Pond floods every interior cell whose distance to center is within
// radius plus a per-cell jitter in [-0.5, 0.5)
func Pond(grid *terrain.Grid, src rng.Source, center entities.Point, radius int) {
	for y := center.Y - radius; y <= center.Y+radius; y++ {
		for x := center.X - radius; x <= center.X+radius; x++ {
			jitter := rng.Uniform(src, -0.5, 0.5)
			if distance(center, x, y) <= float64(radius)+jitter && grid.InInterior(x, y) {
				grid.Set(x, y, entities.TileWater)
			}
		}
	}
}

// Stream floods a drunk walk from start toward end. Each walked cell also
// floods one random 4-neighbor with probability widen.
func Stream(grid *terrain.Grid, src rng.Source, start, end entities.Point, widen float64) {
	for _, p := range terrain.DrunkWalk(grid, src, start, end) {
		grid.Set(p.X, p.Y, entities.TileWater)
		if rng.Chance(src, widen) {
			d := rng.Pick(src, entities.CardinalOffsets[:])
			grid.Set(p.X+d.X, p.Y+d.Y, entities.TileWater)
		}
	}
}

// Clearing resets every interior non-water cell within radius of center to floor
func Clearing(grid *terrain.Grid, center entities.Point, radius int) {
	for y := center.Y - radius; y <= center.Y+radius; y++ {
		for x := center.X - radius; x <= center.X+radius; x++ {
			if distance(center, x, y) > float64(radius) || !grid.InInterior(x, y) {
				continue
			}
			if grid.Get(x, y) != entities.TileWater {
				grid.Set(x, y, entities.TileFloor)
			}
		}
	}
}

// Grass turns interior floor cells to grass with probability near when a
// tree lies within reach cells (a (2*reach+1) square window), else open
func Grass(grid *terrain.Grid, src rng.Source, reach int, near, open float64) {
	for y := 1; y < grid.Height()-1; y++ {
		for x := 1; x < grid.Width()-1; x++ {
			if grid.Get(x, y) != entities.TileFloor {
				continue
			}
			p := open
			if treeWithin(grid, x, y, reach) {
				p = near
			}
			if rng.Chance(src, p) {
				grid.Set(x, y, entities.TileGrass)
			}
		}
	}
}

func treeWithin(grid *terrain.Grid, x, y, reach int) bool {
	for dy := -reach; dy <= reach; dy++ {
		for dx := -reach; dx <= reach; dx++ {
			if grid.Get(x+dx, y+dy) == entities.TileTrees {
				return true
			}
		}
	}
	return false
}

func distance(c entities.Point, x, y int) float64 {
	return math.Hypot(float64(x-c.X), float64(y-c.Y))
}
