package terrain

import (
	"sort"

	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/stack"

	"github.com/KirkDiggler/rpg-mapgen/internal/entities"
	"github.com/KirkDiggler/rpg-mapgen/internal/pkg/rng"
)

// Region is a maximal 4-connected set of non-blocked cells, sorted row-major
type Region []entities.Point

// FloodFill returns every cell reachable from (x0, y0) through non-blocked
// cells using 4-directional steps. The result is empty when the start is
// blocked or off the grid.
func FloodFill(g *Grid, x0, y0 int) Region {
	visited := mapset.New[entities.Point]()
	return floodFill(g, entities.Pt(x0, y0), visited)
}

// floodFill marks everything it reaches in visited so callers can share one
// set across several fills.
func floodFill(g *Grid, start entities.Point, visited mapset.Set[entities.Point]) Region {
	if g.IsBlocked(start.X, start.Y) || visited.Has(start) {
		return nil
	}

	var region Region
	pending := stack.New[entities.Point]()
	pending.Push(start)
	visited.Put(start)

	for pending.Size() > 0 {
		p := pending.Pop()
		region = append(region, p)

		for _, d := range entities.CardinalOffsets {
			n := p.Add(d.X, d.Y)
			if visited.Has(n) || g.IsBlocked(n.X, n.Y) {
				continue
			}
			visited.Put(n)
			pending.Push(n)
		}
	}

	sort.Slice(region, func(i, j int) bool { return region[i].Less(region[j]) })
	return region
}

// Regions partitions the non-blocked cells into connected regions. Regions
// are returned in the order their first cell appears in a row-major scan.
func Regions(g *Grid) []Region {
	visited := mapset.New[entities.Point]()
	var regions []Region

	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			if r := floodFill(g, entities.Pt(x, y), visited); len(r) > 0 {
				regions = append(regions, r)
			}
		}
	}
	return regions
}

// IsConnected reports whether the non-blocked cells form at most one region
func IsConnected(g *Grid) bool {
	return len(Regions(g)) <= 1
}

// largest returns the index of the biggest region; the earliest wins ties
func largest(regions []Region) int {
	best := 0
	for i, r := range regions {
		if len(r) > len(regions[best]) {
			best = i
		}
	}
	return best
}

// closestPair finds the Manhattan-closest cells between a and b by scanning
// every pair. The first pair found at the minimum distance wins.
func closestPair(a, b Region) (entities.Point, entities.Point) {
	bestA, bestB := a[0], b[0]
	bestDist := bestA.Manhattan(bestB)
	for _, pa := range a {
		for _, pb := range b {
			if d := pa.Manhattan(pb); d < bestDist {
				bestA, bestB, bestDist = pa, pb, d
				if d == 1 {
					return bestA, bestB
				}
			}
		}
	}
	return bestA, bestB
}

// EnsureConnected joins every region to the largest one by carving a
// corridor of the given width and tile kind between the closest pair of
// cells. It returns the number of regions that were joined.
func EnsureConnected(g *Grid, src rng.Source, width int, kind entities.TileKind) int {
	regions := Regions(g)
	if len(regions) <= 1 {
		return 0
	}

	mainIdx := largest(regions)
	main := regions[mainIdx]

	joined := 0
	for i, region := range regions {
		if i == mainIdx {
			continue
		}
		from, to := closestPair(region, main)
		CarveCorridor(g, src, from.X, from.Y, to.X, to.Y, width, kind)
		joined++
	}
	return joined
}
