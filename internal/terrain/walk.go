package terrain

import (
	"github.com/KirkDiggler/rpg-mapgen/internal/entities"
	"github.com/KirkDiggler/rpg-mapgen/internal/pkg/rng"
)

// WalkBias is the chance a drunk walk steps toward its target
const WalkBias = 0.7

// DrunkWalk returns the cells visited by a target-biased random walk from
// start to end, start included. Each step moves toward the target with
// probability WalkBias, otherwise it takes a random step in each axis. The
// walker stays one cell inside the border and stops within Chebyshev
// distance 1 of the target or after 2*width steps.
func DrunkWalk(g *Grid, src rng.Source, start, end entities.Point) []entities.Point {
	cur := clampInterior(g, start)
	path := []entities.Point{cur}

	for step := 0; step < 2*g.Width(); step++ {
		if cur.Chebyshev(end) <= 1 {
			break
		}

		if rng.Chance(src, WalkBias) {
			cur = stepToward(src, cur, end)
		} else {
			cur = cur.Add(rng.Step(src), rng.Step(src))
		}
		cur = clampInterior(g, cur)
		path = append(path, cur)
	}
	return path
}

func stepToward(src rng.Source, cur, target entities.Point) entities.Point {
	dx := sign(target.X - cur.X)
	dy := sign(target.Y - cur.Y)

	switch {
	case dx != 0 && dy != 0:
		if rng.Coin(src) {
			return cur.Add(dx, 0)
		}
		return cur.Add(0, dy)
	case dx != 0:
		return cur.Add(dx, 0)
	default:
		return cur.Add(0, dy)
	}
}

func clampInterior(g *Grid, p entities.Point) entities.Point {
	return entities.Pt(
		max(1, min(p.X, g.Width()-2)),
		max(1, min(p.Y, g.Height()-2)),
	)
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
