package terrain

import (
	"github.com/KirkDiggler/rpg-mapgen/internal/entities"
	"github.com/KirkDiggler/rpg-mapgen/internal/pkg/rng"
)

// CarveCorridor carves an L-shaped corridor from (x1, y1) to (x2, y2).
// A coin picks horizontal-then-vertical or vertical-then-horizontal. Each
// leg is widened by width cells toward +x or +y; widths below 1 carve a
// single cell.
func CarveCorridor(g *Grid, src rng.Source, x1, y1, x2, y2, width int, kind entities.TileKind) {
	width = max(width, 1)

	if rng.Coin(src) {
		carveHorizontal(g, x1, x2, y1, width, kind)
		carveVertical(g, y1, y2, x2, width, kind)
		return
	}
	carveVertical(g, y1, y2, x1, width, kind)
	carveHorizontal(g, x1, x2, y2, width, kind)
}

func carveHorizontal(g *Grid, x1, x2, y, width int, kind entities.TileKind) {
	for x := min(x1, x2); x <= max(x1, x2); x++ {
		for w := 0; w < width; w++ {
			g.Set(x, y+w, kind)
		}
	}
}

func carveVertical(g *Grid, y1, y2, x, width int, kind entities.TileKind) {
	for y := min(y1, y2); y <= max(y1, y2); y++ {
		for w := 0; w < width; w++ {
			g.Set(x+w, y, kind)
		}
	}
}
