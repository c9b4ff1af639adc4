// Package terrain holds the mutable tile buffer every generator carves into,
// along with the connectivity analysis and corridor carving shared by them.
package terrain

import (
	"strings"

	"github.com/KirkDiggler/rpg-mapgen/internal/entities"
)

// Grid is a width x height buffer of tile kinds stored row-major.
// Out-of-bounds reads return TileWall and out-of-bounds writes are ignored.
type Grid struct {
	width  int
	height int
	cells  []entities.TileKind
}

// New returns a grid with every cell set to fill. Non-positive dimensions
// produce an empty grid where every read is a wall.
func New(width, height int, fill entities.TileKind) *Grid {
	width = max(width, 0)
	height = max(height, 0)
	g := &Grid{
		width:  width,
		height: height,
		cells:  make([]entities.TileKind, width*height),
	}
	g.Fill(fill)
	return g
}

// Width returns the number of columns
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows
func (g *Grid) Height() int { return g.height }

// InBounds reports whether (x, y) is a cell of the grid
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.width && y < g.height
}

// InInterior reports whether (x, y) is in bounds and off the outer ring
func (g *Grid) InInterior(x, y int) bool {
	return x > 0 && y > 0 && x < g.width-1 && y < g.height-1
}

// Get returns the tile at (x, y), or TileWall outside the grid
func (g *Grid) Get(x, y int) entities.TileKind {
	if !g.InBounds(x, y) {
		return entities.TileWall
	}
	return g.cells[y*g.width+x]
}

// Set writes kind at (x, y); a no-op outside the grid
func (g *Grid) Set(x, y int, kind entities.TileKind) {
	if !g.InBounds(x, y) {
		return
	}
	g.cells[y*g.width+x] = kind
}

// IsBlocked reports whether (x, y) holds wall, water or trees.
// Off-grid cells are walls and so are blocked.
func (g *Grid) IsBlocked(x, y int) bool {
	return g.Get(x, y).Blocks()
}

// Fill sets every cell to kind
func (g *Grid) Fill(kind entities.TileKind) {
	for i := range g.cells {
		g.cells[i] = kind
	}
}

// FillRect sets every in-bounds cell of r to kind
func (g *Grid) FillRect(r entities.Room, kind entities.TileKind) {
	for y := r.Y; y < r.Y+r.Height; y++ {
		for x := r.X; x < r.X+r.Width; x++ {
			g.Set(x, y, kind)
		}
	}
}

// AddBorderWalls forces the outermost ring to wall
func (g *Grid) AddBorderWalls() {
	for x := 0; x < g.width; x++ {
		g.Set(x, 0, entities.TileWall)
		g.Set(x, g.height-1, entities.TileWall)
	}
	for y := 0; y < g.height; y++ {
		g.Set(0, y, entities.TileWall)
		g.Set(g.width-1, y, entities.TileWall)
	}
}

// Clone returns an independent copy
func (g *Grid) Clone() *Grid {
	out := &Grid{
		width:  g.width,
		height: g.height,
		cells:  make([]entities.TileKind, len(g.cells)),
	}
	copy(out.cells, g.cells)
	return out
}

// Each calls fn for every cell in row-major order
func (g *Grid) Each(fn func(x, y int, kind entities.TileKind)) {
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			fn(x, y, g.cells[y*g.width+x])
		}
	}
}

// Count returns how many cells hold kind
func (g *Grid) Count(kind entities.TileKind) int {
	n := 0
	for _, k := range g.cells {
		if k == kind {
			n++
		}
	}
	return n
}

// OpenInteriorCells returns every non-blocked cell off the outer ring, row-major
func (g *Grid) OpenInteriorCells() []entities.Point {
	var out []entities.Point
	for y := 1; y < g.height-1; y++ {
		for x := 1; x < g.width-1; x++ {
			if !g.IsBlocked(x, y) {
				out = append(out, entities.Pt(x, y))
			}
		}
	}
	return out
}

// Rows returns the grid as one glyph string per row
func (g *Grid) Rows() []string {
	rows := make([]string, g.height)
	var b strings.Builder
	for y := 0; y < g.height; y++ {
		b.Reset()
		for x := 0; x < g.width; x++ {
			b.WriteRune(g.cells[y*g.width+x].Glyph())
		}
		rows[y] = b.String()
	}
	return rows
}

// String renders the grid as newline separated glyph rows
func (g *Grid) String() string {
	return strings.Join(g.Rows(), "\n")
}
