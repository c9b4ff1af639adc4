package entities

import "github.com/KirkDiggler/rpg-toolkit/tools/spatial"

// Point is a grid coordinate
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Pt is shorthand for Point{X: x, Y: y}
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Spatial returns p as a position on a spatial square grid
func (p Point) Spatial() spatial.Position {
	return spatial.Position{X: float64(p.X), Y: float64(p.Y)}
}

// Add returns p offset by (dx, dy)
func (p Point) Add(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Manhattan returns the 4-directional step distance between p and o
func (p Point) Manhattan(o Point) int {
	return abs(p.X-o.X) + abs(p.Y-o.Y)
}

// Chebyshev returns the 8-directional step distance between p and o
func (p Point) Chebyshev(o Point) int {
	return max(abs(p.X-o.X), abs(p.Y-o.Y))
}

// Less orders points row-major (y, then x)
func (p Point) Less(o Point) bool {
	if p.Y != o.Y {
		return p.Y < o.Y
	}
	return p.X < o.X
}

// CardinalOffsets are the 4-directional neighbor offsets
var CardinalOffsets = [4]Point{{X: -1, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: -1}, {X: 0, Y: 1}}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
