package entities

// Room is an axis-aligned rectangle of floor carved by the dungeon generators
type Room struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Center returns the room's center cell (integer division)
func (r Room) Center() Point {
	return Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Intersects reports whether the two rooms overlap once either is grown by buffer cells
func (r Room) Intersects(o Room, buffer int) bool {
	return !(r.X+r.Width+buffer <= o.X ||
		o.X+o.Width+buffer <= r.X ||
		r.Y+r.Height+buffer <= o.Y ||
		o.Y+o.Height+buffer <= r.Y)
}

// Contains reports whether p lies inside the rectangle
func (r Room) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.Width && p.Y >= r.Y && p.Y < r.Y+r.Height
}

// Expand returns the rectangle grown by n cells on every side
func (r Room) Expand(n int) Room {
	return Room{X: r.X - n, Y: r.Y - n, Width: r.Width + 2*n, Height: r.Height + 2*n}
}
