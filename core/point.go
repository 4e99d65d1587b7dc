package core

// Point represents a 2D grid cell
type Point struct {
	X, Y int
}

// Add returns p offset by one step in d
func (p Point) Add(d Direction) Point {
	dx, dy := d.Delta()
	return Point{X: p.X + dx, Y: p.Y + dy}
}
