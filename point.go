package vglite

// Point represents a 2D point or vector in path coordinates.
type Point struct {
	X, Y float32
}

// Pt is a convenience function to create a Point.
func Pt(x, y float32) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Lerp returns the point a fraction t of the way from p to q.
func (p Point) Lerp(q Point, t float32) Point {
	return Point{X: p.X + (q.X-p.X)*t, Y: p.Y + (q.Y-p.Y)*t}
}

// Reflect mirrors p through the center c.
func (p Point) Reflect(c Point) Point {
	return Point{X: 2*c.X - p.X, Y: 2*c.Y - p.Y}
}
