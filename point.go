package softras

import "image"

// Point is an integer pixel coordinate. There is no sub-pixel precision.
type Point struct {
	X, Y int
}

// Pt is a convenience function to create a Point.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// ImagePoint converts p to an image.Point.
func (p Point) ImagePoint() image.Point {
	return image.Point{X: p.X, Y: p.Y}
}
