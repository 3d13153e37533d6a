package model

import "math"

// Point represents a 2D point
type Point struct {
	X, Y float64
}

// Distance calculates the Euclidean distance to another point
func (p Point) Distance(other Point) float64 {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// BBox is an axis-aligned rectangle given by its minimum and maximum
// corners.
type BBox struct {
	Min, Max Point
}

// BBoxOf returns the smallest box containing all points. The zero BBox
// is returned for no points.
func BBoxOf(points ...Point) BBox {
	if len(points) == 0 {
		return BBox{}
	}
	b := BBox{Min: points[0], Max: points[0]}
	for _, p := range points[1:] {
		b.Min.X = math.Min(b.Min.X, p.X)
		b.Min.Y = math.Min(b.Min.Y, p.Y)
		b.Max.X = math.Max(b.Max.X, p.X)
		b.Max.Y = math.Max(b.Max.Y, p.Y)
	}
	return b
}

// Width returns the horizontal extent
func (b BBox) Width() float64 {
	return b.Max.X - b.Min.X
}

// Height returns the vertical extent
func (b BBox) Height() float64 {
	return b.Max.Y - b.Min.Y
}

// Center returns the center point
func (b BBox) Center() Point {
	return Point{
		X: (b.Min.X + b.Max.X) / 2,
		Y: (b.Min.Y + b.Max.Y) / 2,
	}
}

// Contains checks if a point is inside the box, edges included
func (b BBox) Contains(p Point) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y
}

// Union returns the smallest box containing both boxes
func (b BBox) Union(other BBox) BBox {
	return BBoxOf(b.Min, b.Max, other.Min, other.Max)
}

// IsEmpty returns true if the box has zero area
func (b BBox) IsEmpty() bool {
	return b.Width() <= 0 || b.Height() <= 0
}
