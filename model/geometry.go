package model

import "math"

// Point represents a 2D point
type Point struct {
	X, Y float32
}

// Distance calculates the Euclidean distance to another point
func (p Point) Distance(other Point) float32 {
	dx := float64(p.X - other.X)
	dy := float64(p.Y - other.Y)
	return float32(math.Sqrt(dx*dx + dy*dy))
}

// BBox represents a bounding box (rectangle)
type BBox struct {
	X      float32 // Left
	Y      float32 // Bottom (PDF coordinate system)
	Width  float32
	Height float32
}

// NewBBox creates a bounding box from coordinates
func NewBBox(x, y, width, height float32) BBox {
	return BBox{X: x, Y: y, Width: width, Height: height}
}

// NewBBoxFromPoints creates a bounding box from two points
func NewBBoxFromPoints(p1, p2 Point) BBox {
	x := min32(p1.X, p2.X)
	y := min32(p1.Y, p2.Y)
	return BBox{X: x, Y: y, Width: abs32(p2.X - p1.X), Height: abs32(p2.Y - p1.Y)}
}

// BBoxOf returns the smallest box containing every point. The zero box is
// returned for an empty slice.
func BBoxOf(points ...Point) BBox {
	if len(points) == 0 {
		return BBox{}
	}

	minX, maxX := points[0].X, points[0].X
	minY, maxY := points[0].Y, points[0].Y
	for _, p := range points[1:] {
		minX = min32(minX, p.X)
		maxX = max32(maxX, p.X)
		minY = min32(minY, p.Y)
		maxY = max32(maxY, p.Y)
	}

	return BBox{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// Left returns the left edge X coordinate
func (b BBox) Left() float32 {
	return b.X
}

// Right returns the right edge X coordinate
func (b BBox) Right() float32 {
	return b.X + b.Width
}

// Bottom returns the bottom edge Y coordinate
func (b BBox) Bottom() float32 {
	return b.Y
}

// Top returns the top edge Y coordinate
func (b BBox) Top() float32 {
	return b.Y + b.Height
}

// Corners returns the four corners, counter-clockwise from the bottom left.
func (b BBox) Corners() [4]Point {
	return [4]Point{
		{X: b.Left(), Y: b.Bottom()},
		{X: b.Right(), Y: b.Bottom()},
		{X: b.Right(), Y: b.Top()},
		{X: b.Left(), Y: b.Top()},
	}
}

// Contains checks if a point is inside the bounding box
func (b BBox) Contains(p Point) bool {
	return p.X >= b.Left() && p.X <= b.Right() &&
		p.Y >= b.Bottom() && p.Y <= b.Top()
}

// Union returns the union of two bounding boxes
func (b BBox) Union(other BBox) BBox {
	x := min32(b.Left(), other.Left())
	y := min32(b.Bottom(), other.Bottom())
	right := max32(b.Right(), other.Right())
	top := max32(b.Top(), other.Top())

	return BBox{
		X:      x,
		Y:      y,
		Width:  right - x,
		Height: top - y,
	}
}

// Transform maps the box through m and returns the axis-aligned box around
// the four transformed corners.
func (b BBox) Transform(m Matrix) BBox {
	c := b.Corners()
	for i := range c {
		c[i] = m.Transform(c[i])
	}
	return BBoxOf(c[:]...)
}

// Area returns the area of the bounding box
func (b BBox) Area() float32 {
	return b.Width * b.Height
}

// IsEmpty returns true if the bounding box has zero area
func (b BBox) IsEmpty() bool {
	return b.Width <= 0 || b.Height <= 0
}

func min32(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func max32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

func abs32(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
