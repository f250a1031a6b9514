package graphicsstate

import (
	"github.com/tsawler/pdfvector/model"
)

// PathSegmentType defines the type of path segment
type PathSegmentType int

const (
	// PathMoveTo starts a new subpath
	PathMoveTo PathSegmentType = iota
	// PathLineTo draws a line to a point
	PathLineTo
	// PathCurveTo draws a cubic Bézier curve
	PathCurveTo
	// PathClosePath closes the current subpath
	PathClosePath
)

func (t PathSegmentType) String() string {
	switch t {
	case PathMoveTo:
		return "MoveTo"
	case PathLineTo:
		return "LineTo"
	case PathCurveTo:
		return "CurveTo"
	case PathClosePath:
		return "ClosePath"
	default:
		return "Unknown"
	}
}

// PathSegment represents a single segment of a path
type PathSegment struct {
	Type PathSegmentType

	// For MoveTo and LineTo: single point
	// For CurveTo: control point 1, control point 2, end point
	Points []model.Point
}

// PaintedPath is a completed path together with how it was painted.
type PaintedPath struct {
	Segments []PathSegment
	Paint    Paint
}

// Path records device-space geometry. It implements PathSink and Painter:
// construction calls append to Segments, and a paint event moves them into
// Painted.
type Path struct {
	// Segments is the path under construction
	Segments []PathSegment

	// Painted holds every path handed to a painting operator, in order.
	// Paths ended with n are dropped unless they clip.
	Painted []PaintedPath
}

// NewPath creates a new empty path
func NewPath() *Path {
	return &Path{}
}

// MoveTo starts a new subpath at the specified point
func (p *Path) MoveTo(x, y float32) {
	p.Segments = append(p.Segments, PathSegment{
		Type:   PathMoveTo,
		Points: []model.Point{{X: x, Y: y}},
	})
}

// LineTo appends a line segment to (x, y)
func (p *Path) LineTo(x, y float32) {
	p.Segments = append(p.Segments, PathSegment{
		Type:   PathLineTo,
		Points: []model.Point{{X: x, Y: y}},
	})
}

// CurveTo appends a cubic Bézier curve
// Control points (x1, y1) and (x2, y2), end point (x3, y3)
func (p *Path) CurveTo(x1, y1, x2, y2, x3, y3 float32) {
	p.Segments = append(p.Segments, PathSegment{
		Type: PathCurveTo,
		Points: []model.Point{
			{X: x1, Y: y1},
			{X: x2, Y: y2},
			{X: x3, Y: y3},
		},
	})
}

// Close closes the current subpath
func (p *Path) Close() {
	p.Segments = append(p.Segments, PathSegment{Type: PathClosePath})
}

// Paint completes the path under construction.
func (p *Path) Paint(paint Paint) {
	if len(p.Segments) > 0 && (paint.Stroke || paint.Fill || paint.Clip) {
		p.Painted = append(p.Painted, PaintedPath{Segments: p.Segments, Paint: paint})
	}
	p.Segments = nil
}

// Clear resets the path
func (p *Path) Clear() {
	p.Segments = nil
	p.Painted = nil
}

// IsEmpty returns true if nothing has been recorded
func (p *Path) IsEmpty() bool {
	return len(p.Segments) == 0 && len(p.Painted) == 0
}

// SegmentCount returns the number of segments painted plus those pending.
func (p *Path) SegmentCount() int {
	n := len(p.Segments)
	for _, pp := range p.Painted {
		n += len(pp.Segments)
	}
	return n
}

// Bounds returns the box around every recorded point, painted or pending.
// Curve control points are included, so the box may be loose for curves.
func (p *Path) Bounds() model.BBox {
	var pts []model.Point
	for _, pp := range p.Painted {
		pts = appendPoints(pts, pp.Segments)
	}
	pts = appendPoints(pts, p.Segments)
	return model.BBoxOf(pts...)
}

func appendPoints(dst []model.Point, segs []PathSegment) []model.Point {
	for _, s := range segs {
		dst = append(dst, s.Points...)
	}
	return dst
}
