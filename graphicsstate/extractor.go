package graphicsstate

import (
	"github.com/tsawler/pdfvector/model"
)

// ExtractedLine represents a stroked straight segment in device space
type ExtractedLine struct {
	Start model.Point
	End   model.Point

	// Device-space stroke width
	Width float32

	// Classification
	IsHorizontal bool
	IsVertical   bool

	BBox model.BBox
}

// Length returns the distance between the end points.
func (l ExtractedLine) Length() float32 {
	return l.Start.Distance(l.End)
}

// ExtractedRectangle represents a painted axis-aligned rectangle in device
// space
type ExtractedRectangle struct {
	BBox model.BBox

	StrokeWidth float32
	IsFilled    bool
	IsStroked   bool
}

// PathExtractor is a sink that classifies painted paths into lines and
// rectangles. Geometry arrives already in device space.
type PathExtractor struct {
	// Collected graphics elements
	Lines      []ExtractedLine
	Rectangles []ExtractedRectangle

	// Current path being constructed
	currentPath *Path

	// Tolerance for horizontal/vertical classification (in device units)
	AngleTolerance float32
}

// NewPathExtractor creates a new path extractor
func NewPathExtractor() *PathExtractor {
	return &PathExtractor{
		currentPath:    NewPath(),
		AngleTolerance: 0.5, // Allow 0.5 unit deviation for horizontal/vertical
	}
}

// MoveTo implements PathSink
func (pe *PathExtractor) MoveTo(x, y float32) {
	pe.currentPath.MoveTo(x, y)
}

// LineTo implements PathSink
func (pe *PathExtractor) LineTo(x, y float32) {
	pe.currentPath.LineTo(x, y)
}

// CurveTo implements PathSink
func (pe *PathExtractor) CurveTo(x1, y1, x2, y2, x3, y3 float32) {
	pe.currentPath.CurveTo(x1, y1, x2, y2, x3, y3)
}

// Close implements PathSink
func (pe *PathExtractor) Close() {
	pe.currentPath.Close()
}

// Paint classifies the finished path and starts a new one.
func (pe *PathExtractor) Paint(p Paint) {
	if p.Stroke || p.Fill {
		pe.extractFromPath(p)
	}
	pe.currentPath.Segments = nil
}

// extractFromPath extracts lines and rectangles from the current path
func (pe *PathExtractor) extractFromPath(p Paint) {
	if len(pe.currentPath.Segments) == 0 {
		return
	}

	if bbox, ok := pe.detectRectangle(); ok {
		rect := ExtractedRectangle{BBox: bbox, IsStroked: p.Stroke, IsFilled: p.Fill}
		if p.Stroke {
			rect.StrokeWidth = p.DeviceLineWidth()
		}
		pe.Rectangles = append(pe.Rectangles, rect)
		return
	}

	// Individual segments only count when stroked
	if p.Stroke {
		pe.extractLineSegments(p.DeviceLineWidth())
	}
}

// detectRectangle checks if the current path is a single four-sided
// subpath with right angles
func (pe *PathExtractor) detectRectangle() (model.BBox, bool) {
	segments := pe.currentPath.Segments
	if len(segments) < 4 || segments[0].Type != PathMoveTo {
		return model.BBox{}, false
	}

	corners := []model.Point{segments[0].Points[0]}
	for _, seg := range segments[1:] {
		switch seg.Type {
		case PathLineTo:
			corners = append(corners, seg.Points[0])
		case PathClosePath:
		default:
			// Curves and second subpaths are not simple rectangles
			return model.BBox{}, false
		}
	}

	if len(corners) < 4 || len(corners) > 5 {
		return model.BBox{}, false
	}

	// If 5 corners, the last should be same as first (closed path)
	if len(corners) == 5 {
		if !pointsEqual(corners[0], corners[4], 0.1) {
			return model.BBox{}, false
		}
		corners = corners[:4]
	}

	if !isRectangle(corners, pe.AngleTolerance) {
		return model.BBox{}, false
	}

	return model.BBoxOf(corners...), true
}

// extractLineSegments extracts line segments from the path
func (pe *PathExtractor) extractLineSegments(width float32) {
	var currentPoint, subpathStart model.Point

	for _, seg := range pe.currentPath.Segments {
		switch seg.Type {
		case PathMoveTo:
			currentPoint = seg.Points[0]
			subpathStart = currentPoint

		case PathLineTo:
			endPoint := seg.Points[0]
			pe.Lines = append(pe.Lines, pe.createLine(currentPoint, endPoint, width))
			currentPoint = endPoint

		case PathCurveTo:
			// Chord approximation
			endPoint := seg.Points[2]
			pe.Lines = append(pe.Lines, pe.createLine(currentPoint, endPoint, width))
			currentPoint = endPoint

		case PathClosePath:
			if !pointsEqual(currentPoint, subpathStart, 0.1) {
				pe.Lines = append(pe.Lines, pe.createLine(currentPoint, subpathStart, width))
			}
			currentPoint = subpathStart
		}
	}
}

// createLine creates an ExtractedLine from two device-space points
func (pe *PathExtractor) createLine(start, end model.Point, width float32) ExtractedLine {
	dx := end.X - start.X
	dy := end.Y - start.Y

	return ExtractedLine{
		Start:        start,
		End:          end,
		Width:        width,
		IsHorizontal: abs32(dy) < pe.AngleTolerance,
		IsVertical:   abs32(dx) < pe.AngleTolerance,
		BBox:         model.NewBBoxFromPoints(start, end),
	}
}

// Helper functions

// pointsEqual checks if two points are approximately equal
func pointsEqual(a, b model.Point, tolerance float32) bool {
	return abs32(a.X-b.X) < tolerance && abs32(a.Y-b.Y) < tolerance
}

// isRectangle checks if four points form a rectangle by testing each
// corner for a right angle
func isRectangle(corners []model.Point, tolerance float32) bool {
	if len(corners) != 4 {
		return false
	}

	for i := 0; i < 4; i++ {
		p0 := corners[i]
		p1 := corners[(i+1)%4]
		p2 := corners[(i+2)%4]

		v1 := model.Point{X: p1.X - p0.X, Y: p1.Y - p0.Y}
		v2 := model.Point{X: p2.X - p1.X, Y: p2.Y - p1.Y}

		len1 := v1.Distance(model.Point{})
		len2 := v2.Distance(model.Point{})
		if len1 < tolerance || len2 < tolerance {
			continue // Degenerate case
		}

		// Cosine of the corner angle; ~0 for 90 degrees
		cosAngle := (v1.X*v2.X + v1.Y*v2.Y) / (len1 * len2)
		if abs32(cosAngle) > 0.1 {
			return false
		}
	}

	return true
}

func abs32(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

// GetHorizontalLines returns only horizontal lines
func (pe *PathExtractor) GetHorizontalLines() []ExtractedLine {
	var result []ExtractedLine
	for _, line := range pe.Lines {
		if line.IsHorizontal {
			result = append(result, line)
		}
	}
	return result
}

// GetVerticalLines returns only vertical lines
func (pe *PathExtractor) GetVerticalLines() []ExtractedLine {
	var result []ExtractedLine
	for _, line := range pe.Lines {
		if line.IsVertical {
			result = append(result, line)
		}
	}
	return result
}

// Clear clears all extracted elements and the current path
func (pe *PathExtractor) Clear() {
	pe.Lines = nil
	pe.Rectangles = nil
	pe.currentPath.Segments = nil
}

// FilterLinesByLength filters lines by minimum length
func (pe *PathExtractor) FilterLinesByLength(minLength float32) []ExtractedLine {
	var result []ExtractedLine
	for _, line := range pe.Lines {
		if line.Length() >= minLength {
			result = append(result, line)
		}
	}
	return result
}

// FilterRectanglesBySize filters rectangles by minimum dimensions
func (pe *PathExtractor) FilterRectanglesBySize(minWidth, minHeight float32) []ExtractedRectangle {
	var result []ExtractedRectangle
	for _, rect := range pe.Rectangles {
		if rect.BBox.Width >= minWidth && rect.BBox.Height >= minHeight {
			result = append(result, rect)
		}
	}
	return result
}
