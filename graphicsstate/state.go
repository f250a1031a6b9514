package graphicsstate

import (
	"github.com/tsawler/pdfvector/model"
)

// DashPattern is the line dash array and phase set by the d operator.
type DashPattern struct {
	Array []float32
	Phase float32
}

// IsSolid reports whether the pattern draws an unbroken line.
func (d DashPattern) IsSolid() bool {
	return len(d.Array) == 0
}

func (d DashPattern) clone() DashPattern {
	if d.Array == nil {
		return d
	}
	arr := make([]float32, len(d.Array))
	copy(arr, d.Array)
	return DashPattern{Array: arr, Phase: d.Phase}
}

// GraphicsState is one frame of the graphics state stack.
type GraphicsState struct {
	// Current Transformation Matrix
	CTM model.Matrix

	// Line attributes
	LineWidth  float32
	LineCap    int
	LineJoin   int
	MiterLimit float32
	Dash       DashPattern

	RenderingIntent string
	Flatness        float32

	// Name of the last ExtGState resource applied with gs.
	ExtGState string

	// Current point and subpath start, both in device space.
	currentPoint    model.Point
	subpathStart    model.Point
	hasCurrentPoint bool

	// Path under construction. Shared by every frame of one interpretation.
	Path PathSink
}

// NewGraphicsState creates a new graphics state with default values
func NewGraphicsState(ctm model.Matrix, path PathSink) *GraphicsState {
	if path == nil {
		path = Discard
	}
	return &GraphicsState{
		CTM:        ctm,
		LineWidth:  1.0,
		MiterLimit: 10.0,
		Flatness:   1.0,
		Path:       path,
	}
}

// Clone copies the frame. The CTM, current point and dash array are copied;
// the path is shared.
func (gs *GraphicsState) Clone() *GraphicsState {
	clone := *gs
	clone.Dash = gs.Dash.clone()
	return &clone
}

// CurrentPoint returns the current point in device space and whether one is
// defined.
func (gs *GraphicsState) CurrentPoint() (model.Point, bool) {
	return gs.currentPoint, gs.hasCurrentPoint
}

// SubpathStart returns the device-space start of the current subpath.
func (gs *GraphicsState) SubpathStart() model.Point {
	return gs.subpathStart
}

// SetCurrentPoint sets the current point in device space.
func (gs *GraphicsState) SetCurrentPoint(p model.Point) {
	gs.currentPoint = p
	gs.hasCurrentPoint = true
}

// beginSubpath sets both the current point and the subpath start.
func (gs *GraphicsState) beginSubpath(p model.Point) {
	gs.SetCurrentPoint(p)
	gs.subpathStart = p
}

// ClearCurrentPoint leaves the frame with no current point.
func (gs *GraphicsState) ClearCurrentPoint() {
	gs.currentPoint = model.Point{}
	gs.subpathStart = model.Point{}
	gs.hasCurrentPoint = false
}
