package graphicsstate

import (
	"math"

	"github.com/tsawler/pdfvector/model"
)

// PathSink receives path construction in device space. The interpreter
// calls it and never inspects what it builds.
type PathSink interface {
	MoveTo(x, y float32)
	LineTo(x, y float32)
	CurveTo(x1, y1, x2, y2, x3, y3 float32)
	Close()
}

// Painter is implemented by sinks that want to know when the path under
// construction is painted or discarded. After Paint the sink starts a new
// path.
type Painter interface {
	Paint(p Paint)
}

// FillRule selects how the inside of a path is determined.
type FillRule int

const (
	// NonZero is the nonzero winding number rule (f, B, b, W)
	NonZero FillRule = iota
	// EvenOdd is the even-odd rule (f*, B*, b*, W*)
	EvenOdd
)

func (r FillRule) String() string {
	if r == EvenOdd {
		return "evenodd"
	}
	return "nonzero"
}

// Paint describes one path-painting operator.
type Paint struct {
	Operator string
	Stroke   bool
	Fill     bool
	Rule     FillRule

	// Clip is set when W or W* preceded the painting operator.
	Clip     bool
	ClipRule FillRule

	// Stroke parameters at the time of painting, in user space.
	LineWidth float32
	LineCap   int
	LineJoin  int
	Dash      DashPattern

	CTM model.Matrix
}

// DeviceLineWidth approximates the stroke width in device space. A zero
// width means the thinnest line the device can draw, reported as 1.
func (p Paint) DeviceLineWidth() float32 {
	scale := float32(math.Sqrt(math.Abs(float64(p.CTM.Determinant()))))
	w := p.LineWidth * scale
	if w < 1 {
		return 1
	}
	return w
}

type tee []PathSink

// Tee returns a sink that forwards every call to each of sinks in order.
// Paint events reach the sinks that implement Painter.
func Tee(sinks ...PathSink) PathSink {
	return tee(sinks)
}

func (t tee) MoveTo(x, y float32) {
	for _, s := range t {
		s.MoveTo(x, y)
	}
}

func (t tee) LineTo(x, y float32) {
	for _, s := range t {
		s.LineTo(x, y)
	}
}

func (t tee) CurveTo(x1, y1, x2, y2, x3, y3 float32) {
	for _, s := range t {
		s.CurveTo(x1, y1, x2, y2, x3, y3)
	}
}

func (t tee) Close() {
	for _, s := range t {
		s.Close()
	}
}

func (t tee) Paint(p Paint) {
	for _, s := range t {
		if painter, ok := s.(Painter); ok {
			painter.Paint(p)
		}
	}
}

type discard struct{}

func (discard) MoveTo(x, y float32)                    {}
func (discard) LineTo(x, y float32)                    {}
func (discard) CurveTo(x1, y1, x2, y2, x3, y3 float32) {}
func (discard) Close()                                 {}

// Discard is a sink that drops everything.
var Discard PathSink = discard{}
