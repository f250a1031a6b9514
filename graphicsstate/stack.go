package graphicsstate

import (
	"github.com/tsawler/pdfvector/diag"
	"github.com/tsawler/pdfvector/model"
)

// Stack is the q/Q save/restore stack. It always holds at least the base
// frame.
type Stack struct {
	frames []*GraphicsState
}

// NewStack returns a stack whose base frame is base.
func NewStack(base *GraphicsState) *Stack {
	return &Stack{frames: []*GraphicsState{base}}
}

// Current returns the active frame.
func (s *Stack) Current() *GraphicsState {
	return s.frames[len(s.frames)-1]
}

// Depth returns the number of frames, 1 for a stack holding only the base.
func (s *Stack) Depth() int {
	return len(s.frames)
}

// Push clones the active frame and activates the clone (q operator).
func (s *Stack) Push() *GraphicsState {
	gs := s.Current().Clone()
	s.frames = append(s.frames, gs)
	return gs
}

// Pop discards the active frame and reactivates its predecessor (Q operator).
// The current point follows the shared path across the pop. On the base
// frame Pop does nothing and returns diag.ErrStackUnderflow.
func (s *Stack) Pop() error {
	n := len(s.frames)
	if n == 1 {
		return diag.ErrStackUnderflow
	}

	popped := s.frames[n-1]
	s.frames[n-1] = nil
	s.frames = s.frames[:n-1]

	restored := s.Current()
	restored.currentPoint = popped.currentPoint
	restored.subpathStart = popped.subpathStart
	restored.hasCurrentPoint = popped.hasCurrentPoint
	return nil
}

// CurrentCTM returns the active CTM.
func (s *Stack) CurrentCTM() model.Matrix {
	return s.Current().CTM
}

// SetCTM replaces the active CTM.
func (s *Stack) SetCTM(m model.Matrix) {
	s.Current().CTM = m
}

// ConcatenateCTM applies cm: the new CTM is delta · CTM.
func (s *Stack) ConcatenateCTM(delta model.Matrix) {
	s.Current().CTM.Concatenate(delta)
}

// CurrentPoint returns the active frame's current point in device space.
func (s *Stack) CurrentPoint() (model.Point, bool) {
	return s.Current().CurrentPoint()
}

// SetCurrentPoint sets the active frame's current point, in device space.
func (s *Stack) SetCurrentPoint(x, y float32) {
	s.Current().SetCurrentPoint(model.Point{X: x, Y: y})
}

// ToDeviceSpace maps a point from the content stream's local space through
// the active CTM. Every path construction operator goes through here.
func (s *Stack) ToDeviceSpace(x, y float32) model.Point {
	dx, dy := s.CurrentCTM().TransformPoint(x, y)
	return model.Point{X: dx, Y: dy}
}
