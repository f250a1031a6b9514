package graphicsstate

import (
	"github.com/pkg/errors"

	"github.com/tsawler/pdfvector/diag"
	"github.com/tsawler/pdfvector/model"
)

func registerPathOperators(d *Dispatcher) {
	d.Register("m", numbers(2, moveTo))
	d.Register("l", numbers(2, lineTo))
	d.Register("c", numbers(6, curveTo))
	d.Register("v", numbers(4, curveToReplicateInitialPoint))
	d.Register("y", numbers(4, curveToReplicateFinalPoint))
	d.Register("h", numbers(0, closePath))
	d.Register("re", numbers(4, rectangle))
}

// requireCurrentPoint returns the current point or ErrNoCurrentPoint.
func requireCurrentPoint(ctx *ExecutionContext) (model.Point, error) {
	p, ok := ctx.Stack.CurrentPoint()
	if !ok {
		return model.Point{}, errors.Wrap(diag.ErrNoCurrentPoint, "path segment needs a preceding m or re")
	}
	return p, nil
}

// moveTo handles m
func moveTo(ctx *ExecutionContext, args []float32) error {
	p := ctx.Stack.ToDeviceSpace(args[0], args[1])
	ctx.Sink().MoveTo(p.X, p.Y)
	ctx.State().beginSubpath(p)
	return nil
}

// lineTo handles l
func lineTo(ctx *ExecutionContext, args []float32) error {
	if _, err := requireCurrentPoint(ctx); err != nil {
		return err
	}
	p := ctx.Stack.ToDeviceSpace(args[0], args[1])
	ctx.Sink().LineTo(p.X, p.Y)
	ctx.State().SetCurrentPoint(p)
	return nil
}

// curveTo handles c
func curveTo(ctx *ExecutionContext, args []float32) error {
	if _, err := requireCurrentPoint(ctx); err != nil {
		return err
	}
	p1 := ctx.Stack.ToDeviceSpace(args[0], args[1])
	p2 := ctx.Stack.ToDeviceSpace(args[2], args[3])
	p3 := ctx.Stack.ToDeviceSpace(args[4], args[5])
	ctx.Sink().CurveTo(p1.X, p1.Y, p2.X, p2.Y, p3.X, p3.Y)
	ctx.State().SetCurrentPoint(p3)
	return nil
}

// curveToReplicateInitialPoint handles v. The current point is both the
// start and the first control point. It is already in device space.
func curveToReplicateInitialPoint(ctx *ExecutionContext, args []float32) error {
	p0, err := requireCurrentPoint(ctx)
	if err != nil {
		return err
	}
	p2 := ctx.Stack.ToDeviceSpace(args[0], args[1])
	p3 := ctx.Stack.ToDeviceSpace(args[2], args[3])
	ctx.Sink().CurveTo(p0.X, p0.Y, p2.X, p2.Y, p3.X, p3.Y)
	ctx.State().SetCurrentPoint(p3)
	return nil
}

// curveToReplicateFinalPoint handles y. The end point doubles as the second
// control point.
func curveToReplicateFinalPoint(ctx *ExecutionContext, args []float32) error {
	if _, err := requireCurrentPoint(ctx); err != nil {
		return err
	}
	p1 := ctx.Stack.ToDeviceSpace(args[0], args[1])
	p3 := ctx.Stack.ToDeviceSpace(args[2], args[3])
	ctx.Sink().CurveTo(p1.X, p1.Y, p3.X, p3.Y, p3.X, p3.Y)
	ctx.State().SetCurrentPoint(p3)
	return nil
}

// closePath handles h. The current point returns to the subpath start and
// stays defined.
func closePath(ctx *ExecutionContext, _ []float32) error {
	if _, err := requireCurrentPoint(ctx); err != nil {
		return err
	}
	ctx.Sink().Close()
	gs := ctx.State()
	gs.SetCurrentPoint(gs.SubpathStart())
	return nil
}

// rectangle handles re as m, three l and h. Each corner is mapped
// separately so rotated and sheared CTMs produce the right quadrilateral.
func rectangle(ctx *ExecutionContext, args []float32) error {
	x, y, w, h := args[0], args[1], args[2], args[3]
	p0 := ctx.Stack.ToDeviceSpace(x, y)
	p1 := ctx.Stack.ToDeviceSpace(x+w, y)
	p2 := ctx.Stack.ToDeviceSpace(x+w, y+h)
	p3 := ctx.Stack.ToDeviceSpace(x, y+h)

	sink := ctx.Sink()
	sink.MoveTo(p0.X, p0.Y)
	sink.LineTo(p1.X, p1.Y)
	sink.LineTo(p2.X, p2.Y)
	sink.LineTo(p3.X, p3.Y)
	sink.Close()

	ctx.State().beginSubpath(p0)
	return nil
}
