package graphicsstate

import "github.com/tsawler/pdfvector/core"

func registerPaintOperators(d *Dispatcher) {
	d.Register("S", painter("S", false, true, false, NonZero))
	d.Register("s", painter("s", true, true, false, NonZero))
	d.Register("f", painter("f", false, false, true, NonZero))
	d.Register("F", painter("F", false, false, true, NonZero))
	d.Register("f*", painter("f*", false, false, true, EvenOdd))
	d.Register("B", painter("B", false, true, true, NonZero))
	d.Register("B*", painter("B*", false, true, true, EvenOdd))
	d.Register("b", painter("b", true, true, true, NonZero))
	d.Register("b*", painter("b*", true, true, true, EvenOdd))
	d.Register("n", painter("n", false, false, false, NonZero))

	d.Register("W", numbers(0, clipper(NonZero)))
	d.Register("W*", numbers(0, clipper(EvenOdd)))
}

// painter builds the handler for a path-painting operator. The path is
// handed to the sink, then a new path starts with no current point.
func painter(op string, closeFirst, stroke, fill bool, rule FillRule) Handler {
	return HandlerFunc(func(ctx *ExecutionContext, operands []core.Object) error {
		if err := checkCount(operands, 0); err != nil {
			return err
		}

		gs := ctx.State()
		sink := ctx.Sink()
		if _, ok := gs.CurrentPoint(); closeFirst && ok {
			sink.Close()
		}

		if p, ok := sink.(Painter); ok {
			p.Paint(Paint{
				Operator:  op,
				Stroke:    stroke,
				Fill:      fill,
				Rule:      rule,
				Clip:      ctx.pendingClip,
				ClipRule:  ctx.clipRule,
				LineWidth: gs.LineWidth,
				LineCap:   gs.LineCap,
				LineJoin:  gs.LineJoin,
				Dash:      gs.Dash.clone(),
				CTM:       gs.CTM,
			})
		}

		ctx.pendingClip = false
		ctx.clipRule = NonZero
		gs.ClearCurrentPoint()
		return nil
	})
}

// clipper handles W and W*, which mark the path to be used as a clip when
// the next painting operator runs.
func clipper(rule FillRule) func(ctx *ExecutionContext, _ []float32) error {
	return func(ctx *ExecutionContext, _ []float32) error {
		ctx.pendingClip = true
		ctx.clipRule = rule
		return nil
	}
}
