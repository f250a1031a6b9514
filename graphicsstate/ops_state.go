package graphicsstate

import (
	"github.com/pkg/errors"

	"github.com/tsawler/pdfvector/core"
	"github.com/tsawler/pdfvector/diag"
	"github.com/tsawler/pdfvector/model"
)

func registerStateOperators(d *Dispatcher) {
	d.Register("q", numbers(0, save))
	d.Register("Q", numbers(0, restore))
	d.Register("cm", numbers(6, concat))
	d.Register("w", numbers(1, func(ctx *ExecutionContext, args []float32) error {
		ctx.State().LineWidth = args[0]
		return nil
	}))
	d.Register("J", numbers(1, func(ctx *ExecutionContext, args []float32) error {
		ctx.State().LineCap = int(args[0])
		return nil
	}))
	d.Register("j", numbers(1, func(ctx *ExecutionContext, args []float32) error {
		ctx.State().LineJoin = int(args[0])
		return nil
	}))
	d.Register("M", numbers(1, func(ctx *ExecutionContext, args []float32) error {
		ctx.State().MiterLimit = args[0]
		return nil
	}))
	d.Register("i", numbers(1, func(ctx *ExecutionContext, args []float32) error {
		ctx.State().Flatness = args[0]
		return nil
	}))
	d.Register("d", HandlerFunc(setDash))
	d.Register("ri", HandlerFunc(func(ctx *ExecutionContext, operands []core.Object) error {
		name, err := nameOperand(operands)
		if err != nil {
			return err
		}
		ctx.State().RenderingIntent = string(name)
		return nil
	}))
	d.Register("gs", HandlerFunc(func(ctx *ExecutionContext, operands []core.Object) error {
		name, err := nameOperand(operands)
		if err != nil {
			return err
		}
		ctx.State().ExtGState = string(name)
		return nil
	}))
}

// save handles q
func save(ctx *ExecutionContext, _ []float32) error {
	if ctx.MaxStackDepth > 0 && ctx.Stack.Depth() > ctx.MaxStackDepth {
		return errors.Wrapf(diag.ErrStackOverflow, "depth limit %d reached", ctx.MaxStackDepth)
	}
	ctx.Stack.Push()
	return nil
}

// restore handles Q
func restore(ctx *ExecutionContext, _ []float32) error {
	return ctx.Stack.Pop()
}

// concat handles cm
func concat(ctx *ExecutionContext, args []float32) error {
	ctx.Stack.ConcatenateCTM(model.New(args[0], args[1], args[2], args[3], args[4], args[5]))
	return nil
}

// setDash handles d: an array of numbers followed by the phase.
func setDash(ctx *ExecutionContext, operands []core.Object) error {
	if err := checkCount(operands, 2); err != nil {
		return err
	}
	arr, ok := operands[0].(core.Array)
	if !ok {
		return typeMismatch(0, operands[0], "array")
	}
	dashes, ok := arr.Floats()
	if !ok {
		return errors.Wrap(diag.ErrOperandTypeMismatch, "dash array holds a non-number")
	}
	phase, ok := core.ToFloat(operands[1])
	if !ok {
		return typeMismatch(1, operands[1], "number")
	}

	ctx.State().Dash = DashPattern{Array: dashes, Phase: phase}
	return nil
}
