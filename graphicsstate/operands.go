package graphicsstate

import (
	"github.com/pkg/errors"

	"github.com/tsawler/pdfvector/core"
	"github.com/tsawler/pdfvector/diag"
)

func checkCount(operands []core.Object, n int) error {
	if len(operands) != n {
		return errors.Wrapf(diag.ErrOperandCountMismatch, "want %d operands, got %d", n, len(operands))
	}
	return nil
}

func typeMismatch(i int, obj core.Object, want string) error {
	got := "nil"
	if obj != nil {
		got = obj.Type().String()
	}
	return errors.Wrapf(diag.ErrOperandTypeMismatch, "operand %d is %s, want %s", i, got, want)
}

// numberOperands requires exactly n numeric operands.
func numberOperands(operands []core.Object, n int) ([]float32, error) {
	if err := checkCount(operands, n); err != nil {
		return nil, err
	}
	args := make([]float32, n)
	for i, obj := range operands {
		f, ok := core.ToFloat(obj)
		if !ok {
			return nil, typeMismatch(i, obj, "number")
		}
		args[i] = f
	}
	return args, nil
}

// nameOperand requires a single name operand.
func nameOperand(operands []core.Object) (core.Name, error) {
	if err := checkCount(operands, 1); err != nil {
		return "", err
	}
	name, ok := operands[0].(core.Name)
	if !ok {
		return "", typeMismatch(0, operands[0], "name")
	}
	return name, nil
}

// numberHandler validates a fixed number of numeric operands before
// calling apply.
type numberHandler struct {
	count int
	apply func(ctx *ExecutionContext, args []float32) error
}

func (h numberHandler) Handle(ctx *ExecutionContext, operands []core.Object) error {
	args, err := numberOperands(operands, h.count)
	if err != nil {
		return err
	}
	return h.apply(ctx, args)
}

// numbers registers a numeric handler.
func numbers(count int, apply func(ctx *ExecutionContext, args []float32) error) Handler {
	return numberHandler{count: count, apply: apply}
}
