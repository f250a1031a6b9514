package pattern

import (
	"github.com/pkg/errors"

	"github.com/tsawler/pdfvector/core"
	"github.com/tsawler/pdfvector/model"
)

// Repair fixes a degenerate pattern matrix. A zero X scale takes the X
// shear value, a zero Y scale takes the Y shear value, and the shear slot
// that was promoted is cleared. Whatever scale is still zero after that
// becomes 1. Translation is never touched.
func Repair(m model.Matrix) model.Matrix {
	if m[0] == 0 {
		m[0], m[2] = m[2], 0
	}
	if m[3] == 0 {
		m[3], m[1] = m[1], 0
	}
	if m[0] == 0 {
		m[0] = 1
	}
	if m[3] == 0 {
		m[3] = 1
	}
	return m
}

// ResolveMatrix reads and repairs the /Matrix entry of dict. A missing or
// null entry yields the identity. An entry that is not an array of at least six
// numbers also yields the identity, together with an error wrapping
// model.ErrMalformedMatrix.
func ResolveMatrix(dict core.Dict) (model.Matrix, error) {
	obj := dict.Get("Matrix")
	switch obj.(type) {
	case nil, core.Null:
		return model.Identity(), nil
	}

	arr, ok := obj.(core.Array)
	if !ok {
		return model.Identity(), errors.Wrapf(model.ErrMalformedMatrix, "pattern /Matrix is %s, want array", obj.Type())
	}
	if len(arr) > 6 {
		arr = arr[:6]
	}
	vals, ok := arr.Floats()
	if !ok {
		return model.Identity(), errors.Wrap(model.ErrMalformedMatrix, "pattern /Matrix holds a non-number")
	}
	m, err := model.FromSixNumbers(vals)
	if err != nil {
		return model.Identity(), errors.Wrapf(err, "pattern /Matrix has %d entries", len(vals))
	}
	return Repair(m), nil
}
