package diag

import (
	"errors"

	"github.com/tsawler/pdfvector/model"
)

// Kind classifies a diagnostic.
type Kind int

const (
	KindUnknown Kind = iota
	KindOperandCountMismatch
	KindOperandTypeMismatch
	KindNoCurrentPoint
	KindMalformedMatrix
	KindUnknownOperator
	KindStackUnderflow
	KindStackOverflow
)

var (
	ErrOperandCountMismatch = errors.New("operand count mismatch")
	ErrOperandTypeMismatch  = errors.New("operand type mismatch")
	ErrNoCurrentPoint       = errors.New("no current point")
	ErrMalformedMatrix      = model.ErrMalformedMatrix
	ErrUnknownOperator      = errors.New("unknown operator")
	ErrStackUnderflow       = errors.New("graphics state stack underflow")
	ErrStackOverflow        = errors.New("graphics state stack overflow")
)

var kindErrors = []struct {
	kind Kind
	err  error
}{
	{KindOperandCountMismatch, ErrOperandCountMismatch},
	{KindOperandTypeMismatch, ErrOperandTypeMismatch},
	{KindNoCurrentPoint, ErrNoCurrentPoint},
	{KindMalformedMatrix, ErrMalformedMatrix},
	{KindUnknownOperator, ErrUnknownOperator},
	{KindStackUnderflow, ErrStackUnderflow},
	{KindStackOverflow, ErrStackOverflow},
}

// String returns the kind's name as used in log fields and metric labels.
func (k Kind) String() string {
	switch k {
	case KindOperandCountMismatch:
		return "operand_count_mismatch"
	case KindOperandTypeMismatch:
		return "operand_type_mismatch"
	case KindNoCurrentPoint:
		return "no_current_point"
	case KindMalformedMatrix:
		return "malformed_matrix"
	case KindUnknownOperator:
		return "unknown_operator"
	case KindStackUnderflow:
		return "stack_underflow"
	case KindStackOverflow:
		return "stack_overflow"
	default:
		return "unknown"
	}
}

// Err returns the sentinel error for k, or nil for KindUnknown.
func (k Kind) Err() error {
	for _, ke := range kindErrors {
		if ke.kind == k {
			return ke.err
		}
	}
	return nil
}

// KindOf finds the first sentinel in err's chain.
func KindOf(err error) Kind {
	if err == nil {
		return KindUnknown
	}
	for _, ke := range kindErrors {
		if errors.Is(err, ke.err) {
			return ke.kind
		}
	}
	return KindUnknown
}
