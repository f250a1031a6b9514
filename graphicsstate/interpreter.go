package graphicsstate

import (
	"io"

	"github.com/pkg/errors"

	"github.com/tsawler/pdfvector/contentstream"
	"github.com/tsawler/pdfvector/diag"
	"github.com/tsawler/pdfvector/model"
)

// Interpreter drives a Dispatcher over an operator source, reporting every
// skipped operator and carrying on.
type Interpreter struct {
	dispatcher *Dispatcher
	ctx        *ExecutionContext
	reporter   diag.Reporter
	metrics    *diag.Metrics
	strict     bool
	count      int
}

// Option configures an Interpreter.
type Option func(*Interpreter)

// WithReporter sets where diagnostics go. The default discards them.
func WithReporter(r diag.Reporter) Option {
	return func(in *Interpreter) {
		if r != nil {
			in.reporter = r
		}
	}
}

// WithMetrics counts dispatched operators and diagnostics.
func WithMetrics(m *diag.Metrics) Option {
	return func(in *Interpreter) {
		in.metrics = m
	}
}

// WithStrict makes the first diagnostic end the run.
func WithStrict(strict bool) Option {
	return func(in *Interpreter) {
		in.strict = strict
	}
}

// WithMaxStackDepth limits how many q levels may be open at once, not
// counting the base frame. Zero or less removes the limit.
func WithMaxStackDepth(depth int) Option {
	return func(in *Interpreter) {
		in.ctx.MaxStackDepth = depth
	}
}

// WithDispatcher replaces the built-in operator table.
func WithDispatcher(d *Dispatcher) Option {
	return func(in *Interpreter) {
		if d != nil {
			in.dispatcher = d
		}
	}
}

// NewInterpreter returns an interpreter whose initial state has the base
// CTM and sends geometry to sink. A nil sink discards geometry.
func NewInterpreter(base model.Matrix, sink PathSink, opts ...Option) *Interpreter {
	in := &Interpreter{
		dispatcher: NewDispatcher(),
		ctx:        NewExecutionContext(NewGraphicsState(base, sink)),
		reporter:   diag.Nop(),
	}
	for _, opt := range opts {
		opt(in)
	}
	return in
}

// Stack returns the graphics state stack.
func (in *Interpreter) Stack() *Stack {
	return in.ctx.Stack
}

// Context returns the execution context handed to handlers.
func (in *Interpreter) Context() *ExecutionContext {
	return in.ctx
}

// Operators returns how many operators have been applied or skipped.
func (in *Interpreter) Operators() int {
	return in.count
}

// Apply dispatches one operation. A rejected operation is reported and,
// unless the interpreter is strict, swallowed.
func (in *Interpreter) Apply(op contentstream.Operation) error {
	index := in.count
	in.count++

	err := in.dispatcher.Dispatch(in.ctx, op, index)
	if err == nil {
		if in.metrics != nil {
			in.metrics.ObserveOperator(op.Operator)
		}
		return nil
	}

	var cause error = err
	if oe, ok := err.(*OperatorError); ok {
		cause = oe.Err
	}
	d := diag.New(op.Operator, index, cause)
	in.reporter.Report(d)
	if in.metrics != nil {
		in.metrics.Report(d)
	}

	if in.strict {
		return err
	}
	return nil
}

// Run applies operations from src until it is exhausted. Exhaustion is a
// normal end and yields a nil error. A read or syntax error from src ends
// the run early; whatever geometry was produced before it stays in the
// sink.
func (in *Interpreter) Run(src contentstream.Source) error {
	for {
		op, err := src.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return errors.Wrapf(err, "reading operator %d", in.count)
		}
		if err := in.Apply(op); err != nil {
			return err
		}
	}
}
