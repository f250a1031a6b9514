package graphicsstate

import (
	"fmt"
	"sort"

	"github.com/tsawler/pdfvector/contentstream"
	"github.com/tsawler/pdfvector/core"
	"github.com/tsawler/pdfvector/diag"
)

// DefaultMaxStackDepth bounds q nesting unless configured otherwise.
const DefaultMaxStackDepth = 256

// ExecutionContext is what handlers operate on during one interpretation.
type ExecutionContext struct {
	Stack *Stack

	// MaxStackDepth limits how many q levels may be open at once; the base
	// frame is not counted. Zero means no limit.
	MaxStackDepth int

	pendingClip bool
	clipRule    FillRule
}

// NewExecutionContext seeds a stack from the base CTM and the shared path
// sink.
func NewExecutionContext(base *GraphicsState) *ExecutionContext {
	return &ExecutionContext{
		Stack:         NewStack(base),
		MaxStackDepth: DefaultMaxStackDepth,
	}
}

// State returns the active graphics state.
func (ctx *ExecutionContext) State() *GraphicsState {
	return ctx.Stack.Current()
}

// Sink returns the path sink shared by all frames.
func (ctx *ExecutionContext) Sink() PathSink {
	return ctx.Stack.Current().Path
}

// Handler applies one operator. A non-nil error means the operator was
// rejected and the state was left unchanged.
type Handler interface {
	Handle(ctx *ExecutionContext, operands []core.Object) error
}

// HandlerFunc adapts a function to Handler.
type HandlerFunc func(ctx *ExecutionContext, operands []core.Object) error

// Handle calls f(ctx, operands).
func (f HandlerFunc) Handle(ctx *ExecutionContext, operands []core.Object) error {
	return f(ctx, operands)
}

// OperatorError reports an operator that was skipped.
type OperatorError struct {
	Operator string
	Index    int
	Err      error
}

func (e *OperatorError) Error() string {
	return fmt.Sprintf("operator %d (%s): %v", e.Index, e.Operator, e.Err)
}

// Unwrap returns the underlying error.
func (e *OperatorError) Unwrap() error {
	return e.Err
}

// Dispatcher maps operator mnemonics to handlers. Lookup is an exact,
// case-sensitive match.
type Dispatcher struct {
	handlers map[string]Handler
}

// NewDispatcher returns a dispatcher with every built-in handler
// registered.
func NewDispatcher() *Dispatcher {
	d := &Dispatcher{handlers: make(map[string]Handler)}
	registerStateOperators(d)
	registerPathOperators(d)
	registerPaintOperators(d)
	registerIgnoredOperators(d)
	return d
}

// Register installs h for op, replacing any existing handler.
func (d *Dispatcher) Register(op string, h Handler) {
	d.handlers[op] = h
}

// Lookup returns the handler for op.
func (d *Dispatcher) Lookup(op string) (Handler, bool) {
	h, ok := d.handlers[op]
	return h, ok
}

// Operators lists the registered mnemonics in sorted order.
func (d *Dispatcher) Operators() []string {
	ops := make([]string, 0, len(d.handlers))
	for op := range d.handlers {
		ops = append(ops, op)
	}
	sort.Strings(ops)
	return ops
}

// Dispatch applies op. Unknown mnemonics and rejected operands come back as
// an *OperatorError; the caller decides whether to continue.
func (d *Dispatcher) Dispatch(ctx *ExecutionContext, op contentstream.Operation, index int) error {
	h, ok := d.handlers[op.Operator]
	if !ok {
		return &OperatorError{Operator: op.Operator, Index: index, Err: diag.ErrUnknownOperator}
	}
	if err := h.Handle(ctx, op.Operands); err != nil {
		return &OperatorError{Operator: op.Operator, Index: index, Err: err}
	}
	return nil
}
