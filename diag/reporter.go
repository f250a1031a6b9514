package diag

import "fmt"

// Diagnostic is one recoverable problem found while interpreting a stream.
type Diagnostic struct {
	Kind     Kind
	Operator string // mnemonic of the offending operator, if any
	Index    int    // ordinal of the operator in the stream, starting at 0
	Err      error
}

// New builds a diagnostic, deriving the kind from err.
func New(operator string, index int, err error) Diagnostic {
	return Diagnostic{Kind: KindOf(err), Operator: operator, Index: index, Err: err}
}

func (d Diagnostic) Error() string {
	if d.Operator == "" {
		return fmt.Sprintf("%s: %v", d.Kind, d.Err)
	}
	return fmt.Sprintf("%s at operator %d (%s): %v", d.Kind, d.Index, d.Operator, d.Err)
}

// Unwrap returns the underlying error.
func (d Diagnostic) Unwrap() error {
	return d.Err
}

// Reporter receives diagnostics. Implementations used from a single
// interpretation need not be safe for concurrent use; Collector and Metrics
// are.
type Reporter interface {
	Report(d Diagnostic)
}

// ReporterFunc adapts a function to Reporter.
type ReporterFunc func(d Diagnostic)

// Report calls f(d).
func (f ReporterFunc) Report(d Diagnostic) {
	f(d)
}

type nop struct{}

func (nop) Report(Diagnostic) {}

// Nop returns a reporter that discards everything.
func Nop() Reporter {
	return nop{}
}

type multi []Reporter

func (m multi) Report(d Diagnostic) {
	for _, r := range m {
		r.Report(d)
	}
}

// Multi fans each diagnostic out to every non-nil reporter.
func Multi(reporters ...Reporter) Reporter {
	var m multi
	for _, r := range reporters {
		if r != nil {
			m = append(m, r)
		}
	}
	switch len(m) {
	case 0:
		return Nop()
	case 1:
		return m[0]
	}
	return m
}
