package pdfvector

import (
	"github.com/tsawler/pdfvector/diag"
	"github.com/tsawler/pdfvector/graphicsstate"
	"github.com/tsawler/pdfvector/model"
	"github.com/tsawler/pdfvector/pattern"
)

// RenderOptions holds configuration for one interpretation.
type RenderOptions struct {
	// Seed of the initial graphics state
	base    model.Matrix
	pattern pattern.Pattern

	// Recovery
	strict        bool
	maxStackDepth int

	// Collaborators
	reporter diag.Reporter
	metrics  *diag.Metrics
	sinks    []graphicsstate.PathSink
}

// defaultOptions returns the default render options.
func defaultOptions() RenderOptions {
	return RenderOptions{
		base:          model.Identity(),
		strict:        false,
		maxStackDepth: graphicsstate.DefaultMaxStackDepth,
	}
}

// clone creates a deep copy of RenderOptions.
func (o RenderOptions) clone() RenderOptions {
	newOpts := o

	// Deep copy sinks slice
	if o.sinks != nil {
		newOpts.sinks = make([]graphicsstate.PathSink, len(o.sinks))
		copy(newOpts.sinks, o.sinks)
	}

	return newOpts
}

// baseCTM returns the CTM of the implicit initial graphics state.
func (o RenderOptions) baseCTM() model.Matrix {
	if o.pattern != nil {
		return o.pattern.Space(o.base)
	}
	return o.base
}

func (o RenderOptions) interpreterOptions(reporter diag.Reporter) []graphicsstate.Option {
	return []graphicsstate.Option{
		graphicsstate.WithReporter(reporter),
		graphicsstate.WithMetrics(o.metrics),
		graphicsstate.WithStrict(o.strict),
		graphicsstate.WithMaxStackDepth(o.maxStackDepth),
	}
}
