package pdfvector

import (
	"io"

	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"github.com/tsawler/pdfvector/contentstream"
	"github.com/tsawler/pdfvector/diag"
	"github.com/tsawler/pdfvector/graphicsstate"
	"github.com/tsawler/pdfvector/model"
	"github.com/tsawler/pdfvector/pages"
	"github.com/tsawler/pdfvector/pattern"
)

var errNilSource = errors.New("pdfvector: nil content source")

// Renderer provides a fluent interface for interpreting one content stream.
// Each configuration method returns a new Renderer, so a configured Renderer
// can be shared and specialised without affecting other chains.
type Renderer struct {
	// Source; exactly one is set
	data   []byte
	reader io.Reader

	// Configuration
	options RenderOptions

	// Accumulated error (fail-fast)
	err error
}

// Result is what one Run produced.
type Result struct {
	// Path holds the device-space geometry. After a terminal error it holds
	// everything interpreted before the failure.
	Path *graphicsstate.Path

	// Diagnostics lists every skipped operator in stream order.
	Diagnostics []diag.Diagnostic

	// Operators counts the operators read from the stream, applied or not.
	Operators int
}

// Err folds the diagnostics into a single error, or nil when there were
// none.
func (r *Result) Err() error {
	var err error
	for _, d := range r.Diagnostics {
		err = multierr.Append(err, d)
	}
	return err
}

// clone creates a shallow copy of the Renderer with a deep copy of options.
func (r *Renderer) clone() *Renderer {
	return &Renderer{
		data:    r.data,
		reader:  r.reader,
		options: r.options.clone(),
		err:     r.err,
	}
}

// ============================================================================
// Configuration Methods (return new Renderer instance)
// ============================================================================

// BaseCTM sets the CTM of the implicit initial graphics state. The default
// is the identity.
func (r *Renderer) BaseCTM(m model.Matrix) *Renderer {
	newR := r.clone()
	newR.options.base = m
	return newR
}

// Page seeds the base CTM from the page's boxes, rotation and user unit,
// mapping it to a top-left-origin device space at scale pixels per unit.
//
// Example:
//
//	res, err := pdfvector.FromBytes(stream).Page(page, 2).Run()
func (r *Renderer) Page(p *pages.Page, scale float32) *Renderer {
	newR := r.clone()
	if p == nil {
		newR.err = errors.New("pdfvector: nil page")
		return newR
	}
	newR.options.base = p.BaseCTM(scale)
	return newR
}

// Pattern interprets the stream as the content of pattern p: the initial
// CTM becomes the pattern matrix concatenated with the base CTM.
func (r *Renderer) Pattern(p pattern.Pattern) *Renderer {
	newR := r.clone()
	newR.options.pattern = p
	return newR
}

// Strict makes the first skipped operator end the run with an error.
func (r *Renderer) Strict() *Renderer {
	newR := r.clone()
	newR.options.strict = true
	return newR
}

// MaxStackDepth limits how many q levels may be open at once. Zero or less
// removes the limit.
func (r *Renderer) MaxStackDepth(depth int) *Renderer {
	newR := r.clone()
	newR.options.maxStackDepth = depth
	return newR
}

// Reporter forwards diagnostics to rep in addition to collecting them in
// the Result.
func (r *Renderer) Reporter(rep diag.Reporter) *Renderer {
	newR := r.clone()
	newR.options.reporter = rep
	return newR
}

// Metrics counts operators and diagnostics in m.
func (r *Renderer) Metrics(m *diag.Metrics) *Renderer {
	newR := r.clone()
	newR.options.metrics = m
	return newR
}

// Sink sends geometry to s as well as to the Result path. Multiple calls
// are cumulative.
//
// Example:
//
//	raster := render.NewRaster(w, h)
//	res, err := pdfvector.FromBytes(stream).Sink(raster).Run()
func (r *Renderer) Sink(s graphicsstate.PathSink) *Renderer {
	newR := r.clone()
	if s != nil {
		newR.options.sinks = append(newR.options.sinks, s)
	}
	return newR
}

// ============================================================================
// Terminal Methods
// ============================================================================

// Run interprets the stream. A non-nil error is terminal: either the stream
// could not be read or tokenized, or a strict run met a bad operator. The
// Result is returned alongside it whenever a source was configured, holding
// everything interpreted before the failure.
func (r *Renderer) Run() (*Result, error) {
	if r.err != nil {
		return nil, r.err
	}

	src := r.source()
	path := graphicsstate.NewPath()
	collector := diag.NewCollector()

	var reporter diag.Reporter = collector
	if r.options.reporter != nil {
		reporter = diag.Multi(collector, r.options.reporter)
	}

	var sink graphicsstate.PathSink = path
	if len(r.options.sinks) > 0 {
		sinks := append([]graphicsstate.PathSink{path}, r.options.sinks...)
		sink = graphicsstate.Tee(sinks...)
	}

	in := graphicsstate.NewInterpreter(r.options.baseCTM(), sink, r.options.interpreterOptions(reporter)...)
	runErr := in.Run(src)

	res := &Result{
		Path:        path,
		Diagnostics: collector.Diagnostics(),
		Operators:   in.Operators(),
	}
	return res, runErr
}

func (r *Renderer) source() contentstream.Source {
	if r.reader != nil {
		return contentstream.NewReaderParser(r.reader)
	}
	return contentstream.NewParser(r.data)
}
