package pattern

import (
	"github.com/pkg/errors"

	"github.com/tsawler/pdfvector/core"
	"github.com/tsawler/pdfvector/diag"
	"github.com/tsawler/pdfvector/model"
)

// Pattern type values of /PatternType
const (
	TypeTiling  = 1
	TypeShading = 2
)

// ErrUnsupportedPattern is returned by New for a /PatternType other than
// tiling or shading.
var ErrUnsupportedPattern = errors.New("unsupported pattern type")

// Pattern is a resolved tiling or shading pattern.
type Pattern interface {
	// PatternType returns TypeTiling or TypeShading.
	PatternType() int

	// Matrix returns the repaired pattern matrix.
	Matrix() model.Matrix

	// Space maps pattern space to the space whose CTM is ctm.
	Space(ctm model.Matrix) model.Matrix

	// Dict returns the pattern dictionary.
	Dict() core.Dict
}

// Option configures pattern resolution.
type Option func(*options)

type options struct {
	reporter diag.Reporter
}

// WithReporter receives a MalformedMatrix diagnostic when the stored
// matrix cannot be read.
func WithReporter(r diag.Reporter) Option {
	return func(o *options) {
		if r != nil {
			o.reporter = r
		}
	}
}

// New resolves obj, a pattern dictionary or a tiling pattern stream.
func New(obj core.Object, opts ...Option) (Pattern, error) {
	o := options{reporter: diag.Nop()}
	for _, opt := range opts {
		opt(&o)
	}

	var dict core.Dict
	var content *core.Stream
	switch v := obj.(type) {
	case core.Dict:
		dict = v
	case *core.Stream:
		dict = v.Dict
		content = v
	default:
		return nil, errors.Errorf("pattern must be a dictionary or stream, got %T", obj)
	}

	patternType, ok := dict.GetInt("PatternType")
	if !ok {
		return nil, errors.Wrap(ErrUnsupportedPattern, "missing /PatternType")
	}

	b := resolveBase(dict, o.reporter)
	switch patternType {
	case TypeTiling:
		return newTiling(b, content), nil
	case TypeShading:
		return newShading(b), nil
	default:
		return nil, errors.Wrapf(ErrUnsupportedPattern, "/PatternType %d", patternType)
	}
}

// base holds what tiling and shading patterns share.
type base struct {
	dict   core.Dict
	matrix model.Matrix
}

func resolveBase(dict core.Dict, reporter diag.Reporter) base {
	m, err := ResolveMatrix(dict)
	if err != nil {
		reporter.Report(diag.New("", 0, err))
	}
	return base{dict: dict, matrix: m}
}

func (b *base) Matrix() model.Matrix {
	return b.matrix
}

func (b *base) Space(ctm model.Matrix) model.Matrix {
	return b.matrix.Multiply(ctm)
}

func (b *base) Dict() core.Dict {
	return b.dict
}
