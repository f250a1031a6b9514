package pattern

import (
	"github.com/tsawler/pdfvector/core"
	"github.com/tsawler/pdfvector/model"
)

// Paint types of a tiling pattern
const (
	PaintColoured   = 1
	PaintUncoloured = 2
)

// Tiling types of a tiling pattern
const (
	TilingConstantSpacing       = 1
	TilingNoDistortion          = 2
	TilingConstantSpacingFaster = 3
)

// Tiling is a type 1 pattern: a cell of content repeated at XStep, YStep.
type Tiling struct {
	base

	PaintType  int
	TilingType int
	XStep      float32
	YStep      float32

	// BBox is the pattern cell in pattern space, nil when absent
	BBox *model.BBox

	Resources core.Dict

	content *core.Stream
}

func newTiling(b base, content *core.Stream) *Tiling {
	t := &Tiling{base: b, content: content}

	if v, ok := b.dict.GetInt("PaintType"); ok {
		t.PaintType = int(v)
	}
	if v, ok := b.dict.GetInt("TilingType"); ok {
		t.TilingType = int(v)
	}
	t.XStep, _ = b.dict.GetNumber("XStep")
	t.YStep, _ = b.dict.GetNumber("YStep")

	if arr, ok := b.dict.GetArray("BBox"); ok {
		if vals, ok := arr.Floats(); ok && len(vals) >= 4 {
			box := model.NewBBoxFromPoints(
				model.Point{X: vals[0], Y: vals[1]},
				model.Point{X: vals[2], Y: vals[3]},
			)
			t.BBox = &box
		}
	}

	t.Resources, _ = b.dict.GetDict("Resources")
	return t
}

// PatternType returns TypeTiling.
func (t *Tiling) PatternType() int { return TypeTiling }

// Content returns the cell's content stream bytes, or nil when the pattern
// was resolved from a bare dictionary.
func (t *Tiling) Content() ([]byte, error) {
	if t.content == nil {
		return nil, nil
	}
	return t.content.Decoded()
}

// Coloured reports whether the cell specifies its own colours.
func (t *Tiling) Coloured() bool {
	return t.PaintType == PaintColoured
}
