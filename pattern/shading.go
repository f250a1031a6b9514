package pattern

import "github.com/tsawler/pdfvector/core"

// Shading is a type 2 pattern: a smooth shading painted through the
// pattern matrix.
type Shading struct {
	base

	// ShadingType of the /Shading dictionary, 0 when absent
	ShadingType int

	// ExtGState is the optional graphics state parameter dictionary
	ExtGState core.Dict
}

func newShading(b base) *Shading {
	s := &Shading{base: b}
	if sh, ok := b.dict.GetDict("Shading"); ok {
		if v, ok := sh.GetInt("ShadingType"); ok {
			s.ShadingType = int(v)
		}
	} else if st, ok := b.dict.GetStream("Shading"); ok {
		if v, ok := st.Dict.GetInt("ShadingType"); ok {
			s.ShadingType = int(v)
		}
	}
	s.ExtGState, _ = b.dict.GetDict("ExtGState")
	return s
}

// PatternType returns TypeShading.
func (s *Shading) PatternType() int { return TypeShading }

// ShadingDict returns the /Shading entry when it is a plain dictionary.
func (s *Shading) ShadingDict() (core.Dict, bool) {
	return s.dict.GetDict("Shading")
}
