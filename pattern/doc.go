// Package pattern resolves the coordinate space of tiling and shading
// patterns.
//
// A pattern dictionary may carry a /Matrix mapping pattern space to the
// default space of the page or form that uses it. Some producers write a
// zero scale into that matrix and rely on viewers to recover; [Repair]
// applies the recovery in a fixed order and the result is cached on the
// [Tiling] or [Shading] value:
//
//	p, err := pattern.New(dict, pattern.WithReporter(reporter))
//	if err != nil {
//	    return err
//	}
//	base := p.Space(pageCTM) // base CTM for the pattern's own content
//
// XStep, YStep and BBox are exposed as stored, in pattern space.
package pattern
