package graphicsstate

import "github.com/tsawler/pdfvector/core"

// ignoredOperators are accepted without effect on geometry: text, colour,
// marked content, XObjects, inline images, shadings, type 3 glyph metrics
// and compatibility sections.
var ignoredOperators = []string{
	"BT", "ET", "Tc", "Tw", "Tz", "TL", "Tf", "Tr", "Ts",
	"Td", "TD", "Tm", "T*", "Tj", "TJ", "'", `"`,
	"d0", "d1",
	"CS", "cs", "SC", "SCN", "sc", "scn", "G", "g", "RG", "rg", "K", "k",
	"sh", "Do", "BI", "ID", "EI",
	"BMC", "BDC", "EMC", "MP", "DP",
	"BX", "EX",
}

func ignore(*ExecutionContext, []core.Object) error { return nil }

func registerIgnoredOperators(d *Dispatcher) {
	for _, op := range ignoredOperators {
		d.Register(op, HandlerFunc(ignore))
	}
}
