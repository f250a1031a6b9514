package render

import (
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/net/html"

	"github.com/tsawler/pdfvector/graphicsstate"
)

const svgNamespace = "http://www.w3.org/2000/svg"

var (
	lineCaps  = []string{"butt", "round", "square"}
	lineJoins = []string{"miter", "round", "bevel"}
)

// SVG is a PathSink that records each painted path as an SVG <path>
// element.
type SVG struct {
	Width  int
	Height int

	// Ink is used for both fill and stroke
	Ink string

	d     strings.Builder
	paths []*html.Node
}

// NewSVG returns an empty document of the given device size.
func NewSVG(width, height int) *SVG {
	return &SVG{Width: width, Height: height, Ink: "black"}
}

func (s *SVG) MoveTo(x, y float32) {
	s.cmd('M', x, y)
}

func (s *SVG) LineTo(x, y float32) {
	s.cmd('L', x, y)
}

func (s *SVG) CurveTo(x1, y1, x2, y2, x3, y3 float32) {
	s.cmd('C', x1, y1, x2, y2, x3, y3)
}

func (s *SVG) Close() {
	s.cmd('Z')
}

func (s *SVG) cmd(op byte, coords ...float32) {
	if s.d.Len() > 0 {
		s.d.WriteByte(' ')
	}
	s.d.WriteByte(op)
	for _, c := range coords {
		s.d.WriteByte(' ')
		s.d.WriteString(formatFloat(c))
	}
}

// Paint turns the pending path into a <path> element. Paths that are
// neither filled nor stroked are dropped.
func (s *SVG) Paint(p graphicsstate.Paint) {
	d := s.d.String()
	s.d.Reset()
	if d == "" || !(p.Fill || p.Stroke) {
		return
	}

	attr := []html.Attribute{{Key: "d", Val: d}}
	if p.Fill {
		attr = append(attr,
			html.Attribute{Key: "fill", Val: s.Ink},
			html.Attribute{Key: "fill-rule", Val: p.Rule.String()},
		)
	} else {
		attr = append(attr, html.Attribute{Key: "fill", Val: "none"})
	}

	if p.Stroke {
		attr = append(attr,
			html.Attribute{Key: "stroke", Val: s.Ink},
			html.Attribute{Key: "stroke-width", Val: formatFloat(p.DeviceLineWidth())},
			html.Attribute{Key: "stroke-linecap", Val: pick(lineCaps, p.LineCap)},
			html.Attribute{Key: "stroke-linejoin", Val: pick(lineJoins, p.LineJoin)},
		)
		if !p.Dash.IsSolid() {
			attr = append(attr, html.Attribute{Key: "stroke-dasharray", Val: dashArray(p)})
		}
	}

	s.paths = append(s.paths, &html.Node{Type: html.ElementNode, Data: "path", Attr: attr})
}

// Len returns the number of recorded paths.
func (s *SVG) Len() int {
	return len(s.paths)
}

// Render writes the document to w.
func (s *SVG) Render(w io.Writer) error {
	root := &html.Node{
		Type: html.ElementNode,
		Data: "svg",
		Attr: []html.Attribute{
			{Key: "xmlns", Val: svgNamespace},
			{Key: "width", Val: strconv.Itoa(s.Width)},
			{Key: "height", Val: strconv.Itoa(s.Height)},
			{Key: "viewBox", Val: "0 0 " + strconv.Itoa(s.Width) + " " + strconv.Itoa(s.Height)},
		},
	}
	for _, p := range s.paths {
		// a node can only have one parent
		root.AppendChild(&html.Node{Type: p.Type, Data: p.Data, Attr: p.Attr})
	}

	if err := html.Render(w, root); err != nil {
		return errors.Wrap(err, "rendering svg")
	}
	return nil
}

func dashArray(p graphicsstate.Paint) string {
	scale := float32(math.Sqrt(math.Abs(float64(p.CTM.Determinant()))))
	parts := make([]string, len(p.Dash.Array))
	for i, v := range p.Dash.Array {
		parts[i] = formatFloat(v * scale)
	}
	return strings.Join(parts, " ")
}

func pick(names []string, i int) string {
	if i < 0 || i >= len(names) {
		return names[0]
	}
	return names[i]
}

func formatFloat(v float32) string {
	return strconv.FormatFloat(float64(v), 'f', -1, 32)
}
