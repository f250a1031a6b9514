package render

import (
	"image"

	"golang.org/x/image/vector"

	"github.com/tsawler/pdfvector/graphicsstate"
	"github.com/tsawler/pdfvector/model"
)

// Raster is a PathSink that paints into an alpha mask. Fills use the
// nonzero rule regardless of the operator; x/image/vector has no even-odd
// mode. Strokes are drawn as one quadrilateral per flattened line piece,
// extended by half the line width at both ends, which approximates
// projecting caps and fills the outside of joins.
type Raster struct {
	z       *vector.Rasterizer
	dst     *image.Alpha
	path    graphicsstate.Path
	painted int
}

// NewRaster returns a width x height mask, initially transparent.
func NewRaster(width, height int) *Raster {
	return &Raster{
		z:   vector.NewRasterizer(width, height),
		dst: image.NewAlpha(image.Rect(0, 0, width, height)),
	}
}

func (r *Raster) MoveTo(x, y float32)                    { r.path.MoveTo(x, y) }
func (r *Raster) LineTo(x, y float32)                    { r.path.LineTo(x, y) }
func (r *Raster) CurveTo(x1, y1, x2, y2, x3, y3 float32) { r.path.CurveTo(x1, y1, x2, y2, x3, y3) }
func (r *Raster) Close()                                 { r.path.Close() }

// Paint draws the pending path as the operator asks and discards it.
func (r *Raster) Paint(p graphicsstate.Paint) {
	segs := r.path.Segments
	r.path.Segments = nil
	if len(segs) == 0 || !(p.Fill || p.Stroke) {
		return
	}

	if p.Fill {
		r.begin()
		r.fill(segs)
		r.draw()
	}
	if p.Stroke {
		r.begin()
		r.stroke(flatten(segs), p.DeviceLineWidth()/2)
		r.draw()
	}
	r.painted++
}

// Image returns the mask painted so far.
func (r *Raster) Image() *image.Alpha {
	return r.dst
}

// Painted returns the number of paths that were filled or stroked.
func (r *Raster) Painted() int {
	return r.painted
}

func (r *Raster) begin() {
	b := r.dst.Bounds()
	r.z.Reset(b.Dx(), b.Dy())
}

func (r *Raster) draw() {
	r.z.Draw(r.dst, r.dst.Bounds(), image.Opaque, image.Point{})
}

func (r *Raster) fill(segs []graphicsstate.PathSegment) {
	started := false
	var start model.Point
	for _, s := range segs {
		switch s.Type {
		case graphicsstate.PathMoveTo:
			start = s.Points[0]
			r.z.MoveTo(start.X, start.Y)
			started = true
		case graphicsstate.PathLineTo:
			if started {
				r.z.LineTo(s.Points[0].X, s.Points[0].Y)
			}
		case graphicsstate.PathCurveTo:
			if started {
				r.z.CubeTo(s.Points[0].X, s.Points[0].Y, s.Points[1].X, s.Points[1].Y, s.Points[2].X, s.Points[2].Y)
			}
		case graphicsstate.PathClosePath:
			if started {
				r.z.ClosePath()
				r.z.MoveTo(start.X, start.Y)
			}
		}
	}
	if started {
		r.z.ClosePath()
	}
}

func (r *Raster) stroke(lines []polyline, hw float32) {
	for _, pl := range lines {
		pts := pl.points
		if pl.closed && len(pts) > 1 {
			pts = append(pts, pts[0])
		}
		for i := 1; i < len(pts); i++ {
			r.quad(pts[i-1], pts[i], hw)
		}
	}
}

// quad adds the rectangle covering a line piece. Every quad winds the same
// way, so overlaps add up instead of cancelling.
func (r *Raster) quad(a, b model.Point, hw float32) {
	l := a.Distance(b)
	if l == 0 {
		return
	}
	dx, dy := (b.X-a.X)/l*hw, (b.Y-a.Y)/l*hw
	// extend along the line, offset along its normal
	a = model.Point{X: a.X - dx, Y: a.Y - dy}
	b = model.Point{X: b.X + dx, Y: b.Y + dy}
	nx, ny := -dy, dx

	r.z.MoveTo(a.X+nx, a.Y+ny)
	r.z.LineTo(b.X+nx, b.Y+ny)
	r.z.LineTo(b.X-nx, b.Y-ny)
	r.z.LineTo(a.X-nx, a.Y-ny)
	r.z.ClosePath()
}
