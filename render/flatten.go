package render

import (
	"math"

	"github.com/tsawler/pdfvector/graphicsstate"
	"github.com/tsawler/pdfvector/model"
)

const (
	// flattenStep is the approximate device length of one line piece of
	// a flattened curve.
	flattenStep    = 2
	maxCurvePieces = 64
)

// flattenCubic appends points along the cubic p0..p3, excluding p0.
func flattenCubic(dst []model.Point, p0, p1, p2, p3 model.Point) []model.Point {
	hull := p0.Distance(p1) + p1.Distance(p2) + p2.Distance(p3)
	n := int(math.Ceil(float64(hull / flattenStep)))
	if n < 1 {
		n = 1
	}
	if n > maxCurvePieces {
		n = maxCurvePieces
	}

	for i := 1; i <= n; i++ {
		t := float32(i) / float32(n)
		u := 1 - t
		a, b, c, d := u*u*u, 3*u*u*t, 3*u*t*t, t*t*t
		dst = append(dst, model.Point{
			X: a*p0.X + b*p1.X + c*p2.X + d*p3.X,
			Y: a*p0.Y + b*p1.Y + c*p2.Y + d*p3.Y,
		})
	}
	return dst
}

// polyline is one flattened subpath.
type polyline struct {
	points []model.Point
	closed bool
}

// flatten turns segments into polylines, one per subpath.
func flatten(segs []graphicsstate.PathSegment) []polyline {
	var out []polyline
	cur := -1

	for _, s := range segs {
		switch s.Type {
		case graphicsstate.PathMoveTo:
			out = append(out, polyline{points: []model.Point{s.Points[0]}})
			cur = len(out) - 1
		case graphicsstate.PathLineTo:
			if cur < 0 {
				continue
			}
			out[cur].points = append(out[cur].points, s.Points[0])
		case graphicsstate.PathCurveTo:
			if cur < 0 {
				continue
			}
			pts := out[cur].points
			out[cur].points = flattenCubic(pts, pts[len(pts)-1], s.Points[0], s.Points[1], s.Points[2])
		case graphicsstate.PathClosePath:
			if cur < 0 {
				continue
			}
			out[cur].closed = true
			// segments after h without m continue from the start point
			out = append(out, polyline{points: []model.Point{out[cur].points[0]}})
			cur = len(out) - 1
		}
	}
	return out
}
