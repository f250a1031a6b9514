package graphicsstate

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/tsawler/pdfvector/model"
)

func TestPathRecordsSegments(t *testing.T) {
	p := NewPath()
	p.MoveTo(0, 0)
	p.LineTo(10, 0)
	p.CurveTo(10, 5, 5, 10, 0, 10)
	p.Close()

	want := []PathSegment{
		{Type: PathMoveTo, Points: []model.Point{{X: 0, Y: 0}}},
		{Type: PathLineTo, Points: []model.Point{{X: 10, Y: 0}}},
		{Type: PathCurveTo, Points: []model.Point{{X: 10, Y: 5}, {X: 5, Y: 10}, {X: 0, Y: 10}}},
		{Type: PathClosePath},
	}
	if diff := cmp.Diff(want, p.Segments); diff != "" {
		t.Errorf("segments mismatch (-want +got):\n%s", diff)
	}
	if p.SegmentCount() != 4 {
		t.Errorf("SegmentCount = %d, want 4", p.SegmentCount())
	}
}

func TestPathPaint(t *testing.T) {
	p := NewPath()
	p.MoveTo(0, 0)
	p.LineTo(5, 5)
	p.Paint(Paint{Stroke: true})

	if len(p.Segments) != 0 {
		t.Error("paint should start a new path")
	}
	if len(p.Painted) != 1 || !p.Painted[0].Paint.Stroke {
		t.Fatalf("expected one stroked path, got %+v", p.Painted)
	}

	// n without clipping discards the path
	p.MoveTo(1, 1)
	p.Paint(Paint{})
	if len(p.Painted) != 1 || len(p.Segments) != 0 {
		t.Error("n should drop the path")
	}

	// n with a pending clip keeps it
	p.MoveTo(1, 1)
	p.LineTo(2, 2)
	p.Paint(Paint{Clip: true, ClipRule: EvenOdd})
	if len(p.Painted) != 2 || p.Painted[1].Paint.ClipRule != EvenOdd {
		t.Errorf("clip path not recorded: %+v", p.Painted)
	}

	// painting an empty path records nothing
	p.Paint(Paint{Fill: true})
	if len(p.Painted) != 2 {
		t.Error("empty path should not be recorded")
	}
}

func TestPathBounds(t *testing.T) {
	p := NewPath()
	if !p.IsEmpty() {
		t.Error("new path should be empty")
	}
	p.MoveTo(10, 20)
	p.LineTo(30, 5)
	p.Paint(Paint{Stroke: true})
	p.MoveTo(-5, 40)

	got := p.Bounds()
	want := model.BBox{X: -5, Y: 5, Width: 35, Height: 35}
	if got != want {
		t.Errorf("Bounds = %+v, want %+v", got, want)
	}

	p.Clear()
	if !p.IsEmpty() {
		t.Error("Clear should empty the path")
	}
}

func TestTee(t *testing.T) {
	a, b := NewPath(), NewPathExtractor()
	sink := Tee(a, b, Discard)

	sink.MoveTo(0, 0)
	sink.LineTo(100, 0)
	sink.CurveTo(1, 1, 2, 2, 3, 3)
	sink.Close()
	sink.(Painter).Paint(Paint{Stroke: true, CTM: model.Identity()})

	if len(a.Painted) != 1 || len(a.Painted[0].Segments) != 4 {
		t.Errorf("recorder got %+v", a.Painted)
	}
	if len(b.Lines) == 0 {
		t.Error("extractor should have received the stroke")
	}
}

func TestPaintDeviceLineWidth(t *testing.T) {
	tests := []struct {
		name  string
		paint Paint
		want  float32
	}{
		{"identity", Paint{LineWidth: 2, CTM: model.Identity()}, 2},
		{"scaled", Paint{LineWidth: 2, CTM: model.Scale(3, 3)}, 6},
		{"thin", Paint{LineWidth: 0, CTM: model.Scale(3, 3)}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.paint.DeviceLineWidth(); got != tt.want {
				t.Errorf("DeviceLineWidth = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSegmentTypeString(t *testing.T) {
	if PathCurveTo.String() != "CurveTo" || PathSegmentType(9).String() != "Unknown" {
		t.Error("unexpected segment type names")
	}
	if EvenOdd.String() != "evenodd" || NonZero.String() != "nonzero" {
		t.Error("unexpected fill rule names")
	}
}
