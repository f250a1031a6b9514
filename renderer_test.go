package pdfvector

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/google/go-cmp/cmp"

	"github.com/tsawler/pdfvector/core"
	"github.com/tsawler/pdfvector/diag"
	"github.com/tsawler/pdfvector/graphicsstate"
	"github.com/tsawler/pdfvector/model"
	"github.com/tsawler/pdfvector/pages"
	"github.com/tsawler/pdfvector/pattern"
	"github.com/tsawler/pdfvector/randomaccess"
	"github.com/tsawler/pdfvector/render"
)

func pt(x, y float32) model.Point { return model.Point{X: x, Y: y} }

// paintedPoints flattens the points of every painted path.
func paintedPoints(res *Result) []model.Point {
	var out []model.Point
	for _, p := range res.Path.Painted {
		for _, seg := range p.Segments {
			out = append(out, seg.Points...)
		}
	}
	return out
}

func TestFromBytes(t *testing.T) {
	res, err := FromBytes([]byte("10 20 m 30 40 l S")).Run()
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if res.Operators != 3 {
		t.Errorf("Operators = %d, want 3", res.Operators)
	}
	if len(res.Diagnostics) != 0 {
		t.Errorf("unexpected diagnostics: %v", res.Diagnostics)
	}
	if res.Err() != nil {
		t.Errorf("Err() = %v, want nil", res.Err())
	}
	if len(res.Path.Painted) != 1 || res.Path.Painted[0].Paint.Operator != "S" {
		t.Fatalf("Painted = %+v", res.Path.Painted)
	}
	if diff := cmp.Diff([]model.Point{pt(10, 20), pt(30, 40)}, paintedPoints(res)); diff != "" {
		t.Errorf("points mismatch (-want +got):\n%s", diff)
	}
}

func TestEmptyStream(t *testing.T) {
	res, err := FromBytes(nil).Run()
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if res.Operators != 0 || !res.Path.IsEmpty() {
		t.Errorf("empty stream produced %d operators, %d segments", res.Operators, res.Path.SegmentCount())
	}
}

func TestBaseCTM(t *testing.T) {
	res, err := FromBytes([]byte("1 1 m 2 2 l S")).
		BaseCTM(model.Translate(100, 50)).
		Run()
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if diff := cmp.Diff([]model.Point{pt(101, 51), pt(102, 52)}, paintedPoints(res)); diff != "" {
		t.Errorf("points mismatch (-want +got):\n%s", diff)
	}
}

func TestPage(t *testing.T) {
	page := pages.NewPage(core.Dict{
		"MediaBox": core.Array{core.Int(0), core.Int(0), core.Int(100), core.Int(200)},
	}, nil)

	res, err := FromBytes([]byte("10 20 m 30 40 l S")).Page(page, 1).Run()
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	// y is flipped against the top of the page
	if diff := cmp.Diff([]model.Point{pt(10, 180), pt(30, 160)}, paintedPoints(res)); diff != "" {
		t.Errorf("points mismatch (-want +got):\n%s", diff)
	}
}

func TestFromPage(t *testing.T) {
	page := pages.NewPage(core.Dict{
		"MediaBox": core.Array{core.Int(0), core.Int(0), core.Int(100), core.Int(100)},
		"Contents": core.Array{
			&core.Stream{Data: []byte("0 0 m")},
			&core.Stream{Data: []byte("10 10 l S")},
		},
	}, nil)

	res, err := FromPage(page, 2).Run()
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if diff := cmp.Diff([]model.Point{pt(0, 200), pt(20, 180)}, paintedPoints(res)); diff != "" {
		t.Errorf("points mismatch (-want +got):\n%s", diff)
	}

	if _, err := FromPage(nil, 1).Run(); err == nil {
		t.Error("expected error for nil page")
	}

	bad := pages.NewPage(core.Dict{"Contents": core.Int(3)}, nil)
	if _, err := FromPage(bad, 1).Run(); err == nil {
		t.Error("expected error for invalid /Contents")
	}
}

func TestPattern(t *testing.T) {
	p, err := pattern.New(core.Dict{
		"PatternType": core.Int(2),
		"Matrix":      core.Array{core.Int(2), core.Int(0), core.Int(0), core.Int(2), core.Int(5), core.Int(5)},
		"Shading":     core.Dict{"ShadingType": core.Int(2)},
	})
	if err != nil {
		t.Fatalf("pattern.New failed: %v", err)
	}

	res, err := FromBytes([]byte("1 1 m 2 2 l S")).
		BaseCTM(model.Translate(10, 0)).
		Pattern(p).
		Run()
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	// pattern matrix first, then the base CTM
	if diff := cmp.Diff([]model.Point{pt(17, 7), pt(19, 9)}, paintedPoints(res)); diff != "" {
		t.Errorf("points mismatch (-want +got):\n%s", diff)
	}
}

func TestDiagnosticsCollected(t *testing.T) {
	var forwarded []diag.Diagnostic
	rep := diag.ReporterFunc(func(d diag.Diagnostic) {
		forwarded = append(forwarded, d)
	})

	res, err := FromBytes([]byte("5 5 l 0 0 m 1 zz 10 10 l S")).Reporter(rep).Run()
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if len(res.Diagnostics) != 2 {
		t.Fatalf("got %d diagnostics, want 2: %v", len(res.Diagnostics), res.Diagnostics)
	}
	if len(forwarded) != 2 {
		t.Errorf("reporter saw %d diagnostics, want 2", len(forwarded))
	}
	if k := diag.KindOf(res.Diagnostics[0]); k != diag.KindNoCurrentPoint {
		t.Errorf("first diagnostic kind = %v, want NoCurrentPoint", k)
	}
	if k := diag.KindOf(res.Diagnostics[1]); k != diag.KindUnknownOperator {
		t.Errorf("second diagnostic kind = %v, want UnknownOperator", k)
	}
	if !errors.Is(res.Err(), diag.ErrUnknownOperator) {
		t.Errorf("Err() = %v, want it to contain unknown operator", res.Err())
	}

	// The valid path still comes through.
	if diff := cmp.Diff([]model.Point{pt(0, 0), pt(10, 10)}, paintedPoints(res)); diff != "" {
		t.Errorf("points mismatch (-want +got):\n%s", diff)
	}
}

func TestStrict(t *testing.T) {
	res, err := FromBytes([]byte("0 0 m 5 5 l S 1 2 l 9 9 m")).Strict().Run()
	if err == nil {
		t.Fatal("expected strict run to fail")
	}
	if !errors.Is(err, diag.ErrNoCurrentPoint) {
		t.Errorf("err = %v, want no current point", err)
	}
	if res == nil {
		t.Fatal("expected partial result")
	}
	if len(res.Path.Painted) != 1 {
		t.Errorf("partial result has %d painted paths, want 1", len(res.Path.Painted))
	}
	if res.Operators != 4 {
		t.Errorf("Operators = %d, want 4", res.Operators)
	}
}

func TestMaxStackDepth(t *testing.T) {
	res, err := FromBytes([]byte("q q Q Q")).MaxStackDepth(1).Run()
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	kinds := make([]diag.Kind, 0, len(res.Diagnostics))
	for _, d := range res.Diagnostics {
		kinds = append(kinds, diag.KindOf(d))
	}
	want := []diag.Kind{diag.KindStackOverflow, diag.KindStackUnderflow}
	if diff := cmp.Diff(want, kinds); diff != "" {
		t.Errorf("kinds mismatch (-want +got):\n%s", diff)
	}
}

func TestReadError(t *testing.T) {
	readErr := errors.New("disk on fire")
	res, err := FromReader(iotest.ErrReader(readErr)).Run()
	if !errors.Is(err, readErr) {
		t.Errorf("err = %v, want it to wrap the read error", err)
	}
	if res == nil || res.Operators != 0 || !res.Path.IsEmpty() {
		t.Errorf("expected an empty result, got %+v", res)
	}

	if _, err := FromReader(nil).Run(); err == nil {
		t.Error("expected error for nil reader")
	}
}

func TestReadErrorKeepsPartialResult(t *testing.T) {
	readErr := errors.New("connection reset")
	r := io.MultiReader(
		strings.NewReader("0 0 m 10 10 l S 5 5 m 20 20 l S "),
		iotest.ErrReader(readErr),
	)

	res, err := FromReader(iotest.HalfReader(r)).Run()
	if !errors.Is(err, readErr) {
		t.Fatalf("err = %v, want it to wrap the read error", err)
	}
	if res == nil {
		t.Fatal("expected the operators read before the failure")
	}
	if res.Operators != 6 {
		t.Errorf("Operators = %d, want 6", res.Operators)
	}
	if len(res.Path.Painted) != 2 {
		t.Errorf("Painted = %d paths, want 2", len(res.Path.Painted))
	}
}

func TestFromReader(t *testing.T) {
	res, err := FromReader(bytes.NewReader([]byte("0 0 10 10 re f"))).Run()
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if len(res.Path.Painted) != 1 || !res.Path.Painted[0].Paint.Fill {
		t.Errorf("Painted = %+v", res.Path.Painted)
	}
}

func TestFromWindow(t *testing.T) {
	data := []byte("garbage 0 0 m 4 4 l S trailing")
	shared := randomaccess.Share(randomaccess.NewBuffer(data))
	start := int64(bytes.Index(data, []byte("0 0 m")))
	length := int64(len("0 0 m 4 4 l S"))

	res, err := FromWindow(randomaccess.NewWindow(shared, start, length)).Run()
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if len(res.Diagnostics) != 0 {
		t.Errorf("unexpected diagnostics: %v", res.Diagnostics)
	}
	if diff := cmp.Diff([]model.Point{pt(0, 0), pt(4, 4)}, paintedPoints(res)); diff != "" {
		t.Errorf("points mismatch (-want +got):\n%s", diff)
	}

	if _, err := FromWindow(nil).Run(); err == nil {
		t.Error("expected error for nil window")
	}
}

func TestSink(t *testing.T) {
	raster := render.NewRaster(20, 20)
	extractor := graphicsstate.NewPathExtractor()

	res, err := FromBytes([]byte("2 2 10 10 re f 0 0 m 15 0 l S")).
		Sink(raster).
		Sink(extractor).
		Run()
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if len(res.Path.Painted) != 2 {
		t.Errorf("Result path has %d painted paths, want 2", len(res.Path.Painted))
	}
	if raster.Painted() != 2 {
		t.Errorf("raster painted %d paths, want 2", raster.Painted())
	}
	if raster.Image().AlphaAt(5, 5).A == 0 {
		t.Error("expected the filled rectangle to cover (5, 5)")
	}
	if len(extractor.Lines) != 1 {
		t.Errorf("extractor found %d lines, want 1", len(extractor.Lines))
	}
}

func TestChainImmutability(t *testing.T) {
	base := FromBytes([]byte("1 1 m 2 2 l S"))
	moved := base.BaseCTM(model.Translate(10, 10))
	sinkA := base.Sink(graphicsstate.NewPath())
	sinkB := sinkA.Sink(graphicsstate.NewPath())

	if base.options.base != model.Identity() {
		t.Error("BaseCTM modified the original renderer")
	}
	if moved.options.base == base.options.base {
		t.Error("BaseCTM did not take effect on the new renderer")
	}
	if len(base.options.sinks) != 0 || len(sinkA.options.sinks) != 1 || len(sinkB.options.sinks) != 2 {
		t.Errorf("sink counts = %d, %d, %d; want 0, 1, 2",
			len(base.options.sinks), len(sinkA.options.sinks), len(sinkB.options.sinks))
	}

	strict := base.Strict()
	if base.options.strict || !strict.options.strict {
		t.Error("Strict did not produce an independent renderer")
	}
}

func TestMust(t *testing.T) {
	res := Must(FromBytes([]byte("0 0 m")).Run())
	if res.Operators != 1 {
		t.Errorf("Operators = %d, want 1", res.Operators)
	}

	defer func() {
		if recover() == nil {
			t.Error("Must should panic on error")
		}
	}()
	Must(FromReader(nil).Run())
}
