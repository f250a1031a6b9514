package pages

import (
	"testing"

	"github.com/tsawler/pdfvector/core"
	"github.com/tsawler/pdfvector/model"
)

func letterBox() core.Array {
	return core.Array{core.Int(0), core.Int(0), core.Int(612), core.Int(792)}
}

func TestPageTreeFlatStructure(t *testing.T) {
	pagesRoot := core.Dict{
		"Type":  core.Name("Pages"),
		"Count": core.Int(3),
		"Kids": core.Array{
			core.Dict{"Type": core.Name("Page"), "MediaBox": letterBox()},
			core.Dict{"Type": core.Name("Page"), "MediaBox": letterBox()},
			core.Dict{"Type": core.Name("Page"), "MediaBox": letterBox()},
		},
	}

	tree := NewPageTree(pagesRoot)

	count, err := tree.Count()
	if err != nil {
		t.Fatalf("failed to get count: %v", err)
	}
	if count != 3 {
		t.Errorf("expected count=3, got %d", count)
	}

	pages, err := tree.Pages()
	if err != nil {
		t.Fatalf("failed to get pages: %v", err)
	}
	if len(pages) != 3 {
		t.Errorf("expected 3 pages, got %d", len(pages))
	}

	page, err := tree.GetPage(2)
	if err != nil {
		t.Fatalf("failed to get page 2: %v", err)
	}
	if page == nil {
		t.Fatal("expected page 2")
	}
}

func TestPageTreeNestedStructure(t *testing.T) {
	leaf := core.Dict{"Type": core.Name("Page")}
	inner := core.Dict{
		"Type":   core.Name("Pages"),
		"Kids":   core.Array{leaf},
		"Rotate": core.Int(90),
	}
	root := core.Dict{
		"Type":     core.Name("Pages"),
		"Count":    core.Int(2),
		"MediaBox": letterBox(),
		"Kids":     core.Array{core.Dict{"Type": core.Name("Page")}, inner},
	}
	inner["Parent"] = root

	pages, err := NewPageTree(root).Pages()
	if err != nil {
		t.Fatalf("failed to get pages: %v", err)
	}
	if len(pages) != 2 {
		t.Fatalf("expected 2 pages, got %d", len(pages))
	}

	// The leaf has no /Parent of its own; the tree supplies it
	if pages[1].Rotate() != 90 {
		t.Errorf("expected inherited rotation 90, got %d", pages[1].Rotate())
	}
	box, err := pages[1].MediaBox()
	if err != nil {
		t.Fatalf("MediaBox failed: %v", err)
	}
	if box != model.NewBBox(0, 0, 612, 792) {
		t.Errorf("unexpected inherited MediaBox %+v", box)
	}
}

func TestPageTreeCycle(t *testing.T) {
	root := core.Dict{"Type": core.Name("Pages"), "Count": core.Int(1)}
	root["Kids"] = core.Array{root}

	if _, err := NewPageTree(root).Pages(); err == nil {
		t.Error("expected error for cyclic page tree")
	}
}

func TestPageTreeOutOfBounds(t *testing.T) {
	tree := NewPageTree(core.Dict{
		"Type":  core.Name("Pages"),
		"Count": core.Int(1),
		"Kids":  core.Array{core.Dict{"Type": core.Name("Page")}},
	})

	if _, err := tree.GetPage(-1); err == nil {
		t.Error("expected error for index -1")
	}
	if _, err := tree.GetPage(1); err == nil {
		t.Error("expected error for index 1")
	}
}

func TestPageTreeErrors(t *testing.T) {
	tests := []struct {
		name string
		root core.Dict
	}{
		{"missing type", core.Dict{"Kids": core.Array{}}},
		{"missing kids", core.Dict{"Type": core.Name("Pages")}},
		{"kid not a dictionary", core.Dict{"Type": core.Name("Pages"), "Kids": core.Array{core.Int(1)}}},
		{"unexpected type", core.Dict{"Type": core.Name("Catalog")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewPageTree(tt.root).Pages(); err == nil {
				t.Error("expected error")
			}
		})
	}

	if _, err := NewPageTree(core.Dict{}).Count(); err == nil {
		t.Error("expected error for missing /Count")
	}
}

func TestPageMediaBox(t *testing.T) {
	page := NewPage(core.Dict{
		"MediaBox": core.Array{core.Real(612), core.Int(792), core.Int(0), core.Real(0)},
	}, nil)

	box, err := page.MediaBox()
	if err != nil {
		t.Fatalf("failed to get MediaBox: %v", err)
	}
	if box != model.NewBBox(0, 0, 612, 792) {
		t.Errorf("unexpected MediaBox: %+v", box)
	}

	w, _ := page.Width()
	h, _ := page.Height()
	if w != 612 || h != 792 {
		t.Errorf("expected 612x792, got %vx%v", w, h)
	}
}

func TestPageMissingMediaBox(t *testing.T) {
	page := NewPage(core.Dict{}, nil)
	if _, err := page.MediaBox(); err == nil {
		t.Error("expected error for missing MediaBox")
	}
	if _, err := NewPage(core.Dict{"MediaBox": core.Array{core.Int(1)}}, nil).MediaBox(); err == nil {
		t.Error("expected error for short MediaBox")
	}
	if _, err := NewPage(core.Dict{"MediaBox": core.Name("A4")}, nil).MediaBox(); err == nil {
		t.Error("expected error for non-array MediaBox")
	}
}

func TestPageCropBoxDefaultsToMediaBox(t *testing.T) {
	page := NewPage(core.Dict{"MediaBox": letterBox()}, nil)
	box, err := page.CropBox()
	if err != nil {
		t.Fatalf("CropBox failed: %v", err)
	}
	if box != model.NewBBox(0, 0, 612, 792) {
		t.Errorf("unexpected CropBox: %+v", box)
	}

	page = NewPage(core.Dict{
		"MediaBox": letterBox(),
		"CropBox":  core.Array{core.Int(10), core.Int(20), core.Int(110), core.Int(220)},
	}, nil)
	box, _ = page.CropBox()
	if box != model.NewBBox(10, 20, 100, 200) {
		t.Errorf("unexpected CropBox: %+v", box)
	}
}

func TestPageInheritableResources(t *testing.T) {
	resources := core.Dict{"Pattern": core.Dict{}}
	grandparent := core.Dict{"Resources": resources}
	parent := core.Dict{"Parent": grandparent}
	page := NewPage(core.Dict{"Parent": parent}, nil)

	got, err := page.Resources()
	if err != nil {
		t.Fatalf("failed to get Resources: %v", err)
	}
	if _, ok := got.GetDict("Pattern"); !ok {
		t.Error("expected inherited /Pattern resources")
	}

	if _, err := NewPage(core.Dict{}, nil).Resources(); err == nil {
		t.Error("expected error for missing Resources")
	}
}

func TestPageInheritanceCycle(t *testing.T) {
	a := core.Dict{}
	b := core.Dict{"Parent": a}
	a["Parent"] = b

	page := NewPage(core.Dict{"Parent": a}, nil)
	if page.Rotate() != 0 {
		t.Error("cyclic parents should fall back to the default rotation")
	}
	if _, err := page.Resources(); err == nil {
		t.Error("cyclic parents should not resolve Resources")
	}
}

func TestPageContents(t *testing.T) {
	single := NewPage(core.Dict{"Contents": &core.Stream{Data: []byte("0 0 m")}}, nil)
	data, err := single.Contents()
	if err != nil || string(data) != "0 0 m" {
		t.Errorf("Contents = %q, %v", data, err)
	}

	multi := NewPage(core.Dict{"Contents": core.Array{
		&core.Stream{Data: []byte("0 0 m")},
		&core.Stream{Data: []byte("1 1 l S")},
	}}, nil)
	data, err = multi.Contents()
	if err != nil || string(data) != "0 0 m\n1 1 l S" {
		t.Errorf("Contents = %q, %v", data, err)
	}

	empty := NewPage(core.Dict{}, nil)
	if data, err := empty.Contents(); data != nil || err != nil {
		t.Errorf("Contents = %q, %v; want nil", data, err)
	}

	bad := NewPage(core.Dict{"Contents": core.Array{core.Int(4)}}, nil)
	if _, err := bad.Contents(); err == nil {
		t.Error("expected error for non-stream contents")
	}
}

func TestPageRotate(t *testing.T) {
	tests := []struct {
		value core.Object
		want  int
	}{
		{nil, 0},
		{core.Int(90), 90},
		{core.Int(-90), 270},
		{core.Int(450), 90},
		{core.Real(180), 180},
		{core.Int(45), 0},
		{core.Name("x"), 0},
	}

	for _, tt := range tests {
		dict := core.Dict{}
		if tt.value != nil {
			dict["Rotate"] = tt.value
		}
		if got := NewPage(dict, nil).Rotate(); got != tt.want {
			t.Errorf("Rotate(%v) = %d, want %d", tt.value, got, tt.want)
		}
	}
}

func TestPageUserUnit(t *testing.T) {
	if u := NewPage(core.Dict{}, nil).UserUnit(); u != 1 {
		t.Errorf("default UserUnit = %v", u)
	}
	if u := NewPage(core.Dict{"UserUnit": core.Real(2.5)}, nil).UserUnit(); u != 2.5 {
		t.Errorf("UserUnit = %v", u)
	}
	if u := NewPage(core.Dict{"UserUnit": core.Int(-1)}, nil).UserUnit(); u != 1 {
		t.Errorf("negative UserUnit should be ignored, got %v", u)
	}
}

func TestBaseCTM(t *testing.T) {
	box := core.Array{core.Int(0), core.Int(0), core.Int(100), core.Int(200)}

	tests := []struct {
		rotate     int
		wantOrigin model.Point // user (0, 0), bottom left
		wantTop    model.Point // user (0, 200), top left
		wantW      int
		wantH      int
	}{
		{0, model.Point{X: 0, Y: 200}, model.Point{X: 0, Y: 0}, 100, 200},
		{90, model.Point{X: 0, Y: 0}, model.Point{X: 200, Y: 0}, 200, 100},
		{180, model.Point{X: 100, Y: 0}, model.Point{X: 100, Y: 200}, 100, 200},
		{270, model.Point{X: 200, Y: 100}, model.Point{X: 0, Y: 100}, 200, 100},
	}

	for _, tt := range tests {
		page := NewPage(core.Dict{"MediaBox": box, "Rotate": core.Int(tt.rotate)}, nil)
		ctm := page.BaseCTM(1)

		if got := ctm.Transform(model.Point{X: 0, Y: 0}); got != tt.wantOrigin {
			t.Errorf("rotate %d: origin mapped to %v, want %v", tt.rotate, got, tt.wantOrigin)
		}
		if got := ctm.Transform(model.Point{X: 0, Y: 200}); got != tt.wantTop {
			t.Errorf("rotate %d: top left mapped to %v, want %v", tt.rotate, got, tt.wantTop)
		}
		if w, h := page.DeviceSize(1); w != tt.wantW || h != tt.wantH {
			t.Errorf("rotate %d: DeviceSize = %dx%d, want %dx%d", tt.rotate, w, h, tt.wantW, tt.wantH)
		}
	}
}

func TestBaseCTMOffsetBoxAndScale(t *testing.T) {
	page := NewPage(core.Dict{
		"MediaBox": core.Array{core.Int(50), core.Int(50), core.Int(150), core.Int(250)},
		"UserUnit": core.Int(2),
	}, nil)

	ctm := page.BaseCTM(1.5)
	// bottom left of the box lands at the bottom of a 300x600 device
	if got := ctm.Transform(model.Point{X: 50, Y: 50}); got != (model.Point{X: 0, Y: 600}) {
		t.Errorf("box origin mapped to %v", got)
	}
	if got := ctm.Transform(model.Point{X: 150, Y: 250}); got != (model.Point{X: 300, Y: 0}) {
		t.Errorf("box corner mapped to %v", got)
	}
	if w, h := page.DeviceSize(1.5); w != 300 || h != 600 {
		t.Errorf("DeviceSize = %dx%d", w, h)
	}
}

func TestBaseCTMWithoutMediaBox(t *testing.T) {
	ctm := NewPage(core.Dict{}, nil).BaseCTM(1)
	if got := ctm.Transform(model.Point{}); got != (model.Point{X: 0, Y: 792}) {
		t.Errorf("Letter fallback origin mapped to %v", got)
	}
}
