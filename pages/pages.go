package pages

import (
	"bytes"
	"math"
	"reflect"

	"github.com/pkg/errors"

	"github.com/tsawler/pdfvector/core"
	"github.com/tsawler/pdfvector/model"
)

// Letter is the media box used when a page has none.
var Letter = model.NewBBox(0, 0, 612, 792)

// PageTree represents the PDF page tree
type PageTree struct {
	root     core.Dict
	maxDepth int
	pages    []*Page // Cached flattened page list
}

// NewPageTree creates a new page tree from the root pages dictionary.
// Kids must be direct dictionaries.
func NewPageTree(root core.Dict) *PageTree {
	return &PageTree{
		root:     root,
		maxDepth: core.DefaultInheritDepth,
	}
}

// Count returns the total number of pages
func (t *PageTree) Count() (int, error) {
	countObj := t.root.Get("Count")
	if countObj == nil {
		return 0, errors.New("page tree missing /Count entry")
	}

	count, ok := countObj.(core.Int)
	if !ok {
		return 0, errors.Errorf("invalid /Count type: %T", countObj)
	}

	return int(count), nil
}

// GetPage returns the page at the given index (0-based)
func (t *PageTree) GetPage(index int) (*Page, error) {
	pages, err := t.Pages()
	if err != nil {
		return nil, err
	}

	if index < 0 || index >= len(pages) {
		return nil, errors.Errorf("page index %d out of range [0, %d)", index, len(pages))
	}

	return pages[index], nil
}

// Pages returns all pages as a slice
func (t *PageTree) Pages() ([]*Page, error) {
	if t.pages == nil {
		if err := t.loadPages(); err != nil {
			return nil, err
		}
	}

	return t.pages, nil
}

// loadPages traverses the page tree and builds the flattened page list
func (t *PageTree) loadPages() error {
	pages := make([]*Page, 0)
	visited := make(map[uintptr]bool)

	if err := t.traversePageNode(t.root, nil, 0, visited, &pages); err != nil {
		return errors.Wrap(err, "failed to traverse page tree")
	}

	t.pages = pages
	return nil
}

// traversePageNode walks one node. A node reached twice or nested deeper
// than the limit is an error, so cyclic /Kids cannot loop forever.
func (t *PageTree) traversePageNode(node, parent core.Dict, depth int, visited map[uintptr]bool, out *[]*Page) error {
	if depth > t.maxDepth {
		return errors.Errorf("page tree deeper than %d", t.maxDepth)
	}
	id := reflect.ValueOf(node).Pointer()
	if visited[id] {
		return errors.New("page tree node visited twice")
	}
	visited[id] = true

	typeName, ok := node.GetName("Type")
	if !ok {
		return errors.New("page node missing /Type entry")
	}

	switch string(typeName) {
	case "Pages":
		kids, ok := node.GetArray("Kids")
		if !ok {
			return errors.New("pages node missing /Kids entry")
		}

		for i, kidObj := range kids {
			kidDict, ok := kidObj.(core.Dict)
			if !ok {
				return errors.Errorf("invalid kid %d type: %T", i, kidObj)
			}
			if err := t.traversePageNode(kidDict, node, depth+1, visited, out); err != nil {
				return err
			}
		}

	case "Page":
		*out = append(*out, NewPage(node, parent))

	default:
		return errors.Errorf("unexpected page node type: %s", typeName)
	}

	return nil
}

// Page represents a single PDF page
type Page struct {
	dict   core.Dict
	parent core.Dict // Parent Pages node, used when the page has no /Parent
}

// NewPage creates a new page from a dictionary. parent may be nil; the
// page's own /Parent chain is searched first.
func NewPage(dict core.Dict, parent core.Dict) *Page {
	return &Page{
		dict:   dict,
		parent: parent,
	}
}

// Dict returns the page dictionary
func (p *Page) Dict() core.Dict {
	return p.dict
}

// inherited resolves an inheritable attribute through /Parent links.
func (p *Page) inherited(key string) (core.Object, bool) {
	if obj, ok := p.dict.Inherited(key); ok {
		return obj, true
	}
	if p.parent != nil {
		return p.parent.Inherited(key)
	}
	return nil, false
}

// MediaBox returns the page media box.
// This is inheritable, so checks parent if not present
func (p *Page) MediaBox() (model.BBox, error) {
	return p.getBox("MediaBox")
}

// CropBox returns the page crop box.
// This is inheritable, defaults to MediaBox if not present
func (p *Page) CropBox() (model.BBox, error) {
	box, err := p.getBox("CropBox")
	if err != nil {
		return p.MediaBox()
	}
	return box, nil
}

// getBox retrieves an inheritable rectangle [llx lly urx ury]
func (p *Page) getBox(name string) (model.BBox, error) {
	boxObj, ok := p.inherited(name)
	if !ok {
		return model.BBox{}, errors.Errorf("%s not found", name)
	}

	boxArr, ok := boxObj.(core.Array)
	if !ok {
		return model.BBox{}, errors.Errorf("invalid %s type: %T", name, boxObj)
	}
	if len(boxArr) != 4 {
		return model.BBox{}, errors.Errorf("invalid %s length: %d (expected 4)", name, len(boxArr))
	}

	vals, ok := boxArr.Floats()
	if !ok {
		return model.BBox{}, errors.Errorf("invalid %s element type", name)
	}

	// Corners may be given in any order
	return model.NewBBoxFromPoints(
		model.Point{X: vals[0], Y: vals[1]},
		model.Point{X: vals[2], Y: vals[3]},
	), nil
}

// Resources returns the page resources dictionary
// This is inheritable
func (p *Page) Resources() (core.Dict, error) {
	resourcesObj, ok := p.inherited("Resources")
	if !ok {
		return nil, errors.New("resources not found")
	}

	resourcesDict, ok := resourcesObj.(core.Dict)
	if !ok {
		return nil, errors.Errorf("invalid Resources type: %T", resourcesObj)
	}

	return resourcesDict, nil
}

// Contents returns the page content, concatenating an array of streams
// with a newline between parts. A page without /Contents is empty.
func (p *Page) Contents() ([]byte, error) {
	contentsObj := p.dict.Get("Contents")
	if contentsObj == nil {
		return nil, nil
	}

	var parts []*core.Stream
	switch v := contentsObj.(type) {
	case *core.Stream:
		parts = append(parts, v)
	case core.Array:
		for i, elem := range v {
			s, ok := elem.(*core.Stream)
			if !ok {
				return nil, errors.Errorf("invalid contents[%d] type: %T", i, elem)
			}
			parts = append(parts, s)
		}
	default:
		return nil, errors.Errorf("invalid Contents type: %T", contentsObj)
	}

	var buf bytes.Buffer
	for i, s := range parts {
		data, err := s.Decoded()
		if err != nil {
			return nil, errors.Wrapf(err, "contents[%d]", i)
		}
		if i > 0 {
			buf.WriteByte('\n')
		}
		buf.Write(data)
	}
	return buf.Bytes(), nil
}

// Rotate returns the page rotation normalised to 0, 90, 180 or 270.
// This is inheritable. Values that are not a multiple of 90 count as 0.
func (p *Page) Rotate() int {
	rotateObj, ok := p.inherited("Rotate")
	if !ok {
		return 0
	}

	f, ok := core.ToFloat(rotateObj)
	if !ok {
		return 0
	}
	r := int(f)
	if float32(r) != f || r%90 != 0 {
		return 0
	}

	return ((r % 360) + 360) % 360
}

// UserUnit returns the size of a default user space unit in multiples of
// 1/72 inch. It defaults to 1.
func (p *Page) UserUnit() float32 {
	if u, ok := p.dict.GetNumber("UserUnit"); ok && u > 0 {
		return u
	}
	return 1
}

// Width returns the page width (from MediaBox)
func (p *Page) Width() (float32, error) {
	box, err := p.MediaBox()
	if err != nil {
		return 0, err
	}
	return box.Width, nil
}

// Height returns the page height (from MediaBox)
func (p *Page) Height() (float32, error) {
	box, err := p.MediaBox()
	if err != nil {
		return 0, err
	}
	return box.Height, nil
}

// visibleBox is the crop box, or Letter when the page has no usable box.
func (p *Page) visibleBox() model.BBox {
	box, err := p.CropBox()
	if err != nil || box.IsEmpty() {
		return Letter
	}
	return box
}

// DeviceSize returns the device width and height of the page at scale
// device units per user unit, after rotation.
func (p *Page) DeviceSize(scale float32) (width, height int) {
	box := p.visibleBox()
	s := scale * p.UserUnit()
	w, h := box.Width*s, box.Height*s
	if r := p.Rotate(); r == 90 || r == 270 {
		w, h = h, w
	}
	return int(math.Ceil(float64(w))), int(math.Ceil(float64(h)))
}

// BaseCTM returns the matrix taking default user space to a device space
// with its origin at the top left and y growing downward. The visible box
// is moved to the origin, scaled by UserUnit·scale, then rotated
// clockwise by /Rotate. It seeds the initial graphics state of the page.
func (p *Page) BaseCTM(scale float32) model.Matrix {
	box := p.visibleBox()
	s := scale * p.UserUnit()
	w, h := box.Width*s, box.Height*s

	var orient model.Matrix
	switch p.Rotate() {
	case 90:
		orient = model.Matrix{0, 1, 1, 0, 0, 0}
	case 180:
		orient = model.Matrix{-1, 0, 0, 1, w, 0}
	case 270:
		orient = model.Matrix{0, -1, -1, 0, h, w}
	default:
		orient = model.Matrix{1, 0, 0, -1, 0, h}
	}

	return model.Translate(-box.X, -box.Y).Multiply(model.Scale(s, s)).Multiply(orient)
}
