// Package pdfvector provides a fluent API for turning PDF content streams
// into device-space vector geometry.
//
// Basic usage:
//
//	res, err := pdfvector.FromBytes(stream).Run()
//	if err != nil {
//	    // handle error; res still holds the geometry read so far
//	}
//	for _, p := range res.Path.Painted {
//	    fmt.Println(p.Paint.Operator, len(p.Segments))
//	}
//
// With options:
//
//	res, err := pdfvector.FromWindow(window).
//	    Page(page, 2).
//	    Reporter(diag.NewLogReporter(logger)).
//	    Sink(raster).
//	    Run()
//
// For finer control the graphicsstate package exposes the interpreter and
// the operator dispatcher directly.
package pdfvector

import (
	"io"

	"github.com/tsawler/pdfvector/pages"
	"github.com/tsawler/pdfvector/randomaccess"
)

// FromBytes returns a Renderer over an in-memory content stream.
func FromBytes(data []byte) *Renderer {
	return &Renderer{
		data:    data,
		options: defaultOptions(),
	}
}

// FromReader returns a Renderer that reads its content stream from r. The
// reader is consumed by the first Run.
func FromReader(r io.Reader) *Renderer {
	if r == nil {
		return &Renderer{err: errNilSource, options: defaultOptions()}
	}
	return &Renderer{
		reader:  r,
		options: defaultOptions(),
	}
}

// FromWindow returns a Renderer over a bounded view of a random-access
// resource, such as one stream inside a memory-mapped file.
//
// Example:
//
//	f, err := randomaccess.OpenFile("page.bin")
//	if err != nil {
//	    // handle error
//	}
//	defer f.Close()
//	shared := randomaccess.Share(f)
//	n, _ := shared.Length()
//	res, err := pdfvector.FromWindow(randomaccess.NewWindow(shared, 0, n)).Run()
func FromWindow(w *randomaccess.Window) *Renderer {
	if w == nil {
		return &Renderer{err: errNilSource, options: defaultOptions()}
	}
	return FromReader(w)
}

// FromPage returns a Renderer over the page's content streams with the base
// CTM already seeded from the page geometry at the given scale.
func FromPage(p *pages.Page, scale float32) *Renderer {
	if p == nil {
		return &Renderer{err: errNilSource, options: defaultOptions()}
	}
	data, err := p.Contents()
	r := FromBytes(data).Page(p, scale)
	if err != nil {
		r.err = err
	}
	return r
}

// Must is a helper that wraps a call returning (T, error) and panics if the
// error is non-nil. It is intended for scripts and tests.
//
// Example:
//
//	res := pdfvector.Must(pdfvector.FromBytes(stream).Run())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
