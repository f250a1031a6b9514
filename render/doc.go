// Package render provides path sinks that turn interpreted geometry into
// pictures.
//
// [Raster] scan-converts painted paths into an 8-bit coverage mask with
// golang.org/x/image/vector. [SVG] collects painted paths as <path>
// elements and writes a standalone SVG document. Both receive device-space
// coordinates from a graphicsstate.Interpreter and can be combined with
// graphicsstate.Tee.
//
// Colour is not tracked by the interpreter, so fills and strokes are drawn
// in a single ink. Clipping paths are not applied.
package render
