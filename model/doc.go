// Package model provides the geometric primitives shared by every stage of
// the vector pipeline.
//
// # Matrices
//
// [Matrix] is the six-component affine transform used by PDF, applied to
// row vectors:
//
//	ctm := model.Identity()
//	ctm.Concatenate(model.Translate(72, 72)) // cm: ctm = delta · ctm
//	x, y := ctm.TransformPoint(10, 10)
//
// Components are single precision. [Matrix.MultiplyTo] writes into a
// caller-supplied result and tolerates the result aliasing either operand,
// which is what [Matrix.Concatenate] relies on.
//
// # Points and boxes
//
// [Point] and [BBox] carry device or user space coordinates; the package
// does not track which space a value belongs to.
package model
