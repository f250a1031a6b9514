package model

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

var (
	// ErrMalformedMatrix is returned when a matrix cannot be built from its
	// encoded form, or when an inverse is requested for a singular matrix.
	ErrMalformedMatrix = errors.New("malformed matrix")
)

// Matrix is a 2D affine transformation [a b c d e f] using the PDF row-vector
// convention:
//
//	            | a b 0 |
//	[x' y' 1] = [x y 1] · | c d 0 |
//	            | e f 1 |
//
// The third column is fixed and never stored. All arithmetic is single
// precision.
type Matrix [6]float32

// Identity returns an identity matrix
func Identity() Matrix {
	return Matrix{1, 0, 0, 1, 0, 0}
}

// New builds a matrix from its six components. Degenerate values such as a
// zero scale are accepted as-is.
func New(a, b, c, d, e, f float32) Matrix {
	return Matrix{a, b, c, d, e, f}
}

// FromSixNumbers builds a matrix from a flat numeric array as stored in PDF
// objects. Entries beyond the sixth are ignored.
func FromSixNumbers(vals []float32) (Matrix, error) {
	if len(vals) < 6 {
		return Identity(), ErrMalformedMatrix
	}
	return Matrix{vals[0], vals[1], vals[2], vals[3], vals[4], vals[5]}, nil
}

// Translate creates a translation matrix
func Translate(tx, ty float32) Matrix {
	return Matrix{1, 0, 0, 1, tx, ty}
}

// Scale creates a scaling matrix
func Scale(sx, sy float32) Matrix {
	return Matrix{sx, 0, 0, sy, 0, 0}
}

// Rotate creates a rotation matrix (angle in radians, counter-clockwise)
func Rotate(angle float64) Matrix {
	cos := float32(math.Cos(angle))
	sin := float32(math.Sin(angle))
	return Matrix{cos, sin, -sin, cos, 0, 0}
}

// Multiply returns m · other. Neither operand is modified.
func (m Matrix) Multiply(other Matrix) Matrix {
	var result Matrix
	m.MultiplyTo(&other, &result)
	return result
}

// MultiplyTo stores m · other in result and returns it. A nil result
// allocates a new matrix. Any of m, other and result may point at the same
// matrix: both operands are snapshotted before the first component of the
// result is written.
func (m *Matrix) MultiplyTo(other, result *Matrix) *Matrix {
	if result == nil {
		result = new(Matrix)
	}
	if other == nil {
		*result = *m
		return result
	}

	l := *m
	r := *other

	result[0] = l[0]*r[0] + l[1]*r[2]
	result[1] = l[0]*r[1] + l[1]*r[3]
	result[2] = l[2]*r[0] + l[3]*r[2]
	result[3] = l[2]*r[1] + l[3]*r[3]
	result[4] = l[4]*r[0] + l[5]*r[2] + r[4]
	result[5] = l[4]*r[1] + l[5]*r[3] + r[5]

	return result
}

// Concatenate premultiplies other into m in place: m = other · m.
func (m *Matrix) Concatenate(other Matrix) {
	other.MultiplyTo(m, m)
}

// Concat returns a copy of a with b concatenated (b · a). a is not changed.
func Concat(a, b Matrix) Matrix {
	c := a
	c.Concatenate(b)
	return c
}

// ScaleBy concatenates a scaling transform onto m.
func (m *Matrix) ScaleBy(sx, sy float32) {
	m.Concatenate(Scale(sx, sy))
}

// TranslateBy concatenates a translation onto m.
func (m *Matrix) TranslateBy(tx, ty float32) {
	m.Concatenate(Translate(tx, ty))
}

// Transform applies the matrix transformation to a point
func (m Matrix) Transform(p Point) Point {
	x, y := m.TransformPoint(p.X, p.Y)
	return Point{X: x, Y: y}
}

// TransformPoint maps (x, y) through the full affine transform.
func (m Matrix) TransformPoint(x, y float32) (float32, float32) {
	return x*m[0] + y*m[2] + m[4], x*m[1] + y*m[3] + m[5]
}

// TransformVector maps a displacement; the translation components are
// ignored.
func (m Matrix) TransformVector(dx, dy float32) (float32, float32) {
	return dx*m[0] + dy*m[2], dx*m[1] + dy*m[3]
}

// Inverse returns the inverse transform. Singular matrices yield
// ErrMalformedMatrix.
func (m Matrix) Inverse() (Matrix, error) {
	det := m.Determinant()
	if det == 0 || math.IsNaN(float64(det)) || math.IsInf(float64(det), 0) {
		return Matrix{}, ErrMalformedMatrix
	}
	return Matrix{
		m[3] / det,
		-m[1] / det,
		-m[2] / det,
		m[0] / det,
		(m[2]*m[5] - m[3]*m[4]) / det,
		(m[1]*m[4] - m[0]*m[5]) / det,
	}, nil
}

// Determinant returns ad - bc.
func (m Matrix) Determinant() float32 {
	return m[0]*m[3] - m[1]*m[2]
}

// ScaleX returns the a component.
func (m Matrix) ScaleX() float32 { return m[0] }

// ShearY returns the b component.
func (m Matrix) ShearY() float32 { return m[1] }

// ShearX returns the c component.
func (m Matrix) ShearX() float32 { return m[2] }

// ScaleY returns the d component.
func (m Matrix) ScaleY() float32 { return m[3] }

// TranslateX returns the e component.
func (m Matrix) TranslateX() float32 { return m[4] }

// TranslateY returns the f component.
func (m Matrix) TranslateY() float32 { return m[5] }

// XScale returns the length of the transformed x unit vector when the
// matrix is rotated or sheared, and the raw a component otherwise.
func (m Matrix) XScale() float32 {
	if m[1] == 0 && m[2] == 0 {
		return m[0]
	}
	return float32(math.Hypot(float64(m[0]), float64(m[1])))
}

// YScale is the y counterpart of XScale.
func (m Matrix) YScale() float32 {
	if m[1] == 0 && m[2] == 0 {
		return m[3]
	}
	return float32(math.Hypot(float64(m[2]), float64(m[3])))
}

// Values returns the homogeneous 3x3 form.
func (m Matrix) Values() [3][3]float32 {
	return [3][3]float32{
		{m[0], m[1], 0},
		{m[2], m[3], 0},
		{m[4], m[5], 1},
	}
}

// Array returns the six components a, b, c, d, e, f.
func (m Matrix) Array() [6]float32 {
	return [6]float32(m)
}

// IsIdentity returns true if the matrix is an identity matrix
func (m Matrix) IsIdentity() bool {
	return m == Identity()
}

// String formats the matrix as [a,b,c,d,e,f].
func (m Matrix) String() string {
	parts := make([]string, len(m))
	for i, v := range m {
		parts[i] = strconv.FormatFloat(float64(v), 'g', -1, 32)
	}
	return "[" + strings.Join(parts, ",") + "]"
}
