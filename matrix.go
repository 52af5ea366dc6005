package vglite

import (
	"github.com/chewxy/math32"
	"golang.org/x/image/math/f64"
)

// Matrix is a 3x3 transformation matrix in row-major order:
//
//	| M[0][0]  M[0][1]  M[0][2] |
//	| M[1][0]  M[1][1]  M[1][2] |
//	| M[2][0]  M[2][1]  M[2][2] |
//
// A point maps as
//
//	x' = M[0][0]*x + M[0][1]*y + M[0][2]
//	y' = M[1][0]*x + M[1][1]*y + M[1][2]
//
// The bottom row is carried for API compatibility and ignored by the
// software renderer, which only handles affine transforms.
type Matrix struct {
	M [3][3]float32
}

// Identity returns the identity transformation matrix.
func Identity() Matrix {
	return Matrix{M: [3][3]float32{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}}
}

// Translate creates a translation matrix.
func Translate(x, y float32) Matrix {
	m := Identity()
	m.M[0][2] = x
	m.M[1][2] = y
	return m
}

// Scale creates a scaling matrix.
func Scale(x, y float32) Matrix {
	m := Identity()
	m.M[0][0] = x
	m.M[1][1] = y
	return m
}

// Rotate creates a rotation matrix. The angle is in degrees, clockwise in
// a y-down coordinate system.
func Rotate(degrees float32) Matrix {
	rad := degrees * math32.Pi / 180
	sin, cos := math32.Sincos(rad)
	m := Identity()
	m.M[0][0], m.M[0][1] = cos, -sin
	m.M[1][0], m.M[1][1] = sin, cos
	return m
}

// Multiply returns m * other. Applying the result transforms by other
// first, then by m.
func (m Matrix) Multiply(other Matrix) Matrix {
	var r Matrix
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r.M[i][j] = m.M[i][0]*other.M[0][j] + m.M[i][1]*other.M[1][j] + m.M[i][2]*other.M[2][j]
		}
	}
	return r
}

// TransformPoint applies the affine part of m to a point.
func (m Matrix) TransformPoint(p Point) Point {
	return Point{
		X: m.M[0][0]*p.X + m.M[0][1]*p.Y + m.M[0][2],
		Y: m.M[1][0]*p.X + m.M[1][1]*p.Y + m.M[1][2],
	}
}

// Invert returns the inverse of the affine part of m.
// Returns the identity matrix and false if m is not invertible.
func (m Matrix) Invert() (Matrix, bool) {
	a, b, c := m.M[0][0], m.M[0][1], m.M[0][2]
	d, e, f := m.M[1][0], m.M[1][1], m.M[1][2]
	det := a*e - b*d
	if math32.Abs(det) < 1e-12 {
		return Identity(), false
	}

	inv := 1 / det
	r := Identity()
	r.M[0][0] = e * inv
	r.M[0][1] = -b * inv
	r.M[0][2] = (b*f - c*e) * inv
	r.M[1][0] = -d * inv
	r.M[1][1] = a * inv
	r.M[1][2] = (c*d - a*f) * inv
	return r, true
}

// IsIdentity returns true if the matrix is the identity matrix.
func (m Matrix) IsIdentity() bool {
	return m == Identity()
}

// Aff3 converts the affine part of m to the form used by
// golang.org/x/image/draw.
func (m Matrix) Aff3() f64.Aff3 {
	return f64.Aff3{
		float64(m.M[0][0]), float64(m.M[0][1]), float64(m.M[0][2]),
		float64(m.M[1][0]), float64(m.M[1][1]), float64(m.M[1][2]),
	}
}

// matrixOrIdentity dereferences m, treating nil as the identity.
func matrixOrIdentity(m *Matrix) Matrix {
	if m == nil {
		return Identity()
	}
	return *m
}
