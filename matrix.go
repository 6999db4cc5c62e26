package gg

import "math"

// Matrix is a 2D affine transformation in row-major form:
//
//	| A  B  C |
//	| D  E  F |
//
// representing x' = A*x + B*y + C, y' = D*x + E*y + F.
type Matrix struct {
	A, B, C float64
	D, E, F float64
}

// Identity returns the identity matrix.
func Identity() Matrix {
	return Matrix{A: 1, B: 0, C: 0, D: 0, E: 1, F: 0}
}

// Translate creates a translation matrix.
func Translate(x, y float64) Matrix {
	return Matrix{A: 1, B: 0, C: x, D: 0, E: 1, F: y}
}

// Scale creates a scaling matrix.
func Scale(x, y float64) Matrix {
	return Matrix{A: x, B: 0, C: 0, D: 0, E: y, F: 0}
}

// Rotate creates a rotation matrix (angle in radians).
func Rotate(angle float64) Matrix {
	cos, sin := math.Cos(angle), math.Sin(angle)
	return Matrix{A: cos, B: -sin, C: 0, D: sin, E: cos, F: 0}
}

// Shear creates a shear matrix.
func Shear(x, y float64) Matrix {
	return Matrix{A: 1, B: x, C: 0, D: y, E: 1, F: 0}
}

// Multiply returns m composed with other as m*other: points are first
// transformed by other, then by m.
func (m Matrix) Multiply(other Matrix) Matrix {
	return Matrix{
		A: m.A*other.A + m.B*other.D,
		B: m.A*other.B + m.B*other.E,
		C: m.A*other.C + m.B*other.F + m.C,
		D: m.D*other.A + m.E*other.D,
		E: m.D*other.B + m.E*other.E,
		F: m.D*other.C + m.E*other.F + m.F,
	}
}

// TransformPoint applies the matrix to a point.
func (m Matrix) TransformPoint(p Point) Point {
	return Point{X: m.A*p.X + m.B*p.Y + m.C, Y: m.D*p.X + m.E*p.Y + m.F}
}

// TransformVector applies the linear part of the matrix only (no translation).
func (m Matrix) TransformVector(p Point) Point {
	return Point{X: m.A*p.X + m.B*p.Y, Y: m.D*p.X + m.E*p.Y}
}

// Determinant returns A*E - B*D.
func (m Matrix) Determinant() float64 {
	return m.A*m.E - m.B*m.D
}

// invert returns the inverse of m and whether m was invertible.
func (m Matrix) invert() (Matrix, bool) {
	det := m.Determinant()
	if det == 0 {
		return Identity(), false
	}
	inv := 1.0 / det
	return Matrix{
		A: m.E * inv,
		B: -m.B * inv,
		C: (m.B*m.F - m.C*m.E) * inv,
		D: -m.D * inv,
		E: m.A * inv,
		F: (m.C*m.D - m.A*m.F) * inv,
	}, true
}

// ScaleFactor returns an approximate uniform scale factor for this matrix,
// used to size line widths and flattening tolerances under non-uniform
// transforms. It is the square root of the absolute determinant.
func (m Matrix) ScaleFactor() float64 {
	return math.Sqrt(math.Abs(m.Determinant()))
}

// IsIdentity returns true if the matrix is the identity matrix.
func (m Matrix) IsIdentity() bool {
	return m.A == 1 && m.B == 0 && m.C == 0 &&
		m.D == 0 && m.E == 1 && m.F == 0
}

// Transform is a forward/inverse matrix pair, recomputed together whenever
// either half changes. A degenerate (non-invertible) forward matrix is
// legal: Inverse then holds the identity and Degenerate is true, which
// callers check before filling or stroking rather than re-deriving
// invertibility from the determinant on every draw.
type Transform struct {
	Forward    Matrix
	Inverse    Matrix
	Degenerate bool
}

// NewTransform builds a Transform from a forward matrix, computing its
// inverse eagerly.
func NewTransform(forward Matrix) Transform {
	inv, ok := forward.invert()
	return Transform{Forward: forward, Inverse: inv, Degenerate: !ok}
}

// IdentityTransform returns the identity Transform.
func IdentityTransform() Transform {
	return NewTransform(Identity())
}

// Then composes t followed by m: the new forward matrix is t.Forward*m (m
// is applied in t's local coordinate space), matching
// Canvas.Translate/Scale/Rotate/Shear/Transform.
func (t Transform) Then(m Matrix) Transform {
	return NewTransform(t.Forward.Multiply(m))
}

// WithForward replaces the forward matrix outright (Canvas.SetTransform).
func (t Transform) WithForward(m Matrix) Transform {
	return NewTransform(m)
}

// Point transforms a user-space point into device space.
func (t Transform) Point(p Point) Point {
	return t.Forward.TransformPoint(p)
}

// InversePoint transforms a device-space point back into user space.
func (t Transform) InversePoint(p Point) Point {
	return t.Inverse.TransformPoint(p)
}

// Vector transforms a user-space displacement into device space (no
// translation).
func (t Transform) Vector(v Point) Point {
	return t.Forward.TransformVector(v)
}

// InverseVector transforms a device-space displacement back into user
// space.
func (t Transform) InverseVector(v Point) Point {
	return t.Inverse.TransformVector(v)
}
