package agg

import (
	"fmt"
	"math"
)

// Transform is a 2D affine transformation in row-major order:
//
//	| A  B  C |
//	| D  E  F |
//
// which maps
//
//	x' = A*x + B*y + C
//	y' = D*x + E*y + F
//
// The Translate, Rotate, Scale and Skew methods modify the transform in
// place and apply the new operation after the existing ones, so
//
//	t.Translate(-cx, -cy)
//	t.Rotate(a)
//	t.Translate(cx, cy)
//
// rotates about (cx, cy).
type Transform struct {
	A, B, C float64
	D, E, F float64
}

// Identity returns the identity transform.
func Identity() Transform {
	return Transform{A: 1, E: 1}
}

// NewTranslate returns a translation.
func NewTranslate(x, y float64) Transform {
	return Transform{A: 1, C: x, E: 1, F: y}
}

// NewScale returns a scaling about the origin.
func NewScale(sx, sy float64) Transform {
	return Transform{A: sx, E: sy}
}

// NewRotate returns a rotation about the origin by angle radians.
func NewRotate(angle float64) Transform {
	sin, cos := math.Sincos(angle)
	return Transform{A: cos, B: -sin, D: sin, E: cos}
}

// NewSkew returns a skew by the angles ax (along X) and ay (along Y), in
// radians.
func NewSkew(ax, ay float64) Transform {
	return Transform{A: 1, B: math.Tan(ax), D: math.Tan(ay), E: 1}
}

// Multiply returns m * other, the transform that applies other first and
// then m.
func (m Transform) Multiply(other Transform) Transform {
	return Transform{
		A: m.A*other.A + m.B*other.D,
		B: m.A*other.B + m.B*other.E,
		C: m.A*other.C + m.B*other.F + m.C,
		D: m.D*other.A + m.E*other.D,
		E: m.D*other.B + m.E*other.E,
		F: m.D*other.C + m.E*other.F + m.F,
	}
}

// Then applies op after the transforms already in t.
func (t *Transform) Then(op Transform) {
	*t = op.Multiply(*t)
}

// Translate appends a translation.
func (t *Transform) Translate(x, y float64) { t.Then(NewTranslate(x, y)) }

// Rotate appends a rotation about the origin.
func (t *Transform) Rotate(angle float64) { t.Then(NewRotate(angle)) }

// Scale appends a scaling about the origin.
func (t *Transform) Scale(sx, sy float64) { t.Then(NewScale(sx, sy)) }

// Skew appends a skew.
func (t *Transform) Skew(ax, ay float64) { t.Then(NewSkew(ax, ay)) }

// Reset sets t back to the identity.
func (t *Transform) Reset() { *t = Identity() }

// TransformPoint applies the transformation to a point.
func (m Transform) TransformPoint(p Point) Point {
	return Point{
		X: m.A*p.X + m.B*p.Y + m.C,
		Y: m.D*p.X + m.E*p.Y + m.F,
	}
}

// TransformVector applies the linear part of the transformation.
func (m Transform) TransformVector(p Point) Point {
	return Point{
		X: m.A*p.X + m.B*p.Y,
		Y: m.D*p.X + m.E*p.Y,
	}
}

// Determinant returns the determinant of the linear part.
func (m Transform) Determinant() float64 {
	return m.A*m.E - m.B*m.D
}

// Invert returns the inverse transform. It fails with ErrInvalidGeometry
// when m is singular or not finite.
func (m Transform) Invert() (Transform, error) {
	det := m.Determinant()
	if det == 0 || !isFinite(det) {
		return Transform{}, fmt.Errorf("%w: transform is not invertible (det=%g)", ErrInvalidGeometry, det)
	}
	inv := 1 / det
	r := Transform{
		A: m.E * inv,
		B: -m.B * inv,
		C: (m.B*m.F - m.C*m.E) * inv,
		D: -m.D * inv,
		E: m.A * inv,
		F: (m.C*m.D - m.A*m.F) * inv,
	}
	if !r.IsFinite() {
		return Transform{}, fmt.Errorf("%w: transform inverse overflows", ErrInvalidGeometry)
	}
	return r, nil
}

// IsIdentity reports whether m is exactly the identity.
func (m Transform) IsIdentity() bool {
	return m == Identity()
}

// IsFinite reports whether every coefficient is finite.
func (m Transform) IsFinite() bool {
	return isFinite(m.A) && isFinite(m.B) && isFinite(m.C) &&
		isFinite(m.D) && isFinite(m.E) && isFinite(m.F)
}

// MaxScale returns the largest factor by which m stretches a vector.
func (m Transform) MaxScale() float64 {
	sum := m.A*m.A + m.B*m.B + m.D*m.D + m.E*m.E
	det := m.Determinant()
	disc := math.Sqrt(math.Max(sum*sum-4*det*det, 0))
	return math.Sqrt((sum + disc) / 2)
}

func (m Transform) String() string {
	return fmt.Sprintf("[%g %g %g; %g %g %g]", m.A, m.B, m.C, m.D, m.E, m.F)
}
