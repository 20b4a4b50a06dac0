package core

import "github.com/go-gl/mathgl/mgl64"

// Basis is a 3×3 column matrix mapping local coordinates to world space
type Basis struct {
	m mgl64.Mat3
}

// NewBasis builds a basis from its three columns
func NewBasis(c0, c1, c2 Vec3) Basis {
	return Basis{m: mgl64.Mat3FromCols(c0.mgl(), c1.mgl(), c2.mgl())}
}

// Apply transforms a local-space vector to world space
func (b Basis) Apply(v Vec3) Vec3 {
	return fromMgl(b.m.Mul3x1(v.mgl()))
}

// Column returns column i of the basis
func (b Basis) Column(i int) Vec3 {
	return fromMgl(b.m.Col(i))
}
