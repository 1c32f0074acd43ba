package geometry

import (
	"math"

	"github.com/golang/geo/r3"
)

// Mat3 is a 3x3 row-major matrix, used for rotation blocks.
type Mat3 [3][3]float64

// Identity3 returns the 3x3 identity matrix.
func Identity3() Mat3 {
	return Mat3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
}

// RotX returns the rotation by angle (radians) about the X axis.
func RotX(angle float64) Mat3 {
	s, c := math.Sincos(angle)
	return Mat3{
		{1, 0, 0},
		{0, c, -s},
		{0, s, c},
	}
}

// RotY returns the rotation by angle (radians) about the Y axis.
func RotY(angle float64) Mat3 {
	s, c := math.Sincos(angle)
	return Mat3{
		{c, 0, s},
		{0, 1, 0},
		{-s, 0, c},
	}
}

// RotZ returns the rotation by angle (radians) about the Z axis.
func RotZ(angle float64) Mat3 {
	s, c := math.Sincos(angle)
	return Mat3{
		{c, -s, 0},
		{s, c, 0},
		{0, 0, 1},
	}
}

// Mul returns m·n.
func (m Mat3) Mul(n Mat3) Mat3 {
	var out Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[i][j] = m[i][0]*n[0][j] + m[i][1]*n[1][j] + m[i][2]*n[2][j]
		}
	}
	return out
}

// Transpose returns mᵀ, which is the inverse of a rotation.
func (m Mat3) Transpose() Mat3 {
	var out Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[i][j] = m[j][i]
		}
	}
	return out
}

// Det returns the determinant of m.
func (m Mat3) Det() float64 {
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}

// MulVec returns m·v.
func (m Mat3) MulVec(v r3.Vector) r3.Vector {
	return r3.Vector{
		X: m[0][0]*v.X + m[0][1]*v.Y + m[0][2]*v.Z,
		Y: m[1][0]*v.X + m[1][1]*v.Y + m[1][2]*v.Z,
		Z: m[2][0]*v.X + m[2][1]*v.Y + m[2][2]*v.Z,
	}
}

// Column returns column j as a vector.
func (m Mat3) Column(j int) r3.Vector {
	return r3.Vector{X: m[0][j], Y: m[1][j], Z: m[2][j]}
}

// ApproxEqual reports whether every entry of m and n differs by at most tol.
func (m Mat3) ApproxEqual(n Mat3, tol float64) bool {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if math.Abs(m[i][j]-n[i][j]) > tol {
				return false
			}
		}
	}
	return true
}

// IsOrthonormal reports whether mᵀ·m is the identity and det(m) is +1 within tol.
func (m Mat3) IsOrthonormal(tol float64) bool {
	if !m.Transpose().Mul(m).ApproxEqual(Identity3(), tol) {
		return false
	}
	return math.Abs(m.Det()-1) <= tol
}
