package geometry

import (
	"math"

	"github.com/golang/geo/r3"
)

// gimbalTolerance is how close |cos(beta)| may get to zero before
// PoseFromTransform treats the rotation as gimbal locked.
const gimbalTolerance = 1e-9

// Pose is a position plus fixed-axis angles in radians. The rotation it
// describes is RotX(Alpha)·RotY(Beta)·RotZ(Gamma), matching Forward.
type Pose struct {
	Position r3.Vector
	Alpha    float64
	Beta     float64
	Gamma    float64
}

// NewPose builds a pose from the six scalar parameters used by Forward.
func NewPose(x, y, z, alpha, beta, gamma float64) Pose {
	return Pose{Position: r3.Vector{X: x, Y: y, Z: z}, Alpha: alpha, Beta: beta, Gamma: gamma}
}

// Transform returns Forward applied to the pose parameters.
func (p Pose) Transform() Transform {
	return Forward(p.Position.X, p.Position.Y, p.Position.Z, p.Alpha, p.Beta, p.Gamma)
}

// InverseTransform returns Inverse applied to the pose parameters.
func (p Pose) InverseTransform() Transform {
	return Inverse(p.Position.X, p.Position.Y, p.Position.Z, p.Alpha, p.Beta, p.Gamma)
}

// IsFinite reports whether every component is a finite number.
func (p Pose) IsFinite() bool {
	for _, v := range []float64{p.Position.X, p.Position.Y, p.Position.Z, p.Alpha, p.Beta, p.Gamma} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// PoseFromTransform recovers fixed-axis angles from a rigid transform.
//
// For R = RotX(a)·RotY(b)·RotZ(g):
//
//	R[0][2] = sin(b)
//	R[0][0] = cos(b)cos(g), R[0][1] = -cos(b)sin(g)
//	R[1][2] = -sin(a)cos(b), R[2][2] = cos(a)cos(b)
//
// When cos(b) vanishes only a±g is observable; Gamma is then reported as 0.
func PoseFromTransform(t Transform) Pose {
	r := t.Rotation()
	sb := math.Max(-1, math.Min(1, r[0][2]))
	cb := math.Hypot(r[0][0], r[0][1])

	p := Pose{Position: t.Translation(), Beta: math.Atan2(sb, cb)}
	if cb > gimbalTolerance {
		p.Alpha = math.Atan2(-r[1][2], r[2][2])
		p.Gamma = math.Atan2(-r[0][1], r[0][0])
		return p
	}

	// Gimbal lock with g fixed to 0: R[1][0] = ±sin(a), R[1][1] = cos(a),
	// the sign following sin(b).
	if sb > 0 {
		p.Alpha = math.Atan2(r[1][0], r[1][1])
	} else {
		p.Alpha = math.Atan2(-r[1][0], r[1][1])
	}
	return p
}
