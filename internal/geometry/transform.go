package geometry

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/mat"
)

// Epsilon is the default tolerance for comparing transform entries.
const Epsilon = 1e-9

// DefaultConditionLimit is the largest 2-norm condition number accepted by
// Transform.Inverse before the matrix is treated as singular.
const DefaultConditionLimit = 1e12

// ErrSingular is returned when a transform cannot be inverted reliably.
var ErrSingular = errors.New("singular transform")

// Transform is a 4x4 homogeneous transform [R p; 0 0 0 1] in row-major order.
type Transform [4][4]float64

// Identity returns the identity transform.
func Identity() Transform {
	return Transform{{1, 0, 0, 0}, {0, 1, 0, 0}, {0, 0, 1, 0}, {0, 0, 0, 1}}
}

// NewTransform assembles a transform from a rotation block and a translation.
func NewTransform(rot Mat3, p r3.Vector) Transform {
	return Transform{
		{rot[0][0], rot[0][1], rot[0][2], p.X},
		{rot[1][0], rot[1][1], rot[1][2], p.Y},
		{rot[2][0], rot[2][1], rot[2][2], p.Z},
		{0, 0, 0, 1},
	}
}

// Forward builds the pose with translation (x, y, z) and rotation
// RotX(alpha)·RotY(beta)·RotZ(gamma). The rotation order is fixed: the X
// rotation is outermost and Z innermost.
func Forward(x, y, z, alpha, beta, gamma float64) Transform {
	rot := RotX(alpha).Mul(RotY(beta)).Mul(RotZ(gamma))
	return NewTransform(rot, r3.Vector{X: x, Y: y, Z: z})
}

// Inverse builds the algebraic inverse of Forward(x, y, z, alpha, beta, gamma):
// the translation (-x, -y, -z) followed by RotZ(-gamma)·RotY(-beta)·RotX(-alpha).
func Inverse(x, y, z, alpha, beta, gamma float64) Transform {
	rot := RotZ(-gamma).Mul(RotY(-beta)).Mul(RotX(-alpha))
	back := NewTransform(Identity3(), r3.Vector{X: -x, Y: -y, Z: -z})
	return NewTransform(rot, r3.Vector{}).Mul(back)
}

// Mul returns t·u.
func (t Transform) Mul(u Transform) Transform {
	var out Transform
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			out[i][j] = t[i][0]*u[0][j] + t[i][1]*u[1][j] + t[i][2]*u[2][j] + t[i][3]*u[3][j]
		}
	}
	return out
}

// Rotation returns the upper-left 3x3 block.
func (t Transform) Rotation() Mat3 {
	return Mat3{
		{t[0][0], t[0][1], t[0][2]},
		{t[1][0], t[1][1], t[1][2]},
		{t[2][0], t[2][1], t[2][2]},
	}
}

// Translation returns the first three entries of the fourth column.
func (t Transform) Translation() r3.Vector {
	return r3.Vector{X: t[0][3], Y: t[1][3], Z: t[2][3]}
}

// Column returns the first three entries of column j. Columns 0-2 are the
// frame's x, y and z axes expressed in the parent frame.
func (t Transform) Column(j int) r3.Vector {
	return r3.Vector{X: t[0][j], Y: t[1][j], Z: t[2][j]}
}

// Apply maps a point through t.
func (t Transform) Apply(p r3.Vector) r3.Vector {
	return t.Rotation().MulVec(p).Add(t.Translation())
}

// IsHomogeneous reports whether the bottom row is exactly [0 0 0 1].
func (t Transform) IsHomogeneous() bool {
	return t[3][0] == 0 && t[3][1] == 0 && t[3][2] == 0 && t[3][3] == 1
}

// IsRigid reports whether t is homogeneous with an orthonormal rotation block.
func (t Transform) IsRigid(tol float64) bool {
	return t.IsHomogeneous() && t.Rotation().IsOrthonormal(tol)
}

// IsFinite reports whether no entry is NaN or infinite.
func (t Transform) IsFinite() bool {
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			if math.IsNaN(t[i][j]) || math.IsInf(t[i][j], 0) {
				return false
			}
		}
	}
	return true
}

// RigidInverse inverts t assuming its rotation block is orthonormal.
func (t Transform) RigidInverse() Transform {
	rt := t.Rotation().Transpose()
	return NewTransform(rt, rt.MulVec(t.Translation()).Mul(-1))
}

// Inverse inverts t as a general 4x4 matrix. Matrices whose determinant is
// zero or whose condition number exceeds condLimit are rejected with
// ErrSingular; condLimit <= 0 selects DefaultConditionLimit.
func (t Transform) Inverse(condLimit float64) (Transform, error) {
	if condLimit <= 0 {
		condLimit = DefaultConditionLimit
	}
	if !t.IsFinite() {
		return Transform{}, fmt.Errorf("%w: non-finite entry", ErrSingular)
	}

	m := mat.NewDense(4, 4, t.flat())
	det := mat.Det(m)
	if det == 0 || math.IsNaN(det) {
		return Transform{}, fmt.Errorf("%w: determinant %g", ErrSingular, det)
	}
	if cond := mat.Cond(m, 2); math.IsInf(cond, 1) || cond > condLimit {
		return Transform{}, fmt.Errorf("%w: condition number %g exceeds %g", ErrSingular, cond, condLimit)
	}

	var inv mat.Dense
	if err := inv.Inverse(m); err != nil {
		return Transform{}, fmt.Errorf("%w: %v", ErrSingular, err)
	}

	var out Transform
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			out[i][j] = inv.At(i, j)
		}
	}
	// The inverse of a homogeneous matrix is homogeneous; drop rounding noise.
	out[3] = [4]float64{0, 0, 0, 1}
	return out, nil
}

// ApproxEqual reports whether every entry of t and u differs by at most tol.
func (t Transform) ApproxEqual(u Transform, tol float64) bool {
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			if math.Abs(t[i][j]-u[i][j]) > tol {
				return false
			}
		}
	}
	return true
}

func (t Transform) flat() []float64 {
	data := make([]float64, 0, 16)
	for i := 0; i < 4; i++ {
		data = append(data, t[i][:]...)
	}
	return data
}

// Compact formats t as a single line: r11 r12 r13 r21 r22 r23 r31 r32 r33 tx ty tz.
// Use %.8f for the rotation to avoid rounding errors and %.3f for the translation.
func (t Transform) Compact() string {
	return fmt.Sprintf("%.8f %.8f %.8f %.8f %.8f %.8f %.8f %.8f %.8f %.3f %.3f %.3f",
		t[0][0], t[0][1], t[0][2],
		t[1][0], t[1][1], t[1][2],
		t[2][0], t[2][1], t[2][2],
		t[0][3], t[1][3], t[2][3])
}

// ParseCompact parses the single-line form produced by Transform.Compact.
// Format: "r11 r12 r13 r21 r22 r23 r31 r32 r33 tx ty tz"
func ParseCompact(s string) (Transform, error) {
	var parts [12]float64
	_, err := fmt.Sscanf(s, "%f %f %f %f %f %f %f %f %f %f %f %f",
		&parts[0], &parts[1], &parts[2],
		&parts[3], &parts[4], &parts[5],
		&parts[6], &parts[7], &parts[8],
		&parts[9], &parts[10], &parts[11])
	if err != nil {
		return Transform{}, fmt.Errorf("failed to parse transform %q: %w", s, err)
	}

	rot := Mat3{
		{parts[0], parts[1], parts[2]},
		{parts[3], parts[4], parts[5]},
		{parts[6], parts[7], parts[8]},
	}
	return NewTransform(rot, r3.Vector{X: parts[9], Y: parts[10], Z: parts[11]}), nil
}

// String formats t as four bracketed rows.
func (t Transform) String() string {
	var b strings.Builder
	for i := 0; i < 4; i++ {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(fmt.Sprintf("[%12.6f %12.6f %12.6f %12.3f]", t[i][0], t[i][1], t[i][2], t[i][3]))
	}
	return b.String()
}
