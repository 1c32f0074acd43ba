// Package kinematics solves the inverse kinematics of the four-joint arm
// analytically: the wrist center fixes the first three joints through a
// planar two-link triangle and the fourth joint is read from the residual
// transform between frame 3 and the target.
//
// The fifth angle is a wrist roll that this arm cannot position
// independently of the other four. It is not solved; the solver forwards
// the caller's roll unchanged so downstream code receives a five-value
// joint vector.
package kinematics

import (
	"fmt"
	"math"
	"strings"

	"github.com/golang/geo/r3"

	"github.com/philipparndt/go4dof/internal/dh"
	"github.com/philipparndt/go4dof/internal/geometry"
)

const (
	// shoulderEpsilon is the distance below which the wrist center is
	// considered to sit on the shoulder joint.
	shoulderEpsilon = 1e-9
	// reachSlack absorbs rounding when the wrist center lies exactly on the
	// reach envelope, relative to L1 + L2.
	reachSlack = 1e-12
	// axisEpsilon is the relative distance below which the wrist center is
	// taken to lie on the base axis, and the horizontal length below which
	// the tool z axis is taken to be vertical.
	axisEpsilon = 1e-9
	// rigidTolerance bounds how far a target rotation may drift from
	// orthonormal before it is rejected.
	rigidTolerance = 1e-6
)

// Elbow selects one of the two law-of-cosines branches.
type Elbow int

const (
	// ElbowUp is q2 = alpha + beta, q3 = gamma - π. With all joints at zero
	// the arm is fully extended on this branch.
	ElbowUp Elbow = iota
	// ElbowDown is the mirror: q2 = alpha - beta, q3 = π - gamma.
	ElbowDown
)

func (e Elbow) String() string {
	if e == ElbowDown {
		return "down"
	}
	return "up"
}

// ParseElbow accepts "up" or "down"; an empty string means up.
func ParseElbow(s string) (Elbow, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "up":
		return ElbowUp, nil
	case "down":
		return ElbowDown, nil
	default:
		return ElbowUp, fmt.Errorf("unknown elbow branch %q (want up or down)", s)
	}
}

// Joints is a five-angle configuration in radians: q1..q4 are solved, q5 is
// the passthrough wrist roll.
type Joints [5]float64

// Arm returns q1..q4.
func (j Joints) Arm() [dh.Joints]float64 {
	return [dh.Joints]float64{j[0], j[1], j[2], j[3]}
}

// Roll returns q5.
func (j Joints) Roll() float64 {
	return j[4]
}

// Solution is a successful inverse kinematics result.
type Solution struct {
	Joints Joints
	// Wrist is the wrist center in the robot base frame.
	Wrist r3.Vector
	// WristWorld is the wrist center in the world frame.
	WristWorld r3.Vector
	// Reach is the straight-line distance from the shoulder to the wrist center.
	Reach float64
	Elbow Elbow
}

// Option configures a Solver.
type Option func(*Solver)

// WithBase places the robot base at pose p in the world frame. Targets are
// given in world coordinates and mapped into the base frame with
// Inverse(p) before solving.
func WithBase(p geometry.Pose) Option {
	return func(s *Solver) {
		s.basePose = p
	}
}

// WithElbow selects the elbow branch. The default is ElbowUp.
func WithElbow(e Elbow) Option {
	return func(s *Solver) {
		s.elbow = e
	}
}

// WithConditionLimit sets the largest condition number accepted when
// inverting H(0→3). Non-positive values keep geometry.DefaultConditionLimit.
func WithConditionLimit(limit float64) Option {
	return func(s *Solver) {
		s.condLimit = limit
	}
}

// Solver holds an immutable robot configuration. It keeps no state between
// calls and is safe for concurrent use.
type Solver struct {
	table     dh.Table
	basePose  geometry.Pose
	base      geometry.Transform
	baseInv   geometry.Transform
	elbow     Elbow
	condLimit float64
}

// NewSolver validates the geometry and base pose and returns a solver.
func NewSolver(table dh.Table, opts ...Option) (*Solver, error) {
	s := &Solver{table: table}
	for _, opt := range opts {
		opt(s)
	}

	if err := table.Validate(); err != nil {
		return nil, NewDegenerateError("robot geometry", err)
	}
	if !s.basePose.IsFinite() {
		return nil, NewDegenerateError("base pose has a non-finite component", nil)
	}
	if s.elbow != ElbowUp && s.elbow != ElbowDown {
		return nil, NewDegenerateError(fmt.Sprintf("unknown elbow branch %d", s.elbow), nil)
	}

	s.base = s.basePose.Transform()
	s.baseInv = s.basePose.InverseTransform()
	return s, nil
}

// Table returns the solver's geometry.
func (s *Solver) Table() dh.Table {
	return s.table
}

// Base returns the base pose in the world frame.
func (s *Solver) Base() geometry.Pose {
	return s.basePose
}

// Elbow returns the configured branch.
func (s *Solver) Elbow() Elbow {
	return s.elbow
}

// Chain evaluates forward kinematics in the base frame.
func (s *Solver) Chain(q Joints) dh.Chain {
	return dh.Forward(s.table, q.Arm())
}

// Forward returns the world-frame tool pose for q. q5 does not move the
// tool; it is carried for symmetry with Solve.
func (s *Solver) Forward(q Joints) geometry.Transform {
	return s.base.Mul(s.Chain(q).Tool())
}

// Wrist returns the wrist center of a world-frame target in world and base
// coordinates.
func (s *Solver) Wrist(target geometry.Pose) (world, base r3.Vector, err error) {
	if !target.IsFinite() {
		return r3.Vector{}, r3.Vector{}, NewDegenerateError("target pose has a non-finite component", nil)
	}
	h := target.Transform()
	world = WristCenter(h, s.table)
	base = WristCenter(s.baseInv.Mul(h), s.table)
	return world, base, nil
}

// Solve computes joint angles for a world-frame target given as position
// plus fixed-axis angles. The target's Gamma is forwarded as q5.
func (s *Solver) Solve(target geometry.Pose) (Solution, error) {
	if !target.IsFinite() {
		return Solution{}, NewDegenerateError("target pose has a non-finite component", nil)
	}
	return s.SolveTransform(target.Transform(), target.Gamma)
}

// SolveTransform computes joint angles for a world-frame tool transform.
// roll is forwarded unchanged as q5.
//
// Failures are returned as *UnreachableError or *DegenerateError; a
// returned Solution never contains NaN.
func (s *Solver) SolveTransform(world geometry.Transform, roll float64) (Solution, error) {
	if !world.IsFinite() || math.IsNaN(roll) || math.IsInf(roll, 0) {
		return Solution{}, NewDegenerateError("target has a non-finite component", nil)
	}
	if !world.IsRigid(rigidTolerance) {
		return Solution{}, NewDegenerateError("target is not a rigid transform", nil)
	}

	tool := s.baseInv.Mul(world)
	pw := WristCenter(tool, s.table)

	l1, l2 := s.table.UpperArm(), s.table.Forearm()
	r := math.Hypot(pw.X, pw.Y)
	reach := math.Hypot(r, pw.Z)

	if reach < shoulderEpsilon {
		return Solution{}, NewDegenerateError("wrist center coincides with the shoulder", nil)
	}
	slack := reachSlack * s.table.MaxReach()
	if reach > s.table.MaxReach()+slack || reach < s.table.MinReach()-slack {
		return Solution{}, &UnreachableError{Reach: reach, Min: s.table.MinReach(), Max: s.table.MaxReach()}
	}

	q1 := s.baseAngle(tool, pw, r)
	// Signed distance of the wrist from the base axis along the arm plane;
	// negative when the arm reaches back over the shoulder.
	rho := pw.X*math.Cos(q1) + pw.Y*math.Sin(q1)

	alpha := math.Atan2(pw.Z, rho)
	beta := math.Acos(clampUnit((reach*reach + l1*l1 - l2*l2) / (2 * reach * l1)))
	gamma := math.Acos(clampUnit((l1*l1 + l2*l2 - reach*reach) / (2 * l1 * l2)))

	var q2, q3 float64
	switch s.elbow {
	case ElbowDown:
		q2, q3 = alpha-beta, math.Pi-gamma
	default:
		q2, q3 = alpha+beta, gamma-math.Pi
	}

	q4, err := s.residualAngle(tool, q1, q2, q3)
	if err != nil {
		return Solution{}, err
	}

	sol := Solution{
		Joints:     Joints{q1, q2, q3, q4, roll},
		Wrist:      pw,
		WristWorld: s.base.Apply(pw),
		Reach:      reach,
		Elbow:      s.elbow,
	}
	for _, q := range sol.Joints {
		if math.IsNaN(q) || math.IsInf(q, 0) {
			return Solution{}, NewDegenerateError("solution has a non-finite joint angle", nil)
		}
	}
	return sol, nil
}

// baseAngle picks q1. The wrist center fixes it only up to a half turn, so
// the joint axis of the target (z3 = -z_tool = (sin q1, -cos q1, 0)) selects
// the half turn, and fixes q1 alone when the wrist sits on the base axis.
func (s *Solver) baseAngle(tool geometry.Transform, pw r3.Vector, r float64) float64 {
	z := tool.Column(2)
	horizontal := math.Hypot(z.X, z.Y)

	if r <= axisEpsilon*s.table.MaxReach() {
		if horizontal <= axisEpsilon {
			return 0
		}
		return math.Atan2(-z.X, z.Y)
	}

	q1 := math.Atan2(pw.Y, pw.X)
	if -z.X*math.Sin(q1)+z.Y*math.Cos(q1) < -axisEpsilon {
		if q1 > 0 {
			return q1 - math.Pi
		}
		return q1 + math.Pi
	}
	return q1
}

// residualAngle solves q4 from H(3→4) = H(0→3)⁻¹·H(0→4). The D-H builder
// puts a4·cos(q4) and a4·sin(q4) in the translation column of H(3→4).
func (s *Solver) residualAngle(tool geometry.Transform, q1, q2, q3 float64) (float64, error) {
	h03 := dh.Partial(s.table, q1, q2, q3)
	inv, err := h03.Inverse(s.condLimit)
	if err != nil {
		return 0, NewDegenerateError("partial chain H(0→3) is not invertible", err)
	}

	h04 := tool.Mul(dh.Flange().RigidInverse())
	h34 := inv.Mul(h04)

	a4 := s.table.ToolLength()
	return math.Atan2(h34[1][3]/a4, h34[0][3]/a4), nil
}

func clampUnit(v float64) float64 {
	return math.Max(-1, math.Min(1, v))
}
