// Package dh builds Denavit-Hartenberg link transforms and chains them into
// the forward kinematics of a four-joint arm.
package dh

import (
	"errors"
	"fmt"
	"math"
)

// Joints is the number of revolute joints described by a Table.
const Joints = 4

// Param is one D-H row: offset D along the previous z axis, link length A
// along the new x axis and twist Alpha (radians) about the new x axis.
type Param struct {
	D     float64
	A     float64
	Alpha float64
}

// Table is the fixed geometry of the arm. It is a value type; copies are
// independent and a Table is never mutated after configuration.
//
//	row | d   | a  | alpha
//	 0  | 0   | 0  |  π/2
//	 1  | 0   | L1 |  0
//	 2  | 0   | L2 |  0
//	 3  | -L3 | L4 | -π/2
type Table [Joints]Param

// ErrInvalidTable is wrapped by every error returned from Table.Validate.
var ErrInvalidTable = errors.New("invalid D-H table")

// Reference returns the geometry of the reference arm:
// L1 = 1450, L2 = 1200, L3 = 150, L4 = 200.
func Reference() Table {
	return New(1450, 1200, 150, 200)
}

// New builds a table for the arm layout above from its four lengths.
func New(l1, l2, l3, l4 float64) Table {
	return Table{
		{D: 0, A: 0, Alpha: math.Pi / 2},
		{D: 0, A: l1, Alpha: 0},
		{D: 0, A: l2, Alpha: 0},
		{D: -l3, A: l4, Alpha: -math.Pi / 2},
	}
}

// UpperArm returns L1, the length of the second link.
func (t Table) UpperArm() float64 { return t[1].A }

// Forearm returns L2, the length of the third link.
func (t Table) Forearm() float64 { return t[2].A }

// WristOffset returns the fourth-row d as stored, sign included (-L3 for
// the reference layout).
func (t Table) WristOffset() float64 { return t[3].D }

// ToolLength returns the fourth-row a (L4).
func (t Table) ToolLength() float64 { return t[3].A }

// MaxReach returns L1 + L2.
func (t Table) MaxReach() float64 { return t.UpperArm() + t.Forearm() }

// MinReach returns |L1 - L2|.
func (t Table) MinReach() float64 { return math.Abs(t.UpperArm() - t.Forearm()) }

// Validate checks that every entry is finite, both arm links are positive
// and the last link length is non-zero (the fourth joint angle is read from
// it).
func (t Table) Validate() error {
	for i, p := range t {
		for _, v := range []float64{p.D, p.A, p.Alpha} {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("%w: row %d has a non-finite entry", ErrInvalidTable, i+1)
			}
		}
	}
	if t.UpperArm() <= 0 {
		return fmt.Errorf("%w: link length L1 must be positive, got %g", ErrInvalidTable, t.UpperArm())
	}
	if t.Forearm() <= 0 {
		return fmt.Errorf("%w: link length L2 must be positive, got %g", ErrInvalidTable, t.Forearm())
	}
	if t.ToolLength() == 0 {
		return fmt.Errorf("%w: link length L4 must be non-zero", ErrInvalidTable)
	}
	return nil
}
