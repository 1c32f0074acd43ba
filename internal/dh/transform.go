package dh

import (
	"math"

	"github.com/philipparndt/go4dof/internal/geometry"
)

// Transform returns the homogeneous transform of one joint with joint angle
// u (radians) and constants p:
//
//	[cos u  -sin u·cos α   sin u·sin α  a·cos u]
//	[sin u   cos u·cos α  -cos u·sin α  a·sin u]
//	[0       sin α         cos α        d      ]
//	[0       0             0            1      ]
func Transform(u float64, p Param) geometry.Transform {
	su, cu := math.Sincos(u)
	sa, ca := math.Sincos(p.Alpha)
	return geometry.Transform{
		{cu, -su * ca, su * sa, p.A * cu},
		{su, cu * ca, -cu * sa, p.A * su},
		{0, sa, ca, p.D},
		{0, 0, 0, 1},
	}
}

// Flange maps frame 4 to the tool frame: tool x = z4, tool y = x4 and
// tool z = y4. With the fourth twist at -π/2 this places the wrist center
// at translation + d4·z_tool - a4·y_tool.
func Flange() geometry.Transform {
	return geometry.Transform{
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{1, 0, 0, 0},
		{0, 0, 0, 1},
	}
}
