package kinematics

import (
	"github.com/golang/geo/r3"

	"github.com/philipparndt/go4dof/internal/dh"
	"github.com/philipparndt/go4dof/internal/geometry"
)

// WristCenter locates the wrist center of a tool pose:
//
//	pw = translation(tool) + L3·z(tool) - L4·y(tool)
//
// where L3 is the signed fourth-row d of the table and L4 the fourth-row a.
// The result is expressed in the same frame as tool. For a tool frame
// produced by dh.Chain.Tool it is the origin of frame 3.
func WristCenter(tool geometry.Transform, table dh.Table) r3.Vector {
	l3, l4 := table.WristOffset(), table.ToolLength()
	return tool.Translation().
		Add(tool.Column(2).Mul(l3)).
		Sub(tool.Column(1).Mul(l4))
}
