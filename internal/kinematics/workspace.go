package kinematics

import (
	"fmt"
	"math"

	"github.com/golang/geo/r3"

	"github.com/philipparndt/go4dof/internal/dh"
	"github.com/philipparndt/go4dof/internal/geometry"
)

// Workspace summarizes the wrist-center positions reachable by an arm.
type Workspace struct {
	Box      *geometry.BoundingBox
	MinReach float64
	MaxReach float64
	Samples  int
}

// SampleWorkspace sweeps q1, q2 and q3 over [-π, π) in steps increments
// each and collects the wrist centers (frame 3 origins, base frame).
func SampleWorkspace(table dh.Table, steps int) (Workspace, error) {
	if steps < 2 {
		return Workspace{}, fmt.Errorf("workspace needs at least 2 steps per joint, got %d", steps)
	}
	if err := table.Validate(); err != nil {
		return Workspace{}, NewDegenerateError("robot geometry", err)
	}

	ws := Workspace{
		Box:      geometry.NewBoundingBox(),
		MinReach: table.MinReach(),
		MaxReach: table.MaxReach(),
	}
	step := 2 * math.Pi / float64(steps)
	for i := 0; i < steps; i++ {
		q1 := -math.Pi + float64(i)*step
		for j := 0; j < steps; j++ {
			q2 := -math.Pi + float64(j)*step
			for k := 0; k < steps; k++ {
				q3 := -math.Pi + float64(k)*step
				ws.Box.Extend(dh.Partial(table, q1, q2, q3).Translation())
				ws.Samples++
			}
		}
	}
	return ws, nil
}

// Encloses reports whether a base-frame wrist center lies inside the reach
// envelope and the sampled box.
func (ws Workspace) Encloses(p r3.Vector) bool {
	if ws.Box == nil || ws.Box.Empty() {
		return false
	}
	reach := p.Norm()
	if reach < ws.MinReach || reach > ws.MaxReach {
		return false
	}
	return ws.Box.Contains(p, 1e-9*ws.MaxReach)
}
