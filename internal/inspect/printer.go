package inspect

import (
	"fmt"
	"math"

	"github.com/golang/geo/r3"

	"github.com/philipparndt/go4dof/internal/dh"
	"github.com/philipparndt/go4dof/internal/geometry"
	"github.com/philipparndt/go4dof/internal/kinematics"
	"github.com/philipparndt/go4dof/internal/ui"
)

// Printer handles printing kinematics results
type Printer struct {
	radians bool
}

// NewPrinter creates a new Printer; angles are shown in degrees unless
// radians is set
func NewPrinter(radians bool) *Printer {
	return &Printer{radians: radians}
}

// Angle formats an angle given in radians in the printer's unit
func (p *Printer) Angle(v float64) string {
	if p.radians {
		return fmt.Sprintf("%.6f rad", v)
	}
	return fmt.Sprintf("%.4f°", v*180/math.Pi)
}

// Vector formats a position in millimeters
func Vector(v r3.Vector) string {
	return fmt.Sprintf("(%.3f, %.3f, %.3f)", v.X, v.Y, v.Z)
}

// PrintJoints prints a joint vector as a table
func (p *Printer) PrintJoints(q kinematics.Joints) {
	table := ui.NewTable(6, 16)
	table.PrintHeader("joint", "angle")
	for i, v := range q {
		label := fmt.Sprintf("q%d", i+1)
		if i == len(q)-1 {
			label += "*"
		}
		table.PrintRow(label, p.Angle(v))
	}
	ui.PrintInfo("* wrist roll, passed through")
}

// PrintSolution prints an inverse kinematics result
func (p *Printer) PrintSolution(sol kinematics.Solution) {
	p.PrintJoints(sol.Joints)
	ui.PrintKeyValue("Elbow", sol.Elbow.String())
	ui.PrintKeyValue("Wrist (world)", Vector(sol.WristWorld))
	ui.PrintKeyValue("Wrist (base)", Vector(sol.Wrist))
	ui.PrintKeyValue("Reach", fmt.Sprintf("%.3f", sol.Reach))
}

// PrintPose prints a transform together with its position and angles
func (p *Printer) PrintPose(label string, t geometry.Transform) {
	pose := geometry.PoseFromTransform(t)
	ui.PrintKeyValue(label, Vector(pose.Position))
	ui.PrintKeyValue("  α, β, γ", fmt.Sprintf("%s, %s, %s", p.Angle(pose.Alpha), p.Angle(pose.Beta), p.Angle(pose.Gamma)))
}

// PrintMatrix prints a 4x4 transform row by row
func (p *Printer) PrintMatrix(label string, t geometry.Transform) {
	ui.PrintStep(label)
	ui.PrintInfo(t.String())
}

// PrintChain prints every cumulative frame of a forward kinematics chain
func (p *Printer) PrintChain(c dh.Chain) {
	for i := 1; i <= dh.Joints; i++ {
		p.PrintMatrix(fmt.Sprintf("H(0→%d)", i), c.Frame(i))
	}
	p.PrintMatrix("Tool", c.Tool())
}

// PrintWorkspace prints a sampled wrist-center envelope
func (p *Printer) PrintWorkspace(ws kinematics.Workspace) {
	ui.PrintKeyValue("Samples", fmt.Sprintf("%d", ws.Samples))
	ui.PrintKeyValue("Reach", fmt.Sprintf("[%.3f, %.3f]", ws.MinReach, ws.MaxReach))

	table := ui.NewTable(4, 12, 12, 12)
	table.PrintHeader("axis", "min", "max", "size")
	b := ws.Box
	table.PrintRow("x", fmt.Sprintf("%.3f", b.MinX), fmt.Sprintf("%.3f", b.MaxX), fmt.Sprintf("%.3f", b.Width()))
	table.PrintRow("y", fmt.Sprintf("%.3f", b.MinY), fmt.Sprintf("%.3f", b.MaxY), fmt.Sprintf("%.3f", b.Height()))
	table.PrintRow("z", fmt.Sprintf("%.3f", b.MinZ), fmt.Sprintf("%.3f", b.MaxZ), fmt.Sprintf("%.3f", b.Depth()))
	ui.PrintKeyValue("Center", Vector(b.Center()))
}
