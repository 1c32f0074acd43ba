package inspect

import (
	"bytes"
	"fmt"
	"io"

	"github.com/alecthomas/chroma/v2/quick"

	"github.com/philipparndt/go4dof/internal/config"
	"github.com/philipparndt/go4dof/internal/dh"
	"github.com/philipparndt/go4dof/internal/kinematics"
	"github.com/philipparndt/go4dof/internal/ui"
)

// Inspector shows the geometry of a configured robot
type Inspector struct {
	printer *Printer
}

// NewInspector creates a new Inspector
func NewInspector(radians bool) *Inspector {
	return &Inspector{printer: NewPrinter(radians)}
}

// Inspect prints the D-H table, reach envelope, base pose and zero pose
func (i *Inspector) Inspect(robot config.Robot) error {
	solver, err := robot.Solver()
	if err != nil {
		return fmt.Errorf("invalid robot: %w", err)
	}

	name := robot.Name
	if name == "" {
		name = "(unnamed)"
	}
	ui.PrintHeader(fmt.Sprintf("Robot: %s", name))

	table := ui.NewTable(5, 10, 10, 16)
	table.PrintHeader("joint", "d", "a", "alpha")
	for idx, p := range robot.Table {
		table.PrintRow(fmt.Sprintf("%d", idx+1), fmt.Sprintf("%.3f", p.D), fmt.Sprintf("%.3f", p.A), i.printer.Angle(p.Alpha))
	}

	ui.PrintKeyValue("Reach", fmt.Sprintf("[%.3f, %.3f]", robot.Table.MinReach(), robot.Table.MaxReach()))
	ui.PrintKeyValue("Elbow", robot.Elbow.String())
	i.printer.PrintPose("Base", robot.Base.Transform())

	ui.PrintHeader("Zero pose")
	var zero kinematics.Joints
	c := solver.Chain(zero)
	ui.PrintKeyValue("Wrist (base)", Vector(c.Frame(dh.Joints-1).Translation()))
	i.printer.PrintPose("Tool (world)", solver.Forward(zero))

	return nil
}

// Highlight writes YAML source with terminal colors
func Highlight(w io.Writer, source string) error {
	return quick.Highlight(w, source, "yaml", "terminal256", "monokai")
}

// PrintYAML prints YAML source, colored unless plain is set
func PrintYAML(source string, plain bool) error {
	if plain {
		ui.PrintRaw(source)
		return nil
	}
	var buf bytes.Buffer
	if err := Highlight(&buf, source); err != nil {
		return fmt.Errorf("failed to highlight YAML: %w", err)
	}
	ui.PrintRaw(buf.String())
	return nil
}
