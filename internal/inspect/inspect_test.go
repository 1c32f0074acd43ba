package inspect

import (
	"bytes"
	"math"
	"regexp"
	"strings"
	"testing"

	"github.com/philipparndt/go4dof/internal/config"
	"github.com/philipparndt/go4dof/internal/dh"
	"github.com/philipparndt/go4dof/internal/kinematics"
	"github.com/philipparndt/go4dof/internal/ui"
)

var ansi = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func capture(t *testing.T, fn func()) string {
	t.Helper()
	var buf bytes.Buffer
	prev := ui.SetOutput(&buf)
	defer ui.SetOutput(prev)
	fn()
	return ansi.ReplaceAllString(buf.String(), "")
}

func referenceRobot(t *testing.T) config.Robot {
	t.Helper()
	loader := config.NewLoader()
	robot, err := loader.Robot(config.Default())
	if err != nil {
		t.Fatal(err)
	}
	return robot
}

func TestAngle(t *testing.T) {
	if got := NewPrinter(false).Angle(math.Pi / 6); got != "30.0000°" {
		t.Errorf("Angle() = %q, want 30.0000°", got)
	}
	if got := NewPrinter(true).Angle(0.5); got != "0.500000 rad" {
		t.Errorf("Angle() = %q, want 0.500000 rad", got)
	}
}

func TestInspect(t *testing.T) {
	out := capture(t, func() {
		if err := NewInspector(false).Inspect(referenceRobot(t)); err != nil {
			t.Fatalf("Inspect() error = %v", err)
		}
	})

	for _, want := range []string{
		"Robot: reference-arm",
		"1450.000",
		"90.0000°",
		"Reach: [250.000, 2650.000]",
		"Elbow: up",
		"Zero pose",
		"2650.000",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output does not contain %q:\n%s", want, out)
		}
	}
}

func TestInspect_InvalidRobot(t *testing.T) {
	robot := referenceRobot(t)
	robot.Table = dh.New(0, 1, 1, 1)
	capture(t, func() {
		if err := NewInspector(false).Inspect(robot); err == nil {
			t.Error("expected error for a zero-length link")
		}
	})
}

func TestPrintSolution(t *testing.T) {
	robot := referenceRobot(t)
	solver, err := robot.Solver()
	if err != nil {
		t.Fatal(err)
	}
	q := kinematics.Joints{0.3, 0.4, -0.9, 0.7, 0.25}
	sol, err := solver.SolveTransform(solver.Forward(q), q.Roll())
	if err != nil {
		t.Fatal(err)
	}

	out := capture(t, func() { NewPrinter(true).PrintSolution(sol) })
	for _, want := range []string{"q1", "0.300000 rad", "q5*", "0.250000 rad", "Elbow: up", "Wrist (world)"} {
		if !strings.Contains(out, want) {
			t.Errorf("output does not contain %q:\n%s", want, out)
		}
	}
}

func TestPrintChain(t *testing.T) {
	out := capture(t, func() {
		NewPrinter(false).PrintChain(dh.Forward(dh.Reference(), [dh.Joints]float64{}))
	})
	for _, want := range []string{"H(0→1)", "H(0→4)", "Tool", "2850.000"} {
		if !strings.Contains(out, want) {
			t.Errorf("output does not contain %q:\n%s", want, out)
		}
	}
}

func TestPrintWorkspace(t *testing.T) {
	ws, err := kinematics.SampleWorkspace(dh.Reference(), 4)
	if err != nil {
		t.Fatal(err)
	}
	out := capture(t, func() { NewPrinter(false).PrintWorkspace(ws) })
	for _, want := range []string{"Samples: 64", "Reach: [250.000, 2650.000]", "axis", "Center"} {
		if !strings.Contains(out, want) {
			t.Errorf("output does not contain %q:\n%s", want, out)
		}
	}
}

func TestHighlight(t *testing.T) {
	var buf bytes.Buffer
	if err := Highlight(&buf, config.Example); err != nil {
		t.Fatalf("Highlight() error = %v", err)
	}
	if !strings.Contains(buf.String(), "\x1b[") {
		t.Error("expected terminal escape codes in highlighted output")
	}
	if got := ansi.ReplaceAllString(buf.String(), ""); got != config.Example {
		t.Errorf("highlighting changed the text:\n%s", got)
	}
}

func TestPrintYAML_Plain(t *testing.T) {
	var buf bytes.Buffer
	prev := ui.SetOutput(&buf)
	defer ui.SetOutput(prev)

	if err := PrintYAML(config.Example, true); err != nil {
		t.Fatal(err)
	}
	if buf.String() != config.Example {
		t.Errorf("plain output differs from source")
	}
}
