package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/philipparndt/go4dof/internal/config"
	"github.com/philipparndt/go4dof/internal/kinematics"
	"github.com/philipparndt/go4dof/internal/ui"
)

var ansi = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// run executes the CLI and returns its plain output
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	prev := ui.SetOutput(&buf)
	defer ui.SetOutput(prev)
	err := Execute(args)
	return ansi.ReplaceAllString(buf.String(), ""), err
}

func exampleFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "robot.yaml")
	if err := os.WriteFile(path, []byte(config.Example), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestCommands(t *testing.T) {
	robot := exampleFile(t)

	tests := []struct {
		name string
		args []string
		want []string
	}{
		{"fk zero pose", []string{"fk", "0", "0", "0", "0"}, []string{"Forward kinematics", "2850.000", "150.000", "Wrist (world)", "Matrix"}},
		{"fk frames", []string{"fk", "--frames", "--", "0", "30", "-60", "0", "15"}, []string{"H(0→3)", "Tool", "q5*", "15.0000°"}},
		{"fk radians", []string{"--radians", "fk", "0.5", "0", "0", "0"}, []string{"0.500000 rad"}},
		{"ik", []string{"ik", "--pose=1900,0,900,0,90,0"}, []string{"Inverse kinematics", "Elbow: up", "Reach"}},
		{"ik check", []string{"ik", "--check", "--pose=2494.967,150,125,-90,0,-90"}, []string{"30.0001°", "-60.0003°", "Forward kinematics reproduces the target"}},
		{"ik matrix", []string{"ik", "--matrix=0 0 1 0 1 0 -1 0 0 1900 0 900"}, []string{"Inverse kinematics", "Reach"}},
		{"ik elbow down", []string{"ik", "--elbow", "down", "--pose=1900,0,900,0,90,0"}, []string{"Elbow: down"}},
		{"ik robot file", []string{"-c", robot, "ik", "--pose=-1891.059,-847.916,575.013,90,20,105"}, []string{"20.0000°", "45.0000°", "105.0000°"}},
		{"wrist", []string{"wrist", "--pose=1000,0,0,0,0,0"}, []string{"Wrist (world): (1000.000, -200.000, -150.000)", "Wrist (base)", "In workspace: yes"}},
		{"wrist out of reach", []string{"wrist", "--pose=5000,0,0,0,0,0"}, []string{"In workspace: no"}},
		{"run", []string{"-c", robot, "run"}, []string{"pick", "home", "2 of 2 targets solved"}},
		{"workspace", []string{"workspace", "--steps", "4"}, []string{"Samples: 64", "Reach: [250.000, 2650.000]"}},
		{"inspect", []string{"-c", robot, "inspect"}, []string{"Robot: reference-arm", "Elbow: up"}},
		{"example", []string{"example", "--plain"}, []string{"name: reference-arm", "targets:"}},
		{"completion", []string{"completion", "bash"}, []string{"complete -F _go4dof_completions go4dof"}},
		{"version", []string{"version"}, []string{"go4dof"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, tt.args...)
			if err != nil {
				t.Fatalf("Execute(%v) error = %v\n%s", tt.args, err, out)
			}
			for _, want := range tt.want {
				if !strings.Contains(out, want) {
					t.Errorf("output does not contain %q:\n%s", want, out)
				}
			}
		})
	}
}

func TestCommandErrors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"three joints", []string{"fk", "1", "2", "3"}, "expected 4 or 5 values"},
		{"short pose", []string{"ik", "--pose=1,2,3"}, "expected 6 values"},
		{"no target", []string{"ik"}, "missing target"},
		{"pose and matrix", []string{"ik", "--pose=1900,0,900,0,90,0", "--matrix=0 0 1 0 1 0 -1 0 0 1900 0 900"}, "not both"},
		{"short matrix", []string{"ik", "--matrix=1 0 0"}, "failed to parse transform"},
		{"bad elbow", []string{"ik", "--elbow", "left", "--pose=1900,0,900,0,90,0"}, "unknown elbow branch"},
		{"missing config", []string{"-c", "/nonexistent/robot.yaml", "inspect"}, "cannot access file"},
		{"no targets", []string{"run"}, "no targets defined"},
		{"bad shell", []string{"completion", "tcsh"}, "unsupported shell"},
		{"single step", []string{"workspace", "--steps", "1"}, "at least 2 steps"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, tt.args...)
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Execute(%v) error = %v, want it to contain %q", tt.args, err, tt.wantErr)
			}
		})
	}
}

func TestIK_MatrixMatchesPose(t *testing.T) {
	fromPose, err := run(t, "ik", "--pose=1900,0,900,0,90,0")
	if err != nil {
		t.Fatal(err)
	}
	fromMatrix, err := run(t, "ik", "--matrix=0 0 1 0 1 0 -1 0 0 1900 0 900")
	if err != nil {
		t.Fatal(err)
	}
	if fromPose != fromMatrix {
		t.Errorf("--matrix output differs from --pose:\n%s\n---\n%s", fromMatrix, fromPose)
	}
}

func TestIK_CheckFailsForUnreachableOrientation(t *testing.T) {
	// The tool z axis of a four-joint arm stays horizontal; this target tilts it.
	out, err := run(t, "ik", "--check", "--pose=1900,0,900,0,45,0")
	if err == nil || !strings.Contains(err.Error(), "does not reproduce the target") {
		t.Errorf("error = %v, want a failed forward kinematics check", err)
	}
	if !strings.Contains(out, "Reached") {
		t.Errorf("output does not show the reached pose:\n%s", out)
	}
}

func TestIK_Unreachable(t *testing.T) {
	_, err := run(t, "ik", "--pose=100000,0,0,0,0,0")
	if !errors.Is(err, kinematics.ErrUnreachable) {
		t.Errorf("error = %v, want ErrUnreachable", err)
	}
}

func TestRun_ReportsFailedTargets(t *testing.T) {
	src := config.Example + "  - name: far\n    pose: {x: 90000, y: 0, z: 0, alpha: 0, beta: 0, gamma: 0}\n"
	path := filepath.Join(t.TempDir(), "robot.yml")
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := run(t, "-c", path, "run")
	if err == nil || !strings.Contains(err.Error(), "1 of 3 targets failed") {
		t.Errorf("error = %v, want 1 of 3 targets failed", err)
	}
	if !strings.Contains(out, "target unreachable") {
		t.Errorf("output does not report the unreachable target:\n%s", out)
	}
}

func TestRenderExamples(t *testing.T) {
	out := ansi.ReplaceAllString(renderExamples(example{"Title", "go4dof fk -- 0 0 0 0"}), "")
	if !strings.Contains(out, "Examples") || !strings.Contains(out, "go4dof fk -- 0 0 0 0") {
		t.Errorf("unexpected help text:\n%s", out)
	}
	if note := ansi.ReplaceAllString(renderAngleNote(), ""); !strings.Contains(note, "--radians") {
		t.Errorf("unexpected angle note:\n%s", note)
	}
}
