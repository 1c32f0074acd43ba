package config

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"os"
	"strings"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"github.com/philipparndt/go4dof/internal/dh"
	"github.com/philipparndt/go4dof/internal/geometry"
	"github.com/philipparndt/go4dof/internal/kinematics"
	"github.com/philipparndt/go4dof/internal/models"
)

// DefaultWorkspaceSteps is used when a robot file does not set workspace_steps.
const DefaultWorkspaceSteps = 24

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid configuration")

// Robot is a validated robot file converted to radians.
type Robot struct {
	Name  string
	Table dh.Table
	Base  geometry.Pose
	Elbow kinematics.Elbow
	Steps int
}

// Solver builds a solver for the robot.
func (r Robot) Solver(opts ...kinematics.Option) (*kinematics.Solver, error) {
	all := append([]kinematics.Option{
		kinematics.WithBase(r.Base),
		kinematics.WithElbow(r.Elbow),
	}, opts...)
	return kinematics.NewSolver(r.Table, all...)
}

// Target is a named goal in radians. Exactly one of Pose and Joints is set.
type Target struct {
	Name   string
	Pose   *geometry.Pose
	Joints *kinematics.Joints
}

// Loader handles loading and validating YAML robot files
type Loader struct{}

// NewLoader creates a new config loader
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads, parses and validates a YAML robot file
func (l *Loader) Load(configPath string) (*models.RobotFile, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return l.Parse(data)
}

// Parse decodes and validates a YAML robot file held in memory. Unknown
// keys are rejected.
func (l *Loader) Parse(data []byte) (*models.RobotFile, error) {
	var config models.RobotFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := l.Validate(&config); err != nil {
		return nil, err
	}
	return &config, nil
}

// Validate checks the whole file and reports every problem at once
func (l *Loader) Validate(config *models.RobotFile) error {
	var errs error
	fail := func(format string, args ...any) {
		errs = multierr.Append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
	}

	if _, err := angleScale(config.Angles); err != nil {
		fail("%v", err)
	}
	if _, err := kinematics.ParseElbow(config.Elbow); err != nil {
		fail("%v", err)
	}
	if config.Steps < 0 {
		fail("workspace_steps must not be negative, got %d", config.Steps)
	}

	if len(config.DH) != dh.Joints {
		fail("dh must have exactly %d rows, got %d", dh.Joints, len(config.DH))
	} else if err := l.table(config, 1).Validate(); err != nil {
		fail("dh: %v", err)
	}

	if config.Base != nil && !finite(poseValues(*config.Base)...) {
		fail("base pose has a non-finite component")
	}

	seen := make(map[string]bool, len(config.Target))
	for i, t := range config.Target {
		label := fmt.Sprintf("target %d", i+1)
		if t.Name == "" {
			fail("%s: name is required", label)
		} else {
			label = fmt.Sprintf("target %s", t.Name)
			if seen[t.Name] {
				fail("%s: duplicate name", label)
			}
			seen[t.Name] = true
		}

		switch {
		case t.Pose == nil && t.Joints == nil:
			fail("%s: one of pose or joints is required", label)
		case t.Pose != nil && t.Joints != nil:
			fail("%s: pose and joints are mutually exclusive", label)
		case t.Pose != nil:
			if !finite(poseValues(*t.Pose)...) {
				fail("%s: pose has a non-finite component", label)
			}
		default:
			if n := len(t.Joints); n != dh.Joints && n != dh.Joints+1 {
				fail("%s: joints must have %d or %d values, got %d", label, dh.Joints, dh.Joints+1, n)
			}
			if !finite(t.Joints...) {
				fail("%s: joints have a non-finite value", label)
			}
		}
	}

	return errs
}

// Robot converts a validated file to a Robot in radians.
func (l *Loader) Robot(config *models.RobotFile) (Robot, error) {
	scale, err := angleScale(config.Angles)
	if err != nil {
		return Robot{}, err
	}
	elbow, err := kinematics.ParseElbow(config.Elbow)
	if err != nil {
		return Robot{}, err
	}
	if len(config.DH) != dh.Joints {
		return Robot{}, fmt.Errorf("%w: dh must have exactly %d rows", ErrInvalid, dh.Joints)
	}

	r := Robot{
		Name:  config.Name,
		Table: l.table(config, scale),
		Elbow: elbow,
		Steps: config.Steps,
	}
	if r.Steps == 0 {
		r.Steps = DefaultWorkspaceSteps
	}
	if config.Base != nil {
		r.Base = toPose(*config.Base, scale)
	}
	return r, nil
}

// Targets converts the file's targets to radians, in file order.
func (l *Loader) Targets(config *models.RobotFile) ([]Target, error) {
	scale, err := angleScale(config.Angles)
	if err != nil {
		return nil, err
	}

	targets := make([]Target, 0, len(config.Target))
	for _, t := range config.Target {
		out := Target{Name: t.Name}
		if t.Pose != nil {
			p := toPose(*t.Pose, scale)
			out.Pose = &p
		} else {
			q, err := JointsFromSlice(t.Joints, scale)
			if err != nil {
				return nil, fmt.Errorf("target %s: %w", t.Name, err)
			}
			out.Joints = &q
		}
		targets = append(targets, out)
	}
	return targets, nil
}

// JointsFromSlice scales four or five angles into a joint vector. A missing
// fifth angle is zero.
func JointsFromSlice(values []float64, scale float64) (kinematics.Joints, error) {
	var q kinematics.Joints
	if n := len(values); n != dh.Joints && n != dh.Joints+1 {
		return q, fmt.Errorf("%w: expected %d or %d joint angles, got %d", ErrInvalid, dh.Joints, dh.Joints+1, n)
	}
	for i, v := range values {
		q[i] = v * scale
	}
	return q, nil
}

// AngleScale returns the factor converting the named unit to radians.
func AngleScale(unit string) (float64, error) {
	return angleScale(unit)
}

func angleScale(unit string) (float64, error) {
	switch strings.ToLower(strings.TrimSpace(unit)) {
	case "", models.UnitDegrees:
		return math.Pi / 180, nil
	case models.UnitRadians:
		return 1, nil
	default:
		return 0, fmt.Errorf("unknown angle unit %q (want %s or %s)", unit, models.UnitDegrees, models.UnitRadians)
	}
}

func (l *Loader) table(config *models.RobotFile, scale float64) dh.Table {
	var t dh.Table
	for i, row := range config.DH {
		t[i] = dh.Param{D: row.D, A: row.A, Alpha: row.Alpha * scale}
	}
	return t
}

func toPose(p models.YamlPose, scale float64) geometry.Pose {
	return geometry.NewPose(p.X, p.Y, p.Z, p.Alpha*scale, p.Beta*scale, p.Gamma*scale)
}

func poseValues(p models.YamlPose) []float64 {
	return []float64{p.X, p.Y, p.Z, p.Alpha, p.Beta, p.Gamma}
}

func finite(values ...float64) bool {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
