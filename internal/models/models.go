package models

// Angle units accepted in a robot file.
const (
	UnitDegrees = "degrees"
	UnitRadians = "radians"
)

// RobotFile represents the YAML description of an arm and its targets
type RobotFile struct {
	Name   string     `yaml:"name"`
	Angles string     `yaml:"angles,omitempty"` // degrees (default) or radians
	DH     []DHRow    `yaml:"dh"`
	Base   *YamlPose  `yaml:"base,omitempty"`
	Elbow  string     `yaml:"elbow,omitempty"` // up (default) or down
	Steps  int        `yaml:"workspace_steps,omitempty"`
	Target []YamlGoal `yaml:"targets,omitempty"`
}

// DHRow is one joint's constant Denavit-Hartenberg parameters
type DHRow struct {
	D     float64 `yaml:"d"`
	A     float64 `yaml:"a"`
	Alpha float64 `yaml:"alpha"`
}

// YamlPose is a position plus fixed-axis X-Y-Z rotation angles
type YamlPose struct {
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	Z     float64 `yaml:"z"`
	Alpha float64 `yaml:"alpha"`
	Beta  float64 `yaml:"beta"`
	Gamma float64 `yaml:"gamma"`
}

// YamlGoal is a named target, given either as a tool pose (solved with IK)
// or as joint angles (evaluated with FK)
type YamlGoal struct {
	Name   string    `yaml:"name"`
	Pose   *YamlPose `yaml:"pose,omitempty"`
	Joints []float64 `yaml:"joints,omitempty"`
}
