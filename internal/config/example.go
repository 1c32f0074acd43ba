package config

import (
	"github.com/philipparndt/go4dof/internal/models"
)

// Example is an annotated robot file for the reference arm.
const Example = `# go4dof robot file
name: reference-arm

# Unit of every angle in this file: degrees (default) or radians.
angles: degrees

# One row per joint: offset d, link length a, twist alpha.
dh:
  - {d: 0, a: 0, alpha: 90}
  - {d: 0, a: 1450, alpha: 0}
  - {d: 0, a: 1200, alpha: 0}
  - {d: -150, a: 200, alpha: -90}

# Pose of the robot base in the world frame.
base: {x: 0, y: 0, z: 450, alpha: 0, beta: 0, gamma: 180}

# Law-of-cosines branch: up (default) or down.
elbow: up

# Grid resolution for "go4dof workspace" (steps per full turn).
workspace_steps: 24

# Tool poses are solved with inverse kinematics, joint lists with forward
# kinematics. A fifth joint value is the wrist roll and defaults to 0.
targets:
  - name: pick
    pose: {x: -1891.059, y: -847.916, z: 575.013, alpha: 90, beta: 20, gamma: 105}
  - name: home
    joints: [0, 30, -60, 0]
`

// Default returns the reference arm with its base at the world origin, used
// when no robot file is given.
func Default() *models.RobotFile {
	return &models.RobotFile{
		Name:   "reference-arm",
		Angles: models.UnitDegrees,
		DH: []models.DHRow{
			{D: 0, A: 0, Alpha: 90},
			{D: 0, A: 1450, Alpha: 0},
			{D: 0, A: 1200, Alpha: 0},
			{D: -150, A: 200, Alpha: -90},
		},
	}
}
