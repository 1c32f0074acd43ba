package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"go.uber.org/zap"

	"github.com/philipparndt/go4dof/internal/config"
	"github.com/philipparndt/go4dof/internal/geometry"
	"github.com/philipparndt/go4dof/internal/inspect"
	"github.com/philipparndt/go4dof/internal/kinematics"
	"github.com/philipparndt/go4dof/internal/models"
	"github.com/philipparndt/go4dof/internal/preconditions"
	"github.com/philipparndt/go4dof/internal/ui"
	"github.com/philipparndt/go4dof/version"
)

// Globals are the flags shared by every command
type Globals struct {
	Config  string `help:"Robot file (YAML). Defaults to the built-in reference arm." short:"c" type:"path"`
	Radians bool   `help:"Read and print command line angles in radians instead of degrees"`
	Debug   bool   `help:"Log solver inputs and results to stderr"`
}

type CLI struct {
	Globals

	FK         FKCmd         `cmd:"" name:"fk" help:"Forward kinematics: tool pose for joint angles"`
	IK         IKCmd         `cmd:"" name:"ik" help:"Inverse kinematics: joint angles for a tool pose"`
	Wrist      WristCmd      `cmd:"" help:"Show the wrist center of a tool pose"`
	Run        RunCmd        `cmd:"" help:"Evaluate every target in the robot file"`
	Workspace  WorkspaceCmd  `cmd:"" help:"Sample the reachable wrist-center envelope"`
	Inspect    InspectCmd    `cmd:"" help:"Show the robot geometry and its zero pose"`
	Example    ExampleCmd    `cmd:"" help:"Print an annotated example robot file"`
	Completion CompletionCmd `cmd:"" help:"Generate shell completion script"`
	Version    VersionCmd    `cmd:"" help:"Show version information"`
}

// session is the loaded robot plus everything a command needs to report
type session struct {
	robot   config.Robot
	targets []config.Target
	scale   float64
	printer *inspect.Printer
	log     *zap.SugaredLogger
}

func (g *Globals) open() (*session, error) {
	logger := zap.NewNop()
	if g.Debug {
		var err error
		if logger, err = zap.NewDevelopment(); err != nil {
			return nil, fmt.Errorf("failed to create logger: %w", err)
		}
	}

	loader := config.NewLoader()
	file := config.Default()
	if g.Config != "" {
		if err := preconditions.ValidateConfigFile(g.Config); err != nil {
			return nil, err
		}
		var err error
		if file, err = loader.Load(g.Config); err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", g.Config, err)
		}
	}

	robot, err := loader.Robot(file)
	if err != nil {
		return nil, err
	}
	targets, err := loader.Targets(file)
	if err != nil {
		return nil, err
	}

	unit := models.UnitDegrees
	if g.Radians {
		unit = models.UnitRadians
	}
	scale, err := config.AngleScale(unit)
	if err != nil {
		return nil, err
	}

	s := &session{
		robot:   robot,
		targets: targets,
		scale:   scale,
		printer: inspect.NewPrinter(g.Radians),
		log:     logger.Sugar(),
	}
	s.log.Debugw("robot loaded", "name", robot.Name, "table", robot.Table, "base", robot.Base, "elbow", robot.Elbow.String())
	return s, nil
}

func (s *session) close() {
	_ = s.log.Sync()
}

// pose converts x,y,z,alpha,beta,gamma from the command line
func (s *session) pose(values []float64) (geometry.Pose, error) {
	if err := preconditions.ValidateCount("pose", values, 6); err != nil {
		return geometry.Pose{}, err
	}
	if err := preconditions.ValidateNumbers("pose", values); err != nil {
		return geometry.Pose{}, err
	}
	return geometry.NewPose(values[0], values[1], values[2],
		values[3]*s.scale, values[4]*s.scale, values[5]*s.scale), nil
}

// joints converts q1..q4 and an optional q5 from the command line
func (s *session) joints(values []float64) (kinematics.Joints, error) {
	if err := preconditions.ValidateCount("joints", values, 4, 5); err != nil {
		return kinematics.Joints{}, err
	}
	if err := preconditions.ValidateNumbers("joints", values); err != nil {
		return kinematics.Joints{}, err
	}
	return config.JointsFromSlice(values, s.scale)
}

type FKCmd struct {
	Frames bool      `help:"Print every intermediate frame H(0→i)"`
	Joints []float64 `arg:"" help:"Joint angles q1 q2 q3 q4 [q5]. Put -- before negative values."`
}

func (c *FKCmd) Help() string {
	return renderExamples(
		example{"Reference arm, degrees", "go4dof fk -- 0 30 -60 0"},
		example{"All frames, radians", "go4dof fk --radians --frames -- 0.3 0.4 -0.9 0.7"},
	) + "\n" + renderAngleNote()
}

func (c *FKCmd) Run(g *Globals) error {
	s, err := g.open()
	if err != nil {
		return err
	}
	defer s.close()

	q, err := s.joints(c.Joints)
	if err != nil {
		return err
	}

	solver, err := s.robot.Solver()
	if err != nil {
		return err
	}
	s.log.Debugw("forward kinematics", "joints", q)

	ui.PrintHeader("Forward kinematics")
	s.printer.PrintJoints(q)
	chain := solver.Chain(q)
	if c.Frames {
		s.printer.PrintChain(chain)
	}
	tool := solver.Forward(q)
	s.printer.PrintPose("Tool (world)", tool)
	ui.PrintKeyValue("Matrix", tool.Compact())
	// The wrist center is the origin of frame 3.
	wrist := s.robot.Base.Transform().Apply(chain.Frame(3).Translation())
	ui.PrintKeyValue("Wrist (world)", inspect.Vector(wrist))
	return nil
}

type IKCmd struct {
	Pose   []float64 `help:"Tool pose x,y,z,alpha,beta,gamma (world frame). Use --pose=... when x is negative." sep:","`
	Matrix string    `help:"Tool transform (world frame) as 12 values r11..r33 tx ty tz, as printed by fk"`
	Roll   float64   `help:"Wrist roll q5 passed through with --matrix"`
	Elbow  string    `help:"Elbow branch (up or down); overrides the robot file"`
	Check  bool      `help:"Verify the solution with forward kinematics"`
}

func (c *IKCmd) Help() string {
	return renderExamples(
		example{"Solve a pose", "go4dof ik --pose=1900,0,900,0,90,0"},
		example{"Other branch", "go4dof ik --elbow down --pose=1900,0,900,0,90,0"},
		example{"Robot file", "go4dof -c robot.yaml ik --pose=-1891.059,-847.916,575.013,90,20,105"},
		example{"Transform printed by fk", `go4dof ik --matrix="0 0 1 0 1 0 -1 0 0 1900 0 900"`},
	) + "\n" + renderAngleNote()
}

func (c *IKCmd) Run(g *Globals) error {
	s, err := g.open()
	if err != nil {
		return err
	}
	defer s.close()

	target, roll, err := c.target(s)
	if err != nil {
		return err
	}
	if c.Elbow != "" {
		if s.robot.Elbow, err = kinematics.ParseElbow(c.Elbow); err != nil {
			return err
		}
	}

	solver, err := s.robot.Solver()
	if err != nil {
		return err
	}

	ui.PrintHeader("Inverse kinematics")
	s.log.Debugw("solving", "target", "command line", "transform", target.Compact(), "roll", roll, "elbow", solver.Elbow().String())
	sol, err := solver.SolveTransform(target, roll)
	if err != nil {
		s.log.Debugw("no solution", "error", err)
		return err
	}
	s.printer.PrintSolution(sol)

	if c.Check {
		// Compact input carries three decimals of translation.
		got := solver.Forward(sol.Joints)
		if !got.ApproxEqual(target, 1e-3) {
			ui.PrintWarning("Forward kinematics does not reproduce the target")
			s.printer.PrintPose("Reached", got)
			miss := got.Translation().Sub(target.Translation()).Norm()
			return fmt.Errorf("forward kinematics does not reproduce the target (position off by %.3f mm)", miss)
		}
		ui.PrintSuccess("Forward kinematics reproduces the target")
	}
	return nil
}

// target reads the tool transform from --pose or --matrix
func (c *IKCmd) target(s *session) (geometry.Transform, float64, error) {
	switch {
	case len(c.Pose) > 0 && c.Matrix != "":
		return geometry.Transform{}, 0, fmt.Errorf("use either --pose or --matrix, not both")
	case c.Matrix != "":
		t, err := geometry.ParseCompact(c.Matrix)
		if err != nil {
			return geometry.Transform{}, 0, err
		}
		return t, c.Roll * s.scale, nil
	case len(c.Pose) > 0:
		p, err := s.pose(c.Pose)
		if err != nil {
			return geometry.Transform{}, 0, err
		}
		return p.Transform(), p.Gamma, nil
	default:
		return geometry.Transform{}, 0, fmt.Errorf("missing target: use --pose or --matrix")
	}
}

// solve runs one IK query and logs it
func (s *session) solve(solver *kinematics.Solver, name string, target geometry.Pose) (kinematics.Solution, error) {
	s.log.Debugw("solving", "target", name, "pose", target, "elbow", solver.Elbow().String())
	sol, err := solver.Solve(target)
	if err != nil {
		s.log.Debugw("no solution", "target", name, "error", err)
		return sol, err
	}
	s.log.Debugw("solved", "target", name, "joints", sol.Joints, "wrist", sol.Wrist, "reach", sol.Reach)
	return sol, nil
}

type WristCmd struct {
	Pose []float64 `help:"Tool pose x,y,z,alpha,beta,gamma (world frame)" required:"" sep:","`
}

func (c *WristCmd) Run(g *Globals) error {
	s, err := g.open()
	if err != nil {
		return err
	}
	defer s.close()

	target, err := s.pose(c.Pose)
	if err != nil {
		return err
	}
	solver, err := s.robot.Solver()
	if err != nil {
		return err
	}

	world, base, err := solver.Wrist(target)
	if err != nil {
		return err
	}
	ui.PrintHeader("Wrist center")
	ui.PrintKeyValue("Wrist (world)", inspect.Vector(world))
	ui.PrintKeyValue("Wrist (base)", inspect.Vector(base))
	ui.PrintKeyValue("Distance", fmt.Sprintf("%.3f", base.Norm()))

	ws, err := kinematics.SampleWorkspace(s.robot.Table, s.robot.Steps)
	if err != nil {
		return err
	}
	inside := "no"
	if ws.Encloses(base) {
		inside = "yes"
	}
	ui.PrintKeyValue("In workspace", inside)
	return nil
}

type RunCmd struct {
	Elbow string `help:"Elbow branch (up or down); overrides the robot file"`
}

func (c *RunCmd) Run(g *Globals) error {
	s, err := g.open()
	if err != nil {
		return err
	}
	defer s.close()

	if len(s.targets) == 0 {
		return fmt.Errorf("no targets defined (add a targets list to the robot file)")
	}
	if c.Elbow != "" {
		if s.robot.Elbow, err = kinematics.ParseElbow(c.Elbow); err != nil {
			return err
		}
	}
	solver, err := s.robot.Solver()
	if err != nil {
		return err
	}

	failed := 0
	for _, t := range s.targets {
		ui.PrintHeader(t.Name)
		if t.Joints != nil {
			s.log.Debugw("forward kinematics", "target", t.Name, "joints", *t.Joints)
			s.printer.PrintJoints(*t.Joints)
			s.printer.PrintPose("Tool (world)", solver.Forward(*t.Joints))
			continue
		}

		sol, err := s.solve(solver, t.Name, *t.Pose)
		var unreachable *kinematics.UnreachableError
		switch {
		case errors.As(err, &unreachable):
			failed++
			ui.PrintWarning(err.Error())
		case err != nil:
			failed++
			ui.PrintError(err.Error())
		default:
			s.printer.PrintSolution(sol)
		}
	}

	ui.PrintSeparator()
	if failed > 0 {
		return fmt.Errorf("%d of %d targets failed", failed, len(s.targets))
	}
	ui.PrintSuccess(fmt.Sprintf("%d of %d targets solved", len(s.targets), len(s.targets)))
	return nil
}

type WorkspaceCmd struct {
	Steps int `help:"Samples per full joint turn (default from the robot file)"`
}

func (c *WorkspaceCmd) Run(g *Globals) error {
	s, err := g.open()
	if err != nil {
		return err
	}
	defer s.close()

	steps := c.Steps
	if steps == 0 {
		steps = s.robot.Steps
	}
	s.log.Debugw("sampling workspace", "steps", steps)

	ws, err := kinematics.SampleWorkspace(s.robot.Table, steps)
	if err != nil {
		return err
	}
	ui.PrintHeader("Workspace (base frame)")
	s.printer.PrintWorkspace(ws)
	return nil
}

type InspectCmd struct{}

func (c *InspectCmd) Run(g *Globals) error {
	s, err := g.open()
	if err != nil {
		return err
	}
	defer s.close()

	return inspect.NewInspector(g.Radians).Inspect(s.robot)
}

type ExampleCmd struct {
	Plain bool `help:"Print without syntax highlighting"`
}

func (c *ExampleCmd) Run() error {
	return inspect.PrintYAML(config.Example, c.Plain)
}

type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	info := version.Get()
	ui.PrintRaw(info.String() + "\n")
	return nil
}

// Execute parses args (without the program name) and runs the selected command
func Execute(args []string, options ...kong.Option) error {
	cli := &CLI{}
	options = append([]kong.Option{
		kong.Name("go4dof"),
		kong.Description("Forward and inverse kinematics for a four-joint arm"),
		kong.UsageOnError(),
	}, options...)

	parser, err := kong.New(cli, options...)
	if err != nil {
		return err
	}
	ctx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	return ctx.Run(&cli.Globals)
}

// Parse parses command line arguments and executes the appropriate command
func Parse() {
	if err := Execute(os.Args[1:]); err != nil {
		ui.PrintError(err.Error())
		os.Exit(1)
	}
}
