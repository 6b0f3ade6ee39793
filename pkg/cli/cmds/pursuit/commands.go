// Package pursuit provides shell commands to drive the pursuit bot.
package pursuit

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/abiosoft/ishell"

	"github.com/robotalks/pursuit.go/pkg/cli/sh"
	fx "github.com/robotalks/pursuit.go/pkg/framework"
	"github.com/robotalks/pursuit.go/pkg/l1/msgs"
	pb "github.com/robotalks/pursuit.go/pkg/proto/pursuit/v1"
	"github.com/robotalks/pursuit.go/pkg/sim"
)

// ParsePoint parses a point from "X Y" or "X,Y" arguments.
// The remaining arguments are returned.
func ParsePoint(args []string) (p sim.Pos2D, rest []string, err error) {
	if len(args) > 0 && strings.Contains(args[0], ",") {
		parts := strings.SplitN(args[0], ",", 2)
		args = append(parts, args[1:]...)
	}
	if len(args) < 2 {
		return p, nil, fmt.Errorf("X Y required")
	}
	if p.X, err = strconv.ParseFloat(strings.TrimSpace(args[0]), 64); err != nil {
		return p, nil, fmt.Errorf("invalid X: %v", err)
	}
	if p.Y, err = strconv.ParseFloat(strings.TrimSpace(args[1]), 64); err != nil {
		return p, nil, fmt.Errorf("invalid Y: %v", err)
	}
	if !p.IsFinite() {
		return p, nil, fmt.Errorf("point must be finite")
	}
	return p, args[2:], nil
}

// ParseValue parses a single numeric argument.
func ParseValue(args []string) (float64, error) {
	if len(args) < 1 {
		return 0, fmt.Errorf("VALUE required")
	}
	val, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return 0, fmt.Errorf("invalid VALUE: %v", err)
	}
	return val, nil
}

func pointCmd(name, help string, aliases []string, newMsg func(sim.Pos2D, []string) fx.Message) *ishell.Cmd {
	return &ishell.Cmd{
		Name:    name,
		Aliases: aliases,
		Help:    help,
		Func: sh.MustBeConnected(func(c *ishell.Context) {
			p, rest, err := ParsePoint(c.Args)
			if err != nil {
				c.Err(err)
				return
			}
			sh.DoCommand(c, newMsg(p, rest))
		}),
	}
}

func paramCmd(name string, aliases []string, param pb.Param) *ishell.Cmd {
	return &ishell.Cmd{
		Name:    name,
		Aliases: aliases,
		Help:    "VALUE",
		Func: sh.MustBeConnected(func(c *ishell.Context) {
			val, err := ParseValue(c.Args)
			if err != nil {
				c.Err(err)
				return
			}
			sh.DoCommand(c, msgs.NewSetParam(param, val))
		}),
	}
}

var (
	// TargetCmd sets the steering target.
	TargetCmd = pointCmd("target", "X Y", []string{"t"}, func(p sim.Pos2D, _ []string) fx.Message {
		return msgs.NewSetTarget(p)
	})

	// ClickCmd simulates a click on the field.
	ClickCmd = pointCmd("click", "X Y [shift]", nil, func(p sim.Pos2D, rest []string) fx.Message {
		return msgs.NewClick(p, len(rest) > 0 && rest[0] == "shift")
	})

	// WaypointCmd adds a waypoint.
	WaypointCmd = pointCmd("wp", "X Y", []string{"waypoint"}, func(p sim.Pos2D, _ []string) fx.Message {
		return msgs.NewAddWaypoint(p)
	})

	// GoCmd starts pure pursuit through the waypoints.
	GoCmd = ishell.Cmd{
		Name:    "go",
		Aliases: []string{"pursue"},
		Help:    "",
		Func: sh.MustBeConnected(func(c *ishell.Context) {
			sh.DoCommand(c, &msgs.ConfirmPursuit{})
		}),
	}

	// ResetCmd clears target, waypoints and trajectories.
	ResetCmd = ishell.Cmd{
		Name: "reset",
		Help: "",
		Func: sh.MustBeConnected(func(c *ishell.Context) {
			sh.DoCommand(c, &msgs.ResetMotion{})
		}),
	}

	// SpeedCmd sets the steering speed.
	SpeedCmd = paramCmd("speed", nil, pb.Param_SPEED)

	// TurnCmd sets the steering turn speed.
	TurnCmd = paramCmd("turn", []string{"turn-speed"}, pb.Param_TURN_SPEED)

	// StatusCmd queries the motion state.
	StatusCmd = ishell.Cmd{
		Name:    "status",
		Aliases: []string{"s"},
		Help:    "",
		Func: sh.MustBeConnected(func(c *ishell.Context) {
			s := sh.ShellFrom(c)
			if s.OutputJSON {
				sh.DoCommand(c, &msgs.StatusQuery{})
				return
			}
			reply, err := s.Exec(&msgs.StatusQuery{})
			if err != nil {
				c.Err(err)
				return
			}
			status, ok := reply.(*msgs.Status)
			if !ok {
				c.Err(fmt.Errorf("unexpected reply %T", reply))
				return
			}
			snapshot, err := status.Snapshot()
			if err != nil {
				c.Err(err)
				return
			}
			c.Println(FormatStatus(snapshot.Mode.String(), snapshot.Pose, snapshot.Target, len(snapshot.Waypoints), snapshot.Speed, snapshot.TurnSpeed))
		}),
	}
)

// FormatStatus prints the motion state for display.
func FormatStatus(mode string, pose sim.Pose2D, target *sim.Pos2D, waypoints int, speed, turnSpeed float64) string {
	out := fmt.Sprintf("%s at (%.1f, %.1f) heading %.1f°", mode, pose.X, pose.Y, pose.Orientation.Degrees())
	if target != nil {
		out += fmt.Sprintf(", target (%.1f, %.1f)", target.X, target.Y)
	}
	if waypoints > 0 {
		out += fmt.Sprintf(", %d waypoints", waypoints)
	}
	return out + fmt.Sprintf(", speed %.2f turn %.3f", speed, turnSpeed)
}

func init() {
	sh.AddCmds(
		TargetCmd,
		ClickCmd,
		WaypointCmd,
		&GoCmd,
		&ResetCmd,
		SpeedCmd,
		TurnCmd,
		&StatusCmd,
	)
}
