// Package pursuit is the L1 controller of a simulated point-mass robot
// which steers to a target or follows waypoints with pure pursuit.
package pursuit

import (
	"errors"
	"fmt"

	"github.com/golang/glog"
	"github.com/google/uuid"

	fx "github.com/robotalks/pursuit.go/pkg/framework"
	"github.com/robotalks/pursuit.go/pkg/l1"
	"github.com/robotalks/pursuit.go/pkg/l1/comm"
	env "github.com/robotalks/pursuit.go/pkg/l1/env/controller"
	"github.com/robotalks/pursuit.go/pkg/l1/msgs"
	pb "github.com/robotalks/pursuit.go/pkg/proto/pursuit/v1"
	"github.com/robotalks/pursuit.go/pkg/sim"
	"github.com/robotalks/pursuit.go/pkg/sim/motion"
)

// ErrReservedArea indicates a plain click inside the reserved strip.
var ErrReservedArea = errors.New("click in reserved area")

// Controller is the L1 controller.
type Controller struct {
	Env       *env.Env
	Sim       *motion.Simulator
	Session   string
	ReservedY float64
	Publisher *comm.StatePublisher

	motion.StateCaster

	snapshot motion.Snapshot
}

// NewController creates the controller.
func NewController(e *env.Env, s *motion.Simulator) *Controller {
	c := &Controller{
		Env:       e,
		Sim:       s,
		Session:   uuid.New().String(),
		ReservedY: DefaultFieldHeight - DefaultReservedStrip,
	}
	c.Publisher = comm.NewStatePublisher(e.Registrar, c.Session, uint64(DefaultPublishEvery))
	c.SubscribeState(c.Publisher)
	c.snapshot = s.Snapshot()
	return c
}

// Name implements Named.
func (c *Controller) Name() string {
	return c.Env.Config.Info.Ref.Name()
}

// AddToLoop implements LoopAdder.
func (c *Controller) AddToLoop(l *fx.Loop) {
	l.AddController(fx.PrLvControl, fx.ControlFunc(c.HandleCommands))
	l.AddController(fx.PrLvAcuate, fx.ControlFunc(c.Execute))
	l.AddController(fx.PrLvPostProc, fx.ControlFunc(c.NotifyChanges))
	l.Add(c.Publisher)
}

// HandleCommands applies received commands to the simulator.
func (c *Controller) HandleCommands(cc fx.ControlContext) error {
	cc.Messages().ProcessMessages(fx.ProcessMessageFunc(func(mctx fx.MessageProcessingContext) {
		cmdMsg, ok := mctx.CurrentMessage().(*l1.CommandMsg)
		if !ok {
			return
		}
		reply, handled := c.handle(cmdMsg.Command.Msg())
		if !handled {
			return
		}
		mctx.MessageTaken()
		c.Publisher.Touch()
		if err := cmdMsg.Command.Done(reply); err != nil {
			glog.Warningf("reply error: %v", err)
		}
	}))
	return nil
}

func (c *Controller) handle(msg fx.Message) (fx.Message, bool) {
	switch m := msg.(type) {
	case *msgs.SetTarget:
		return replyOf(c.Sim.SetTarget(msgs.Pos2D(m.Point))), true
	case *msgs.Click:
		return replyOf(c.Click(msgs.Pos2D(m.Point), m.Shift)), true
	case *msgs.AddWaypoint:
		return replyOf(c.Sim.AddWaypoint(msgs.Pos2D(m.Point))), true
	case *msgs.ConfirmPursuit:
		if !c.Sim.ConfirmPurePursuit() {
			return replyOf(motion.ErrNoWaypoints), true
		}
		return msgs.NewCommandOK(), true
	case *msgs.ResetMotion:
		c.Sim.Reset()
		return msgs.NewCommandOK(), true
	case *msgs.SetParam:
		val, err := c.SetParam(m.Param, m.Value)
		if err != nil {
			return msgs.NewCommandErr(err), true
		}
		reply := &msgs.ParamReply{}
		reply.Param, reply.Value = m.Param, val
		return reply, true
	case *msgs.StatusQuery:
		s := c.Sim.Snapshot()
		return msgs.StatusFrom(&s, c.Session), true
	}
	return nil, false
}

func replyOf(err error) fx.Message {
	if err != nil {
		glog.Warningf("command rejected: %v", err)
		return msgs.NewCommandErr(err)
	}
	return msgs.NewCommandOK()
}

// Click handles a pointer click on the field. A shift-click adds a
// waypoint anywhere, a plain click sets the target outside the
// reserved strip.
func (c *Controller) Click(p sim.Pos2D, shift bool) error {
	if shift {
		return c.Sim.AddWaypoint(p)
	}
	if p.Y >= c.ReservedY {
		return ErrReservedArea
	}
	return c.Sim.SetTarget(p)
}

// SetParam sets a steering parameter and returns the effective value.
func (c *Controller) SetParam(param pb.Param, value float64) (float64, error) {
	switch param {
	case pb.Param_SPEED:
		return c.Sim.SetSpeedParam(value)
	case pb.Param_TURN_SPEED:
		return c.Sim.SetTurnParam(value)
	}
	return 0, fmt.Errorf("unknown param %v", param)
}

// Execute advances the simulator by one tick on scheduled iterations.
// Iterations triggered by commands only refresh the snapshot.
func (c *Controller) Execute(cc fx.ControlContext) error {
	if !cc.Scheduled() {
		c.snapshot = c.Sim.Snapshot()
		return nil
	}
	c.snapshot = c.Sim.Tick()
	return nil
}

// NotifyChanges sends the snapshot of this tick to listeners.
func (c *Controller) NotifyChanges(cc fx.ControlContext) error {
	c.StateChanged(cc, &c.snapshot)
	return nil
}
