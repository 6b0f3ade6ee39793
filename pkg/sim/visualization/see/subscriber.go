// Package see is the adapter to visualize the motion state in
// github.com/robotalks/see.
package see

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/golang/glog"

	fx "github.com/robotalks/pursuit.go/pkg/framework"
	"github.com/robotalks/pursuit.go/pkg/sim"
	"github.com/robotalks/pursuit.go/pkg/sim/motion"
)

// Adapter is the visualization adapter to visualize using
// github.com/robotalks/see. One JSON array of messages is written
// per line, only containing what changed since the last snapshot.
type Adapter struct {
	Config *Config

	initial      bool
	target       *sim.Pos2D
	startPose    *sim.Pose2D
	waypoints    []sim.Pos2D
	path         []sim.Pos2D
	trajectories int
}

// NewAdapter creates the adapter.
func NewAdapter(config *Config) *Adapter {
	return &Adapter{
		Config:  config,
		initial: true,
	}
}

// Subscribe is a helper to subscribe state changes.
func (a *Adapter) Subscribe(sub motion.StateSubscriber) *Adapter {
	sub.SubscribeState(a)
	return a
}

// StateChanged implements motion.StateListener.
func (a *Adapter) StateChanged(cc fx.ControlContext, s *motion.Snapshot) {
	if msgs := a.Messages(s); len(msgs) > 0 {
		a.write(msgs)
	}
}

// Messages computes the messages to bring the view up to date with s.
func (a *Adapter) Messages(s *motion.Snapshot) []Message {
	var msgs []Message
	if a.initial || len(s.Trajectories) < a.trajectories {
		msgs = a.reset()
	}

	msgs = append(msgs, object(PoseObject("robot", IDRobot, s.Pose, a.Config.RobotRadius)))

	if !samePos(a.target, s.Target) {
		if s.Target == nil {
			msgs = append(msgs, Message{Action: ActionRemove, RemoveID: IDTarget})
		} else {
			msgs = append(msgs, object(NewObject("target", IDTarget).At(s.Target.X, s.Target.Y).Radius(a.Config.RobotRadius/2)))
		}
		a.target = s.Target
	}
	if !samePose(a.startPose, s.Initial) {
		if s.Initial == nil {
			msgs = append(msgs, Message{Action: ActionRemove, RemoveID: IDInitial})
		} else {
			msgs = append(msgs, object(PoseObject("initial", IDInitial, *s.Initial, a.Config.RobotRadius)))
		}
		a.startPose = s.Initial
	}
	if !samePoints(a.waypoints, s.Waypoints) {
		msgs = append(msgs, object(PolylineObject(IDWaypoints, s.Waypoints).With(PropStyle, "waypoints")))
		a.waypoints = s.Waypoints
	}
	if !samePoints(a.path, s.Path) {
		msgs = append(msgs, object(PolylineObject(IDPath, s.Path).With(PropStyle, "path")))
		a.path = s.Path
	}
	for n := a.trajectories; n < len(s.Trajectories); n++ {
		msgs = append(msgs, object(PolylineObject(TrajectoryID(n), s.Trajectories[n]).With(PropStyle, "trajectory")))
	}
	a.trajectories = len(s.Trajectories)
	return msgs
}

func (a *Adapter) reset() []Message {
	a.initial = false
	a.target, a.startPose = nil, nil
	a.waypoints, a.path = nil, nil
	a.trajectories = 0
	w, h := a.Config.W, a.Config.H
	return []Message{
		{Action: ActionReset},
		object(NewObject("corner", "corner-lt").With("loc", "lt").At(0, 0).Radius(1)),
		object(NewObject("corner", "corner-lb").With("loc", "lb").At(0, h).Radius(1)),
		object(NewObject("corner", "corner-rt").With("loc", "rt").At(w, 0).Radius(1)),
		object(NewObject("corner", "corner-rb").With("loc", "rb").At(w, h).Radius(1)),
	}
}

func (a *Adapter) write(msgs []Message) {
	encoded, err := json.Marshal(msgs)
	if err != nil {
		glog.Errorf("encode see messages error: %v", err)
		return
	}
	out := a.Config.Out
	if out == nil {
		out = os.Stdout
	}
	if _, err := fmt.Fprintln(out, string(encoded)); err != nil {
		glog.Warningf("write see messages error: %v", err)
	}
}

func object(o Object) Message {
	return Message{Action: ActionObject, Object: o}
}

func samePos(a, b *sim.Pos2D) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func samePose(a, b *sim.Pose2D) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func samePoints(a, b []sim.Pos2D) bool {
	if len(a) != len(b) {
		return false
	}
	for n := range a {
		if a[n] != b[n] {
			return false
		}
	}
	return true
}
