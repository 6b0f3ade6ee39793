package motion

import (
	"github.com/golang/glog"

	"github.com/robotalks/pursuit.go/pkg/sim"
)

// MotionState is everything a Simulator mutates between ticks.
type MotionState struct {
	Pose sim.Pose2D
	Mode Mode
	// Target is the steering target, nil when absent.
	Target *sim.Pos2D
	// Initial is the pose captured when the current target was set.
	Initial   *sim.Pose2D
	Waypoints WaypointQueue
	// Path is the positions visited since the last target change.
	// It is only appended to, and replaced rather than truncated.
	Path []sim.Pos2D
	// Trajectories are frozen paths, kept until reset.
	Trajectories [][]sim.Pos2D
}

func (s *MotionState) apply(ev Event) bool {
	next, ok := s.Mode.Next(ev)
	if !ok {
		glog.Warningf("motion: event %s ignored in mode %s", ev, s.Mode)
		return false
	}
	if next != s.Mode {
		glog.Infof("motion: %s -> %s on %s", s.Mode, next, ev)
	}
	s.Mode = next
	return true
}

func (s *MotionState) appendPath() {
	s.Path = append(s.Path, s.Pose.Pos2D)
}

func (s *MotionState) freezePath() {
	if n := len(s.Path); n > 0 {
		s.Trajectories = append(s.Trajectories, s.Path[:n:n])
	}
	s.Path = nil
}

func (s *MotionState) reset() {
	s.Target, s.Initial = nil, nil
	s.Waypoints.Clear()
	s.Path, s.Trajectories = nil, nil
	s.apply(EventReset)
}
