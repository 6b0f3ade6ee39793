package motion

import (
	"github.com/golang/glog"

	"github.com/robotalks/pursuit.go/pkg/sim"
)

// Simulator owns a MotionState and runs exactly one controller per
// tick, selected by the current Mode. Pure pursuit preempts steering.
// It is not safe for concurrent use.
type Simulator struct {
	Steering            *SteeringController
	Pursuit             *PurePursuitFollower
	FinalPointTolerance float64
	SpeedRange          Range
	TurnSpeedRange      Range

	State MotionState

	speed     float64
	turnSpeed float64
	ticks     uint64
}

// Snapshot is the state after a tick. Slices are shared with the
// Simulator but never modified afterwards.
type Snapshot struct {
	Tick         uint64
	Pose         sim.Pose2D
	Mode         Mode
	Reached      bool
	Finished     bool
	Target       *sim.Pos2D
	Initial      *sim.Pose2D
	Waypoints    []sim.Pos2D
	Path         []sim.Pos2D
	Trajectories [][]sim.Pos2D
	Speed        float64
	TurnSpeed    float64
}

// NewSimulator creates a Simulator from the default configuration.
func NewSimulator() *Simulator {
	return NewConfig().NewSimulator()
}

// Speed is the current steering speed.
func (s *Simulator) Speed() float64 { return s.speed }

// TurnSpeed is the current steering turn speed.
func (s *Simulator) TurnSpeed() float64 { return s.turnSpeed }

// SetTarget starts steering towards p. The current path is frozen
// into a trajectory. Pure pursuit keeps running if active.
func (s *Simulator) SetTarget(p sim.Pos2D) error {
	if !p.IsFinite() {
		return ErrInvalidPoint
	}
	s.State.freezePath()
	initial := s.State.Pose
	s.State.Target, s.State.Initial = &p, &initial
	s.State.apply(EventTarget)
	glog.Infof("motion: target (%.1f, %.1f)", p.X, p.Y)
	return nil
}

// AddWaypoint appends a waypoint. Waypoints can't be added while
// pure pursuit is running.
func (s *Simulator) AddWaypoint(p sim.Pos2D) error {
	if !p.IsFinite() {
		return ErrInvalidPoint
	}
	if s.State.Mode == ModePursuit {
		return ErrPursuitActive
	}
	s.State.Waypoints.Push(p)
	return nil
}

// ConfirmPurePursuit starts pure pursuit if any waypoint is queued.
func (s *Simulator) ConfirmPurePursuit() bool {
	if s.State.Waypoints.Len() == 0 {
		return false
	}
	if s.State.Mode != ModePursuit {
		s.State.freezePath()
		glog.Infof("motion: pursuing %d waypoints", s.State.Waypoints.Len())
	}
	return s.State.apply(EventConfirm)
}

// Reset clears target, waypoints, path and trajectories. The pose is kept.
func (s *Simulator) Reset() {
	s.State.reset()
}

// SetSpeedParam sets the steering speed, clamped into SpeedRange.
func (s *Simulator) SetSpeedParam(v float64) (float64, error) {
	clamped, err := s.SpeedRange.Clamp(v)
	if err != nil {
		return s.speed, err
	}
	s.speed = clamped
	return clamped, nil
}

// SetTurnParam sets the steering turn speed, clamped into TurnSpeedRange.
func (s *Simulator) SetTurnParam(v float64) (float64, error) {
	clamped, err := s.TurnSpeedRange.Clamp(v)
	if err != nil {
		return s.turnSpeed, err
	}
	s.turnSpeed = clamped
	return clamped, nil
}

// Tick advances the simulation by one step.
func (s *Simulator) Tick() Snapshot {
	s.ticks++
	var reached, finished bool
	st := &s.State
	switch st.Mode {
	case ModePursuit:
		pose, moving := s.Pursuit.Step(st.Pose, &st.Waypoints)
		if moving {
			st.Pose = pose
			st.appendPath()
		}
		if last, ok := st.Waypoints.Front(); !ok ||
			(st.Waypoints.Len() == 1 && st.Pose.DistanceTo(last) < s.FinalPointTolerance) {
			s.finishPursuit()
			finished = true
		}
	case ModeSteering:
		if st.Target == nil {
			st.apply(EventReached)
			break
		}
		if reached, _ = s.Steering.Step(&st.Pose, *st.Target, s.speed, s.turnSpeed); reached {
			glog.Infof("motion: reached (%.1f, %.1f)", st.Target.X, st.Target.Y)
			st.Target = nil
			st.apply(EventReached)
		} else {
			st.appendPath()
		}
	}
	snapshot := s.Snapshot()
	snapshot.Reached, snapshot.Finished = reached, finished
	return snapshot
}

func (s *Simulator) finishPursuit() {
	st := &s.State
	st.Waypoints.Clear()
	st.Target, st.Initial = nil, nil
	st.Path = nil
	st.apply(EventFinished)
}

// Snapshot captures the current state without stepping.
func (s *Simulator) Snapshot() Snapshot {
	st := &s.State
	snapshot := Snapshot{
		Tick:      s.ticks,
		Pose:      st.Pose,
		Mode:      st.Mode,
		Waypoints: st.Waypoints.Points(),
		Speed:     s.speed,
		TurnSpeed: s.turnSpeed,
	}
	if st.Target != nil {
		target := *st.Target
		snapshot.Target = &target
	}
	if st.Initial != nil {
		initial := *st.Initial
		snapshot.Initial = &initial
	}
	if n := len(st.Path); n > 0 {
		snapshot.Path = st.Path[:n:n]
	}
	if n := len(st.Trajectories); n > 0 {
		snapshot.Trajectories = st.Trajectories[:n:n]
	}
	return snapshot
}
