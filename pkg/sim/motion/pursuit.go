package motion

import (
	"math"

	"github.com/robotalks/pursuit.go/pkg/sim"
)

// PurePursuitFollower follows a queue of waypoints. It switches to the
// next waypoint once the current one is closer than LookaheadDistance,
// without interpolating along the segment between them.
type PurePursuitFollower struct {
	LookaheadDistance float64
	BaseSpeed         float64
	TurnThreshold     sim.Angle
	// TurnGain scales misalignment into turn speed, which is then
	// bounded by MinTurnSpeed and MaxTurnSpeed.
	TurnGain     float64
	MinTurnSpeed float64
	MaxTurnSpeed float64
}

// Step returns the pose after one tick. The last waypoint is never
// popped. moving is false only when the queue is empty.
func (f *PurePursuitFollower) Step(pose sim.Pose2D, waypoints *WaypointQueue) (sim.Pose2D, bool) {
	lookahead, ok := waypoints.Front()
	if !ok {
		return pose, false
	}
	if waypoints.Len() > 1 && pose.DistanceTo(lookahead) < f.LookaheadDistance {
		waypoints.Pop()
		lookahead, _ = waypoints.Front()
	}
	diff := pose.BearingTo(lookahead).Sub(pose.Orientation)
	if diff.Abs() > f.TurnThreshold.Radians() {
		pose.Orientation = pose.Orientation.AddRadians(f.TurnSpeed(diff) * diff.Sign())
	}
	pose.OffsetBy(pose.Orientation.Project(f.BaseSpeed))
	return pose, true
}

// TurnSpeed is the turn rate used for misalignment diff.
func (f *PurePursuitFollower) TurnSpeed(diff sim.Angle) float64 {
	return math.Min(math.Max(diff.Abs()*f.TurnGain, f.MinTurnSpeed), f.MaxTurnSpeed)
}
