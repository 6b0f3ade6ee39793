package motion

import (
	"math"

	"github.com/robotalks/pursuit.go/pkg/sim"
)

// SteeringController drives towards a single stationary target with a
// fixed turn rate and a forward speed attenuated by misalignment.
type SteeringController struct {
	// TargetRadius is the distance at which the target counts as reached.
	TargetRadius float64
	// TurnThreshold is the dead-band, no turn is applied within it.
	TurnThreshold sim.Angle
	// MinForwardRatio is the lowest fraction of speed used when misaligned.
	MinForwardRatio float64
}

// Step advances pose by one tick towards target. The pose is moved
// along its heading before the turn is applied. Once within
// TargetRadius, reached is true and pose is left untouched.
func (s *SteeringController) Step(pose *sim.Pose2D, target sim.Pos2D, speed, turnSpeed float64) (reached bool, heading sim.Angle) {
	if pose.DistanceTo(target) <= s.TargetRadius {
		return true, pose.Orientation
	}
	diff := pose.BearingTo(target).Sub(pose.Orientation)
	turn := s.TurnDelta(diff, turnSpeed)
	pose.OffsetBy(pose.Orientation.Project(s.ForwardSpeed(diff, speed)))
	if turn != 0 {
		pose.Orientation = pose.Orientation.AddRadians(turn)
	}
	return false, pose.Orientation
}

// TurnDelta is the heading change for the misalignment diff.
func (s *SteeringController) TurnDelta(diff sim.Angle, turnSpeed float64) float64 {
	if diff.Abs() <= s.TurnThreshold.Radians() {
		return 0
	}
	return turnSpeed * diff.Sign()
}

// ForwardSpeed is the distance moved in a tick with misalignment diff.
func (s *SteeringController) ForwardSpeed(diff sim.Angle, speed float64) float64 {
	return speed * math.Max(s.MinForwardRatio, 1-diff.Abs()/math.Pi)
}
