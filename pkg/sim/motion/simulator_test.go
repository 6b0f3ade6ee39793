package motion

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/robotalks/pursuit.go/pkg/sim"
)

func tickUntil(t *testing.T, s *Simulator, max int, cond func(Snapshot) bool) Snapshot {
	for i := 0; i < max; i++ {
		if snapshot := s.Tick(); cond(snapshot) {
			return snapshot
		}
	}
	t.Fatalf("condition not met in %d ticks", max)
	return Snapshot{}
}

func TestSimulatorSteeringToTarget(t *testing.T) {
	s := NewSimulator()
	require.Equal(t, sim.Pose2D{Pos2D: sim.Pos2D{X: 500, Y: 325}}, s.State.Pose)
	require.NoError(t, s.SetTarget(sim.Pos2D{X: 600, Y: 325}))
	require.Equal(t, ModeSteering, s.State.Mode)

	snapshot := tickUntil(t, s, 100, func(s Snapshot) bool { return s.Reached })
	require.Equal(t, uint64(41), snapshot.Tick)
	require.Equal(t, ModeIdle, snapshot.Mode)
	require.Nil(t, snapshot.Target)
	require.Equal(t, &sim.Pose2D{Pos2D: sim.Pos2D{X: 500, Y: 325}}, snapshot.Initial)
	require.Equal(t, 580.0, snapshot.Pose.X)
	require.Len(t, snapshot.Path, 40)
	require.Equal(t, sim.Pos2D{X: 580, Y: 325}, snapshot.Path[39])

	// idle ticks don't move.
	require.Equal(t, snapshot.Pose, s.Tick().Pose)

	require.NoError(t, s.SetTarget(sim.Pos2D{X: 580, Y: 100}))
	snapshot = s.Snapshot()
	require.Len(t, snapshot.Trajectories, 1)
	require.Len(t, snapshot.Trajectories[0], 40)
	require.Empty(t, snapshot.Path)
	require.Equal(t, sim.Pos2D{X: 580, Y: 325}, snapshot.Initial.Pos2D)
}

func TestSimulatorPursuitFinishes(t *testing.T) {
	s := NewSimulator()
	s.State.Pose = sim.Pose2D{Pos2D: sim.Pos2D{X: 3}}
	require.NoError(t, s.AddWaypoint(sim.Pos2D{X: 5}))
	require.True(t, s.ConfirmPurePursuit())
	require.Equal(t, ModePursuit, s.State.Mode)

	snapshot := s.Tick()
	require.True(t, snapshot.Finished)
	require.Equal(t, ModeIdle, snapshot.Mode)
	require.Empty(t, snapshot.Waypoints)
	require.Empty(t, snapshot.Path)
	require.Equal(t, 0, s.State.Waypoints.Len())
}

func TestSimulatorPursuitPreemptsSteering(t *testing.T) {
	s := NewSimulator()
	require.NoError(t, s.AddWaypoint(sim.Pos2D{X: 560, Y: 325}))
	require.NoError(t, s.AddWaypoint(sim.Pos2D{X: 600, Y: 325}))
	require.NoError(t, s.SetTarget(sim.Pos2D{X: 500, Y: 100}))
	require.True(t, s.ConfirmPurePursuit())
	require.NoError(t, s.SetTarget(sim.Pos2D{X: 400, Y: 100}))
	require.Equal(t, ModePursuit, s.State.Mode)
	require.Equal(t, ErrPursuitActive, s.AddWaypoint(sim.Pos2D{X: 1, Y: 1}))

	last := s.State.Waypoints.Len()
	snapshot := tickUntil(t, s, 200, func(snapshot Snapshot) bool {
		if !snapshot.Finished {
			require.Equal(t, ModePursuit, snapshot.Mode)
			require.NotNil(t, snapshot.Target)
			require.InDelta(t, 325, snapshot.Pose.Y, 1e-9)
			require.True(t, len(snapshot.Waypoints) <= last)
			require.True(t, len(snapshot.Waypoints) >= 1)
			last = len(snapshot.Waypoints)
		}
		return snapshot.Finished
	})
	require.Equal(t, ModeIdle, snapshot.Mode)
	require.Nil(t, snapshot.Target)
	require.InDelta(t, 596, snapshot.Pose.X, 1e-9)

	// stale target doesn't resume.
	require.Equal(t, snapshot.Pose, s.Tick().Pose)
}

func TestSimulatorSetTargetDuringPursuitFreezesPath(t *testing.T) {
	s := NewSimulator()
	require.NoError(t, s.AddWaypoint(sim.Pos2D{X: 900, Y: 325}))
	require.True(t, s.ConfirmPurePursuit())
	for i := 0; i < 5; i++ {
		s.Tick()
	}
	require.Len(t, s.State.Path, 5)

	require.NoError(t, s.SetTarget(sim.Pos2D{X: 500, Y: 100}))
	snapshot := s.Snapshot()
	require.Equal(t, ModePursuit, snapshot.Mode)
	require.Empty(t, snapshot.Path)
	require.Len(t, snapshot.Trajectories, 1)
	require.Len(t, snapshot.Trajectories[0], 5)

	snapshot = s.Tick()
	require.Equal(t, ModePursuit, snapshot.Mode)
	require.Len(t, snapshot.Path, 1)
	require.InDelta(t, 325, snapshot.Pose.Y, 1e-9)
}

func TestSimulatorConfirmWithoutWaypoints(t *testing.T) {
	s := NewSimulator()
	require.False(t, s.ConfirmPurePursuit())
	require.Equal(t, ModeIdle, s.State.Mode)
	require.NoError(t, s.SetTarget(sim.Pos2D{X: 0, Y: 0}))
	require.False(t, s.ConfirmPurePursuit())
	require.Equal(t, ModeSteering, s.State.Mode)
}

func TestSimulatorReset(t *testing.T) {
	s := NewSimulator()
	require.NoError(t, s.SetTarget(sim.Pos2D{X: 700, Y: 500}))
	for i := 0; i < 10; i++ {
		s.Tick()
	}
	require.NoError(t, s.SetTarget(sim.Pos2D{X: 100, Y: 100}))
	for i := 0; i < 10; i++ {
		s.Tick()
	}
	require.NoError(t, s.AddWaypoint(sim.Pos2D{X: 5, Y: 5}))
	pose := s.State.Pose
	require.NotEmpty(t, s.State.Trajectories)

	s.Reset()
	once := s.Snapshot()
	s.Reset()
	twice := s.Snapshot()
	require.Equal(t, once, twice)
	require.Equal(t, pose, twice.Pose)
	require.Equal(t, ModeIdle, twice.Mode)
	require.Nil(t, twice.Target)
	require.Nil(t, twice.Initial)
	require.Empty(t, twice.Waypoints)
	require.Empty(t, twice.Path)
	require.Empty(t, twice.Trajectories)
}

func TestSimulatorParams(t *testing.T) {
	s := NewSimulator()
	require.Equal(t, 2.0, s.Speed())
	require.Equal(t, 0.05, s.TurnSpeed())

	testCases := []struct {
		name   string
		set    func(float64) (float64, error)
		get    func() float64
		in     float64
		expect float64
		err    error
	}{
		{"speed in range", s.SetSpeedParam, s.Speed, 3.5, 3.5, nil},
		{"speed too high", s.SetSpeedParam, s.Speed, 10, 5, nil},
		{"speed non-positive", s.SetSpeedParam, s.Speed, -1, 1, nil},
		{"speed NaN", s.SetSpeedParam, s.Speed, math.NaN(), 1, ErrInvalidParam},
		{"turn in range", s.SetTurnParam, s.TurnSpeed, 0.02, 0.02, nil},
		{"turn too high", s.SetTurnParam, s.TurnSpeed, 1, 0.1, nil},
		{"turn zero", s.SetTurnParam, s.TurnSpeed, 0, 0.01, nil},
		{"turn inf", s.SetTurnParam, s.TurnSpeed, math.Inf(1), 0.01, ErrInvalidParam},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			val, err := tc.set(tc.in)
			require.Equal(t, tc.err, err)
			require.Equal(t, tc.expect, val)
			require.Equal(t, tc.expect, tc.get())
		})
	}
}

func TestSimulatorInvalidPoints(t *testing.T) {
	s := NewSimulator()
	require.Equal(t, ErrInvalidPoint, s.SetTarget(sim.Pos2D{X: math.NaN()}))
	require.Equal(t, ErrInvalidPoint, s.AddWaypoint(sim.Pos2D{Y: math.Inf(-1)}))
	require.Equal(t, ModeIdle, s.State.Mode)
	require.Equal(t, 0, s.State.Waypoints.Len())
}

func TestSnapshotNotAffectedByLaterTicks(t *testing.T) {
	s := NewSimulator()
	require.NoError(t, s.SetTarget(sim.Pos2D{X: 900, Y: 325}))
	s.Tick()
	snapshot := s.Tick()
	path := append([]sim.Pos2D(nil), snapshot.Path...)
	snapshot.Target.X = 0
	for i := 0; i < 10; i++ {
		s.Tick()
	}
	require.Equal(t, path, snapshot.Path)
	require.Equal(t, 900.0, s.State.Target.X)
}
