package msgs

import (
	pb "github.com/robotalks/pursuit.go/pkg/proto/pursuit/v1"
	"github.com/robotalks/pursuit.go/pkg/sim"
	"github.com/robotalks/pursuit.go/pkg/sim/motion"
)

// PointFrom converts a position.
func PointFrom(p sim.Pos2D) *pb.Point {
	return &pb.Point{X: p.X, Y: p.Y}
}

// Pos2D converts a point, nil is the origin.
func Pos2D(p *pb.Point) sim.Pos2D {
	if p == nil {
		return sim.Pos2D{}
	}
	return sim.Pos2D{X: p.X, Y: p.Y}
}

// PoseFrom converts a pose.
func PoseFrom(p sim.Pose2D) *pb.Pose {
	return &pb.Pose{X: p.X, Y: p.Y, Heading: p.Orientation.Radians()}
}

// Pose2D converts a pose, nil is the origin.
func Pose2D(p *pb.Pose) sim.Pose2D {
	if p == nil {
		return sim.Pose2D{}
	}
	return sim.Pose2D{Pos2D: sim.Pos2D{X: p.X, Y: p.Y}, Orientation: sim.Angle(p.Heading)}
}

// PolylineFrom converts a list of positions. Empty list gives nil.
func PolylineFrom(pts []sim.Pos2D) *pb.Polyline {
	if len(pts) == 0 {
		return nil
	}
	line := &pb.Polyline{Points: make([]*pb.Point, len(pts))}
	for n, p := range pts {
		line.Points[n] = PointFrom(p)
	}
	return line
}

// Positions converts a polyline back to positions.
func Positions(line *pb.Polyline) []sim.Pos2D {
	if line == nil || len(line.Points) == 0 {
		return nil
	}
	pts := make([]sim.Pos2D, len(line.Points))
	for n, p := range line.Points {
		pts[n] = Pos2D(p)
	}
	return pts
}

// StateFrom converts a Snapshot into a State event.
func StateFrom(s *motion.Snapshot, session string) *State {
	m := &State{State: pb.State{
		Tick:      s.Tick,
		Pose:      PoseFrom(s.Pose),
		Mode:      s.Mode.String(),
		Reached:   s.Reached,
		Finished:  s.Finished,
		Waypoints: PolylineFrom(s.Waypoints),
		Path:      PolylineFrom(s.Path),
		Speed:     s.Speed,
		TurnSpeed: s.TurnSpeed,
		Session:   session,
	}}
	if s.Target != nil {
		m.Target = PointFrom(*s.Target)
	}
	if s.Initial != nil {
		m.Initial = PoseFrom(*s.Initial)
	}
	for _, traj := range s.Trajectories {
		m.Trajectories = append(m.Trajectories, PolylineFrom(traj))
	}
	return m
}

// StatusFrom converts a Snapshot into a Status reply.
func StatusFrom(s *motion.Snapshot, session string) *Status {
	return &Status{State: StateFrom(s, session).State}
}

// Snapshot converts the State back to a Snapshot.
func (m *State) Snapshot() (*motion.Snapshot, error) {
	return snapshotOf(&m.State)
}

// Snapshot converts the Status back to a Snapshot.
func (m *Status) Snapshot() (*motion.Snapshot, error) {
	return snapshotOf(&m.State)
}

func snapshotOf(m *pb.State) (*motion.Snapshot, error) {
	mode, err := motion.ParseMode(m.Mode)
	if err != nil {
		return nil, err
	}
	s := &motion.Snapshot{
		Tick:      m.Tick,
		Pose:      Pose2D(m.Pose),
		Mode:      mode,
		Reached:   m.Reached,
		Finished:  m.Finished,
		Waypoints: Positions(m.Waypoints),
		Path:      Positions(m.Path),
		Speed:     m.Speed,
		TurnSpeed: m.TurnSpeed,
	}
	if m.Target != nil {
		target := Pos2D(m.Target)
		s.Target = &target
	}
	if m.Initial != nil {
		initial := Pose2D(m.Initial)
		s.Initial = &initial
	}
	for _, traj := range m.Trajectories {
		s.Trajectories = append(s.Trajectories, Positions(traj))
	}
	return s, nil
}
