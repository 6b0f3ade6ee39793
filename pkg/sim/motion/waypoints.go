package motion

import "github.com/robotalks/pursuit.go/pkg/sim"

// WaypointQueue is an ordered list of waypoints consumed from the front.
// Popped entries stay in the backing slice until the next Push,
// so Len, Front and Pop are O(1).
type WaypointQueue struct {
	points []sim.Pos2D
	head   int
}

// Len is the number of remaining waypoints.
func (q *WaypointQueue) Len() int {
	return len(q.points) - q.head
}

// Front returns the current waypoint. ok is false on an empty queue.
func (q *WaypointQueue) Front() (p sim.Pos2D, ok bool) {
	if q.Len() == 0 {
		return
	}
	return q.points[q.head], true
}

// Pop drops the front waypoint.
func (q *WaypointQueue) Pop() bool {
	if q.Len() == 0 {
		return false
	}
	q.head++
	return true
}

// Push appends waypoints at the back.
func (q *WaypointQueue) Push(pts ...sim.Pos2D) {
	if q.head > 0 {
		n := copy(q.points, q.points[q.head:])
		q.points = q.points[:n]
		q.head = 0
	}
	q.points = append(q.points, pts...)
}

// Clear drops all waypoints.
func (q *WaypointQueue) Clear() {
	q.points, q.head = nil, 0
}

// Points returns a copy of remaining waypoints, front first.
func (q *WaypointQueue) Points() []sim.Pos2D {
	if q.Len() == 0 {
		return nil
	}
	return append([]sim.Pos2D(nil), q.points[q.head:]...)
}
