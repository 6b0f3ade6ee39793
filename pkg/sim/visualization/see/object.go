package see

import (
	"strconv"

	"github.com/robotalks/pursuit.go/pkg/sim"
)

// Object is the data model used to represents an object.
type Object map[string]interface{}

// Pos is a position.
type Pos struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Message is the message for see.
type Message struct {
	Action   string `json:"action"`
	Object   Object `json:"object,omitempty"`
	RemoveID string `json:"id,omitempty"`
}

// Actions
const (
	ActionReset  = "reset"
	ActionObject = "object"
	ActionRemove = "remove"
)

// Properties
const (
	PropID     = "id"
	PropType   = "type"
	PropOrigin = "origin"
	PropRadius = "radius"
	PropRotate = "rotate"
	PropPoints = "points"
	PropStyle  = "style"
)

// Object IDs
const (
	IDRobot     = "robot"
	IDTarget    = "target"
	IDInitial   = "initial"
	IDWaypoints = "waypoints"
	IDPath      = "path"
)

// TrajectoryID is the ID of the n-th frozen trajectory.
func TrajectoryID(n int) string {
	return "trajectory." + strconv.Itoa(n)
}

// NewObject creates Object.
func NewObject(typ, id string) Object {
	o := make(Object)
	o[PropID] = id
	o[PropType] = typ
	return o
}

// PoseObject creates a marker at the pose.
func PoseObject(typ, id string, pose sim.Pose2D, radius float64) Object {
	return NewObject(typ, id).
		At(pose.X, pose.Y).
		Radius(radius).
		Rotate(pose.Orientation.Degrees())
}

// PolylineObject creates a polyline through points.
func PolylineObject(id string, pts []sim.Pos2D) Object {
	line := make([]Pos, len(pts))
	for n, pt := range pts {
		line[n] = Pos{X: pt.X, Y: pt.Y}
	}
	return NewObject("polyline", id).With(PropPoints, line)
}

// At sets origin.
func (o Object) At(x, y float64) Object {
	o[PropOrigin] = &Pos{X: x, Y: y}
	return o
}

// Radius sets radius.
func (o Object) Radius(r float64) Object {
	o[PropRadius] = r
	return o
}

// Rotate sets rotate.
func (o Object) Rotate(deg float64) Object {
	o[PropRotate] = deg
	return o
}

// With sets a custom property.
func (o Object) With(key string, val interface{}) Object {
	o[key] = val
	return o
}
