package motion

import "errors"

var (
	// ErrInvalidPoint indicates a point with non-finite components.
	ErrInvalidPoint = errors.New("invalid point")
	// ErrInvalidParam indicates a non-finite parameter value.
	ErrInvalidParam = errors.New("invalid parameter")
	// ErrPursuitActive indicates waypoints can't be edited while pursuit runs.
	ErrPursuitActive = errors.New("pure pursuit active")
	// ErrNoWaypoints indicates pursuit is confirmed without any waypoint.
	ErrNoWaypoints = errors.New("no waypoints")
)
