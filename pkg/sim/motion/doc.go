// Package motion simulates a point-mass robot driven either by a
// move-to-point steering controller or by a greedy lookahead
// waypoint follower.
//
// All state is owned by a single Simulator and is stepped from one
// goroutine. Inputs are applied between ticks.
package motion
