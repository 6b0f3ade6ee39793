// Package msgs defines the wire messages exchanged with a pursuit
// simulator and the typed envelope carrying them.
//
// Commands flow from operators to the simulator and are answered by
// replies carrying the same sequence number. State is an event
// published by the simulator.
package msgs
