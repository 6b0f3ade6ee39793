package motion

import (
	"fmt"
	"strings"
)

// Mode is the active motion mode.
type Mode int

// Modes
const (
	ModeIdle Mode = iota
	ModeSteering
	ModePursuit
)

// Event drives mode transitions.
type Event int

// Events
const (
	EventTarget Event = iota
	EventReached
	EventConfirm
	EventFinished
	EventReset
)

type transition struct {
	from Mode
	on   Event
}

// transitions lists every legal (mode, event) pair. EventReset is
// accepted from any mode and is not listed.
var transitions = map[transition]Mode{
	{ModeIdle, EventTarget}:      ModeSteering,
	{ModeSteering, EventTarget}:  ModeSteering,
	{ModePursuit, EventTarget}:   ModePursuit,
	{ModeSteering, EventReached}: ModeIdle,
	{ModeIdle, EventConfirm}:     ModePursuit,
	{ModeSteering, EventConfirm}: ModePursuit,
	{ModePursuit, EventConfirm}:  ModePursuit,
	{ModePursuit, EventFinished}: ModeIdle,
}

// Next returns the mode after ev. ok is false when ev is not
// accepted in m, and m is returned unchanged.
func (m Mode) Next(ev Event) (next Mode, ok bool) {
	if ev == EventReset {
		return ModeIdle, true
	}
	if next, ok = transitions[transition{m, ev}]; ok {
		return next, true
	}
	return m, false
}

func (m Mode) String() string {
	switch m {
	case ModeIdle:
		return "IDLE"
	case ModeSteering:
		return "STEERING"
	case ModePursuit:
		return "PURSUIT"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode converts a mode name into a Mode.
func ParseMode(value string) (Mode, error) {
	switch strings.ToUpper(strings.TrimSpace(value)) {
	case "IDLE":
		return ModeIdle, nil
	case "STEERING":
		return ModeSteering, nil
	case "PURSUIT":
		return ModePursuit, nil
	}
	return ModeIdle, fmt.Errorf("unknown mode %q", value)
}

func (e Event) String() string {
	switch e {
	case EventTarget:
		return "target"
	case EventReached:
		return "reached"
	case EventConfirm:
		return "confirm"
	case EventFinished:
		return "finished"
	case EventReset:
		return "reset"
	}
	return fmt.Sprintf("Event(%d)", int(e))
}
