package motion

import (
	fx "github.com/robotalks/pursuit.go/pkg/framework"
)

// StateListener receives a Snapshot after each tick.
type StateListener interface {
	StateChanged(fx.ControlContext, *Snapshot)
}

// StateSubscriber accepts StateListeners.
type StateSubscriber interface {
	SubscribeState(StateListener)
}

// StateListenerFunc is the func form of StateListener.
type StateListenerFunc func(fx.ControlContext, *Snapshot)

// StateChanged implements StateListener.
func (f StateListenerFunc) StateChanged(cc fx.ControlContext, s *Snapshot) {
	f(cc, s)
}

// StateCaster provides a subscriber and implements
// listener to cast notifcations.
type StateCaster struct {
	listeners []StateListener
}

// SubscribeState implements StateSubscriber.
func (c *StateCaster) SubscribeState(ln StateListener) {
	c.listeners = append(c.listeners, ln)
}

// StateChanged implements StateListener.
func (c *StateCaster) StateChanged(cc fx.ControlContext, s *Snapshot) {
	for _, ln := range c.listeners {
		ln.StateChanged(cc, s)
	}
}
