package comm

import (
	"context"

	"github.com/golang/glog"

	fx "github.com/robotalks/pursuit.go/pkg/framework"
	"github.com/robotalks/pursuit.go/pkg/l1"
	"github.com/robotalks/pursuit.go/pkg/l1/msgs"
	"github.com/robotalks/pursuit.go/pkg/sim/motion"
)

// StatePublisher sends motion snapshots as State events.
// Snapshots are sent every Every ticks, and always on mode
// changes, arrivals and after commands. Sending happens off
// the loop, and only the latest pending State is kept.
type StatePublisher struct {
	Registrar l1.Registrar
	Session   string
	Every     uint64

	lastMode  motion.Mode
	published bool
	dirty     bool
	pending   chan *msgs.State
}

// NewStatePublisher creates a StatePublisher.
func NewStatePublisher(reg l1.Registrar, session string, every uint64) *StatePublisher {
	return &StatePublisher{
		Registrar: reg,
		Session:   session,
		Every:     every,
		pending:   make(chan *msgs.State, 1),
	}
}

// Touch forces the next snapshot to be published.
func (p *StatePublisher) Touch() {
	p.dirty = true
}

// StateChanged implements motion.StateListener.
func (p *StatePublisher) StateChanged(cc fx.ControlContext, s *motion.Snapshot) {
	if !p.shouldPublish(s) {
		return
	}
	p.published, p.dirty, p.lastMode = true, false, s.Mode
	state := msgs.StateFrom(s, p.Session)
	for {
		select {
		case p.pending <- state:
			return
		default:
		}
		select {
		case <-p.pending:
		default:
		}
	}
}

func (p *StatePublisher) shouldPublish(s *motion.Snapshot) bool {
	switch {
	case !p.published, p.dirty, s.Reached, s.Finished, s.Mode != p.lastMode:
		return true
	case p.Every <= 1:
		return true
	}
	return s.Tick%p.Every == 0
}

// Run implements Runnable.
func (p *StatePublisher) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case state := <-p.pending:
			if err := p.Registrar.SendEvent(ctx, state); err != nil {
				glog.Warningf("publish state error: %v", err)
			}
		}
	}
}

// AddToLoop implements LoopAdder.
func (p *StatePublisher) AddToLoop(l *fx.Loop) {
	l.AddRunnable(p)
}
