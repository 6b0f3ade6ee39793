package comm

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	fx "github.com/robotalks/pursuit.go/pkg/framework"
	"github.com/robotalks/pursuit.go/pkg/l1/msgs"
	"github.com/robotalks/pursuit.go/pkg/sim/motion"
)

type eventRecorder chan fx.Message

func (r eventRecorder) SendEvent(ctx context.Context, msg fx.Message) error {
	r <- msg
	return nil
}

func TestStatePublisherSelection(t *testing.T) {
	p := NewStatePublisher(eventRecorder(make(chan fx.Message, 1)), "s", 5)
	cases := []struct {
		name    string
		touch   bool
		s       motion.Snapshot
		publish bool
	}{
		{"first", false, motion.Snapshot{Tick: 1}, true},
		{"skipped", false, motion.Snapshot{Tick: 2}, false},
		{"divisor", false, motion.Snapshot{Tick: 5}, true},
		{"mode change", false, motion.Snapshot{Tick: 6, Mode: motion.ModeSteering}, true},
		{"same mode", false, motion.Snapshot{Tick: 7, Mode: motion.ModeSteering}, false},
		{"reached", false, motion.Snapshot{Tick: 8, Mode: motion.ModeSteering, Reached: true}, true},
		{"touched", true, motion.Snapshot{Tick: 9, Mode: motion.ModeSteering}, true},
		{"finished", false, motion.Snapshot{Tick: 11, Mode: motion.ModeSteering, Finished: true}, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if c.touch {
				p.Touch()
			}
			// drain whatever was pending before.
			select {
			case <-p.pending:
			default:
			}
			p.StateChanged(nil, &c.s)
			select {
			case state := <-p.pending:
				require.True(t, c.publish)
				require.Equal(t, c.s.Tick, state.Tick)
				require.Equal(t, "s", state.Session)
			default:
				require.False(t, c.publish)
			}
		})
	}
}

func TestStatePublisherKeepsLatest(t *testing.T) {
	rec := eventRecorder(make(chan fx.Message, 4))
	p := NewStatePublisher(rec, "s", 1)
	for tick := uint64(1); tick <= 3; tick++ {
		p.StateChanged(nil, &motion.Snapshot{Tick: tick})
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- p.Run(ctx) }()
	select {
	case msg := <-rec:
		require.Equal(t, uint64(3), msg.(*msgs.State).Tick)
	case <-time.After(time.Second):
		t.Fatal("state not published")
	}
	cancel()
	require.Equal(t, context.Canceled, <-done)
}
