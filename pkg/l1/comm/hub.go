package comm

import (
	"context"
	"sync"

	"github.com/golang/glog"

	fx "github.com/robotalks/pursuit.go/pkg/framework"
	"github.com/robotalks/pursuit.go/pkg/l1/msgs"
)

// Hub is a Registrar over any number of packet connections.
// Each connection may send commands, and events are sent to all.
type Hub struct {
	lock  sync.RWMutex
	pipes map[*Pipe]struct{}
}

// Serve runs a connection until it fails or ctx is done. The
// context must come from a loop runner.
func (h *Hub) Serve(ctx context.Context, rw PacketReadWriter) error {
	pipe := NewPipe(rw)
	pipe.Handler = postToLoop(pipe)
	h.lock.Lock()
	if h.pipes == nil {
		h.pipes = make(map[*Pipe]struct{})
	}
	h.pipes[pipe] = struct{}{}
	h.lock.Unlock()
	defer func() {
		h.lock.Lock()
		delete(h.pipes, pipe)
		h.lock.Unlock()
	}()
	return pipe.Run(ctx)
}

// Len is the number of connections.
func (h *Hub) Len() int {
	h.lock.RLock()
	defer h.lock.RUnlock()
	return len(h.pipes)
}

// SendEvent implements Registrar. The event is encoded once
// and written to every connection.
func (h *Hub) SendEvent(ctx context.Context, msg fx.Message) error {
	typed, err := msgs.TypedFrom(msg)
	if err != nil {
		return err
	}
	pkt, err := typed.Encode()
	if err != nil {
		return err
	}
	h.lock.RLock()
	pipes := make([]*Pipe, 0, len(h.pipes))
	for pipe := range h.pipes {
		pipes = append(pipes, pipe)
	}
	h.lock.RUnlock()
	var errs fx.Errors
	for _, pipe := range pipes {
		if err := pipe.SendPacket(pkt); err != nil {
			glog.V(2).Infof("send event error: %v", err)
			errs.Add(err)
		}
	}
	return errs.Err()
}
