package comm

import (
	"container/list"
	"context"
	"sync"
	"time"

	"github.com/golang/glog"

	fx "github.com/robotalks/pursuit.go/pkg/framework"
	"github.com/robotalks/pursuit.go/pkg/l1"
	"github.com/robotalks/pursuit.go/pkg/l1/msgs"
)

// DefaultCommandExpiration is how long a command waits for its reply.
const DefaultCommandExpiration = 1 * time.Second

// ControllerConn is the operator side of a Pipe. Each command gets
// a non-zero sequence number, and the reply carrying it resolves the
// command. Events are posted to the loop.
type ControllerConn struct {
	Expiration time.Duration

	pipe    Pipe
	pending pendingCommands
}

// Init binds the ControllerConn to rw.
func (c *ControllerConn) Init(rw PacketReadWriter) {
	c.Expiration = DefaultCommandExpiration
	c.pipe.ReadWriter = rw
	c.pipe.Handler = msgs.HandleTypedMsgFunc(c.handleTypedMsg)
}

// DoCommand implements ControllerConn.
func (c *ControllerConn) DoCommand(msg fx.Message) l1.CommandFuture {
	f := c.pending.add(time.Now().Add(c.Expiration))
	if err := c.pipe.SendCommandMsg(msg, f.seq); err != nil {
		c.pending.resolve(f.seq, l1.Result{Err: err})
	}
	return f
}

// AddToLoop implements LoopAdder.
func (c *ControllerConn) AddToLoop(l *fx.Loop) {
	l.Add(&c.pipe)
	l.AddController(fx.PrLvIdle, fx.ControlFunc(c.PurgeExpired))
}

// PurgeExpired fails commands whose reply didn't arrive in time.
func (c *ControllerConn) PurgeExpired(cc fx.ControlContext) error {
	if n := c.pending.expire(cc.Time()); n > 0 {
		glog.V(2).Infof("%d commands expired", n)
	}
	return nil
}

func (c *ControllerConn) handleTypedMsg(ctx context.Context, msg fx.Message, typed *msgs.Typed) error {
	switch {
	case typed.IsEvent():
		loopCtl := fx.LoopCtlFrom(ctx)
		loopCtl.PostMessage(msg)
		loopCtl.TriggerNext()
	case typed.IsReply():
		if !c.pending.resolve(typed.Sequence, l1.Result{Msg: msg, Err: msgs.ReplyError(msg)}) {
			glog.V(2).Infof("reply seq %d dropped", typed.Sequence)
		}
	}
	return nil
}

// pendingCommands tracks commands by sequence, in the order they
// expire.
type pendingCommands struct {
	lock   sync.Mutex
	seq    uint32
	bySeq  map[uint32]*commandFuture
	expiry list.List
}

func (p *pendingCommands) add(expireAt time.Time) *commandFuture {
	p.lock.Lock()
	defer p.lock.Unlock()
	if p.bySeq == nil {
		p.bySeq = make(map[uint32]*commandFuture)
	}
	if p.seq++; p.seq == 0 {
		p.seq++
	}
	f := &commandFuture{seq: p.seq, expireAt: expireAt, result: make(chan l1.Result, 1)}
	f.elem = p.expiry.PushBack(f)
	p.bySeq[f.seq] = f
	return f
}

func (p *pendingCommands) resolve(seq uint32, res l1.Result) bool {
	p.lock.Lock()
	defer p.lock.Unlock()
	f := p.bySeq[seq]
	if f == nil {
		return false
	}
	p.finish(f, res)
	return true
}

func (p *pendingCommands) expire(now time.Time) int {
	p.lock.Lock()
	defer p.lock.Unlock()
	n := 0
	for elem := p.expiry.Front(); elem != nil; elem = p.expiry.Front() {
		f := elem.Value.(*commandFuture)
		if f.expireAt.After(now) {
			break
		}
		p.finish(f, l1.Result{Err: context.DeadlineExceeded})
		n++
	}
	return n
}

func (p *pendingCommands) finish(f *commandFuture, res l1.Result) {
	p.expiry.Remove(f.elem)
	delete(p.bySeq, f.seq)
	f.result <- res
	close(f.result)
}

type commandFuture struct {
	seq      uint32
	expireAt time.Time
	elem     *list.Element
	result   chan l1.Result
}

func (f *commandFuture) ResultChan() <-chan l1.Result {
	return f.result
}
