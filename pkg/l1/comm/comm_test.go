package comm

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	fx "github.com/robotalks/pursuit.go/pkg/framework"
	"github.com/robotalks/pursuit.go/pkg/l1"
	"github.com/robotalks/pursuit.go/pkg/l1/msgs"
	"github.com/robotalks/pursuit.go/pkg/sim"
)

func replyStatus(cc fx.ControlContext) error {
	cc.Messages().ProcessMessages(fx.ProcessMessageFunc(func(mctx fx.MessageProcessingContext) {
		if cmdMsg, ok := mctx.CurrentMessage().(*l1.CommandMsg); ok {
			switch cmdMsg.Command.Msg().(type) {
			case *msgs.StatusQuery:
				mctx.MessageTaken()
				status := &msgs.Status{}
				status.Mode = "IDLE"
				cmdMsg.Command.Done(status)
			case *msgs.SetTarget:
				mctx.MessageTaken()
				cmdMsg.Command.Done(msgs.NewCommandOK())
			}
		}
	}))
	return nil
}

func runLoop(ctx context.Context, l *fx.Loop) <-chan error {
	errCh := make(chan error, 1)
	go func() { errCh <- l.Run(ctx) }()
	return errCh
}

func waitResult(t *testing.T, f l1.CommandFuture) l1.Result {
	select {
	case res := <-f.ResultChan():
		return res
	case <-time.After(time.Second):
		t.Fatal("command timeout")
	}
	return l1.Result{}
}

func TestRegistrarAndControllerConn(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	srvEnd, cliEnd := Pair()

	var reg Registrar
	reg.Init(srvEnd)
	srvLoop := fx.NewLoop().Add(&reg, &UnsupportedCommands{})
	srvLoop.AddController(fx.PrLvControl, fx.ControlFunc(replyStatus))

	var conn ControllerConn
	conn.Init(cliEnd)
	events := make(chan fx.Message, 1)
	cliLoop := fx.NewLoop().Add(&conn)
	cliLoop.AddController(fx.PrLvControl, fx.ControlFunc(func(cc fx.ControlContext) error {
		cc.Messages().ProcessMessages(fx.ProcessMessageFunc(func(mctx fx.MessageProcessingContext) {
			mctx.MessageTaken()
			events <- mctx.CurrentMessage()
		}))
		return nil
	}))

	srvDone, cliDone := runLoop(ctx, srvLoop), runLoop(ctx, cliLoop)

	res := waitResult(t, conn.DoCommand(msgs.NewSetTarget(sim.Pos2D{X: 1, Y: 2})))
	require.NoError(t, res.Err)
	require.IsType(t, &msgs.CommandOK{}, res.Msg)

	res = waitResult(t, conn.DoCommand(&msgs.StatusQuery{}))
	require.NoError(t, res.Err)
	require.Equal(t, "IDLE", res.Msg.(*msgs.Status).Mode)

	res = waitResult(t, conn.DoCommand(&msgs.ResetMotion{}))
	require.EqualError(t, res.Err, msgs.ErrUnsupportedCommand.Error())

	state := &msgs.State{}
	state.Tick = 9
	require.NoError(t, reg.SendEvent(ctx, state))
	select {
	case msg := <-events:
		require.Equal(t, uint64(9), msg.(*msgs.State).Tick)
	case <-time.After(time.Second):
		t.Fatal("event not received")
	}

	require.Error(t, reg.SendEvent(ctx, msgs.NewCommandOK()))

	cancel()
	for _, ch := range []<-chan error{srvDone, cliDone} {
		select {
		case err := <-ch:
			require.Equal(t, context.Canceled, err)
		case <-time.After(time.Second):
			t.Fatal("loop not stopped")
		}
	}
}

func TestControllerConnExpiration(t *testing.T) {
	_, cliEnd := Pair()
	var conn ControllerConn
	conn.Init(cliEnd)
	conn.Expiration = 0
	l := fx.NewLoop().Add(&conn)
	f := conn.DoCommand(&msgs.StatusQuery{})
	time.Sleep(time.Millisecond)
	l.RunIteration(context.TODO())
	res := waitResult(t, f)
	require.Equal(t, context.DeadlineExceeded, res.Err)
}

func TestControllerConnSendError(t *testing.T) {
	a, cliEnd := Pair()
	a.Close()
	var conn ControllerConn
	conn.Init(cliEnd)
	res := waitResult(t, conn.DoCommand(&msgs.StatusQuery{}))
	require.Error(t, res.Err)
}

func TestHub(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	var hub Hub
	s1, c1 := Pair()
	s2, c2 := Pair()
	l := fx.NewLoop().Add(&UnsupportedCommands{})
	l.AddController(fx.PrLvControl, fx.ControlFunc(replyStatus))
	l.AddRunnable(
		runFunc(func(ctx context.Context) error { return hub.Serve(ctx, s1) }),
		runFunc(func(ctx context.Context) error { return hub.Serve(ctx, s2) }),
	)
	done := runLoop(ctx, l)

	for n, c := range []*ChanReadWriter{c1, c2} {
		seq := uint32(n + 10)
		pkt, err := msgs.EncodeMessage(&msgs.StatusQuery{}, seq)
		require.NoError(t, err)
		require.NoError(t, c.WritePacket(pkt))
		typed := readTyped(t, c)
		require.Equal(t, seq, typed.Sequence)
		require.Equal(t, msgs.StatusTypeID, typed.TypeId)
	}
	require.Equal(t, 2, hub.Len())

	state := &msgs.State{}
	state.Session = "s"
	require.NoError(t, hub.SendEvent(ctx, state))
	for _, c := range []*ChanReadWriter{c1, c2} {
		typed := readTyped(t, c)
		require.True(t, typed.IsEvent())
		msg, err := typed.Decode()
		require.NoError(t, err)
		require.Equal(t, "s", msg.(*msgs.State).Session)
	}

	cancel()
	require.Equal(t, context.Canceled, <-done)
	require.Equal(t, 0, hub.Len())
}

func readTyped(t *testing.T, c *ChanReadWriter) *msgs.Typed {
	pkt, err := c.ReadPacket()
	require.NoError(t, err)
	typed, err := msgs.DecodeTyped(pkt)
	require.NoError(t, err)
	return typed
}

type runFunc func(context.Context) error

func (f runFunc) Run(ctx context.Context) error { return f(ctx) }
