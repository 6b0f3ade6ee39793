package websocket

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	fx "github.com/robotalks/pursuit.go/pkg/framework"
	"github.com/robotalks/pursuit.go/pkg/l1"
	"github.com/robotalks/pursuit.go/pkg/l1/msgs"
)

type runFunc func(context.Context) error

func (f runFunc) Run(ctx context.Context) error { return f(ctx) }

func replyStatus(cc fx.ControlContext) error {
	cc.Messages().ProcessMessages(fx.ProcessMessageFunc(func(mctx fx.MessageProcessingContext) {
		if cmdMsg, ok := mctx.CurrentMessage().(*l1.CommandMsg); ok {
			if _, ok := cmdMsg.Command.Msg().(*msgs.StatusQuery); ok {
				mctx.MessageTaken()
				status := &msgs.Status{}
				status.Mode = "STEERING"
				cmdMsg.Command.Done(status)
			}
		}
	}))
	return nil
}

func TestServerAndConnector(t *testing.T) {
	info := l1.ControllerInfo{
		Ref:  l1.ControllerRef{Type: "pursuit", ID: "t"},
		Meta: l1.ControllerMeta{Description: "test"},
	}
	srv := NewServer("", info)
	urlCh := make(chan string, 1)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	l := fx.NewLoop()
	l.AddController(fx.PrLvControl, fx.ControlFunc(replyStatus))
	l.AddRunnable(runFunc(func(ctx context.Context) error {
		ts := httptest.NewServer(srv.Handler(ctx))
		urlCh <- ts.URL
		<-ctx.Done()
		ts.Close()
		return ctx.Err()
	}))
	done := make(chan error, 1)
	go func() { done <- l.Run(ctx) }()

	var baseURL string
	select {
	case baseURL = <-urlCh:
	case <-time.After(time.Second):
		t.Fatal("server not started")
	}
	connector, err := NewConnector("ws://" + strings.TrimPrefix(baseURL, "http://"))
	require.NoError(t, err)

	infos, err := connector.Discover(ctx)
	require.NoError(t, err)
	require.Equal(t, []l1.ControllerInfo{info}, infos)

	conn, err := connector.Connect(ctx, info.Ref)
	require.NoError(t, err)
	cliCtx, cliCancel := context.WithCancel(ctx)
	cliLoop := fx.NewLoop().Add(conn.(fx.LoopAdder))
	cliDone := make(chan error, 1)
	go func() { cliDone <- cliLoop.Run(cliCtx) }()

	select {
	case res := <-conn.DoCommand(&msgs.StatusQuery{}).ResultChan():
		require.NoError(t, res.Err)
		require.Equal(t, "STEERING", res.Msg.(*msgs.Status).Mode)
	case <-time.After(time.Second):
		t.Fatal("command timeout")
	}

	state := &msgs.State{}
	state.Tick = 3
	require.Equal(t, 1, srv.Hub.Len())
	require.NoError(t, srv.SendEvent(ctx, state))

	cliCancel()
	require.Equal(t, context.Canceled, <-cliDone)
	cancel()
	require.Equal(t, context.Canceled, <-done)
}

func TestNewConnectorScheme(t *testing.T) {
	_, err := NewConnector("http://localhost:8080")
	require.Error(t, err)
	c, err := NewConnector("wss://localhost:8080")
	require.NoError(t, err)
	require.Equal(t, "https://localhost:8080/meta", c.urlOf("https", PathMeta))
}
