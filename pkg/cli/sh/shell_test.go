package sh

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	fx "github.com/robotalks/pursuit.go/pkg/framework"
	"github.com/robotalks/pursuit.go/pkg/l1"
	env "github.com/robotalks/pursuit.go/pkg/l1/env/connector"
	"github.com/robotalks/pursuit.go/pkg/l1/msgs"
	pb "github.com/robotalks/pursuit.go/pkg/proto/pursuit/v1"
)

func TestFormatResult(t *testing.T) {
	out, err := FormatResult(msgs.NewCommandOK(), false)
	require.NoError(t, err)
	require.Equal(t, "OK", out)

	reply := &msgs.ParamReply{}
	reply.Param, reply.Value = pb.Param_TURN_SPEED, 0.5
	out, err = FormatResult(reply, true)
	require.NoError(t, err)
	require.JSONEq(t, `{"param":1,"value":0.5}`, out)

	out, err = FormatResult(reply, false)
	require.NoError(t, err)
	require.Contains(t, out, "ParamReply ")
}

func TestFormatInfo(t *testing.T) {
	info := l1.ControllerInfo{Ref: l1.ControllerRef{Type: "pursuit", ID: "1"}}
	require.Equal(t, "pursuit/1", FormatInfo(info))
	info.Meta.Description = "sim"
	require.Equal(t, "pursuit/1: sim", FormatInfo(info))
}

func TestShellLocalExec(t *testing.T) {
	l := fx.NewLoop()
	l.AddController(fx.PrLvControl, fx.ControlFunc(func(cc fx.ControlContext) error {
		cc.Messages().ProcessMessages(fx.ProcessMessageFunc(func(mctx fx.MessageProcessingContext) {
			if cmdMsg, ok := mctx.CurrentMessage().(*l1.CommandMsg); ok {
				mctx.MessageTaken()
				cmdMsg.Command.Done(msgs.NewCommandOK())
			}
		}))
		return nil
	}))
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- l.Run(ctx) }()

	s := &Shell{Config: env.NewConfig(), Timeout: DefaultTimeout}
	_, err := s.Exec(&msgs.ResetMotion{})
	require.Error(t, err)

	ref := l1.ControllerRef{Type: "pursuit", ID: "local"}
	s.WithLocal(ref, l1.NewLocalConn(l))
	require.Error(t, s.Connect(ref))
	reply, err := s.Exec(&msgs.ResetMotion{})
	require.NoError(t, err)
	require.IsType(t, &msgs.CommandOK{}, reply)

	s.Disconnect()
	require.NotNil(t, s.Loop)

	cancel()
	require.Equal(t, context.Canceled, <-done)
}
