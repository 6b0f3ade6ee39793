package l1

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	fx "github.com/robotalks/pursuit.go/pkg/framework"
)

type echoMsg struct {
	text string
}

func (m *echoMsg) NewMessage() fx.Message { return &echoMsg{} }

func TestLocalConn(t *testing.T) {
	loop := fx.NewLoop()
	loop.AddController(fx.PrLvControl, fx.ControlFunc(func(cc fx.ControlContext) error {
		cc.Messages().ProcessMessages(fx.ProcessMessageFunc(func(mctx fx.MessageProcessingContext) {
			if cmdMsg, ok := mctx.CurrentMessage().(*CommandMsg); ok {
				mctx.MessageTaken()
				msg := cmdMsg.Command.Msg().(*echoMsg)
				cmdMsg.Command.Done(&echoMsg{text: "re: " + msg.text})
			}
		}))
		return nil
	}))

	conn := NewLocalConn(loop)
	conn.ErrorOf = func(msg fx.Message) error {
		if m := msg.(*echoMsg); m.text == "re: fail" {
			return errors.New(m.text)
		}
		return nil
	}
	ok := conn.DoCommand(&echoMsg{text: "hello"})
	failed := conn.DoCommand(&echoMsg{text: "fail"})
	loop.RunIteration(context.TODO())

	res := <-ok.ResultChan()
	require.NoError(t, res.Err)
	require.Equal(t, &echoMsg{text: "re: hello"}, res.Msg)
	res = <-failed.ResultChan()
	require.EqualError(t, res.Err, "re: fail")
}

func TestControllerRef(t *testing.T) {
	ref := ControllerRef{Type: "pursuit-sim", ID: "abc"}
	require.True(t, ref.IsValid())
	require.Equal(t, "pursuit-sim/abc", ref.Name())
	require.False(t, ControllerRef{Type: "pursuit-sim"}.IsValid())
}
