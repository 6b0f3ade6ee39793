package l1

import (
	fx "github.com/robotalks/pursuit.go/pkg/framework"
)

// LocalConn is a ControllerConn to a controller running in the same
// process. Commands are posted to the loop and replied in-memory.
type LocalConn struct {
	Loop fx.LoopControl
	// ErrorOf extracts an error from a reply message, optional.
	ErrorOf func(fx.Message) error
}

// NewLocalConn creates a LocalConn.
func NewLocalConn(loop fx.LoopControl) *LocalConn {
	return &LocalConn{Loop: loop}
}

// DoCommand implements ControllerConn.
func (c *LocalConn) DoCommand(msg fx.Message) CommandFuture {
	cmd := &localCommand{msg: msg, errorOf: c.ErrorOf, result: make(chan Result, 1)}
	c.Loop.PostMessage(&CommandMsg{Command: cmd})
	c.Loop.TriggerNext()
	return cmd
}

type localCommand struct {
	msg     fx.Message
	errorOf func(fx.Message) error
	result  chan Result
}

func (c *localCommand) Msg() fx.Message {
	return c.msg
}

func (c *localCommand) Done(reply fx.Message) error {
	res := Result{Msg: reply}
	if c.errorOf != nil {
		res.Err = c.errorOf(reply)
	}
	c.result <- res
	close(c.result)
	return nil
}

func (c *localCommand) ResultChan() <-chan Result {
	return c.result
}
