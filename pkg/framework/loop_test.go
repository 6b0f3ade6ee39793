package framework

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type testMsg struct {
	val int
}

func (m *testMsg) NewMessage() Message { return &testMsg{} }

func TestLoopMessagesAppliedAtIterationStart(t *testing.T) {
	l := NewLoop()
	var seen [][]int
	var order []int
	l.AddController(PrLvAcuate, ControlFunc(func(cc ControlContext) error {
		order = append(order, PrLvAcuate)
		return nil
	}))
	l.AddController(PrLvControl, ControlFunc(func(cc ControlContext) error {
		order = append(order, PrLvControl)
		var vals []int
		cc.Messages().ProcessMessages(ProcessMessageFunc(func(mctx MessageProcessingContext) {
			vals = append(vals, mctx.CurrentMessage().(*testMsg).val)
			mctx.MessageTaken()
		}))
		seen = append(seen, vals)
		// posted during the iteration, goes to the next one.
		if len(seen) == 1 {
			cc.PostMessage(&testMsg{val: 3})
		}
		return nil
	}))

	l.PostMessage(&testMsg{val: 1})
	l.PostMessage(&testMsg{val: 2})
	l.RunIteration(context.TODO())
	l.RunIteration(context.TODO())
	l.RunIteration(context.TODO())

	require.Equal(t, [][]int{{1, 2}, {3}, nil}, seen)
	require.Equal(t, []int{PrLvControl, PrLvAcuate, PrLvControl, PrLvAcuate, PrLvControl, PrLvAcuate}, order)
}

func TestLoopProcessMessagesStop(t *testing.T) {
	l := NewLoop()
	var remaining []int
	l.AddController(PrLvHigh, ControlFunc(func(cc ControlContext) error {
		cc.Messages().ProcessMessages(ProcessMessageFunc(func(mctx MessageProcessingContext) {
			if mctx.CurrentMessage().(*testMsg).val == 2 {
				mctx.MessageTaken()
				mctx.StopProcessing()
			}
		}))
		return nil
	}))
	l.AddController(PrLvLow, ControlFunc(func(cc ControlContext) error {
		require.Equal(t, 2, cc.Messages().Len())
		cc.Messages().ProcessMessages(ProcessMessageFunc(func(mctx MessageProcessingContext) {
			remaining = append(remaining, mctx.CurrentMessage().(*testMsg).val)
		}))
		return errors.New("logged, not fatal")
	}))
	for i := 1; i <= 3; i++ {
		l.PostMessage(&testMsg{val: i})
	}
	l.RunIteration(context.TODO())
	require.Equal(t, []int{1, 3}, remaining)
}

func TestLoopIterationCounter(t *testing.T) {
	l := NewLoop()
	var iters []uint64
	l.AddController(PrLvNormal, ControlFunc(func(cc ControlContext) error {
		iters = append(iters, cc.Iteration())
		return nil
	}))
	l.AddController(PrLvLow, ControlFunc(func(cc ControlContext) error {
		require.True(t, cc.Scheduled())
		return nil
	}))
	l.RunIteration(context.TODO())
	l.RunIteration(context.TODO())
	require.Equal(t, []uint64{1, 2}, iters)
}

func TestLoopWithRate(t *testing.T) {
	require.Equal(t, DefaultInterval, NewLoop().Interval)
	require.Equal(t, 100*time.Millisecond, NewLoop().WithRate(10).Interval)
	require.Equal(t, DefaultInterval, NewLoop().WithRate(0).Interval)
}

func TestLoopRunTriggered(t *testing.T) {
	l := NewLoop()
	l.Interval = time.Hour
	doneCh := make(chan int, 1)
	l.AddController(PrLvNormal, ControlFunc(func(cc ControlContext) error {
		cc.Messages().ProcessMessages(ProcessMessageFunc(func(mctx MessageProcessingContext) {
			mctx.MessageTaken()
			doneCh <- mctx.CurrentMessage().(*testMsg).val
		}))
		return nil
	}))
	scheduledCh := make(chan bool, 1)
	l.AddController(PrLvLow, ControlFunc(func(cc ControlContext) error {
		scheduledCh <- cc.Scheduled()
		return nil
	}))
	l.AddRunnable(runFunc(func(ctx context.Context) error {
		ctl := LoopCtlFrom(ctx)
		ctl.PostMessage(&testMsg{val: 7})
		ctl.TriggerNext()
		<-ctx.Done()
		return ctx.Err()
	}))

	ctx, cancel := context.WithCancel(context.TODO())
	errCh := make(chan error, 1)
	go func() { errCh <- l.Run(ctx) }()
	select {
	case val := <-doneCh:
		require.Equal(t, 7, val)
	case <-time.After(time.Second):
		t.Fatal("message not processed")
	}
	require.False(t, <-scheduledCh)
	cancel()
	require.Equal(t, context.Canceled, <-errCh)
}

type runFunc func(context.Context) error

func (f runFunc) Run(ctx context.Context) error { return f(ctx) }
