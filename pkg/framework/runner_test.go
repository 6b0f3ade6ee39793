package framework

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestErrors(t *testing.T) {
	var errs Errors
	errs.Add(nil)
	require.NoError(t, errs.Err())

	first := errors.New("first")
	errs.Add(first)
	require.Equal(t, first, errs.Err())

	errs.Add(errors.New("second"))
	require.EqualError(t, errs.Err(), "multiple errors: first; second")
}

func TestRunnerWait(t *testing.T) {
	r := NewRunner()
	r.Go(runFunc(func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	}), runFunc(func(ctx context.Context) error {
		return errors.New("failed")
	}))
	r.Stop()
	require.EqualError(t, r.Wait(), "failed")
}

type countingCloser struct {
	closed int
	ch     chan struct{}
}

func (c *countingCloser) Close() error {
	c.closed++
	close(c.ch)
	return nil
}

func TestRunWithContextCloser(t *testing.T) {
	c := &countingCloser{ch: make(chan struct{})}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := RunWithContextCloser(ctx, c, func() error {
		<-c.ch
		return errors.New("closed")
	})
	require.Equal(t, context.Canceled, err)
	require.Equal(t, 1, c.closed)

	c = &countingCloser{ch: make(chan struct{})}
	err = RunWithContextCloser(context.Background(), c, func() error { return nil })
	require.NoError(t, err)
	require.Equal(t, 1, c.closed)
}
