package framework

import (
	"context"
	"errors"
	"io"
	"os"
	"os/signal"
	"strconv"
	"sync"
	"syscall"

	"github.com/golang/glog"
)

// ErrForcedExit is returned by Wait when a second signal arrives
// before all Runnables stop.
var ErrForcedExit = errors.New("forced exit")

// Runner starts Runnables sharing one cancelable context and
// collects their errors.
type Runner struct {
	Context context.Context

	cancel  func()
	started int
	errCh   chan error
	exitCh  chan struct{}
}

// NewRunner creates a Runner on a background context.
func NewRunner() *Runner {
	return NewRunnerWith(context.Background())
}

// NewRunnerWith creates a Runner on ctx.
func NewRunnerWith(ctx context.Context) *Runner {
	r := &Runner{errCh: make(chan error), exitCh: make(chan struct{})}
	r.Context, r.cancel = context.WithCancel(ctx)
	return r
}

// HandleSignals stops the Runner on SIGINT or SIGTERM.
// A second signal makes Wait return ErrForcedExit.
func (r *Runner) HandleSignals() *Runner {
	sigCh := make(chan os.Signal, 2)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		glog.Infof("%v received, stopping", <-sigCh)
		r.Stop()
		glog.Errorf("%v received again, exiting", <-sigCh)
		close(r.exitCh)
	}()
	return r
}

// Stop cancels the shared context.
func (r *Runner) Stop() {
	r.cancel()
}

// Go starts each Runnable in its own goroutine.
func (r *Runner) Go(runnables ...Runnable) *Runner {
	for _, runnable := range runnables {
		name := strconv.Itoa(r.started)
		if named, ok := runnable.(Named); ok {
			name = named.Name()
		}
		r.started++
		go r.run(name, runnable)
	}
	return r
}

func (r *Runner) run(name string, runnable Runnable) {
	glog.V(4).Infof("runner %s started", name)
	err := runnable.Run(r.Context)
	glog.V(4).Infof("runner %s stopped: %v", name, err)
	select {
	case r.errCh <- err:
	case <-r.exitCh:
	}
}

// Wait blocks until every started Runnable returns. Cancellation
// is not reported as an error.
func (r *Runner) Wait() error {
	var errs Errors
	for n := 0; n < r.started; n++ {
		select {
		case err := <-r.errCh:
			if err != context.Canceled {
				errs.Add(err)
			}
		case <-r.exitCh:
			return ErrForcedExit
		}
	}
	return errs.Err()
}

// RunWithContextCloser runs fn, a blocking call without context
// support. closer is closed once, either when ctx is done, which
// is expected to unblock fn, or after fn returns.
func RunWithContextCloser(ctx context.Context, closer io.Closer, fn func() error) error {
	var once sync.Once
	closeOnce := func() { once.Do(func() { closer.Close() }) }
	defer closeOnce()

	errCh := make(chan error, 1)
	go func() { errCh <- fn() }()
	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		closeOnce()
		<-errCh
		return ctx.Err()
	}
}
