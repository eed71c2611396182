package watch

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// task is a cancellable repeating tick. Start launches the loop, Close stops
// it and waits for the in-flight tick to finish.
type task struct {
	interval time.Duration
	clock    clockwork.Clock
	fn       func(ctx context.Context)

	mu      sync.Mutex
	cancel  context.CancelFunc
	stopped chan struct{}
}

func newTask(interval time.Duration, clock clockwork.Clock, fn func(ctx context.Context)) *task {
	return &task{
		interval: interval,
		clock:    clock,
		fn:       fn,
	}
}

func (t *task) start() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.cancel != nil {
		return ErrAlreadyStarted
	}

	ctx, cancel := context.WithCancel(context.Background())
	t.cancel = cancel
	t.stopped = make(chan struct{})

	go t.loop(ctx, t.stopped)
	return nil
}

func (t *task) loop(ctx context.Context, stopped chan struct{}) {
	defer close(stopped)

	ticker := t.clock.NewTicker(t.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.Chan():
			t.fn(ctx)
		case <-ctx.Done():
			return
		}
	}
}

func (t *task) stop() {
	t.mu.Lock()
	cancel, stopped := t.cancel, t.stopped
	t.cancel, t.stopped = nil, nil
	t.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-stopped
}

// Group bundles watchers so logout/teardown stops them together.
type Group struct {
	closers []io.Closer
}

// NewGroup creates a group over the given watchers.
func NewGroup(closers ...io.Closer) *Group {
	return &Group{closers: closers}
}

// Close stops every watcher in the group. All watchers are stopped even when
// one of them fails; the first error is returned.
func (g *Group) Close() error {
	var first error
	for _, c := range g.closers {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
