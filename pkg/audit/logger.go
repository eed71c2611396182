package audit

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
)

// Logger is the buffered, asynchronous Sink implementation. Events are handed
// to a background worker; when the buffer is full they are dropped and
// counted rather than blocking the caller.
type Logger struct {
	storage Storage
	log     *slog.Logger
	clock   clockwork.Clock

	events  chan Event
	done    chan struct{}
	wg      sync.WaitGroup
	once    sync.Once
	dropped atomic.Int64
}

// Option is a functional option for configuring the Logger.
type Option func(*Logger)

// WithBufferSize sets the event buffer size (default 256).
func WithBufferSize(size int) Option {
	return func(l *Logger) {
		if size > 0 {
			l.events = make(chan Event, size)
		}
	}
}

// WithSlog sets the logger used to report delivery failures.
func WithSlog(log *slog.Logger) Option {
	return func(l *Logger) {
		if log != nil {
			l.log = log
		}
	}
}

// WithClock sets the clock used to timestamp events.
func WithClock(clock clockwork.Clock) Option {
	return func(l *Logger) {
		l.clock = clock
	}
}

// NewLogger creates an asynchronous audit logger over the given storage.
func NewLogger(storage Storage, opts ...Option) *Logger {
	if storage == nil {
		panic("audit: storage cannot be nil")
	}

	l := &Logger{
		storage: storage,
		log:     slog.Default(),
		clock:   clockwork.NewRealClock(),
		events:  make(chan Event, 256),
		done:    make(chan struct{}),
	}

	for _, opt := range opts {
		opt(l)
	}

	l.wg.Add(1)
	go l.worker()

	return l
}

// LogEvent queues a security event for delivery. It never blocks and never
// surfaces an error: delivery problems are logged locally only.
func (l *Logger) LogEvent(ctx context.Context, eventType string, metadata map[string]any) {
	event := Event{
		ID:        uuid.New().String(),
		Type:      eventType,
		Metadata:  metadata,
		CreatedAt: l.clock.Now(),
	}

	select {
	case <-l.done:
		l.dropped.Add(1)
	default:
		select {
		case l.events <- event:
		default:
			// Buffer full. Dropping beats blocking the auth path.
			l.dropped.Add(1)
			l.log.Warn("audit event dropped", slog.String("event_type", eventType))
		}
	}
}

// Dropped returns how many events were dropped due to a full buffer or
// shutdown.
func (l *Logger) Dropped() int64 {
	return l.dropped.Load()
}

// Close stops accepting events, drains the buffer and waits for the worker.
// Safe to call multiple times.
func (l *Logger) Close() error {
	l.once.Do(func() {
		close(l.done)
	})
	l.wg.Wait()
	return nil
}

func (l *Logger) worker() {
	defer l.wg.Done()

	for {
		select {
		case event := <-l.events:
			l.store(event)
		case <-l.done:
			for {
				select {
				case event := <-l.events:
					l.store(event)
				default:
					return
				}
			}
		}
	}
}

func (l *Logger) store(event Event) {
	if err := l.storage.Store(context.Background(), event); err != nil {
		l.log.Error("audit event delivery failed",
			slog.String("event_type", event.Type),
			slog.Any("error", err),
		)
	}
}
