package watch

import (
	"context"
	"log/slog"

	"github.com/jonboulle/clockwork"

	"github.com/dmitrymomot/authkit/pkg/audit"
	"github.com/dmitrymomot/authkit/pkg/authstate"
)

// Monitor enforces the idle-timeout logout.
type Monitor struct {
	store  *authstate.Store
	sink   audit.Sink
	config Config
	clock  clockwork.Clock
	log    *slog.Logger
	task   *task
}

// MonitorOption is a functional option for configuring the Monitor.
type MonitorOption func(*Monitor)

// WithMonitorConfig sets custom watcher configuration.
func WithMonitorConfig(config Config) MonitorOption {
	return func(m *Monitor) {
		m.config = config
	}
}

// WithMonitorAuditSink sets the security event sink. Defaults to audit.Discard.
func WithMonitorAuditSink(sink audit.Sink) MonitorOption {
	return func(m *Monitor) {
		if sink != nil {
			m.sink = sink
		}
	}
}

// WithMonitorClock sets the clock used for ticks and idle math.
func WithMonitorClock(clock clockwork.Clock) MonitorOption {
	return func(m *Monitor) {
		m.clock = clock
	}
}

// WithMonitorSlog sets the logger for internal failures.
func WithMonitorSlog(log *slog.Logger) MonitorOption {
	return func(m *Monitor) {
		if log != nil {
			m.log = log
		}
	}
}

// NewMonitor creates an idle-timeout monitor over the state store.
func NewMonitor(store *authstate.Store, opts ...MonitorOption) *Monitor {
	m := &Monitor{
		store:  store,
		sink:   audit.Discard,
		config: DefaultConfig(),
		clock:  clockwork.NewRealClock(),
		log:    slog.Default(),
	}

	for _, opt := range opts {
		opt(m)
	}

	m.task = newTask(m.config.MonitorInterval, m.clock, m.tick)
	return m
}

// Start launches the monitor loop.
func (m *Monitor) Start() error {
	return m.task.start()
}

// Close stops the monitor. Safe to call multiple times.
func (m *Monitor) Close() error {
	m.task.stop()
	return nil
}

// Tick runs one idle check immediately. Exposed for deterministic testing
// and for callers that drive the cadence themselves.
func (m *Monitor) Tick(ctx context.Context) {
	m.tick(ctx)
}

func (m *Monitor) tick(ctx context.Context) {
	state := m.store.Current()
	if !state.IsAuthenticated {
		return
	}

	idle := m.clock.Now().Sub(state.LastActivity)
	if idle < m.config.SessionTimeout {
		return
	}

	if err := m.store.Reset(ctx); err != nil {
		m.log.Error("watch: idle-timeout reset failed", slog.Any("error", err))
		return
	}

	m.sink.LogEvent(ctx, audit.EventSessionTimeout, map[string]any{
		"idle": idle.String(),
	})
}
