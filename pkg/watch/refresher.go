package watch

import (
	"context"
	"log/slog"

	"github.com/jonboulle/clockwork"

	"github.com/dmitrymomot/authkit/pkg/audit"
	"github.com/dmitrymomot/authkit/pkg/authstate"
	"github.com/dmitrymomot/authkit/pkg/claims"
	"github.com/dmitrymomot/authkit/pkg/provider"
)

// Refresher performs scheduled silent token renewal.
type Refresher struct {
	store     *authstate.Store
	provider  provider.AuthProvider
	validator *claims.Validator
	sink      audit.Sink
	config    Config
	clock     clockwork.Clock
	log       *slog.Logger
	task      *task
}

// RefresherOption is a functional option for configuring the Refresher.
type RefresherOption func(*Refresher)

// WithRefresherConfig sets custom watcher configuration.
func WithRefresherConfig(config Config) RefresherOption {
	return func(r *Refresher) {
		r.config = config
	}
}

// WithRefresherAuditSink sets the security event sink. Defaults to audit.Discard.
func WithRefresherAuditSink(sink audit.Sink) RefresherOption {
	return func(r *Refresher) {
		if sink != nil {
			r.sink = sink
		}
	}
}

// WithRefresherClock sets the clock used for ticks and session math.
func WithRefresherClock(clock clockwork.Clock) RefresherOption {
	return func(r *Refresher) {
		r.clock = clock
	}
}

// WithRefresherSlog sets the logger for internal failures.
func WithRefresherSlog(log *slog.Logger) RefresherOption {
	return func(r *Refresher) {
		if log != nil {
			r.log = log
		}
	}
}

// NewRefresher creates a silent-renewal scheduler over the state store.
func NewRefresher(store *authstate.Store, authProvider provider.AuthProvider, validator *claims.Validator, opts ...RefresherOption) *Refresher {
	r := &Refresher{
		store:     store,
		provider:  authProvider,
		validator: validator,
		sink:      audit.Discard,
		config:    DefaultConfig(),
		clock:     clockwork.NewRealClock(),
		log:       slog.Default(),
	}

	for _, opt := range opts {
		opt(r)
	}

	r.task = newTask(r.config.RefreshInterval, r.clock, r.tick)
	return r
}

// Start launches the refresh loop.
func (r *Refresher) Start() error {
	return r.task.start()
}

// Close stops the refresher. Safe to call multiple times.
func (r *Refresher) Close() error {
	r.task.stop()
	return nil
}

// Tick runs one renewal attempt immediately. Exposed for deterministic
// testing and for callers that drive the cadence themselves.
func (r *Refresher) Tick(ctx context.Context) {
	r.tick(ctx)
}

func (r *Refresher) tick(ctx context.Context) {
	state := r.store.Current()
	if state.Status != authstate.StatusAuthenticated && state.Status != authstate.StatusTokenExpired {
		return
	}
	if state.User == nil {
		return
	}
	account := state.User.Account

	result, err := r.acquireSilent(ctx, account)
	if err == nil && r.validator != nil {
		err = r.validator.Validate(result.Tokens)
	}

	// The snapshot captured before the provider call is stale; decide on a
	// fresh read.
	current := r.store.Current()
	if current.Status != authstate.StatusAuthenticated && current.Status != authstate.StatusTokenExpired {
		return
	}

	if err != nil {
		r.degrade(ctx, current, err)
		return
	}

	now := r.clock.Now()
	tokens := result.Tokens
	next := current
	next.Status = authstate.StatusAuthenticated
	next.IsAuthenticated = true
	next.Tokens = &tokens
	next.SessionExpiry = now.Add(r.config.SessionTimeout)
	next.Error = ""

	if err := r.store.Update(ctx, next); err != nil {
		r.log.Error("watch: refresh state update failed", slog.Any("error", err))
		return
	}

	r.sink.LogEvent(ctx, audit.EventTokenRefreshed, map[string]any{
		"account": account.ID,
	})
}

// A failed renewal is non-fatal. The session degrades to TOKEN_EXPIRED so the
// UI can prompt re-authentication without discarding user-entered state.
func (r *Refresher) degrade(ctx context.Context, current authstate.State, cause error) {
	if current.Status != authstate.StatusTokenExpired {
		next := current
		next.Status = authstate.StatusTokenExpired
		next.IsAuthenticated = false
		next.Tokens = nil
		next.Error = "silent token refresh failed"

		if err := r.store.Update(ctx, next); err != nil {
			r.log.Error("watch: degrade state update failed", slog.Any("error", err))
			return
		}
	}

	r.sink.LogEvent(ctx, audit.EventTokenRefreshFailed, map[string]any{
		"reason": cause.Error(),
	})
}

func (r *Refresher) acquireSilent(ctx context.Context, account provider.Account) (*provider.Result, error) {
	if r.config.ProviderTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.config.ProviderTimeout)
		defer cancel()
	}
	return r.provider.AcquireTokenSilent(ctx, r.config.Scopes, account)
}
