package authn

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"

	"github.com/jonboulle/clockwork"

	"github.com/dmitrymomot/authkit/pkg/audit"
	"github.com/dmitrymomot/authkit/pkg/authstate"
	"github.com/dmitrymomot/authkit/pkg/claims"
	"github.com/dmitrymomot/authkit/pkg/lockout"
	"github.com/dmitrymomot/authkit/pkg/provider"
)

// Credentials are the user-supplied login inputs. The email keys lockout
// tracking and the resulting identity; the credential exchange itself happens
// inside the provider's interactive login flow. The password is never stored
// or logged by this package.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"-"`
}

// Authenticator orchestrates login, lockout and logout.
type Authenticator struct {
	provider  provider.AuthProvider
	tracker   *lockout.Tracker
	validator *claims.Validator
	store     *authstate.Store
	sink      audit.Sink
	config    Config
	clock     clockwork.Clock
	log       *slog.Logger

	mu      sync.Mutex
	closers []io.Closer
}

// Option is a functional option for configuring the Authenticator.
type Option func(*Authenticator)

// WithConfig sets custom login configuration.
func WithConfig(config Config) Option {
	return func(a *Authenticator) {
		a.config = config
	}
}

// WithAuditSink sets the security event sink. Defaults to audit.Discard.
func WithAuditSink(sink audit.Sink) Option {
	return func(a *Authenticator) {
		if sink != nil {
			a.sink = sink
		}
	}
}

// WithClock sets the clock used for session timestamps.
func WithClock(clock clockwork.Clock) Option {
	return func(a *Authenticator) {
		a.clock = clock
	}
}

// WithSlog sets the logger for non-propagated internal failures.
func WithSlog(log *slog.Logger) Option {
	return func(a *Authenticator) {
		if log != nil {
			a.log = log
		}
	}
}

// New creates an authenticator wired to the given collaborators.
func New(authProvider provider.AuthProvider, tracker *lockout.Tracker, validator *claims.Validator, store *authstate.Store, opts ...Option) *Authenticator {
	a := &Authenticator{
		provider:  authProvider,
		tracker:   tracker,
		validator: validator,
		store:     store,
		sink:      audit.Discard,
		config:    DefaultConfig(),
		clock:     clockwork.NewRealClock(),
		log:       slog.Default(),
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Login authenticates the user. On full success it transitions the state
// store to AUTHENTICATED and returns the new state. When the provider
// requires a second factor it transitions to MFA_REQUIRED and returns
// ErrMFARequired. Failed logins are not retried.
func (a *Authenticator) Login(ctx context.Context, creds Credentials) (*authstate.State, error) {
	email := lockout.NormalizeKey(creds.Email)
	if email == "" {
		return nil, ErrInvalidCredentials
	}

	// Lockout is checked before any network call so a locked identifier can
	// never amplify provider-side rate limits.
	locked, err := a.tracker.IsLocked(ctx, email)
	if err != nil {
		// A broken lockout store must not take login down with it.
		a.log.Warn("authn: lockout check failed", slog.Any("error", err))
	}
	if locked {
		a.sink.LogEvent(ctx, audit.EventAccountLocked, map[string]any{"email": email})
		return nil, ErrAccountLocked
	}

	result, err := a.providerLogin(ctx)
	if err != nil {
		if err := a.tracker.RecordFailure(ctx, email); err != nil {
			a.log.Warn("authn: failure record failed", slog.Any("error", err))
		}

		classified := classifyLoginError(err)
		a.sink.LogEvent(ctx, audit.EventLoginFailure, map[string]any{
			"email":  email,
			"reason": classified.Error(),
		})

		if locked, _ := a.tracker.IsLocked(ctx, email); locked {
			a.sink.LogEvent(ctx, audit.EventAccountLocked, map[string]any{"email": email})
		}

		return nil, classified
	}

	if result.MFARequired {
		next := authstate.State{
			Status: authstate.StatusMFARequired,
			User: &authstate.User{
				ID:         result.Account.ID,
				Email:      email,
				MFAEnabled: true,
				Account:    result.Account,
			},
			MFA: &authstate.MFAState{Required: true},
		}
		if err := a.store.Update(ctx, next); err != nil {
			return nil, err
		}
		return nil, ErrMFARequired
	}

	// The provider succeeded, but the tokens still have to satisfy the local
	// claim checks; clock skew or issuer spoofing fails the login.
	if err := a.validator.Validate(result.Tokens); err != nil {
		a.sink.LogEvent(ctx, audit.EventLoginFailure, map[string]any{
			"email":  email,
			"reason": "token validation failed",
		})
		if errors.Is(err, claims.ErrTokenExpired) {
			return nil, errors.Join(ErrTokenExpired, err)
		}
		return nil, errors.Join(ErrInvalidCredentials, err)
	}

	if err := a.tracker.RecordSuccess(ctx, email); err != nil {
		a.log.Warn("authn: success record failed", slog.Any("error", err))
	}

	now := a.clock.Now()
	tokens := result.Tokens
	next := authstate.State{
		IsAuthenticated: true,
		Status:          authstate.StatusAuthenticated,
		User: &authstate.User{
			ID:          result.Account.ID,
			Email:       email,
			Account:     result.Account,
			LastLoginAt: now,
		},
		Tokens:        &tokens,
		LastActivity:  now,
		SessionExpiry: now.Add(a.config.SessionTimeout),
	}

	if err := a.store.Update(ctx, next); err != nil {
		return nil, err
	}

	a.sink.LogEvent(ctx, audit.EventLoginSuccess, map[string]any{"email": email})

	state := a.store.Current()
	return &state, nil
}

// Logout tears the session down: background watchers are stopped, the
// provider session is ended best-effort, and the state store is reset.
func (a *Authenticator) Logout(ctx context.Context) error {
	a.mu.Lock()
	closers := a.closers
	a.closers = nil
	a.mu.Unlock()

	for _, c := range closers {
		if err := c.Close(); err != nil {
			a.log.Warn("authn: watcher shutdown failed", slog.Any("error", err))
		}
	}

	if err := a.provider.Logout(ctx); err != nil {
		a.log.Warn("authn: provider logout failed", slog.Any("error", err))
	}

	if err := a.store.Reset(ctx); err != nil {
		return err
	}

	a.sink.LogEvent(ctx, audit.EventLogout, nil)
	return nil
}

// RegisterCloser registers a resource (typically a watcher group) to be
// closed on logout.
func (a *Authenticator) RegisterCloser(c io.Closer) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.closers = append(a.closers, c)
}

func (a *Authenticator) providerLogin(ctx context.Context) (*provider.Result, error) {
	if a.config.ProviderTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.config.ProviderTimeout)
		defer cancel()
	}
	return a.provider.Login(ctx, a.config.Scopes)
}

func classifyLoginError(err error) error {
	classified := provider.Classify(err)
	switch {
	case errors.Is(classified, provider.ErrInvalidCredentials):
		return errors.Join(ErrInvalidCredentials, err)
	case errors.Is(classified, provider.ErrAccountLocked):
		return errors.Join(ErrAccountLocked, err)
	default:
		return errors.Join(ErrSystemError, err)
	}
}
