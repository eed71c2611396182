package mfa

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/dmitrymomot/authkit/pkg/audit"
	"github.com/dmitrymomot/authkit/pkg/authstate"
	"github.com/dmitrymomot/authkit/pkg/claims"
	"github.com/dmitrymomot/authkit/pkg/provider"
)

// Supported challenge methods.
const (
	MethodTOTP  = "totp"
	MethodSMS   = "sms"
	MethodEmail = "email"
)

// Challenge is an issued MFA challenge awaiting verification.
type Challenge struct {
	ChallengeID string    `json:"challenge_id"`
	Method      string    `json:"method"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// VerifyPayload is the user's response to a challenge.
type VerifyPayload struct {
	ChallengeID string `json:"challenge_id"`
	Code        string `json:"code"`
}

// Coordinator issues and verifies MFA challenges against the identity
// provider and drives the corresponding state transitions.
type Coordinator struct {
	challenger provider.MFAChallenger
	store      *authstate.Store
	validator  *claims.Validator
	sink       audit.Sink
	config     Config
	clock      clockwork.Clock

	mu      sync.Mutex
	pending map[string]Challenge
}

// Option is a functional option for configuring the Coordinator.
type Option func(*Coordinator)

// WithConfig sets custom MFA configuration.
func WithConfig(config Config) Option {
	return func(c *Coordinator) {
		c.config = config
	}
}

// WithValidator sets a claims validator applied to tokens issued on
// successful verification.
func WithValidator(v *claims.Validator) Option {
	return func(c *Coordinator) {
		c.validator = v
	}
}

// WithAuditSink sets the security event sink. Defaults to audit.Discard.
func WithAuditSink(sink audit.Sink) Option {
	return func(c *Coordinator) {
		if sink != nil {
			c.sink = sink
		}
	}
}

// WithClock sets the clock used for challenge expiry.
func WithClock(clock clockwork.Clock) Option {
	return func(c *Coordinator) {
		c.clock = clock
	}
}

// NewCoordinator creates a coordinator. The provider must implement
// provider.MFAChallenger for challenges to be issued; otherwise Setup fails
// with provider.ErrChallengeUnsupported.
func NewCoordinator(authProvider provider.AuthProvider, store *authstate.Store, opts ...Option) *Coordinator {
	c := &Coordinator{
		store:   store,
		sink:    audit.Discard,
		config:  DefaultConfig(),
		clock:   clockwork.NewRealClock(),
		pending: make(map[string]Challenge),
	}

	if challenger, ok := authProvider.(provider.MFAChallenger); ok {
		c.challenger = challenger
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Setup issues a new challenge of the given method. Legal while authenticated
// (enrollment) or while a login is waiting on MFA. During login the pending
// challenge is recorded in the state store; during enrollment the
// authenticated state is left untouched.
func (c *Coordinator) Setup(ctx context.Context, method string) (*Challenge, error) {
	switch method {
	case MethodTOTP, MethodSMS, MethodEmail:
	default:
		return nil, ErrUnsupportedMethod
	}

	current := c.store.Current()
	if current.Status != authstate.StatusAuthenticated && current.Status != authstate.StatusMFARequired {
		return nil, ErrInvalidStatus
	}

	if c.challenger == nil {
		return nil, provider.ErrChallengeUnsupported
	}

	var account provider.Account
	if current.User != nil {
		account = current.User.Account
	}

	ref, err := c.challenger.IssueChallenge(ctx, method, account)
	if err != nil {
		return nil, provider.Classify(err)
	}
	if ref == "" {
		ref = uuid.New().String()
	}

	challenge := Challenge{
		ChallengeID: ref,
		Method:      method,
		ExpiresAt:   c.clock.Now().Add(c.config.ChallengeTTL),
	}

	c.mu.Lock()
	c.pending[challenge.ChallengeID] = challenge
	c.mu.Unlock()

	// Re-read after the provider call; another flow may have moved the state.
	if current := c.store.Current(); current.Status == authstate.StatusMFARequired {
		next := current
		next.MFA = &authstate.MFAState{
			Required:    true,
			Method:      method,
			ChallengeID: challenge.ChallengeID,
			ExpiresAt:   challenge.ExpiresAt,
		}
		if err := c.store.Update(ctx, next); err != nil {
			return nil, err
		}
	}

	c.sink.LogEvent(ctx, audit.EventMFAChallenge, map[string]any{
		"challenge_id": challenge.ChallengeID,
		"method":       method,
	})

	return &challenge, nil
}

// Verify checks the user's response. An unknown or expired challenge fails
// without touching state; the challenge must then be re-issued. A provider
// rejection also leaves state unchanged so the caller can retry under its own
// policy. Success completes the sign-in.
func (c *Coordinator) Verify(ctx context.Context, payload VerifyPayload) error {
	current := c.store.Current()
	if current.Status != authstate.StatusMFARequired {
		return ErrInvalidStatus
	}

	c.mu.Lock()
	challenge, ok := c.pending[payload.ChallengeID]
	c.mu.Unlock()

	if !ok {
		return c.fail(ctx, payload.ChallengeID, ErrChallengeUnknown)
	}

	if c.clock.Now().After(challenge.ExpiresAt) {
		c.mu.Lock()
		delete(c.pending, payload.ChallengeID)
		c.mu.Unlock()
		return c.fail(ctx, payload.ChallengeID, ErrChallengeExpired)
	}

	if c.challenger == nil {
		return c.fail(ctx, payload.ChallengeID, provider.ErrChallengeUnsupported)
	}

	res, err := c.challenger.VerifyChallenge(ctx, payload.ChallengeID, payload.Code)
	if err != nil {
		return c.fail(ctx, payload.ChallengeID, err)
	}

	if c.validator != nil {
		if err := c.validator.Validate(res.Tokens); err != nil {
			return c.fail(ctx, payload.ChallengeID, err)
		}
	}

	c.mu.Lock()
	delete(c.pending, payload.ChallengeID)
	c.mu.Unlock()

	// Build the replacement from a fresh read; the snapshot captured before
	// the provider call is stale by contract.
	current = c.store.Current()
	if current.Status != authstate.StatusMFARequired {
		return ErrInvalidStatus
	}

	now := c.clock.Now()
	user := current.User
	if user == nil {
		user = &authstate.User{}
	} else {
		u := *user
		user = &u
	}
	user.Account = res.Account
	if user.ID == "" {
		user.ID = res.Account.ID
	}
	if user.Email == "" {
		user.Email = res.Account.Username
	}
	user.MFAEnabled = true
	user.MFAVerified = true
	user.LastLoginAt = now

	tokens := res.Tokens
	next := authstate.State{
		IsAuthenticated: true,
		Status:          authstate.StatusAuthenticated,
		User:            user,
		Tokens:          &tokens,
		LastActivity:    now,
		SessionExpiry:   now.Add(c.config.SessionTimeout),
	}

	if err := c.store.Update(ctx, next); err != nil {
		return err
	}

	c.sink.LogEvent(ctx, audit.EventMFASuccess, map[string]any{
		"challenge_id": payload.ChallengeID,
		"method":       challenge.Method,
	})

	return nil
}

func (c *Coordinator) fail(ctx context.Context, challengeID string, cause error) error {
	c.sink.LogEvent(ctx, audit.EventMFAFailure, map[string]any{
		"challenge_id": challengeID,
		"reason":       cause.Error(),
	})
	return errors.Join(ErrMFAFailed, cause)
}
