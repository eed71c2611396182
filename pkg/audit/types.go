package audit

import (
	"context"
	"time"
)

// Security event types emitted by the authentication core.
const (
	EventLoginSuccess       = "LOGIN_SUCCESS"
	EventLoginFailure       = "LOGIN_FAILURE"
	EventAccountLocked      = "ACCOUNT_LOCKED"
	EventMFAChallenge       = "MFA_CHALLENGE"
	EventMFASuccess         = "MFA_SUCCESS"
	EventMFAFailure         = "MFA_FAILURE"
	EventLogout             = "LOGOUT"
	EventSessionTimeout     = "SESSION_TIMEOUT"
	EventTokenRefreshed     = "TOKEN_REFRESHED"
	EventTokenRefreshFailed = "TOKEN_REFRESH_FAILED"
	EventSessionRestored    = "SESSION_RESTORED"
)

// Event is a single security audit entry.
type Event struct {
	ID        string         `json:"id"`
	Type      string         `json:"type"`
	Metadata  map[string]any `json:"metadata,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}

// Sink receives security events. Implementations are best-effort and must
// never propagate failures back to the authentication flow.
type Sink interface {
	LogEvent(ctx context.Context, eventType string, metadata map[string]any)
}

// Storage persists audit events.
type Storage interface {
	Store(ctx context.Context, event Event) error
}

// Discard is a Sink that drops every event. Useful as a default when no audit
// backend is configured.
var Discard Sink = discardSink{}

type discardSink struct{}

func (discardSink) LogEvent(context.Context, string, map[string]any) {}
