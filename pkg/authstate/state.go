package authstate

import (
	"fmt"
	"time"

	"github.com/dmitrymomot/authkit/pkg/claims"
	"github.com/dmitrymomot/authkit/pkg/provider"
)

// Status is the authentication lifecycle status.
type Status string

const (
	StatusUnauthenticated Status = "UNAUTHENTICATED"
	StatusMFARequired     Status = "MFA_REQUIRED"
	StatusAuthenticated   Status = "AUTHENTICATED"
	StatusTokenExpired    Status = "TOKEN_EXPIRED"
)

// User is the authenticated identity. Owned exclusively by the Store and
// replaced wholesale on each transition.
type User struct {
	ID          string           `json:"id"`
	Email       string           `json:"email"`
	Role        string           `json:"role,omitempty"`
	MFAEnabled  bool             `json:"mfa_enabled"`
	MFAVerified bool             `json:"mfa_verified"`
	Account     provider.Account `json:"account"`
	LastLoginAt time.Time        `json:"last_login_at,omitzero"`
}

// MFAState tracks a pending multi-factor challenge. Present iff the status is
// MFA_REQUIRED.
type MFAState struct {
	Required    bool      `json:"required"`
	Verified    bool      `json:"verified"`
	Method      string    `json:"method,omitempty"`
	ChallengeID string    `json:"challenge_id,omitempty"`
	ExpiresAt   time.Time `json:"expires_at,omitzero"`
}

// State is the complete authentication state exposed to the application.
type State struct {
	IsAuthenticated bool             `json:"is_authenticated"`
	Status          Status           `json:"status"`
	User            *User            `json:"user,omitempty"`
	Tokens          *claims.TokenSet `json:"tokens,omitempty"`
	LastActivity    time.Time        `json:"last_activity,omitzero"`
	SessionExpiry   time.Time        `json:"session_expiry,omitzero"`
	Error           string           `json:"error,omitempty"`
	MFA             *MFAState        `json:"mfa,omitempty"`
}

// Initial returns the zero, unauthenticated state.
func Initial() State {
	return State{Status: StatusUnauthenticated}
}

// Validate enforces the structural invariants:
//
//   - tokens are present iff the status is AUTHENTICATED
//   - mfa state is present iff the status is MFA_REQUIRED
//   - the IsAuthenticated flag agrees with the status
func (s State) Validate() error {
	switch s.Status {
	case StatusUnauthenticated, StatusMFARequired, StatusAuthenticated, StatusTokenExpired:
	default:
		return fmt.Errorf("%w: unknown status %q", ErrInvalidState, s.Status)
	}

	hasTokens := s.Tokens != nil && !s.Tokens.IsZero()
	if hasTokens != (s.Status == StatusAuthenticated) {
		return fmt.Errorf("%w: tokens present=%t with status %s", ErrInvalidState, hasTokens, s.Status)
	}

	if (s.MFA != nil) != (s.Status == StatusMFARequired) {
		return fmt.Errorf("%w: mfa state present=%t with status %s", ErrInvalidState, s.MFA != nil, s.Status)
	}

	if s.IsAuthenticated != (s.Status == StatusAuthenticated) {
		return fmt.Errorf("%w: is_authenticated=%t with status %s", ErrInvalidState, s.IsAuthenticated, s.Status)
	}

	return nil
}

// Clone returns a deep copy so callers can build a replacement state without
// aliasing the store-owned value.
func (s State) Clone() State {
	out := s

	if s.User != nil {
		user := *s.User
		out.User = &user
	}
	if s.Tokens != nil {
		tokens := *s.Tokens
		if s.Tokens.Scopes != nil {
			tokens.Scopes = append([]string(nil), s.Tokens.Scopes...)
		}
		out.Tokens = &tokens
	}
	if s.MFA != nil {
		mfa := *s.MFA
		out.MFA = &mfa
	}

	return out
}
