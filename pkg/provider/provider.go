package provider

import (
	"context"

	"github.com/dmitrymomot/authkit/pkg/claims"
)

// Account is the provider-side handle for an authenticated principal.
type Account struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	TenantID string `json:"tenant_id,omitempty"`
}

// Result is the outcome of a successful provider call.
type Result struct {
	Tokens  claims.TokenSet
	Account Account

	// MFARequired signals that the provider wants a second factor before the
	// session may be treated as fully authenticated.
	MFARequired bool
}

// AuthProvider is the identity-provider capability consumed by the core.
// Implementations own the protocol details and their own bounded latency.
type AuthProvider interface {
	// Login performs interactive authentication for the given scopes.
	Login(ctx context.Context, scopes []string) (*Result, error)

	// AcquireTokenSilent renews tokens without user interaction. It returns
	// an error matching ErrInteractionRequired when silent renewal is
	// impossible.
	AcquireTokenSilent(ctx context.Context, scopes []string, account Account) (*Result, error)

	// Logout terminates the provider-side session.
	Logout(ctx context.Context) error
}

// MFAChallenger is an optional capability for providers that support
// challenge/response MFA. Detected by type assertion on the AuthProvider.
type MFAChallenger interface {
	// IssueChallenge starts a challenge of the given method for an account
	// and returns the provider's challenge reference.
	IssueChallenge(ctx context.Context, method string, account Account) (string, error)

	// VerifyChallenge checks the user's response to a previously issued
	// challenge. On success the provider completes the sign-in and returns
	// the issued tokens.
	VerifyChallenge(ctx context.Context, challengeID, code string) (*Result, error)
}
