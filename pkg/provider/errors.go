package provider

import "errors"

var (
	// ErrInteractionRequired indicates silent token renewal is impossible and
	// the user must authenticate interactively.
	ErrInteractionRequired = errors.New("provider: interaction required")

	// ErrInvalidCredentials indicates the provider rejected the supplied credentials.
	ErrInvalidCredentials = errors.New("provider: invalid credentials")

	// ErrAccountLocked indicates the provider reports the account as locked.
	ErrAccountLocked = errors.New("provider: account locked")

	// ErrUnavailable indicates a transport or provider-side failure.
	ErrUnavailable = errors.New("provider: unavailable")

	// ErrChallengeUnsupported indicates the provider cannot issue or verify
	// MFA challenges.
	ErrChallengeUnsupported = errors.New("provider: mfa challenges unsupported")
)
