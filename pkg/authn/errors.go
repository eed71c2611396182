package authn

import "errors"

var (
	// ErrInvalidCredentials indicates the credentials, or the tokens issued
	// for them, were rejected.
	ErrInvalidCredentials = errors.New("authn: invalid credentials")

	// ErrAccountLocked indicates the identifier is in an active lockout window.
	ErrAccountLocked = errors.New("authn: account locked")

	// ErrMFARequired signals that login must continue with MFA verification.
	// It is a flow signal, not a failure.
	ErrMFARequired = errors.New("authn: mfa required")

	// ErrTokenExpired indicates the provider issued tokens that are already
	// expired against the local clock.
	ErrTokenExpired = errors.New("authn: token expired")

	// ErrSystemError indicates an unclassified provider or transport failure.
	ErrSystemError = errors.New("authn: system error")
)
