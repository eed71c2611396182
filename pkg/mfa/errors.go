package mfa

import "errors"

var (
	// ErrMFAFailed indicates challenge verification failed. The caller may
	// retry within its own policy or restart the login.
	ErrMFAFailed = errors.New("mfa: verification failed")

	// ErrChallengeUnknown indicates the challenge ID was never issued or was
	// already consumed.
	ErrChallengeUnknown = errors.New("mfa: unknown challenge")

	// ErrChallengeExpired indicates the challenge outlived its window and
	// must be re-issued.
	ErrChallengeExpired = errors.New("mfa: challenge expired")

	// ErrInvalidStatus indicates the operation is not legal in the current
	// authentication status.
	ErrInvalidStatus = errors.New("mfa: invalid status for operation")

	// ErrUnsupportedMethod indicates an unrecognized MFA method.
	ErrUnsupportedMethod = errors.New("mfa: unsupported method")
)
