// Package authn orchestrates credential login against the identity provider.
//
// The Authenticator ties the pieces together: it consults the lockout tracker
// before any network call (a locked identifier never reaches the provider),
// performs the provider login with a bounded timeout, validates the issued
// token claims locally, and transitions the state store on success. Every
// outcome emits a security audit event.
//
// Failed logins are never retried automatically - retry is a property of the
// scheduled token refresh, not of interactive login.
//
// # Error taxonomy
//
// Login surfaces one of the classified sentinels so the UI can render a
// generic message without leaking detail:
//
//   - ErrInvalidCredentials - rejected credentials or rejected token claims
//   - ErrAccountLocked      - lockout window active, no provider call made
//   - ErrMFARequired        - a signal, not a failure: verification pending
//   - ErrTokenExpired       - provider issued tokens already expired locally
//   - ErrSystemError        - provider or transport failure
package authn
