// Package provider defines the identity-provider capability consumed by the
// authentication core, plus error classification for provider failures.
//
// The core never talks OAuth/OIDC wire protocol itself. It calls the
// AuthProvider interface and trusts the implementation to handle token
// issuance, signing and its own bounded latency. Any OAuth/OIDC-compliant
// implementation can be substituted; OAuth2Provider is a reference adapter
// over golang.org/x/oauth2.
//
// Provider-specific failures are normalized through Classify so callers can
// match on the package sentinels with errors.Is.
package provider
