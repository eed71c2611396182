// Package mfa coordinates multi-factor authentication challenges.
//
// The Coordinator issues challenges through the identity provider, tracks
// them with a bounded lifetime, and verifies user responses. A successful
// verification during login completes the sign-in: the provider returns the
// issued tokens and the coordinator transitions the state store to
// AUTHENTICATED. Failed or expired challenges leave the state untouched so
// the caller decides whether to retry or restart the login.
//
// Challenges expire five minutes after issue by default. An expired challenge
// is never silently extended; it must be re-issued.
package mfa
