// Package audit provides a best-effort security event sink.
//
// Auth flows emit events (login success/failure, lockout, MFA outcomes,
// session timeout, token refresh) through the Sink interface. Delivery is
// fire-and-forget: a failing or slow backend must never block or fail the
// authentication path, so the Logger buffers events and drops them when the
// buffer is full, reporting delivery problems only through slog.
//
// # Usage
//
//	sink := audit.NewLogger(audit.NewMemoryStorage())
//	defer sink.Close()
//
//	sink.LogEvent(ctx, audit.EventLoginSuccess, map[string]any{
//	    "email": email,
//	})
//
// Storage backends implement the single-method Storage interface; the bundled
// MemoryStorage captures events for tests and local inspection, SlogStorage
// writes them to structured logs.
package audit
