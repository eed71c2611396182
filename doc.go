// Package authkit provides authentication and session lifecycle management
// for Go applications that sign users in against an external OAuth2/OIDC
// identity provider.
//
// AuthKit covers the full client-side authentication lifecycle: credential
// login with brute-force lockout, multi-factor challenges, local token claim
// validation, persisted authentication state with change subscriptions,
// idle-timeout enforcement and scheduled silent token renewal. The identity
// provider remains the source of truth for credentials and token issuance;
// AuthKit orchestrates the session around it.
//
// Key Features:
//
//   - Single authoritative session state machine with copy-on-write snapshots
//   - Login attempt tracking with configurable lockout, in-memory or Redis
//   - MFA challenge issue/verify flow decoupled from the provider
//   - Stateless token claim checks (expiry, issuer) without key material
//   - Crash-safe state persistence with expired-session rejection on restore
//   - Background watchers for idle timeout and silent refresh
//
// Basic Usage:
//
//	validator := claims.NewValidator(claims.DefaultConfig())
//	store := authstate.New(authstate.WithValidator(validator))
//	defer store.Close()
//
//	tracker := lockout.NewTracker(lockout.NewMemoryStore(time.Minute))
//	auth := authn.New(idp, tracker, validator, store)
//
//	state, err := auth.Login(ctx, authn.Credentials{Email: email, Password: password})
//	switch {
//	case errors.Is(err, authn.ErrMFARequired):
//		// drive the mfa.Coordinator challenge flow
//	case errors.Is(err, authn.ErrAccountLocked):
//		// surface the lockout to the user
//	case err != nil:
//		return err
//	}
//
// Background Watchers:
//
//	monitor := watch.NewMonitor(store)
//	refresher := watch.NewRefresher(store, idp, validator)
//	_ = monitor.Start()
//	_ = refresher.Start()
//	auth.RegisterCloser(watch.NewGroup(monitor, refresher))
//
// The group is closed automatically on Logout, stopping both watchers before
// the provider session is ended and the state store is reset.
//
// Subscribing to State Changes:
//
//	for state := range store.Subscribe(ctx) {
//		render(state)
//	}
//
// Each package is usable on its own; the Authenticator simply wires them into
// the common flow.
package authkit
