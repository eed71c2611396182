// Package watch runs the background timers of the session lifecycle.
//
// Two independently ticking watchers share the state store:
//
//   - Monitor enforces the idle timeout: while the session is authenticated
//     it compares the last-activity timestamp against the session timeout and
//     performs a full logout the moment the idle window is reached.
//   - Refresher performs silent token renewal: while the session holds (or
//     recently held) tokens it asks the provider for fresh ones. A failed
//     renewal degrades the session to TOKEN_EXPIRED instead of logging out,
//     so the UI can prompt for re-authentication without losing user state; a
//     later successful renewal recovers to AUTHENTICATED.
//
// Both watchers are cancellable and are meant to be stopped together on
// logout or teardown - Group bundles them behind a single io.Closer so no
// orphaned timer can act on a torn-down store. Clocks are injectable for
// deterministic tests.
package watch
