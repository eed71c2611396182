// Package lockout implements brute-force protection for login identifiers.
//
// A Tracker counts consecutive authentication failures per identifier and,
// once the configured attempt limit is reached, locks the identifier out for
// a fixed window. Lockout checks are designed to run before any network call
// so a locked identifier never reaches the identity provider.
//
// Records live in a pluggable Store. The bundled MemoryStore keeps counters
// process-local with TTL eviction; RedisStore shares them across processes so
// a restart cannot be used to bypass the lockout window.
//
// # Usage
//
//	tracker := lockout.NewTracker(lockout.NewMemoryStore(time.Minute))
//
//	locked, _ := tracker.IsLocked(ctx, email)
//	if locked {
//	    return ErrAccountLocked
//	}
//	if err := provider.Login(ctx, scopes); err != nil {
//	    _ = tracker.RecordFailure(ctx, email)
//	    return err
//	}
//	_ = tracker.RecordSuccess(ctx, email)
//
// Lockout is always recoverable: records expire on their own after the
// lockout window elapses.
package lockout
