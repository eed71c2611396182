// Package authstate holds the single source of truth for the current
// authentication state.
//
// A Store owns the State value exclusively: every change replaces the whole
// state atomically (copy-on-write, never patched in place), is checked
// against the status transition table, persisted as one JSON snapshot, and
// fanned out to subscribers. All other components read copies or receive
// change notifications; none of them may mutate state directly.
//
// # State machine
//
// Statuses and their legal transitions:
//
//	UNAUTHENTICATED --login success-----------> AUTHENTICATED
//	UNAUTHENTICATED --provider wants MFA------> MFA_REQUIRED
//	MFA_REQUIRED    --verify success----------> AUTHENTICATED
//	MFA_REQUIRED    --caller restart----------> UNAUTHENTICATED
//	AUTHENTICATED   --idle timeout / logout---> UNAUTHENTICATED
//	AUTHENTICATED   --silent refresh failed---> TOKEN_EXPIRED
//	TOKEN_EXPIRED   --silent refresh success--> AUTHENTICATED
//	TOKEN_EXPIRED   --explicit logout---------> UNAUTHENTICATED
//
// Replacing a state with one of the same status is always allowed (token
// refresh, MFA retry, activity bumps).
//
// # Persistence
//
// Snapshots are whole-blob JSON writes through the Storage interface, with
// every timestamp encoded as epoch milliseconds. Restore only adopts a
// snapshot whose tokens still pass claims validation; anything else is
// discarded so an expired session can never be resurrected.
package authstate
