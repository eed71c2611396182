package lockout_test

import (
	"context"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/authkit/pkg/lockout"
)

func setupTracker(t *testing.T) (*lockout.Tracker, *clockwork.FakeClock) {
	t.Helper()

	clock := clockwork.NewFakeClock()
	store := lockout.NewMemoryStoreWithClock(clock)
	t.Cleanup(func() { _ = store.Close() })

	tracker := lockout.NewTracker(store,
		lockout.WithClock(clock),
		lockout.WithConfig(lockout.Config{
			MaxAttempts:     3,
			LockoutDuration: 30 * time.Minute,
		}),
	)
	return tracker, clock
}

func TestTracker_BelowLimitNeverLocked(t *testing.T) {
	tracker, _ := setupTracker(t)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		require.NoError(t, tracker.RecordFailure(ctx, "user@example.com"))

		locked, err := tracker.IsLocked(ctx, "user@example.com")
		require.NoError(t, err)
		assert.False(t, locked, "attempt %d must not lock", i+1)
	}
}

func TestTracker_LocksAtLimit(t *testing.T) {
	tracker, clock := setupTracker(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		require.NoError(t, tracker.RecordFailure(ctx, "user@example.com"))
	}

	locked, err := tracker.IsLocked(ctx, "user@example.com")
	require.NoError(t, err)
	assert.True(t, locked)

	retryAfter, err := tracker.RetryAfter(ctx, "user@example.com")
	require.NoError(t, err)
	assert.Equal(t, 30*time.Minute, retryAfter)

	// Other identifiers are unaffected.
	locked, err = tracker.IsLocked(ctx, "other@example.com")
	require.NoError(t, err)
	assert.False(t, locked)

	// The lock expires on its own.
	clock.Advance(30*time.Minute + time.Second)
	locked, err = tracker.IsLocked(ctx, "user@example.com")
	require.NoError(t, err)
	assert.False(t, locked)

	// And the record is gone, not just unlocked.
	_, exists, err := tracker.Status(ctx, "user@example.com")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestTracker_SuccessClearsRecord(t *testing.T) {
	tracker, _ := setupTracker(t)
	ctx := context.Background()

	require.NoError(t, tracker.RecordFailure(ctx, "user@example.com"))
	require.NoError(t, tracker.RecordFailure(ctx, "user@example.com"))
	require.NoError(t, tracker.RecordSuccess(ctx, "user@example.com"))

	_, exists, err := tracker.Status(ctx, "user@example.com")
	require.NoError(t, err)
	assert.False(t, exists)

	// The counter restarts from zero after a success.
	require.NoError(t, tracker.RecordFailure(ctx, "user@example.com"))
	locked, err := tracker.IsLocked(ctx, "user@example.com")
	require.NoError(t, err)
	assert.False(t, locked)
}

func TestTracker_NormalizesIdentifier(t *testing.T) {
	tracker, _ := setupTracker(t)
	ctx := context.Background()

	require.NoError(t, tracker.RecordFailure(ctx, "  User@Example.COM "))
	require.NoError(t, tracker.RecordFailure(ctx, "user@example.com"))
	require.NoError(t, tracker.RecordFailure(ctx, "USER@EXAMPLE.COM"))

	locked, err := tracker.IsLocked(ctx, "user@example.com")
	require.NoError(t, err)
	assert.True(t, locked)
}

func TestTracker_EmptyIdentifier(t *testing.T) {
	tracker, _ := setupTracker(t)
	ctx := context.Background()

	assert.ErrorIs(t, tracker.RecordFailure(ctx, "   "), lockout.ErrEmptyIdentifier)
	assert.ErrorIs(t, tracker.RecordSuccess(ctx, ""), lockout.ErrEmptyIdentifier)

	_, err := tracker.IsLocked(ctx, "")
	assert.ErrorIs(t, err, lockout.ErrEmptyIdentifier)
}

func TestTracker_RetryAfterZeroWhenUnlocked(t *testing.T) {
	tracker, _ := setupTracker(t)
	ctx := context.Background()

	retryAfter, err := tracker.RetryAfter(ctx, "user@example.com")
	require.NoError(t, err)
	assert.Zero(t, retryAfter)

	require.NoError(t, tracker.RecordFailure(ctx, "user@example.com"))
	retryAfter, err = tracker.RetryAfter(ctx, "user@example.com")
	require.NoError(t, err)
	assert.Zero(t, retryAfter)
}
