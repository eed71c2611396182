package watch_test

import (
	"context"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/authkit/pkg/audit"
	"github.com/dmitrymomot/authkit/pkg/authstate"
	"github.com/dmitrymomot/authkit/pkg/claims"
	"github.com/dmitrymomot/authkit/pkg/provider"
	"github.com/dmitrymomot/authkit/pkg/watch"
)

func authenticatedStore(t *testing.T, clock clockwork.Clock, lastActivity time.Time) *authstate.Store {
	t.Helper()

	store := authstate.New(authstate.WithClock(clock))
	t.Cleanup(func() { _ = store.Close() })

	err := store.Update(context.Background(), authstate.State{
		IsAuthenticated: true,
		Status:          authstate.StatusAuthenticated,
		User: &authstate.User{
			ID:      "u-1",
			Email:   "a@b.com",
			Account: provider.Account{ID: "acc-1", Username: "a@b.com"},
		},
		Tokens: &claims.TokenSet{
			AccessToken: "access-1",
			ExpiresAt:   clock.Now().Add(time.Hour),
		},
		LastActivity:  lastActivity,
		SessionExpiry: lastActivity.Add(30 * time.Minute),
	})
	require.NoError(t, err)
	return store
}

func TestMonitor_Tick(t *testing.T) {
	ctx := context.Background()

	t.Run("idle session is logged out", func(t *testing.T) {
		clock := clockwork.NewFakeClock()
		store := authenticatedStore(t, clock, clock.Now().Add(-31*time.Minute))

		events := audit.NewMemoryStorage()
		sink := audit.NewLogger(events, audit.WithClock(clock))

		m := watch.NewMonitor(store,
			watch.WithMonitorClock(clock),
			watch.WithMonitorAuditSink(sink),
		)

		m.Tick(ctx)

		state := store.Current()
		assert.Equal(t, authstate.StatusUnauthenticated, state.Status)
		assert.False(t, state.IsAuthenticated)
		assert.Nil(t, state.Tokens)
		assert.Nil(t, state.User)

		require.NoError(t, sink.Close())
		logged := events.Events()
		require.Len(t, logged, 1)
		assert.Equal(t, audit.EventSessionTimeout, logged[0].Type)
		assert.Equal(t, "31m0s", logged[0].Metadata["idle"])
	})

	t.Run("active session is untouched", func(t *testing.T) {
		clock := clockwork.NewFakeClock()
		store := authenticatedStore(t, clock, clock.Now().Add(-29*time.Minute))

		m := watch.NewMonitor(store, watch.WithMonitorClock(clock))
		m.Tick(ctx)

		state := store.Current()
		assert.Equal(t, authstate.StatusAuthenticated, state.Status)
		assert.True(t, state.IsAuthenticated)
	})

	t.Run("boundary counts as idle", func(t *testing.T) {
		clock := clockwork.NewFakeClock()
		store := authenticatedStore(t, clock, clock.Now().Add(-30*time.Minute))

		m := watch.NewMonitor(store, watch.WithMonitorClock(clock))
		m.Tick(ctx)

		assert.Equal(t, authstate.StatusUnauthenticated, store.Current().Status)
	})

	t.Run("unauthenticated state is ignored", func(t *testing.T) {
		clock := clockwork.NewFakeClock()
		store := authstate.New(authstate.WithClock(clock))
		t.Cleanup(func() { _ = store.Close() })

		m := watch.NewMonitor(store, watch.WithMonitorClock(clock))
		clock.Advance(2 * time.Hour)
		m.Tick(ctx)

		assert.Equal(t, authstate.StatusUnauthenticated, store.Current().Status)
	})

	t.Run("activity resets the window", func(t *testing.T) {
		clock := clockwork.NewFakeClock()
		store := authenticatedStore(t, clock, clock.Now().Add(-29*time.Minute))

		m := watch.NewMonitor(store, watch.WithMonitorClock(clock))

		clock.Advance(2 * time.Minute)
		store.Touch(ctx)

		clock.Advance(29 * time.Minute)
		m.Tick(ctx)
		assert.Equal(t, authstate.StatusAuthenticated, store.Current().Status)

		clock.Advance(time.Minute)
		m.Tick(ctx)
		assert.Equal(t, authstate.StatusUnauthenticated, store.Current().Status)
	})
}

func TestMonitor_Loop(t *testing.T) {
	clock := clockwork.NewFakeClock()
	store := authenticatedStore(t, clock, clock.Now().Add(-31*time.Minute))

	m := watch.NewMonitor(store, watch.WithMonitorClock(clock))
	require.NoError(t, m.Start())
	t.Cleanup(func() { _ = m.Close() })

	clock.BlockUntil(1)
	clock.Advance(time.Minute)

	require.Eventually(t, func() bool {
		return store.Current().Status == authstate.StatusUnauthenticated
	}, time.Second, 5*time.Millisecond)

	require.NoError(t, m.Close())
	require.NoError(t, m.Close())
}
