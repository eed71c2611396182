package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/authkit/pkg/config"
	"github.com/dmitrymomot/authkit/pkg/lockout"
)

func TestLoad(t *testing.T) {
	t.Run("defaults apply without environment", func(t *testing.T) {
		var cfg lockout.Config
		require.NoError(t, config.Load(&cfg))

		assert.Equal(t, 3, cfg.MaxAttempts)
		assert.Equal(t, 30*time.Minute, cfg.LockoutDuration)
	})

	t.Run("environment overrides defaults", func(t *testing.T) {
		t.Setenv("AUTH_LOCKOUT_MAX_ATTEMPTS", "5")
		t.Setenv("AUTH_LOCKOUT_DURATION", "1h")

		var cfg lockout.Config
		require.NoError(t, config.Load(&cfg))

		assert.Equal(t, 5, cfg.MaxAttempts)
		assert.Equal(t, time.Hour, cfg.LockoutDuration)
	})

	t.Run("malformed value fails", func(t *testing.T) {
		t.Setenv("AUTH_LOCKOUT_DURATION", "not-a-duration")

		var cfg lockout.Config
		err := config.Load(&cfg)
		assert.ErrorIs(t, err, config.ErrParsing)
	})

	t.Run("nil destination", func(t *testing.T) {
		err := config.Load[lockout.Config](nil)
		assert.ErrorIs(t, err, config.ErrNilPointer)
	})
}

func TestMustLoad(t *testing.T) {
	t.Run("panics on failure", func(t *testing.T) {
		t.Setenv("AUTH_LOCKOUT_MAX_ATTEMPTS", "many")

		assert.Panics(t, func() {
			var cfg lockout.Config
			config.MustLoad(&cfg)
		})
	})
}
