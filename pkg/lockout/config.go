package lockout

import "time"

// Config holds lockout policy configuration.
type Config struct {
	// MaxAttempts is the number of consecutive failures that triggers a lockout.
	MaxAttempts int `env:"AUTH_LOCKOUT_MAX_ATTEMPTS" envDefault:"3"`

	// LockoutDuration is how long an identifier stays locked. Records also use
	// it as their TTL, so stale counters self-clear.
	LockoutDuration time.Duration `env:"AUTH_LOCKOUT_DURATION" envDefault:"30m"`

	// CleanupInterval for expired records in the memory store (0 to disable).
	CleanupInterval time.Duration `env:"AUTH_LOCKOUT_CLEANUP_INTERVAL" envDefault:"1m"`
}

// DefaultConfig returns default lockout configuration.
func DefaultConfig() Config {
	return Config{
		MaxAttempts:     3,
		LockoutDuration: 30 * time.Minute,
		CleanupInterval: time.Minute,
	}
}
