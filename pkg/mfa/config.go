package mfa

import "time"

// Config holds MFA coordination configuration.
type Config struct {
	// ChallengeTTL is how long an issued challenge stays verifiable.
	ChallengeTTL time.Duration `env:"AUTH_MFA_CHALLENGE_TTL" envDefault:"5m"`

	// SessionTimeout sets the session expiry applied when verification
	// completes a sign-in.
	SessionTimeout time.Duration `env:"AUTH_SESSION_TIMEOUT" envDefault:"30m"`
}

// DefaultConfig returns default MFA configuration.
func DefaultConfig() Config {
	return Config{
		ChallengeTTL:   5 * time.Minute,
		SessionTimeout: 30 * time.Minute,
	}
}
