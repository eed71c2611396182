package authn

import "time"

// Config holds login orchestration configuration.
type Config struct {
	// Scopes requested from the identity provider on login and refresh.
	Scopes []string `env:"AUTH_SCOPES" envSeparator:"," envDefault:"openid,profile,email,offline_access"`

	// SessionTimeout is the idle window granted on successful login.
	SessionTimeout time.Duration `env:"AUTH_SESSION_TIMEOUT" envDefault:"30m"`

	// ProviderTimeout bounds each provider network call. Zero disables the
	// bound and defers entirely to the provider's own latency budget.
	ProviderTimeout time.Duration `env:"AUTH_PROVIDER_TIMEOUT" envDefault:"15s"`
}

// DefaultConfig returns default login configuration.
func DefaultConfig() Config {
	return Config{
		Scopes:          []string{"openid", "profile", "email", "offline_access"},
		SessionTimeout:  30 * time.Minute,
		ProviderTimeout: 15 * time.Second,
	}
}
