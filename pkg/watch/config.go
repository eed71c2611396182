package watch

import "time"

// Config holds background watcher configuration.
type Config struct {
	// MonitorInterval is how often the idle-timeout check runs.
	MonitorInterval time.Duration `env:"AUTH_MONITOR_INTERVAL" envDefault:"60s"`

	// RefreshInterval is how often silent token renewal runs.
	RefreshInterval time.Duration `env:"AUTH_REFRESH_INTERVAL" envDefault:"5m"`

	// SessionTimeout is the idle window after which the session is logged out.
	SessionTimeout time.Duration `env:"AUTH_SESSION_TIMEOUT" envDefault:"30m"`

	// ProviderTimeout bounds each silent renewal call. Zero disables the bound.
	ProviderTimeout time.Duration `env:"AUTH_PROVIDER_TIMEOUT" envDefault:"15s"`

	// Scopes requested on silent renewal.
	Scopes []string `env:"AUTH_SCOPES" envSeparator:"," envDefault:"openid,profile,email,offline_access"`
}

// DefaultConfig returns default watcher configuration.
func DefaultConfig() Config {
	return Config{
		MonitorInterval: time.Minute,
		RefreshInterval: 5 * time.Minute,
		SessionTimeout:  30 * time.Minute,
		ProviderTimeout: 15 * time.Second,
		Scopes:          []string{"openid", "profile", "email", "offline_access"},
	}
}
