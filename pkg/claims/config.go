package claims

import "strings"

// Config holds token validation configuration.
type Config struct {
	// TenantID identifies the identity-provider tenant tokens must originate from.
	TenantID string `env:"AUTH_TENANT_ID" envDefault:"common"`

	// IssuerBase is the issuer URL prefix without the tenant segment.
	IssuerBase string `env:"AUTH_ISSUER_BASE" envDefault:"https://login.microsoftonline.com"`
}

// DefaultConfig returns default validation configuration.
func DefaultConfig() Config {
	return Config{
		TenantID:   "common",
		IssuerBase: "https://login.microsoftonline.com",
	}
}

// IssuerURL builds the expected iss claim value for the configured tenant.
func (c Config) IssuerURL() string {
	return strings.TrimRight(c.IssuerBase, "/") + "/" + c.TenantID + "/v2.0"
}
