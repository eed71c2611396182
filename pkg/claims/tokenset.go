package claims

import (
	"fmt"
	"time"
)

// TokenSet is the opaque, immutable bundle of credentials issued by the
// identity provider. Values are passed by copy and never mutated in place.
type TokenSet struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token,omitempty"`
	IDToken      string    `json:"id_token,omitempty"`
	ExpiresAt    time.Time `json:"expires_at"`
	TokenType    string    `json:"token_type,omitempty"`
	Scopes       []string  `json:"scopes,omitempty"`
}

// IsZero reports whether the set carries no credentials at all.
func (t TokenSet) IsZero() bool {
	return t.AccessToken == "" && t.RefreshToken == "" && t.IDToken == ""
}

// Redacted returns a loggable description of the token set. Token material is
// never logged in full.
func (t TokenSet) Redacted() string {
	preview := t.AccessToken
	if len(preview) > 8 {
		preview = preview[:8]
	}
	return fmt.Sprintf("%s...(%d bytes, expires %s)", preview, len(t.AccessToken), t.ExpiresAt.UTC().Format(time.RFC3339))
}
