package claims_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/authkit/pkg/claims"
)

var testConfig = claims.Config{
	TenantID:   "contoso",
	IssuerBase: "https://login.example.com",
}

func signedToken(t *testing.T, mapClaims jwt.MapClaims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, mapClaims).SignedString([]byte("test-key"))
	require.NoError(t, err)
	return token
}

func tokenSet(access string) claims.TokenSet {
	return claims.TokenSet{
		AccessToken: access,
		TokenType:   "Bearer",
	}
}

func TestConfig_IssuerURL(t *testing.T) {
	assert.Equal(t, "https://login.example.com/contoso/v2.0", testConfig.IssuerURL())

	withSlash := claims.Config{TenantID: "common", IssuerBase: "https://login.example.com/"}
	assert.Equal(t, "https://login.example.com/common/v2.0", withSlash.IssuerURL())
}

func TestValidator_Validate(t *testing.T) {
	clock := clockwork.NewFakeClock()
	v := claims.NewValidator(testConfig, claims.WithClock(clock))
	now := clock.Now()

	t.Run("valid token", func(t *testing.T) {
		token := signedToken(t, jwt.MapClaims{
			"iss": testConfig.IssuerURL(),
			"exp": now.Add(time.Hour).Unix(),
			"sub": "user-1",
		})
		assert.NoError(t, v.Validate(tokenSet(token)))
	})

	t.Run("expired token", func(t *testing.T) {
		token := signedToken(t, jwt.MapClaims{
			"iss": testConfig.IssuerURL(),
			"exp": now.Add(-time.Second).Unix(),
		})
		assert.ErrorIs(t, v.Validate(tokenSet(token)), claims.ErrTokenExpired)
	})

	t.Run("exp exactly now is expired", func(t *testing.T) {
		token := signedToken(t, jwt.MapClaims{
			"iss": testConfig.IssuerURL(),
			"exp": now.Unix(),
		})
		assert.ErrorIs(t, v.Validate(tokenSet(token)), claims.ErrTokenExpired)
	})

	t.Run("missing exp claim", func(t *testing.T) {
		token := signedToken(t, jwt.MapClaims{
			"iss": testConfig.IssuerURL(),
		})
		assert.ErrorIs(t, v.Validate(tokenSet(token)), claims.ErrTokenExpired)
	})

	t.Run("issuer mismatch", func(t *testing.T) {
		token := signedToken(t, jwt.MapClaims{
			"iss": "https://evil.example.com/contoso/v2.0",
			"exp": now.Add(time.Hour).Unix(),
		})
		assert.ErrorIs(t, v.Validate(tokenSet(token)), claims.ErrIssuerMismatch)
	})

	t.Run("issuer mismatch beats other valid claims", func(t *testing.T) {
		token := signedToken(t, jwt.MapClaims{
			"iss": "https://login.example.com/other-tenant/v2.0",
			"exp": now.Add(24 * time.Hour).Unix(),
			"sub": "user-1",
			"aud": "api://contoso",
		})
		assert.ErrorIs(t, v.Validate(tokenSet(token)), claims.ErrIssuerMismatch)
	})

	t.Run("undecodable token", func(t *testing.T) {
		assert.ErrorIs(t, v.Validate(tokenSet("not-a-jwt")), claims.ErrMalformedToken)
	})

	t.Run("no access token", func(t *testing.T) {
		assert.ErrorIs(t, v.Validate(claims.TokenSet{}), claims.ErrNoAccessToken)
	})
}

func TestTokenSet_Redacted(t *testing.T) {
	ts := claims.TokenSet{
		AccessToken: "eyJhbGciOiJIUzI1NiJ9.payload.signature",
		ExpiresAt:   time.Unix(1700000000, 0),
	}

	redacted := ts.Redacted()
	assert.NotContains(t, redacted, "payload")
	assert.Contains(t, redacted, "eyJhbGci")
}

func TestTokenSet_IsZero(t *testing.T) {
	assert.True(t, claims.TokenSet{TokenType: "Bearer"}.IsZero())
	assert.False(t, claims.TokenSet{AccessToken: "x"}.IsZero())
	assert.False(t, claims.TokenSet{RefreshToken: "x"}.IsZero())
}
