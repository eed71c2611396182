package claims

import "errors"

var (
	// ErrMalformedToken indicates the access token payload could not be decoded.
	ErrMalformedToken = errors.New("claims: malformed token")

	// ErrTokenExpired indicates the exp claim is at or before the current time.
	ErrTokenExpired = errors.New("claims: token expired")

	// ErrIssuerMismatch indicates the iss claim does not match the expected issuer.
	ErrIssuerMismatch = errors.New("claims: issuer mismatch")

	// ErrNoAccessToken indicates the token set carries no access token to validate.
	ErrNoAccessToken = errors.New("claims: no access token")
)
