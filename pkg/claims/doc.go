// Package claims provides stateless local validation of access-token claims.
//
// The validator decodes the token payload without verifying its signature:
// signature trust is delegated to the identity-provider channel that delivered
// the token. What is checked locally is what the provider cannot check for
// this process: that the token has not expired relative to the local clock
// and that it was issued by the expected tenant issuer.
//
// # Usage
//
//	v := claims.NewValidator(claims.Config{
//	    TenantID:   "common",
//	    IssuerBase: "https://login.example.com",
//	})
//
//	if err := v.Validate(tokens); err != nil {
//	    // token rejected: errors.Is against ErrTokenExpired,
//	    // ErrIssuerMismatch or ErrMalformedToken
//	}
//
// Validation is a pure function of the token set and the clock; the validator
// holds no mutable state and is safe for concurrent use.
package claims
