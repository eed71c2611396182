package provider

import (
	"errors"
	"net/http"

	"golang.org/x/oauth2"
)

// OAuth error codes that mean the provider requires interactive sign-in
// before it will issue tokens (RFC 6749 / OIDC core).
var interactionCodes = map[string]struct{}{
	"interaction_required": {},
	"login_required":       {},
	"consent_required":     {},
}

// Classify maps a provider-specific error onto the package sentinels. Errors
// already matching a sentinel pass through unchanged; anything unrecognized
// becomes ErrUnavailable so callers treat it as a transient system failure.
func Classify(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, ErrInteractionRequired),
		errors.Is(err, ErrInvalidCredentials),
		errors.Is(err, ErrAccountLocked):
		return err
	}

	var retrieveErr *oauth2.RetrieveError
	if errors.As(err, &retrieveErr) {
		if _, ok := interactionCodes[retrieveErr.ErrorCode]; ok {
			return errors.Join(ErrInteractionRequired, err)
		}
		if retrieveErr.Response != nil {
			switch retrieveErr.Response.StatusCode {
			case http.StatusBadRequest, http.StatusUnauthorized, http.StatusForbidden:
				return errors.Join(ErrInvalidCredentials, err)
			case http.StatusLocked, http.StatusTooManyRequests:
				return errors.Join(ErrAccountLocked, err)
			}
		}
	}

	return errors.Join(ErrUnavailable, err)
}
