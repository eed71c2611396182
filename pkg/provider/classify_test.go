package provider_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/oauth2"

	"github.com/dmitrymomot/authkit/pkg/provider"
)

func retrieveError(status int, code string) error {
	return &oauth2.RetrieveError{
		Response:  &http.Response{StatusCode: status},
		ErrorCode: code,
	}
}

func TestClassify(t *testing.T) {
	t.Run("nil passes through", func(t *testing.T) {
		assert.NoError(t, provider.Classify(nil))
	})

	t.Run("sentinels pass through", func(t *testing.T) {
		for _, sentinel := range []error{
			provider.ErrInteractionRequired,
			provider.ErrInvalidCredentials,
			provider.ErrAccountLocked,
		} {
			assert.ErrorIs(t, provider.Classify(sentinel), sentinel)

			wrapped := errors.Join(sentinel, errors.New("detail"))
			assert.ErrorIs(t, provider.Classify(wrapped), sentinel)
		}
	})

	t.Run("interaction codes", func(t *testing.T) {
		for _, code := range []string{"interaction_required", "login_required", "consent_required"} {
			err := provider.Classify(retrieveError(http.StatusBadRequest, code))
			assert.ErrorIs(t, err, provider.ErrInteractionRequired, code)
		}
	})

	t.Run("credential rejections", func(t *testing.T) {
		for _, status := range []int{http.StatusBadRequest, http.StatusUnauthorized, http.StatusForbidden} {
			err := provider.Classify(retrieveError(status, "invalid_grant"))
			assert.ErrorIs(t, err, provider.ErrInvalidCredentials, status)
		}
	})

	t.Run("provider-side lock", func(t *testing.T) {
		assert.ErrorIs(t, provider.Classify(retrieveError(http.StatusLocked, "")), provider.ErrAccountLocked)
		assert.ErrorIs(t, provider.Classify(retrieveError(http.StatusTooManyRequests, "")), provider.ErrAccountLocked)
	})

	t.Run("unknown errors become unavailable", func(t *testing.T) {
		assert.ErrorIs(t, provider.Classify(errors.New("connection refused")), provider.ErrUnavailable)
		assert.ErrorIs(t, provider.Classify(retrieveError(http.StatusBadGateway, "")), provider.ErrUnavailable)
	})
}
