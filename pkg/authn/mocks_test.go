package authn_test

import (
	"context"
	"errors"
	"time"

	"github.com/dmitrymomot/authkit/pkg/lockout"
	"github.com/dmitrymomot/authkit/pkg/provider"
)

// fakeProvider is a scriptable provider.AuthProvider.
type fakeProvider struct {
	loginRes  *provider.Result
	loginErr  error
	logoutErr error

	loginCalls  int
	logoutCalls int
	lastScopes  []string
}

func (f *fakeProvider) Login(_ context.Context, scopes []string) (*provider.Result, error) {
	f.loginCalls++
	f.lastScopes = scopes
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	return f.loginRes, nil
}

func (f *fakeProvider) AcquireTokenSilent(_ context.Context, _ []string, _ provider.Account) (*provider.Result, error) {
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	return f.loginRes, nil
}

func (f *fakeProvider) Logout(context.Context) error {
	f.logoutCalls++
	return f.logoutErr
}

// failingLockoutStore errors on every operation so fail-open behavior can be
// observed.
type failingLockoutStore struct{}

func (failingLockoutStore) Get(context.Context, string) (lockout.Record, bool, error) {
	return lockout.Record{}, false, errors.New("lockout store down")
}

func (failingLockoutStore) Put(context.Context, string, lockout.Record, time.Duration) error {
	return errors.New("lockout store down")
}

func (failingLockoutStore) Delete(context.Context, string) error {
	return errors.New("lockout store down")
}

// fakeCloser records whether Close ran.
type fakeCloser struct {
	closed int
	err    error
}

func (c *fakeCloser) Close() error {
	c.closed++
	return c.err
}
