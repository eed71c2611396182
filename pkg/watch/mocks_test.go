package watch_test

import (
	"context"

	"github.com/dmitrymomot/authkit/pkg/provider"
)

// silentProvider is a scriptable provider.AuthProvider for renewal tests.
type silentProvider struct {
	silentRes *provider.Result
	silentErr error

	silentCalls int
	lastAccount provider.Account
}

func (p *silentProvider) Login(context.Context, []string) (*provider.Result, error) {
	return p.silentRes, p.silentErr
}

func (p *silentProvider) AcquireTokenSilent(_ context.Context, _ []string, account provider.Account) (*provider.Result, error) {
	p.silentCalls++
	p.lastAccount = account
	if p.silentErr != nil {
		return nil, p.silentErr
	}
	return p.silentRes, nil
}

func (p *silentProvider) Logout(context.Context) error {
	return nil
}
