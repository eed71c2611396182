package mfa_test

import (
	"context"
	"errors"

	"github.com/dmitrymomot/authkit/pkg/provider"
)

// fakeProvider implements provider.AuthProvider and provider.MFAChallenger.
type fakeProvider struct {
	issueRef    string
	issueErr    error
	verifyCode  string
	verifyRes   *provider.Result
	issueCalls  int
	verifyCalls int
}

func (f *fakeProvider) Login(ctx context.Context, scopes []string) (*provider.Result, error) {
	return nil, errors.New("not used")
}

func (f *fakeProvider) AcquireTokenSilent(ctx context.Context, scopes []string, account provider.Account) (*provider.Result, error) {
	return nil, errors.New("not used")
}

func (f *fakeProvider) Logout(ctx context.Context) error {
	return nil
}

func (f *fakeProvider) IssueChallenge(ctx context.Context, method string, account provider.Account) (string, error) {
	f.issueCalls++
	return f.issueRef, f.issueErr
}

func (f *fakeProvider) VerifyChallenge(ctx context.Context, challengeID, code string) (*provider.Result, error) {
	f.verifyCalls++
	if code != f.verifyCode {
		return nil, provider.ErrInvalidCredentials
	}
	return f.verifyRes, nil
}

// bareProvider implements only provider.AuthProvider.
type bareProvider struct{}

func (bareProvider) Login(context.Context, []string) (*provider.Result, error) {
	return nil, errors.New("not used")
}

func (bareProvider) AcquireTokenSilent(context.Context, []string, provider.Account) (*provider.Result, error) {
	return nil, errors.New("not used")
}

func (bareProvider) Logout(context.Context) error { return nil }
