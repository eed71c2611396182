package provider

import (
	"context"
	"sync"

	"golang.org/x/oauth2"

	"github.com/dmitrymomot/authkit/pkg/claims"
)

// LoginFunc performs the interactive leg of an OAuth2 flow (authorization
// code, device code, password grant - whatever the deployment uses) and
// returns the resulting token.
type LoginFunc func(ctx context.Context, cfg *oauth2.Config, scopes []string) (*oauth2.Token, error)

// AccountFunc derives the provider account handle from a freshly issued
// token, typically by decoding the id_token or calling the userinfo endpoint.
type AccountFunc func(ctx context.Context, token *oauth2.Token) (Account, error)

// OAuth2Provider adapts a golang.org/x/oauth2 configuration to the
// AuthProvider capability. Silent acquisition runs the refresh grant through
// a TokenSource seeded with the refresh token cached from the last successful
// exchange for the account.
type OAuth2Provider struct {
	config      *oauth2.Config
	loginFunc   LoginFunc
	accountFunc AccountFunc

	mu      sync.Mutex
	refresh map[string]string // account ID -> refresh token
}

// NewOAuth2Provider creates the adapter. loginFunc and accountFunc are
// required; the adapter has no sensible default for either.
func NewOAuth2Provider(config *oauth2.Config, loginFunc LoginFunc, accountFunc AccountFunc) *OAuth2Provider {
	return &OAuth2Provider{
		config:      config,
		loginFunc:   loginFunc,
		accountFunc: accountFunc,
		refresh:     make(map[string]string),
	}
}

// Login performs interactive authentication.
func (p *OAuth2Provider) Login(ctx context.Context, scopes []string) (*Result, error) {
	cfg := p.scopedConfig(scopes)

	token, err := p.loginFunc(ctx, cfg, scopes)
	if err != nil {
		return nil, Classify(err)
	}

	account, err := p.accountFunc(ctx, token)
	if err != nil {
		return nil, Classify(err)
	}

	p.rememberRefreshToken(account.ID, token.RefreshToken)

	return &Result{
		Tokens:  tokenSetFromOAuth2(token, scopes),
		Account: account,
	}, nil
}

// AcquireTokenSilent renews tokens using the cached refresh token for the
// account. Without one, interactive sign-in is required.
func (p *OAuth2Provider) AcquireTokenSilent(ctx context.Context, scopes []string, account Account) (*Result, error) {
	refreshToken := p.refreshTokenFor(account.ID)
	if refreshToken == "" {
		return nil, ErrInteractionRequired
	}

	cfg := p.scopedConfig(scopes)
	src := cfg.TokenSource(ctx, &oauth2.Token{RefreshToken: refreshToken})

	token, err := src.Token()
	if err != nil {
		return nil, Classify(err)
	}

	// Providers may rotate the refresh token on each renewal.
	if token.RefreshToken != "" {
		p.rememberRefreshToken(account.ID, token.RefreshToken)
	}

	return &Result{
		Tokens:  tokenSetFromOAuth2(token, scopes),
		Account: account,
	}, nil
}

// Logout drops all cached refresh tokens. The provider session itself ends
// when the tokens expire; RP-initiated logout is a transport concern outside
// this adapter.
func (p *OAuth2Provider) Logout(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	clear(p.refresh)
	return nil
}

func (p *OAuth2Provider) scopedConfig(scopes []string) *oauth2.Config {
	cfg := *p.config
	if len(scopes) > 0 {
		cfg.Scopes = scopes
	}
	return &cfg
}

func (p *OAuth2Provider) rememberRefreshToken(accountID, token string) {
	if accountID == "" || token == "" {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.refresh[accountID] = token
}

func (p *OAuth2Provider) refreshTokenFor(accountID string) string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.refresh[accountID]
}

func tokenSetFromOAuth2(token *oauth2.Token, scopes []string) claims.TokenSet {
	ts := claims.TokenSet{
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
		ExpiresAt:    token.Expiry,
		TokenType:    token.TokenType,
		Scopes:       scopes,
	}

	if idToken, ok := token.Extra("id_token").(string); ok {
		ts.IDToken = idToken
	}

	return ts
}
