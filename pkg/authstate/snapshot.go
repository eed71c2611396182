package authstate

import (
	"encoding/json"
	"time"

	"github.com/dmitrymomot/authkit/pkg/claims"
	"github.com/dmitrymomot/authkit/pkg/provider"
)

// The persisted layout is a single JSON object mirroring State with every
// timestamp encoded as epoch milliseconds. Snapshots are always written and
// read whole, never patched.

type snapshot struct {
	IsAuthenticated bool           `json:"isAuthenticated"`
	Status          Status         `json:"status"`
	User            *userSnapshot  `json:"user,omitempty"`
	Tokens          *tokenSnapshot `json:"tokens,omitempty"`
	LastActivity    int64          `json:"lastActivity,omitempty"`
	SessionExpiry   int64          `json:"sessionExpiry,omitempty"`
	Error           string         `json:"error,omitempty"`
	MFA             *mfaSnapshot   `json:"mfaState,omitempty"`
}

type userSnapshot struct {
	ID          string           `json:"id"`
	Email       string           `json:"email"`
	Role        string           `json:"role,omitempty"`
	MFAEnabled  bool             `json:"mfaEnabled"`
	MFAVerified bool             `json:"mfaVerified"`
	Account     provider.Account `json:"account"`
	LastLoginAt int64            `json:"lastLoginAt,omitempty"`
}

type tokenSnapshot struct {
	AccessToken  string   `json:"accessToken"`
	RefreshToken string   `json:"refreshToken,omitempty"`
	IDToken      string   `json:"idToken,omitempty"`
	ExpiresAt    int64    `json:"expiresAt,omitempty"`
	TokenType    string   `json:"tokenType,omitempty"`
	Scopes       []string `json:"scopes,omitempty"`
}

type mfaSnapshot struct {
	Required    bool   `json:"required"`
	Verified    bool   `json:"verified"`
	Method      string `json:"method,omitempty"`
	ChallengeID string `json:"challengeId,omitempty"`
	ExpiresAt   int64  `json:"expiresAt,omitempty"`
}

func toMillis(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.UnixMilli()
}

func fromMillis(ms int64) time.Time {
	if ms == 0 {
		return time.Time{}
	}
	return time.UnixMilli(ms)
}

func marshalState(s State) ([]byte, error) {
	snap := snapshot{
		IsAuthenticated: s.IsAuthenticated,
		Status:          s.Status,
		LastActivity:    toMillis(s.LastActivity),
		SessionExpiry:   toMillis(s.SessionExpiry),
		Error:           s.Error,
	}

	if s.User != nil {
		snap.User = &userSnapshot{
			ID:          s.User.ID,
			Email:       s.User.Email,
			Role:        s.User.Role,
			MFAEnabled:  s.User.MFAEnabled,
			MFAVerified: s.User.MFAVerified,
			Account:     s.User.Account,
			LastLoginAt: toMillis(s.User.LastLoginAt),
		}
	}

	if s.Tokens != nil {
		snap.Tokens = &tokenSnapshot{
			AccessToken:  s.Tokens.AccessToken,
			RefreshToken: s.Tokens.RefreshToken,
			IDToken:      s.Tokens.IDToken,
			ExpiresAt:    toMillis(s.Tokens.ExpiresAt),
			TokenType:    s.Tokens.TokenType,
			Scopes:       s.Tokens.Scopes,
		}
	}

	if s.MFA != nil {
		snap.MFA = &mfaSnapshot{
			Required:    s.MFA.Required,
			Verified:    s.MFA.Verified,
			Method:      s.MFA.Method,
			ChallengeID: s.MFA.ChallengeID,
			ExpiresAt:   toMillis(s.MFA.ExpiresAt),
		}
	}

	return json.Marshal(snap)
}

func unmarshalState(data []byte) (State, error) {
	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return State{}, err
	}

	state := State{
		IsAuthenticated: snap.IsAuthenticated,
		Status:          snap.Status,
		LastActivity:    fromMillis(snap.LastActivity),
		SessionExpiry:   fromMillis(snap.SessionExpiry),
		Error:           snap.Error,
	}

	if snap.User != nil {
		state.User = &User{
			ID:          snap.User.ID,
			Email:       snap.User.Email,
			Role:        snap.User.Role,
			MFAEnabled:  snap.User.MFAEnabled,
			MFAVerified: snap.User.MFAVerified,
			Account:     snap.User.Account,
			LastLoginAt: fromMillis(snap.User.LastLoginAt),
		}
	}

	if snap.Tokens != nil {
		state.Tokens = &claims.TokenSet{
			AccessToken:  snap.Tokens.AccessToken,
			RefreshToken: snap.Tokens.RefreshToken,
			IDToken:      snap.Tokens.IDToken,
			ExpiresAt:    fromMillis(snap.Tokens.ExpiresAt),
			TokenType:    snap.Tokens.TokenType,
			Scopes:       snap.Tokens.Scopes,
		}
	}

	if snap.MFA != nil {
		state.MFA = &MFAState{
			Required:    snap.MFA.Required,
			Verified:    snap.MFA.Verified,
			Method:      snap.MFA.Method,
			ChallengeID: snap.MFA.ChallengeID,
			ExpiresAt:   fromMillis(snap.MFA.ExpiresAt),
		}
	}

	return state, nil
}
