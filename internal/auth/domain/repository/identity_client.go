package repository

import "context"

// IdentityProfile is the profile returned by the external identity provider
// for a completed OAuth session.
type IdentityProfile struct {
	Email        string `json:"email"`
	Name         string `json:"name"`
	Picture      string `json:"picture"`
	SessionToken string `json:"session_token"`
}

// IdentityClient exchanges an OAuth session id for the user's profile and a
// long-lived session token.
type IdentityClient interface {
	ExchangeSession(ctx context.Context, sessionID string) (*IdentityProfile, error)
}
