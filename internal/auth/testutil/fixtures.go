// Package testutil provides fixtures shared by the auth module tests.
package testutil

import (
	"time"

	"wedding-clickz/internal/auth/domain/model"
	"wedding-clickz/internal/auth/domain/repository"
)

// NewTestUser returns a user fixture with sensible defaults
func NewTestUser() *model.User {
	now := time.Now().UTC()
	return &model.User{
		UserID:    "user_abc123def456",
		Email:     "photographer@example.com",
		Name:      "Test Photographer",
		Picture:   "https://example.com/avatar.png",
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// NewTestSession returns a live session for the given user
func NewTestSession(userID string) *model.Session {
	now := time.Now().UTC()
	return &model.Session{
		UserID:       userID,
		SessionToken: "tok_valid_session",
		ExpiresAt:    now.Add(7 * 24 * time.Hour),
		CreatedAt:    now,
	}
}

// NewExpiredSession returns a session whose expiry is in the past
func NewExpiredSession(userID string) *model.Session {
	now := time.Now().UTC()
	return &model.Session{
		UserID:       userID,
		SessionToken: "tok_expired_session",
		ExpiresAt:    now.Add(-time.Hour),
		CreatedAt:    now.Add(-8 * 24 * time.Hour),
	}
}

// NewTestProfile returns an identity provider profile fixture
func NewTestProfile() *repository.IdentityProfile {
	return &repository.IdentityProfile{
		Email:        "photographer@example.com",
		Name:         "Test Photographer",
		Picture:      "https://example.com/avatar.png",
		SessionToken: "tok_valid_session",
	}
}
