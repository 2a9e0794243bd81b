package repository

import (
	"context"

	"wedding-clickz/internal/auth/domain/model"
)

// AuthRepository defines persistence operations for users and sessions
type AuthRepository interface {
	CreateUser(ctx context.Context, user *model.User) error
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	GetUserByID(ctx context.Context, userID string) (*model.User, error)
	UpdateUserProfile(ctx context.Context, userID, name, picture string) error

	UpsertSession(ctx context.Context, session *model.Session) error
	GetSessionByToken(ctx context.Context, token string) (*model.Session, error)
	DeleteUserSessions(ctx context.Context, userID string) error
}
