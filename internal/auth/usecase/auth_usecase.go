package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"wedding-clickz/internal/auth/config"
	"wedding-clickz/internal/auth/domain/model"
	"wedding-clickz/internal/auth/domain/repository"
	apperrors "wedding-clickz/internal/shared/errors"
	"wedding-clickz/internal/shared/logger"
)

// AuthUsecaseInterface defines the contract for authentication use cases.
type AuthUsecaseInterface interface {
	Login(ctx context.Context, sessionID string) (*model.User, *model.Session, error)
	CurrentUser(ctx context.Context, token string) (*model.User, error)
	Logout(ctx context.Context, userID string) error
}

// AuthUsecase implements the authentication logic.
type AuthUsecase struct {
	repo     repository.AuthRepository
	identity repository.IdentityClient
	config   *config.Config
	log      logger.Logger
}

// NewAuthUsecase creates a new instance of AuthUsecase.
func NewAuthUsecase(
	repo repository.AuthRepository,
	identity repository.IdentityClient,
	cfg *config.Config,
	log logger.Logger,
) *AuthUsecase {
	return &AuthUsecase{
		repo:     repo,
		identity: identity,
		config:   cfg,
		log:      log.WithComponent("auth"),
	}
}

// Login exchanges an OAuth session id with the identity provider, creates the
// user on first login and replaces any previous session for that user.
func (uc *AuthUsecase) Login(ctx context.Context, sessionID string) (*model.User, *model.Session, error) {
	if strings.TrimSpace(sessionID) == "" {
		return nil, nil, apperrors.NewValidationError("Session ID required")
	}

	profile, err := uc.identity.ExchangeSession(ctx, sessionID)
	if err != nil {
		return nil, nil, err
	}

	user, err := uc.resolveUser(ctx, profile)
	if err != nil {
		return nil, nil, err
	}

	now := time.Now().UTC()
	session := &model.Session{
		UserID:       user.UserID,
		SessionToken: profile.SessionToken,
		ExpiresAt:    now.Add(uc.config.SessionTTL),
		CreatedAt:    now,
	}

	if err := uc.repo.UpsertSession(ctx, session); err != nil {
		return nil, nil, fmt.Errorf("failed to store session: %w", err)
	}

	uc.log.WithFields(map[string]interface{}{
		"user_id": user.UserID,
	}).Info("User logged in")

	return user, session, nil
}

// resolveUser finds the account for a provider profile, creating it on first
// login and refreshing the display fields on subsequent ones.
func (uc *AuthUsecase) resolveUser(ctx context.Context, profile *repository.IdentityProfile) (*model.User, error) {
	user, err := uc.repo.GetUserByEmail(ctx, profile.Email)
	if err == nil {
		if user.Name != profile.Name || user.Picture != profile.Picture {
			if err := uc.repo.UpdateUserProfile(ctx, user.UserID, profile.Name, profile.Picture); err != nil {
				return nil, fmt.Errorf("failed to update user profile: %w", err)
			}
			user.Name = profile.Name
			user.Picture = profile.Picture
		}
		return user, nil
	}
	if !errors.Is(err, apperrors.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	user = &model.User{
		UserID:  model.NewUserID(),
		Email:   profile.Email,
		Name:    profile.Name,
		Picture: profile.Picture,
	}
	if err := uc.repo.CreateUser(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	uc.log.WithFields(map[string]interface{}{
		"user_id": user.UserID,
	}).Info("New user registered")

	return user, nil
}

// CurrentUser resolves a session token into its user. Expiry is checked
// lazily on read, expired documents are left in place.
func (uc *AuthUsecase) CurrentUser(ctx context.Context, token string) (*model.User, error) {
	if token == "" {
		return nil, apperrors.ErrNotAuthenticated
	}

	session, err := uc.repo.GetSessionByToken(ctx, token)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidSession) {
			return nil, apperrors.ErrInvalidSession
		}
		return nil, fmt.Errorf("failed to look up session: %w", err)
	}

	if session.IsExpired(time.Now().UTC()) {
		return nil, apperrors.ErrSessionExpired
	}

	user, err := uc.repo.GetUserByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	return user, nil
}

// Logout removes every session belonging to the user
func (uc *AuthUsecase) Logout(ctx context.Context, userID string) error {
	if userID == "" {
		return apperrors.ErrNotAuthenticated
	}
	if err := uc.repo.DeleteUserSessions(ctx, userID); err != nil {
		return fmt.Errorf("failed to delete user sessions: %w", err)
	}

	uc.log.WithFields(map[string]interface{}{
		"user_id": userID,
	}).Info("User logged out")

	return nil
}

// Ensure AuthUsecase implements AuthUsecaseInterface
var _ AuthUsecaseInterface = (*AuthUsecase)(nil)
