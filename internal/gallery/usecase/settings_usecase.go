package usecase

import (
	"context"
	"fmt"

	"wedding-clickz/internal/gallery/domain/model"
	"wedding-clickz/internal/gallery/domain/repository"
	"wedding-clickz/internal/shared/logger"
)

// SettingsUsecaseInterface defines the contract for site settings use cases.
type SettingsUsecaseInterface interface {
	Get(ctx context.Context) (*model.Settings, error)
	Update(ctx context.Context, update *model.SettingsUpdate, updatedBy string) error
}

// SettingsUsecase implements the site settings logic.
type SettingsUsecase struct {
	repo repository.SettingsRepository
	log  logger.Logger
}

// NewSettingsUsecase creates a new instance of SettingsUsecase.
func NewSettingsUsecase(repo repository.SettingsRepository, log logger.Logger) *SettingsUsecase {
	return &SettingsUsecase{
		repo: repo,
		log:  log.WithComponent("settings"),
	}
}

// Get returns the current settings, defaults included for unset fields
func (uc *SettingsUsecase) Get(ctx context.Context) (*model.Settings, error) {
	return uc.repo.Get(ctx)
}

// Update applies a partial settings change on behalf of the given user
func (uc *SettingsUsecase) Update(ctx context.Context, update *model.SettingsUpdate, updatedBy string) error {
	if err := uc.repo.Update(ctx, update, updatedBy); err != nil {
		return fmt.Errorf("failed to update settings: %w", err)
	}

	uc.log.WithFields(map[string]interface{}{
		"updated_by": updatedBy,
	}).Info("Settings updated")

	return nil
}

// Ensure SettingsUsecase implements SettingsUsecaseInterface
var _ SettingsUsecaseInterface = (*SettingsUsecase)(nil)
