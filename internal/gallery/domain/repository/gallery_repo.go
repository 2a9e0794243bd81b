package repository

import (
	"context"

	"wedding-clickz/internal/gallery/domain/model"
)

// PhotoRepository defines persistence operations for gallery photos across
// the three kinds
type PhotoRepository interface {
	Insert(ctx context.Context, kind model.Kind, photo *model.Photo) error
	ListPublic(ctx context.Context, kind model.Kind, limit int64) ([]model.Photo, error)
	ListByPhotographer(ctx context.Context, kind model.Kind, photographerID string, limit int64) ([]model.Photo, error)
	GetByID(ctx context.Context, kind model.Kind, photoID string) (*model.Photo, error)
	DeleteOwned(ctx context.Context, kind model.Kind, photoID, photographerID string) error
}

// SettingsRepository defines persistence operations for the singleton
// settings document
type SettingsRepository interface {
	Get(ctx context.Context) (*model.Settings, error)
	Update(ctx context.Context, update *model.SettingsUpdate, updatedBy string) error
}
