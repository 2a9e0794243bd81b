package usecase

import (
	"context"
	"fmt"
	"time"

	"wedding-clickz/internal/gallery/domain/model"
	"wedding-clickz/internal/gallery/domain/repository"
	apperrors "wedding-clickz/internal/shared/errors"
	"wedding-clickz/internal/shared/eventbus"
	"wedding-clickz/internal/shared/logger"
	"wedding-clickz/internal/shared/utils"

	"github.com/google/uuid"
)

// PhotoUsecaseInterface defines the contract for gallery photo use cases.
type PhotoUsecaseInterface interface {
	Upload(ctx context.Context, kind model.Kind, req *model.UploadRequest, photographerID, photographerName string) (string, error)
	ListPublic(ctx context.Context, kind model.Kind) ([]model.Photo, error)
	ListOwn(ctx context.Context, kind model.Kind, photographerID string) ([]model.Photo, error)
	Get(ctx context.Context, kind model.Kind, photoID string) (*model.Photo, error)
	Delete(ctx context.Context, kind model.Kind, photoID, photographerID string) error
}

// PhotoUsecase implements the gallery photo logic.
type PhotoUsecase struct {
	repo repository.PhotoRepository
	bus  *eventbus.EventBus
	log  logger.Logger
}

// NewPhotoUsecase creates a new instance of PhotoUsecase.
func NewPhotoUsecase(repo repository.PhotoRepository, bus *eventbus.EventBus, log logger.Logger) *PhotoUsecase {
	return &PhotoUsecase{
		repo: repo,
		bus:  bus,
		log:  log.WithComponent("gallery"),
	}
}

// Upload stores a new photo and announces it on the event bus. The caller's
// identity stamps the document, never the request body.
func (uc *PhotoUsecase) Upload(ctx context.Context, kind model.Kind, req *model.UploadRequest, photographerID, photographerName string) (string, error) {
	if err := req.Validate(kind); err != nil {
		return "", apperrors.NewValidationError(err.Error())
	}

	now := time.Now().UTC()
	photo := &model.Photo{
		PhotoID:          uuid.NewString(),
		Filename:         req.Filename,
		ImageData:        req.ImageData,
		PhotographerID:   photographerID,
		PhotographerName: photographerName,
		UploadTimestamp:  now.Format(time.RFC3339Nano),
		CreatedAt:        now,
	}
	if kind == model.KindWedding {
		photo.WeddingDate = req.WeddingDate
		photo.PhotographerNotes = req.PhotographerNotes
	}

	if err := uc.repo.Insert(ctx, kind, photo); err != nil {
		return "", apperrors.NewInternalError(fmt.Sprintf("Upload failed: %v", err)).WithCause(err)
	}

	uc.bus.Publish(model.EventTypePhotoUploaded, model.PhotoUploadedEvent{
		PhotoID:          photo.PhotoID,
		Kind:             kind,
		Filename:         photo.Filename,
		PhotographerName: photo.PhotographerName,
		UploadTimestamp:  photo.UploadTimestamp,
	})

	uc.log.WithFields(map[string]interface{}{
		"photo_id": photo.PhotoID,
		"kind":     string(kind),
		"user_id":  utils.GetUserIDOrDefault(ctx, photographerID),
	}).Info("Photo uploaded")

	return photo.PhotoID, nil
}

// ListPublic returns the newest photos of a kind up to the kind's cap
func (uc *PhotoUsecase) ListPublic(ctx context.Context, kind model.Kind) ([]model.Photo, error) {
	return uc.repo.ListPublic(ctx, kind, kind.PublicListLimit())
}

// ListOwn returns the caller's photos, metadata only
func (uc *PhotoUsecase) ListOwn(ctx context.Context, kind model.Kind, photographerID string) ([]model.Photo, error) {
	return uc.repo.ListByPhotographer(ctx, kind, photographerID, model.OwnerListLimit)
}

// Get retrieves a single photo with its image payload
func (uc *PhotoUsecase) Get(ctx context.Context, kind model.Kind, photoID string) (*model.Photo, error) {
	return uc.repo.GetByID(ctx, kind, photoID)
}

// Delete removes a photo the caller owns
func (uc *PhotoUsecase) Delete(ctx context.Context, kind model.Kind, photoID, photographerID string) error {
	if err := uc.repo.DeleteOwned(ctx, kind, photoID, photographerID); err != nil {
		return err
	}

	uc.log.WithFields(map[string]interface{}{
		"photo_id": photoID,
		"kind":     string(kind),
		"user_id":  utils.GetUserIDOrDefault(ctx, photographerID),
	}).Info("Photo deleted")

	return nil
}

// Ensure PhotoUsecase implements PhotoUsecaseInterface
var _ PhotoUsecaseInterface = (*PhotoUsecase)(nil)
