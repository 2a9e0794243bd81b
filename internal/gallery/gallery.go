// Package gallery wires the photo and settings module: three MongoDB-backed
// photo collections, the singleton site settings document, and the live
// guest gallery stream.
package gallery

import (
	"fmt"

	galleryhttp "wedding-clickz/internal/gallery/adapter/http"
	"wedding-clickz/internal/gallery/adapter/persistence/mongodb"
	"wedding-clickz/internal/gallery/domain/repository"
	"wedding-clickz/internal/gallery/usecase"
	"wedding-clickz/internal/shared/eventbus"
	"wedding-clickz/internal/shared/logger"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/mongo"
)

// GalleryModule represents the complete gallery module
type GalleryModule struct {
	photoRepo       repository.PhotoRepository
	settingsRepo    repository.SettingsRepository
	photoUsecase    usecase.PhotoUsecaseInterface
	settingsUsecase usecase.SettingsUsecaseInterface
	photoHandler    *galleryhttp.PhotoHTTPHandler
	settingsHandler *galleryhttp.SettingsHTTPHandler
	streamHandler   *galleryhttp.StreamHandler
	bus             *eventbus.EventBus
}

// NewGalleryModule creates a new gallery module instance
func NewGalleryModule(db *mongo.Database, bus *eventbus.EventBus, log logger.Logger) (*GalleryModule, error) {
	photoRepo, err := mongodb.NewMongoPhotoRepository(db)
	if err != nil {
		return nil, fmt.Errorf("failed to create photo repository: %w", err)
	}
	settingsRepo := mongodb.NewMongoSettingsRepository(db)

	photoUsecase := usecase.NewPhotoUsecase(photoRepo, bus, log)
	settingsUsecase := usecase.NewSettingsUsecase(settingsRepo, log)

	return &GalleryModule{
		photoRepo:       photoRepo,
		settingsRepo:    settingsRepo,
		photoUsecase:    photoUsecase,
		settingsUsecase: settingsUsecase,
		photoHandler:    galleryhttp.NewPhotoHTTPHandler(photoUsecase, log),
		settingsHandler: galleryhttp.NewSettingsHTTPHandler(settingsUsecase, log),
		streamHandler:   galleryhttp.NewStreamHandler(bus, log),
		bus:             bus,
	}, nil
}

// RegisterRoutes registers gallery routes behind the given auth middleware.
// The stream route must be registered before the photo routes so that
// /photos/stream is not captured by the parametric /photos/:id handler.
func (gm *GalleryModule) RegisterRoutes(router fiber.Router, protect fiber.Handler) {
	gm.streamHandler.RegisterRoutes(router)
	gm.photoHandler.SetupPhotoRoutes(router, protect)
	gm.settingsHandler.SetupSettingsRoutes(router, protect)
}

// GetPhotoUsecase returns the photo usecase for external access
func (gm *GalleryModule) GetPhotoUsecase() usecase.PhotoUsecaseInterface {
	return gm.photoUsecase
}

// GetSettingsUsecase returns the settings usecase for external access
func (gm *GalleryModule) GetSettingsUsecase() usecase.SettingsUsecaseInterface {
	return gm.settingsUsecase
}

// Stop performs cleanup when the module is shut down
func (gm *GalleryModule) Stop() error {
	return nil
}
