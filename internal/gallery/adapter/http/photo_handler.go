package http

import (
	"errors"
	"fmt"
	"strings"

	authhttp "wedding-clickz/internal/auth/adapter/http"
	"wedding-clickz/internal/gallery/domain/model"
	"wedding-clickz/internal/gallery/usecase"
	apperrors "wedding-clickz/internal/shared/errors"
	"wedding-clickz/internal/shared/logger"

	"github.com/gofiber/fiber/v2"
)

// PhotoHTTPHandler handles HTTP requests for the three photo galleries
type PhotoHTTPHandler struct {
	usecase usecase.PhotoUsecaseInterface
	log     logger.Logger
}

// NewPhotoHTTPHandler creates a new photo HTTP handler
func NewPhotoHTTPHandler(uc usecase.PhotoUsecaseInterface, log logger.Logger) *PhotoHTTPHandler {
	return &PhotoHTTPHandler{
		usecase: uc,
		log:     log.WithComponent("gallery_http"),
	}
}

// SetupPhotoRoutes registers the gallery routes. Listings and single-photo
// reads are public, uploads and deletes require authentication.
func (h *PhotoHTTPHandler) SetupPhotoRoutes(router fiber.Router, protect fiber.Handler) {
	photos := router.Group("/photos")
	photos.Post("/upload", protect, h.uploadHandler(model.KindWedding))
	photos.Get("/list", protect, h.ListOwn)
	photos.Get("/guest", h.listPublicHandler(model.KindWedding))
	photos.Get("/:id", h.GetPhoto)
	photos.Delete("/:id", protect, h.deleteHandler(model.KindWedding))

	wall := router.Group("/wall-photos")
	wall.Get("/", h.listPublicHandler(model.KindWall))
	wall.Post("/upload", protect, h.uploadHandler(model.KindWall))
	wall.Delete("/:id", protect, h.deleteHandler(model.KindWall))

	backgrounds := router.Group("/background-images")
	backgrounds.Get("/", h.listPublicHandler(model.KindBackground))
	backgrounds.Post("/upload", protect, h.uploadHandler(model.KindBackground))
	backgrounds.Delete("/:id", protect, h.deleteHandler(model.KindBackground))
}

// uploadHandler returns the upload handler for a photo kind
func (h *PhotoHTTPHandler) uploadHandler(kind model.Kind) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, ok := authhttp.CurrentUser(c)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"detail": "Not authenticated",
			})
		}

		var req model.UploadRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"detail": "Invalid request body",
			})
		}

		photoID, err := h.usecase.Upload(c.UserContext(), kind, &req, user.UserID, user.Name)
		if err != nil {
			var appErr *apperrors.AppError
			if errors.As(err, &appErr) {
				return c.Status(appErr.HTTPCode).JSON(fiber.Map{
					"detail": appErr.Message,
				})
			}
			h.log.Errorf("Upload failed: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"detail": fmt.Sprintf("Upload failed: %v", err),
			})
		}

		return c.JSON(fiber.Map{
			"photo_id": photoID,
			"message":  h.uploadMessage(kind),
		})
	}
}

func (h *PhotoHTTPHandler) uploadMessage(kind model.Kind) string {
	switch kind {
	case model.KindWall:
		return "Wall photo uploaded successfully"
	case model.KindBackground:
		return "Background image uploaded successfully"
	default:
		return "Photo uploaded successfully"
	}
}

func (h *PhotoHTTPHandler) deleteMessage(kind model.Kind) string {
	switch kind {
	case model.KindWall:
		return "Wall photo deleted successfully"
	case model.KindBackground:
		return "Background image deleted successfully"
	default:
		return "Photo deleted successfully"
	}
}

// listPublicHandler returns the public listing handler for a photo kind
func (h *PhotoHTTPHandler) listPublicHandler(kind model.Kind) fiber.Handler {
	return func(c *fiber.Ctx) error {
		photos, err := h.usecase.ListPublic(c.UserContext(), kind)
		if err != nil {
			h.log.Errorf("Public listing failed: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"detail": "Failed to list photos",
			})
		}
		return c.JSON(photos)
	}
}

// ListOwn returns the authenticated photographer's wedding photos, metadata
// only
func (h *PhotoHTTPHandler) ListOwn(c *fiber.Ctx) error {
	user, ok := authhttp.CurrentUser(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"detail": "Not authenticated",
		})
	}

	photos, err := h.usecase.ListOwn(c.UserContext(), model.KindWedding, user.UserID)
	if err != nil {
		h.log.Errorf("Owner listing failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"detail": "Failed to list photos",
		})
	}
	return c.JSON(photos)
}

// GetPhoto returns a single wedding photo with its image payload
func (h *PhotoHTTPHandler) GetPhoto(c *fiber.Ctx) error {
	photoID := c.Params("id")

	photo, err := h.usecase.Get(c.UserContext(), model.KindWedding, photoID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"detail": "Photo not found",
			})
		}
		h.log.Errorf("Photo lookup failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"detail": "Failed to get photo",
		})
	}
	return c.JSON(photo)
}

// deleteHandler returns the owner-guarded delete handler for a photo kind
func (h *PhotoHTTPHandler) deleteHandler(kind model.Kind) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, ok := authhttp.CurrentUser(c)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"detail": "Not authenticated",
			})
		}

		photoID := c.Params("id")
		err := h.usecase.Delete(c.UserContext(), kind, photoID, user.UserID)
		if err != nil {
			switch {
			case errors.Is(err, apperrors.ErrNotFound):
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
					"detail": fmt.Sprintf("%s not found", kind.ResourceName()),
				})
			case errors.Is(err, apperrors.ErrForbidden):
				return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
					"detail": fmt.Sprintf("Not authorized to delete this %s", strings.ToLower(kind.ResourceName())),
				})
			default:
				h.log.Errorf("Delete failed: %v", err)
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
					"detail": "Failed to delete photo",
				})
			}
		}

		return c.JSON(fiber.Map{
			"message": h.deleteMessage(kind),
		})
	}
}
