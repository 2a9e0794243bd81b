package http

import (
	"bytes"
	"encoding/json"

	authhttp "wedding-clickz/internal/auth/adapter/http"
	"wedding-clickz/internal/gallery/domain/model"
	"wedding-clickz/internal/gallery/usecase"
	"wedding-clickz/internal/shared/logger"

	"github.com/gofiber/fiber/v2"
)

// SettingsHTTPHandler handles HTTP requests for the site settings
type SettingsHTTPHandler struct {
	usecase usecase.SettingsUsecaseInterface
	log     logger.Logger
}

// NewSettingsHTTPHandler creates a new settings HTTP handler
func NewSettingsHTTPHandler(uc usecase.SettingsUsecaseInterface, log logger.Logger) *SettingsHTTPHandler {
	return &SettingsHTTPHandler{
		usecase: uc,
		log:     log.WithComponent("settings_http"),
	}
}

// SetupSettingsRoutes registers the settings routes. Reading is public,
// updating requires authentication.
func (h *SettingsHTTPHandler) SetupSettingsRoutes(router fiber.Router, protect fiber.Handler) {
	router.Get("/settings", h.GetSettings)
	router.Post("/settings", protect, h.UpdateSettings)
}

// GetSettings returns the current site settings
func (h *SettingsHTTPHandler) GetSettings(c *fiber.Ctx) error {
	settings, err := h.usecase.Get(c.UserContext())
	if err != nil {
		h.log.Errorf("Settings lookup failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"detail": "Failed to get settings",
		})
	}
	return c.JSON(settings)
}

// UpdateSettings applies a partial settings change. Unknown fields are
// rejected rather than written through to the document.
func (h *SettingsHTTPHandler) UpdateSettings(c *fiber.Ctx) error {
	user, ok := authhttp.CurrentUser(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"detail": "Not authenticated",
		})
	}

	var update model.SettingsUpdate
	decoder := json.NewDecoder(bytes.NewReader(c.Body()))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&update); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"detail": "Invalid settings payload: " + err.Error(),
		})
	}

	if err := h.usecase.Update(c.UserContext(), &update, user.UserID); err != nil {
		h.log.Errorf("Settings update failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"detail": "Failed to update settings",
		})
	}

	return c.JSON(fiber.Map{
		"message": "Settings updated successfully",
	})
}
