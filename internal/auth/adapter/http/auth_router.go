package http

import (
	"errors"
	"strings"

	"wedding-clickz/internal/auth/usecase"
	apperrors "wedding-clickz/internal/shared/errors"
	"wedding-clickz/internal/shared/logger"

	"github.com/gofiber/fiber/v2"
)

// AuthHTTPHandler handles HTTP requests for authentication operations
type AuthHTTPHandler struct {
	usecase usecase.AuthUsecaseInterface
	log     logger.Logger
}

// NewAuthHTTPHandler creates a new auth HTTP handler
func NewAuthHTTPHandler(uc usecase.AuthUsecaseInterface, log logger.Logger) *AuthHTTPHandler {
	return &AuthHTTPHandler{
		usecase: uc,
		log:     log.WithComponent("auth_http"),
	}
}

// SetupAuthRoutes registers the authentication routes
func (h *AuthHTTPHandler) SetupAuthRoutes(router fiber.Router, middleware *AuthMiddleware, rateLimiter fiber.Handler) {
	auth := router.Group("/auth")

	auth.Post("/session", rateLimiter, h.CreateSession)
	auth.Get("/me", middleware.Protect(), h.Me)
	auth.Post("/logout", middleware.Protect(), h.Logout)
}

// CreateSession exchanges the X-Session-ID header for a logged-in session
func (h *AuthHTTPHandler) CreateSession(c *fiber.Ctx) error {
	sessionID := strings.TrimSpace(c.Get("X-Session-ID"))
	if sessionID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"detail": "Session ID required",
		})
	}

	user, session, err := h.usecase.Login(c.UserContext(), sessionID)
	if err != nil {
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			return c.Status(appErr.HTTPCode).JSON(fiber.Map{
				"detail": appErr.Message,
			})
		}
		h.log.Errorf("Login failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"detail": "Login failed",
		})
	}

	return c.JSON(fiber.Map{
		"user": fiber.Map{
			"user_id": user.UserID,
			"email":   user.Email,
			"name":    user.Name,
			"picture": user.Picture,
		},
		"session_token": session.SessionToken,
	})
}

// Me returns the authenticated user
func (h *AuthHTTPHandler) Me(c *fiber.Ctx) error {
	user, ok := CurrentUser(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"detail": "Not authenticated",
		})
	}
	return c.JSON(user)
}

// Logout deletes the authenticated user's sessions
func (h *AuthHTTPHandler) Logout(c *fiber.Ctx) error {
	user, ok := CurrentUser(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"detail": "Not authenticated",
		})
	}

	if err := h.usecase.Logout(c.UserContext(), user.UserID); err != nil {
		h.log.Errorf("Logout failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"detail": "Logout failed",
		})
	}

	return c.JSON(fiber.Map{
		"message": "Logged out successfully",
	})
}
