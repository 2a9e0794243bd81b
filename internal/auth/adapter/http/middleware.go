package http

import (
	"errors"
	"strings"
	"time"

	"wedding-clickz/internal/auth/domain/model"
	"wedding-clickz/internal/auth/usecase"
	apperrors "wedding-clickz/internal/shared/errors"
	"wedding-clickz/internal/shared/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

// currentUserLocal is the fiber.Ctx Locals key holding the authenticated user
const currentUserLocal = "current_user"

// AuthMiddleware provides authentication middleware for Fiber
type AuthMiddleware struct {
	usecase usecase.AuthUsecaseInterface
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(uc usecase.AuthUsecaseInterface) *AuthMiddleware {
	return &AuthMiddleware{usecase: uc}
}

// Protect returns middleware that requires a valid session token.
// Expired or unknown tokens yield 401, a session whose user no longer
// exists yields 404.
func (m *AuthMiddleware) Protect() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := m.extractToken(c)

		user, err := m.usecase.CurrentUser(c.UserContext(), token)
		if err != nil {
			switch {
			case errors.Is(err, apperrors.ErrNotAuthenticated):
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
					"detail": "Not authenticated",
				})
			case errors.Is(err, apperrors.ErrInvalidSession):
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
					"detail": "Invalid session",
				})
			case errors.Is(err, apperrors.ErrSessionExpired):
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
					"detail": "Session expired",
				})
			case errors.Is(err, apperrors.ErrUserNotFound):
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
					"detail": "User not found",
				})
			default:
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
					"detail": "Authentication failed",
				})
			}
		}

		c.Locals(currentUserLocal, user)

		ctx := utils.WithUserID(c.UserContext(), user.UserID)
		ctx = utils.WithUserEmail(ctx, user.Email)
		ctx = utils.WithUserName(ctx, user.Name)
		c.SetUserContext(ctx)

		return c.Next()
	}
}

// RateLimiter creates rate limiting middleware for the session exchange
// endpoint
func (m *AuthMiddleware) RateLimiter(max int, window time.Duration) fiber.Handler {
	return limiter.New(limiter.Config{
		Max:               max,
		Expiration:        window,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.Get("X-Forwarded-For", c.IP())
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"detail": "Rate limit exceeded. Please try again later.",
			})
		},
	})
}

// extractToken reads the session token from the Authorization header. The
// Bearer prefix is optional.
func (m *AuthMiddleware) extractToken(c *fiber.Ctx) string {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return ""
	}
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	return authHeader
}

// CurrentUser returns the authenticated user stored by Protect()
func CurrentUser(c *fiber.Ctx) (*model.User, bool) {
	user, ok := c.Locals(currentUserLocal).(*model.User)
	return user, ok
}
