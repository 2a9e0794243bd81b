// Package auth wires the session-based authentication module: an external
// OAuth identity exchange, MongoDB-backed users and sessions, and the Fiber
// middleware that gates protected routes.
package auth

import (
	"fmt"

	authhttp "wedding-clickz/internal/auth/adapter/http"
	"wedding-clickz/internal/auth/adapter/identity"
	"wedding-clickz/internal/auth/adapter/persistence/mongodb"
	"wedding-clickz/internal/auth/config"
	"wedding-clickz/internal/auth/domain/repository"
	"wedding-clickz/internal/auth/usecase"
	"wedding-clickz/internal/shared/logger"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/mongo"
)

// AuthModule represents the complete authentication module
type AuthModule struct {
	repository repository.AuthRepository
	identity   repository.IdentityClient
	usecase    usecase.AuthUsecaseInterface
	handler    *authhttp.AuthHTTPHandler
	config     *config.Config
	log        logger.Logger
}

// NewAuthModule creates a new authentication module instance
func NewAuthModule(db *mongo.Database, cfg *config.Config, log logger.Logger) (*AuthModule, error) {
	authRepo, err := mongodb.NewMongoAuthRepository(db)
	if err != nil {
		return nil, fmt.Errorf("failed to create auth repository: %w", err)
	}

	identityClient := identity.NewProviderClient(cfg.IdentityProviderURL, cfg.IdentityTimeout, log)

	authUsecase := usecase.NewAuthUsecase(authRepo, identityClient, cfg, log)

	handler := authhttp.NewAuthHTTPHandler(authUsecase, log)

	return &AuthModule{
		repository: authRepo,
		identity:   identityClient,
		usecase:    authUsecase,
		handler:    handler,
		config:     cfg,
		log:        log,
	}, nil
}

// RegisterRoutes registers authentication routes with the provided router
func (am *AuthModule) RegisterRoutes(router fiber.Router) {
	middleware := am.GetMiddleware()
	rateLimiter := middleware.RateLimiter(am.config.LoginRateLimit, am.config.LoginRateWindow)
	am.handler.SetupAuthRoutes(router, middleware, rateLimiter)
}

// GetUsecase returns the auth usecase for external access
func (am *AuthModule) GetUsecase() usecase.AuthUsecaseInterface {
	return am.usecase
}

// GetMiddleware returns the auth middleware
func (am *AuthModule) GetMiddleware() *authhttp.AuthMiddleware {
	return authhttp.NewAuthMiddleware(am.usecase)
}

// Stop performs cleanup when the module is shut down
func (am *AuthModule) Stop() error {
	return nil
}
