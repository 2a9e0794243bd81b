// Package identity implements the client for the external OAuth identity
// provider that terminates the login flow.
package identity

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"wedding-clickz/internal/auth/domain/repository"
	apperrors "wedding-clickz/internal/shared/errors"
	"wedding-clickz/internal/shared/logger"

	"github.com/gofiber/fiber/v2"
)

// ProviderClient calls the identity provider's session-data endpoint to
// resolve a browser-supplied session id into a verified profile.
type ProviderClient struct {
	url     string
	timeout time.Duration
	log     logger.Logger
}

// NewProviderClient creates a provider client for the given endpoint
func NewProviderClient(url string, timeout time.Duration, log logger.Logger) *ProviderClient {
	return &ProviderClient{
		url:     url,
		timeout: timeout,
		log:     log.WithComponent("identity"),
	}
}

// ExchangeSession resolves an OAuth session id into the user's profile and
// session token. A provider rejection maps to an authentication error, a
// transport failure to an upstream error.
func (c *ProviderClient) ExchangeSession(ctx context.Context, sessionID string) (*repository.IdentityProfile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	agent := fiber.Get(c.url)
	agent.Set("X-Session-ID", sessionID)
	agent.Timeout(c.timeout)

	code, body, errs := agent.Bytes()
	if len(errs) > 0 {
		c.log.WithFields(map[string]interface{}{
			"error": errs[0].Error(),
		}).Error("Identity provider request failed")
		return nil, apperrors.NewUpstreamError(fmt.Sprintf("Failed to verify session: %v", errs[0])).WithCause(errs[0])
	}

	if code < 200 || code >= 300 {
		c.log.WithFields(map[string]interface{}{
			"status": code,
		}).Warn("Identity provider rejected session")
		return nil, apperrors.NewAuthenticationError("Invalid session ID")
	}

	var profile repository.IdentityProfile
	if err := json.Unmarshal(body, &profile); err != nil {
		return nil, apperrors.NewUpstreamError(fmt.Sprintf("Failed to verify session: %v", err)).WithCause(err)
	}

	if profile.Email == "" || profile.SessionToken == "" {
		return nil, apperrors.NewUpstreamError("Failed to verify session: incomplete provider response")
	}

	return &profile, nil
}

// Ensure ProviderClient implements IdentityClient
var _ repository.IdentityClient = (*ProviderClient)(nil)
