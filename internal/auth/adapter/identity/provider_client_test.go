package identity_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"wedding-clickz/internal/auth/adapter/identity"
	apperrors "wedding-clickz/internal/shared/errors"
	"wedding-clickz/internal/shared/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClient(url string) *identity.ProviderClient {
	return identity.NewProviderClient(url, 5*time.Second, logger.NewLogger())
}

func TestExchangeSession_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "oauth-session-id", r.Header.Get("X-Session-ID"))
		json.NewEncoder(w).Encode(map[string]string{
			"email":         "photographer@example.com",
			"name":          "Test Photographer",
			"picture":       "https://example.com/avatar.png",
			"session_token": "tok_from_provider",
		})
	}))
	defer server.Close()

	profile, err := newClient(server.URL).ExchangeSession(context.Background(), "oauth-session-id")
	require.NoError(t, err)
	assert.Equal(t, "photographer@example.com", profile.Email)
	assert.Equal(t, "tok_from_provider", profile.SessionToken)
}

func TestExchangeSession_ProviderRejects(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	_, err := newClient(server.URL).ExchangeSession(context.Background(), "bad-session-id")
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrorTypeAuthentication, appErr.Type)
	assert.Equal(t, http.StatusUnauthorized, appErr.HTTPCode)
}

func TestExchangeSession_ProviderUnreachable(t *testing.T) {
	// closed port
	_, err := newClient("http://127.0.0.1:1").ExchangeSession(context.Background(), "any")
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrorTypeUpstream, appErr.Type)
	assert.Contains(t, appErr.Message, "Failed to verify session")
}

func TestExchangeSession_IncompleteResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"email": "photographer@example.com"})
	}))
	defer server.Close()

	_, err := newClient(server.URL).ExchangeSession(context.Background(), "session-id")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "incomplete provider response")
}

func TestExchangeSession_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newClient("http://127.0.0.1:1").ExchangeSession(ctx, "any")
	assert.ErrorIs(t, err, context.Canceled)
}
