package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	galleryhttp "wedding-clickz/internal/gallery/adapter/http"
	"wedding-clickz/internal/gallery/domain/model"
	"wedding-clickz/internal/gallery/testutil"
	apperrors "wedding-clickz/internal/shared/errors"
	"wedding-clickz/internal/shared/eventbus"
	"wedding-clickz/internal/shared/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// newStreamTestApp registers the stream and photo routes in the same order
// as the gallery module: stream first, so /photos/stream is not captured by
// the parametric /photos/:id handler.
func newStreamTestApp(photoUC *mockPhotoUsecase) *fiber.App {
	app := fiber.New()
	log := logger.NewLogger()

	streamHandler := galleryhttp.NewStreamHandler(eventbus.NewEventBus(log), log)
	photoHandler := galleryhttp.NewPhotoHTTPHandler(photoUC, log)

	api := app.Group("/api")
	streamHandler.RegisterRoutes(api)
	photoHandler.SetupPhotoRoutes(api, stubProtect(nil))

	return app
}

func TestStreamRoute_PlainGetRequiresUpgrade(t *testing.T) {
	photoUC := new(mockPhotoUsecase)
	app := newStreamTestApp(photoUC)

	req := httptest.NewRequest("GET", "/api/photos/stream", nil)
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, http.StatusUpgradeRequired, resp.StatusCode)
	photoUC.AssertNotCalled(t, "Get", mock.Anything, mock.Anything, mock.Anything)
}

func TestStreamRoute_DoesNotShadowPhotoLookup(t *testing.T) {
	photoUC := new(mockPhotoUsecase)
	app := newStreamTestApp(photoUC)

	photo := testutil.NewTestPhoto("user_abc123def456")
	photoUC.On("Get", mock.Anything, model.KindWedding, photo.PhotoID).Return(photo, nil)

	req := httptest.NewRequest("GET", "/api/photos/"+photo.PhotoID, nil)
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	photoUC.AssertExpectations(t)
}

func TestStreamRoute_UnknownPhotoStillNotFound(t *testing.T) {
	photoUC := new(mockPhotoUsecase)
	app := newStreamTestApp(photoUC)

	photoUC.On("Get", mock.Anything, model.KindWedding, "missing").Return(nil, apperrors.ErrNotFound)

	req := httptest.NewRequest("GET", "/api/photos/missing", nil)
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
