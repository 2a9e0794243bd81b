package http_test

import (
	"context"

	authmodel "wedding-clickz/internal/auth/domain/model"
	"wedding-clickz/internal/gallery/domain/model"
	"wedding-clickz/internal/gallery/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/mock"
)

// mockPhotoUsecase is a shared mock type for the PhotoUsecaseInterface
type mockPhotoUsecase struct {
	mock.Mock
}

func (m *mockPhotoUsecase) Upload(ctx context.Context, kind model.Kind, req *model.UploadRequest, photographerID, photographerName string) (string, error) {
	args := m.Called(ctx, kind, req, photographerID, photographerName)
	return args.String(0), args.Error(1)
}

func (m *mockPhotoUsecase) ListPublic(ctx context.Context, kind model.Kind) ([]model.Photo, error) {
	args := m.Called(ctx, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Photo), args.Error(1)
}

func (m *mockPhotoUsecase) ListOwn(ctx context.Context, kind model.Kind, photographerID string) ([]model.Photo, error) {
	args := m.Called(ctx, kind, photographerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Photo), args.Error(1)
}

func (m *mockPhotoUsecase) Get(ctx context.Context, kind model.Kind, photoID string) (*model.Photo, error) {
	args := m.Called(ctx, kind, photoID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Photo), args.Error(1)
}

func (m *mockPhotoUsecase) Delete(ctx context.Context, kind model.Kind, photoID, photographerID string) error {
	args := m.Called(ctx, kind, photoID, photographerID)
	return args.Error(0)
}

var _ usecase.PhotoUsecaseInterface = (*mockPhotoUsecase)(nil)

// mockSettingsUsecase is a shared mock type for the SettingsUsecaseInterface
type mockSettingsUsecase struct {
	mock.Mock
}

func (m *mockSettingsUsecase) Get(ctx context.Context) (*model.Settings, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Settings), args.Error(1)
}

func (m *mockSettingsUsecase) Update(ctx context.Context, update *model.SettingsUpdate, updatedBy string) error {
	args := m.Called(ctx, update, updatedBy)
	return args.Error(0)
}

var _ usecase.SettingsUsecaseInterface = (*mockSettingsUsecase)(nil)

// stubProtect injects a fixed authenticated user the way the auth gate does
func stubProtect(user *authmodel.User) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals("current_user", user)
		return c.Next()
	}
}
