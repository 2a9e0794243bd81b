package http_test

import (
	"context"

	"wedding-clickz/internal/auth/domain/model"
	"wedding-clickz/internal/auth/usecase"

	"github.com/stretchr/testify/mock"
)

// mockAuthUsecase is a shared mock type for the AuthUsecaseInterface
type mockAuthUsecase struct {
	mock.Mock
}

func (m *mockAuthUsecase) Login(ctx context.Context, sessionID string) (*model.User, *model.Session, error) {
	args := m.Called(ctx, sessionID)
	var user *model.User
	var session *model.Session
	if args.Get(0) != nil {
		user = args.Get(0).(*model.User)
	}
	if args.Get(1) != nil {
		session = args.Get(1).(*model.Session)
	}
	return user, session, args.Error(2)
}

func (m *mockAuthUsecase) CurrentUser(ctx context.Context, token string) (*model.User, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *mockAuthUsecase) Logout(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// Ensure mockAuthUsecase implements all methods of AuthUsecaseInterface
var _ usecase.AuthUsecaseInterface = (*mockAuthUsecase)(nil)
