package usecase_test

import (
	"context"
	"testing"
	"time"

	"wedding-clickz/internal/auth/config"
	"wedding-clickz/internal/auth/domain/model"
	"wedding-clickz/internal/auth/domain/repository"
	"wedding-clickz/internal/auth/testutil"
	"wedding-clickz/internal/auth/usecase"
	apperrors "wedding-clickz/internal/shared/errors"
	"wedding-clickz/internal/shared/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type mockAuthRepository struct {
	mock.Mock
}

func (m *mockAuthRepository) CreateUser(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *mockAuthRepository) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *mockAuthRepository) GetUserByID(ctx context.Context, userID string) (*model.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *mockAuthRepository) UpdateUserProfile(ctx context.Context, userID, name, picture string) error {
	args := m.Called(ctx, userID, name, picture)
	return args.Error(0)
}

func (m *mockAuthRepository) UpsertSession(ctx context.Context, session *model.Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *mockAuthRepository) GetSessionByToken(ctx context.Context, token string) (*model.Session, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Session), args.Error(1)
}

func (m *mockAuthRepository) DeleteUserSessions(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

type mockIdentityClient struct {
	mock.Mock
}

func (m *mockIdentityClient) ExchangeSession(ctx context.Context, sessionID string) (*repository.IdentityProfile, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.IdentityProfile), args.Error(1)
}

type AuthUsecaseTestSuite struct {
	suite.Suite
	repo     *mockAuthRepository
	identity *mockIdentityClient
	uc       *usecase.AuthUsecase
}

func (suite *AuthUsecaseTestSuite) SetupTest() {
	suite.repo = &mockAuthRepository{}
	suite.identity = &mockIdentityClient{}
	cfg := &config.Config{
		SessionTTL: 168 * time.Hour,
	}
	suite.uc = usecase.NewAuthUsecase(suite.repo, suite.identity, cfg, logger.NewLogger())
}

func (suite *AuthUsecaseTestSuite) TestLogin_FirstLoginCreatesUser() {
	// Arrange
	profile := testutil.NewTestProfile()
	suite.identity.On("ExchangeSession", mock.Anything, "session-id").Return(profile, nil)
	suite.repo.On("GetUserByEmail", mock.Anything, profile.Email).Return(nil, apperrors.ErrUserNotFound)
	suite.repo.On("CreateUser", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
		return u.Email == profile.Email && u.Name == profile.Name
	})).Return(nil)
	suite.repo.On("UpsertSession", mock.Anything, mock.MatchedBy(func(s *model.Session) bool {
		return s.SessionToken == profile.SessionToken
	})).Return(nil)

	// Act
	user, session, err := suite.uc.Login(context.Background(), "session-id")

	// Assert
	require.NoError(suite.T(), err)
	assert.Contains(suite.T(), user.UserID, "user_")
	assert.Len(suite.T(), user.UserID, len("user_")+12)
	assert.Equal(suite.T(), profile.SessionToken, session.SessionToken)
	assert.WithinDuration(suite.T(), time.Now().UTC().Add(168*time.Hour), session.ExpiresAt, 5*time.Second)
	suite.repo.AssertExpectations(suite.T())
}

func (suite *AuthUsecaseTestSuite) TestLogin_ExistingUserKeepsID() {
	// Arrange
	profile := testutil.NewTestProfile()
	profile.Name = "Renamed Photographer"
	existing := testutil.NewTestUser()
	suite.identity.On("ExchangeSession", mock.Anything, "session-id").Return(profile, nil)
	suite.repo.On("GetUserByEmail", mock.Anything, profile.Email).Return(existing, nil)
	suite.repo.On("UpdateUserProfile", mock.Anything, existing.UserID, profile.Name, profile.Picture).Return(nil)
	suite.repo.On("UpsertSession", mock.Anything, mock.Anything).Return(nil)

	// Act
	user, _, err := suite.uc.Login(context.Background(), "session-id")

	// Assert
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), existing.UserID, user.UserID)
	assert.Equal(suite.T(), "Renamed Photographer", user.Name)
	suite.repo.AssertNotCalled(suite.T(), "CreateUser")
}

func (suite *AuthUsecaseTestSuite) TestLogin_EmptySessionID() {
	// Act
	_, _, err := suite.uc.Login(context.Background(), "  ")

	// Assert
	require.Error(suite.T(), err)
	var appErr *apperrors.AppError
	require.ErrorAs(suite.T(), err, &appErr)
	assert.Equal(suite.T(), apperrors.ErrorTypeValidation, appErr.Type)
	suite.identity.AssertNotCalled(suite.T(), "ExchangeSession")
}

func (suite *AuthUsecaseTestSuite) TestLogin_ProviderRejects() {
	// Arrange
	suite.identity.On("ExchangeSession", mock.Anything, "bad-session").
		Return(nil, apperrors.NewAuthenticationError("Invalid session ID"))

	// Act
	_, _, err := suite.uc.Login(context.Background(), "bad-session")

	// Assert
	require.Error(suite.T(), err)
	assert.True(suite.T(), apperrors.IsAuthentication(err))
	suite.repo.AssertNotCalled(suite.T(), "UpsertSession")
}

func (suite *AuthUsecaseTestSuite) TestCurrentUser_Success() {
	// Arrange
	user := testutil.NewTestUser()
	session := testutil.NewTestSession(user.UserID)
	suite.repo.On("GetSessionByToken", mock.Anything, session.SessionToken).Return(session, nil)
	suite.repo.On("GetUserByID", mock.Anything, user.UserID).Return(user, nil)

	// Act
	got, err := suite.uc.CurrentUser(context.Background(), session.SessionToken)

	// Assert
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), user.UserID, got.UserID)
}

func (suite *AuthUsecaseTestSuite) TestCurrentUser_EmptyToken() {
	// Act
	_, err := suite.uc.CurrentUser(context.Background(), "")

	// Assert
	assert.ErrorIs(suite.T(), err, apperrors.ErrNotAuthenticated)
	suite.repo.AssertNotCalled(suite.T(), "GetSessionByToken")
}

func (suite *AuthUsecaseTestSuite) TestCurrentUser_UnknownToken() {
	// Arrange
	suite.repo.On("GetSessionByToken", mock.Anything, "unknown").Return(nil, apperrors.ErrInvalidSession)

	// Act
	_, err := suite.uc.CurrentUser(context.Background(), "unknown")

	// Assert
	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidSession)
}

func (suite *AuthUsecaseTestSuite) TestCurrentUser_ExpiredSessionStaysStored() {
	// Arrange
	session := testutil.NewExpiredSession("user_abc123def456")
	suite.repo.On("GetSessionByToken", mock.Anything, session.SessionToken).Return(session, nil)

	// Act
	_, err := suite.uc.CurrentUser(context.Background(), session.SessionToken)

	// Assert
	assert.ErrorIs(suite.T(), err, apperrors.ErrSessionExpired)
	suite.repo.AssertNotCalled(suite.T(), "DeleteUserSessions")
	suite.repo.AssertNotCalled(suite.T(), "GetUserByID")
}

func (suite *AuthUsecaseTestSuite) TestCurrentUser_UserDeleted() {
	// Arrange
	session := testutil.NewTestSession("user_gone")
	suite.repo.On("GetSessionByToken", mock.Anything, session.SessionToken).Return(session, nil)
	suite.repo.On("GetUserByID", mock.Anything, "user_gone").Return(nil, apperrors.ErrUserNotFound)

	// Act
	_, err := suite.uc.CurrentUser(context.Background(), session.SessionToken)

	// Assert
	assert.ErrorIs(suite.T(), err, apperrors.ErrUserNotFound)
}

func (suite *AuthUsecaseTestSuite) TestLogout_DeletesAllSessions() {
	// Arrange
	suite.repo.On("DeleteUserSessions", mock.Anything, "user_abc123def456").Return(nil)

	// Act
	err := suite.uc.Logout(context.Background(), "user_abc123def456")

	// Assert
	require.NoError(suite.T(), err)
	suite.repo.AssertExpectations(suite.T())
}

func TestAuthUsecaseTestSuite(t *testing.T) {
	suite.Run(t, new(AuthUsecaseTestSuite))
}
