package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"wedding-clickz/internal/auth/domain/model"
	apperrors "wedding-clickz/internal/shared/errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	usersCollectionName    = "users"
	sessionsCollectionName = "user_sessions"
)

// MongoAuthRepository implements the AuthRepository interface using MongoDB
type MongoAuthRepository struct {
	db                 *mongo.Database
	usersCollection    *mongo.Collection
	sessionsCollection *mongo.Collection
}

// NewMongoAuthRepository creates a new MongoDB auth repository
func NewMongoAuthRepository(db *mongo.Database) (*MongoAuthRepository, error) {
	repo := &MongoAuthRepository{
		db:                 db,
		usersCollection:    db.Collection(usersCollectionName),
		sessionsCollection: db.Collection(sessionsCollectionName),
	}

	// Create indexes
	ctx := context.Background()

	// Email index for users (unique)
	emailIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	}

	_, err := repo.usersCollection.Indexes().CreateOne(ctx, emailIndex)
	if err != nil {
		return nil, err
	}

	// Public user id index (unique)
	userIDIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "user_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	}

	_, err = repo.usersCollection.Indexes().CreateOne(ctx, userIDIndex)
	if err != nil {
		return nil, err
	}

	// One session per user: the login upsert keys on user_id
	sessionUserIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "user_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	}

	_, err = repo.sessionsCollection.Indexes().CreateOne(ctx, sessionUserIndex)
	if err != nil {
		return nil, err
	}

	// Token index for the auth gate lookup. Expiry is checked on read, so no
	// TTL index: expired documents stay until the next login overwrites them.
	tokenIndex := mongo.IndexModel{
		Keys: bson.D{{Key: "session_token", Value: 1}},
	}

	_, err = repo.sessionsCollection.Indexes().CreateOne(ctx, tokenIndex)
	if err != nil {
		return nil, err
	}

	return repo, nil
}

// CreateUser creates a new user document
func (r *MongoAuthRepository) CreateUser(ctx context.Context, user *model.User) error {
	if user == nil {
		return fmt.Errorf("user cannot be nil")
	}

	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now

	if err := user.ValidateFields(); err != nil {
		return err
	}

	_, err := r.usersCollection.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperrors.NewValidationError("email is already registered").WithCause(err)
		}
		return err
	}

	return nil
}

// GetUserByEmail retrieves a user by email
func (r *MongoAuthRepository) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	if email == "" {
		return nil, fmt.Errorf("email cannot be empty")
	}

	var user model.User
	err := r.usersCollection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// GetUserByID retrieves a user by its public user_id
func (r *MongoAuthRepository) GetUserByID(ctx context.Context, userID string) (*model.User, error) {
	if userID == "" {
		return nil, fmt.Errorf("user ID cannot be empty")
	}

	var user model.User
	err := r.usersCollection.FindOne(ctx, bson.M{"user_id": userID}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// UpdateUserProfile refreshes the provider-sourced display fields
func (r *MongoAuthRepository) UpdateUserProfile(ctx context.Context, userID, name, picture string) error {
	update := bson.M{
		"$set": bson.M{
			"name":       name,
			"picture":    picture,
			"updated_at": time.Now().UTC(),
		},
	}

	result, err := r.usersCollection.UpdateOne(ctx, bson.M{"user_id": userID}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}

// UpsertSession replaces the user's session, keying on user_id so each user
// holds at most one active session
func (r *MongoAuthRepository) UpsertSession(ctx context.Context, session *model.Session) error {
	filter := bson.M{"user_id": session.UserID}
	update := bson.M{
		"$set": bson.M{
			"user_id":       session.UserID,
			"session_token": session.SessionToken,
			"expires_at":    session.ExpiresAt,
			"created_at":    session.CreatedAt,
		},
	}

	_, err := r.sessionsCollection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	return err
}

// GetSessionByToken retrieves a session by its token
func (r *MongoAuthRepository) GetSessionByToken(ctx context.Context, token string) (*model.Session, error) {
	var session model.Session
	err := r.sessionsCollection.FindOne(ctx, bson.M{"session_token": token}).Decode(&session)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrInvalidSession
		}
		return nil, err
	}
	return &session, nil
}

// DeleteUserSessions removes all sessions belonging to a user
func (r *MongoAuthRepository) DeleteUserSessions(ctx context.Context, userID string) error {
	_, err := r.sessionsCollection.DeleteMany(ctx, bson.M{"user_id": userID})
	return err
}
