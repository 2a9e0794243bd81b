package mongodb

import (
	"context"
	"errors"

	"wedding-clickz/internal/gallery/domain/model"
	apperrors "wedding-clickz/internal/shared/errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoPhotoRepository implements the PhotoRepository interface using
// MongoDB. Each photo kind lives in its own collection.
type MongoPhotoRepository struct {
	db *mongo.Database
}

// NewMongoPhotoRepository creates a new MongoDB photo repository
func NewMongoPhotoRepository(db *mongo.Database) (*MongoPhotoRepository, error) {
	repo := &MongoPhotoRepository{db: db}

	ctx := context.Background()
	for _, kind := range []model.Kind{model.KindWedding, model.KindWall, model.KindBackground} {
		coll := repo.collection(kind)

		photoIDIndex := mongo.IndexModel{
			Keys:    bson.D{{Key: "photo_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		}
		if _, err := coll.Indexes().CreateOne(ctx, photoIDIndex); err != nil {
			return nil, err
		}

		// Compound index serving both the listing sort and the per-owner
		// filter
		ownerIndex := mongo.IndexModel{
			Keys: bson.D{
				{Key: "photographer_id", Value: 1},
				{Key: "created_at", Value: -1},
			},
		}
		if _, err := coll.Indexes().CreateOne(ctx, ownerIndex); err != nil {
			return nil, err
		}
	}

	return repo, nil
}

func (r *MongoPhotoRepository) collection(kind model.Kind) *mongo.Collection {
	return r.db.Collection(kind.CollectionName())
}

// Insert stores a new photo document
func (r *MongoPhotoRepository) Insert(ctx context.Context, kind model.Kind, photo *model.Photo) error {
	_, err := r.collection(kind).InsertOne(ctx, photo)
	return err
}

// ListPublic returns the newest photos of a kind, image payload included
func (r *MongoPhotoRepository) ListPublic(ctx context.Context, kind model.Kind, limit int64) ([]model.Photo, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit).
		SetProjection(bson.M{"_id": 0})

	cursor, err := r.collection(kind).Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	photos := make([]model.Photo, 0)
	if err := cursor.All(ctx, &photos); err != nil {
		return nil, err
	}
	return photos, nil
}

// ListByPhotographer returns a photographer's photos newest first with the
// image payload projected out
func (r *MongoPhotoRepository) ListByPhotographer(ctx context.Context, kind model.Kind, photographerID string, limit int64) ([]model.Photo, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit).
		SetProjection(bson.M{"_id": 0, "image_data": 0})

	cursor, err := r.collection(kind).Find(ctx, bson.M{"photographer_id": photographerID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	photos := make([]model.Photo, 0)
	if err := cursor.All(ctx, &photos); err != nil {
		return nil, err
	}
	return photos, nil
}

// GetByID retrieves a single photo by its public id
func (r *MongoPhotoRepository) GetByID(ctx context.Context, kind model.Kind, photoID string) (*model.Photo, error) {
	opts := options.FindOne().SetProjection(bson.M{"_id": 0})

	var photo model.Photo
	err := r.collection(kind).FindOne(ctx, bson.M{"photo_id": photoID}, opts).Decode(&photo)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &photo, nil
}

// DeleteOwned atomically deletes a photo if the caller owns it. When the
// guarded delete matches nothing, a second read distinguishes a missing
// photo from one owned by someone else.
func (r *MongoPhotoRepository) DeleteOwned(ctx context.Context, kind model.Kind, photoID, photographerID string) error {
	filter := bson.M{
		"photo_id":        photoID,
		"photographer_id": photographerID,
	}

	err := r.collection(kind).FindOneAndDelete(ctx, filter).Err()
	if err == nil {
		return nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return err
	}

	countErr := r.collection(kind).FindOne(ctx, bson.M{"photo_id": photoID},
		options.FindOne().SetProjection(bson.M{"photo_id": 1})).Err()
	if errors.Is(countErr, mongo.ErrNoDocuments) {
		return apperrors.ErrNotFound
	}
	if countErr != nil {
		return countErr
	}
	return apperrors.ErrForbidden
}
