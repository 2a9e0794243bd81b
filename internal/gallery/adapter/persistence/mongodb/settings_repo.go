package mongodb

import (
	"context"
	"errors"
	"time"

	"wedding-clickz/internal/gallery/domain/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const settingsCollectionName = "settings"

// MongoSettingsRepository implements the SettingsRepository interface using
// MongoDB. All reads and writes target a single fixed document.
type MongoSettingsRepository struct {
	collection *mongo.Collection
}

// NewMongoSettingsRepository creates a new MongoDB settings repository
func NewMongoSettingsRepository(db *mongo.Database) *MongoSettingsRepository {
	return &MongoSettingsRepository{
		collection: db.Collection(settingsCollectionName),
	}
}

// Get returns the stored settings overlaid on the defaults. Fields never
// written keep their default values, a missing document yields pure
// defaults.
func (r *MongoSettingsRepository) Get(ctx context.Context) (*model.Settings, error) {
	settings := model.DefaultSettings()

	opts := options.FindOne().SetProjection(bson.M{"_id": 0})
	err := r.collection.FindOne(ctx, bson.M{"_id": model.SettingsDocID}, opts).Decode(&settings)
	if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, err
	}

	return &settings, nil
}

// Update upserts the provided fields into the singleton document, stamping
// the updater and time
func (r *MongoSettingsRepository) Update(ctx context.Context, update *model.SettingsUpdate, updatedBy string) error {
	fields := update.Fields()
	fields["updated_at"] = time.Now().UTC()
	fields["updated_by"] = updatedBy

	_, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": model.SettingsDocID},
		bson.M{"$set": fields},
		options.Update().SetUpsert(true),
	)
	return err
}
