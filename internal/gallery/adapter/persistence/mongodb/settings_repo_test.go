package mongodb_test

import (
	"context"
	"testing"
	"time"

	"wedding-clickz/internal/gallery/adapter/persistence/mongodb"
	"wedding-clickz/internal/gallery/domain/model"
	"wedding-clickz/internal/gallery/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoSettingsRepoTestSuite struct {
	suite.Suite
	client     *mongo.Client
	database   *mongo.Database
	repository repository.SettingsRepository
}

func (suite *MongoSettingsRepoTestSuite) SetupSuite() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI("mongodb://localhost:27017"))
	if err != nil {
		suite.T().Skip("MongoDB not available for testing")
		return
	}
	if err := client.Ping(ctx, nil); err != nil {
		suite.T().Skip("MongoDB not available for testing")
		return
	}

	suite.client = client
	suite.database = client.Database("wedding_clickz_settings_test")
	suite.repository = mongodb.NewMongoSettingsRepository(suite.database)
}

func (suite *MongoSettingsRepoTestSuite) TearDownSuite() {
	if suite.client != nil {
		suite.database.Drop(context.Background())
		suite.client.Disconnect(context.Background())
	}
}

func (suite *MongoSettingsRepoTestSuite) SetupTest() {
	if suite.database != nil {
		suite.database.Collection("settings").DeleteMany(context.Background(), bson.M{})
	}
}

func (suite *MongoSettingsRepoTestSuite) TestGet_NoDocumentReturnsDefaults() {
	settings, err := suite.repository.Get(context.Background())
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Wedding Clickz Photography", settings.PhotographyName)
	assert.Nil(suite.T(), settings.UpdatedAt)
}

func (suite *MongoSettingsRepoTestSuite) TestUpdate_PartialOverlaysDefaults() {
	bride := "Asha"
	update := &model.SettingsUpdate{BrideName: &bride}
	require.NoError(suite.T(), suite.repository.Update(context.Background(), update, "user_abc123def456"))

	settings, err := suite.repository.Get(context.Background())
	require.NoError(suite.T(), err)

	assert.Equal(suite.T(), "Asha", settings.BrideName)
	// untouched fields keep their defaults
	assert.Equal(suite.T(), "info@weddingclickz.com", settings.Email)
	assert.Equal(suite.T(), "user_abc123def456", settings.UpdatedBy)
	require.NotNil(suite.T(), settings.UpdatedAt)
}

func (suite *MongoSettingsRepoTestSuite) TestUpdate_Singleton() {
	name1 := "Studio One"
	require.NoError(suite.T(), suite.repository.Update(context.Background(),
		&model.SettingsUpdate{PhotographyName: &name1}, "user_a"))

	name2 := "Studio Two"
	require.NoError(suite.T(), suite.repository.Update(context.Background(),
		&model.SettingsUpdate{PhotographyName: &name2}, "user_b"))

	count, err := suite.database.Collection("settings").CountDocuments(context.Background(), bson.M{})
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(1), count)

	settings, err := suite.repository.Get(context.Background())
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Studio Two", settings.PhotographyName)
	assert.Equal(suite.T(), "user_b", settings.UpdatedBy)
}

func TestMongoSettingsRepoTestSuite(t *testing.T) {
	suite.Run(t, new(MongoSettingsRepoTestSuite))
}
