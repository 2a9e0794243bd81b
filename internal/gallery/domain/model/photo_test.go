package model_test

import (
	"testing"

	"wedding-clickz/internal/gallery/domain/model"

	"github.com/stretchr/testify/assert"
)

func TestKindCollectionName(t *testing.T) {
	assert.Equal(t, "photos", model.KindWedding.CollectionName())
	assert.Equal(t, "wall_photos", model.KindWall.CollectionName())
	assert.Equal(t, "background_images", model.KindBackground.CollectionName())
}

func TestKindPublicListLimit(t *testing.T) {
	assert.Equal(t, int64(1000), model.KindWedding.PublicListLimit())
	assert.Equal(t, int64(100), model.KindWall.PublicListLimit())
	assert.Equal(t, int64(100), model.KindBackground.PublicListLimit())
}

func TestKindValid(t *testing.T) {
	assert.True(t, model.KindWedding.Valid())
	assert.True(t, model.KindWall.Valid())
	assert.True(t, model.KindBackground.Valid())
	assert.False(t, model.Kind("portrait").Valid())
}

func TestUploadRequestValidate(t *testing.T) {
	valid := model.UploadRequest{
		Filename:    "ceremony.jpg",
		ImageData:   "data:image/jpeg;base64,dGVzdA==",
		WeddingDate: "2026-06-20",
	}
	assert.NoError(t, valid.Validate(model.KindWedding))

	noFilename := valid
	noFilename.Filename = "  "
	assert.Error(t, noFilename.Validate(model.KindWedding))

	noImage := valid
	noImage.ImageData = ""
	assert.Error(t, noImage.Validate(model.KindWedding))

	noDate := valid
	noDate.WeddingDate = ""
	assert.Error(t, noDate.Validate(model.KindWedding))

	// wall and background uploads do not carry a wedding date
	assert.NoError(t, noDate.Validate(model.KindWall))
	assert.NoError(t, noDate.Validate(model.KindBackground))
}
