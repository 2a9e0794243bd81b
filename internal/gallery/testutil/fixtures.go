// Package testutil provides fixtures shared by the gallery module tests.
package testutil

import (
	"time"

	"wedding-clickz/internal/gallery/domain/model"
)

// NewTestPhoto returns a wedding photo fixture owned by the given
// photographer
func NewTestPhoto(photographerID string) *model.Photo {
	now := time.Now().UTC()
	notes := "Golden hour shots"
	return &model.Photo{
		PhotoID:           "11111111-2222-3333-4444-555555555555",
		Filename:          "ceremony.jpg",
		ImageData:         "data:image/jpeg;base64,dGVzdA==",
		WeddingDate:       "2026-06-20",
		PhotographerNotes: &notes,
		PhotographerID:    photographerID,
		PhotographerName:  "Test Photographer",
		UploadTimestamp:   now.Format(time.RFC3339Nano),
		CreatedAt:         now,
	}
}

// NewTestUploadRequest returns a valid wedding upload request
func NewTestUploadRequest() *model.UploadRequest {
	notes := "Golden hour shots"
	return &model.UploadRequest{
		Filename:          "ceremony.jpg",
		ImageData:         "data:image/jpeg;base64,dGVzdA==",
		WeddingDate:       "2026-06-20",
		PhotographerNotes: &notes,
	}
}

// StringPtr returns a pointer to the given string
func StringPtr(s string) *string {
	return &s
}
