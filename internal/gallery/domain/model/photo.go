package model

import (
	"fmt"
	"strings"
	"time"
)

// Kind identifies which gallery a photo belongs to. Each kind is stored in
// its own collection.
type Kind string

const (
	KindWedding    Kind = "wedding"
	KindWall       Kind = "wall"
	KindBackground Kind = "background"
)

// CollectionName returns the MongoDB collection backing the kind
func (k Kind) CollectionName() string {
	switch k {
	case KindWall:
		return "wall_photos"
	case KindBackground:
		return "background_images"
	default:
		return "photos"
	}
}

// PublicListLimit returns the maximum number of documents a public listing
// of this kind may return
func (k Kind) PublicListLimit() int64 {
	if k == KindWedding {
		return 1000
	}
	return 100
}

// ResourceName returns the noun used in user-facing error messages
func (k Kind) ResourceName() string {
	if k == KindBackground {
		return "Image"
	}
	return "Photo"
}

// Valid reports whether k is a known kind
func (k Kind) Valid() bool {
	switch k {
	case KindWedding, KindWall, KindBackground:
		return true
	}
	return false
}

// OwnerListLimit caps the photographer's own metadata listing
const OwnerListLimit int64 = 1000

// Photo is a gallery photo document. The image payload itself is a base64
// data URL stored inline. Wedding photos additionally carry the wedding date
// and optional photographer notes.
type Photo struct {
	PhotoID           string    `json:"photo_id" bson:"photo_id"`
	Filename          string    `json:"filename" bson:"filename"`
	ImageData         string    `json:"image_data,omitempty" bson:"image_data,omitempty"`
	WeddingDate       string    `json:"wedding_date,omitempty" bson:"wedding_date,omitempty"`
	PhotographerNotes *string   `json:"photographer_notes,omitempty" bson:"photographer_notes,omitempty"`
	PhotographerID    string    `json:"photographer_id" bson:"photographer_id"`
	PhotographerName  string    `json:"photographer_name" bson:"photographer_name"`
	UploadTimestamp   string    `json:"upload_timestamp" bson:"upload_timestamp"`
	CreatedAt         time.Time `json:"created_at" bson:"created_at"`
}

// UploadRequest carries the client-supplied fields of a photo upload
type UploadRequest struct {
	Filename          string  `json:"filename"`
	ImageData         string  `json:"image_data"`
	WeddingDate       string  `json:"wedding_date,omitempty"`
	PhotographerNotes *string `json:"photographer_notes,omitempty"`
}

// Validate checks the upload request for the given kind
func (r *UploadRequest) Validate(kind Kind) error {
	if strings.TrimSpace(r.Filename) == "" {
		return fmt.Errorf("filename is required")
	}
	if r.ImageData == "" {
		return fmt.Errorf("image_data is required")
	}
	if kind == KindWedding && strings.TrimSpace(r.WeddingDate) == "" {
		return fmt.Errorf("wedding_date is required")
	}
	return nil
}

// PhotoUploadedEvent is published on the event bus after a successful
// upload. It carries metadata only, never the image payload.
type PhotoUploadedEvent struct {
	PhotoID          string `json:"photo_id"`
	Kind             Kind   `json:"kind"`
	Filename         string `json:"filename"`
	PhotographerName string `json:"photographer_name"`
	UploadTimestamp  string `json:"upload_timestamp"`
}

// EventTypePhotoUploaded is the event bus type for upload notifications
const EventTypePhotoUploaded = "photo.uploaded"
