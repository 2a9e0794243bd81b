package model

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Session represents a persisted login session. One session per user: the
// session for a user is replaced on every login.
type Session struct {
	UserID       string    `json:"user_id" bson:"user_id"`
	SessionToken string    `json:"session_token" bson:"session_token"`
	ExpiresAt    time.Time `json:"expires_at" bson:"expires_at"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
}

// IsExpired reports whether the session has passed its expiry instant.
// A session is still valid at the exact expiry instant.
func (s *Session) IsExpired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}

// sessionDoc mirrors Session but keeps expires_at untyped so documents
// written by older deployments (ISO-8601 strings instead of native dates)
// still decode.
type sessionDoc struct {
	UserID       string      `bson:"user_id"`
	SessionToken string      `bson:"session_token"`
	ExpiresAt    interface{} `bson:"expires_at"`
	CreatedAt    time.Time   `bson:"created_at"`
}

// UnmarshalBSON decodes a session document, normalizing expires_at from
// either a native datetime or an ISO-8601 string.
func (s *Session) UnmarshalBSON(data []byte) error {
	var doc sessionDoc
	if err := bson.Unmarshal(data, &doc); err != nil {
		return err
	}

	expiresAt, err := ParseFlexibleTime(doc.ExpiresAt)
	if err != nil {
		return fmt.Errorf("invalid expires_at: %w", err)
	}

	s.UserID = doc.UserID
	s.SessionToken = doc.SessionToken
	s.ExpiresAt = expiresAt
	s.CreatedAt = doc.CreatedAt
	return nil
}

// Timestamp layouts accepted for string-encoded expiry values. Layouts
// without a zone are interpreted as UTC.
var flexibleTimeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999",
	"2006-01-02T15:04:05",
}

// ParseFlexibleTime converts a decoded BSON value into a UTC time. It
// accepts native datetimes and ISO-8601 strings, naive strings are UTC.
func ParseFlexibleTime(value interface{}) (time.Time, error) {
	switch v := value.(type) {
	case time.Time:
		return v.UTC(), nil
	case primitive.DateTime:
		return v.Time().UTC(), nil
	case string:
		for _, layout := range flexibleTimeLayouts {
			if t, err := time.ParseInLocation(layout, v, time.UTC); err == nil {
				return t.UTC(), nil
			}
		}
		return time.Time{}, fmt.Errorf("unrecognized timestamp format: %q", v)
	case nil:
		return time.Time{}, fmt.Errorf("timestamp is missing")
	default:
		return time.Time{}, fmt.Errorf("unsupported timestamp type %T", value)
	}
}
