package model_test

import (
	"testing"
	"time"

	"wedding-clickz/internal/auth/domain/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestParseFlexibleTime_NativeTime(t *testing.T) {
	want := time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC)

	got, err := model.ParseFlexibleTime(want)
	require.NoError(t, err)
	assert.True(t, got.Equal(want))
}

func TestParseFlexibleTime_PrimitiveDateTime(t *testing.T) {
	want := time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC)

	got, err := model.ParseFlexibleTime(primitive.NewDateTimeFromTime(want))
	require.NoError(t, err)
	assert.True(t, got.Equal(want))
}

func TestParseFlexibleTime_ISOStringWithZone(t *testing.T) {
	got, err := model.ParseFlexibleTime("2026-03-15T10:30:00+00:00")
	require.NoError(t, err)
	assert.True(t, got.Equal(time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC)))
}

func TestParseFlexibleTime_NaiveStringIsUTC(t *testing.T) {
	got, err := model.ParseFlexibleTime("2026-03-15T10:30:00.123456")
	require.NoError(t, err)
	assert.Equal(t, time.UTC, got.Location())
	assert.Equal(t, 10, got.Hour())
}

func TestParseFlexibleTime_Invalid(t *testing.T) {
	_, err := model.ParseFlexibleTime("next tuesday")
	assert.Error(t, err)

	_, err = model.ParseFlexibleTime(nil)
	assert.Error(t, err)

	_, err = model.ParseFlexibleTime(12345)
	assert.Error(t, err)
}

func TestSessionUnmarshalBSON_StringExpiry(t *testing.T) {
	doc := bson.M{
		"user_id":       "user_abc123def456",
		"session_token": "tok",
		"expires_at":    "2026-03-15T10:30:00",
		"created_at":    time.Date(2026, 3, 8, 10, 30, 0, 0, time.UTC),
	}
	raw, err := bson.Marshal(doc)
	require.NoError(t, err)

	var session model.Session
	require.NoError(t, bson.Unmarshal(raw, &session))
	assert.Equal(t, "user_abc123def456", session.UserID)
	assert.True(t, session.ExpiresAt.Equal(time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC)))
}

func TestSessionUnmarshalBSON_NativeExpiry(t *testing.T) {
	expiry := time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC)
	doc := bson.M{
		"user_id":       "user_abc123def456",
		"session_token": "tok",
		"expires_at":    expiry,
		"created_at":    expiry.Add(-7 * 24 * time.Hour),
	}
	raw, err := bson.Marshal(doc)
	require.NoError(t, err)

	var session model.Session
	require.NoError(t, bson.Unmarshal(raw, &session))
	assert.True(t, session.ExpiresAt.Equal(expiry))
}

func TestSessionIsExpired(t *testing.T) {
	now := time.Now().UTC()

	live := model.Session{ExpiresAt: now.Add(time.Hour)}
	assert.False(t, live.IsExpired(now))

	expired := model.Session{ExpiresAt: now.Add(-time.Minute)}
	assert.True(t, expired.IsExpired(now))

	// Still valid at the exact expiry instant
	boundary := model.Session{ExpiresAt: now}
	assert.False(t, boundary.IsExpired(now))
}

func TestNewUserID(t *testing.T) {
	id := model.NewUserID()
	assert.Len(t, id, len("user_")+12)
	assert.Contains(t, id, "user_")

	other := model.NewUserID()
	assert.NotEqual(t, id, other)
}
