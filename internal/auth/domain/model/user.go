package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// User represents a photographer account created through the external
// identity provider. The public identifier is UserID, not the Mongo _id.
type User struct {
	UserID    string    `json:"user_id" bson:"user_id"`
	Email     string    `json:"email" bson:"email"`
	Name      string    `json:"name" bson:"name"`
	Picture   string    `json:"picture,omitempty" bson:"picture,omitempty"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

// NewUserID generates a short public user identifier.
func NewUserID() string {
	return "user_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
}

// ValidateFields checks required user fields
func (u *User) ValidateFields() error {
	if strings.TrimSpace(u.UserID) == "" {
		return fmt.Errorf("user_id is required")
	}
	if strings.TrimSpace(u.Email) == "" {
		return fmt.Errorf("email is required")
	}
	return nil
}
