package model

import "time"

// SettingsDocID is the _id of the singleton settings document
const SettingsDocID = "site_settings"

// Settings is the photographer's public site configuration. A single
// document holds it, defaults are synthesized when nothing is stored.
type Settings struct {
	PhotographyName string     `json:"photography_name" bson:"photography_name"`
	Email           string     `json:"email" bson:"email"`
	InstagramLink   string     `json:"instagram_link" bson:"instagram_link"`
	YoutubeLink     string     `json:"youtube_link" bson:"youtube_link"`
	WhatsappNumber  string     `json:"whatsapp_number" bson:"whatsapp_number"`
	LocationLink    string     `json:"location_link" bson:"location_link"`
	BrideName       string     `json:"bride_name" bson:"bride_name"`
	GroomName       string     `json:"groom_name" bson:"groom_name"`
	UpdatedAt       *time.Time `json:"updated_at,omitempty" bson:"updated_at,omitempty"`
	UpdatedBy       string     `json:"updated_by,omitempty" bson:"updated_by,omitempty"`
}

// DefaultSettings returns the settings served before any update has been
// stored. Defaults are never persisted.
func DefaultSettings() Settings {
	return Settings{
		PhotographyName: "Wedding Clickz Photography",
		Email:           "info@weddingclickz.com",
		InstagramLink:   "https://instagram.com/weddingclickz",
		YoutubeLink:     "https://youtube.com/@weddingclickz",
		WhatsappNumber:  "1234567890",
		LocationLink:    "https://maps.google.com/?q=Bangalore",
		BrideName:       "",
		GroomName:       "",
	}
}

// SettingsUpdate is a partial settings change. Only non-nil fields are
// written.
type SettingsUpdate struct {
	PhotographyName *string `json:"photography_name,omitempty"`
	Email           *string `json:"email,omitempty"`
	InstagramLink   *string `json:"instagram_link,omitempty"`
	YoutubeLink     *string `json:"youtube_link,omitempty"`
	WhatsappNumber  *string `json:"whatsapp_number,omitempty"`
	LocationLink    *string `json:"location_link,omitempty"`
	BrideName       *string `json:"bride_name,omitempty"`
	GroomName       *string `json:"groom_name,omitempty"`
}

// Fields returns the provided fields as a bson-field → value map
func (u *SettingsUpdate) Fields() map[string]interface{} {
	fields := make(map[string]interface{})
	set := func(key string, val *string) {
		if val != nil {
			fields[key] = *val
		}
	}
	set("photography_name", u.PhotographyName)
	set("email", u.Email)
	set("instagram_link", u.InstagramLink)
	set("youtube_link", u.YoutubeLink)
	set("whatsapp_number", u.WhatsappNumber)
	set("location_link", u.LocationLink)
	set("bride_name", u.BrideName)
	set("groom_name", u.GroomName)
	return fields
}
