package models

import "time"

// Profile is the application's user entity. It is keyed by a chosen display
// name rather than credentials; username acts as a soft unique key (lookup
// returns a single arbitrary match if duplicates ever exist).
type Profile struct {
	ID                 string    `json:"id"`
	Username           string    `json:"username"`
	FullName           *string   `json:"full_name"`
	AvatarURL          *string   `json:"avatar_url"`
	Department         string    `json:"department"`
	Stage              string    `json:"stage"`
	LanguagePreference string    `json:"language_preference"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}
