package db_models

import "github.com/lib/pq"

type Account struct {
	BaseModel
	FirstName    string
	Email        string `gorm:"uniqueIndex"`
	PasswordHash string
	Role         string
	AvatarURL    string
	AvatarID     string

	// Interests are free-form labels the user picked during onboarding,
	// shown back on the profile screen.
	Interests pq.StringArray `gorm:"type:text[]"`

	Favorites []Favorite `gorm:"foreignKey:AccountID"`
	Ratings   []Rating   `gorm:"foreignKey:AccountID"`
	Reviews   []Review   `gorm:"foreignKey:AccountID"`
}
