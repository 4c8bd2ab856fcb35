package db_models

import "github.com/google/uuid"

// Review predates Rating and is kept as its own table: the two grew
// independently in the app and are surfaced on different screens.
type Review struct {
	BaseModel
	AccountID  uuid.UUID `gorm:"index"`
	ActivityID int       `gorm:"index"`
	UserName   string
	Rating     int
	Comment    string
}
