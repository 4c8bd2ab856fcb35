package db_models

import "github.com/google/uuid"

type Rating struct {
	BaseModel
	AccountID  uuid.UUID `gorm:"index:idx_rating_account_activity,unique"`
	ActivityID int       `gorm:"index:idx_rating_account_activity,unique"`
	Rating     int
	Comment    string
}
