package db_models

import "github.com/google/uuid"

// Favorite marks one catalog activity as saved by one account. ActivityID
// refers to the static catalog, not to a database table.
type Favorite struct {
	BaseModel
	AccountID  uuid.UUID `gorm:"index:idx_fav_account_activity,unique"`
	ActivityID int       `gorm:"index:idx_fav_account_activity,unique"`
}
