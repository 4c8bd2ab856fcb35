package db_models

import "github.com/pgvector/pgvector-go"

// ActivityEmbedding stores one vector per catalog activity for
// similar-activity lookups. Reindexing replaces rows in place.
type ActivityEmbedding struct {
	BaseModel
	ActivityID int             `gorm:"uniqueIndex"`
	Embedding  pgvector.Vector `gorm:"type:vector(1536)"`
}
