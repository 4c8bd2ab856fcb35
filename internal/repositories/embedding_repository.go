package repositories

import (
	"context"

	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"

	"escapade/internal/models/db_models"
)

type EmbeddingRepository interface {
	Upsert(ctx context.Context, embedding *db_models.ActivityEmbedding) error
	NearestActivityIDs(ctx context.Context, vector pgvector.Vector, limit int) ([]int, error)
}

type embeddingRepository struct {
	db *gorm.DB
}

func NewEmbeddingRepository(db *gorm.DB) EmbeddingRepository {
	return &embeddingRepository{db: db}
}

func (e *embeddingRepository) Upsert(ctx context.Context, embedding *db_models.ActivityEmbedding) error {
	return e.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.
			Where("activity_id = ?", embedding.ActivityID).
			Delete(&db_models.ActivityEmbedding{}).Error
		if err != nil {
			return err
		}
		return tx.Create(embedding).Error
	})
}

func (e *embeddingRepository) NearestActivityIDs(ctx context.Context, vector pgvector.Vector, limit int) ([]int, error) {
	var ids []int

	query := `
        SELECT activity_id
        FROM activity_embeddings
        WHERE deleted_at IS NULL
        ORDER BY embedding <=> $1
        LIMIT $2
    `

	err := e.db.WithContext(ctx).Raw(query, vector.String(), limit).Scan(&ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}
