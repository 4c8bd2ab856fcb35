package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"escapade/internal/catalog"
	"escapade/internal/models/db_models"
	"escapade/internal/models/response_models"
	"escapade/internal/repositories"
	"escapade/pkg/utils"
)

type EmbeddingServiceInterface interface {
	SimilarActivities(ctx context.Context, activityID, limit int) ([]response_models.ActivityResponse, error)

	// ReindexCatalog recomputes one embedding per catalog entry and returns
	// how many were written.
	ReindexCatalog(ctx context.Context) (int, error)
}

type EmbeddingService struct {
	activities    []catalog.Activity
	embeddingRepo repositories.EmbeddingRepository
	client        utils.EmbeddingClientInterface
}

func NewEmbeddingService(
	activities []catalog.Activity,
	embeddingRepo repositories.EmbeddingRepository,
	client utils.EmbeddingClientInterface,
) EmbeddingServiceInterface {
	return &EmbeddingService{
		activities:    activities,
		embeddingRepo: embeddingRepo,
		client:        client,
	}
}

func (e *EmbeddingService) SimilarActivities(ctx context.Context, activityID, limit int) ([]response_models.ActivityResponse, error) {
	activity, ok := catalog.ByID(e.activities, activityID)
	if !ok {
		return nil, utils.ErrActivityNotFound
	}
	if e.client == nil {
		return nil, utils.ErrAIUnavailable
	}
	if limit <= 0 {
		limit = 5
	}

	vector, err := e.client.GetEmbedding(ctx, embeddingText(activity))
	if err != nil {
		log.Printf("Error embedding activity %d: %v", activityID, err)
		return nil, utils.ErrAIUnavailable
	}

	// One extra so the activity itself can be dropped from its own results.
	ids, err := e.embeddingRepo.NearestActivityIDs(ctx, vector, limit+1)
	if err != nil {
		log.Printf("Error searching embeddings: %v", err)
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.ActivityResponse, 0, limit)
	for _, id := range ids {
		if id == activityID {
			continue
		}
		if a, ok := catalog.ByID(e.activities, id); ok {
			responses = append(responses, response_models.FromActivity(a))
		}
		if len(responses) == limit {
			break
		}
	}
	return responses, nil
}

func (e *EmbeddingService) ReindexCatalog(ctx context.Context) (int, error) {
	if e.client == nil {
		return 0, utils.ErrAIUnavailable
	}

	indexed := 0
	for _, activity := range e.activities {
		vector, err := e.client.GetEmbedding(ctx, embeddingText(activity))
		if err != nil {
			log.Printf("Error embedding activity %d: %v", activity.ID, err)
			continue
		}

		err = e.embeddingRepo.Upsert(ctx, &db_models.ActivityEmbedding{
			ActivityID: activity.ID,
			Embedding:  vector,
		})
		if err != nil {
			log.Printf("Error storing embedding for activity %d: %v", activity.ID, err)
			return indexed, utils.ErrDatabaseError
		}
		indexed++
	}
	return indexed, nil
}

func embeddingText(a catalog.Activity) string {
	return fmt.Sprintf("%s. %s. %s", a.Title, a.Description, strings.Join(a.Tags, ", "))
}
