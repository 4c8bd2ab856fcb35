package utils

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/pgvector/pgvector-go"
)

// RecommendationClientInterface abstracts the chat model used to pick
// activity IDs for a quiz profile. Implementations must return the IDs in the
// order the model ranked them.
type RecommendationClientInterface interface {
	RecommendActivityIDs(ctx context.Context, prompt string) ([]int, error)
}

type EmbeddingClientInterface interface {
	GetEmbedding(ctx context.Context, text string) (pgvector.Vector, error)
}

// NewRecommendationClient selects a provider by name. An empty or unknown
// provider yields an error so callers can fall back to local scoring.
func NewRecommendationClient(provider, apiKey, model string) (RecommendationClientInterface, error) {
	switch strings.ToLower(provider) {
	case "openai":
		return NewOpenAIRecommendationClient(apiKey)
	case "gemini":
		return NewGeminiRecommendationClient(apiKey, model)
	default:
		return nil, fmt.Errorf("unknown recommendation provider: %q", provider)
	}
}

// parseRecommendedIDs extracts integer IDs from a model response formatted
// as "ID1,ID2,ID3". Tokens that do not parse are skipped.
func parseRecommendedIDs(content string) []int {
	var ids []int
	for _, part := range strings.Split(content, ",") {
		id, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids
}
