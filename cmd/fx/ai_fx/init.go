package ai_fx

import (
	"log"
	"os"

	"go.uber.org/fx"

	"escapade/pkg/utils"
)

var Module = fx.Provide(
	provideRecommendationClient, provideEmbeddingClient)

// provideRecommendationClient builds the chat client from AI_PROVIDER and the
// matching API key. A missing or misconfigured provider yields a nil client;
// the recommendation service then scores locally.
func provideRecommendationClient() utils.RecommendationClientInterface {
	provider := os.Getenv("AI_PROVIDER")
	if provider == "" {
		log.Println("AI_PROVIDER not set, recommendations will use local scoring")
		return nil
	}

	apiKey := os.Getenv("OPENAI_API_KEY")
	if provider == "gemini" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}

	client, err := utils.NewRecommendationClient(provider, apiKey, os.Getenv("AI_MODEL"))
	if err != nil {
		log.Printf("Recommendation client disabled: %v", err)
		return nil
	}
	return client
}

// Embeddings are OpenAI-only: pgvector columns are sized for its vectors.
func provideEmbeddingClient() utils.EmbeddingClientInterface {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		log.Println("OPENAI_API_KEY not set, similar-activities search disabled")
		return nil
	}

	client, err := utils.NewOpenAIRecommendationClient(apiKey)
	if err != nil {
		log.Printf("Embedding client disabled: %v", err)
		return nil
	}
	return client
}
