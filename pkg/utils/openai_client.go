package utils

import (
	"context"
	"fmt"
	"strings"

	"github.com/pgvector/pgvector-go"
	openai "github.com/sashabaranov/go-openai"
)

const recommenderSystemPrompt = "Tu es un expert en recommandations d'activités touristiques. " +
	"Tu dois analyser les préférences des utilisateurs et recommander les activités les plus pertinentes " +
	"en te basant sur de multiples critères comme l'âge, le budget, les centres d'intérêt, etc."

type OpenAIClient struct {
	client *openai.Client
}

func NewOpenAIRecommendationClient(apiKey string) (*OpenAIClient, error) {
	if !strings.HasPrefix(apiKey, "sk-") {
		return nil, fmt.Errorf("invalid or missing OpenAI API key")
	}
	return &OpenAIClient{client: openai.NewClient(apiKey)}, nil
}

func (c *OpenAIClient) RecommendActivityIDs(ctx context.Context, prompt string) ([]int, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: openai.GPT3Dot5Turbo,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: recommenderSystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: 0.7,
		MaxTokens:   50,
	})
	if err != nil {
		return nil, fmt.Errorf("openai chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("openai: empty response")
	}
	return parseRecommendedIDs(resp.Choices[0].Message.Content), nil
}

func (c *OpenAIClient) GetEmbedding(ctx context.Context, text string) (pgvector.Vector, error) {
	resp, err := c.client.CreateEmbeddings(ctx, openai.EmbeddingRequest{
		Input: []string{text},
		Model: openai.SmallEmbedding3,
	})
	if err != nil {
		return pgvector.Vector{}, fmt.Errorf("openai embeddings: %w", err)
	}
	if len(resp.Data) == 0 {
		return pgvector.Vector{}, fmt.Errorf("openai: no embedding returned")
	}
	return pgvector.NewVector(resp.Data[0].Embedding), nil
}
