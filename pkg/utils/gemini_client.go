package utils

import (
	"context"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiClient implements RecommendationClientInterface on the Gemini free
// tier, as an alternative to the OpenAI-backed client.
type GeminiClient struct {
	client *genai.Client
	model  string
}

func NewGeminiRecommendationClient(apiKey, model string) (*GeminiClient, error) {
	if model == "" {
		model = "gemini-1.5-flash"
	}

	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiClient{client: client, model: model}, nil
}

func (c *GeminiClient) RecommendActivityIDs(ctx context.Context, prompt string) ([]int, error) {
	m := c.client.GenerativeModel(c.model)
	m.SetTemperature(0.1)
	m.SetTopP(0.5)
	m.SetTopK(20)
	m.SetMaxOutputTokens(50)

	resp, err := m.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("gemini: %w", err)
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("gemini: no content")
	}

	content := fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0])
	return parseRecommendedIDs(content), nil
}

func (c *GeminiClient) Close() error {
	return c.client.Close()
}
