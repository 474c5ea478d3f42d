package utils

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// PlanGeneratorInterface is the one thing the generation loop needs from a
// model provider: prompt in, free text out.
type PlanGeneratorInterface interface {
	GenerateItinerary(ctx context.Context, prompt string) (string, error)
}

// GeminiPlanClient implements PlanGeneratorInterface using Google's Gemini models
type GeminiPlanClient struct {
	client *genai.Client
	model  string
}

// NewGeminiPlanClient creates a new Gemini client
func NewGeminiPlanClient(apiKey, model string) (PlanGeneratorInterface, error) {
	if model == "" {
		model = "gemini-1.5-flash"
	}

	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiPlanClient{
		client: client,
		model:  model,
	}, nil
}

func (c *GeminiPlanClient) GenerateItinerary(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", fmt.Errorf("prompt cannot be empty")
	}

	model := c.client.GenerativeModel(c.model)
	model.SetTemperature(0.4)
	model.SetTopP(0.8)
	model.SetTopK(20)
	model.SetMaxOutputTokens(8192)

	ctxWithTimeout, cancel := context.WithTimeout(ctx, 60*time.Second)
	defer cancel()

	resp, err := model.GenerateContent(ctxWithTimeout, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini API call failed: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no content generated by Gemini")
	}

	return fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0]), nil
}

// Close closes the Gemini client
func (c *GeminiPlanClient) Close() error {
	return c.client.Close()
}

// NewPlanGenerator Factory function to create either OpenAI or Gemini client based on config
func NewPlanGenerator(provider, apiKey, model string) (PlanGeneratorInterface, error) {
	switch strings.ToLower(provider) {
	case "openai":
		return NewOpenAIPlanClient(apiKey, model), nil
	case "gemini":
		return NewGeminiPlanClient(apiKey, model)
	default:
		return nil, fmt.Errorf("unsupported provider: %s", provider)
	}
}
