package utils

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAIPlanClient implements PlanGeneratorInterface using chat completions.
type OpenAIPlanClient struct {
	client *openai.Client
	model  string
}

func NewOpenAIPlanClient(apiKey, model string) PlanGeneratorInterface {
	if model == "" {
		model = openai.GPT4oMini
	}
	return &OpenAIPlanClient{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

func (c *OpenAIPlanClient) GenerateItinerary(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: 0.4,
	})
	if err != nil {
		return "", fmt.Errorf("openai API call failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no content generated by OpenAI")
	}
	return resp.Choices[0].Message.Content, nil
}
