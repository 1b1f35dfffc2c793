package recommend

import (
	"context"
	"encoding/json"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

type openaiBackend struct {
	client *openai.Client
	model  string
}

// NewOpenAIRecommender creates a Recommender backed by an OpenAI chat model.
func NewOpenAIRecommender(apiKey, model string) Recommender {
	if model == "" {
		model = openai.GPT4oMini
	}
	return &recommender{backend: &openaiBackend{
		client: openai.NewClient(apiKey),
		model:  model,
	}}
}

func (o *openaiBackend) GenerateJSON(ctx context.Context, prompt string) (string, error) {
	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       o.model,
		Temperature: 0.7,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: "You are a travel planning assistant. Always answer with bare JSON matching the requested schema, no markdown.",
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("openai: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai: no content generated")
	}

	content := cleanJSONResponse(resp.Choices[0].Message.Content)
	if !json.Valid([]byte(content)) {
		return "", fmt.Errorf("openai: response is not valid JSON")
	}
	return content, nil
}
