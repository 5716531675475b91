// File: internal/services/ai/openai_provider.go
package ai

import (
	"context"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAIProvider adapts the OpenAI chat-completion API. The dall-e-3
// model is special-cased: chat normalization is bypassed and only the
// final message's content is submitted as an image prompt.
type OpenAIProvider struct {
	// BaseURL overrides the API endpoint. Empty means the vendor default.
	BaseURL string
}

func (p *OpenAIProvider) client(apiKey string) *openai.Client {
	cfg := openai.DefaultConfig(apiKey)
	if p.BaseURL != "" {
		cfg.BaseURL = p.BaseURL
	}
	return openai.NewClientWithConfig(cfg)
}

func (p *OpenAIProvider) Generate(ctx context.Context, messages []ChatMessage, cfg GenerationConfig) (*Result, error) {
	client := p.client(cfg.APIKey)

	if cfg.Model == ModelDallE3 {
		return p.generateImage(ctx, client, LastContent(messages))
	}

	chatMessages := make([]openai.ChatCompletionMessage, 0, len(messages))
	for _, m := range messages {
		chatMessages = append(chatMessages, openai.ChatCompletionMessage{
			Role:    m.Role,
			Content: m.Content,
		})
	}

	resp, err := client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       cfg.Model,
		Messages:    chatMessages,
		Temperature: cfg.Temperature,
		MaxTokens:   cfg.MaxTokens,
	})
	if err != nil {
		return nil, err
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return nil, NewEmptyResponseError(ProviderOpenAI, "OpenAI")
	}

	return &Result{Content: resp.Choices[0].Message.Content}, nil
}

func (p *OpenAIProvider) generateImage(ctx context.Context, client *openai.Client, prompt string) (*Result, error) {
	resp, err := client.CreateImage(ctx, openai.ImageRequest{
		Model:  openai.CreateImageModelDallE3,
		Prompt: prompt,
		N:      1,
		Size:   openai.CreateImageSize1024x1024,
	})
	if err != nil {
		return nil, err
	}

	if len(resp.Data) == 0 || resp.Data[0].URL == "" {
		return nil, NewEmptyResponseError(ProviderOpenAI, "OpenAI")
	}

	return &Result{
		Content:  "Image generated successfully",
		ImageURL: resp.Data[0].URL,
	}, nil
}
