// File: internal/services/ai/anthropic_provider.go
package ai

import (
	"context"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// AnthropicProvider adapts the Anthropic Messages API, which takes the
// system prompt as a separate field rather than as a turn in the history.
type AnthropicProvider struct {
	// BaseURL overrides the API endpoint. Empty means the vendor default.
	BaseURL string
}

func (p *AnthropicProvider) client(apiKey string) anthropic.Client {
	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if p.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(p.BaseURL))
	}
	return anthropic.NewClient(opts...)
}

func (p *AnthropicProvider) Generate(ctx context.Context, messages []ChatMessage, cfg GenerationConfig) (*Result, error) {
	client := p.client(cfg.APIKey)

	system, turns := SplitSystem(messages)

	params := anthropic.MessageNewParams{
		Model:       anthropic.Model(cfg.Model),
		MaxTokens:   int64(cfg.MaxTokens),
		Temperature: anthropic.Float(float64(cfg.Temperature)),
		Messages:    convertAnthropicTurns(turns),
	}
	if system != "" {
		params.System = []anthropic.TextBlockParam{{Text: system}}
	}

	msg, err := client.Messages.New(ctx, params)
	if err != nil {
		return nil, err
	}

	var text strings.Builder
	for _, block := range msg.Content {
		switch b := block.AsAny().(type) {
		case anthropic.TextBlock:
			text.WriteString(b.Text)
		}
	}
	if text.Len() == 0 {
		return nil, NewEmptyResponseError(ProviderAnthropic, "Anthropic")
	}

	return &Result{Content: text.String()}, nil
}

// convertAnthropicTurns maps normalized turns onto SDK message params.
// SplitSystem has already flattened roles to user/assistant.
func convertAnthropicTurns(turns []ChatMessage) []anthropic.MessageParam {
	out := make([]anthropic.MessageParam, 0, len(turns))
	for _, t := range turns {
		block := anthropic.NewTextBlock(t.Content)
		if t.Role == RoleUser {
			out = append(out, anthropic.NewUserMessage(block))
		} else {
			out = append(out, anthropic.NewAssistantMessage(block))
		}
	}
	return out
}
