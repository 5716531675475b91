// File: internal/services/ai/google_provider.go
package ai

import (
	"context"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GoogleProvider adapts the Gemini API through its conversational session
// model: all but the last message seed the session history locally, and
// the last message's content is sent as the new turn. Session start is
// local; the message send is the one network call.
type GoogleProvider struct{}

func (p *GoogleProvider) Generate(ctx context.Context, messages []ChatMessage, cfg GenerationConfig) (*Result, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, err
	}
	defer client.Close()

	model := client.GenerativeModel(cfg.Model)
	model.SetTemperature(cfg.Temperature)
	model.SetMaxOutputTokens(int32(cfg.MaxTokens))

	history, last := SplitHistory(messages)

	session := model.StartChat()
	for _, m := range history {
		session.History = append(session.History, &genai.Content{
			Role:  googleRole(m.Role),
			Parts: []genai.Part{genai.Text(m.Content)},
		})
	}

	resp, err := session.SendMessage(ctx, genai.Text(last.Content))
	if err != nil {
		return nil, err
	}

	var text strings.Builder
	if len(resp.Candidates) > 0 && resp.Candidates[0].Content != nil {
		for _, part := range resp.Candidates[0].Content.Parts {
			if t, ok := part.(genai.Text); ok {
				text.WriteString(string(t))
			}
		}
	}
	if text.Len() == 0 {
		return nil, NewEmptyResponseError(ProviderGoogle, "Google AI")
	}

	return &Result{Content: text.String()}, nil
}

// googleRole maps internal roles onto Gemini's two-role vocabulary.
func googleRole(role string) string {
	if role == RoleUser {
		return "user"
	}
	return "model"
}
