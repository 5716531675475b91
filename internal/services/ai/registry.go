// File: internal/services/ai/registry.go
package ai

// Provider ids understood by the dispatcher.
const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
	ProviderGoogle    = "google"
)

// ModelDallE3 bypasses chat normalization entirely; see OpenAIProvider.
const ModelDallE3 = "dall-e-3"

// ModelInfo describes one generation endpoint offered by a provider.
type ModelInfo struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	MaxTokens         int      `json:"maxTokens"`
	ContextWindow     int      `json:"contextWindow"`
	SupportedFeatures []string `json:"supportedFeatures"`
}

// ProviderInfo is one entry of the static provider catalog.
type ProviderInfo struct {
	ID               string      `json:"id"`
	Name             string      `json:"name"`
	Models           []ModelInfo `json:"models"`
	MaxContextWindow int         `json:"maxContextWindow"`
	SupportsImages   bool        `json:"supportsImages"`
}

// providers is loaded once and never mutated at runtime.
var providers = []ProviderInfo{
	{
		ID:               ProviderOpenAI,
		Name:             "OpenAI",
		MaxContextWindow: 16000,
		SupportsImages:   true,
		Models: []ModelInfo{
			{ID: "gpt-4", Name: "GPT-4", MaxTokens: 8000, ContextWindow: 8000, SupportedFeatures: []string{"chat", "function-calling"}},
			{ID: "gpt-3.5-turbo", Name: "GPT-3.5 Turbo", MaxTokens: 4000, ContextWindow: 4000, SupportedFeatures: []string{"chat", "function-calling"}},
			{ID: ModelDallE3, Name: "DALL-E 3", MaxTokens: 0, ContextWindow: 0, SupportedFeatures: []string{"image-generation"}},
		},
	},
	{
		ID:               ProviderAnthropic,
		Name:             "Anthropic",
		MaxContextWindow: 100000,
		SupportsImages:   false,
		Models: []ModelInfo{
			{ID: "claude-2", Name: "Claude 2", MaxTokens: 100000, ContextWindow: 100000, SupportedFeatures: []string{"chat"}},
			{ID: "claude-instant-1", Name: "Claude Instant", MaxTokens: 100000, ContextWindow: 100000, SupportedFeatures: []string{"chat"}},
		},
	},
	{
		ID:               ProviderGoogle,
		Name:             "Google AI",
		MaxContextWindow: 32000,
		SupportsImages:   true,
		Models: []ModelInfo{
			{ID: "gemini-pro", Name: "Gemini Pro", MaxTokens: 32000, ContextWindow: 32000, SupportedFeatures: []string{"chat", "function-calling"}},
			{ID: "gemini-pro-vision", Name: "Gemini Pro Vision", MaxTokens: 32000, ContextWindow: 32000, SupportedFeatures: []string{"chat", "image-understanding"}},
		},
	},
}

// Providers returns the ordered catalog of supported providers. Callers
// must not mutate the returned slice.
func Providers() []ProviderInfo {
	return providers
}

// FindProvider looks up a catalog entry by id. The lookup is advisory:
// dispatch validates against its adapter table, not the catalog.
func FindProvider(id string) (ProviderInfo, bool) {
	for _, p := range providers {
		if p.ID == id {
			return p, true
		}
	}
	return ProviderInfo{}, false
}

// FindModel looks up a model within this provider's entry.
func (p ProviderInfo) FindModel(id string) (ModelInfo, bool) {
	for _, m := range p.Models {
		if m.ID == id {
			return m, true
		}
	}
	return ModelInfo{}, false
}
