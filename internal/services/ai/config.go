// File: internal/services/ai/config.go
package ai

const (
	DefaultTemperature float32 = 0.7
	DefaultMaxTokens           = 1000
)

// GenerationConfig is the transient, per-request configuration for one
// generation call. It is never persisted beyond the provider/model pair
// being copied onto the chat record.
type GenerationConfig struct {
	Provider     string  `json:"provider"`
	Model        string  `json:"model"`
	APIKey       string  `json:"apiKey"`
	Temperature  float32 `json:"temperature,omitempty"`
	MaxTokens    int     `json:"maxTokens,omitempty"`
	SystemPrompt string  `json:"systemPrompt,omitempty"`
}

func (c GenerationConfig) Validate() error {
	if c.Provider == "" || c.Model == "" || c.APIKey == "" {
		return NewInvalidConfigError("Missing required configuration: provider, model, or API key")
	}
	return nil
}

// ApplyDefaults fills in temperature and max-token budget when the caller
// omitted them.
func (c GenerationConfig) ApplyDefaults() GenerationConfig {
	if c.Temperature == 0 {
		c.Temperature = DefaultTemperature
	}
	if c.MaxTokens == 0 {
		c.MaxTokens = DefaultMaxTokens
	}
	return c
}
