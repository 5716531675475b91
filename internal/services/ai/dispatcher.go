// File: internal/services/ai/dispatcher.go
package ai

import "context"

// Dispatcher routes one generation call to the adapter registered for the
// requested provider id. It holds no state across calls: concurrent
// invocations are independent and each carries its own configuration and
// message list. No retries, timeouts or cross-provider fallback happen
// here; the caller's context governs cancellation.
type Dispatcher struct {
	adapters map[string]Provider
}

// NewDispatcher returns a dispatcher with all supported vendor adapters
// registered. Adding a provider means adding one adapter, not editing a
// central switch.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		adapters: map[string]Provider{
			ProviderOpenAI:    &OpenAIProvider{},
			ProviderAnthropic: &AnthropicProvider{},
			ProviderGoogle:    &GoogleProvider{},
		},
	}
}

// Register replaces or adds the adapter for a provider id.
func (d *Dispatcher) Register(id string, p Provider) {
	d.adapters[id] = p
}

// Generate validates the request, applies defaults, and invokes the
// matching adapter. Validation failures are reported before any network
// call is attempted.
func (d *Dispatcher) Generate(ctx context.Context, messages []ChatMessage, cfg GenerationConfig) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if len(messages) == 0 {
		return nil, NewInvalidConfigError("Invalid or empty messages array")
	}

	adapter, ok := d.adapters[cfg.Provider]
	if !ok {
		return nil, NewUnsupportedProviderError(cfg.Provider)
	}

	result, err := adapter.Generate(ctx, messages, cfg.ApplyDefaults())
	if err != nil {
		return nil, WrapProviderError(cfg.Provider, err)
	}
	return result, nil
}
