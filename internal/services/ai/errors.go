// File: internal/services/ai/errors.go
package ai

import (
	"errors"
	"fmt"
	"strings"
)

type ErrorType string

const (
	ErrTypeInvalidConfig       ErrorType = "INVALID_CONFIG"
	ErrTypeUnsupportedProvider ErrorType = "UNSUPPORTED_PROVIDER"
	ErrTypeInvalidCredential   ErrorType = "INVALID_CREDENTIAL"
	ErrTypeEmptyResponse       ErrorType = "EMPTY_RESPONSE"
	ErrTypeProvider            ErrorType = "PROVIDER"
)

// InvalidCredentialMessage is the single stable user-facing message for a
// rejected API key, regardless of which provider rejected it.
const InvalidCredentialMessage = "Invalid API key. Please check your API key and try again."

// AIError carries the failure classification alongside the provider that
// produced it. Message is the user-facing text and is returned verbatim
// by Error(); diagnostics live in Cause.
type AIError struct {
	Type     ErrorType
	Provider string
	Message  string
	Cause    error
}

func (e *AIError) Error() string { return e.Message }

func (e *AIError) Unwrap() error { return e.Cause }

func NewInvalidConfigError(msg string) *AIError {
	return &AIError{Type: ErrTypeInvalidConfig, Message: msg}
}

func NewUnsupportedProviderError(provider string) *AIError {
	return &AIError{
		Type:     ErrTypeUnsupportedProvider,
		Provider: provider,
		Message:  fmt.Sprintf("Unsupported AI provider: %s", provider),
	}
}

// NewEmptyResponseError marks a remote call that succeeded but yielded no
// usable content. displayName is the vendor's human-readable name.
func NewEmptyResponseError(provider, displayName string) *AIError {
	return &AIError{
		Type:     ErrTypeEmptyResponse,
		Provider: provider,
		Message:  fmt.Sprintf("No response generated from %s", displayName),
	}
}

// WrapProviderError classifies an error returned by an adapter. Errors the
// adapter already classified pass through unchanged. A vendor message
// mentioning "API key" is remapped to the stable invalid-credential
// message; anything else becomes a tagged provider error.
func WrapProviderError(provider string, err error) *AIError {
	var aiErr *AIError
	if errors.As(err, &aiErr) {
		return aiErr
	}
	if strings.Contains(err.Error(), "API key") {
		return &AIError{
			Type:     ErrTypeInvalidCredential,
			Provider: provider,
			Message:  InvalidCredentialMessage,
			Cause:    err,
		}
	}
	return &AIError{
		Type:     ErrTypeProvider,
		Provider: provider,
		Message:  fmt.Sprintf("Error from %s: %v", provider, err),
		Cause:    err,
	}
}

// IsType reports whether err is an AIError of the given type.
func IsType(err error, t ErrorType) bool {
	var aiErr *AIError
	return errors.As(err, &aiErr) && aiErr.Type == t
}
