package llm

import (
	"context"
	"fmt"
)

const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"

	DefaultGeminiModel = "gemini-1.5-flash"
	DefaultOpenAIModel = "gpt-4o-mini"
)

// Provider is the transport to a remote generative-language API. Implementations
// issue exactly one remote call per method invocation and report HTTP-level
// failures as *TransportError so callers never need to parse error strings.
type Provider interface {
	Generate(ctx context.Context, model string, prompt string) (string, error)
	ListModels(ctx context.Context) ([]string, error)
}

type Config struct {
	Provider string
	APIKey   string
	Model    string
	BaseURL  string
}

// TransportError carries the status code reported by the remote API.
type TransportError struct {
	StatusCode int
	Status     string
	Err        error
}

func (e *TransportError) Error() string {
	if e.Status != "" {
		return fmt.Sprintf("status %d %s: %v", e.StatusCode, e.Status, e.Err)
	}
	return fmt.Sprintf("status %d: %v", e.StatusCode, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

func defaultModel(provider string) string {
	if provider == ProviderOpenAI {
		return DefaultOpenAIModel
	}
	return DefaultGeminiModel
}
