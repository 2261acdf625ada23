package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"resume-tailor/internal/llm/openai"
)

// Provider names accepted by New.
const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

// Client completes a single text prompt.
type Client interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// ErrNotConfigured is returned by the placeholder client.
var ErrNotConfigured = errors.New("LLM provider not configured")

// PlaceholderClient stands in when no API key is available.
type PlaceholderClient struct{}

// Complete returns ErrNotConfigured.
func (PlaceholderClient) Complete(ctx context.Context, prompt string) (string, error) {
	return "", ErrNotConfigured
}

// Options selects and configures a provider.
type Options struct {
	Provider     string
	Model        string
	GoogleAPIKey string
	OpenAIAPIKey string
}

// New builds the client for opts.Provider.
func New(ctx context.Context, opts Options) (Client, error) {
	switch strings.ToLower(strings.TrimSpace(opts.Provider)) {
	case "", ProviderGemini:
		client, err := NewGeminiClient(ctx, opts.GoogleAPIKey, opts.Model)
		if err != nil {
			return nil, err
		}
		return client, nil
	case ProviderOpenAI:
		client, err := openai.NewClient(opts.OpenAIAPIKey, opts.Model)
		if err != nil {
			return nil, err
		}
		return client, nil
	default:
		return nil, fmt.Errorf("unsupported LLM_PROVIDER %q", opts.Provider)
	}
}
