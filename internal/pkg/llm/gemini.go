package llm

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"google.golang.org/genai"
)

type GeminiProvider struct {
	client *genai.Client
}

func NewGeminiProvider(ctx context.Context, apiKey string) (*GeminiProvider, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create Gemini client: %w", err)
	}

	return &GeminiProvider{client: client}, nil
}

func (p *GeminiProvider) Generate(ctx context.Context, model string, prompt string) (string, error) {
	result, err := p.client.Models.GenerateContent(ctx, model, genai.Text(prompt), nil)
	if err != nil {
		return "", mapGeminiError(err)
	}
	return result.Text(), nil
}

// ListModels returns the names of models that support generateContent.
func (p *GeminiProvider) ListModels(ctx context.Context) ([]string, error) {
	var names []string

	page, err := p.client.Models.List(ctx, nil)
	for {
		if err != nil {
			if errors.Is(err, genai.ErrPageDone) {
				break
			}
			return nil, mapGeminiError(err)
		}
		for _, m := range page.Items {
			if m == nil || m.Name == "" {
				continue
			}
			if slices.Contains(m.SupportedActions, "generateContent") {
				names = append(names, m.Name)
			}
		}
		if page.NextPageToken == "" {
			break
		}
		page, err = page.Next(ctx)
	}

	return names, nil
}

func mapGeminiError(err error) error {
	var apiErr *genai.APIError
	if errors.As(err, &apiErr) {
		return &TransportError{StatusCode: apiErr.Code, Status: apiErr.Status, Err: err}
	}
	return err
}
