package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/evandrarf/adaptive-learning-be/internal/pkg/apperr"
	"github.com/sirupsen/logrus"
)

// Client wraps a Provider with model selection and the error taxonomy the
// HTTP layer understands. It holds no mutable state and is safe for
// concurrent use.
type Client struct {
	provider    Provider
	providerErr error
	model       string
	override    string
	log         *logrus.Logger
}

// NewClient builds the provider named by cfg. A missing key or a provider that
// fails to initialize is not fatal here; every call reports it as a
// configuration error instead.
func NewClient(ctx context.Context, cfg Config, log *logrus.Logger) *Client {
	if log == nil {
		log = logrus.New()
	}

	name := strings.ToLower(strings.TrimSpace(cfg.Provider))
	if name == "" {
		name = ProviderGemini
	}

	c := &Client{
		model: strings.TrimSpace(cfg.Model),
		log:   log,
	}
	if c.model == "" {
		c.model = defaultModel(name)
	}

	if strings.TrimSpace(cfg.APIKey) == "" {
		log.Warn("llm api key is not set, generative endpoints will fail until it is configured")
		return c
	}

	switch name {
	case ProviderGemini:
		p, err := NewGeminiProvider(ctx, cfg.APIKey)
		if err != nil {
			c.providerErr = err
		} else {
			c.provider = p
		}
	case ProviderOpenAI:
		p, err := NewOpenAIProvider(cfg.APIKey, cfg.BaseURL)
		if err != nil {
			c.providerErr = err
		} else {
			c.provider = p
		}
	default:
		c.providerErr = fmt.Errorf("unknown llm provider %q", cfg.Provider)
	}

	if c.providerErr != nil {
		log.WithError(c.providerErr).Error("failed to initialize llm provider")
	}

	return c
}

func NewClientWithProvider(p Provider, model string, log *logrus.Logger) *Client {
	if log == nil {
		log = logrus.New()
	}
	if model == "" {
		model = DefaultGeminiModel
	}
	return &Client{provider: p, model: model, log: log}
}

// WithModel returns a copy of c that uses model regardless of configuration.
func (c *Client) WithModel(model string) *Client {
	cp := *c
	cp.override = strings.TrimSpace(model)
	return &cp
}

// Configure checks that credentials are present and returns the model id
// calls will use.
func (c *Client) Configure() (string, error) {
	if c.providerErr != nil {
		return "", apperr.Wrap(apperr.KindConfiguration, "generative client is unavailable", c.providerErr)
	}
	if c.provider == nil {
		return "", apperr.Configuration("GEMINI_API_KEY environment variable is not set")
	}
	if c.override != "" {
		return c.override, nil
	}
	return c.model, nil
}

func (c *Client) GenerateContent(ctx context.Context, prompt string) (string, error) {
	model, err := c.Configure()
	if err != nil {
		return "", err
	}

	c.log.WithFields(logrus.Fields{
		"model":      model,
		"prompt_len": len(prompt),
	}).Debug("generating content")

	text, err := c.provider.Generate(ctx, model, prompt)
	if err != nil {
		return "", classifyError(err)
	}

	if strings.TrimSpace(text) == "" {
		return "", apperr.EmptyResponse("model returned an empty response")
	}

	return text, nil
}

func (c *Client) ListModels(ctx context.Context) ([]string, error) {
	if _, err := c.Configure(); err != nil {
		return nil, err
	}

	models, err := c.provider.ListModels(ctx)
	if err != nil {
		return nil, apperr.Generation("failed to list models", err)
	}
	return models, nil
}
