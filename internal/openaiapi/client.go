// Package openaiapi wraps an OpenAI-compatible responses API for oneshot
// calls against locally hosted servers.
package openaiapi

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/responses"
	"github.com/rs/zerolog/log"
)

// Client wraps the responses API of one server.
type Client struct {
	cfg    Config
	client openai.Client
}

// NewClient constructs a new API client. The API key resolves from the
// config, then the key environment variable, then falls back to the
// placeholder credential accepted by local servers.
func NewClient(cfg Config, httpClient *http.Client) (*Client, error) {
	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		return nil, fmt.Errorf("model is required")
	}

	apiKey := strings.TrimSpace(cfg.APIKey)
	if apiKey == "" {
		envKey := strings.TrimSpace(cfg.APIKeyEnv)
		if envKey == "" {
			envKey = defaultAPIKeyEnv
		}
		apiKey = strings.TrimSpace(os.Getenv(envKey))
	}
	if apiKey == "" {
		apiKey = defaultAPIKey
	}

	baseURL := strings.TrimSpace(cfg.BaseURL)
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithBaseURL(baseURL),
		option.WithRequestTimeout(timeout),
		// Oneshot semantics, a failed call is reported as-is.
		option.WithMaxRetries(0),
	}
	if httpClient != nil {
		opts = append(opts, option.WithHTTPClient(httpClient))
	}

	return &Client{
		cfg: Config{
			Model:   model,
			BaseURL: baseURL,
			Timeout: timeout,
		},
		client: openai.NewClient(opts...),
	}, nil
}

// BaseURL returns the resolved server base URL.
func (c *Client) BaseURL() string {
	return c.cfg.BaseURL
}

// Complete executes a single responses API request. The outgoing body
// carries exactly the model, instructions and input.
func (c *Client) Complete(ctx context.Context, req CompletionRequest) (CompletionResponse, error) {
	log.Debug().
		Str("base_url", c.cfg.BaseURL).
		Str("model", c.cfg.Model).
		Msg("sending responses request")

	resp, err := c.client.Responses.New(ctx, responses.ResponseNewParams{
		Model:        c.cfg.Model,
		Instructions: openai.String(req.Instructions),
		Input: responses.ResponseNewParamsInputUnion{
			OfString: openai.String(req.Input),
		},
	})
	if err != nil {
		return CompletionResponse{}, fmt.Errorf("responses.create: %w", err)
	}
	if msg := strings.TrimSpace(resp.Error.Message); msg != "" {
		return CompletionResponse{}, fmt.Errorf("response failed: %s", msg)
	}

	output := strings.TrimSpace(resp.OutputText())
	if output == "" {
		return CompletionResponse{}, fmt.Errorf("response did not contain output text")
	}

	return CompletionResponse{OutputText: output}, nil
}

// Models lists the models the server advertises.
func (c *Client) Models(ctx context.Context) ([]ModelInfo, error) {
	page, err := c.client.Models.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("models.list: %w", err)
	}

	models := make([]ModelInfo, 0, len(page.Data))
	for _, m := range page.Data {
		models = append(models, ModelInfo{ID: m.ID, OwnedBy: m.OwnedBy})
	}

	return models, nil
}
