package openaiapi

import "time"

const (
	defaultBaseURL = "http://localhost:8080/v1"
	// Placeholder credential. Locally hosted servers require a key for
	// SDK compatibility but never validate it.
	defaultAPIKey    = "unused"
	defaultAPIKeyEnv = "LLMPING_API_KEY"
	defaultTimeout   = 60 * time.Second
)

// Config is the API client configuration.
type Config struct {
	Model     string
	BaseURL   string
	APIKey    string
	APIKeyEnv string
	Timeout   time.Duration
}

// CompletionRequest is a single responses API request.
type CompletionRequest struct {
	Instructions string
	Input        string
}

// CompletionResponse is a single responses API response.
type CompletionResponse struct {
	OutputText string
}

// ModelInfo describes one model advertised by the server.
type ModelInfo struct {
	ID      string
	OwnedBy string
}
