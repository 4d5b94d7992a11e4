package main

import (
	"strings"
	"time"

	"github.com/metalagman/llmping/internal/config"
	"github.com/metalagman/llmping/internal/openaiapi"
)

const defaultModel = "gemini-2.0-flash"

// serverFlags carries the flag overrides shared by commands that talk to
// the server.
type serverFlags struct {
	model   string
	baseURL string
	apiKey  string
	timeout time.Duration
}

// clientConfig merges flag overrides over config file values over built-in
// defaults. Flags win.
func clientConfig(cfg config.Config, f serverFlags) openaiapi.Config {
	out := openaiapi.Config{
		Model:     firstNonEmpty(f.model, cfg.Request.Model, defaultModel),
		BaseURL:   firstNonEmpty(f.baseURL, cfg.Server.BaseURL),
		APIKey:    firstNonEmpty(f.apiKey, cfg.Server.APIKey),
		APIKeyEnv: cfg.Server.APIKeyEnv,
	}
	switch {
	case f.timeout > 0:
		out.Timeout = f.timeout
	case cfg.Server.TimeoutSeconds > 0:
		out.Timeout = time.Duration(cfg.Server.TimeoutSeconds) * time.Second
	}
	return out
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
