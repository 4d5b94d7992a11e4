// Package config provides configuration loading and validation for llmping.
package config

// Config is the root configuration. Every field is optional; built-in
// defaults cover a config-less run against a local server.
type Config struct {
	Server  ServerConfig  `json:"server"  mapstructure:"server"`
	Request RequestConfig `json:"request" mapstructure:"request"`
	Output  OutputConfig  `json:"output"  mapstructure:"output"`
}

// ServerConfig describes the target server.
type ServerConfig struct {
	BaseURL        string `json:"base_url,omitempty"        mapstructure:"base_url"`
	APIKey         string `json:"api_key,omitempty"         mapstructure:"api_key"`
	APIKeyEnv      string `json:"api_key_env,omitempty"     mapstructure:"api_key_env"`
	TimeoutSeconds int    `json:"timeout_seconds,omitempty" mapstructure:"timeout_seconds"`
}

// RequestConfig carries request defaults.
type RequestConfig struct {
	Model        string `json:"model,omitempty"        mapstructure:"model"`
	Instructions string `json:"instructions,omitempty" mapstructure:"instructions"`
	Input        string `json:"input,omitempty"        mapstructure:"input"`
}

// OutputConfig controls how the response is printed.
type OutputConfig struct {
	Render bool `json:"render,omitempty" mapstructure:"render"`
}
