package main

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/metalagman/llmping/internal/config"
	"github.com/spf13/viper"
)

// loadConfig reads the config file selected by --config. A missing file at
// the default path is fine, flags and built-in defaults cover it; a file
// the user asked for explicitly has to exist.
func loadConfig(explicit bool) (config.Config, error) {
	if err := viper.ReadInConfig(); err != nil {
		var pathErr *fs.PathError
		if errors.As(err, &pathErr) && !explicit {
			return config.Config{}, nil
		}
		return config.Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := config.ValidateSettings(viper.AllSettings()); err != nil {
		return config.Config{}, err
	}
	var cfg config.Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return config.Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
