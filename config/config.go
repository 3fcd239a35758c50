// Package config loads the CLI configuration from an optional file plus
// UTTERGEN_* environment variables.
package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Config holds all settings for the utterance generator CLI.
type Config struct {
	// Provider selects the fallback tier: "gemini" (stateless Gemini call),
	// "openai" (OpenAI-compatible endpoint) or "mock" (offline, no remote
	// calls at all).
	Provider      string `mapstructure:"provider" validate:"required,oneof=gemini openai mock"`
	Model         string `mapstructure:"model" validate:"required"`
	FallbackModel string `mapstructure:"fallback_model" validate:"required"`
	BaseURL       string `mapstructure:"base_url" validate:"omitempty,url"`
	OutputDir     string `mapstructure:"output_dir" validate:"required"`
	RetentionDays int    `mapstructure:"retention_days" validate:"gte=1"`
	LogLevel      string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// Load reads configuration. Environment variables win over file values,
// file values win over defaults. path may be empty.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetDefault("provider", "gemini")
	v.SetDefault("model", "gemini-2.5-flash")
	v.SetDefault("fallback_model", "gemini-2.5-flash")
	v.SetDefault("output_dir", ".")
	v.SetDefault("retention_days", 7)
	v.SetDefault("log_level", "info")

	v.SetEnvPrefix("UTTERGEN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}
