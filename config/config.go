// Package config loads the module's settings from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"

	"github.com/convokit/dataprep/utils"
)

// Config holds the data-preparation settings. Every field has an
// environment override and a sensible default, so a zero-configuration
// LoadConfig is always usable.
type Config struct {
	Encoding  string         `env:"DATAPREP_ENCODING" envDefault:"cl100k_base" validate:"required"`
	ImageTag  string         `env:"DATAPREP_IMAGE_TAG" envDefault:"<image>" validate:"required"`
	MaxSeqLen int            `env:"DATAPREP_MAX_SEQ_LEN" envDefault:"4096" validate:"min=1"`
	AppendEOS bool           `env:"DATAPREP_APPEND_EOS" envDefault:"true"`
	LogLevel  utils.LogLevel `env:"DATAPREP_LOG_LEVEL" envDefault:"WARN"`
}

var validate = validator.New()

// LoadConfig reads the configuration from the environment and validates it.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config from environment: %w", err)
	}
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// DefaultConfig returns the built-in defaults without touching the
// environment.
func DefaultConfig() *Config {
	return &Config{
		Encoding:  "cl100k_base",
		ImageTag:  "<image>",
		MaxSeqLen: 4096,
		AppendEOS: true,
		LogLevel:  utils.LogLevelWarn,
	}
}
