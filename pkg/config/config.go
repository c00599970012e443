// Package config holds runtime configuration and .env file loading.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// EnvFileName is the conventional env file loaded from the working directory.
const EnvFileName = ".env"

const (
	// DefaultBaseURL is the hosted completion endpoint.
	DefaultBaseURL = "https://models.inference.ai.azure.com"
	// DefaultModel is the model identifier sent with every request.
	DefaultModel = "gpt-4o"
)

// Config holds all runtime configuration for the chat client.
// It is built once at startup and treated as read-only afterwards.
type Config struct {
	Token   string
	BaseURL string
	Model   string
	Verbose bool
}

// DefaultConfig returns a baseline configuration without side effects.
func DefaultConfig() Config {
	return Config{
		BaseURL: DefaultBaseURL,
		Model:   DefaultModel,
	}
}

// Normalize sanitizes configuration values and applies defaults.
func Normalize(cfg Config) Config {
	cfg.Token = strings.TrimSpace(cfg.Token)
	cfg.BaseURL = strings.TrimSpace(cfg.BaseURL)
	cfg.Model = strings.TrimSpace(cfg.Model)

	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	return cfg
}

// LoadEnvFile parses path as KEY=VALUE lines and merges the entries into the
// process environment, overwriting variables that already exist. Blank lines
// and #-prefixed lines are skipped; keys and values are trimmed, and a value
// may itself contain '='. The parsed entries are returned so callers can
// inspect what was loaded. A missing or unreadable file is an error the
// caller may treat as non-fatal.
func LoadEnvFile(path string) (map[string]string, error) {
	vars, err := godotenv.Read(path)
	if err != nil {
		return nil, fmt.Errorf("read env file %s: %w", path, err)
	}
	for key, value := range vars {
		if err := os.Setenv(key, value); err != nil {
			return vars, fmt.Errorf("set %s: %w", key, err)
		}
	}
	return vars, nil
}
