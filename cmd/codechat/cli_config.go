package main

import (
	"flag"
	"os"
	"strings"

	configpkg "github.com/codechat/codechat/pkg/config"
	loggerpkg "github.com/codechat/codechat/pkg/logger"
)

// parseCLIConfig loads the env file, environment variables, and flags into
// runtime config. A missing or unreadable env file is reported and the
// existing environment is used as-is.
func parseCLIConfig(log loggerpkg.Logger) configpkg.Config {
	defaults := configpkg.DefaultConfig()
	verbose := flag.Bool("verbose", defaults.Verbose, "Verbose request logging")
	flag.Parse()

	if _, err := configpkg.LoadEnvFile(configpkg.EnvFileName); err != nil {
		loggerpkg.Warn(log, "could not load env file; continuing with existing environment", map[string]any{
			"error": err.Error(),
		})
	}

	cfg := configFromEnv(defaults)
	cfg.Verbose = *verbose
	return configpkg.Normalize(cfg)
}

// configFromEnv overlays environment variables onto the defaults.
func configFromEnv(defaults configpkg.Config) configpkg.Config {
	cfg := defaults
	cfg.Token = strings.TrimSpace(os.Getenv("GITHUB_TOKEN"))
	if v := strings.TrimSpace(os.Getenv("CODECHAT_BASE_URL")); v != "" {
		cfg.BaseURL = v
	}
	if v := strings.TrimSpace(os.Getenv("CODECHAT_MODEL")); v != "" {
		cfg.Model = v
	}
	return cfg
}
