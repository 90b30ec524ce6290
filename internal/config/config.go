// Package config loads settings for the numcore command.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog"
	"golang.org/x/text/language"
)

const envPrefix = "NUMCORE"

type Config struct {
	// Locale is the BCP 47 tag used to read and write percents.
	// Env: NUMCORE_LOCALE (default: en)
	Locale string `envconfig:"LOCALE" default:"en"`

	// LogLevel is a zerolog level name.
	// Env: NUMCORE_LOG_LEVEL (default: info)
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	// Precision is the number of digits kept by decimal division.
	// Env: NUMCORE_PRECISION (default: 16)
	Precision int32 `envconfig:"PRECISION" default:"16"`
}

// Load reads an optional .env file and then the environment.
// Variables already set in the environment win over the file.
func Load(envFile string) (Config, error) {
	if envFile == "" {
		envFile = ".env"
	}
	if _, err := os.Stat(envFile); err == nil {
		if err := godotenv.Load(envFile); err != nil {
			return Config{}, fmt.Errorf("failed to load %s: %w", envFile, err)
		}
	}

	cfg := Config{}
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to process environment: %w", err)
	}
	if _, err := cfg.Tag(); err != nil {
		return Config{}, err
	}
	if cfg.Precision <= 0 {
		return Config{}, fmt.Errorf("precision must be positive, got %d", cfg.Precision)
	}
	return cfg, nil
}

func (c Config) Tag() (language.Tag, error) {
	tag, err := language.Parse(c.Locale)
	if err != nil {
		return language.Und, fmt.Errorf("invalid locale %q: %w", c.Locale, err)
	}
	return tag, nil
}

func (c Config) Level() zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel))
	if err != nil {
		return zerolog.InfoLevel
	}
	return lvl
}
