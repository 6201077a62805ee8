package config

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
)

// ErrInvalidDimensions is returned when the configured feature width is
// not a positive integer.
var ErrInvalidDimensions = errors.New("feature dimensions must be positive")

// Config holds all configuration for the application
type Config struct {
	// Pipeline identity
	Subreddit string

	// Feature settings
	Dimensions int

	// Log settings
	LogLevel zerolog.Level
}

// DefaultConfig returns an initial configuration with hardcoded defaults.
func DefaultConfig() *Config {
	logLevel, _ := zerolog.ParseLevel(DefaultLogLevel)

	return &Config{
		Subreddit:  GetEnvString(EnvSubreddit, ""),
		Dimensions: GetEnvInt(EnvDimensions, DefaultDimensions),
		LogLevel:   logLevel,
	}
}

// Validate checks the configuration before provisioning starts.
func (c *Config) Validate() error {
	if c.Subreddit == "" {
		return fmt.Errorf("subreddit is required (flag -subreddit or env %s)", EnvSubreddit)
	}
	if c.Dimensions <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidDimensions, c.Dimensions)
	}
	return nil
}
