// Package config holds the central application configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"

	"feedsnap/pkg/filesystem"
)

// DefaultFeedURL is the fallback feed used when neither the CLI nor the
// config file names one.
const DefaultFeedURL = "https://rss.cnn.com/rss/edition.rss"

// Config holds the application configuration
type Config struct {
	FeedURL        string `mapstructure:"feed_url"`        // Fallback feed URL
	OutputPath     string `mapstructure:"output_path"`     // Output JSON file path
	TimeoutSeconds int    `mapstructure:"timeout_seconds"` // Fetch timeout
	UserAgent      string `mapstructure:"user_agent"`      // User-Agent header for feed requests
	PresetsPath    string `mapstructure:"presets_path"`    // Named feed presets file
}

// Timeout returns the configured fetch timeout as a duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// LoadConfig loads the configuration from a file. A missing file is fine,
// defaults apply.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		path = "config.yaml"
	}

	// If path is relative, try current directory first, then executable directory
	if !filepath.IsAbs(path) {
		if _, err := os.Stat(path); err != nil {
			if execPath, err := filesystem.GetDefaultPath(path); err == nil {
				if _, err := os.Stat(execPath); err == nil {
					path = execPath
				}
			}
		}
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	// Set default values
	v.SetDefault("feed_url", DefaultFeedURL)
	v.SetDefault("output_path", "public/feed.json")
	v.SetDefault("timeout_seconds", 15)
	v.SetDefault("user_agent", "feedsnap/1.0")
	v.SetDefault("presets_path", "feeds.yaml")

	// Read configuration file
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	return &config, nil
}
