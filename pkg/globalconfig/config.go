// Package globalconfig loads the optional ccgen settings file.
// Settings live at ~/.config/ccgen/config.yaml and can be overridden
// from the environment.
package globalconfig

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"github.com/jaspreet-dot-casa/controller-cloud-init/pkg/credentials"
)

// Environment variables that override the settings file.
const (
	EnvHashScript = "CCGEN_HASH_SCRIPT"
	EnvLogLevel   = "CCGEN_LOG_LEVEL"
)

// DefaultLogLevel keeps the console quiet unless something looks wrong.
const DefaultLogLevel = "warn"

// Config represents the ccgen settings.
type Config struct {
	HashScript string `yaml:"hash_script"` // Script that derives the initial user credential
	LogLevel   string `yaml:"log_level"`   // zerolog level name
}

// NewConfig creates a new Config with defaults.
func NewConfig() *Config {
	return &Config{
		HashScript: credentials.DefaultScript,
		LogLevel:   DefaultLogLevel,
	}
}

// Load reads the settings file, if any, and applies environment overrides.
// A missing file, or no home directory to look in, is not an error.
func Load() (*Config, error) {
	configPath, err := GetConfigPath()
	if err != nil {
		log.Debug().Err(err).Msg("no settings directory, using defaults")
		configPath = ""
	}
	return LoadFile(configPath)
}

// LoadFile is Load for an explicit settings path. An empty path skips the
// file and applies only the environment overrides.
func LoadFile(path string) (*Config, error) {
	cfg := NewConfig()

	var data []byte
	err := os.ErrNotExist
	if path != "" {
		data, err = os.ReadFile(path)
	}
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if v := strings.TrimSpace(os.Getenv(EnvHashScript)); v != "" {
		cfg.HashScript = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		cfg.LogLevel = v
	}

	if cfg.HashScript == "" {
		cfg.HashScript = credentials.DefaultScript
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}

	return cfg, nil
}

// Level parses LogLevel.
func (c *Config) Level() (zerolog.Level, error) {
	level, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel))
	if err != nil {
		return zerolog.WarnLevel, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return level, nil
}
