package globalconfig

import (
	"os"
	"path/filepath"
)

const (
	// ConfigDirName is the name of the config directory under ~/.config.
	ConfigDirName = "ccgen"
	// ConfigFileName is the name of the main config file.
	ConfigFileName = "config.yaml"
)

// GetConfigDir returns the config directory path (~/.config/ccgen).
// Respects XDG_CONFIG_HOME if set.
func GetConfigDir() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, ConfigDirName), nil
}

// GetConfigPath returns the full path to the config file.
func GetConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, ConfigFileName), nil
}
