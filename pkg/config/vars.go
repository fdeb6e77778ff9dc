package config

import (
	"path/filepath"
)

var (
	// AppName is used in generating file system paths.
	AppName = "prospectsdata"

	// TranslationsFile is the default name of the curated translations
	// document inside ConfigDir.
	TranslationsFile = "translations.json"
)

// ConfigDir returns the directory path for configuration files.
// Returns ~/.config/prospectsdata by default.
func ConfigDir(homeDir string) string {
	return filepath.Join(homeDir, ".config", AppName)
}

// CacheDir returns the directory path for cache files.
// Returns ~/.cache/prospectsdata by default.
func CacheDir(homeDir string) string {
	return filepath.Join(homeDir, ".cache", AppName)
}

// LogDir returns the directory path for log files.
// Returns ~/.local/share/prospectsdata/logs by default.
func LogDir(homeDir string) string {
	return filepath.Join(homeDir, ".local", "share", AppName, "logs")
}

// ConfigFilePath returns the full path to the config.yaml file.
// Returns ~/.config/prospectsdata/config.yaml by default.
func ConfigFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "config.yaml")
}

// TranslationsPath returns the configured translations location, or the
// default translations.json inside ConfigDir when none is set.
func (c *Config) TranslationsPath() string {
	if c.Translations.Path != "" {
		return c.Translations.Path
	}
	return filepath.Join(ConfigDir(c.HomeDir), TranslationsFile)
}
