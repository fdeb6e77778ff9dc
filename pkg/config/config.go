// Package config provides configuration management for prospectsdata.
//
// This package has no I/O dependencies (no file operations, no network calls).
// Validation functions may write user-facing warnings via gn.Warn().
//
// # Configuration Sources
//
// Precedence (highest to lowest):
// CLI flags > .env file > env vars > config.yaml > defaults
//
// # Design Principles
//
// - Default config (from New()) is always valid - no validation needed
// - All mutations go through Option functions - the only way to modify Config
// - Invalid options are rejected with gn.Warn() - config remains in valid state
// - ToOptions() converts persistent fields (those in config.yaml)
// - Environment variables match ToOptions() fields exactly
//
// # Persistent vs Runtime Fields
//
// Persistent fields (in ToOptions, config.yaml, and env vars):
//   - Database: driver, host, port, user, password, database, ssl_mode,
//     sqlite_path, batch_size
//   - Import: preview_rows, cutoff_date, fallback
//   - Translations: path
//   - Log: level, format, destination
//   - General: jobs_number
//
// Runtime-only fields (CLI flags only):
//   - Import.DryRun, Import.AssumeYes (per-command)
//   - HomeDir (set once at startup)
//
// # Environment Variables
//
// Use PROSPECTS_ prefix with underscores for nesting:
//
//	PROSPECTS_DATABASE_HOST=localhost
//	PROSPECTS_DATABASE_DRIVER=sqlite
//	PROSPECTS_TRANSLATIONS_PATH=https://example.com/translations.json
//	PROSPECTS_LOG_LEVEL=info
package config

import (
	"runtime"
)

// Config represents the complete prospectsdata configuration.
type Config struct {
	// Database contains connection settings of the target store.
	Database DatabaseConfig `mapstructure:"database" yaml:"database"`

	// Import contains settings of the CSV import pipeline.
	Import ImportConfig `mapstructure:"import" yaml:"import"`

	// Translations points to the curated Arabic to English translations.
	Translations TranslationsConfig `mapstructure:"translations" yaml:"translations"`

	Log LogConfig `mapstructure:"log" yaml:"log"`

	// JobsNumber is the number of concurrent workers for parallel operations.
	// Default value is set according to the number of available threads.
	JobsNumber int `mapstructure:"jobs_number" yaml:"jobs_number"`

	// HomeDir determines where config, cache and logs directories reside.
	// It must be set by CLI during init, there is no default value for it.
	HomeDir string
}

// DatabaseConfig contains connection parameters of the target store.
type DatabaseConfig struct {
	// Driver selects the store backend.
	// Valid values: "postgres", "sqlite".
	Driver string `mapstructure:"driver" yaml:"driver"`

	// Host is the PostgreSQL server hostname or IP address.
	Host string `mapstructure:"host" yaml:"host"`

	// Port is the PostgreSQL server port number.
	Port int `mapstructure:"port" yaml:"port"`

	// User is the PostgreSQL database username.
	User string `mapstructure:"user" yaml:"user"`

	// Password is the PostgreSQL database password.
	Password string `mapstructure:"password" yaml:"password"`

	// Database is the PostgreSQL database name to connect to.
	Database string `mapstructure:"database" yaml:"database"`

	// SSLMode specifies the SSL connection mode.
	// Valid values: "disable", "require", "verify-ca", "verify-full"
	SSLMode string `mapstructure:"ssl_mode" yaml:"ssl_mode"`

	// SQLitePath is the database file used when Driver is "sqlite".
	SQLitePath string `mapstructure:"sqlite_path" yaml:"sqlite_path"`

	// BatchSize is the number of CSV rows in one chunk. Every chunk is
	// sent to the store as a single upsert or insert statement.
	BatchSize int `mapstructure:"batch_size" yaml:"batch_size"`
}

// ImportConfig contains settings of the import pipeline.
type ImportConfig struct {
	// PreviewRows is the number of rows parsed at file selection to
	// discover headers and sample data.
	PreviewRows int `mapstructure:"preview_rows" yaml:"preview_rows"`

	// CutoffDate is the earliest project_creation_date (YYYY-MM-DD) kept
	// for the permits table. Older permits are skipped.
	CutoffDate string `mapstructure:"cutoff_date" yaml:"cutoff_date"`

	// Fallback decides what happens to Arabic names without a curated
	// translation. Valid values: "keep" (store Arabic verbatim),
	// "transliterate" (store an algorithmic romanization).
	Fallback string `mapstructure:"fallback" yaml:"fallback"`

	// DryRun maps, validates and counts rows without writing to the store.
	// Runtime-only field.
	DryRun bool `mapstructure:"-" yaml:"-"`

	// AssumeYes skips the untranslated-names confirmation.
	// Runtime-only field.
	AssumeYes bool `mapstructure:"-" yaml:"-"`
}

// TranslationsConfig locates the curated translations JSON document.
type TranslationsConfig struct {
	// Path is a local file path or an http(s) URL. When empty, the
	// translations.json file in the config directory is used.
	Path string `mapstructure:"path" yaml:"path"`
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Format can be 'json', 'text' or 'tint' (user-facing and colored).
	Format string `mapstructure:"format"      yaml:"format"`
	// Level of logging -- 'error', 'warn', 'info', 'debug'
	Level string `mapstructure:"level"       yaml:"level"`
	// Destination can be a log file (to default place), STDERR or STDOUT
	Destination string `mapstructure:"destination" yaml:"destination"`
}

// New creates a Config with sensible default values.
// The returned config is always valid and ready to use.
// Default values can be overridden using Option functions via Update().
func New() *Config {
	res := &Config{
		Database: DatabaseConfig{
			Driver:     "postgres",
			Host:       "localhost",
			Port:       5432,
			User:       "postgres",
			Password:   "postgres",
			Database:   "prospects",
			SSLMode:    "disable",
			SQLitePath: "prospects.sqlite",
			BatchSize:  1_000,
		},
		Import: ImportConfig{
			PreviewRows: 100,
			CutoffDate:  "2021-01-01",
			Fallback:    "keep",
		},
		Log: LogConfig{
			Format:      "json",
			Level:       "info",
			Destination: "file",
		},
		JobsNumber: runtime.NumCPU(),
	}

	return res
}
