/*
Copyright © 2025 The prospectsdata Authors

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/gnames/gn"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/velocitia/prospectsdata/internal/iofs"
	"github.com/velocitia/prospectsdata/internal/iologger"
	app "github.com/velocitia/prospectsdata/pkg"
	"github.com/velocitia/prospectsdata/pkg/config"
)

// envFile is read from the working directory. Its values override the
// environment.
const envFile = ".env"

var (
	homeDir string
	opts    []config.Option
	cfg     *config.Config
)

// getRootCmd returns the root command with all subcommands attached.
func getRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Version: fmt.Sprintf("version: %s\nbuild:   %s", app.Version, app.Build),
		Use:     "prospectsdata",
		Short:   "Imports Dubai real estate CSV exports into the prospects store",
		Long: `Imports CSV exports of Dubai real estate data (projects, permits,
companies, brokers, areas) into a relational store.

Arabic names are converted to English using curated translations or an
algorithmic transliteration. Companies and areas directories are kept
up to date from imported rows.

Configuration is read from ~/.config/prospectsdata/config.yaml, from
PROSPECTS_* environment variables and from a .env file in the working
directory.`,
		PersistentPreRunE: bootstrap,
		SilenceErrors:     true,
		SilenceUsage:      true,
	}

	// Remove the automatic "prospectsdata version" prefix
	rootCmd.SetVersionTemplate("{{.Version}}\n")
	rootCmd.Flags().BoolP("version", "V", false, "version for prospectsdata")

	pf := rootCmd.PersistentFlags()
	pf.String("driver", "", "store backend: postgres or sqlite")
	pf.String("sqlite-path", "", "SQLite database file")
	pf.String("translations", "",
		"path or URL of the curated translations JSON")
	pf.String("log-level", "", "log level: debug, info, warn, error")

	rootCmd.AddCommand(
		getTablesCmd(),
		getPreviewCmd(),
		getScanCmd(),
		getImportCmd(),
		getTransliterateCmd(),
		getCreateCmd(),
		getExportDevelopersCmd(),
	)

	return rootCmd
}

func bootstrap(cmd *cobra.Command, _ []string) error {
	var err error
	homeDir, err = os.UserHomeDir()
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureDirs(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	// Initialize logging with hardcoded defaults
	// Will be reconfigured later with user's config settings
	defaultLog := config.LogConfig{
		Format:      "json",
		Level:       "info",
		Destination: "file",
	}
	if err = iologger.Init(config.LogDir(homeDir), defaultLog); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureConfigFile(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = loadEnvFile(envFile); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	var cfgViper *config.Config
	if cfgViper, err = initConfig(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	cfg = config.New()
	opts = cfgViper.ToOptions()
	opts = append(opts, persistentFlagOpts(cmd)...)
	cfg.Update(opts)

	// Set HomeDir after config is loaded
	cfg.Update([]config.Option{config.OptHomeDir(homeDir)})

	// Reconfigure logging with user's settings and proper log file location
	if err = reconfigureLogging(cfg); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	slog.Info("Configuration loaded",
		"config_file", config.ConfigFilePath(homeDir),
		"driver", cfg.Database.Driver,
	)

	return nil
}

// loadEnvFile exports variables of a .env file. A missing file is fine.
func loadEnvFile(path string) error {
	err := godotenv.Overload(path)
	if err == nil {
		slog.Info("Environment file loaded", "path", path)
		return nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return iofs.ReadFileError(path, err)
}

// reconfigureLogging reinitializes the logger with the loaded configuration.
func reconfigureLogging(cfg *config.Config) error {
	logDir := config.LogDir(cfg.HomeDir)
	return iologger.Init(logDir, cfg.Log)
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	if err := getRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func initConfig(home string) (*config.Config, error) {
	var err error
	cfgPath := config.ConfigFilePath(home)
	v := viper.New()
	v.SetConfigFile(cfgPath)

	initEnvVars(v)

	if err = v.ReadInConfig(); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	var res config.Config
	if err = v.Unmarshal(&res); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	return &res, nil
}

func initEnvVars(v *viper.Viper) {
	// Set environment variables we want.
	// We set them manually so we can see clearly which env variables are allowed.
	// These match the fields included in config.ToOptions() - i.e., persistent
	// configuration that can be stored in config.yaml.
	v.SetEnvPrefix("PROSPECTS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Database configuration
	v.BindEnv("database.driver", "PROSPECTS_DATABASE_DRIVER")
	v.BindEnv("database.host", "PROSPECTS_DATABASE_HOST")
	v.BindEnv("database.port", "PROSPECTS_DATABASE_PORT")
	v.BindEnv("database.user", "PROSPECTS_DATABASE_USER")
	v.BindEnv("database.password", "PROSPECTS_DATABASE_PASSWORD")
	v.BindEnv("database.database", "PROSPECTS_DATABASE_DATABASE")
	v.BindEnv("database.ssl_mode", "PROSPECTS_DATABASE_SSL_MODE")
	v.BindEnv("database.sqlite_path", "PROSPECTS_DATABASE_SQLITE_PATH")
	v.BindEnv("database.batch_size", "PROSPECTS_DATABASE_BATCH_SIZE")

	// Import configuration
	v.BindEnv("import.preview_rows", "PROSPECTS_IMPORT_PREVIEW_ROWS")
	v.BindEnv("import.cutoff_date", "PROSPECTS_IMPORT_CUTOFF_DATE")
	v.BindEnv("import.fallback", "PROSPECTS_IMPORT_FALLBACK")

	// Translations
	v.BindEnv("translations.path", "PROSPECTS_TRANSLATIONS_PATH")

	// Log configuration
	v.BindEnv("log.level", "PROSPECTS_LOG_LEVEL")
	v.BindEnv("log.format", "PROSPECTS_LOG_FORMAT")
	v.BindEnv("log.destination", "PROSPECTS_LOG_DESTINATION")

	// General configuration
	v.BindEnv("jobs_number", "PROSPECTS_JOBS_NUMBER")

	v.AutomaticEnv()
}
