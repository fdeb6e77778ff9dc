package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/velocitia/prospectsdata/pkg/config"
)

type funcFlag func(cmd *cobra.Command) []config.Option

// persistentFlagOpts converts root flags that were set on the command line
// to config options. They are applied last and win over every other source.
func persistentFlagOpts(cmd *cobra.Command) []config.Option {
	var res []config.Option
	for _, fn := range []funcFlag{
		driverFlag,
		sqlitePathFlag,
		translationsFlag,
		logLevelFlag,
	} {
		res = append(res, fn(cmd)...)
	}
	return res
}

func driverFlag(cmd *cobra.Command) []config.Option {
	if !cmd.Flags().Changed("driver") {
		return nil
	}
	s, _ := cmd.Flags().GetString("driver")
	return []config.Option{config.OptDatabaseDriver(s)}
}

func sqlitePathFlag(cmd *cobra.Command) []config.Option {
	if !cmd.Flags().Changed("sqlite-path") {
		return nil
	}
	s, _ := cmd.Flags().GetString("sqlite-path")
	return []config.Option{
		config.OptDatabaseSQLitePath(s),
		config.OptDatabaseDriver("sqlite"),
	}
}

func translationsFlag(cmd *cobra.Command) []config.Option {
	if !cmd.Flags().Changed("translations") {
		return nil
	}
	s, _ := cmd.Flags().GetString("translations")
	return []config.Option{config.OptTranslationsPath(s)}
}

func logLevelFlag(cmd *cobra.Command) []config.Option {
	if !cmd.Flags().Changed("log-level") {
		return nil
	}
	s, _ := cmd.Flags().GetString("log-level")
	return []config.Option{config.OptLogLevel(s)}
}

// splitMapping parses a "target=source" pair of the --map flag. Source
// headers may contain '=', the first one separates the pair.
func splitMapping(s string) (string, string, bool) {
	target, source, ok := strings.Cut(s, "=")
	target = strings.TrimSpace(target)
	if !ok || target == "" {
		return "", "", false
	}
	return target, source, true
}
