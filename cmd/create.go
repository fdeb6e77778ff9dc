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
	"context"
	"fmt"
	"io"

	"github.com/gnames/gn"
	"github.com/spf13/cobra"
	"github.com/velocitia/prospectsdata/pkg/schema"
)

// getCreateCmd returns the create command.
// Extracted as a function to facilitate testing and dynamic
// command registration.
func getCreateCmd() *cobra.Command {
	var force, drop, printOnly bool

	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create target tables",
		Long: `Create all registered tables in the configured store.

This command:
  1. Connects to PostgreSQL or opens the SQLite file
  2. Checks for existing tables
  3. With --drop, drops them after confirmation
  4. Creates missing tables, and in PostgreSQL the import_logs table

Existing tables and their data are kept unless --drop is given. Use
--print to show the DDL without touching the store.

Examples:
  prospectsdata create
  prospectsdata create --sqlite-path prospects.sqlite
  prospectsdata create --drop --force
  prospectsdata create --print`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if printOnly {
				return printDDL(cmd.OutOrStdout())
			}
			err := runCreate(cmd.Context(), drop, force)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	createCmd.Flags().BoolVar(&drop, "drop", false,
		"drop existing tables before creating them")
	createCmd.Flags().BoolVarP(&force, "force", "f",
		false, "drop existing tables without confirmation")
	createCmd.Flags().BoolVar(&printOnly, "print", false,
		"print DDL of the configured backend and exit")

	return createCmd
}

func runCreate(ctx context.Context, drop, force bool) error {
	st, _, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer st.Close()

	tables := schema.Tables()
	hasTables, err := st.HasTables(ctx, tables)
	if err != nil {
		return err
	}

	if hasTables && drop {
		if !force {
			gn.Warn("\nWarning: Database contains existing tables.")
			gn.Warn("Dropping them deletes ALL imported data.")
			ok, err := confirm("Do you want to continue?")
			if err != nil {
				return err
			}
			if !ok {
				gn.Info("Aborted. No changes made.")
				return nil
			}
		}
		gn.Info("Dropping existing tables...")
		if err = st.DropTables(ctx, tables); err != nil {
			return err
		}
		gn.Info("Tables dropped")
	} else if hasTables {
		gn.Info("Existing tables are kept, missing ones will be created")
	}

	gn.Info("Creating tables...")
	if err = st.EnsureTables(ctx); err != nil {
		return err
	}

	gn.Info("\nTables are ready.")
	gn.Info("\nNext steps:")
	gn.Info("  - Run 'prospectsdata preview FILE --table TABLE' to check a file")
	gn.Info("  - Run 'prospectsdata import FILE --table TABLE' to import it")

	return nil
}

func printDDL(w io.Writer) error {
	d := schema.Postgres
	if cfg.Database.Driver == "sqlite" {
		d = schema.SQLite
	}
	for _, ddl := range schema.AllDDL(d) {
		if _, err := fmt.Fprintf(w, "%s\n\n", ddl); err != nil {
			return err
		}
	}
	return nil
}
