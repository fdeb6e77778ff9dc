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
	"log/slog"
	"os"
	"os/signal"
	"slices"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/spf13/cobra"
	"github.com/velocitia/prospectsdata/internal/iohistory"
	"github.com/velocitia/prospectsdata/internal/ioimport"
	"github.com/velocitia/prospectsdata/internal/ioschema"
	"github.com/velocitia/prospectsdata/internal/iostore"
	"github.com/velocitia/prospectsdata/pkg/config"
	"github.com/velocitia/prospectsdata/pkg/db"
	"github.com/velocitia/prospectsdata/pkg/importer"
	"github.com/velocitia/prospectsdata/pkg/translate"
)

// importFlags are the flags of the import command.
type importFlags struct {
	mappingFlags
	yes       bool
	show      int
	dryRun    bool
	fallback  string
	batchSize int
}

// getImportCmd returns the import command.
func getImportCmd() *cobra.Command {
	var f importFlags

	importCmd := &cobra.Command{
		Use:   "import FILE",
		Short: "Import a CSV file into a table",
		Long: `Import a CSV file into one of the registered tables.

This command:
  1. Reads the header and first rows of the file
  2. Maps headers to table columns automatically, then applies
     --mapping-file and --map assignments
  3. Scans translation-enabled columns for Arabic names without curated
     translation and asks for confirmation
  4. Streams the file into the store in batches, updating companies and
     areas directories from every batch
  5. Prints a summary of imported, skipped and failed rows

A failed batch does not stop the import. Tables without a natural key
(contractor_projects, consultant_projects) are insert-only, importing the
same file twice duplicates their rows.

Examples:
  prospectsdata import projects.csv --table projects --translate project_name
  prospectsdata import permits.csv -t permits --map project_no="Permit No"
  prospectsdata import areas.csv --mapping-file areas.yaml --dry-run
  prospectsdata import projects.csv -t projects --translate project_name \
    --fallback transliterate --yes`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg.Update(importFlagOpts(cmd, f))
			err := runImport(cmd.Context(), cmd.OutOrStdout(), args[0], f)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	addMappingFlags(importCmd, &f.mappingFlags)
	importCmd.Flags().BoolVarP(&f.yes, "yes", "y", false,
		"import without confirmation when names lack translation")
	importCmd.Flags().IntVar(&f.show, "show", 50,
		"maximum number of untranslated names to print, 0 prints all")
	importCmd.Flags().BoolVar(&f.dryRun, "dry-run", false,
		"map and validate rows without writing to the store")
	importCmd.Flags().StringVar(&f.fallback, "fallback", "",
		"names without curated translation: keep or transliterate")
	importCmd.Flags().IntVarP(&f.batchSize, "batch-size", "b", 0,
		"number of rows per batch")

	return importCmd
}

func importFlagOpts(cmd *cobra.Command, f importFlags) []config.Option {
	res := []config.Option{
		config.OptImportAssumeYes(f.yes),
		config.OptImportDryRun(f.dryRun),
	}
	if cmd.Flags().Changed("fallback") {
		res = append(res, config.OptImportFallback(f.fallback))
	}
	if cmd.Flags().Changed("batch-size") {
		res = append(res, config.OptDatabaseBatchSize(f.batchSize))
	}
	return res
}

func runImport(
	ctx context.Context,
	w io.Writer,
	file string,
	f importFlags,
) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	sess, m, err := prepareSession(ctx, file, f.mappingFlags)
	if err != nil {
		return err
	}
	table := m.Def.Table

	imp, err := sess.BeginImport()
	if err != nil {
		return err
	}

	if !m.Def.Upsertable() && !cfg.Import.DryRun {
		gn.Warn("<em>%s</em> is insert-only: importing the same rows "+
			"again creates duplicates", table)
	}

	var trans *translate.Store
	var total int
	if len(imp.Translate) > 0 {
		trans = loadTranslations(ctx)
		var names []string
		names, total, err = ioimport.New(nil).Scan(ctx, imp.Plan, trans)
		if err != nil {
			return err
		}
		if len(names) > 0 && !cfg.Import.AssumeYes {
			printUntranslated(w, names, f.show)
			gn.Warn("Names without translation will be stored %s",
				fallbackNote(cfg.Import.Fallback))
			ok, err := confirm("Proceed anyway?")
			if err != nil {
				return err
			}
			if !ok {
				sess.Reset()
				slog.Info("Import cancelled", "table", table, "file", file,
					"untranslated", len(names))
				return ioimport.CancelledError(table)
			}
		}
	}

	opts := importer.Options{
		BatchSize:    cfg.Database.BatchSize,
		Translations: trans,
		Fallback:     importer.Fallback(cfg.Import.Fallback),
		Cutoff:       cfg.Import.CutoffDate,
		DryRun:       cfg.Import.DryRun,
		TotalRows:    total,
	}

	var st iostore.Store
	if !cfg.Import.DryRun {
		var op db.Operator
		if st, op, err = openStore(ctx); err != nil {
			return err
		}
		defer st.Close()

		if err = st.EnsureTables(ctx); err != nil {
			return err
		}
		opts.Recorder = importRecorder(op)
	}

	bar := newImportProgress(total, table+" ")
	opts.Progress = bar.update

	var imper importer.Importer
	if st != nil {
		imper = ioimport.New(st)
	} else {
		imper = ioimport.New(nil)
	}
	sum := imper.Import(ctx, imp, opts)
	bar.finish()

	if err = sess.Complete(sum); err != nil {
		return err
	}
	printSummary(w, sum)

	if sum.Fatal {
		return ioimport.FatalError(table, sum.Errors)
	}
	if sum.Failed > 0 {
		gn.Warn("Import finished, <em>%s</em> rows were not stored",
			humanize.Comma(int64(sum.Failed)))
	}
	return nil
}

// importRecorder logs imports into the import_logs table. History is kept
// in PostgreSQL only.
func importRecorder(op db.Operator) importer.Recorder {
	if op == nil {
		return nil
	}
	gormDB, err := ioschema.OpenGORM(op)
	if err != nil {
		slog.Warn("Import history is disabled", "error", err)
		return nil
	}
	return iohistory.New(gormDB)
}

func fallbackNote(fallback string) string {
	if importer.Fallback(fallback) == importer.Transliterate {
		return "transliterated"
	}
	return "in Arabic"
}

func printSummary(w io.Writer, sum importer.Summary) {
	title := "Import summary"
	if sum.DryRun {
		title = "Dry run summary"
	}
	fmt.Fprintf(w, "\n%s: %s <- %s\n", title, sum.Table, sum.File)
	fmt.Fprintf(w, "  rows read:  %s\n", humanize.Comma(int64(sum.Seen)))
	fmt.Fprintf(w, "  valid:      %s\n", humanize.Comma(int64(sum.Total)))
	fmt.Fprintf(w, "  imported:   %s\n", humanize.Comma(int64(sum.Imported)))
	fmt.Fprintf(w, "  failed:     %s\n", humanize.Comma(int64(sum.Failed)))
	fmt.Fprintf(w, "  skipped:    %s\n", humanize.Comma(int64(sum.Skipped)))

	reasons := make([]importer.SkipReason, 0, len(sum.SkipReasons))
	for r := range sum.SkipReasons {
		reasons = append(reasons, r)
	}
	slices.Sort(reasons)
	for _, r := range reasons {
		fmt.Fprintf(w, "    %s: %s\n", r,
			humanize.Comma(int64(sum.SkipReasons[r])))
	}

	fmt.Fprintf(w, "  duration:   %s\n", gnfmt.TimeString(sum.Duration.Seconds()))

	if errs := sum.ShownErrors(); len(errs) > 0 {
		fmt.Fprintln(w, "Errors:")
		for _, e := range errs {
			fmt.Fprintf(w, "  %s\n", e)
		}
	}
	if len(sum.AggregateErrors) > 0 {
		fmt.Fprintln(w, "Directory updates failed:")
		for _, e := range sum.AggregateErrors {
			fmt.Fprintf(w, "  %s\n", e)
		}
	}
}
