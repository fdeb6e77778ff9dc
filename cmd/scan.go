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

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/spf13/cobra"
	"github.com/velocitia/prospectsdata/internal/ioimport"
)

// getScanCmd returns the scan command.
func getScanCmd() *cobra.Command {
	var mf mappingFlags
	var show int

	scanCmd := &cobra.Command{
		Use:   "scan FILE",
		Short: "Find Arabic names without curated translation",
		Long: `Read the whole file and list distinct Arabic names of the
translation-enabled columns that have no curated translation.

Nothing is written to the store. Use it before an import to find names
worth adding to the curated translations.

Examples:
  prospectsdata scan projects.csv --table projects --translate project_name
  prospectsdata scan permits.csv -t permits --map developer_name="Owner AR" \
    --translate developer_name`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runScan(cmd.Context(), cmd.OutOrStdout(), args[0], mf, show)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	addMappingFlags(scanCmd, &mf)
	scanCmd.Flags().IntVar(&show, "show", 50,
		"maximum number of names to print, 0 prints all")

	return scanCmd
}

func runScan(
	ctx context.Context,
	w io.Writer,
	file string,
	mf mappingFlags,
	show int,
) error {
	sess, m, err := prepareSession(ctx, file, mf)
	if err != nil {
		return err
	}
	if len(m.Translate()) == 0 {
		gn.Warn("No translation-enabled columns, use <em>--translate</em>")
		return nil
	}

	imp, err := sess.BeginImport()
	if err != nil {
		return err
	}

	trans := loadTranslations(ctx)
	names, count, err := ioimport.New(nil).Scan(ctx, imp.Plan, trans)
	if err != nil {
		return err
	}

	gn.Info("Scanned <em>%s</em> rows", humanize.Comma(int64(count)))
	printUntranslated(w, names, show)
	return nil
}

func printUntranslated(w io.Writer, names []string, show int) {
	if len(names) == 0 {
		fmt.Fprintln(w, "All Arabic names have curated translations.")
		return
	}
	fmt.Fprintf(w, "%d names without curated translation:\n", len(names))
	limit := len(names)
	if show > 0 {
		limit = min(limit, show)
	}
	for _, n := range names[:limit] {
		fmt.Fprintf(w, "  %s\n", n)
	}
	if rest := len(names) - limit; rest > 0 {
		fmt.Fprintf(w, "  ...and %d more\n", rest)
	}
}

func addMappingFlags(cmd *cobra.Command, mf *mappingFlags) {
	cmd.Flags().StringVarP(&mf.table, "table", "t", "", "target table")
	cmd.Flags().StringArrayVarP(&mf.maps, "map", "m", nil,
		"assign a source header to a target column, target=source")
	cmd.Flags().StringVar(&mf.mappingFile, "mapping-file", "",
		"YAML file with table, column mapping and translated columns")
	cmd.Flags().StringSliceVar(&mf.translate, "translate", nil,
		"convert Arabic names of these columns to English")
}
