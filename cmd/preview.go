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
	"strings"
	"text/tabwriter"

	"github.com/gnames/gn"
	"github.com/spf13/cobra"
	"github.com/velocitia/prospectsdata/internal/ioimport"
	"github.com/velocitia/prospectsdata/pkg/importer"
)

const (
	previewCols = 6
	previewRows = 5
	cellWidth   = 24
)

// getPreviewCmd returns the preview command.
func getPreviewCmd() *cobra.Command {
	var table string

	previewCmd := &cobra.Command{
		Use:   "preview FILE",
		Short: "Show headers and first rows of a CSV file",
		Long: `Show headers and first rows of a CSV file.

With --table it also shows how the file's headers map to the table's
columns, which required columns are missing and which translatable
columns contain Arabic names.

Examples:
  prospectsdata preview projects.csv
  prospectsdata preview projects.csv --table projects`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runPreview(cmd.Context(), cmd.OutOrStdout(), args[0], table)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	previewCmd.Flags().StringVarP(&table, "table", "t", "",
		"target table to show the automatic mapping for")

	return previewCmd
}

func runPreview(ctx context.Context, w io.Writer, file, table string) error {
	sess := importer.NewSession()
	err := sess.SelectFile(ctx, file, ioimport.NewPreviewer(), cfg.Import.PreviewRows)
	if err != nil {
		return err
	}
	pr := sess.Stage().(importer.Preview)
	printPreview(w, pr)

	if table == "" {
		return nil
	}
	m, err := sess.SelectTable(table)
	if err != nil {
		return err
	}
	printMapping(w, m)
	return nil
}

func printPreview(w io.Writer, pr importer.Preview) {
	fmt.Fprintf(w, "File: %s\n", pr.File)
	fmt.Fprintf(w, "Columns (%d): %s\n\n",
		len(pr.Headers), strings.Join(pr.Headers, ", "))

	headers := pr.Headers[:min(len(pr.Headers), previewCols)]
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(headers, "\t"))
	for _, row := range pr.Rows[:min(len(pr.Rows), previewRows)] {
		cells := make([]string, len(headers))
		for i, h := range headers {
			cells[i] = truncate(row[h], cellWidth)
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}
	tw.Flush()
}

func printMapping(w io.Writer, m *importer.Mapping) {
	fmt.Fprintf(w, "\nMapping to %s (%s):\n", m.Def.Table, m.Def.DisplayName)
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, col := range m.Def.Columns {
		src := m.Columns[col.Name]
		if src == "" {
			src = "-"
		}
		mark := ""
		if col.Required {
			mark = "required"
		}
		fmt.Fprintf(tw, "  %s\t<- %s\t%s\n", col.Name, src, mark)
	}
	tw.Flush()

	if miss := m.MissingRequired(); len(miss) > 0 {
		fmt.Fprintf(w, "\nMissing required columns: %s\n",
			strings.Join(miss, ", "))
	}

	arabicCols := m.ArabicColumns()
	if len(arabicCols) == 0 {
		return
	}
	fmt.Fprintln(w, "\nColumns with Arabic names (enable with --translate):")
	for _, col := range arabicCols {
		sample, _ := m.SampleArabic(col)
		fmt.Fprintf(w, "  %s: %s\n", col, sample)
	}
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
