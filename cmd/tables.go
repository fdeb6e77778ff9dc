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
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/velocitia/prospectsdata/pkg/schema"
)

// getTablesCmd returns the tables command.
func getTablesCmd() *cobra.Command {
	tablesCmd := &cobra.Command{
		Use:   "tables",
		Short: "List importable tables",
		Long: `List tables that CSV files can be imported into.

For every table it shows the conflict key used for upserts (tables
without it are insert-only), required columns and columns that may hold
Arabic names.

Examples:
  prospectsdata tables`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return printTables(cmd.OutOrStdout())
		},
	}
	return tablesCmd
}

func printTables(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "TABLE\tNAME\tCONFLICT KEY\tREQUIRED\tTRANSLATABLE")
	for _, def := range schema.All() {
		key := "(insert-only)"
		if def.Upsertable() {
			key = strings.Join(def.ConflictKey, ", ")
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			def.Table,
			def.DisplayName,
			key,
			columnList(def.Required()),
			columnList(def.Translatable()),
		)
	}
	return tw.Flush()
}

func columnList(cols []schema.Column) string {
	if len(cols) == 0 {
		return "-"
	}
	res := make([]string, len(cols))
	for i, c := range cols {
		res[i] = c.Name
	}
	return strings.Join(res, ", ")
}
