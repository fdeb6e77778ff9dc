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
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/spf13/cobra"
	"github.com/velocitia/prospectsdata/internal/ioexport"
)

// getExportDevelopersCmd returns the export-developers command.
func getExportDevelopersCmd() *cobra.Command {
	var output string

	exportCmd := &cobra.Command{
		Use:   "export-developers",
		Short: "Export cleaned developer names as JSON",
		Long: `Export names of developer companies for enrichment with
contact details.

Legal form suffixes (LLC, LTD, FZE, PJSC...) and branch markers are
removed, "Real Estate" is dropped from developer names, duplicates are
merged and names are sorted. The JSON document contains an instruction
and the list of names.

Examples:
  prospectsdata export-developers
  prospectsdata export-developers -o developers.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			err := runExportDevelopers(cmd.Context(), cmd.OutOrStdout(), output)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	exportCmd.Flags().StringVarP(&output, "output", "o", "",
		"write JSON to this file instead of STDOUT")

	return exportCmd
}

func runExportDevelopers(ctx context.Context, w io.Writer, output string) error {
	st, _, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer st.Close()

	doc, err := ioexport.Developers(ctx, st)
	if err != nil {
		return err
	}

	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return ioexport.ExportError(err)
		}
		defer f.Close()
		w = f
	}

	if err = ioexport.Write(w, doc); err != nil {
		return err
	}

	if output != "" {
		gn.Info("Exported <em>%s</em> developers to <em>%s</em>",
			humanize.Comma(int64(len(doc.Developers))), output)
	}
	return nil
}
