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

	"github.com/spf13/cobra"
	"github.com/velocitia/prospectsdata/pkg/arabic"
	"github.com/velocitia/prospectsdata/pkg/translate"
)

// getTransliterateCmd returns the transliterate command.
func getTransliterateCmd() *cobra.Command {
	transliterateCmd := &cobra.Command{
		Use:   "transliterate TEXT...",
		Short: "Show English forms of Arabic names",
		Long: `Show the curated translation and the algorithmic
transliteration of every argument.

Examples:
  prospectsdata transliterate "محمد بن راشد"
  prospectsdata transliterate "دبي مارينا" "نخيل"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			trans := loadTranslations(cmd.Context())
			printTransliterations(cmd.OutOrStdout(), trans, args)
			return nil
		},
	}
	return transliterateCmd
}

func printTransliterations(w io.Writer, trans *translate.Store, texts []string) {
	for _, s := range texts {
		s = strings.TrimSpace(s)
		fmt.Fprintln(w, s)
		if !arabic.ContainsArabic(s) {
			fmt.Fprintln(w, "  no Arabic letters")
			continue
		}
		if en, ok := trans.Translate(s); ok {
			fmt.Fprintf(w, "  curated:        %s\n", en)
		} else {
			fmt.Fprintln(w, "  curated:        -")
		}
		fmt.Fprintf(w, "  transliterated: %s\n", arabic.Transliterate(s))
	}
}
