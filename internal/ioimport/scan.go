package ioimport

import (
	"context"
	"errors"
	"io"

	"github.com/velocitia/prospectsdata/pkg/importer"
	"github.com/velocitia/prospectsdata/pkg/translate"
)

// Scan reads the whole file and returns distinct Arabic values of the
// translation-enabled columns that have no curated translation, in order
// of first appearance, together with the number of data rows.
func (p *pipeline) Scan(
	ctx context.Context,
	plan importer.Plan,
	store *translate.Store,
) ([]string, int, error) {
	f, err := openCSV(plan.File)
	if err != nil {
		return nil, 0, err
	}
	defer f.close()

	m := importer.NewMapper(plan, store, importer.KeepArabic, "")
	translating := m.Translating()

	var res []string
	seen := make(map[string]struct{})
	var count int
	for {
		if count%1_000 == 0 {
			if err = ctx.Err(); err != nil {
				return nil, count, err
			}
		}
		row, err := f.next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, count, err
		}
		count++
		if !translating {
			continue
		}
		for _, v := range m.Untranslated(row) {
			if _, ok := seen[v]; ok {
				continue
			}
			seen[v] = struct{}{}
			res = append(res, v)
		}
	}
	return res, count, nil
}
