package iostore

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/velocitia/prospectsdata/pkg/importer"
	"github.com/velocitia/prospectsdata/pkg/schema"
)

func TestOnConflict(t *testing.T) {
	tests := []struct {
		msg      string
		cols     []string
		conflict []string
		counter  string
		res      string
	}{
		{
			msg:      "plain upsert",
			cols:     []string{"munc_zip_code", "area_name_en"},
			conflict: []string{"munc_zip_code"},
			res: " ON CONFLICT (munc_zip_code) DO UPDATE SET " +
				"area_name_en = EXCLUDED.area_name_en",
		},
		{
			msg:      "counter",
			cols:     []string{"license_no", "name_en", "type", "project_count"},
			conflict: []string{"license_no", "type"},
			counter:  "project_count",
			res: " ON CONFLICT (license_no, type) DO UPDATE SET " +
				"name_en = EXCLUDED.name_en, project_count = " +
				"COALESCE(companies.project_count, 0) + EXCLUDED.project_count",
		},
		{
			msg:      "key only",
			cols:     []string{"munc_zip_code"},
			conflict: []string{"munc_zip_code"},
			res:      " ON CONFLICT (munc_zip_code) DO NOTHING",
		},
	}

	for _, v := range tests {
		t.Run(v.msg, func(t *testing.T) {
			table := schema.Areas
			if v.counter != "" {
				table = schema.Companies
			}
			assert.Equal(t, v.res, onConflict(table, v.cols, v.conflict, v.counter))
		})
	}
}

func TestInsertStatements(t *testing.T) {
	b := importer.Batch{
		Columns: []string{"munc_zip_code", "area_name_en"},
		Rows:    [][]any{{1.0, "Al Barsha"}, {2.0, "Deira"}},
	}

	t.Run("postgres", func(t *testing.T) {
		stmts := insertStatements(schema.Postgres, schema.Areas, b, "")
		require.Len(t, stmts, 1)
		q := stmts[0].query
		assert.True(t, strings.HasPrefix(q, "INSERT INTO areas"))
		assert.Contains(t, q, "$4")
		assert.Equal(t, []any{1.0, "Al Barsha", 2.0, "Deira"}, stmts[0].args)
	})

	t.Run("sqlite", func(t *testing.T) {
		stmts := insertStatements(schema.SQLite, schema.Areas, b, " ON CONFLICT")
		require.Len(t, stmts, 1)
		q := stmts[0].query
		assert.Equal(t, 4, strings.Count(q, "?"))
		assert.True(t, strings.HasSuffix(q, " ON CONFLICT"))
	})

	t.Run("empty", func(t *testing.T) {
		assert.Empty(t, insertStatements(schema.SQLite, schema.Areas,
			importer.Batch{Columns: b.Columns}, ""))
	})

	t.Run("split by parameter limit", func(t *testing.T) {
		cols := []string{"license_no", "name_en", "type"}
		per := maxParams(schema.Postgres) / len(cols)
		big := importer.Batch{Columns: cols, Rows: make([][]any, per+1)}
		for i := range big.Rows {
			big.Rows[i] = []any{float64(i + 1), "Emaar", "developer"}
		}

		stmts := insertStatements(schema.Postgres, schema.Companies, big, "")
		require.Len(t, stmts, 2)
		assert.Len(t, stmts[0].args, per*len(cols))
		assert.Len(t, stmts[1].args, len(cols))
	})
}

func TestUpsertStatementsDedupe(t *testing.T) {
	b := importer.Batch{
		Columns: []string{"munc_zip_code", "area_name_en"},
		Rows: [][]any{
			{1.0, "Al Barsha"},
			{2.0, "Deira"},
			{1.0, "Al Barsha South"},
		},
	}
	stmts := upsertStatements(schema.SQLite, schema.Areas, b, []string{"munc_zip_code"})
	require.Len(t, stmts, 1)
	assert.Equal(t, []any{1.0, "Al Barsha South", 2.0, "Deira"}, stmts[0].args)
}
