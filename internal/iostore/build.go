package iostore

import (
	"fmt"
	"slices"
	"strings"

	"github.com/huandu/go-sqlbuilder"
	"github.com/velocitia/prospectsdata/pkg/importer"
	"github.com/velocitia/prospectsdata/pkg/schema"
)

// statement is a query with its arguments.
type statement struct {
	query string
	args  []any
}

func flavor(d schema.Dialect) sqlbuilder.Flavor {
	if d == schema.SQLite {
		return sqlbuilder.SQLite
	}
	return sqlbuilder.PostgreSQL
}

// maxParams is the bind-parameter limit of a single statement.
func maxParams(d schema.Dialect) int {
	if d == schema.SQLite {
		return 32_766
	}
	return 65_535
}

// insertStatements builds INSERT statements for a batch. Rows are split
// into several statements when their parameters exceed the backend limit.
// The suffix is appended to every statement.
func insertStatements(
	d schema.Dialect,
	table string,
	b importer.Batch,
	suffix string,
) []statement {
	if b.Len() == 0 || len(b.Columns) == 0 {
		return nil
	}

	perStmt := max(maxParams(d)/len(b.Columns), 1)
	res := make([]statement, 0, b.Len()/perStmt+1)
	for rows := range slices.Chunk(b.Rows, perStmt) {
		ib := flavor(d).NewInsertBuilder()
		ib.InsertInto(table)
		ib.Cols(b.Columns...)
		for _, row := range rows {
			ib.Values(row...)
		}
		query, args := ib.Build()
		res = append(res, statement{query: query + suffix, args: args})
	}
	return res
}

// onConflict returns the upsert clause. Columns outside of the conflict
// key take the incoming values, the counter column is added to the stored
// value. When nothing is left to update the conflicting rows are kept.
func onConflict(table string, cols, conflict []string, counter string) string {
	var set []string
	for _, c := range cols {
		if slices.Contains(conflict, c) {
			continue
		}
		if c == counter {
			set = append(set, fmt.Sprintf(
				"%s = COALESCE(%s.%s, 0) + EXCLUDED.%s", c, table, c, c,
			))
			continue
		}
		set = append(set, fmt.Sprintf("%s = EXCLUDED.%s", c, c))
	}

	key := strings.Join(conflict, ", ")
	if len(set) == 0 {
		return fmt.Sprintf(" ON CONFLICT (%s) DO NOTHING", key)
	}
	return fmt.Sprintf(
		" ON CONFLICT (%s) DO UPDATE SET %s", key, strings.Join(set, ", "),
	)
}

func upsertStatements(
	d schema.Dialect,
	table string,
	b importer.Batch,
	conflict []string,
) []statement {
	b = b.Dedupe(conflict)
	return insertStatements(d, table, b,
		onConflict(table, b.Columns, conflict, ""))
}

func incrementStatements(
	d schema.Dialect,
	table string,
	b importer.Batch,
	conflict []string,
	counter string,
) []statement {
	return insertStatements(d, table, b,
		onConflict(table, b.Columns, conflict, counter))
}

func countQuery(d schema.Dialect, table string) (string, []any) {
	sb := flavor(d).NewSelectBuilder()
	sb.Select("COUNT(*)").From(table)
	return sb.Build()
}

func companiesQuery(d schema.Dialect, typ string) (string, []any) {
	sb := flavor(d).NewSelectBuilder()
	sb.Select(
		"license_no",
		"COALESCE(name_en, '')",
		"type",
		"COALESCE(project_count, 0)",
	)
	sb.From(schema.Companies)
	sb.Where(sb.Equal("type", typ))
	sb.OrderBy("license_no")
	return sb.Build()
}
