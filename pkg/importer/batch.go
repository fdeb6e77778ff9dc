package importer

import (
	"fmt"
	"strings"

	"github.com/velocitia/prospectsdata/pkg/schema"
)

// Batch is a set of rows sent to the store in one call. Every row has a
// value for every column, absent values are nil.
type Batch struct {
	Columns []string
	Rows    [][]any
}

// Len returns the number of rows.
func (b Batch) Len() int {
	return len(b.Rows)
}

// NewBatch creates a batch from records. Columns are the union of record
// keys in the order of the table definition.
func NewBatch(def schema.Definition, recs []Record) Batch {
	var cols []string
	for _, col := range def.Columns {
		for _, r := range recs {
			if _, ok := r[col.Name]; ok {
				cols = append(cols, col.Name)
				break
			}
		}
	}

	rows := make([][]any, len(recs))
	for i, r := range recs {
		row := make([]any, len(cols))
		for j, c := range cols {
			row[j] = r[c]
		}
		rows[i] = row
	}
	return Batch{Columns: cols, Rows: rows}
}

// Dedupe keeps only the last row for every conflict key value. A single
// upsert statement cannot touch the same row twice, so batches for
// upserts have to be deduplicated. Rows keep the order of the first
// appearance of their key. Rows with a nil key never conflict and are all
// kept.
func (b Batch) Dedupe(key []string) Batch {
	idx := make([]int, 0, len(key))
	for _, k := range key {
		for i, c := range b.Columns {
			if c == k {
				idx = append(idx, i)
			}
		}
	}
	if len(idx) != len(key) {
		return b
	}

	pos := make(map[string]int, len(b.Rows))
	rows := make([][]any, 0, len(b.Rows))
	for _, row := range b.Rows {
		parts := make([]string, len(idx))
		var hasNil bool
		for i, j := range idx {
			if row[j] == nil {
				hasNil = true
				break
			}
			parts[i] = fmt.Sprintf("%v", row[j])
		}
		if hasNil {
			rows = append(rows, row)
			continue
		}
		k := strings.Join(parts, "\x00")
		if p, ok := pos[k]; ok {
			rows[p] = row
			continue
		}
		pos[k] = len(rows)
		rows = append(rows, row)
	}
	return Batch{Columns: b.Columns, Rows: rows}
}
