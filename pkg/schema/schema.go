// Package schema declares the importable target tables.
//
// Every table is described by a Definition: its columns with their
// semantic types, which of them are required, which may hold Arabic names
// that should be translated, and the conflict key used to decide between
// insert and update. Definitions are static and never change at runtime.
package schema

import (
	"fmt"
	"slices"
)

// Type is a semantic type of a column. It drives coercion of raw CSV
// values.
type Type string

const (
	Text    Type = "text"
	Number  Type = "number"
	Date    Type = "date"
	Boolean Type = "boolean"
)

// SurrogateKey is the generated identity column every table has.
// Tables keyed by it can only be appended to.
const SurrogateKey = "id"

// Column describes one target column.
type Column struct {
	Name string
	Type Type
	// Required columns must have a value, rows without it are skipped.
	Required bool
	// Translatable columns may contain Arabic names that can be converted
	// to English during import.
	Translatable bool
}

// Definition describes an importable table.
type Definition struct {
	// Table is the name of the table in the store.
	Table string
	// DisplayName is a human readable name of the table.
	DisplayName string
	// ConflictKey lists columns that identify a row for upserts.
	ConflictKey []string
	// Columns are ordered as they appear in the table.
	Columns []Column
}

// Column returns a column by its name.
func (d Definition) Column(name string) (Column, bool) {
	for _, c := range d.Columns {
		if c.Name == name {
			return c, true
		}
	}
	return Column{}, false
}

// ColumnNames returns names of all columns in table order.
func (d Definition) ColumnNames() []string {
	res := make([]string, len(d.Columns))
	for i, c := range d.Columns {
		res[i] = c.Name
	}
	return res
}

// Required returns columns that must have a value.
func (d Definition) Required() []Column {
	return d.filter(func(c Column) bool { return c.Required })
}

// Optional returns columns that may stay empty.
func (d Definition) Optional() []Column {
	return d.filter(func(c Column) bool { return !c.Required })
}

// Translatable returns columns eligible for Arabic to English conversion.
func (d Definition) Translatable() []Column {
	return d.filter(func(c Column) bool { return c.Translatable })
}

func (d Definition) filter(fn func(Column) bool) []Column {
	var res []Column
	for _, c := range d.Columns {
		if fn(c) {
			res = append(res, c)
		}
	}
	return res
}

// Upsertable is true when rows can be matched by a natural key. Tables
// keyed by the surrogate id accept inserts only.
func (d Definition) Upsertable() bool {
	return len(d.ConflictKey) > 0 &&
		!(len(d.ConflictKey) == 1 && d.ConflictKey[0] == SurrogateKey)
}

// Validate checks that column names are unique, types are known and the
// conflict key refers to existing columns.
func (d Definition) Validate() error {
	if d.Table == "" {
		return fmt.Errorf("definition without table name")
	}
	seen := make(map[string]struct{}, len(d.Columns))
	for _, c := range d.Columns {
		if c.Name == "" {
			return fmt.Errorf("%s: column without name", d.Table)
		}
		if _, ok := seen[c.Name]; ok {
			return fmt.Errorf("%s: duplicate column %s", d.Table, c.Name)
		}
		seen[c.Name] = struct{}{}
		if !slices.Contains([]Type{Text, Number, Date, Boolean}, c.Type) {
			return fmt.Errorf("%s: column %s has unknown type '%s'",
				d.Table, c.Name, c.Type)
		}
		if c.Translatable && c.Type != Text {
			return fmt.Errorf("%s: translatable column %s is not text",
				d.Table, c.Name)
		}
	}
	if len(d.ConflictKey) == 0 {
		return fmt.Errorf("%s: empty conflict key", d.Table)
	}
	if !d.Upsertable() {
		return nil
	}
	for _, k := range d.ConflictKey {
		if _, ok := seen[k]; !ok {
			return fmt.Errorf("%s: conflict key column %s does not exist",
				d.Table, k)
		}
	}
	return nil
}
