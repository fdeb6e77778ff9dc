package schema

import (
	"fmt"
	"strings"
)

// Dialect is the SQL flavor of a store.
type Dialect int

const (
	Postgres Dialect = iota
	SQLite
)

func (d Dialect) String() string {
	switch d {
	case Postgres:
		return "postgres"
	case SQLite:
		return "sqlite"
	default:
		return "unknown"
	}
}

func (d Dialect) columnType(t Type) string {
	switch t {
	case Number:
		if d == SQLite {
			return "REAL"
		}
		return "DOUBLE PRECISION"
	case Date:
		if d == SQLite {
			return "TEXT"
		}
		return "DATE"
	case Boolean:
		if d == SQLite {
			return "INTEGER"
		}
		return "BOOLEAN"
	default:
		return "TEXT"
	}
}

func (d Dialect) identity() string {
	if d == SQLite {
		return "INTEGER PRIMARY KEY AUTOINCREMENT"
	}
	return "BIGINT GENERATED BY DEFAULT AS IDENTITY PRIMARY KEY"
}

// CreateTableDDL returns a CREATE TABLE IF NOT EXISTS statement for the
// definition. Every table gets a surrogate identity column. Tables with a
// natural conflict key get a UNIQUE constraint on it, which upserts rely
// on.
func CreateTableDDL(def Definition, d Dialect) string {
	cols := make([]string, 0, len(def.Columns)+2)
	cols = append(cols, fmt.Sprintf("    %s %s", SurrogateKey, d.identity()))
	for _, c := range def.Columns {
		line := fmt.Sprintf("    %s %s", c.Name, d.columnType(c.Type))
		if c.Name == "project_count" {
			line += " DEFAULT 0"
		}
		cols = append(cols, line)
	}
	if def.Upsertable() {
		cols = append(cols, fmt.Sprintf("    CONSTRAINT %s_key UNIQUE (%s)",
			def.Table, strings.Join(def.ConflictKey, ", ")))
	}

	return fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (\n%s\n);",
		def.Table, strings.Join(cols, ",\n"))
}

// AllDDL returns CREATE TABLE statements of all registered tables.
func AllDDL(d Dialect) []string {
	res := make([]string, len(definitions))
	for i, def := range definitions {
		res[i] = CreateTableDDL(def, d)
	}
	return res
}
