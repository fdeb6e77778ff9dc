// Package iostore implements importer.Store over PostgreSQL and SQLite.
// This is an impure I/O package. SQL statements are generated with
// go-sqlbuilder in the flavor of the backend.
package iostore

import (
	"context"

	"github.com/velocitia/prospectsdata/pkg/importer"
	"github.com/velocitia/prospectsdata/pkg/schema"
)

// Company is a row of the companies directory.
type Company struct {
	LicenseNo    float64
	NameEn       string
	Type         string
	ProjectCount float64
}

// Store is a target store that also manages its tables.
type Store interface {
	importer.Store

	// Dialect returns the SQL dialect of the backend.
	Dialect() schema.Dialect

	// EnsureTables creates all registered tables that do not exist yet.
	EnsureTables(ctx context.Context) error

	// HasTables checks if any of the given tables exist.
	HasTables(ctx context.Context, tables []string) (bool, error)

	// DropTables drops the given tables if they exist.
	DropTables(ctx context.Context, tables []string) error

	// Count returns the number of rows in a table.
	Count(ctx context.Context, table string) (int, error)

	// Companies returns companies of the given type ordered by license.
	Companies(ctx context.Context, typ string) ([]Company, error)
}
