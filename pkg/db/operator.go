// Package db defines the contract of the PostgreSQL connection operator.
package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/velocitia/prospectsdata/pkg/config"
)

// Operator manages a PostgreSQL connection pool. Stores, schema creation
// and the import log get the pool from it and run their own SQL.
type Operator interface {
	// Connect establishes a connection pool to the database.
	Connect(context.Context, *config.DatabaseConfig) error

	// Close closes the database connection pool.
	Close() error

	// Pool returns the underlying pgxpool.Pool.
	Pool() *pgxpool.Pool

	// TableExists checks if a table exists in the database.
	TableExists(ctx context.Context, tableName string) (bool, error)

	// HasTables checks if any of the given tables exist.
	// Used to decide if schema creation should ask for confirmation.
	HasTables(ctx context.Context, tables []string) (bool, error)

	// DropTables drops the given tables if they exist.
	DropTables(ctx context.Context, tables []string) error
}
