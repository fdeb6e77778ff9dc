package db

import "context"

// SchemaManager creates the tables of the target database.
// Creation is idempotent, existing tables are kept.
type SchemaManager interface {
	// Create creates registered tables and the import log.
	Create(ctx context.Context) error
}
