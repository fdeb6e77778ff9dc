package iostore

import (
	"context"

	"github.com/velocitia/prospectsdata/internal/iodb"
	"github.com/velocitia/prospectsdata/pkg/config"
	"github.com/velocitia/prospectsdata/pkg/db"
)

// Open connects to the store selected by the driver setting. The
// operator is returned for PostgreSQL and is nil for SQLite.
func Open(
	ctx context.Context,
	cfg *config.DatabaseConfig,
) (Store, db.Operator, error) {
	if cfg.Driver == "sqlite" {
		st, err := OpenSQLite(cfg.SQLitePath)
		return st, nil, err
	}

	op := iodb.NewPgxOperator()
	if err := op.Connect(ctx, cfg); err != nil {
		return nil, nil, err
	}
	return NewPgx(op), op, nil
}
