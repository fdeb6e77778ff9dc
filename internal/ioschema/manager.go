// Package ioschema implements SchemaManager interface for
// database schema management. This is an impure I/O package.
// Target tables are created from the schema registry, the import
// log table is managed by GORM AutoMigrate.
package ioschema

import (
	"context"

	"github.com/jackc/pgx/v5/stdlib"
	"github.com/velocitia/prospectsdata/pkg/db"
	"github.com/velocitia/prospectsdata/pkg/schema"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// manager implements the db.SchemaManager interface.
type manager struct {
	operator db.Operator
}

// NewManager creates a new SchemaManager.
func NewManager(op db.Operator) db.SchemaManager {
	return &manager{operator: op}
}

// Create creates all registered tables that do not exist yet and
// migrates the import log table.
func (m *manager) Create(ctx context.Context) error {
	pool := m.operator.Pool()
	if pool == nil {
		return NotConnectedError()
	}

	for _, def := range schema.All() {
		ddl := schema.CreateTableDDL(def, schema.Postgres)
		if _, err := pool.Exec(ctx, ddl); err != nil {
			return CreateSchemaError(def.Table, err)
		}
	}

	gormDB, err := OpenGORM(m.operator)
	if err != nil {
		return err
	}

	if err := schema.Migrate(gormDB.WithContext(ctx)); err != nil {
		return CreateSchemaError(schema.ImportLog{}.TableName(), err)
	}

	return nil
}

// OpenGORM returns a GORM handle that shares the operator's
// connection pool.
func OpenGORM(op db.Operator) (*gorm.DB, error) {
	pool := op.Pool()
	if pool == nil {
		return nil, NotConnectedError()
	}

	sqlDB := stdlib.OpenDBFromPool(pool)

	gormDB, err := gorm.Open(
		postgres.New(postgres.Config{Conn: sqlDB}),
		&gorm.Config{Logger: logger.Default.LogMode(logger.Silent)},
	)
	if err != nil {
		return nil, GORMConnectionError(err)
	}
	return gormDB, nil
}
