package iostore

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/velocitia/prospectsdata/internal/ioschema"
	"github.com/velocitia/prospectsdata/pkg/db"
	"github.com/velocitia/prospectsdata/pkg/importer"
	"github.com/velocitia/prospectsdata/pkg/schema"
)

type pgxStore struct {
	op db.Operator
}

// NewPgx creates a PostgreSQL store on a connected operator. Closing the
// store closes the operator.
func NewPgx(op db.Operator) Store {
	return &pgxStore{op: op}
}

func (s *pgxStore) Dialect() schema.Dialect {
	return schema.Postgres
}

func (s *pgxStore) Upsert(
	ctx context.Context,
	table string,
	b importer.Batch,
	conflict []string,
) error {
	return s.run(ctx, table, upsertStatements(schema.Postgres, table, b, conflict))
}

func (s *pgxStore) Insert(
	ctx context.Context,
	table string,
	b importer.Batch,
) error {
	return s.run(ctx, table, insertStatements(schema.Postgres, table, b, ""))
}

func (s *pgxStore) Increment(
	ctx context.Context,
	table string,
	b importer.Batch,
	conflict []string,
	counter string,
) error {
	stmts := incrementStatements(schema.Postgres, table, b, conflict, counter)
	return s.run(ctx, table, stmts)
}

// run executes statements in one transaction.
func (s *pgxStore) run(ctx context.Context, table string, stmts []statement) error {
	if len(stmts) == 0 {
		return nil
	}
	pool := s.op.Pool()
	if pool == nil {
		return ExecError(table, fmt.Errorf("not connected"))
	}

	return pgx.BeginFunc(ctx, pool, func(tx pgx.Tx) error {
		for _, st := range stmts {
			if _, err := tx.Exec(ctx, st.query, st.args...); err != nil {
				return ExecError(table, err)
			}
		}
		return nil
	})
}

// EnsureTables creates registered tables and the import log.
func (s *pgxStore) EnsureTables(ctx context.Context) error {
	return ioschema.NewManager(s.op).Create(ctx)
}

func (s *pgxStore) HasTables(ctx context.Context, tables []string) (bool, error) {
	return s.op.HasTables(ctx, tables)
}

func (s *pgxStore) DropTables(ctx context.Context, tables []string) error {
	return s.op.DropTables(ctx, tables)
}

func (s *pgxStore) Count(ctx context.Context, table string) (int, error) {
	pool := s.op.Pool()
	if pool == nil {
		return 0, QueryError(table, fmt.Errorf("not connected"))
	}
	q, args := countQuery(schema.Postgres, table)
	var res int
	if err := pool.QueryRow(ctx, q, args...).Scan(&res); err != nil {
		return 0, QueryError(table, err)
	}
	return res, nil
}

func (s *pgxStore) Companies(ctx context.Context, typ string) ([]Company, error) {
	pool := s.op.Pool()
	if pool == nil {
		return nil, QueryError(schema.Companies, fmt.Errorf("not connected"))
	}
	q, args := companiesQuery(schema.Postgres, typ)
	rows, err := pool.Query(ctx, q, args...)
	if err != nil {
		return nil, QueryError(schema.Companies, err)
	}
	defer rows.Close()

	var res []Company
	for rows.Next() {
		var c Company
		err = rows.Scan(&c.LicenseNo, &c.NameEn, &c.Type, &c.ProjectCount)
		if err != nil {
			return nil, QueryError(schema.Companies, err)
		}
		res = append(res, c)
	}
	if err = rows.Err(); err != nil {
		return nil, QueryError(schema.Companies, err)
	}
	return res, nil
}

func (s *pgxStore) Close() error {
	return s.op.Close()
}
