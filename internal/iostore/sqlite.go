package iostore

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/huandu/go-sqlbuilder"
	"github.com/velocitia/prospectsdata/pkg/importer"
	"github.com/velocitia/prospectsdata/pkg/schema"
	_ "modernc.org/sqlite"
)

type sqliteStore struct {
	db *sql.DB
}

// OpenSQLite opens or creates a SQLite database file. The path
// ":memory:" creates a private in-memory database.
func OpenSQLite(path string) (Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, OpenError(path, err)
	}

	// every connection to :memory: is a separate database, and SQLite
	// allows one writer anyway
	db.SetMaxOpenConns(1)

	if err = db.Ping(); err != nil {
		db.Close()
		return nil, OpenError(path, err)
	}
	return &sqliteStore{db: db}, nil
}

func (s *sqliteStore) Dialect() schema.Dialect {
	return schema.SQLite
}

func (s *sqliteStore) Upsert(
	ctx context.Context,
	table string,
	b importer.Batch,
	conflict []string,
) error {
	return s.run(ctx, table, upsertStatements(schema.SQLite, table, b, conflict))
}

func (s *sqliteStore) Insert(
	ctx context.Context,
	table string,
	b importer.Batch,
) error {
	return s.run(ctx, table, insertStatements(schema.SQLite, table, b, ""))
}

func (s *sqliteStore) Increment(
	ctx context.Context,
	table string,
	b importer.Batch,
	conflict []string,
	counter string,
) error {
	stmts := incrementStatements(schema.SQLite, table, b, conflict, counter)
	return s.run(ctx, table, stmts)
}

func (s *sqliteStore) run(ctx context.Context, table string, stmts []statement) error {
	if len(stmts) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return ExecError(table, err)
	}
	defer tx.Rollback()

	for _, st := range stmts {
		if _, err = tx.ExecContext(ctx, st.query, st.args...); err != nil {
			return ExecError(table, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return ExecError(table, err)
	}
	return nil
}

func (s *sqliteStore) EnsureTables(ctx context.Context) error {
	for _, def := range schema.All() {
		ddl := schema.CreateTableDDL(def, schema.SQLite)
		if _, err := s.db.ExecContext(ctx, ddl); err != nil {
			return ExecError(def.Table, err)
		}
	}
	return nil
}

func (s *sqliteStore) HasTables(ctx context.Context, tables []string) (bool, error) {
	if len(tables) == 0 {
		return false, nil
	}
	sb := sqlbuilder.SQLite.NewSelectBuilder()
	sb.Select("COUNT(*)").From("sqlite_master")
	sb.Where(
		sb.Equal("type", "table"),
		sb.In("name", sqlbuilder.Flatten(tables)...),
	)
	q, args := sb.Build()

	var n int
	if err := s.db.QueryRowContext(ctx, q, args...).Scan(&n); err != nil {
		return false, QueryError(strings.Join(tables, ", "), err)
	}
	return n > 0, nil
}

func (s *sqliteStore) DropTables(ctx context.Context, tables []string) error {
	for _, table := range tables {
		q := fmt.Sprintf("DROP TABLE IF EXISTS %s", table)
		if _, err := s.db.ExecContext(ctx, q); err != nil {
			return ExecError(table, err)
		}
	}
	return nil
}

func (s *sqliteStore) Count(ctx context.Context, table string) (int, error) {
	q, args := countQuery(schema.SQLite, table)
	var res int
	if err := s.db.QueryRowContext(ctx, q, args...).Scan(&res); err != nil {
		return 0, QueryError(table, err)
	}
	return res, nil
}

func (s *sqliteStore) Companies(ctx context.Context, typ string) ([]Company, error) {
	q, args := companiesQuery(schema.SQLite, typ)
	rows, err := s.db.QueryContext(ctx, q, args...)
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

func (s *sqliteStore) Close() error {
	return s.db.Close()
}
