// Package store persists converted register records in PostgreSQL.
//
// Each import replaces the previous contents of the toponyms table inside
// a single transaction and is recorded in toponym_imports under a fresh id.
package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/JonMunkholm/toponyms/internal/config"
	"github.com/JonMunkholm/toponyms/internal/register"
)

// ErrNoImports is returned by LatestImport on an empty database.
var ErrNoImports = errors.New("no imports recorded")

// DB is the subset of *pgxpool.Pool used by Store.
type DB interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
}

// Store reads and writes register records.
type Store struct {
	db DB
}

// New wraps an existing connection pool.
func New(db DB) *Store {
	return &Store{db: db}
}

// Open connects a pool configured from cfg and verifies it with a ping.
// The caller closes the returned pool.
func Open(ctx context.Context, cfg config.DatabaseConfig) (*Store, *pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.URL)
	if err != nil {
		return nil, nil, fmt.Errorf("parse database URL: %w", err)
	}

	poolConfig.MaxConns = int32(cfg.MaxConns)
	poolConfig.MinConns = int32(cfg.MinConns)
	poolConfig.MaxConnLifetime = cfg.MaxConnLifetime
	poolConfig.MaxConnIdleTime = cfg.MaxConnIdleTime

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, nil, fmt.Errorf("connect to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("ping database: %w", err)
	}

	slog.Info("connected to database", "database", poolConfig.ConnConfig.Database)
	return New(pool), pool, nil
}

// Ping checks database connectivity.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.Ping(ctx)
}

const schemaSQL = `
CREATE TABLE IF NOT EXISTS toponym_imports (
	id           UUID PRIMARY KEY,
	imported_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
	source       TEXT NOT NULL DEFAULT '',
	record_count INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS toponyms (
	level1     TEXT NOT NULL,
	level2     TEXT,
	level3     TEXT,
	level4     TEXT,
	level5     TEXT,
	category   CHAR(1) NOT NULL,
	name       TEXT NOT NULL,
	name_dstua TEXT NOT NULL,
	name_dstub TEXT NOT NULL,
	name_kmu   TEXT NOT NULL,
	import_id  UUID NOT NULL REFERENCES toponym_imports (id)
);

CREATE INDEX IF NOT EXISTS toponyms_category_idx ON toponyms (category);
CREATE INDEX IF NOT EXISTS toponyms_codes_idx ON toponyms (level1, level2, level3, level4, level5);
`

// Migrate creates the tables if they do not exist.
func (s *Store) Migrate(ctx context.Context) error {
	if _, err := s.db.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

// Import replaces all stored records with recs and returns the new import id.
func (s *Store) Import(ctx context.Context, source string, recs []register.Record) (uuid.UUID, error) {
	for _, rec := range recs {
		if err := rec.Validate(); err != nil {
			return uuid.Nil, fmt.Errorf("import: %w", err)
		}
	}

	id, err := uuid.NewRandom()
	if err != nil {
		return uuid.Nil, fmt.Errorf("generate import id: %w", err)
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return uuid.Nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx) // no-op after commit

	if _, err := tx.Exec(ctx,
		`INSERT INTO toponym_imports (id, source, record_count) VALUES ($1, $2, $3)`,
		id, source, len(recs),
	); err != nil {
		return uuid.Nil, fmt.Errorf("insert import: %w", err)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM toponyms`); err != nil {
		return uuid.Nil, fmt.Errorf("clear toponyms: %w", err)
	}

	n, err := tx.CopyFrom(ctx, pgx.Identifier{"toponyms"}, copyColumns, copySource(recs, id))
	if err != nil {
		return uuid.Nil, fmt.Errorf("copy toponyms: %w", err)
	}
	if int(n) != len(recs) {
		return uuid.Nil, fmt.Errorf("copy toponyms: wrote %d of %d rows", n, len(recs))
	}

	if err := tx.Commit(ctx); err != nil {
		return uuid.Nil, fmt.Errorf("commit import: %w", err)
	}

	slog.Info("import stored", "import_id", id, "source", source, "records", n)
	return id, nil
}

// Records returns stored records of the given categories, or all of them,
// ordered by codes.
func (s *Store) Records(ctx context.Context, cats ...register.Category) ([]register.Record, error) {
	filter := make([]string, len(cats))
	for i, c := range cats {
		filter[i] = string(c)
	}

	rows, err := s.db.Query(ctx, `
		SELECT level1, level2, level3, level4, level5, category, name, name_dstua, name_dstub, name_kmu
		FROM toponyms
		WHERE cardinality($1::text[]) = 0 OR category = ANY($1::text[])
		ORDER BY level1 COLLATE "C",
			level2 COLLATE "C" NULLS FIRST,
			level3 COLLATE "C" NULLS FIRST,
			level4 COLLATE "C" NULLS FIRST,
			level5 COLLATE "C" NULLS FIRST`,
		filter,
	)
	if err != nil {
		return nil, fmt.Errorf("query toponyms: %w", err)
	}

	recs, err := pgx.CollectRows(rows, scanRecord)
	if err != nil {
		return nil, fmt.Errorf("scan toponyms: %w", err)
	}
	register.SortByCodes(recs)
	return recs, nil
}

// Import describes one stored import.
type Import struct {
	ID         uuid.UUID `json:"id"`
	ImportedAt time.Time `json:"imported_at"`
	Source     string    `json:"source"`
	Records    int       `json:"records"`
}

// LatestImport returns the most recent import.
func (s *Store) LatestImport(ctx context.Context) (Import, error) {
	var imp Import
	err := s.db.QueryRow(ctx, `
		SELECT id, imported_at, source, record_count
		FROM toponym_imports
		ORDER BY imported_at DESC
		LIMIT 1`,
	).Scan(&imp.ID, &imp.ImportedAt, &imp.Source, &imp.Records)
	if errors.Is(err, pgx.ErrNoRows) {
		return Import{}, ErrNoImports
	}
	if err != nil {
		return Import{}, fmt.Errorf("latest import: %w", err)
	}
	return imp, nil
}
