// Package repomanager provides the RepositoryManager implementations: a
// PostgreSQL one wiring repository constructors, transactions and goose
// migrations, and an in-memory one for tests and single-node development.
package repomanager

import (
	"context"
	"database/sql"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/dmitrijs2005/secureshare/internal/dbx"
	"github.com/dmitrijs2005/secureshare/internal/server/migrations"
	"github.com/dmitrijs2005/secureshare/internal/server/repositories/activities"
	"github.com/dmitrijs2005/secureshare/internal/server/repositories/certificates"
	"github.com/dmitrijs2005/secureshare/internal/server/repositories/contents"
	"github.com/dmitrijs2005/secureshare/internal/server/repositories/pins"
	"github.com/dmitrijs2005/secureshare/internal/server/repositories/sessions"
)

// PostgresRepositoryManager vends PostgreSQL-backed repositories bound to a
// *sql.Tx and exposes a schema migration hook.
type PostgresRepositoryManager struct {
	db *sql.DB
}

func (m *PostgresRepositoryManager) Contents(db dbx.DBTX) contents.Repository {
	return contents.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Pins(db dbx.DBTX) pins.Repository {
	return pins.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Sessions(db dbx.DBTX) sessions.Repository {
	return sessions.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Activities(db dbx.DBTX) activities.Repository {
	return activities.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Certificates(db dbx.DBTX) certificates.Repository {
	return certificates.NewPostgresRepository(db)
}

// txRepositories binds the manager's factories to one transaction.
type txRepositories struct {
	m  *PostgresRepositoryManager
	tx dbx.DBTX
}

func (r txRepositories) Contents() contents.Repository         { return r.m.Contents(r.tx) }
func (r txRepositories) Pins() pins.Repository                 { return r.m.Pins(r.tx) }
func (r txRepositories) Sessions() sessions.Repository         { return r.m.Sessions(r.tx) }
func (r txRepositories) Activities() activities.Repository     { return r.m.Activities(r.tx) }
func (r txRepositories) Certificates() certificates.Repository { return r.m.Certificates(r.tx) }

func (m *PostgresRepositoryManager) WithTx(ctx context.Context, fn func(ctx context.Context, r Repositories) error) error {
	return dbx.WithTx(ctx, m.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return fn(ctx, txRepositories{m: m, tx: tx})
	})
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations sets up goose with the embedded migrations and runs them.
func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	if err := gooseUpContext(ctx, m.db, "."); err != nil {
		return err
	}
	return nil
}

func (m *PostgresRepositoryManager) Close() error {
	return m.db.Close()
}

// NewPostgresRepositoryManager constructs a PostgreSQL-backed RepositoryManager.
func NewPostgresRepositoryManager(db *sql.DB) (*PostgresRepositoryManager, error) {
	return &PostgresRepositoryManager{db: db}, nil
}

// OpenPostgres opens a pgx-backed *sql.DB for dsn and verifies connectivity.
func OpenPostgres(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}
