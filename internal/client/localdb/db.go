// Package localdb opens the client's SQLite history database and applies
// its embedded migrations.
package localdb

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"

	"github.com/dmitrijs2005/secureshare/internal/client/migrations"
	"github.com/dmitrijs2005/secureshare/internal/client/repositories/shares"

	_ "modernc.org/sqlite"
)

type Repositories struct {
	DB     *sql.DB
	Shares shares.Repository
}

func (r *Repositories) Close() error {
	return r.DB.Close()
}

func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}
	return goose.UpContext(ctx, db, ".")
}

// InitDatabase opens (creating if needed) the SQLite file at dsn and brings
// its schema up to date.
func InitDatabase(ctx context.Context, dsn string) (*Repositories, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	if err := RunMigrations(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return &Repositories{DB: db, Shares: shares.NewSQLiteRepository(db)}, nil
}
