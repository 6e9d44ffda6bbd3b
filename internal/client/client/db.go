package client

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/roster/internal/client/kv"
	"github.com/dmitrijs2005/roster/internal/client/migrations"
	"github.com/dmitrijs2005/roster/internal/filex"
	"github.com/pressly/goose/v3"

	_ "modernc.org/sqlite"
)

func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

// InitDatabase opens (creating if needed) the SQLite file at dsn, applies
// migrations and returns the key/value repository on top of it. A plain file
// path gets its parent directory created. The caller owns db and must close
// it.
func InitDatabase(ctx context.Context, dsn string) (*kv.SQLiteRepository, *sql.DB, error) {
	if dsn != ":memory:" && !strings.HasPrefix(dsn, "file:") {
		if _, err := filex.EnsureParentDir(dsn); err != nil {
			return nil, nil, err
		}
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, nil, err
	}
	// one writer at a time keeps read-modify-write transactions from
	// tripping over SQLITE_BUSY
	db.SetMaxOpenConns(1)

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, nil, err
	}

	return kv.NewSQLiteRepository(db), db, nil
}
