package kv

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/journalquiz/internal/filex"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

// Supported database/sql driver names.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "pgx"
)

//go:embed migrations
var migrations embed.FS

func init() {
	// modernc registers "sqlite", which sqlx does not know by default.
	sqlx.BindDriver(DriverSQLite, sqlx.QUESTION)
}

// migrationSet returns the goose dialect and embedded directory for driver.
func migrationSet(driver string) (dialect string, dir string, err error) {
	switch driver {
	case DriverSQLite:
		return "sqlite3", "migrations/sqlite", nil
	case DriverPostgres:
		return "pgx", "migrations/postgres", nil
	default:
		return "", "", fmt.Errorf("unsupported database driver %q", driver)
	}
}

// RunMigrations applies the embedded goose migrations for driver.
func RunMigrations(ctx context.Context, db *sql.DB, driver string) error {
	dialect, dir, err := migrationSet(driver)
	if err != nil {
		return err
	}

	goose.SetBaseFS(migrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, dir)
}

// Open connects to the store and brings its schema up to date.
//
// SQLite is limited to a single connection: the store is single-writer and
// an in-memory DSN would otherwise give every connection its own database.
func Open(ctx context.Context, driver, dsn string) (*sqlx.DB, error) {
	if _, _, err := migrationSet(driver); err != nil {
		return nil, err
	}

	if driver == DriverSQLite && isSQLiteFile(dsn) {
		if err := filex.EnsureParentDir(dsn); err != nil {
			return nil, fmt.Errorf("db dir error: %w", err)
		}
	}

	db, err := sqlx.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	if driver == DriverSQLite {
		db.SetMaxOpenConns(1)
		if _, err := db.ExecContext(ctx, `PRAGMA busy_timeout=5000`); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("db pragma error: %w", err)
		}
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db ping error: %w", err)
	}

	if err := RunMigrations(ctx, db.DB, driver); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration error: %w", err)
	}

	return db, nil
}

// isSQLiteFile reports a plain file path DSN, as opposed to :memory: or a
// file: URI.
func isSQLiteFile(dsn string) bool {
	return dsn != "" && dsn != ":memory:" && !strings.HasPrefix(dsn, "file:")
}
