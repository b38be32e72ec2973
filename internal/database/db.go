package database

import (
	"database/sql"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

const (
	DialectSQLite   = "sqlite"
	DialectPostgres = "postgres"
)

// New opens the backing store for the given DSN and applies migrations.
// postgres:// DSNs use pgx; anything else is treated as a sqlite file path.
func New(dsn string) (*sql.DB, string, error) {
	var (
		db      *sql.DB
		dialect string
		err     error
	)
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		dialect = DialectPostgres
		db, err = sql.Open("pgx", dsn)
	} else {
		dialect = DialectSQLite
		db, err = sql.Open("sqlite", strings.TrimPrefix(dsn, "sqlite://"))
	}
	if err != nil {
		return nil, "", err
	}

	if dialect == DialectSQLite {
		// Enable foreign keys and WAL mode
		if _, err := db.Exec(`
			PRAGMA foreign_keys = ON;
			PRAGMA journal_mode = WAL;
		`); err != nil {
			db.Close()
			return nil, "", err
		}
	}

	if err := migrate(db, dialect); err != nil {
		db.Close()
		return nil, "", err
	}

	return db, dialect, nil
}
