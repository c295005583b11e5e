package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed sqlite/*.sql postgres/*.sql
var embedMigrations embed.FS

// Dialect names accepted by Migrate. Each maps to its own embedded
// migration directory because SQLite and PostgreSQL disagree on id-column
// and boolean syntax.
const (
	DialectSQLite   = "sqlite3"
	DialectPostgres = "postgres"
)

func Migrate(db *sql.DB, dialect string) error {
	if db == nil {
		return errors.New("migration error: db is nil")
	}

	var dir string
	switch dialect {
	case DialectSQLite:
		dir = "sqlite"
	case DialectPostgres:
		dir = "postgres"
	default:
		return fmt.Errorf("migration error: unsupported dialect %q", dialect)
	}

	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
