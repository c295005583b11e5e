package store

import (
	"database/sql"

	"github.com/MKhiriev/go-ctf-game/internal/logger"
	"github.com/MKhiriev/go-ctf-game/migrations"
)

// DB wraps the raw *sql.DB together with the dialect it was opened with,
// so repositories and migrations can stay driver-agnostic.
type DB struct {
	*sql.DB
	dialect string
	logger  *logger.Logger
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}
