package store

import (
	"database/sql"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
)

// isUniqueViolation reports whether err is a uniqueness-constraint failure
// from either supported driver. The UNIQUE constraint on users.username and
// on (user_id, challenge_id) progress pairs is the authoritative duplicate
// detector — repositories never pre-check before inserting.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgerrcode.UniqueViolation
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
			sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
	}

	return false
}

// isNoRows reports whether err means an empty result set. pgx surfaces
// sql.ErrNoRows through database/sql; the no_data_found code is kept for
// stored-procedure style errors.
func isNoRows(err error) bool {
	if errors.Is(err, sql.ErrNoRows) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgerrcode.NoDataFound
	}

	return false
}
