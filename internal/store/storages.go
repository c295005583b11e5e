package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-ctf-game/internal/config"
	"github.com/MKhiriev/go-ctf-game/internal/logger"
)

// Storages groups all repositories into a single value that can be passed
// to the service layer.
type Storages struct {
	UserRepository      UserRepository
	ChallengeRepository ChallengeRepository
	GameRepository      GameRepository
}

// NewStorages initialises the storage layer using the supplied configuration
// and logger. It performs the following steps:
//  1. Opens a database connection for the DSN in cfg.DB — a postgres:// URI
//     selects the pgx driver, anything else is treated as a SQLite file
//     path (created on first run).
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Constructs a [Storages] value wired to fresh repositories sharing the
//     connection.
//
// Returns an error if the database connection cannot be established or if
// migration fails.
func NewStorages(cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	ctx := context.Background()

	var (
		db  *DB
		err error
	)
	if isPostgresDSN(cfg.DB.DSN) {
		db, err = NewConnectPostgres(ctx, cfg.DB, logger)
	} else {
		db, err = NewConnectSQLite(ctx, cfg.DB, logger)
	}
	if err != nil {
		return nil, fmt.Errorf("database connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		UserRepository:      NewUserRepository(db, logger),
		ChallengeRepository: NewChallengeRepository(db, logger),
		GameRepository:      NewGameRepository(db, logger),
	}, nil
}

func isPostgresDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}
