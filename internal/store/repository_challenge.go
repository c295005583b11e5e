package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-ctf-game/internal/logger"
	"github.com/MKhiriev/go-ctf-game/models"
)

type challengeRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewChallengeRepository(db *DB, logger *logger.Logger) ChallengeRepository {
	logger.Debug().Msg("creating challenge repository")
	return &challengeRepository{
		db:     db,
		logger: logger,
	}
}

// CreateChallenge persists a new challenge and returns it with
// server-assigned fields (ChallengeID, IsActive, CreatedAt). Titles carry
// no uniqueness constraint; the insert always succeeds for valid input.
func (r *challengeRepository) CreateChallenge(ctx context.Context, challenge models.Challenge) (models.Challenge, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createChallenge,
		challenge.Title,
		challenge.Description,
		challenge.Category,
		challenge.Flag,
		challenge.Points,
		challenge.MaxAttempts,
	)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*challengeRepository.CreateChallenge").Msg("error: row is nil")
		return models.Challenge{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := scanChallenge(row, &challenge); err != nil {
		log.Err(err).Str("func", "*challengeRepository.CreateChallenge").Msg("error: scanning error")
		return models.Challenge{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return challenge, nil
}

// ListActiveChallenges returns all active challenges ordered by point value
// ascending, ties broken by insertion order (id).
func (r *challengeRepository) ListActiveChallenges(ctx context.Context) ([]models.Challenge, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListActiveChallengesQuery()
	if err != nil {
		log.Err(err).Str("func", "*challengeRepository.ListActiveChallenges").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*challengeRepository.ListActiveChallenges").Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var challenges []models.Challenge
	for rows.Next() {
		var challenge models.Challenge
		if scanErr := scanChallenge(rows, &challenge); scanErr != nil {
			log.Err(scanErr).Str("func", "*challengeRepository.ListActiveChallenges").Msg("failed to scan challenge row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		challenges = append(challenges, challenge)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "*challengeRepository.ListActiveChallenges").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("error iterating challenge rows: %w", rowsErr)
	}

	return challenges, nil
}

// GetChallenge returns the active challenge with the given id.
// Inactive challenges are treated as missing → [ErrChallengeNotFound].
func (r *challengeRepository) GetChallenge(ctx context.Context, challengeID int64) (models.Challenge, error) {
	log := logger.FromContext(ctx)

	var challenge models.Challenge
	row := r.db.QueryRowContext(ctx, getActiveChallenge, challengeID)

	if err := row.Err(); err != nil {
		if isNoRows(err) {
			return models.Challenge{}, ErrChallengeNotFound
		}
		log.Err(err).Str("func", "*challengeRepository.GetChallenge").Msg("failed to execute query")
		return models.Challenge{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if err := scanChallenge(row, &challenge); err != nil {
		if isNoRows(err) {
			return models.Challenge{}, ErrChallengeNotFound
		}
		log.Err(err).Str("func", "*challengeRepository.GetChallenge").Msg("failed to scan challenge row")
		return models.Challenge{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return challenge, nil
}

// rowScanner covers both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanChallenge(row rowScanner, challenge *models.Challenge) error {
	return row.Scan(
		&challenge.ChallengeID,
		&challenge.Title,
		&challenge.Description,
		&challenge.Category,
		&challenge.Flag,
		&challenge.Points,
		&challenge.MaxAttempts,
		&challenge.IsActive,
		&challenge.CreatedAt,
	)
}
