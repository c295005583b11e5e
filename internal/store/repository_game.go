package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-ctf-game/internal/app"
	"github.com/MKhiriev/go-ctf-game/internal/logger"
	"github.com/MKhiriev/go-ctf-game/models"
)

// User-facing status lines returned by SubmitFlag. The presentation layer
// shows them verbatim.
const (
	msgChallengeNotFound = app.MsgChallengeNotFound
	msgAlreadySolved     = app.MsgAlreadySolved
	msgIncorrectFlag     = app.MsgIncorrectFlag
	msgCorrectFlagFormat = app.MsgCorrectFlagFormat
)

// gameRepository implements [GameRepository]: the flag-submission
// transaction plus the progress and leaderboard read views.
type gameRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewGameRepository(db *DB, logger *logger.Logger) GameRepository {
	logger.Debug().Msg("creating game repository")
	return &gameRepository{
		db:     db,
		logger: logger,
	}
}

// SubmitFlag processes one flag attempt for a (user, challenge) pair inside
// a single database transaction, so either every step commits or none do.
//
// Steps, in order:
//  1. Load the challenge (active only); missing → "Challenge not found",
//     nothing is written.
//  2. Load the pair's progress row.
//  3. Already solved → "Challenge already solved"; terminal short-circuit,
//     no submission row is recorded.
//  4. Correctness is a case-sensitive comparison of the whitespace-trimmed
//     submitted flag with the whitespace-trimmed stored flag.
//  5. Append the submission audit row with the raw submitted text.
//  6. Upsert progress: first attempt inserts attempts=1, later attempts
//     increment the counter; solved state and solve time follow the outcome.
//  7. A correct answer adds the challenge's points to the user's score.
//
// MaxAttempts is deliberately not consulted; the stored limit is not
// enforced by any operation.
func (r *gameRepository) SubmitFlag(ctx context.Context, userID, challengeID int64, submittedFlag string) (models.SubmissionResult, error) {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "*gameRepository.SubmitFlag").
			Int64("user_id", userID).
			Int64("challenge_id", challengeID).
			Msg("failed to begin transaction")
		return models.SubmissionResult{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	// 1. challenge lookup, active only
	var challenge models.Challenge
	if err = scanChallenge(tx.QueryRowContext(ctx, getActiveChallenge, challengeID), &challenge); err != nil {
		if isNoRows(err) {
			return models.SubmissionResult{Accepted: false, Message: msgChallengeNotFound}, nil
		}
		log.Err(err).
			Str("func", "*gameRepository.SubmitFlag").
			Int64("challenge_id", challengeID).
			Msg("failed to load challenge")
		return models.SubmissionResult{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	// 2. existing progress for the pair
	var (
		progressExists bool
		progress       models.Progress
	)
	err = tx.QueryRowContext(ctx, getPairProgress, userID, challengeID).
		Scan(&progress.ProgressID, &progress.IsSolved, &progress.AttemptsCount)
	switch {
	case err == nil:
		progressExists = true
	case isNoRows(err):
		progressExists = false
	default:
		log.Err(err).
			Str("func", "*gameRepository.SubmitFlag").
			Int64("user_id", userID).
			Int64("challenge_id", challengeID).
			Msg("failed to load progress")
		return models.SubmissionResult{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	// 3. terminal short-circuit: solved pairs are never scored again and
	// no submission row is recorded for them
	if progressExists && progress.IsSolved {
		return models.SubmissionResult{Accepted: false, Message: msgAlreadySolved}, nil
	}

	// 4. verbatim comparison after trimming surrounding whitespace
	isCorrect := strings.TrimSpace(submittedFlag) == strings.TrimSpace(challenge.Flag)

	// 5. append-only audit trail keeps the raw submitted text
	if _, err = tx.ExecContext(ctx, insertSubmission, userID, challengeID, submittedFlag, isCorrect); err != nil {
		log.Err(err).
			Str("func", "*gameRepository.SubmitFlag").
			Int64("user_id", userID).
			Int64("challenge_id", challengeID).
			Msg("failed to record submission")
		return models.SubmissionResult{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	// 6. upsert pair progress
	var solvedAt *time.Time
	if isCorrect {
		now := time.Now()
		solvedAt = &now
	}

	if progressExists {
		_, err = tx.ExecContext(ctx, updatePairProgress, isCorrect, solvedAt, userID, challengeID)
	} else {
		_, err = tx.ExecContext(ctx, insertPairProgress, userID, challengeID, isCorrect, solvedAt)
	}
	if err != nil {
		log.Err(err).
			Str("func", "*gameRepository.SubmitFlag").
			Int64("user_id", userID).
			Int64("challenge_id", challengeID).
			Bool("progress_exists", progressExists).
			Msg("failed to upsert progress")
		return models.SubmissionResult{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	// 7. award points once per pair
	if isCorrect {
		if _, err = tx.ExecContext(ctx, addUserScore, challenge.Points, userID); err != nil {
			log.Err(err).
				Str("func", "*gameRepository.SubmitFlag").
				Int64("user_id", userID).
				Int64("points", challenge.Points).
				Msg("failed to add score")
			return models.SubmissionResult{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).
			Str("func", "*gameRepository.SubmitFlag").
			Int64("user_id", userID).
			Int64("challenge_id", challengeID).
			Msg("failed to commit transaction")
		return models.SubmissionResult{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, commitErr)
	}

	if isCorrect {
		log.Info().
			Str("func", "*gameRepository.SubmitFlag").
			Int64("user_id", userID).
			Int64("challenge_id", challengeID).
			Int64("points", challenge.Points).
			Msg("challenge solved")
		return models.SubmissionResult{Accepted: true, Message: fmt.Sprintf(msgCorrectFlagFormat, challenge.Points)}, nil
	}

	return models.SubmissionResult{Accepted: false, Message: msgIncorrectFlag}, nil
}

// UserProgress returns the user's summary and the solved challenges ordered
// ascending by solve time.
func (r *gameRepository) UserProgress(ctx context.Context, userID int64) (models.UserProgress, error) {
	log := logger.FromContext(ctx)

	var result models.UserProgress
	err := r.db.QueryRowContext(ctx, getUserSummary, userID).Scan(&result.Username, &result.Score)
	if err != nil {
		if isNoRows(err) {
			return models.UserProgress{}, ErrUserNotFound
		}
		log.Err(err).
			Str("func", "*gameRepository.UserProgress").
			Int64("user_id", userID).
			Msg("failed to load user summary")
		return models.UserProgress{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	query, args, err := buildSolvedChallengesQuery(userID)
	if err != nil {
		log.Err(err).Str("func", "*gameRepository.UserProgress").Msg("failed to build query")
		return models.UserProgress{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*gameRepository.UserProgress").
			Int64("user_id", userID).
			Msg("failed to query solved challenges")
		return models.UserProgress{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var solved models.SolvedChallenge
		if scanErr := rows.Scan(&solved.Title, &solved.Points, &solved.SolvedAt); scanErr != nil {
			log.Err(scanErr).
				Str("func", "*gameRepository.UserProgress").
				Int64("user_id", userID).
				Msg("failed to scan solved challenge row")
			return models.UserProgress{}, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		result.Solved = append(result.Solved, solved)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "*gameRepository.UserProgress").
			Int64("user_id", userID).
			Msg("error occurred during rows iteration")
		return models.UserProgress{}, fmt.Errorf("error iterating solved challenge rows: %w", rowsErr)
	}

	return result, nil
}

// Leaderboard returns all users with a positive score, ordered by score
// descending and registration time ascending.
func (r *gameRepository) Leaderboard(ctx context.Context) ([]models.LeaderboardRow, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildLeaderboardQuery()
	if err != nil {
		log.Err(err).Str("func", "*gameRepository.Leaderboard").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*gameRepository.Leaderboard").Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var board []models.LeaderboardRow
	for rows.Next() {
		var row models.LeaderboardRow
		if scanErr := rows.Scan(&row.Username, &row.Score, &row.JoinedAt); scanErr != nil {
			log.Err(scanErr).Str("func", "*gameRepository.Leaderboard").Msg("failed to scan leaderboard row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		board = append(board, row)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "*gameRepository.Leaderboard").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("error iterating leaderboard rows: %w", rowsErr)
	}

	return board, nil
}
