package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-ctf-game/internal/logger"
	"github.com/MKhiriev/go-ctf-game/models"
)

// userRepository is the SQL-backed implementation of [UserRepository].
// It handles account creation and lookup against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record and returns the fully populated
// [models.User] with server-assigned fields (UserID, Score, CreatedAt).
//
// The INSERT uses the [createUser] query which returns all columns via a
// RETURNING clause, so the caller receives the canonical database
// representation of the newly created account.
//
// Error handling:
//   - unique-constraint violation on username → [ErrUsernameTaken].
//   - Any other driver-level error → wrapped as "unexpected DB error".
//   - Scan failure → returned directly.
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createUser, user.Username, user.PasswordHash, user.IsOrganizer)

	// create user in db
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: row is nil")

		if isUniqueViolation(err) {
			return models.User{}, ErrUsernameTaken
		}
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	// scan saved user from db
	if err := row.Scan(&user.UserID, &user.Username, &user.PasswordHash, &user.Score, &user.IsOrganizer, &user.CreatedAt); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: scanning error")

		// sqlite reports the constraint violation at scan time
		if isUniqueViolation(err) {
			return models.User{}, ErrUsernameTaken
		}
		return models.User{}, err
	}

	return user, nil
}

// FindUserByUsername retrieves the user record matching username.
//
// Error handling:
//   - empty result set → [ErrUserNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
//   - Scan failure → returned directly.
func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	log := logger.FromContext(ctx)

	var foundUser models.User
	row := r.db.QueryRowContext(ctx, findUserByUsername, username)

	// find user by username
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByUsername").Msg("error: row is nil")
		if isNoRows(err) {
			return models.User{}, ErrUserNotFound
		}
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	// scan found user from db
	if err := row.Scan(&foundUser.UserID, &foundUser.Username, &foundUser.PasswordHash, &foundUser.Score, &foundUser.IsOrganizer, &foundUser.CreatedAt); err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByUsername").Msg("error: scanning error")
		if isNoRows(err) {
			return models.User{}, ErrUserNotFound
		}
		return models.User{}, err
	}

	return foundUser, nil
}
