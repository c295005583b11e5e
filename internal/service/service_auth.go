// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-ctf-game/internal/logger"
	"github.com/MKhiriev/go-ctf-game/internal/store"
	"github.com/MKhiriev/go-ctf-game/internal/utils"
	"github.com/MKhiriev/go-ctf-game/models"
)

// authService is the concrete implementation of AuthService.
// It handles player registration and credential verification using a
// UserRepository for persistence and SHA-256 for password hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		logger:         logger,
	}
}

// Register creates a new player account.
//
// It validates that both username and password are non-empty, hashes the
// password, and delegates persistence to the UserRepository.
//
// Returns the persisted user (with a server-assigned UserID) or:
//   - ErrInvalidDataProvided if username or password is empty.
//   - A wrapped storage error if the repository call fails (e.g. username
//     already taken — see store.ErrUsernameTaken).
func (a *authService) Register(ctx context.Context, username, password string, isOrganizer bool) (models.User, error) {
	log := logger.FromContext(ctx)

	if username == "" || password == "" {
		log.Error().Str("username", username).Msg("invalid registration data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, models.User{
		Username:     username,
		PasswordHash: utils.HashPassword(password),
		IsOrganizer:  isOrganizer,
	})
	if err != nil {
		log.Err(err).Str("username", username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing player.
//
// It validates that both username and password are non-empty, looks up the
// account, hashes the supplied password and compares the hashes.
//
// Returns the authenticated user record or:
//   - ErrInvalidDataProvided if username or password is empty.
//   - ErrUnauthenticated if the account does not exist or the password is
//     wrong. The two cases are deliberately indistinguishable to callers.
func (a *authService) Login(ctx context.Context, username, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if username == "" || password == "" {
		log.Error().Str("username", username).Msg("invalid login data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Warn().Str("username", username).Msg("login attempt for unknown username")
			return models.User{}, ErrUnauthenticated
		}
		log.Err(err).Str("username", username).Msg("user search by username failed")
		return models.User{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if foundUser.PasswordHash != utils.HashPassword(password) {
		log.Warn().Int64("id", foundUser.UserID).Str("username", username).Msg("wrong password")
		return models.User{}, ErrUnauthenticated
	}

	return foundUser, nil
}
