// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-ctf-game/internal/logger"
	"github.com/MKhiriev/go-ctf-game/internal/store"
	"github.com/MKhiriev/go-ctf-game/internal/validators"
	"github.com/MKhiriev/go-ctf-game/models"
)

// gameService is the concrete implementation of GameService. It orchestrates
// challenge management and scoring on top of the repositories; all game rules
// that need atomicity live in store.GameRepository.SubmitFlag.
type gameService struct {
	challengeRepository store.ChallengeRepository
	gameRepository      store.GameRepository
	challengeValidator  validators.Validator

	logger *logger.Logger
}

func NewGameService(challengeRepository store.ChallengeRepository, gameRepository store.GameRepository, logger *logger.Logger) GameService {
	return &gameService{
		challengeRepository: challengeRepository,
		gameRepository:      gameRepository,
		challengeValidator:  validators.NewChallengeValidator(),
		logger:              logger,
	}
}

// CreateChallenge registers a new challenge.
//
// Title, flag and a positive points value are required; organizer checks are
// a front-end concern and are not repeated here.
func (g *gameService) CreateChallenge(ctx context.Context, challenge models.Challenge) (models.Challenge, error) {
	log := logger.FromContext(ctx)

	if challenge.MaxAttempts == 0 {
		challenge.MaxAttempts = -1 // unlimited unless the organizer says otherwise
	}

	if err := g.challengeValidator.Validate(ctx, challenge); err != nil {
		log.Err(err).Str("title", challenge.Title).Int64("points", challenge.Points).Msg("invalid challenge data provided")
		return models.Challenge{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	createdChallenge, err := g.challengeRepository.CreateChallenge(ctx, challenge)
	if err != nil {
		log.Err(err).Str("title", challenge.Title).Msg("challenge creation ended with error")
		return models.Challenge{}, fmt.Errorf("challenge creation ended with error: %w", err)
	}

	return createdChallenge, nil
}

func (g *gameService) ListChallenges(ctx context.Context) ([]models.Challenge, error) {
	log := logger.FromContext(ctx)

	challenges, err := g.challengeRepository.ListActiveChallenges(ctx)
	if err != nil {
		log.Err(err).Msg("challenge listing failed")
		return nil, fmt.Errorf("challenge listing failed: %w", err)
	}

	return challenges, nil
}

func (g *gameService) GetChallenge(ctx context.Context, challengeID int64) (models.Challenge, error) {
	log := logger.FromContext(ctx)

	if challengeID <= 0 {
		log.Error().Int64("challengeID", challengeID).Msg("invalid challenge id provided")
		return models.Challenge{}, ErrInvalidDataProvided
	}

	challenge, err := g.challengeRepository.GetChallenge(ctx, challengeID)
	if err != nil {
		log.Err(err).Int64("challengeID", challengeID).Msg("challenge lookup failed")
		return models.Challenge{}, fmt.Errorf("challenge lookup failed: %w", err)
	}

	return challenge, nil
}

// SubmitFlag records one flag attempt. Rejections (unknown challenge, already
// solved, wrong flag) are not errors: they come back as an unaccepted
// SubmissionResult carrying the user-facing message.
func (g *gameService) SubmitFlag(ctx context.Context, userID, challengeID int64, submitted string) (models.SubmissionResult, error) {
	log := logger.FromContext(ctx)

	if userID <= 0 || challengeID <= 0 {
		log.Error().Int64("userID", userID).Int64("challengeID", challengeID).Msg("invalid submission data provided")
		return models.SubmissionResult{}, ErrInvalidDataProvided
	}

	result, err := g.gameRepository.SubmitFlag(ctx, userID, challengeID, submitted)
	if err != nil {
		log.Err(err).Int64("userID", userID).Int64("challengeID", challengeID).Msg("flag submission failed")
		return models.SubmissionResult{}, fmt.Errorf("flag submission failed: %w", err)
	}

	log.Info().
		Int64("userID", userID).
		Int64("challengeID", challengeID).
		Bool("accepted", result.Accepted).
		Msg("flag submission processed")

	return result, nil
}

func (g *gameService) UserProgress(ctx context.Context, userID int64) (models.UserProgress, error) {
	log := logger.FromContext(ctx)

	if userID <= 0 {
		log.Error().Int64("userID", userID).Msg("invalid user id provided")
		return models.UserProgress{}, ErrInvalidDataProvided
	}

	progress, err := g.gameRepository.UserProgress(ctx, userID)
	if err != nil {
		log.Err(err).Int64("userID", userID).Msg("user progress lookup failed")
		return models.UserProgress{}, fmt.Errorf("user progress lookup failed: %w", err)
	}

	return progress, nil
}

func (g *gameService) Leaderboard(ctx context.Context) ([]models.LeaderboardRow, error) {
	log := logger.FromContext(ctx)

	leaderboard, err := g.gameRepository.Leaderboard(ctx)
	if err != nil {
		log.Err(err).Msg("leaderboard lookup failed")
		return nil, fmt.Errorf("leaderboard lookup failed: %w", err)
	}

	return leaderboard, nil
}
