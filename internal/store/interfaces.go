package store

import (
	"context"

	"github.com/MKhiriev/go-ctf-game/models"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
}

type ChallengeRepository interface {
	CreateChallenge(ctx context.Context, challenge models.Challenge) (models.Challenge, error)
	ListActiveChallenges(ctx context.Context) ([]models.Challenge, error)
	GetChallenge(ctx context.Context, challengeID int64) (models.Challenge, error)
}

// GameRepository owns the stateful scoring operations: the flag-submission
// transaction and the aggregate read views derived from it.
type GameRepository interface {
	SubmitFlag(ctx context.Context, userID, challengeID int64, submittedFlag string) (models.SubmissionResult, error)
	UserProgress(ctx context.Context, userID int64) (models.UserProgress, error)
	Leaderboard(ctx context.Context) ([]models.LeaderboardRow, error)
}
