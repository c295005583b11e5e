package service

import (
	"context"

	"github.com/MKhiriev/go-ctf-game/models"
)

type AuthService interface {
	Register(ctx context.Context, username, password string, isOrganizer bool) (models.User, error)
	Login(ctx context.Context, username, password string) (models.User, error)
}

type GameService interface {
	CreateChallenge(ctx context.Context, challenge models.Challenge) (models.Challenge, error)
	ListChallenges(ctx context.Context) ([]models.Challenge, error)
	GetChallenge(ctx context.Context, challengeID int64) (models.Challenge, error)

	SubmitFlag(ctx context.Context, userID, challengeID int64, submitted string) (models.SubmissionResult, error)
	UserProgress(ctx context.Context, userID int64) (models.UserProgress, error)
	Leaderboard(ctx context.Context) ([]models.LeaderboardRow, error)
}
