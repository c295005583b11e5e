package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-ctf-game/internal/logger"
	"github.com/MKhiriev/go-ctf-game/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeChallengeRepository struct {
	createChallengeFn      func(ctx context.Context, challenge models.Challenge) (models.Challenge, error)
	listActiveChallengesFn func(ctx context.Context) ([]models.Challenge, error)
	getChallengeFn         func(ctx context.Context, challengeID int64) (models.Challenge, error)
}

func (f *fakeChallengeRepository) CreateChallenge(ctx context.Context, challenge models.Challenge) (models.Challenge, error) {
	return f.createChallengeFn(ctx, challenge)
}

func (f *fakeChallengeRepository) ListActiveChallenges(ctx context.Context) ([]models.Challenge, error) {
	return f.listActiveChallengesFn(ctx)
}

func (f *fakeChallengeRepository) GetChallenge(ctx context.Context, challengeID int64) (models.Challenge, error) {
	return f.getChallengeFn(ctx, challengeID)
}

type fakeGameRepository struct {
	submitFlagFn   func(ctx context.Context, userID, challengeID int64, submitted string) (models.SubmissionResult, error)
	userProgressFn func(ctx context.Context, userID int64) (models.UserProgress, error)
	leaderboardFn  func(ctx context.Context) ([]models.LeaderboardRow, error)
}

func (f *fakeGameRepository) SubmitFlag(ctx context.Context, userID, challengeID int64, submitted string) (models.SubmissionResult, error) {
	return f.submitFlagFn(ctx, userID, challengeID, submitted)
}

func (f *fakeGameRepository) UserProgress(ctx context.Context, userID int64) (models.UserProgress, error) {
	return f.userProgressFn(ctx, userID)
}

func (f *fakeGameRepository) Leaderboard(ctx context.Context) ([]models.LeaderboardRow, error) {
	return f.leaderboardFn(ctx)
}

func newTestGameSvc(challenges *fakeChallengeRepository, game *fakeGameRepository) GameService {
	if challenges == nil {
		challenges = &fakeChallengeRepository{}
	}
	if game == nil {
		game = &fakeGameRepository{}
	}
	return NewGameService(challenges, game, logger.Nop())
}

// ── CreateChallenge ──────────────────────────────────────────────────────────

func TestGameService_CreateChallenge_Success(t *testing.T) {
	repo := &fakeChallengeRepository{
		createChallengeFn: func(_ context.Context, challenge models.Challenge) (models.Challenge, error) {
			challenge.ChallengeID = 3
			return challenge, nil
		},
	}

	created, err := newTestGameSvc(repo, nil).CreateChallenge(context.Background(), models.Challenge{
		Title:  "pwn-me",
		Flag:   "flag{x}",
		Points: 200,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3), created.ChallengeID)
}

func TestGameService_CreateChallenge_Invalid(t *testing.T) {
	svc := newTestGameSvc(&fakeChallengeRepository{
		createChallengeFn: func(_ context.Context, _ models.Challenge) (models.Challenge, error) {
			t.Fatal("repository must not be called for invalid input")
			return models.Challenge{}, nil
		},
	}, nil)

	for name, challenge := range map[string]models.Challenge{
		"no title":        {Flag: "flag{x}", Points: 100},
		"no flag":         {Title: "pwn-me", Points: 100},
		"zero points":     {Title: "pwn-me", Flag: "flag{x}"},
		"negative points": {Title: "pwn-me", Flag: "flag{x}", Points: -5},
	} {
		_, err := svc.CreateChallenge(context.Background(), challenge)
		assert.ErrorIs(t, err, ErrInvalidDataProvided, name)
	}
}

// ── SubmitFlag ───────────────────────────────────────────────────────────────

func TestGameService_SubmitFlag_PassesResultThrough(t *testing.T) {
	repo := &fakeGameRepository{
		submitFlagFn: func(_ context.Context, userID, challengeID int64, submitted string) (models.SubmissionResult, error) {
			assert.Equal(t, int64(1), userID)
			assert.Equal(t, int64(2), challengeID)
			assert.Equal(t, " flag{x} ", submitted, "raw text must reach the repository untrimmed")
			return models.SubmissionResult{Accepted: true, Message: "Correct! You earned 100 points!"}, nil
		},
	}

	result, err := newTestGameSvc(nil, repo).SubmitFlag(context.Background(), 1, 2, " flag{x} ")
	require.NoError(t, err)
	assert.True(t, result.Accepted)
	assert.Equal(t, "Correct! You earned 100 points!", result.Message)
}

func TestGameService_SubmitFlag_InvalidIDs(t *testing.T) {
	svc := newTestGameSvc(nil, &fakeGameRepository{})

	_, err := svc.SubmitFlag(context.Background(), 0, 2, "flag{x}")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = svc.SubmitFlag(context.Background(), 1, 0, "flag{x}")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestGameService_SubmitFlag_RepositoryError(t *testing.T) {
	bang := errors.New("tx failed")
	repo := &fakeGameRepository{
		submitFlagFn: func(_ context.Context, _, _ int64, _ string) (models.SubmissionResult, error) {
			return models.SubmissionResult{}, bang
		},
	}

	_, err := newTestGameSvc(nil, repo).SubmitFlag(context.Background(), 1, 2, "flag{x}")
	assert.ErrorIs(t, err, bang)
}

// ── Reads ────────────────────────────────────────────────────────────────────

func TestGameService_ListChallenges(t *testing.T) {
	repo := &fakeChallengeRepository{
		listActiveChallengesFn: func(_ context.Context) ([]models.Challenge, error) {
			return []models.Challenge{{ChallengeID: 1, Title: "one"}}, nil
		},
	}

	challenges, err := newTestGameSvc(repo, nil).ListChallenges(context.Background())
	require.NoError(t, err)
	require.Len(t, challenges, 1)
	assert.Equal(t, "one", challenges[0].Title)
}

func TestGameService_GetChallenge_InvalidID(t *testing.T) {
	_, err := newTestGameSvc(nil, nil).GetChallenge(context.Background(), 0)
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestGameService_UserProgress_InvalidID(t *testing.T) {
	_, err := newTestGameSvc(nil, nil).UserProgress(context.Background(), -1)
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestGameService_Leaderboard(t *testing.T) {
	repo := &fakeGameRepository{
		leaderboardFn: func(_ context.Context) ([]models.LeaderboardRow, error) {
			return []models.LeaderboardRow{{Username: "alice", Score: 100}}, nil
		},
	}

	board, err := newTestGameSvc(nil, repo).Leaderboard(context.Background())
	require.NoError(t, err)
	require.Len(t, board, 1)
	assert.Equal(t, "alice", board[0].Username)
}
