package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-ctf-game/internal/logger"
	"github.com/MKhiriev/go-ctf-game/models"
)

func newTestChallengeRepo(t *testing.T) (*challengeRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &challengeRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func challengeColumns() []string {
	return []string{"id", "title", "description", "category", "flag", "points", "max_attempts", "is_active", "created_at"}
}

func TestCreateChallenge_Success(t *testing.T) {
	repo, mock, db := newTestChallengeRepo(t)
	defer db.Close()

	ctx := context.Background()
	challenge := models.Challenge{
		Title:       "warmup",
		Description: "easy one",
		Category:    "misc",
		Flag:        "flag{x}",
		Points:      100,
		MaxAttempts: -1,
	}

	rows := sqlmock.
		NewRows(challengeColumns()).
		AddRow(5, challenge.Title, challenge.Description, challenge.Category, challenge.Flag, challenge.Points, challenge.MaxAttempts, true, time.Now())

	mock.ExpectQuery("INSERT INTO challenges").
		WithArgs(challenge.Title, challenge.Description, challenge.Category, challenge.Flag, challenge.Points, challenge.MaxAttempts).
		WillReturnRows(rows)

	created, err := repo.CreateChallenge(ctx, challenge)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ChallengeID != 5 {
		t.Errorf("expected ChallengeID=5, got %d", created.ChallengeID)
	}
	if !created.IsActive {
		t.Error("expected new challenge to be active")
	}
}

func TestGetChallenge_NotFound(t *testing.T) {
	repo, mock, db := newTestChallengeRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT id").
		WithArgs(int64(42)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetChallenge(ctx, 42)
	if !errors.Is(err, ErrChallengeNotFound) {
		t.Fatalf("expected ErrChallengeNotFound, got %v", err)
	}
}

func TestGetChallenge_Success(t *testing.T) {
	repo, mock, db := newTestChallengeRepo(t)
	defer db.Close()

	ctx := context.Background()

	rows := sqlmock.
		NewRows(challengeColumns()).
		AddRow(42, "pwn-me", "d", "pwn", "flag{x}", 250, -1, true, time.Now())

	mock.ExpectQuery("SELECT id").
		WithArgs(int64(42)).
		WillReturnRows(rows)

	found, err := repo.GetChallenge(ctx, 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.Title != "pwn-me" {
		t.Errorf("expected title pwn-me, got %s", found.Title)
	}
}

func TestListActiveChallenges_QueryError(t *testing.T) {
	repo, mock, db := newTestChallengeRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT id").
		WillReturnError(errors.New("db failure"))

	_, err := repo.ListActiveChallenges(ctx)
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
}

func TestListActiveChallenges_Success(t *testing.T) {
	repo, mock, db := newTestChallengeRepo(t)
	defer db.Close()

	ctx := context.Background()

	now := time.Now()
	rows := sqlmock.
		NewRows(challengeColumns()).
		AddRow(2, "easy", "d", "misc", "flag{a}", 100, -1, true, now).
		AddRow(1, "hard", "d", "crypto", "flag{b}", 300, -1, true, now)

	mock.ExpectQuery("SELECT id").
		WillReturnRows(rows)

	challenges, err := repo.ListActiveChallenges(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(challenges) != 2 {
		t.Fatalf("expected 2 challenges, got %d", len(challenges))
	}
	if challenges[0].Title != "easy" || challenges[1].Title != "hard" {
		t.Errorf("row order must be preserved, got %q then %q", challenges[0].Title, challenges[1].Title)
	}
}
