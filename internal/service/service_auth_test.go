package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-ctf-game/internal/logger"
	"github.com/MKhiriev/go-ctf-game/internal/store"
	"github.com/MKhiriev/go-ctf-game/internal/utils"
	"github.com/MKhiriev/go-ctf-game/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeUserRepository is a programmable in-test UserRepository.
type fakeUserRepository struct {
	createUserFn         func(ctx context.Context, user models.User) (models.User, error)
	findUserByUsernameFn func(ctx context.Context, username string) (models.User, error)
}

func (f *fakeUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	return f.createUserFn(ctx, user)
}

func (f *fakeUserRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	return f.findUserByUsernameFn(ctx, username)
}

func newTestAuthSvc(repo store.UserRepository) AuthService {
	return NewAuthService(repo, logger.Nop())
}

// ── Register ─────────────────────────────────────────────────────────────────

func TestAuthService_Register_Success(t *testing.T) {
	var captured models.User
	repo := &fakeUserRepository{
		createUserFn: func(_ context.Context, user models.User) (models.User, error) {
			captured = user
			user.UserID = 7
			return user, nil
		},
	}

	registered, err := newTestAuthSvc(repo).Register(context.Background(), "alice", "secret", false)
	require.NoError(t, err)

	assert.Equal(t, int64(7), registered.UserID)
	assert.Equal(t, "alice", captured.Username)
	assert.False(t, captured.IsOrganizer)
	// the repository must never see the plain-text password
	assert.Equal(t, utils.HashPassword("secret"), captured.PasswordHash)
}

func TestAuthService_Register_EmptyFields(t *testing.T) {
	repo := &fakeUserRepository{
		createUserFn: func(_ context.Context, _ models.User) (models.User, error) {
			t.Fatal("repository must not be called for invalid input")
			return models.User{}, nil
		},
	}
	svc := newTestAuthSvc(repo)

	_, err := svc.Register(context.Background(), "", "secret", false)
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = svc.Register(context.Background(), "alice", "", false)
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestAuthService_Register_UsernameTaken(t *testing.T) {
	repo := &fakeUserRepository{
		createUserFn: func(_ context.Context, _ models.User) (models.User, error) {
			return models.User{}, store.ErrUsernameTaken
		},
	}

	_, err := newTestAuthSvc(repo).Register(context.Background(), "alice", "secret", false)
	assert.ErrorIs(t, err, store.ErrUsernameTaken)
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestAuthService_Login_Success(t *testing.T) {
	repo := &fakeUserRepository{
		findUserByUsernameFn: func(_ context.Context, username string) (models.User, error) {
			return models.User{UserID: 7, Username: username, PasswordHash: utils.HashPassword("secret")}, nil
		},
	}

	user, err := newTestAuthSvc(repo).Login(context.Background(), "alice", "secret")
	require.NoError(t, err)
	assert.Equal(t, int64(7), user.UserID)
	assert.Equal(t, "alice", user.Username)
}

func TestAuthService_Login_UnknownUserAndWrongPasswordLookAlike(t *testing.T) {
	unknownRepo := &fakeUserRepository{
		findUserByUsernameFn: func(_ context.Context, _ string) (models.User, error) {
			return models.User{}, store.ErrUserNotFound
		},
	}
	wrongPasswordRepo := &fakeUserRepository{
		findUserByUsernameFn: func(_ context.Context, username string) (models.User, error) {
			return models.User{UserID: 7, Username: username, PasswordHash: utils.HashPassword("secret")}, nil
		},
	}

	_, unknownErr := newTestAuthSvc(unknownRepo).Login(context.Background(), "ghost", "secret")
	_, wrongErr := newTestAuthSvc(wrongPasswordRepo).Login(context.Background(), "alice", "not-secret")

	assert.ErrorIs(t, unknownErr, ErrUnauthenticated)
	assert.ErrorIs(t, wrongErr, ErrUnauthenticated)
	// indistinguishable failures: no username enumeration through errors
	assert.Equal(t, unknownErr.Error(), wrongErr.Error())
}

func TestAuthService_Login_RepositoryError(t *testing.T) {
	bang := errors.New("db offline")
	repo := &fakeUserRepository{
		findUserByUsernameFn: func(_ context.Context, _ string) (models.User, error) {
			return models.User{}, bang
		},
	}

	_, err := newTestAuthSvc(repo).Login(context.Background(), "alice", "secret")
	require.Error(t, err)
	assert.ErrorIs(t, err, bang)
	assert.NotErrorIs(t, err, ErrUnauthenticated)
}

func TestAuthService_Login_EmptyFields(t *testing.T) {
	svc := newTestAuthSvc(&fakeUserRepository{})

	_, err := svc.Login(context.Background(), "", "secret")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = svc.Login(context.Background(), "alice", "")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}
