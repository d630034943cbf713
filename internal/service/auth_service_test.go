package service

import (
	"context"
	"testing"
	"time"

	"github.com/kscst/vocational-training-backend/internal/config"
	"github.com/kscst/vocational-training-backend/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type authFixture struct {
	trainees *fakeTraineeStore
	trainers *fakeTrainerStore
	admins   *fakeAdminStore
	svc      *AuthService
}

func newAuthFixture() *authFixture {
	cfg := &config.Config{
		JWTSecret:  "test-secret",
		JWTExpiry:  time.Hour,
		BcryptCost: bcrypt.MinCost,
	}
	f := &authFixture{
		trainees: newFakeTraineeStore(),
		trainers: newFakeTrainerStore(),
		admins:   newFakeAdminStore(),
	}
	f.svc = NewAuthService(cfg, f.trainees, f.trainers, f.admins)
	return f
}

func (f *authFixture) hash(t *testing.T, password string) string {
	t.Helper()
	h, err := f.svc.HashPassword(password)
	require.NoError(t, err)
	return h
}

func TestRegisterTraineeStartsPending(t *testing.T) {
	f := newAuthFixture()

	trainee, err := f.svc.RegisterTrainee(context.Background(), &model.RegisterTraineeRequest{
		Username: "asha",
		Password: "secret123",
		Name:     "Asha",
		Email:    "asha@example.com",
		Phone:    "9000000000",
		Skill:    "Tailoring",
		Location: "Bengaluru",
	})
	require.NoError(t, err)

	assert.Equal(t, model.StatusPending, trainee.Status)
	assert.Empty(t, trainee.AssignedTrainerID)
	assert.NotEqual(t, "secret123", trainee.PasswordHash)
}

func TestRegisterTraineeDuplicateUsername(t *testing.T) {
	f := newAuthFixture()
	ctx := context.Background()

	req := &model.RegisterTraineeRequest{
		Username: "asha", Password: "secret123", Name: "Asha",
		Email: "asha@example.com", Phone: "9000000000",
		Skill: "Tailoring", Location: "Bengaluru",
	}
	_, err := f.svc.RegisterTrainee(ctx, req)
	require.NoError(t, err)

	_, err = f.svc.RegisterTrainee(ctx, req)
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestLoginRejectsUnapprovedAccounts(t *testing.T) {
	f := newAuthFixture()
	ctx := context.Background()

	_, err := f.svc.RegisterTrainee(ctx, &model.RegisterTraineeRequest{
		Username: "asha", Password: "secret123", Name: "Asha",
		Email: "asha@example.com", Phone: "9000000000",
		Skill: "Tailoring", Location: "Bengaluru",
	})
	require.NoError(t, err)

	_, err = f.svc.Login(ctx, "asha", "secret123")
	assert.ErrorIs(t, err, ErrNotApproved)
}

func TestLoginApprovedTrainee(t *testing.T) {
	f := newAuthFixture()
	ctx := context.Background()

	require.NoError(t, f.trainees.Create(ctx, &model.Trainee{
		Username:     "asha",
		PasswordHash: f.hash(t, "secret123"),
		Status:       model.StatusApproved,
	}))

	result, err := f.svc.Login(ctx, "asha", "secret123")
	require.NoError(t, err)

	assert.Equal(t, model.RoleTrainee, result.Role)
	assert.NotEmpty(t, result.Token)

	principal, err := f.svc.ValidateToken(result.Token)
	require.NoError(t, err)
	assert.Equal(t, model.RoleTrainee, principal.Role)
	assert.Equal(t, "asha", principal.Username)
}

func TestLoginWrongPassword(t *testing.T) {
	f := newAuthFixture()
	ctx := context.Background()

	require.NoError(t, f.trainees.Create(ctx, &model.Trainee{
		Username:     "asha",
		PasswordHash: f.hash(t, "secret123"),
		Status:       model.StatusApproved,
	}))

	_, err := f.svc.Login(ctx, "asha", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginPrecedenceTraineeBeforeTrainer(t *testing.T) {
	f := newAuthFixture()
	ctx := context.Background()

	// Same username in both kinds with different passwords. The trainee
	// wins when their password matches.
	require.NoError(t, f.trainees.Create(ctx, &model.Trainee{
		Username:     "shared",
		PasswordHash: f.hash(t, "trainee-pass"),
		Status:       model.StatusApproved,
	}))
	require.NoError(t, f.trainers.Create(ctx, &model.Trainer{
		Username:     "shared",
		PasswordHash: f.hash(t, "trainer-pass"),
		Status:       model.StatusApproved,
	}))

	asTrainee, err := f.svc.Login(ctx, "shared", "trainee-pass")
	require.NoError(t, err)
	assert.Equal(t, model.RoleTrainee, asTrainee.Role)

	asTrainer, err := f.svc.Login(ctx, "shared", "trainer-pass")
	require.NoError(t, err)
	assert.Equal(t, model.RoleTrainer, asTrainer.Role)
}

func TestLoginAdminHasNoStatusGate(t *testing.T) {
	f := newAuthFixture()

	f.admins.admins["root"] = model.Admin{
		ID:           "admin-1",
		Username:     "root",
		PasswordHash: f.hash(t, "rootpass"),
	}

	result, err := f.svc.Login(context.Background(), "root", "rootpass")
	require.NoError(t, err)
	assert.Equal(t, model.RoleAdmin, result.Role)
}

func TestAuthenticateFirstUsernameMatchWins(t *testing.T) {
	f := newAuthFixture()
	ctx := context.Background()

	// Trainee holds the username, so a trainer password for the same
	// username must not fall through to the trainer.
	require.NoError(t, f.trainees.Create(ctx, &model.Trainee{
		Username:     "shared",
		PasswordHash: f.hash(t, "trainee-pass"),
		Status:       model.StatusApproved,
	}))
	require.NoError(t, f.trainers.Create(ctx, &model.Trainer{
		Username:     "shared",
		PasswordHash: f.hash(t, "trainer-pass"),
		Status:       model.StatusApproved,
	}))

	principal, err := f.svc.Authenticate(ctx, "shared", "trainee-pass")
	require.NoError(t, err)
	assert.Equal(t, model.RoleTrainee, principal.Role)

	_, err = f.svc.Authenticate(ctx, "shared", "trainer-pass")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthenticateRejectsPendingTrainee(t *testing.T) {
	f := newAuthFixture()
	ctx := context.Background()

	require.NoError(t, f.trainees.Create(ctx, &model.Trainee{
		Username:     "asha",
		PasswordHash: f.hash(t, "secret123"),
		Status:       model.StatusPending,
	}))

	_, err := f.svc.Authenticate(ctx, "asha", "secret123")
	assert.ErrorIs(t, err, ErrNotApproved)
}

func TestValidateTokenRejectsTampered(t *testing.T) {
	f := newAuthFixture()

	token, err := f.svc.GenerateToken(Principal{ID: "t-1", Username: "asha", Role: model.RoleTrainee})
	require.NoError(t, err)

	_, err = f.svc.ValidateToken(token + "x")
	assert.Error(t, err)
}
