package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/victormanase/apartment-rental-app/internal/core"
	"github.com/victormanase/apartment-rental-app/internal/user"
)

func newTestService(t *testing.T) *Service {
	t.Helper()

	tm, err := NewTokenManager(testJWTConfig())
	require.NoError(t, err)

	return NewService(user.NewMemoryRepository(), tm, 0)
}

func TestService_RegisterAndLogin(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	u, err := svc.Register(ctx, RegisterRequest{
		Username: "alice",
		Password: "pw1",
		Name:     "Alice A",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, u.ID)
	assert.Equal(t, "alice", u.Username)
	assert.NotEqual(t, "pw1", u.PasswordHash)

	token, err := svc.Login(ctx, LoginRequest{
		Username: "alice",
		Password: "pw1",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, token)
}

func TestService_RegisterDuplicate(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterRequest{
		Username: "alice",
		Password: "pw1",
		Name:     "Alice A",
	})
	require.NoError(t, err)

	_, err = svc.Register(ctx, RegisterRequest{
		Username: "alice",
		Password: "other",
		Name:     "Other",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUsernameExists)
}

func TestService_LoginFailuresAreUniform(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterRequest{
		Username: "alice",
		Password: "pw1",
		Name:     "Alice A",
	})
	require.NoError(t, err)

	// Unknown username and wrong password fail identically so the response
	// cannot be used to enumerate accounts.
	_, unknownErr := svc.Login(ctx, LoginRequest{
		Username: "nobody",
		Password: "pw1",
	})
	_, wrongErr := svc.Login(ctx, LoginRequest{
		Username: "alice",
		Password: "wrong",
	})

	require.Error(t, unknownErr)
	require.Error(t, wrongErr)
	assert.ErrorIs(t, unknownErr, ErrInvalidCredentials)
	assert.ErrorIs(t, wrongErr, ErrInvalidCredentials)
	assert.Equal(t, unknownErr.Error(), wrongErr.Error())
}

func TestService_ResetPassword(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterRequest{
		Username: "alice",
		Password: "pw1",
		Name:     "Alice A",
	})
	require.NoError(t, err)

	err = svc.ResetPassword(ctx, ResetPasswordRequest{
		Username:    "alice",
		NewPassword: "pw2",
	})
	require.NoError(t, err)

	_, err = svc.Login(ctx, LoginRequest{Username: "alice", Password: "pw1"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	token, err := svc.Login(ctx, LoginRequest{
		Username: "alice",
		Password: "pw2",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, token)
}

func TestService_ResetPasswordUnknownUser(t *testing.T) {
	svc := newTestService(t)

	err := svc.ResetPassword(context.Background(), ResetPasswordRequest{
		Username:    "nobody",
		NewPassword: "pw2",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrNotFound)
}

func TestService_DeleteUserIdempotent(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterRequest{
		Username: "alice",
		Password: "pw1",
		Name:     "Alice A",
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteUser(ctx, "alice"))
	// Second delete of the same username still succeeds.
	require.NoError(t, svc.DeleteUser(ctx, "alice"))
	// So does deleting a username that never existed.
	require.NoError(t, svc.DeleteUser(ctx, "nobody"))

	_, err = svc.Login(ctx, LoginRequest{Username: "alice", Password: "pw1"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
