package service

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raduapetrei/bookshelf-api/internal/domain"
)

func newTestUserService(users *stubUserStore, jwt *stubJWTService) UserService {
	return NewUserService(users, jwt, &stubHasher{}, &stubVerifier{}, slog.Default())
}

func TestUserService_Register(t *testing.T) {
	t.Parallel()

	t.Run("hashes the password before storage", func(t *testing.T) {
		users := newStubUserStore()
		svc := newTestUserService(users, &stubJWTService{token: "tok"})

		err := svc.Register(context.Background(), "radu", "radu@example.com", "s3cret")
		require.NoError(t, err)
		require.Len(t, users.users, 1)

		stored := users.users[0]
		assert.Equal(t, "hashed:s3cret", stored.HashedPassword)
		assert.Empty(t, stored.Password)
		assert.NotZero(t, stored.ID)
	})

	t.Run("rejects missing fields", func(t *testing.T) {
		users := newStubUserStore()
		svc := newTestUserService(users, &stubJWTService{})

		err := svc.Register(context.Background(), "", "radu@example.com", "s3cret")
		assert.ErrorIs(t, err, domain.ErrValidation)
		assert.Empty(t, users.users)
	})

	t.Run("allows duplicate usernames", func(t *testing.T) {
		users := newStubUserStore()
		svc := newTestUserService(users, &stubJWTService{})

		require.NoError(t, svc.Register(context.Background(), "radu", "a@example.com", "pw1"))
		require.NoError(t, svc.Register(context.Background(), "radu", "b@example.com", "pw2"))
		assert.Len(t, users.users, 2)
	})

	t.Run("propagates storage failures", func(t *testing.T) {
		users := newStubUserStore()
		users.createErr = errors.New("connection reset")
		svc := newTestUserService(users, &stubJWTService{})

		err := svc.Register(context.Background(), "radu", "radu@example.com", "pw")
		assert.Error(t, err)
	})
}

func TestUserService_Login(t *testing.T) {
	t.Parallel()

	register := func(t *testing.T) (*stubUserStore, UserService) {
		t.Helper()
		users := newStubUserStore()
		svc := newTestUserService(users, &stubJWTService{token: "signed-token"})
		require.NoError(t, svc.Register(context.Background(), "radu", "radu@example.com", "s3cret"))
		return users, svc
	}

	t.Run("returns a token for valid credentials", func(t *testing.T) {
		_, svc := register(t)

		token, err := svc.Login(context.Background(), "radu", "s3cret")
		require.NoError(t, err)
		assert.Equal(t, "signed-token", token)
	})

	t.Run("wrong password is invalid credentials", func(t *testing.T) {
		_, svc := register(t)

		_, err := svc.Login(context.Background(), "radu", "wrong")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown user is indistinguishable from wrong password", func(t *testing.T) {
		_, svc := register(t)

		_, unknownErr := svc.Login(context.Background(), "nobody", "s3cret")
		_, wrongErr := svc.Login(context.Background(), "radu", "wrong")
		assert.ErrorIs(t, unknownErr, ErrInvalidCredentials)
		assert.Equal(t, unknownErr, wrongErr)
	})

	t.Run("duplicate usernames authenticate against the oldest account", func(t *testing.T) {
		users := newStubUserStore()
		jwt := &stubJWTService{token: "signed-token"}
		svc := newTestUserService(users, jwt)
		require.NoError(t, svc.Register(context.Background(), "radu", "a@example.com", "first-pw"))
		require.NoError(t, svc.Register(context.Background(), "radu", "b@example.com", "second-pw"))

		_, err := svc.Login(context.Background(), "radu", "first-pw")
		assert.NoError(t, err)

		_, err = svc.Login(context.Background(), "radu", "second-pw")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("token generation failures are not credential errors", func(t *testing.T) {
		users := newStubUserStore()
		svc := newTestUserService(users, &stubJWTService{err: errors.New("signing failed")})
		require.NoError(t, svc.Register(context.Background(), "radu", "radu@example.com", "pw"))

		_, err := svc.Login(context.Background(), "radu", "pw")
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrInvalidCredentials)
	})
}
