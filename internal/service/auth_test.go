package service

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/docvault/docvault-ui/internal/adapters/memory"
	domainauth "github.com/docvault/docvault-ui/internal/domain/auth"
	"github.com/docvault/docvault-ui/internal/domain/model"
	apperrors "github.com/docvault/docvault-ui/internal/errors"
	"github.com/docvault/docvault-ui/internal/mocks"
	"github.com/docvault/docvault-ui/internal/mocks/backend"
	"github.com/docvault/docvault-ui/internal/ports"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func testUser() domainauth.User {
	return domainauth.User{ID: 7, Username: "alice", IsAdmin: true, Role: domainauth.RoleAdmin}
}

func newAuthService(fake *backend.Fake, store ports.SessionStore) *AuthService {
	return NewAuthService(AuthServiceOptions{
		Backend:    fake,
		Sessions:   store,
		SessionTTL: time.Hour,
		Logger:     discardLogger(),
	})
}

func TestAuthService_LoginRoundTrip(t *testing.T) {
	store := memory.NewSessionStore()
	svc := newAuthService(backend.WithUser("tok-abc", testUser()), store)
	ctx := context.Background()

	sess, err := svc.Login(ctx, ports.Credentials{Username: "alice", Password: "pw"})
	require.NoError(t, err)
	assert.NotEmpty(t, sess.ID)
	assert.Equal(t, "tok-abc", sess.Token)
	assert.Equal(t, "alice", sess.User.Username)

	// The persisted session carries the same token the backend issued.
	stored, err := store.Get(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, "tok-abc", stored.Token)
	assert.True(t, stored.ExpiresAt.After(time.Now()))
}

func TestAuthService_LoginPropagatesBackendError(t *testing.T) {
	fake := backend.NewFake()
	fake.LoginFunc = func(context.Context, ports.Credentials) (ports.LoginResult, error) {
		return ports.LoginResult{}, apperrors.Unauthorized("Invalid credentials")
	}
	svc := newAuthService(fake, memory.NewSessionStore())

	_, err := svc.Login(context.Background(), ports.Credentials{Username: "alice", Password: "bad"})
	require.Error(t, err)
	assert.True(t, apperrors.IsUnauthorized(err))
	assert.Contains(t, err.Error(), "Invalid credentials")
}

func TestAuthService_LoginUniqueSessionIDs(t *testing.T) {
	store := memory.NewSessionStore()
	svc := newAuthService(backend.WithUser("tok", testUser()), store)
	ctx := context.Background()

	a, err := svc.Login(ctx, ports.Credentials{Username: "alice", Password: "pw"})
	require.NoError(t, err)
	b, err := svc.Login(ctx, ports.Credentials{Username: "alice", Password: "pw"})
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestAuthService_LogoutClearsSessionEvenWhenBackendFails(t *testing.T) {
	fake := backend.WithUser("tok", testUser())
	fake.LogoutFunc = func(context.Context, string) error {
		return apperrors.Upstream("backend down")
	}
	store := memory.NewSessionStore()
	svc := newAuthService(fake, store)
	ctx := context.Background()

	sess, err := svc.Login(ctx, ports.Credentials{Username: "alice", Password: "pw"})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, sess.ID))
	_, err = store.Get(ctx, sess.ID)
	assert.ErrorIs(t, err, memory.ErrNotFound)
}

func TestAuthService_LogoutIdempotent(t *testing.T) {
	svc := newAuthService(backend.NewFake(), memory.NewSessionStore())
	ctx := context.Background()

	assert.NoError(t, svc.Logout(ctx, "never-existed"))
	assert.NoError(t, svc.Logout(ctx, ""))
}

func TestAuthService_VerifyWithoutSessionSkipsBackend(t *testing.T) {
	fake := backend.NewFake()
	called := false
	fake.VerifyTokenFunc = func(context.Context, string) (ports.VerifyResult, error) {
		called = true
		return ports.VerifyResult{}, nil
	}
	svc := newAuthService(fake, memory.NewSessionStore())

	ok, user := svc.Verify(context.Background(), "")
	assert.False(t, ok)
	assert.Nil(t, user)
	assert.False(t, called)

	ok, _ = svc.Verify(context.Background(), "unknown")
	assert.False(t, ok)
	assert.False(t, called)
}

func TestAuthService_VerifyValidToken(t *testing.T) {
	store := memory.NewSessionStore()
	svc := newAuthService(backend.WithUser("tok", testUser()), store)
	ctx := context.Background()

	sess, err := svc.Login(ctx, ports.Credentials{Username: "alice", Password: "pw"})
	require.NoError(t, err)

	ok, user := svc.Verify(ctx, sess.ID)
	assert.True(t, ok)
	require.NotNil(t, user)
	assert.Equal(t, "alice", user.Username)
}

func TestAuthService_VerifyInvalidTokenClearsSession(t *testing.T) {
	fake := backend.WithUser("tok", testUser())
	store := memory.NewSessionStore()
	svc := newAuthService(fake, store)
	ctx := context.Background()

	sess, err := svc.Login(ctx, ports.Credentials{Username: "alice", Password: "pw"})
	require.NoError(t, err)

	fake.VerifyTokenFunc = func(context.Context, string) (ports.VerifyResult, error) {
		return ports.VerifyResult{Valid: false}, nil
	}

	ok, user := svc.Verify(ctx, sess.ID)
	assert.False(t, ok)
	assert.Nil(t, user)
	_, err = store.Get(ctx, sess.ID)
	assert.ErrorIs(t, err, memory.ErrNotFound)
}

func TestAuthService_VerifyTransportErrorClearsSession(t *testing.T) {
	fake := backend.WithUser("tok", testUser())
	store := memory.NewSessionStore()
	svc := newAuthService(fake, store)
	ctx := context.Background()

	sess, err := svc.Login(ctx, ports.Credentials{Username: "alice", Password: "pw"})
	require.NoError(t, err)

	fake.VerifyTokenFunc = func(context.Context, string) (ports.VerifyResult, error) {
		return ports.VerifyResult{}, errors.New("connection refused")
	}

	ok, _ := svc.Verify(ctx, sess.ID)
	assert.False(t, ok)
	_, err = store.Get(ctx, sess.ID)
	assert.ErrorIs(t, err, memory.ErrNotFound)
}

func TestAuthService_VerifyRefreshesChangedUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	updated := testUser()
	updated.Role = domainauth.RoleGroupAdmin
	updated.IsAdmin = false

	fake := backend.NewFake()
	fake.VerifyTokenFunc = func(context.Context, string) (ports.VerifyResult, error) {
		u := updated
		return ports.VerifyResult{Valid: true, User: &u}, nil
	}

	stored := domainauth.Session{
		ID:        "sess-1",
		Token:     "tok",
		User:      testUser(),
		CreatedAt: time.Now(),
		ExpiresAt: time.Now().Add(time.Hour),
	}

	store := mocks.NewMockSessionStore(ctrl)
	store.EXPECT().Get(gomock.Any(), "sess-1").Return(stored, nil)
	store.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, sess domainauth.Session) error {
			assert.Equal(t, domainauth.RoleGroupAdmin, sess.User.Role)
			return nil
		})

	svc := NewAuthService(AuthServiceOptions{
		Backend:    fake,
		Sessions:   store,
		SessionTTL: time.Hour,
		Logger:     discardLogger(),
	})

	ok, user := svc.Verify(context.Background(), "sess-1")
	assert.True(t, ok)
	require.NotNil(t, user)
	assert.Equal(t, domainauth.RoleGroupAdmin, user.Role)
}

func TestAuthService_GetSessionExpired(t *testing.T) {
	store := memory.NewSessionStore()
	svc := newAuthService(backend.NewFake(), store)
	ctx := context.Background()

	expired := domainauth.Session{
		ID:        "sess-old",
		Token:     "tok",
		User:      testUser(),
		CreatedAt: time.Now().Add(-2 * time.Hour),
		ExpiresAt: time.Now().Add(-time.Hour),
	}
	require.NoError(t, store.Save(ctx, expired))

	_, err := svc.GetSession(ctx, "sess-old")
	assert.True(t, apperrors.IsUnauthorized(err))
}

func TestAuthService_ChangePassword(t *testing.T) {
	fake := backend.WithUser("tok", testUser())
	var got model.ChangePasswordRequest
	fake.ChangePasswordFunc = func(_ context.Context, token string, req model.ChangePasswordRequest) error {
		assert.Equal(t, "tok", token)
		got = req
		return nil
	}
	store := memory.NewSessionStore()
	svc := newAuthService(fake, store)
	ctx := context.Background()

	sess, err := svc.Login(ctx, ports.Credentials{Username: "alice", Password: "pw"})
	require.NoError(t, err)

	req := model.ChangePasswordRequest{CurrentPassword: "pw", NewPassword: "better-pw"}
	require.NoError(t, svc.ChangePassword(ctx, sess.ID, req))
	assert.Equal(t, req, got)

	err = svc.ChangePassword(ctx, sess.ID, model.ChangePasswordRequest{CurrentPassword: "pw", NewPassword: "pw"})
	assert.True(t, apperrors.IsValidation(err))

	err = svc.ChangePassword(ctx, sess.ID, model.ChangePasswordRequest{})
	assert.True(t, apperrors.IsValidation(err))
}
