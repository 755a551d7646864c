package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/docvault/docvault-ui/internal/domain/auth"
	"github.com/docvault/docvault-ui/internal/testutil"
)

func TestSessionStore_RoundTrip(t *testing.T) {
	store := NewSessionStore()
	ctx := context.Background()

	sess := testutil.NewSession("sess-1", "tok-1", domainauth.User{Username: "alice"})
	require.NoError(t, store.Save(ctx, sess))

	got, err := store.Get(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, "tok-1", got.Token)
	assert.Equal(t, "alice", got.User.Username)
}

func TestSessionStore_NotFound(t *testing.T) {
	store := NewSessionStore()
	_, err := store.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSessionStore_ExpiredRemovedOnRead(t *testing.T) {
	store := NewSessionStore()
	ctx := context.Background()

	sess := testutil.NewSession("sess-exp", "tok", domainauth.User{Username: "bob"})
	sess.ExpiresAt = time.Now().Add(-time.Second)
	require.NoError(t, store.Save(ctx, sess))

	_, err := store.Get(ctx, "sess-exp")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Zero(t, store.Len())
}

func TestSessionStore_DeleteIdempotent(t *testing.T) {
	store := NewSessionStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, testutil.NewSession("sess-1", "tok", domainauth.User{})))
	require.NoError(t, store.Delete(ctx, "sess-1"))
	require.NoError(t, store.Delete(ctx, "sess-1"))
	assert.Zero(t, store.Len())
}

func TestSessionStore_RejectsEmptyID(t *testing.T) {
	store := NewSessionStore()
	assert.Error(t, store.Save(context.Background(), domainauth.Session{}))
}
