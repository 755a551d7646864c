package testutil

// Package testutil holds shared helpers for integration-style tests.

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"

	domainauth "github.com/docvault/docvault-ui/internal/domain/auth"
)

// SetupTestRedis creates a Redis client for testing. Tests are skipped when
// Redis is not reachable; set TEST_REDIS_ADDR to point at a non-default instance.
func SetupTestRedis(t *testing.T) *redis.Client {
	t.Helper()

	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}

	client := redis.NewClient(&redis.Options{Addr: addr, DB: 15})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		t.Skipf("Redis not available at %s: %v", addr, err)
	}

	return client
}

// NewSession builds a valid session for tests.
func NewSession(id, token string, user domainauth.User) domainauth.Session {
	now := time.Now()
	return domainauth.Session{
		ID:        id,
		Token:     token,
		User:      user,
		CreatedAt: now,
		ExpiresAt: now.Add(30 * time.Minute),
	}
}
