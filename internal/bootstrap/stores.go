package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/docvault/docvault-ui/config"
	memorystore "github.com/docvault/docvault-ui/internal/adapters/memory"
	pgstore "github.com/docvault/docvault-ui/internal/adapters/postgres"
	redisstore "github.com/docvault/docvault-ui/internal/adapters/redis"
	"github.com/docvault/docvault-ui/internal/ports"
)

const connectTimeout = 5 * time.Second

// ConnectRedis opens and pings a Redis connection.
func ConnectRedis(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connect redis at %s: %w", cfg.Addr, err)
	}
	return client, nil
}

// ConnectPostgres opens and pings a pgx connection pool.
func ConnectPostgres(ctx context.Context, cfg config.PostgresConfig) (*pgxpool.Pool, error) {
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Name, cfg.SSLMode)

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("create postgres pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("connect postgres at %s:%d: %w", cfg.Host, cfg.Port, err)
	}
	return pool, nil
}

// NewSessionStore builds the configured session store. The returned cleanup
// closes the underlying connection and is safe to call on every path.
func NewSessionStore(ctx context.Context, cfg *config.AppConfig, logger *slog.Logger) (ports.SessionStore, func(), error) {
	switch cfg.Session.Store {
	case config.SessionStoreRedis:
		client, err := ConnectRedis(ctx, cfg.Redis)
		if err != nil {
			return nil, nil, err
		}
		logger.Info("session store ready", "store", "redis", "addr", cfg.Redis.Addr)
		cleanup := func() {
			if cerr := client.Close(); cerr != nil {
				logger.Error("close redis failed", "error", cerr)
			}
		}
		return redisstore.NewSessionStore(client), cleanup, nil

	case config.SessionStorePostgres:
		pool, err := ConnectPostgres(ctx, cfg.Postgres)
		if err != nil {
			return nil, nil, err
		}
		store := pgstore.NewSessionStore(pool)
		if err := store.EnsureSchema(ctx); err != nil {
			pool.Close()
			return nil, nil, err
		}
		logger.Info("session store ready", "store", "postgres", "host", cfg.Postgres.Host)
		return store, pool.Close, nil

	case config.SessionStoreMemory:
		logger.Warn("using in-memory session store; sessions will not survive a restart")
		return memorystore.NewSessionStore(), func() {}, nil

	default:
		return nil, nil, fmt.Errorf("unknown session store %q", cfg.Session.Store)
	}
}
