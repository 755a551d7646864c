package config

import "time"

// Session store kinds.
const (
	SessionStoreRedis    = "redis"
	SessionStorePostgres = "postgres"
	SessionStoreMemory   = "memory"
)

// SessionConfig configures browser session persistence.
type SessionConfig struct {
	// Store selects the backing store: redis, postgres, or memory.
	// Memory is for development only; sessions vanish on restart.
	Store string `env:"STORE" envDefault:"redis"`

	// TTL is the session lifetime from login.
	TTL time.Duration `env:"TTL" envDefault:"8h"`
}

// Sanitize applies guardrails to session configuration values.
func (s *SessionConfig) Sanitize() {
	switch s.Store {
	case SessionStoreRedis, SessionStorePostgres, SessionStoreMemory:
	default:
		s.Store = SessionStoreRedis
	}
	if s.TTL <= 0 {
		s.TTL = 8 * time.Hour
	}
}

// RedisConfig contains Redis connection settings for the session store.
type RedisConfig struct {
	Addr     string `env:"ADDR"     envDefault:"localhost:6379"`
	Password string `env:"PASSWORD" envDefault:""`
	DB       int    `env:"DB"       envDefault:"0"`
}

// PostgresConfig contains PostgreSQL connection settings for the session store.
type PostgresConfig struct {
	Host     string `env:"HOST"     envDefault:"localhost"`
	Port     int    `env:"PORT"     envDefault:"5432"`
	User     string `env:"USER"     envDefault:"docvault"`
	Password string `env:"PASSWORD" envDefault:"docvault"`
	Name     string `env:"NAME"     envDefault:"docvault"`
	SSLMode  string `env:"SSL_MODE" envDefault:"disable"` // Use 'disable' for local dev, 'require' for production
}
