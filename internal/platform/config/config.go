package config

import (
	"os"
	"strings"
	"time"
)

// StoreBackend selects the durable key-value store implementation.
type StoreBackend string

const (
	StoreMemory   StoreBackend = "memory"
	StorePostgres StoreBackend = "postgres"
	StoreRedis    StoreBackend = "redis"
)

// AuthMode selects how call proofs are verified.
type AuthMode string

const (
	AuthEd25519 AuthMode = "ed25519"
	AuthJWT     AuthMode = "jwt"
)

// Server captures process-level configuration. Values come from the
// environment so main stays lean.
type Server struct {
	Addr         string
	ShutdownWait time.Duration

	Store       StoreBackend
	DatabaseURL string
	RedisURL    string

	Auth          AuthMode
	JWTSigningKey string

	// BootstrapSecretHash is the bcrypt hash of the secret that authorizes
	// vault initialization before any admin exists.
	BootstrapSecretHash string

	KafkaBrokers []string
	AuditTopic   string
}

// FromEnv builds a Server config from environment variables.
func FromEnv() Server {
	cfg := Server{
		Addr:         envOr("WARDEN_ADDR", ":8080"),
		ShutdownWait: 10 * time.Second,
		Store:        StoreBackend(envOr("WARDEN_STORE", string(StoreMemory))),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		RedisURL:     os.Getenv("REDIS_URL"),
		Auth:         AuthMode(envOr("WARDEN_AUTH_MODE", string(AuthEd25519))),
		// Development default; override in production.
		JWTSigningKey:       envOr("JWT_SIGNING_KEY", "dev-secret-key-change-in-production"),
		BootstrapSecretHash: os.Getenv("WARDEN_BOOTSTRAP_SECRET_HASH"),
		AuditTopic:          envOr("WARDEN_AUDIT_TOPIC", "warden.audit"),
	}
	if brokers := os.Getenv("KAFKA_BROKERS"); brokers != "" {
		cfg.KafkaBrokers = strings.Split(brokers, ",")
	}
	return cfg
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
