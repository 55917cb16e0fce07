package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"warden/internal/platform/config"
	"warden/internal/platform/httpserver"
	"warden/internal/platform/logger"
	"warden/internal/platform/postgres"
	platformredis "warden/internal/platform/redis"
	httptransport "warden/internal/transport/http"
	"warden/internal/vault/audit"
	"warden/internal/vault/auth"
	"warden/internal/vault/guard"
	vaultmetrics "warden/internal/vault/metrics"
	"warden/internal/vault/registry"
	"warden/internal/vault/service"
	"warden/internal/vault/store"
)

// main wires dependencies and keeps the server lifecycle small. Business
// logic lives in the internal/vault packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New()

	if err := run(context.Background(), cfg, log); err != nil {
		log.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Server, log *slog.Logger) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	kv, checks, cleanup, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	authn, err := newAuthenticator(cfg)
	if err != nil {
		return err
	}

	auditor, err := newAuditPublisher(cfg, log)
	if err != nil {
		return err
	}
	defer auditor.Close()

	reg := registry.New(kv)
	svc := service.New(reg, guard.New(reg, authn),
		service.WithLogger(log),
		service.WithMetrics(vaultmetrics.New()),
		service.WithAuditPublisher(auditor),
	)

	router := httptransport.NewRouter(svc, log, cfg.BootstrapSecretHash, checks...)
	srv := httpserver.New(cfg.Addr, router)

	group, ctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		log.Info("warden listening", "addr", cfg.Addr, "store", string(cfg.Store), "auth", string(cfg.Auth))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	group.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownWait)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return group.Wait()
}

// openStore builds the configured KV backend along with its health checks and
// a cleanup closing whatever connections it opened.
func openStore(ctx context.Context, cfg config.Server) (store.KV, []httptransport.HealthCheck, func(), error) {
	switch cfg.Store {
	case config.StoreMemory:
		return store.NewMemory(), nil, func() {}, nil

	case config.StorePostgres:
		db, err := postgres.Open(cfg.DatabaseURL)
		if err != nil {
			return nil, nil, nil, err
		}
		pg := store.NewPostgres(db)
		if err := pg.EnsureSchema(ctx); err != nil {
			_ = db.Close()
			return nil, nil, nil, err
		}
		check := func(ctx context.Context) error { return db.PingContext(ctx) }
		return pg, []httptransport.HealthCheck{check}, func() { _ = db.Close() }, nil

	case config.StoreRedis:
		client, err := platformredis.New(cfg.RedisURL)
		if err != nil {
			return nil, nil, nil, err
		}
		if client == nil {
			return nil, nil, nil, errors.New("REDIS_URL is required when WARDEN_STORE=redis")
		}
		check := func(ctx context.Context) error { return client.Health(ctx) }
		return store.NewRedis(client.Client), []httptransport.HealthCheck{check}, func() { _ = client.Close() }, nil

	default:
		return nil, nil, nil, fmt.Errorf("unknown store backend %q", cfg.Store)
	}
}

func newAuthenticator(cfg config.Server) (auth.Authenticator, error) {
	switch cfg.Auth {
	case config.AuthEd25519:
		return auth.NewEd25519Verifier(), nil
	case config.AuthJWT:
		return auth.NewJWTVerifier(cfg.JWTSigningKey), nil
	default:
		return nil, fmt.Errorf("unknown auth mode %q", cfg.Auth)
	}
}

// newAuditPublisher emits to Kafka when brokers are configured; otherwise the
// trail stays in process memory, which is only useful for development.
func newAuditPublisher(cfg config.Server, log *slog.Logger) (audit.Publisher, error) {
	if len(cfg.KafkaBrokers) == 0 {
		log.Warn("no kafka brokers configured, audit trail is in-memory only")
		return audit.NewMemoryPublisher(), nil
	}
	return audit.NewKafkaPublisher(cfg.KafkaBrokers, cfg.AuditTopic)
}
