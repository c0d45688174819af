package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/meowjesty/tasknest/core/config"
	"github.com/meowjesty/tasknest/core/cookie"
	"github.com/meowjesty/tasknest/core/logger"
	"github.com/meowjesty/tasknest/core/server"
	"github.com/meowjesty/tasknest/core/session"
	"github.com/meowjesty/tasknest/handlers"
	"github.com/meowjesty/tasknest/integration/database/pg"
	"github.com/meowjesty/tasknest/integration/database/redis"
	"github.com/meowjesty/tasknest/migrations"
	"github.com/meowjesty/tasknest/pkg/ratelimiter"
	"github.com/meowjesty/tasknest/tasks"
	"github.com/meowjesty/tasknest/users"
)

type appConfig struct {
	Logger  logger.Config
	Server  server.Config
	Cookies cookie.Config
	Session session.Config
	PG      pg.Config
	Redis   redis.Config

	LoginRateLimit  int           `env:"LOGIN_RATE_LIMIT" envDefault:"5"`
	LoginRateWindow time.Duration `env:"LOGIN_RATE_WINDOW" envDefault:"1m"`
}

func main() {
	var cfg appConfig
	config.MustLoad(&cfg)

	log := logger.NewFromConfig(cfg.Logger)

	if err := run(context.Background(), cfg, log); err != nil {
		log.Error("server exited", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg appConfig, log *slog.Logger) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := pg.Connect(ctx, cfg.PG)
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := pg.Migrate(ctx, pool, migrations.FS, log); err != nil {
		return err
	}

	cookies, err := cookie.NewFromConfig(cfg.Cookies)
	if err != nil {
		return err
	}
	sessions, err := session.NewFromConfig[handlers.SessionState](cfg.Session, cookies)
	if err != nil {
		return err
	}

	healthchecks := map[string]func(context.Context) error{
		"postgres": pg.Healthcheck(pool),
	}

	// Redis shares login rate limits across replicas; without it the
	// limiter falls back to per-process state.
	var limiterStore ratelimiter.Store
	if cfg.Redis.ConnectionURL != "" {
		client, err := redis.Connect(ctx, cfg.Redis)
		if err != nil {
			return err
		}
		defer client.Close()

		limiterStore = ratelimiter.NewRedisStore(client, "tasknest:login")
		healthchecks["redis"] = redis.Healthcheck(client)
	} else {
		memStore := ratelimiter.NewMemoryStore()
		defer memStore.Close()
		limiterStore = memStore
	}

	loginLimiter, err := ratelimiter.NewBucket(limiterStore, ratelimiter.Config{
		Capacity:       cfg.LoginRateLimit,
		RefillRate:     cfg.LoginRateLimit,
		RefillInterval: cfg.LoginRateWindow,
	})
	if err != nil {
		return err
	}

	router := handlers.NewRouter(handlers.RouterConfig{
		Logger:       log,
		Sessions:     sessions,
		Users:        users.NewRepository(pool),
		Tasks:        tasks.NewRepository(pool),
		LoginLimiter: loginLimiter,
		Healthchecks: healthchecks,
	})

	srv, err := server.NewFromConfig(cfg.Server, server.WithLogger(log))
	if err != nil {
		return err
	}

	log.Info("starting server", "addr", cfg.Server.Addr)
	return srv.Run(ctx, router)
}
