package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/victormanase/apartment-rental-app/internal/admin"
	"github.com/victormanase/apartment-rental-app/internal/auth"
	"github.com/victormanase/apartment-rental-app/internal/config"
	"github.com/victormanase/apartment-rental-app/internal/core"
	"github.com/victormanase/apartment-rental-app/internal/health"
	"github.com/victormanase/apartment-rental-app/internal/metrics"
	"github.com/victormanase/apartment-rental-app/internal/middleware"
	"github.com/victormanase/apartment-rental-app/internal/notify"
	"github.com/victormanase/apartment-rental-app/internal/rent"
	"github.com/victormanase/apartment-rental-app/internal/server"
	"github.com/victormanase/apartment-rental-app/internal/tenant"
	"github.com/victormanase/apartment-rental-app/internal/unit"
	"github.com/victormanase/apartment-rental-app/internal/user"
)

const drainDelay = 5 * time.Second

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

//nolint:funlen // bootstrap code is inherently verbose
func run(configPath string) error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGINT,
		syscall.SIGTERM,
	)
	defer stop()

	//nolint:errcheck // a missing .env file is fine
	_ = godotenv.Load()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logger := setupLogger(cfg.Log)
	slog.SetDefault(logger)

	logger.Info("starting application",
		"name", cfg.App.Name,
		"version", cfg.App.Version,
		"environment", cfg.App.Environment,
		"driver", cfg.Database.Driver,
	)

	var telemetry *core.Telemetry
	if cfg.Otel.Enabled {
		tel, telErr := core.NewTelemetry(ctx, cfg.Otel, cfg.App)
		if telErr != nil {
			logger.Warn("failed to initialize telemetry", "error", telErr)
		} else {
			telemetry = tel
			logger.Info("OpenTelemetry tracer initialized",
				"endpoint", cfg.Otel.Endpoint,
			)
		}
	}

	stores, err := openStores(ctx, cfg, logger)
	if err != nil {
		return err
	}

	var redisClient *core.Redis
	if cfg.Redis.URL != "" {
		redisClient, err = core.NewRedis(ctx, cfg.Redis)
		if err != nil {
			return err
		}
		logger.Info("redis connected", "pool_size", cfg.Redis.PoolSize)
	}

	tokenManager, err := auth.NewTokenManager(cfg.JWT)
	if err != nil {
		return err
	}
	logger.Info("token manager initialized",
		"algorithm", "HS256",
		"expire", cfg.JWT.Expire,
	)

	storage, err := unit.NewStorage(cfg.Uploads.Dir)
	if err != nil {
		return err
	}

	queryTimeout := cfg.Database.QueryTimeout

	authSvc := auth.NewService(stores.users, tokenManager, queryTimeout)
	unitSvc := unit.NewService(
		stores.units,
		storage,
		cfg.Uploads.MaxFiles,
		queryTimeout,
		logger,
	)
	tenantSvc := tenant.NewService(stores.tenants, queryTimeout)
	rentSvc := rent.NewService(stores.rents, queryTimeout)

	authHandler := auth.NewHandler(authSvc)
	unitHandler := unit.NewHandler(unitSvc, cfg.Uploads.MaxFileSize)
	tenantHandler := tenant.NewHandler(tenantSvc)
	rentHandler := rent.NewHandler(rentSvc)

	var redisChecker health.Checker
	if redisClient != nil {
		redisChecker = redisClient
	}
	healthHandler := health.NewHandler(stores.checker, redisChecker)

	adminHandler := admin.NewHandler(adminConfig(
		stores, redisClient, unitSvc, tenantSvc,
	))

	httpMetrics := metrics.New()

	srv := server.New(server.Config{
		ServerConfig:  cfg.Server,
		HealthHandler: healthHandler,
		Logger:        logger,
	})

	router := srv.Router()

	router.Use(middleware.RequestID)
	router.Use(middleware.Logger(logger))
	router.Use(httpMetrics.Middleware)
	if redisClient != nil {
		router.Use(middleware.NewRateLimiter(
			redisClient.Client,
			middleware.RateLimitConfig{
				Limit: middleware.PerMinute(
					cfg.RateLimit.Requests,
					cfg.RateLimit.Burst,
				),
				FailOpen: true,
			},
		).Handler)
	}
	router.Use(middleware.SecurityHeaders(cfg.IsProduction()))
	router.Use(middleware.CORS(cfg.CORS))

	healthHandler.RegisterRoutes(router)
	router.Handle("/metrics", metrics.Handler())

	authenticator := middleware.Authenticator(tokenManager)

	authHandler.RegisterRoutes(router, authenticator)
	unitHandler.RegisterRoutes(router, authenticator)
	tenantHandler.RegisterRoutes(router, authenticator)
	rentHandler.RegisterRoutes(router, authenticator)
	adminHandler.RegisterRoutes(router, authenticator)

	router.Handle("/uploads/*", http.StripPrefix(
		"/uploads/",
		http.FileServer(http.Dir(storage.Dir())),
	))

	scheduler := notify.NewScheduler(cfg.Jobs, rentSvc, httpMetrics, logger)
	if err := scheduler.Start(); err != nil {
		return err
	}

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		cfg.Server.ShutdownTimeout+drainDelay+5*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx, drainDelay); err != nil {
		logger.Error("server shutdown error", "error", err)
	}

	<-scheduler.Stop().Done()

	if telemetry != nil {
		if err := telemetry.Shutdown(shutdownCtx); err != nil {
			logger.Error("telemetry shutdown error", "error", err)
		}
	}

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			logger.Error("redis close error", "error", err)
		}
	}

	if err := stores.close(shutdownCtx); err != nil {
		logger.Error("store close error", "error", err)
	}

	logger.Info("application stopped")
	return nil
}

// stores bundles the repository backends behind whichever driver the config
// selected.
type stores struct {
	users   user.Repository
	units   unit.Repository
	tenants tenant.Repository
	rents   rent.Repository

	checker health.Checker
	db      *core.Database
	mongo   *core.Mongo
}

func openStores(
	ctx context.Context,
	cfg *config.Config,
	logger *slog.Logger,
) (*stores, error) {
	switch cfg.Database.Driver {
	case "postgres":
		db, err := core.NewDatabase(ctx, cfg.Database)
		if err != nil {
			return nil, err
		}
		logger.Info("database connected",
			"max_open_conns", cfg.Database.MaxOpenConns,
			"max_idle_conns", cfg.Database.MaxIdleConns,
		)

		return &stores{
			users:   user.NewRepository(db.DB),
			units:   unit.NewRepository(db.DB),
			tenants: tenant.NewRepository(db.DB),
			rents:   rent.NewRepository(db.DB),
			checker: db,
			db:      db,
		}, nil

	case "mongo":
		mongoDB, err := core.NewMongo(ctx, cfg.Database)
		if err != nil {
			return nil, err
		}
		logger.Info("mongo connected", "database", cfg.Database.MongoDatabase)

		users, err := user.NewMongoRepository(ctx, mongoDB)
		if err != nil {
			return nil, err
		}

		return &stores{
			users:   users,
			units:   unit.NewMongoRepository(mongoDB),
			tenants: tenant.NewMongoRepository(mongoDB),
			rents:   rent.NewMongoRepository(mongoDB),
			checker: mongoDB,
			mongo:   mongoDB,
		}, nil

	case "memory":
		logger.Warn("using in-memory stores, data is not persisted")

		return &stores{
			users:   user.NewMemoryRepository(),
			units:   unit.NewMemoryRepository(),
			tenants: tenant.NewMemoryRepository(),
			rents:   rent.NewMemoryRepository(),
		}, nil

	default:
		return nil, fmt.Errorf(
			"unknown database driver %q", cfg.Database.Driver,
		)
	}
}

func (s *stores) close(ctx context.Context) error {
	if s.db != nil {
		return s.db.Close()
	}
	if s.mongo != nil {
		return s.mongo.Close(ctx)
	}
	return nil
}

type ledgerFunc func(ctx context.Context) (int, error)

func (f ledgerFunc) Count(ctx context.Context) (int, error) {
	return f(ctx)
}

func adminConfig(
	s *stores,
	redisClient *core.Redis,
	unitSvc *unit.Service,
	tenantSvc *tenant.Service,
) admin.HandlerConfig {
	cfg := admin.HandlerConfig{
		Ledgers: map[string]admin.LedgerCounter{
			"units": ledgerFunc(func(ctx context.Context) (int, error) {
				units, err := unitSvc.List(ctx)
				return len(units), err
			}),
			"tenants": ledgerFunc(func(ctx context.Context) (int, error) {
				tenants, err := tenantSvc.List(ctx)
				return len(tenants), err
			}),
		},
	}

	if s.db != nil {
		cfg.DBStats = s.db.Stats
		cfg.DBPing = s.db.Ping
	} else if s.mongo != nil {
		cfg.DBPing = s.mongo.Ping
	}

	if redisClient != nil {
		cfg.RedisStats = redisClient.PoolStats
		cfg.RedisPing = redisClient.Ping
	}

	return cfg
}

func setupLogger(cfg config.LogConfig) *slog.Logger {
	var handler slog.Handler

	level := slog.LevelInfo
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	opts := &slog.HandlerOptions{Level: level}

	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}
