package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/a2sh3r/banshi-admin/internal/adminapi"
	"github.com/a2sh3r/banshi-admin/internal/cache"
	"github.com/a2sh3r/banshi-admin/internal/config"
	"github.com/a2sh3r/banshi-admin/internal/database"
	"github.com/a2sh3r/banshi-admin/internal/handlers"
	"github.com/a2sh3r/banshi-admin/internal/logger"
	"github.com/a2sh3r/banshi-admin/internal/middleware"
	"github.com/a2sh3r/banshi-admin/internal/repository"
	"github.com/a2sh3r/banshi-admin/internal/service"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

type App struct {
	server *http.Server
	db     *sql.DB
	cache  cache.Cache
}

func NewApp(ctx context.Context) (*App, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	cfg.ParseFlags()

	return newApp(ctx, cfg)
}

func newApp(ctx context.Context, cfg *config.Config) (*App, error) {
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	var (
		db      *sql.DB
		journal repository.JournalRepository
	)
	if cfg.DatabaseURI != "" {
		var err error
		db, err = database.InitDB(ctx, cfg.DatabaseURI, database.DefaultMigrationsPath)
		if err != nil {
			logger.Log.Error("Database connection failed", zap.Error(err))
			return nil, err
		}
		journal = repository.NewJournalRepository(db)
	} else {
		logger.Log.Info("DATABASE_URI not set, admin action journal disabled")
		journal = repository.NewNopJournal()
	}

	var c cache.Cache
	if cfg.RedisAddr != "" {
		rc, err := cache.NewRedisCache(ctx, cfg.RedisAddr, cfg.RedisPassword)
		if err != nil {
			logger.Log.Error("Redis connection failed", zap.Error(err))
			closeDB(db)
			return nil, err
		}
		c = rc
	} else {
		c = cache.NewMemoryCache()
	}

	client := adminapi.NewClient(cfg.APIBaseURL, cfg.APITimeout)

	userService := service.NewUserService(client, c, cfg.CacheTTL, journal)
	handler := handlers.NewHandler(handlers.Services{
		Auth:        service.NewAuthService(cfg.AdminLogin, cfg.AdminPasswordHash, cfg.SecretKey),
		Dashboard:   service.NewDashboardService(client),
		Games:       service.NewGameService(client, journal, time.Local),
		Users:       userService,
		Withdrawals: service.NewWithdrawalService(client, userService, journal),
		Journal:     service.NewJournalService(journal),
	}, time.Local)

	if cfg.SecretKey == "" {
		logger.Log.Warn("KEY not set, console runs without authentication")
	}

	limiter := middleware.NewClientRateLimiter(rate.Limit(cfg.RateLimit), cfg.RateBurst)
	r := handlers.NewRouter(handler, cfg.SecretKey, limiter)

	server := &http.Server{
		Addr:              cfg.RunAddress,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	return &App{
		server: server,
		db:     db,
		cache:  c,
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	logger.Log.Info("console listening", zap.String("address", a.server.Addr))
	go func() {
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Fatal("server failed to start", zap.Error(err))
		}
	}()
	return nil
}

func (a *App) Shutdown(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	logger.Log.Info("shutting down server...")
	if err := a.server.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("server shutdown failed", zap.Error(err))
		return err
	}

	if closer, ok := a.cache.(io.Closer); ok {
		logger.Log.Info("closing redis connection...")
		if err := closer.Close(); err != nil {
			logger.Log.Error("failed to close redis", zap.Error(err))
			return err
		}
	}

	if a.db != nil {
		logger.Log.Info("closing database connection...")
		if err := a.db.Close(); err != nil {
			logger.Log.Error("failed to close database", zap.Error(err))
			return err
		}
	}

	return nil
}

func closeDB(db *sql.DB) {
	if db == nil {
		return
	}
	if err := db.Close(); err != nil {
		logger.Log.Error("failed to close database", zap.Error(err))
	}
}
