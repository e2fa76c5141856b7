package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/zainaaazz/FullStackWebApplication/config"
	"github.com/zainaaazz/FullStackWebApplication/internal/api/handler"
	"github.com/zainaaazz/FullStackWebApplication/internal/api/router"
	"github.com/zainaaazz/FullStackWebApplication/internal/repository"
	"github.com/zainaaazz/FullStackWebApplication/internal/service"
	"github.com/zainaaazz/FullStackWebApplication/pkg/blob"
	"github.com/zainaaazz/FullStackWebApplication/pkg/database"
	"github.com/zainaaazz/FullStackWebApplication/pkg/journal"
	"github.com/zainaaazz/FullStackWebApplication/pkg/jwt"
	applogger "github.com/zainaaazz/FullStackWebApplication/pkg/logger"
	"github.com/zainaaazz/FullStackWebApplication/pkg/redis"
	"github.com/zainaaazz/FullStackWebApplication/pkg/transcode"
)

func main() {
	// 1. config
	cfg, err := config.Load(os.Getenv("HMS_CONFIG"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "loading config: %v\n", err)
		os.Exit(1)
	}

	// 2. logger
	logger, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "initializing logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("starting hms api",
		zap.Int("port", cfg.Server.Port),
		zap.String("log_level", cfg.Log.Level),
		zap.String("storage_driver", cfg.Storage.Driver),
	)

	// 3. database
	db, err := database.NewDB(&cfg.Database, cfg.Log.Level, logger)
	if err != nil {
		logger.Fatal("database connection failed", zap.Error(err))
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatal("getting sql.DB failed", zap.Error(err))
	}
	if cfg.Database.AutoMigrate {
		if err := database.RunMigrations(sqlDB, logger); err != nil {
			logger.Fatal("database migration failed", zap.Error(err))
		}
	}

	// 4. redis, optional
	var rdb *redis.Client
	if cfg.Redis.Addr != "" {
		rdb, err = redis.NewClient(&cfg.Redis, logger)
		if err != nil {
			logger.Warn("redis unavailable, login rate limiting disabled", zap.Error(err))
			rdb = nil
		}
	}

	// 5. object store
	store, err := blob.NewStore(context.Background(), &cfg.Storage, logger)
	if err != nil {
		logger.Fatal("object store initialization failed", zap.Error(err))
	}

	// 6. ingest journal
	jrnl, err := journal.Open(cfg.Media.JournalPath)
	if err != nil {
		logger.Fatal("opening ingest journal failed", zap.Error(err), zap.String("path", cfg.Media.JournalPath))
	}

	// 7. wiring: Repository → Service → Handler
	jwtMgr := jwt.NewManager(&cfg.Auth)
	repo := repository.NewRepository(db)
	svc := service.NewService(cfg, service.Deps{
		Repo:       repo,
		JWT:        jwtMgr,
		Store:      store,
		Transcoder: transcode.NewFFmpeg(&cfg.Media, logger),
		Journal:    jrnl,
		Logger:     logger,
	})
	h := handler.NewHandler(svc)

	// 8. router
	engine := router.Setup(cfg, h, jwtMgr, rdb, logger)

	// uploads interrupted by a previous crash
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()
		report, err := svc.Video.SweepOrphans(ctx)
		if err != nil {
			logger.Error("startup orphan sweep failed", zap.Error(err))
			return
		}
		if report.Checked > 0 {
			logger.Info("startup orphan sweep",
				zap.Int("checked", report.Checked),
				zap.Int("linked", report.Linked),
				zap.Int("deleted", report.Deleted),
				zap.Int("failed", report.Failed),
			)
		}
	}()

	// 9. HTTP server with graceful shutdown
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
		// POST /videos extends both deadlines per request
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Media.TranscodeTimeout + time.Minute,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("http server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("http server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	logger.Info("shutting down", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown failed", zap.Error(err))
	}

	if err := jrnl.Close(); err != nil {
		logger.Error("closing journal failed", zap.Error(err))
	}

	if sqlDB != nil {
		sqlDB.Close()
	}

	if rdb != nil {
		rdb.Close()
	}

	logger.Info("server stopped")
}
