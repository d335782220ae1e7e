package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/inkpress/backend/internal/blob"
	"github.com/inkpress/backend/internal/config"
	"github.com/inkpress/backend/internal/db"
	"github.com/inkpress/backend/internal/handler"
	"github.com/inkpress/backend/internal/media"
	"github.com/inkpress/backend/internal/service"
	"github.com/inkpress/backend/internal/upload"
)

func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	cfg := config.Load()

	if err := run(cfg, logger); err != nil {
		logger.Error("fatal", "error", err)
		os.Exit(1)
	}
}

func run(cfg config.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	database, err := db.NewPostgres(ctx, cfg.Postgres)
	if err != nil {
		return err
	}
	defer database.Close()

	if err := database.EnsureSchema(ctx); err != nil {
		return err
	}

	if err := upload.EnsureDir(cfg.Upload.TempDir); err != nil {
		return err
	}

	store, err := blob.NewS3Store(ctx, cfg.S3)
	if err != nil {
		return err
	}

	tokens, err := service.NewTokenService(cfg.Auth)
	if err != nil {
		return err
	}

	coordinator := media.NewCoordinator(store, logger)
	creds := service.NewCredentials()

	router := handler.NewRouter(handler.RouterDeps{
		Cfg:    cfg,
		Logger: logger,
		DB:     database,
		Tokens: tokens,
		Auth:   service.NewAuthService(database, tokens, creds),
		Users:  service.NewUserService(database, coordinator, creds),
		Blogs:  service.NewBlogService(database, database, coordinator),
	})

	srv := &http.Server{
		Addr:    ":" + cfg.App.Port,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", srv.Addr, "env", cfg.App.Env)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}

	logger.Info("server stopped")
	return nil
}
