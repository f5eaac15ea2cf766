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

	"inkpress/internal/api"
	"inkpress/internal/app/service"
	"inkpress/internal/common/security"
	"inkpress/internal/domain/repository"
	"inkpress/internal/platform/config"
	"inkpress/internal/platform/database"
	"inkpress/internal/platform/tokenstore"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg := config.Load()
	logger.Info("configuration loaded")

	tokenAuth := security.NewTokenAuth(cfg.JWTKey, cfg.JWTExp)

	// Both stores must come up before a single request is served;
	// a failed initialization is a fatal startup failure.
	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	db, err := database.Connect(startupCtx, cfg.DBConnStr)
	if err != nil {
		logger.Error("database initialization failed", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	logger.Info("database connected")

	tokens, err := tokenstore.NewRedisStore(startupCtx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		logger.Error("redis initialization failed", "error", err)
		os.Exit(1)
	}
	defer tokens.Close()
	logger.Info("redis connected")

	userRepo := repository.NewPgUserRepository(db)
	postRepo := repository.NewPgPostRepository(db)
	categoryRepo := repository.NewPgCategoryRepository(db)

	authService := service.NewAuthService(userRepo)
	contentService := service.NewContentService(postRepo, categoryRepo)

	router := api.NewRouter(authService, contentService, tokenAuth, tokens)

	server := &http.Server{
		Addr:         ":" + cfg.APIPort,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("server starting", "port", cfg.APIPort)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	<-stop

	logger.Info("shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped gracefully")
}
