package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golden9_club/internal/api"
	"golden9_club/internal/app/service"
	"golden9_club/internal/common/security"
	"golden9_club/internal/domain/repository"
	"golden9_club/internal/platform/cache"
	"golden9_club/internal/platform/config"
	"golden9_club/internal/platform/database"

	"github.com/lmittmann/tint"
)

func main() {
	logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{Level: slog.LevelDebug}))
	slog.SetDefault(logger)

	// 1. Load Configuration (fails fast on missing secrets)
	cfg, err := config.Load()
	if err != nil {
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}
	slog.Info("configuration loaded")

	// 2. Initialize JWT
	tokens := security.NewTokenManager(cfg.JWTKey, cfg.JWTExp)

	// 3. Initialize Database
	db, err := database.Connect(cfg)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	slog.Info("database connected", "host", cfg.DBHost, "name", cfg.DBName)

	// 4. Initialize Redis. The leaderboard degrades to plain SQL without it.
	rdb, err := cache.Connect(context.Background(), cfg)
	if err != nil {
		slog.Warn("redis unavailable, leaderboard cache disabled", "error", err)
		rdb = nil
	} else {
		defer rdb.Close()
		slog.Info("redis connected", "addr", cfg.RedisAddr)
	}

	// 5. Initialize Repositories
	userRepo := repository.NewPgUserRepository(db)
	eventRepo := repository.NewPgEventRepository(db)
	productRepo := repository.NewPgProductRepository(db)

	// 6. Initialize Services
	leaderboardService := service.NewLeaderboardService(userRepo, rdb, cfg.LeaderboardKey, cfg.LeaderboardCacheTTL)
	authService := service.NewAuthService(userRepo, tokens, leaderboardService)
	userService := service.NewUserService(userRepo, leaderboardService)
	eventService := service.NewEventService(eventRepo)
	productService := service.NewProductService(productRepo)

	// 7. Initialize Router & HTTP Server
	router := api.NewRouter(tokens, authService, userService, eventService, productService, leaderboardService)

	server := &http.Server{
		Addr:         ":" + cfg.APIPort,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// 8. Graceful Shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "port", cfg.APIPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	<-stop // Wait for interrupt signal

	slog.Info("shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown failed", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}
