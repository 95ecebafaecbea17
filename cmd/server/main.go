package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/umarhameed12/ghani-glass-backend-repo/internal/auth"
	"github.com/umarhameed12/ghani-glass-backend-repo/internal/config"
	"github.com/umarhameed12/ghani-glass-backend-repo/internal/db"
	"github.com/umarhameed12/ghani-glass-backend-repo/internal/httpapi"
	"github.com/umarhameed12/ghani-glass-backend-repo/internal/service"
	"github.com/umarhameed12/ghani-glass-backend-repo/pkg/logger"
)

func main() {
	log := logger.Must(logger.New())
	defer func() { _ = log.Sync() }()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("config error", zap.Error(err))
	}

	database, err := db.Connect(cfg)
	if err != nil {
		log.Fatal("database connection error", zap.Error(err))
	}

	tokens := auth.NewTokens(cfg.JWTSecret, cfg.JWTExpiration)

	handler := httpapi.NewRouter(httpapi.Services{
		Departments: service.NewDepartmentService(database),
		Categories:  service.NewCategoryService(database),
		AssetStores: service.NewAssetStoreService(database),
		Users:       service.NewUserService(database),
		Auth:        service.NewAuthService(database, tokens),
	}, tokens, logger.Named(log, "httpapi"))

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Info("starting server", zap.String("port", cfg.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("forced shutdown", zap.Error(err))
	}
	log.Info("server stopped")
}
