package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/labstack/echo/v4"

	"webclass/internal/auth"
	"webclass/internal/cache"
	"webclass/internal/config"
	"webclass/internal/db"
	"webclass/internal/handler"
	"webclass/internal/logger"
	"webclass/internal/metrics"
	"webclass/internal/model"
	"webclass/internal/repository"
	"webclass/internal/router"
	"webclass/internal/server"
	"webclass/internal/service"
	"webclass/internal/view"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)

	gormDB, err := db.Open(cfg.Database.Driver, cfg.Database.DSN)
	if err != nil {
		logger.Fatal("failed to open database", "error", err)
	}
	if err := db.Migrate(gormDB, &model.User{}); err != nil {
		logger.Fatal("failed to migrate database", "error", err)
	}

	cacheClient := cache.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	defer cacheClient.Close()
	if err := cacheClient.Ping(ctx); err != nil {
		logger.Warn("redis not reachable, sessions will fail until it is", "error", err)
	}

	sessions := auth.NewSessionManager(
		auth.NewRedisSessionStore(cacheClient),
		auth.NewCookieSigner(cfg.Session.Secret),
		auth.SessionOptions{
			CookieName: cfg.Session.Cookie,
			TTL:        cfg.Session.TTL,
			Secure:     cfg.Session.Secure,
		},
	)

	renderer, err := view.New()
	if err != nil {
		logger.Fatal("failed to parse templates", "error", err)
	}

	userRepo := repository.NewUserRepository(gormDB)
	authService := service.NewAuthService(userRepo)
	userService := service.NewUserService(userRepo)
	m := metrics.New("webclass_auth")

	e := echo.New()
	router.RegisterAuth(
		e,
		logger.Logger,
		m,
		renderer,
		sessions,
		handler.NewAuthHandler(authService, sessions, m, logger.Logger),
		handler.NewProfileHandler(userService, sessions),
	)

	if err := server.Run(ctx, e, ":"+cfg.ServerPort, logger.Logger); err != nil {
		logger.Fatal("server stopped", "error", err)
	}
	logger.Info("shutdown complete")
}
