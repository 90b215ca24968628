// Command api runs the GoStays HTTP API server.
//
// Startup order: config, logger, migrations, application container,
// middlewares, repositories, services, handlers, router. Shutdown is
// triggered by SIGINT/SIGTERM and drains in-flight requests before
// closing workers and connections.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gostays/backend/internal/config"
	"github.com/gostays/backend/internal/database"
	"github.com/gostays/backend/internal/handler"
	"github.com/gostays/backend/internal/logger"
	"github.com/gostays/backend/internal/middleware"
	"github.com/gostays/backend/internal/repository"
	"github.com/gostays/backend/internal/router"
	"github.com/gostays/backend/internal/server"
	"github.com/gostays/backend/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	loggerService, err := logger.NewLoggerService(cfg)
	if err != nil {
		panic(err)
	}

	log := logger.New(cfg, loggerService)

	migrateCtx, cancelMigrate := context.WithTimeout(context.Background(), 2*time.Minute)
	if err := database.Migrate(migrateCtx, log, cfg); err != nil {
		cancelMigrate()
		log.Fatal().Err(err).Msg("failed to run database migrations")
	}
	cancelMigrate()

	s, err := server.New(cfg, log, loggerService)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize server")
	}

	middlewares := middleware.NewMiddlewares(s)
	repos := repository.NewRepositories(s)

	services, err := service.NewService(s, repos)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize services")
	}

	handlers := handler.NewHandlers(s, services)

	e := router.New(middlewares, handlers)
	s.SetupHTTPServer(e)

	go func() {
		if err := s.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}

	if loggerService != nil {
		loggerService.Shutdown(10 * time.Second)
	}

	log.Info().Msg("server stopped")
}
