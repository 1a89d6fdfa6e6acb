package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/arvelin/staffdesk-be/internal/api"
	"github.com/arvelin/staffdesk-be/internal/auth"
	"github.com/arvelin/staffdesk-be/internal/config"
	"github.com/arvelin/staffdesk-be/internal/database"
	"github.com/arvelin/staffdesk-be/internal/logger"
	"github.com/arvelin/staffdesk-be/internal/monitoring"
	"github.com/arvelin/staffdesk-be/internal/services"
	"github.com/arvelin/staffdesk-be/internal/websocket"
)

func main() {
	logger.Init()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	if cfg.UsesDevSecret() {
		log.Warn().Msg("JWT_SECRET not set; using insecure development secret")
	}

	// Set up database
	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize database")
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("Failed to apply database migrations")
	}

	// Token manager holds the signing secret; nothing else reads it.
	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)

	// Set up WebSocket Hub
	hub := websocket.NewHub()
	go hub.Run()

	// Set up services
	userService := services.NewUserService(db)
	employeeService := services.NewEmployeeService(db)
	eventService := services.NewEventService(db)

	// Set up and run the background system updater
	systemUpdater := monitoring.NewSystemUpdater(15 * time.Second)
	go systemUpdater.Run()

	// Set up and run the background event pruner
	pruner, err := monitoring.NewRetentionPruner(eventService, cfg.EventPruneSchedule, cfg.EventRetention)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize retention pruner")
	}
	go pruner.Run()

	// Set up router
	router := api.NewRouter(tokens, hub, userService, employeeService, eventService, systemUpdater)

	// Set up server
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.ServerPort),
		Handler: router,
	}

	// Graceful shutdown
	go func() {
		log.Info().Int("port", cfg.ServerPort).Msg("Server starting")
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("ListenAndServe()")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	systemUpdater.Stop()
	pruner.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exiting")
}
