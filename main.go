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

	"github.com/Madiha-Maha/AuroraMind-AI/internal/api"
	"github.com/Madiha-Maha/AuroraMind-AI/internal/auth"
	"github.com/Madiha-Maha/AuroraMind-AI/internal/config"
	"github.com/Madiha-Maha/AuroraMind-AI/internal/database"
	"github.com/Madiha-Maha/AuroraMind-AI/internal/logger"
	"github.com/Madiha-Maha/AuroraMind-AI/internal/services"
)

func main() {
	logger.Init()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Set up database
	db, err := database.New(cfg.DatabaseDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize database")
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("Failed to apply database migrations")
	}

	if err := database.Seed(db); err != nil {
		log.Fatal().Err(err).Msg("Failed to seed demo data")
	}

	// Set up services
	tokenService := auth.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	userService := services.NewUserService(db)
	insightService := services.NewInsightService(db)
	predictionService := services.NewPredictionService(db)

	// Set up router
	router := api.NewRouter(tokenService, userService, insightService, predictionService, cfg.StaticDir)

	// Set up server
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.ServerPort),
		Handler: router,
	}

	// Graceful shutdown
	go func() {
		log.Info().Int("port", cfg.ServerPort).Msg("AuroraMind server starting")
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("ListenAndServe()")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exiting")
}
