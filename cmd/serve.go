package cmd

import (
	"context"
	"fmt"

	"realty-backend/internal/data/repository"
	"realty-backend/internal/usecase"
	"realty-backend/internal/wire"
	"realty-backend/pkg/database"
	"realty-backend/pkg/throttle"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	config, logger, err := bootstrap()
	if err != nil {
		return err
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("env", config.App.Env),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)
	if config.OTP.ReturnToClient {
		logger.Warn("OTP codes are echoed in send-otp responses")
	}

	ctx := context.Background()

	// Connect to database
	db, err := database.InitDB(ctx, config.Database)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer db.Close()
	logger.Info("Database connected successfully")

	limiter, closeLimiter, err := throttle.New(ctx, config.Redis, config.OTP.ResendCooldown)
	if err != nil {
		return fmt.Errorf("connect redis: %w", err)
	}
	defer closeLimiter()

	// Initialize all repositories
	repos := repository.NewRepository(db, logger)

	// Wire all dependencies
	app := wire.Wiring(repos, config, usecase.Deps{Limiter: limiter}, logger)

	return APIServer(app.Router, config.App, logger)
}
