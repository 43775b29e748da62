package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/kaanyld/tutorhub/internal/pkg/logger"
	"github.com/kaanyld/tutorhub/internal/server"
)

func main() {
	// Load .env if present; real environment variables take precedence
	if err := godotenv.Load(); err != nil {
		logger.Debug().Msg("No .env file found, using environment variables")
	}

	// NewServer orchestrates LoadConfigAndSetupLogger, SetupStorage, BuildDependencies, SetupRouter
	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	// Run blocks until a shutdown signal arrives
	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
