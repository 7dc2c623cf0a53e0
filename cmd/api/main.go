package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/yigit/classroom/internal/pkg/logger"
	"github.com/yigit/classroom/internal/server"
)

// @title Classroom API
// @version 1.0
// @description CRUD API over users, profiles, teachers, courses, students and enrollments.

// @host localhost:3000
// @BasePath /

func main() {
	// A missing .env is fine; the environment and config file still apply.
	if err := godotenv.Load(); err != nil {
		logger.Debug().Msg("No .env file loaded")
	}

	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
