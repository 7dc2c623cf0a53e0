// Command seed drops the schema, recreates it and loads sample data.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/yigit/classroom/internal/bootstrap"
	"github.com/yigit/classroom/internal/db"
	"github.com/yigit/classroom/internal/pkg/logger"
	"github.com/yigit/classroom/internal/seed"
)

func main() {
	// A missing .env is fine; the environment and config file still apply.
	if err := godotenv.Load(); err != nil {
		logger.Debug().Msg("No .env file loaded")
	}

	if err := run(); err != nil {
		logger.Error().Err(err).Msg("Seeding failed")
		os.Exit(1)
	}
}

func run() error {
	cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger()
	if err != nil {
		return err
	}

	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	defer database.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if err := seed.Reset(ctx, database, lgr); err != nil {
		return fmt.Errorf("reset schema: %w", err)
	}
	_, err = seed.Load(ctx, database, lgr)
	return err
}
