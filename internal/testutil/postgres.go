// Package testutil provides a throwaway PostgreSQL for integration tests.
package testutil

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"

	"github.com/yigit/classroom/internal/app/migrations"
	"github.com/yigit/classroom/internal/db"
)

var (
	once     sync.Once
	shared   *db.PostgresDB
	setupErr error
)

// PostgresDB returns a database with a freshly created schema. It uses
// TEST_DATABASE_URL when set and otherwise starts a postgres container that
// lives for the rest of the test binary. Tests are skipped under -short or
// when no container provider is available.
func PostgresDB(t *testing.T) *db.PostgresDB {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping database test in short mode")
	}

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		testcontainers.SkipIfProviderIsNotHealthy(t)
	}

	once.Do(func() {
		if dsn == "" {
			dsn, setupErr = startContainer()
			if setupErr != nil {
				return
			}
		}
		shared, setupErr = db.NewPostgresDBFromURL(dsn)
	})
	if setupErr != nil {
		t.Fatalf("failed to set up test database: %v", setupErr)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	migrator := migrations.NewMigrator(shared.Pool, zerolog.Nop())
	if err := migrator.Reset(ctx); err != nil {
		t.Fatalf("reset schema: %v", err)
	}
	if err := migrator.Migrate(ctx); err != nil {
		t.Fatalf("migrate schema: %v", err)
	}
	return shared
}

// The container is reaped by the testcontainers resource reaper when the
// test binary exits.
func startContainer() (string, error) {
	ctx := context.Background()
	ctr, err := postgres.Run(ctx, "postgres:16-alpine",
		postgres.WithDatabase("classroom_test"),
		postgres.WithUsername("postgres"),
		postgres.WithPassword("postgres"),
		postgres.BasicWaitStrategies(),
	)
	if err != nil {
		if ctr != nil {
			_ = testcontainers.TerminateContainer(ctr)
		}
		return "", err
	}
	return ctr.ConnectionString(ctx, "sslmode=disable")
}
