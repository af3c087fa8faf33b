package test_utils

import (
	"context"
	"testing"

	"github.com/codegod100/cal/internal/config"
	"github.com/codegod100/cal/internal/database"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
)

const (
	pgDatabase = "calendar"
	pgUser     = "test_calendar"
	pgPassword = "test_calendar"
	pgSnapshot = "calendar-test-snapshot"
)

// PostgresDB is a migrated Postgres instance running in a container.
type PostgresDB struct {
	container *postgres.PostgresContainer
	cfg       config.Database
}

// SetupPostgres starts a Postgres container and applies all migrations. The
// test is skipped when no container provider is available.
func SetupPostgres(t *testing.T) *PostgresDB {
	t.Helper()
	testcontainers.SkipIfProviderIsNotHealthy(t)
	ctx := context.Background()

	container, err := postgres.Run(
		ctx, "postgres:18.1-alpine",
		postgres.WithDatabase(pgDatabase),
		postgres.WithUsername(pgUser),
		postgres.WithPassword(pgPassword),
		postgres.BasicWaitStrategies(),
	)
	testcontainers.CleanupContainer(t, container)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		t.Fatalf("failed to get container host: %v", err)
	}
	port, err := container.MappedPort(ctx, "5432/tcp")
	if err != nil {
		t.Fatalf("failed to get container port: %v", err)
	}
	log.Infof("Postgres container started at %s:%d", host, port.Int())

	cfg := config.Database{
		Driver: config.DriverPostgres,
		Host:   host,
		Port:   port.Int(),
		User:   pgUser,
		Pass:   pgPassword,
		Name:   pgDatabase,
		Schema: "public",
	}
	if err := database.Migrate(cfg); err != nil {
		t.Fatalf("failed to apply migrations: %v", err)
	}
	if err := container.Snapshot(ctx, postgres.WithSnapshotName(pgSnapshot)); err != nil {
		t.Fatalf("failed to snapshot postgres container: %v", err)
	}

	return &PostgresDB{container: container, cfg: cfg}
}

// Pool restores the freshly migrated snapshot and opens a pool on it, closed
// when the test ends.
func (p *PostgresDB) Pool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	if err := p.container.Restore(context.Background(), postgres.WithSnapshotName(pgSnapshot)); err != nil {
		t.Fatalf("failed to restore postgres snapshot: %v", err)
	}

	pool, err := database.OpenPostgres(p.cfg)
	if err != nil {
		t.Fatalf("failed to open database connection: %v", err)
	}
	t.Cleanup(pool.Close)
	return pool
}
