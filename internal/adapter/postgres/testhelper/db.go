//go:build integration

// Package testhelper runs integration tests against a throwaway PostgreSQL
// container with the embedded migrations applied.
package testhelper

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/heartmarshall/srs-review-backend/internal/adapter/postgres"
	"github.com/heartmarshall/srs-review-backend/internal/config"
)

const (
	image        = "postgres:17-alpine"
	startTimeout = 2 * time.Minute
)

var (
	once      sync.Once
	sharedDSN string
	initErr   error
)

// DatabaseConfig returns pool settings for the shared container. It starts
// the container on first use. Tests that build the whole app use it to fill
// config.Config.Database.
func DatabaseConfig(t *testing.T) config.DatabaseConfig {
	t.Helper()

	once.Do(func() {
		sharedDSN, initErr = startAndMigrate()
	})
	if initErr != nil {
		t.Fatalf("testhelper: setup test DB: %v", initErr)
	}
	return dbConfig(sharedDSN)
}

// SetupTestDB returns a pool on the shared container, closed via t.Cleanup.
// Tests share one schema so seeded ids must be unique.
func SetupTestDB(t *testing.T) *pgxpool.Pool {
	t.Helper()

	cfg := DatabaseConfig(t)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg)
	if err != nil {
		t.Fatalf("testhelper: open pool: %v", err)
	}
	t.Cleanup(pool.Close)
	return pool
}

func dbConfig(dsn string) config.DatabaseConfig {
	return config.DatabaseConfig{
		DSN:             dsn,
		MaxConns:        8,
		MinConns:        1,
		MaxConnLifetime: time.Hour,
		MaxConnIdleTime: time.Minute,
		ConnectAttempts: 10,
		ConnectBackoff:  200 * time.Millisecond,
	}
}

func startAndMigrate() (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), startTimeout)
	defer cancel()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        image,
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "srs",
				"POSTGRES_PASSWORD": "srs",
				"POSTGRES_DB":       "srs_test",
			},
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(time.Minute),
		},
		Started: true,
	})
	if err != nil {
		return "", fmt.Errorf("start container: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		return "", fmt.Errorf("container host: %w", err)
	}
	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		return "", fmt.Errorf("mapped port: %w", err)
	}
	dsn := fmt.Sprintf("postgres://srs:srs@%s:%s/srs_test?sslmode=disable", host, port.Port())

	pool, err := postgres.NewPool(ctx, dbConfig(dsn))
	if err != nil {
		return "", err
	}
	defer pool.Close()

	if _, err := postgres.Migrate(ctx, pool); err != nil {
		return "", err
	}
	return dsn, nil
}
