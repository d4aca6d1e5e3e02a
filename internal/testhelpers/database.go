package testhelpers

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestDatabase is a throwaway Postgres instance with the marketplace schema
// applied, backed by a container that lives for one test.
type TestDatabase struct {
	Container *postgres.PostgresContainer
	Pool      *pgxpool.Pool
	ConnStr   string
}

// NewTestDatabase starts a Postgres container and runs the goose migrations
// from migrationsPath against it. Takes testing.TB so benchmarks can use it.
func NewTestDatabase(t testing.TB, migrationsPath string) *TestDatabase {
	t.Helper()
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("marketplace_test"),
		postgres.WithUsername("user"),
		postgres.WithPassword("password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(5*time.Second)),
		testcontainers.WithLogger(testcontainers.TestLogger(t)),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %s", err)
	}

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get connection string: %s", err)
	}

	pool, err := pgxpool.New(ctx, connStr)
	if err != nil {
		t.Fatalf("failed to connect to database: %s", err)
	}
	if pingErr := pool.Ping(ctx); pingErr != nil {
		t.Fatalf("failed to ping database: %s", pingErr)
	}

	migrate(t, connStr, migrationsPath)

	return &TestDatabase{
		Container: pgContainer,
		Pool:      pool,
		ConnStr:   connStr,
	}
}

// migrate applies the goose migrations through the database/sql pgx driver,
// which is what goose expects.
func migrate(t testing.TB, connStr, migrationsPath string) {
	t.Helper()

	db, err := sql.Open("pgx", connStr)
	if err != nil {
		t.Fatalf("failed to open sql db for migrations: %s", err)
	}
	defer db.Close()

	goose.SetBaseFS(nil) // migrations come from disk here, not an embedded FS
	if err := goose.SetDialect("postgres"); err != nil {
		t.Fatalf("failed to set goose dialect: %s", err)
	}

	absPath, err := filepath.Abs(migrationsPath)
	if err != nil {
		t.Fatalf("failed to resolve migrations path: %s", err)
	}
	if err := goose.Up(db, absPath); err != nil {
		t.Fatalf("failed to run migrations: %s", err)
	}
}

// Close releases the pool and stops the container.
func (td *TestDatabase) Close() {
	td.Pool.Close()
	if termErr := td.Container.Terminate(context.Background()); termErr != nil {
		fmt.Printf("failed to terminate container: %v\n", termErr)
	}
}
