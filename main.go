package main

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/pressly/goose/v3"

	"eth-marketplace/internal/imagestore"
	listing "eth-marketplace/internal/listingService"
	"eth-marketplace/internal/repository"
	"eth-marketplace/internal/server"
	"eth-marketplace/utils"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

func main() {
	_ = godotenv.Load()

	ctx := context.Background()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		utils.Fatal("DATABASE_URL is not set", nil)
	}

	pool, err := pgxpool.New(ctx, dbURL)
	if err != nil {
		utils.Fatal("Failed to create connection pool", map[string]any{"error": err.Error()})
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		utils.Fatal("Failed to ping database", map[string]any{"error": err.Error()})
	}

	if err := runMigrations(dbURL); err != nil {
		utils.Fatal("Failed to run migrations", map[string]any{"error": err.Error()})
	}

	uploadDir := getEnv("UPLOAD_DIR", "uploads")
	images, err := imagestore.NewDiskStore(uploadDir)
	if err != nil {
		utils.Fatal("Failed to prepare upload directory", map[string]any{"error": err.Error()})
	}

	repo := repository.NewPostgresRepo(pool)
	listingSvc := listing.NewListingService(repo, images)

	router := server.SetupRouter(listingSvc, uploadDir)

	port := getPort()
	utils.Info("Starting marketplace server", map[string]any{"port": port, "upload_dir": uploadDir})
	if err := router.Run(port); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start server: %v\n", err)
		os.Exit(1)
	}
}

// runMigrations applies the embedded goose migrations; safe to run on every startup
func runMigrations(dbURL string) error {
	db, err := sql.Open("pgx", dbURL)
	if err != nil {
		return fmt.Errorf("open migration connection: %w", err)
	}
	defer db.Close()

	goose.SetBaseFS(embedMigrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}
	return goose.Up(db, "migrations")
}

// getPort returns the server port from env or defaults to ":8080"
func getPort() string {
	if p := os.Getenv("PORT"); p != "" {
		return fmt.Sprintf(":%s", p)
	}
	return ":8080"
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
