// Command migrate manages the database schema with the embedded goose
// migrations.
//
//	migrate [-config config.yaml] up|down|status|version
package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/emzola/bookcritic/config"
	"github.com/emzola/bookcritic/repository/postgres"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
)

func main() {
	configPath := flag.String("config", "config.yaml", "Path to the YAML configuration file")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using existing environment variables")
	}
	cfg, err := config.Decode(*configPath)
	if err != nil {
		log.Fatalf("Failed to read configuration: %v", err)
	}
	if cfg.Database.DSN == "" {
		log.Fatal("DSN is not set")
	}

	db, err := sql.Open("postgres", cfg.Database.DSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}

	command := "up"
	if flag.NArg() > 0 {
		command = flag.Arg(0)
	}
	if err := runCommand(context.Background(), db, command); err != nil {
		log.Fatal(err)
	}
}

func runCommand(ctx context.Context, db *sql.DB, command string) error {
	if err := postgres.SetupGoose(); err != nil {
		return fmt.Errorf("set dialect: %w", err)
	}
	log.Printf("Running migrations: %s", command)
	switch command {
	case "up":
		if err := goose.UpContext(ctx, db, postgres.MigrationsDir); err != nil {
			return fmt.Errorf("run migrations: %w", err)
		}
		log.Println("Migrations completed successfully")
	case "down":
		if err := goose.DownContext(ctx, db, postgres.MigrationsDir); err != nil {
			return fmt.Errorf("roll back migration: %w", err)
		}
		log.Println("Rollback completed successfully")
	case "status":
		if err := goose.StatusContext(ctx, db, postgres.MigrationsDir); err != nil {
			return fmt.Errorf("migration status: %w", err)
		}
	case "version":
		version, err := goose.GetDBVersionContext(ctx, db)
		if err != nil {
			return fmt.Errorf("get version: %w", err)
		}
		log.Printf("Current migration version: %d", version)
	default:
		fmt.Fprintf(os.Stderr, "usage: migrate [-config path] up|down|status|version\n")
		return fmt.Errorf("unknown command %q", command)
	}
	return nil
}
