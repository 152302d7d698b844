package main

import (
	"context"
	"database/sql"
	"flag"
	"os"
	"strconv"

	"github.com/emzola/bookcritic/config"
	_ "github.com/emzola/bookcritic/docs"
	"github.com/emzola/bookcritic/handler"
	"github.com/emzola/bookcritic/internal/challenge"
	"github.com/emzola/bookcritic/internal/jsonlog"
	"github.com/emzola/bookcritic/internal/moderation"
	"github.com/emzola/bookcritic/repository"
	"github.com/emzola/bookcritic/repository/postgres"
	"github.com/emzola/bookcritic/repository/stubs"
	"github.com/emzola/bookcritic/service"
	"github.com/joho/godotenv"
)

// app defines the application's layers and shared resources.
type app struct {
	config     config.Config
	logger     *jsonlog.Logger
	repo       repository.Repository
	service    service.Service
	handler    *handler.Handler
	challenges *challenge.Verifier
}

// @title  Bookcritic API
// @version 1.0.0
// @description This is an API service for book reviews and ratings.
// @contact.name API Support
// @contact.email emma.idika@yahoo.com
// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
// @BasePath /
func main() {
	logger := jsonlog.New(os.Stdout, jsonlog.LevelInfo)
	if err := run(logger); err != nil {
		logger.PrintFatal(err, nil)
		os.Exit(1)
	}
}

func run(logger *jsonlog.Logger) error {
	configPath := flag.String("config", "config.yaml", "Path to the YAML configuration file")
	flag.Parse()

	// A missing .env is fine; the process environment is used as is.
	if err := godotenv.Load(); err == nil {
		logger.PrintInfo("loaded environment from .env", nil)
	}

	cfg, err := config.Decode(*configPath)
	if err != nil {
		return err
	}

	var repo repository.Repository
	if cfg.Database.UseMock {
		mem := stubs.NewMemoryDB()
		mem.Seed()
		repo = mem
		logger.PrintInfo("using in-memory store", nil)
	} else {
		db, err := openDB(cfg, logger)
		if err != nil {
			return err
		}
		defer db.Close()
		repo = repository.New(db)
	}

	filter, err := moderation.LoadFile(cfg.Moderation.RulesFile)
	if err != nil {
		return err
	}
	logger.PrintInfo("moderation rules loaded", map[string]string{"rules": strconv.Itoa(filter.Len())})

	challenges := challenge.New(cfg.Challenge.TTL)
	defer challenges.Stop()

	svc := service.New(cfg, logger, repo, filter, challenges)
	app := &app{
		config:     cfg,
		logger:     logger,
		repo:       repo,
		service:    svc,
		handler:    handler.New(cfg, logger, svc),
		challenges: challenges,
	}
	return app.serve()
}

// openDB opens the connection pool and, when configured, brings the schema
// up to date.
func openDB(cfg config.Config, logger *jsonlog.Logger) (*sql.DB, error) {
	db, err := postgres.OpenDBConn(cfg)
	if err != nil {
		return nil, err
	}
	logger.PrintInfo("database connection pool established", nil)
	if cfg.Database.MigrateOnStart {
		if err := postgres.Migrate(context.Background(), db); err != nil {
			db.Close()
			return nil, err
		}
		logger.PrintInfo("database migrations applied", nil)
	}
	return db, nil
}
