package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"go.uber.org/zap"

	"pricecompare/internal/config"
	"pricecompare/internal/logging"
)

var errUnknownCommand = errors.New("unknown command, use: up, down, status, create")

func main() {
	var (
		command = flag.String("command", "up", "Migration command: up, down, status, create")
		name    = flag.String("name", "", "Name for 'create' command")
	)
	flag.Parse()

	config.LoadEnvFiles()

	logger, err := logging.New(logging.Config{Level: "info", Encoding: "console", DisableStacktrace: true})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	dir := migrationsDir()
	log := logger.With(zap.String("command", *command), zap.String("dir", dir))

	var db *sql.DB
	if *command != "create" {
		pool, err := pgxpool.New(context.Background(), databaseDSN())
		if err != nil {
			log.Fatal("failed to connect to database", zap.Error(err))
		}
		defer pool.Close()
		db = stdlib.OpenDBFromPool(pool)
		defer db.Close()
	}

	if err := migrate(db, dir, *command, *name); err != nil {
		log.Fatal("migration failed", zap.Error(err))
	}
	log.Info("migration command finished")
}

func migrate(db *sql.DB, dir, command, name string) error {
	goose.SetBaseFS(nil)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}

	switch command {
	case "up":
		return goose.Up(db, dir)
	case "down":
		return goose.Down(db, dir)
	case "status":
		return goose.Status(db, dir)
	case "create":
		if name == "" {
			return errors.New("name is required for 'create' command")
		}
		return goose.Create(nil, dir, name, "sql")
	default:
		return fmt.Errorf("%w: %q", errUnknownCommand, command)
	}
}
