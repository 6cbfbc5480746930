// Command migrate applies database schema migrations.
//
// Usage:
//
//	migrate up            apply all pending migrations
//	migrate down 1        roll back the given number of migrations
//	migrate version       print the current schema version
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"strconv"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/captain-burah/estateflow-pro/internal/config"
	"github.com/captain-burah/estateflow-pro/internal/logger"
)

func main() {
	migrationsDir := flag.String("dir", "migrations", "path to the migrations directory")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "usage: migrate [-dir path] up | down <n> | version")
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration",
			slog.String("error", err.Error()))
	}

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		url.QueryEscape(cfg.DBUser), url.QueryEscape(cfg.DBPassword),
		cfg.DBHost, cfg.DBPort, cfg.DBName, cfg.DBSSLMode)

	m, err := migrate.New("file://"+*migrationsDir, dsn)
	if err != nil {
		logger.Fatal("Failed to create migrator",
			slog.String("error", err.Error()))
	}
	defer m.Close()

	switch flag.Arg(0) {
	case "up":
		if err := m.Up(); err != nil && err != migrate.ErrNoChange {
			logger.Fatal("Migration up failed",
				slog.String("error", err.Error()))
		}
		logger.Info("Migrations applied")

	case "down":
		steps := 1
		if flag.NArg() > 1 {
			if steps, err = strconv.Atoi(flag.Arg(1)); err != nil || steps < 1 {
				logger.Fatal("Invalid step count", slog.String("steps", flag.Arg(1)))
			}
		}
		if err := m.Steps(-steps); err != nil && err != migrate.ErrNoChange {
			logger.Fatal("Migration down failed",
				slog.String("error", err.Error()))
		}
		logger.Info("Migrations rolled back", slog.Int("steps", steps))

	case "version":
		version, dirty, err := m.Version()
		if err != nil && err != migrate.ErrNilVersion {
			logger.Fatal("Failed to read version",
				slog.String("error", err.Error()))
		}
		fmt.Printf("version=%d dirty=%v\n", version, dirty)

	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n", flag.Arg(0))
		os.Exit(2)
	}
}
