// Command migrate applies the embedded goose migrations.
//
// Usage:
//
//	migrate [up|down|status|version]
//
// Defaults to "up". Reads the database DSN from the usual configuration.
package main

import (
	"context"
	"database/sql"
	"log"
	"log/slog"
	"os"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver for database/sql
	"github.com/pressly/goose/v3"

	"github.com/heartmarshall/customtrack-backend/internal/app"
	"github.com/heartmarshall/customtrack-backend/internal/config"
	"github.com/heartmarshall/customtrack-backend/migrations"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger := app.NewLogger(cfg.Log)

	command := "up"
	if len(os.Args) > 1 {
		command = os.Args[1]
	}

	db, err := sql.Open("pgx", cfg.Database.DSN)
	if err != nil {
		logger.Error("open database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer db.Close()

	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		logger.Error("set dialect", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := goose.RunContext(context.Background(), command, db, "."); err != nil {
		logger.Error("migrate failed", slog.String("command", command), slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("migrate completed", slog.String("command", command))
}
