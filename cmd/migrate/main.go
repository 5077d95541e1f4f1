// Command migrate runs goose against the Postgres schema:
//
//	migrate [up|up-by-one|down|status|version|reset]
package main

import (
	"database/sql"
	"os"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/oggyb/nearby/internal/config"
	"github.com/oggyb/nearby/internal/logger"
	"github.com/oggyb/nearby/migrations"
)

func main() {
	cfg := config.New()
	logger.InitFromConfig(cfg)
	log := logger.L()

	command := "up"
	if len(os.Args) > 1 {
		command = os.Args[1]
	}

	sqlDB, err := sql.Open("pgx", cfg.DB.DSN)
	if err != nil {
		log.Error("failed to open db", "err", err)
		os.Exit(1)
	}
	defer sqlDB.Close()

	if err := migrations.Command(sqlDB, command); err != nil {
		log.Error("migration failed", "command", command, "err", err)
		os.Exit(1)
	}
	log.Info("migration finished", "command", command)
}
