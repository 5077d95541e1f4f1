// Package migrations embeds the Postgres/PostGIS schema and applies it with goose.
//
// MySQL and SQLite deployments have no geography columns and are migrated
// from the gorm models instead (see db.Migrate).
package migrations

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
)

// FS contains the embedded SQL migration files.
//
//go:embed postgres/*.sql
var FS embed.FS

const dir = "postgres"

func setup() error {
	goose.SetBaseFS(FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("set dialect: %w", err)
	}
	return nil
}

// Run applies all pending migrations to the given database.
func Run(db *sql.DB) error {
	if err := setup(); err != nil {
		return err
	}
	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}
	return nil
}

// Command runs a goose subcommand (up, up-by-one, down, status, version, reset).
func Command(db *sql.DB, command string) error {
	if err := setup(); err != nil {
		return err
	}
	var err error
	switch command {
	case "up":
		err = goose.Up(db, dir)
	case "up-one", "up-by-one":
		err = goose.UpByOne(db, dir)
	case "down":
		err = goose.Down(db, dir)
	case "status":
		err = goose.Status(db, dir)
	case "version":
		err = goose.Version(db, dir)
	case "reset":
		err = goose.Reset(db, dir)
	default:
		return fmt.Errorf("unknown migrate command %q", command)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", command, err)
	}
	return nil
}
