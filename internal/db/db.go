package db

import (
	"fmt"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/oggyb/nearby/internal/config"
	"github.com/oggyb/nearby/migrations"
)

// Dialect names as reported by gorm.Dialector.Name().
const (
	DialectPostgres = "postgres"
	DialectMySQL    = "mysql"
	DialectSQLite   = "sqlite"
)

// NewDB opens the configured database, sizes the pool and brings the schema up to date.
func NewDB(cfg *config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.DB.Driver {
	case DialectPostgres, "postgresql", "":
		dialector = postgres.New(postgres.Config{
			DSN:                  cfg.DB.DSN,
			PreferSimpleProtocol: true,
		})
	case DialectMySQL:
		dialector = mysql.Open(cfg.DB.DSN)
	case DialectSQLite, "sqlite3":
		dialector = sqliteDialector(cfg.DB.DSN)
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", cfg.DB.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         logger.Default.LogMode(gormLogLevel(cfg.Log.Level)),
		TranslateError: true,
		NowFunc:        func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open db: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	if db.Dialector.Name() == DialectSQLite {
		// one writer; also keeps ":memory:" databases on a single connection
		sqlDB.SetMaxOpenConns(1)
	} else {
		if cfg.DB.MaxIdleConns > 0 {
			sqlDB.SetMaxIdleConns(cfg.DB.MaxIdleConns)
		}
		if cfg.DB.MaxOpenConns > 0 {
			sqlDB.SetMaxOpenConns(cfg.DB.MaxOpenConns)
		}
		if cfg.DB.ConnMaxLifetime > 0 {
			sqlDB.SetConnMaxLifetime(cfg.DB.ConnMaxLifetime)
		}
	}

	if err := Migrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}
	return db, nil
}

// Migrate runs the goose migrations on Postgres (geography columns and GIST
// indexes live there) and gorm AutoMigrate everywhere else.
func Migrate(db *gorm.DB) error {
	if db.Dialector.Name() == DialectPostgres {
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		return migrations.Run(sqlDB)
	}
	return db.AutoMigrate(Models()...)
}

func gormLogLevel(level string) logger.LogLevel {
	switch level {
	case "debug":
		return logger.Info
	case "error":
		return logger.Error
	case "warn", "warning":
		return logger.Warn
	default:
		return logger.Silent
	}
}
