package db

import (
	"database/sql"
	"fmt"
	"math"
	"time"

	"github.com/mattn/go-sqlite3"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/oggyb/nearby/internal/geo"
)

// SQLiteDriverName is a go-sqlite3 registration that carries haversine_km,
// so SQLite can evaluate radius filters inside the query the same way
// PostGIS does.
const SQLiteDriverName = "sqlite3_nearby"

func init() {
	sql.Register(SQLiteDriverName, &sqlite3.SQLiteDriver{
		ConnectHook: func(conn *sqlite3.SQLiteConn) error {
			return conn.RegisterFunc("haversine_km", haversineKm, true)
		},
	})
}

// haversineKm(lat1, lng1, lat2, lng2). NULL inputs yield +Inf so rows
// without a position never satisfy a radius predicate.
func haversineKm(lat1, lng1, lat2, lng2 any) float64 {
	a, ok1 := toFloat(lat1)
	b, ok2 := toFloat(lng1)
	c, ok3 := toFloat(lat2)
	d, ok4 := toFloat(lng2)
	if !ok1 || !ok2 || !ok3 || !ok4 {
		return math.Inf(1)
	}
	return geo.DistanceKm(geo.Point{Lat: a, Lng: b}, geo.Point{Lat: c, Lng: d})
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}

func sqliteDialector(dsn string) gorm.Dialector {
	return sqlite.New(sqlite.Config{DriverName: SQLiteDriverName, DSN: dsn})
}

// OpenSQLite opens and migrates a SQLite database (local development, tests).
func OpenSQLite(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(sqliteDialector(dsn), &gorm.Config{
		Logger:                 logger.Default.LogMode(logger.Silent),
		TranslateError:         true,
		SkipDefaultTransaction: true,
		NowFunc:                func() time.Time { return time.Now().UTC().Truncate(time.Millisecond) },
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(Models()...); err != nil {
		return nil, fmt.Errorf("failed to migrate: %w", err)
	}
	return db, nil
}
