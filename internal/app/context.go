package app

import (
	"log/slog"
	"time"

	"gorm.io/gorm"

	"github.com/oggyb/nearby/internal/cache"
	"github.com/oggyb/nearby/internal/config"
	"github.com/oggyb/nearby/internal/db"
)

// Notifier accepts notifications for asynchronous delivery. Implementations
// must not block the caller.
type Notifier interface {
	Notify(n *db.Notification)
}

type discardNotifier struct{}

func (discardNotifier) Notify(*db.Notification) {}

// AppContext holds shared dependencies (DB, Redis, Logger, etc.)
type AppContext struct {
	DB         *gorm.DB
	RedisCache *cache.RedisCache
	Logger     *slog.Logger
	Config     *config.Config
	Notifier   Notifier

	clock func() time.Time
}

// Option customizes an AppContext.
type Option func(*AppContext)

func WithConfig(cfg *config.Config) Option {
	return func(a *AppContext) { a.Config = cfg }
}

func WithNotifier(n Notifier) Option {
	return func(a *AppContext) {
		if n != nil {
			a.Notifier = n
		}
	}
}

// WithClock replaces the wall clock, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(a *AppContext) { a.clock = now }
}

// New creates a new AppContext
func New(db *gorm.DB, rdb *cache.RedisCache, logger *slog.Logger, opts ...Option) *AppContext {
	a := &AppContext{
		DB:         db,
		RedisCache: rdb,
		Logger:     logger,
		Notifier:   discardNotifier{},
		clock:      time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.Config == nil {
		a.Config = config.New()
	}
	return a
}

// Now returns the current time in UTC, truncated to milliseconds so that
// values round-trip through every supported store unchanged.
func (a *AppContext) Now() time.Time {
	return a.clock().UTC().Truncate(time.Millisecond)
}

// GeoIndexKey is the Redis key of the global position index.
func (a *AppContext) GeoIndexKey() string {
	if a.Config.Geo.IndexKey == "" {
		return "user:locations"
	}
	return a.Config.Geo.IndexKey
}
