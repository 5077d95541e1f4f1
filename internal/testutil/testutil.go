// Package testutil wires in-memory SQLite and miniredis into an AppContext
// for package tests.
package testutil

import (
	"fmt"
	"regexp"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/oggyb/nearby/internal/app"
	"github.com/oggyb/nearby/internal/cache"
	"github.com/oggyb/nearby/internal/config"
	"github.com/oggyb/nearby/internal/db"
	"github.com/oggyb/nearby/internal/logger"
)

var unsafeName = regexp.MustCompile(`[^A-Za-z0-9_]`)

// NewDB opens a private in-memory SQLite database with the full schema.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", unsafeName.ReplaceAllString(t.Name(), "_"))
	gdb, err := db.OpenSQLite(dsn)
	require.NoError(t, err)

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })
	return gdb
}

// NewRedis starts a miniredis instance and a RedisCache pointing at it.
func NewRedis(t *testing.T) (*miniredis.Miniredis, *cache.RedisCache) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	cfg := config.New()
	cfg.Redis.Addr = mr.Addr()
	rc := cache.NewRedisCache(cfg)
	t.Cleanup(func() { rc.Close() })
	return mr, rc
}

// Env is a fully wired test environment.
type Env struct {
	App      *app.AppContext
	DB       *gorm.DB
	Redis    *miniredis.Miniredis
	Clock    *Clock
	Notifier *RecordingNotifier
}

// NewEnv builds an AppContext on SQLite + miniredis with a manual clock.
func NewEnv(t *testing.T) *Env {
	t.Helper()

	gdb := NewDB(t)
	mr, rc := NewRedis(t)
	clock := NewClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	notifier := &RecordingNotifier{}

	cfg := config.New()
	cfg.Redis.Addr = mr.Addr()

	appCtx := app.New(gdb, rc, logger.Discard(),
		app.WithConfig(cfg),
		app.WithClock(clock.Now),
		app.WithNotifier(notifier),
	)
	return &Env{App: appCtx, DB: gdb, Redis: mr, Clock: clock, Notifier: notifier}
}

// Clock is a manually advanced time source.
type Clock struct {
	mu  sync.Mutex
	now time.Time
}

func NewClock(start time.Time) *Clock { return &Clock{now: start} }

func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *Clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// RecordingNotifier keeps every notification it is handed.
type RecordingNotifier struct {
	mu    sync.Mutex
	items []db.Notification
}

func (r *RecordingNotifier) Notify(n *db.Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, *n)
}

// Of returns the recorded notifications of one type, oldest first.
func (r *RecordingNotifier) Of(typ db.NotificationType) []db.Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []db.Notification
	for _, n := range r.items {
		if n.Type == typ {
			out = append(out, n)
		}
	}
	return out
}

// UserOption customizes a user created by CreateUser.
type UserOption func(*db.User)

func WithID(id string) UserOption { return func(u *db.User) { u.ID = id } }

func WithAge(age int) UserOption { return func(u *db.User) { u.Age = age } }

func WithGender(gender, interestedIn string) UserOption {
	return func(u *db.User) { u.Gender, u.InterestedIn = gender, interestedIn }
}

func WithTier(tier db.SubscriptionTier) UserOption {
	return func(u *db.User) { u.SubscriptionTier = tier }
}

func WithPosition(lat, lng float64) UserOption {
	return func(u *db.User) { u.LastLatitude, u.LastLongitude = &lat, &lng }
}

func WithVerification(score int) UserOption {
	return func(u *db.User) { u.VerificationScore = score }
}

func WithLastSeen(t time.Time) UserOption { return func(u *db.User) { u.LastSeenAt = &t } }

func WithBoostUntil(t time.Time) UserOption { return func(u *db.User) { u.BoostedUntil = &t } }

func Invisible() UserOption { return func(u *db.User) { u.IsVisible = false } }

func Banned() UserOption { return func(u *db.User) { u.IsBanned = true } }

func NotOnboarded() UserOption { return func(u *db.User) { u.OnboardedAt = nil } }

// CreateUser inserts a visible, active, onboarded 25 year old free-tier user.
func CreateUser(t *testing.T, gdb *gorm.DB, username string, opts ...UserOption) *db.User {
	t.Helper()

	onboarded := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	u := &db.User{
		Username:         username,
		Email:            username + "@test.com",
		PasswordHash:     "x",
		DisplayName:      username,
		Age:              25,
		Gender:           "female",
		Profile:          datatypes.NewJSONType(db.ProfileDetails{Bio: "hi, I am " + username}),
		OnboardedAt:      &onboarded,
		SubscriptionTier: db.TierFree,
		IsVisible:        true,
		IsActive:         true,
	}
	for _, opt := range opts {
		opt(u)
	}
	require.NoError(t, gdb.Create(u).Error)
	return u
}
