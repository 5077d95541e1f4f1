package reconciler_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oggyb/nearby/internal/geo"
	"github.com/oggyb/nearby/internal/reconciler"
	"github.com/oggyb/nearby/internal/testutil"
)

func indexed(t *testing.T, env *testutil.Env, userID string) bool {
	t.Helper()
	_, ok, err := env.App.RedisCache.GeoPosition(context.Background(), env.App.GeoIndexKey(), userID)
	require.NoError(t, err)
	return ok
}

func TestRunOnce_RepairsDrift(t *testing.T) {
	ctx := context.Background()
	env := testutil.NewEnv(t)
	env.App.Config.Geo.ReconcileBatch = 2
	key := env.App.GeoIndexKey()
	rc := env.App.RedisCache

	missing := testutil.CreateUser(t, env.DB, "missing", testutil.WithPosition(51.50, -0.12))
	moved := testutil.CreateUser(t, env.DB, "moved", testutil.WithPosition(51.51, -0.13))
	hidden := testutil.CreateUser(t, env.DB, "hidden", testutil.WithPosition(51.52, -0.14), testutil.Invisible())
	banned := testutil.CreateUser(t, env.DB, "banned", testutil.WithPosition(51.53, -0.15), testutil.Banned())
	unlocated := testutil.CreateUser(t, env.DB, "unlocated")

	// index drifted: stale position, ineligible members, an orphan
	require.NoError(t, rc.GeoAdd(ctx, key, moved.ID, geo.Point{Lat: 40.0, Lng: -3.0}))
	require.NoError(t, rc.GeoAdd(ctx, key, hidden.ID, geo.Point{Lat: 51.52, Lng: -0.14}))
	require.NoError(t, rc.GeoAdd(ctx, key, banned.ID, geo.Point{Lat: 51.53, Lng: -0.15}))
	require.NoError(t, rc.GeoAdd(ctx, key, "deleted-user", geo.Point{Lat: 51.5, Lng: -0.1}))

	stats, err := reconciler.New(env.App).RunOnce(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Indexed)
	assert.Equal(t, 3, stats.Removed)

	assert.True(t, indexed(t, env, missing.ID))
	assert.False(t, indexed(t, env, hidden.ID))
	assert.False(t, indexed(t, env, banned.ID))
	assert.False(t, indexed(t, env, unlocated.ID))
	assert.False(t, indexed(t, env, "deleted-user"))

	p, ok, err := rc.GeoPosition(ctx, key, moved.ID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.InDelta(t, 51.51, p.Lat, 1e-4)
	assert.InDelta(t, -0.13, p.Lng, 1e-4)
}

func TestRunOnce_SkipsUsersBeyondIndexBand(t *testing.T) {
	ctx := context.Background()
	env := testutil.NewEnv(t)
	key := env.App.GeoIndexKey()

	polar := testutil.CreateUser(t, env.DB, "polar", testutil.WithPosition(86, 10))
	london := testutil.CreateUser(t, env.DB, "london", testutil.WithPosition(51.5074, -0.1278))
	// indexed before the user travelled north
	require.NoError(t, env.App.RedisCache.GeoAdd(ctx, key, polar.ID, geo.Point{Lat: 78.2, Lng: 15.6}))

	stats, err := reconciler.New(env.App).RunOnce(ctx)
	require.NoError(t, err)
	assert.Equal(t, reconciler.Stats{Indexed: 1, Skipped: 1}, stats)

	assert.True(t, indexed(t, env, london.ID))
	assert.False(t, indexed(t, env, polar.ID))
}

func TestRunOnce_RedisDown(t *testing.T) {
	env := testutil.NewEnv(t)
	testutil.CreateUser(t, env.DB, "u", testutil.WithPosition(51.50, -0.12))
	env.Redis.SetError("LOADING")

	_, err := reconciler.New(env.App).RunOnce(context.Background())
	assert.Error(t, err)
}

func TestStartStop(t *testing.T) {
	env := testutil.NewEnv(t)
	env.App.Config.Geo.ReconcileInterval = time.Hour
	u := testutil.CreateUser(t, env.DB, "u", testutil.WithPosition(51.50, -0.12))

	r := reconciler.New(env.App)
	r.Start(context.Background())

	// the first pass runs right away
	require.Eventually(t, func() bool {
		_, ok, err := env.App.RedisCache.GeoPosition(context.Background(), env.App.GeoIndexKey(), u.ID)
		return err == nil && ok
	}, 2*time.Second, 10*time.Millisecond)

	r.Stop()
	r.Stop()
	select {
	case <-r.Done():
	default:
		t.Fatal("loop still running after Stop")
	}
}
