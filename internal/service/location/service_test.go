package location_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oggyb/nearby/internal/db"
	svcErr "github.com/oggyb/nearby/internal/errors"
	"github.com/oggyb/nearby/internal/geo"
	"github.com/oggyb/nearby/internal/service/geofence"
	"github.com/oggyb/nearby/internal/service/location"
	"github.com/oggyb/nearby/internal/testutil"
)

var london = geo.Point{Lat: 51.5074, Lng: -0.1278}

// north returns a point roughly km kilometres north of london.
func north(km float64) geo.Point {
	return geo.Point{Lat: london.Lat + km/111.195, Lng: london.Lng}
}

func setupService(t *testing.T) (*location.Service, *testutil.Env) {
	t.Helper()
	env := testutil.NewEnv(t)
	return location.NewService(env.App, geofence.NewTracker(env.App)), env
}

func place(t *testing.T, svc *location.Service, userID string, p geo.Point) {
	t.Helper()
	res, err := svc.UpdateLocation(context.Background(), userID, p)
	require.NoError(t, err)
	require.True(t, res.IndexSynced)
}

func ids(res *location.NearbyResult) []string {
	out := make([]string, 0, len(res.Users))
	for _, n := range res.Users {
		out = append(out, n.User.Username)
	}
	return out
}

func TestUpdateLocation_WritesBothStores(t *testing.T) {
	ctx := context.Background()
	svc, env := setupService(t)
	u := testutil.CreateUser(t, env.DB, "alice")

	res, err := svc.UpdateLocation(ctx, u.ID, london)
	require.NoError(t, err)
	assert.True(t, res.IndexSynced)
	assert.True(t, res.GeofencesEvaluated)
	assert.Equal(t, env.Clock.Now(), res.UpdatedAt)

	var stored db.User
	require.NoError(t, env.DB.First(&stored, "id = ?", u.ID).Error)
	p, ok := stored.Position()
	require.True(t, ok)
	assert.Equal(t, london, p)
	require.NotNil(t, stored.LastSeenAt)
	assert.True(t, stored.LastSeenAt.Equal(env.Clock.Now()))
	require.NotNil(t, stored.LastLocationUpdate)

	indexed, found, err := env.App.RedisCache.GeoPosition(ctx, env.App.GeoIndexKey(), u.ID)
	require.NoError(t, err)
	require.True(t, found)
	assert.InDelta(t, london.Lat, indexed.Lat, 1e-4)
	assert.InDelta(t, london.Lng, indexed.Lng, 1e-4)
}

func TestUpdateLocation_Validation(t *testing.T) {
	ctx := context.Background()
	svc, env := setupService(t)
	u := testutil.CreateUser(t, env.DB, "alice")

	for _, p := range []geo.Point{{Lat: 90.1, Lng: 0}, {Lat: -91, Lng: 0}, {Lat: 0, Lng: 180.5}, {Lat: 0, Lng: -181}} {
		_, err := svc.UpdateLocation(ctx, u.ID, p)
		assert.True(t, svcErr.Is(err, svcErr.KindInvalidArgument), "%+v", p)
	}

	_, err := svc.UpdateLocation(ctx, u.ID, geo.Point{Lat: 90, Lng: -180})
	assert.NoError(t, err, "edges are valid")
}

func TestUpdateLocation_UnknownUser(t *testing.T) {
	ctx := context.Background()
	svc, env := setupService(t)

	_, err := svc.UpdateLocation(ctx, "ghost", london)
	assert.True(t, svcErr.Is(err, svcErr.KindNotFound))

	_, found, err := env.App.RedisCache.GeoPosition(ctx, env.App.GeoIndexKey(), "ghost")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestUpdateLocation_IndexFailureIsNotAnError(t *testing.T) {
	ctx := context.Background()
	svc, env := setupService(t)
	u := testutil.CreateUser(t, env.DB, "alice")

	env.Redis.SetError("LOADING Redis is loading the dataset in memory")
	res, err := svc.UpdateLocation(ctx, u.ID, london)
	require.NoError(t, err)
	assert.False(t, res.IndexSynced)
	assert.False(t, res.GeofencesEvaluated)

	var stored db.User
	require.NoError(t, env.DB.First(&stored, "id = ?", u.ID).Error)
	_, ok := stored.Position()
	assert.True(t, ok, "durable write is authoritative")
}

func TestQueryRadius_OrdersAndFilters(t *testing.T) {
	ctx := context.Background()
	svc, env := setupService(t)

	me := testutil.CreateUser(t, env.DB, "me")
	near := testutil.CreateUser(t, env.DB, "near")
	mid := testutil.CreateUser(t, env.DB, "mid")
	far := testutil.CreateUser(t, env.DB, "far")
	hidden := testutil.CreateUser(t, env.DB, "hidden", testutil.Invisible())
	banned := testutil.CreateUser(t, env.DB, "banned", testutil.Banned())

	place(t, svc, me.ID, london)
	place(t, svc, far.ID, north(4))
	place(t, svc, near.ID, north(1))
	place(t, svc, mid.ID, north(2))
	place(t, svc, hidden.ID, north(1.5))
	place(t, svc, banned.ID, north(0.5))

	res, err := svc.QueryRadius(ctx, london, 3, 10, me.ID)
	require.NoError(t, err)
	assert.True(t, res.FromIndex)
	assert.Equal(t, []string{"near", "mid"}, ids(res))
	assert.InDelta(t, 1.0, res.Users[0].DistanceKm, 0.05)

	res, err = svc.QueryRadius(ctx, london, 10, 1, me.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"near"}, ids(res))
}

func TestQueryRadius_RadiusBoundary(t *testing.T) {
	ctx := context.Background()
	svc, env := setupService(t)
	u := testutil.CreateUser(t, env.DB, "edge")
	p := north(2)
	place(t, svc, u.ID, p)

	d := geo.DistanceKm(london, p)
	const eps = 0.05

	res, err := svc.QueryRadius(ctx, london, d+eps, 10, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"edge"}, ids(res))

	res, err = svc.QueryRadius(ctx, london, d-eps, 10, "")
	require.NoError(t, err)
	assert.Empty(t, res.Users)
}

func TestQueryRadius_FallsBackToDurableStore(t *testing.T) {
	ctx := context.Background()
	svc, env := setupService(t)

	me := testutil.CreateUser(t, env.DB, "me")
	near := testutil.CreateUser(t, env.DB, "near")
	mid := testutil.CreateUser(t, env.DB, "mid")
	far := testutil.CreateUser(t, env.DB, "far")
	hidden := testutil.CreateUser(t, env.DB, "hidden", testutil.Invisible())
	place(t, svc, me.ID, london)
	place(t, svc, mid.ID, north(2))
	place(t, svc, near.ID, north(1))
	place(t, svc, far.ID, north(4))
	place(t, svc, hidden.ID, north(1.5))

	env.Redis.SetError("ERR connection refused")
	defer env.Redis.SetError("")

	res, err := svc.QueryRadius(ctx, london, 3, 10, me.ID)
	require.NoError(t, err)
	assert.False(t, res.FromIndex)
	assert.Equal(t, []string{"near", "mid"}, ids(res))
	assert.InDelta(t, 1.0, res.Users[0].DistanceKm, 0.05)
}

func TestUpdateLocation_BeyondIndexBand(t *testing.T) {
	ctx := context.Background()
	svc, env := setupService(t)
	u := testutil.CreateUser(t, env.DB, "explorer")
	place(t, svc, u.ID, london)

	res, err := svc.UpdateLocation(ctx, u.ID, geo.Point{Lat: 86, Lng: 10})
	require.NoError(t, err)
	assert.True(t, res.IndexSynced)

	_, ok, err := env.App.RedisCache.GeoPosition(ctx, env.App.GeoIndexKey(), u.ID)
	require.NoError(t, err)
	assert.False(t, ok, "stale london entry must be evicted")

	var stored db.User
	require.NoError(t, env.DB.First(&stored, "id = ?", u.ID).Error)
	p, ok := stored.Position()
	require.True(t, ok)
	assert.InDelta(t, 86.0, p.Lat, 1e-9)
}

func TestQueryRadius_ReachesPastIndexBand(t *testing.T) {
	ctx := context.Background()
	svc, env := setupService(t)

	polar := testutil.CreateUser(t, env.DB, "polar")
	city := testutil.CreateUser(t, env.DB, "city")
	_, err := svc.UpdateLocation(ctx, polar.ID, geo.Point{Lat: 86, Lng: 10})
	require.NoError(t, err)
	place(t, svc, city.ID, london)

	res, err := svc.QueryRadius(ctx, geo.Point{Lat: 85, Lng: 10}, 200, 10, "")
	require.NoError(t, err)
	assert.False(t, res.FromIndex)
	require.Equal(t, []string{"polar"}, ids(res))
	assert.InDelta(t, 111.3, res.Users[0].DistanceKm, 0.5)

	// a circle well inside the band is still served by the index
	res, err = svc.QueryRadius(ctx, london, 5, 10, "")
	require.NoError(t, err)
	assert.True(t, res.FromIndex)
	assert.Equal(t, []string{"city"}, ids(res))
}

func TestQueryRadius_Validation(t *testing.T) {
	ctx := context.Background()
	svc, _ := setupService(t)

	_, err := svc.QueryRadius(ctx, london, 0, 10, "")
	assert.True(t, svcErr.Is(err, svcErr.KindInvalidArgument))

	_, err = svc.QueryRadius(ctx, geo.Point{Lat: 100}, 5, 10, "")
	assert.True(t, svcErr.Is(err, svcErr.KindInvalidArgument))
}

func TestQueryBoundingBox(t *testing.T) {
	ctx := context.Background()
	svc, env := setupService(t)

	in := testutil.CreateUser(t, env.DB, "in")
	out := testutil.CreateUser(t, env.DB, "out")
	hidden := testutil.CreateUser(t, env.DB, "hidden", testutil.Invisible())
	place(t, svc, in.ID, london)
	place(t, svc, out.ID, north(20))
	place(t, svc, hidden.ID, london)

	box := geo.Box{MinLat: 51.45, MinLng: -0.2, MaxLat: 51.55, MaxLng: -0.05}
	users, err := svc.QueryBoundingBox(ctx, box, 50)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, in.ID, users[0].ID)

	_, err = svc.QueryBoundingBox(ctx, geo.Box{MinLat: 52, MaxLat: 51, MinLng: 0, MaxLng: 1}, 10)
	assert.True(t, svcErr.Is(err, svcErr.KindInvalidArgument))
}

func TestRemoveFromIndex(t *testing.T) {
	ctx := context.Background()
	svc, env := setupService(t)
	u := testutil.CreateUser(t, env.DB, "alice")
	place(t, svc, u.ID, london)

	require.NoError(t, svc.RemoveFromIndex(ctx, u.ID))

	res, err := svc.QueryRadius(ctx, london, 5, 10, "")
	require.NoError(t, err)
	assert.Empty(t, res.Users)

	var stored db.User
	require.NoError(t, env.DB.First(&stored, "id = ?", u.ID).Error)
	_, ok := stored.Position()
	assert.True(t, ok, "durable position survives index eviction")
}

func TestCheckGeofences_UnknownUser(t *testing.T) {
	svc, _ := setupService(t)
	_, err := svc.CheckGeofences(context.Background(), "ghost", london)
	assert.True(t, svcErr.Is(err, svcErr.KindNotFound))
}

func TestIsOnline(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	recent := now.Add(-4*time.Minute - 59*time.Second)
	stale := now.Add(-5 * time.Minute)

	assert.True(t, location.IsOnline(&recent, now))
	assert.False(t, location.IsOnline(&stale, now))
	assert.False(t, location.IsOnline(nil, now))
}
