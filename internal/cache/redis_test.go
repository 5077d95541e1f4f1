package cache_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oggyb/nearby/internal/cache"
	"github.com/oggyb/nearby/internal/config"
	"github.com/oggyb/nearby/internal/geo"
)

const geoKey = "user:locations"

func setupCache(t *testing.T) (*cache.RedisCache, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	cfg := config.New()
	cfg.Redis.Addr = mr.Addr()
	rc := cache.NewRedisCache(cfg)
	t.Cleanup(func() { _ = rc.Close() })
	return rc, mr
}

func TestGeoAddAndRadius(t *testing.T) {
	ctx := context.Background()
	rc, _ := setupCache(t)

	center := geo.Point{Lat: 51.5074, Lng: -0.1278}
	require.NoError(t, rc.GeoAdd(ctx, geoKey, "near", geo.Point{Lat: 51.5100, Lng: -0.1278}))
	skipped, err := rc.GeoAddBatch(ctx, geoKey, []cache.GeoMember{
		{UserID: "mid", Point: geo.Point{Lat: 51.5300, Lng: -0.1278}},
		{UserID: "far", Point: geo.Point{Lat: 48.8566, Lng: 2.3522}},
	})
	require.NoError(t, err)
	assert.Empty(t, skipped)

	hits, err := rc.GeoRadius(ctx, geoKey, center, 5, 10)
	require.NoError(t, err)
	require.Len(t, hits, 2)
	assert.Equal(t, "near", hits[0].UserID)
	assert.Equal(t, "mid", hits[1].UserID)
	assert.Less(t, hits[0].DistanceKm, hits[1].DistanceKm)

	limited, err := rc.GeoRadius(ctx, geoKey, center, 5, 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)

	require.NoError(t, rc.GeoRemove(ctx, geoKey, "near"))
	hits, err = rc.GeoRadius(ctx, geoKey, center, 5, 10)
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, "mid", hits[0].UserID)
}

func TestGeoAddBatch_SkipsPolarMembers(t *testing.T) {
	ctx := context.Background()
	rc, _ := setupCache(t)

	skipped, err := rc.GeoAddBatch(ctx, geoKey, []cache.GeoMember{
		{UserID: "london", Point: geo.Point{Lat: 51.5074, Lng: -0.1278}},
		{UserID: "north", Point: geo.Point{Lat: 86, Lng: 10}},
		{UserID: "south", Point: geo.Point{Lat: -89.5, Lng: 0}},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"north", "south"}, skipped)

	_, ok, err := rc.GeoPosition(ctx, geoKey, "london")
	require.NoError(t, err)
	assert.True(t, ok)
	_, ok, err = rc.GeoPosition(ctx, geoKey, "north")
	require.NoError(t, err)
	assert.False(t, ok)

	skipped, err = rc.GeoAddBatch(ctx, geoKey, []cache.GeoMember{{UserID: "north", Point: geo.Point{Lat: 86, Lng: 10}}})
	require.NoError(t, err)
	assert.Equal(t, []string{"north"}, skipped)

	err = rc.GeoAdd(ctx, geoKey, "north", geo.Point{Lat: 86, Lng: 10})
	assert.ErrorIs(t, err, cache.ErrOutsideIndexBand)
}

func TestGeoPosition(t *testing.T) {
	ctx := context.Background()
	rc, _ := setupCache(t)

	require.NoError(t, rc.GeoAdd(ctx, geoKey, "u1", geo.Point{Lat: 40.0, Lng: -70.0}))

	p, ok, err := rc.GeoPosition(ctx, geoKey, "u1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.InDelta(t, 40.0, p.Lat, 1e-4)
	assert.InDelta(t, -70.0, p.Lng, 1e-4)

	_, ok, err = rc.GeoPosition(ctx, geoKey, "missing")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestGeofenceStateTransitionsHaveOneOwner(t *testing.T) {
	ctx := context.Background()
	rc, mr := setupCache(t)

	first, err := rc.MarkInside(ctx, "u1", "f1")
	require.NoError(t, err)
	assert.True(t, first)

	again, err := rc.MarkInside(ctx, "u1", "f1")
	require.NoError(t, err)
	assert.False(t, again)

	assert.Equal(t, "inside", mr.HGet("user:u1:geofences", "f1"))

	states, err := rc.GeofenceStates(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"f1": cache.GeofenceInside}, states)

	cleared, err := rc.ClearInside(ctx, "u1", "f1")
	require.NoError(t, err)
	assert.True(t, cleared)

	cleared, err = rc.ClearInside(ctx, "u1", "f1")
	require.NoError(t, err)
	assert.False(t, cleared)
}

func TestGetMissIsEmpty(t *testing.T) {
	rc, _ := setupCache(t)
	v, err := rc.Get(context.Background(), "nope")
	require.NoError(t, err)
	assert.Empty(t, v)
}

func TestGeoScanVisitsEveryMember(t *testing.T) {
	ctx := context.Background()
	rc, _ := setupCache(t)

	var members []cache.GeoMember
	for _, id := range []string{"a", "b", "c", "d", "e"} {
		members = append(members, cache.GeoMember{UserID: id, Point: geo.Point{Lat: 51.5, Lng: -0.1}})
	}
	_, err := rc.GeoAddBatch(ctx, geoKey, members)
	require.NoError(t, err)

	var seen []string
	var cursor uint64
	for {
		page, next, err := rc.GeoScan(ctx, geoKey, cursor, 2)
		require.NoError(t, err)
		seen = append(seen, page...)
		if next == 0 {
			break
		}
		cursor = next
	}
	assert.ElementsMatch(t, []string{"a", "b", "c", "d", "e"}, seen)
}
