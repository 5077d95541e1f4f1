package geo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oggyb/nearby/internal/geo"
)

var (
	london = geo.Point{Lat: 51.5074, Lng: -0.1278}
	paris  = geo.Point{Lat: 48.8566, Lng: 2.3522}
)

func TestDistanceKm(t *testing.T) {
	d := geo.DistanceKm(london, paris)
	assert.InDelta(t, 343.5, d, 2.0)
	assert.Zero(t, geo.DistanceKm(london, london))
}

func TestPointValidate(t *testing.T) {
	assert.NoError(t, london.Validate())
	assert.ErrorIs(t, geo.Point{Lat: 91}.Validate(), geo.ErrInvalidLatitude)
	assert.ErrorIs(t, geo.Point{Lng: -181}.Validate(), geo.ErrInvalidLongitude)
}

func TestBoxAroundEnclosesCircle(t *testing.T) {
	box := geo.BoxAround(london, 5000)
	assert.True(t, box.Contains(london))

	north := geo.Point{Lat: london.Lat + 0.04, Lng: london.Lng}
	require.Less(t, geo.DistanceMeters(london, north), 5000.0)
	assert.True(t, box.Contains(north))
	assert.False(t, box.Contains(paris))
}

func TestBoxValidate(t *testing.T) {
	assert.NoError(t, geo.Box{MinLat: 51, MinLng: -1, MaxLat: 52, MaxLng: 0}.Validate())
	assert.Error(t, geo.Box{MinLat: 52, MinLng: -1, MaxLat: 51, MaxLng: 0}.Validate())
	assert.Error(t, geo.Box{MinLat: -95, MinLng: -1, MaxLat: 51, MaxLng: 0}.Validate())
}

func TestRingContains(t *testing.T) {
	// square around central London, open ring on purpose
	ring := geo.Ring{{-0.2, 51.45}, {-0.05, 51.45}, {-0.05, 51.55}, {-0.2, 51.55}}
	require.NoError(t, ring.Validate())

	assert.True(t, ring.Contains(london))
	assert.True(t, ring.Contains(geo.Point{Lat: 51.45, Lng: -0.1}), "edge counts as inside")
	assert.False(t, ring.Contains(paris))

	b := ring.Bounds()
	assert.Equal(t, geo.Box{MinLat: 51.45, MinLng: -0.2, MaxLat: 51.55, MaxLng: -0.05}, b)
}

func TestRingValidate(t *testing.T) {
	assert.ErrorIs(t, geo.Ring{{0, 0}, {1, 1}, {0, 0}}.Validate(), geo.ErrInvalidRing)
	assert.ErrorIs(t, geo.Ring{{0, 0}, {1, 100}, {2, 2}}.Validate(), geo.ErrInvalidLatitude)
}

func TestWKT(t *testing.T) {
	ring := geo.Ring{{0, 0}, {1, 0}, {1, 1}}
	assert.Equal(t, "POLYGON((0 0,1 0,1 1,0 0))", ring.WKT())
	assert.Equal(t, "SRID=4326;POINT(-0.1278 51.5074)", geo.PointWKT(london))
}

func TestIndexable(t *testing.T) {
	assert.True(t, london.Indexable())
	assert.True(t, geo.Point{Lat: -geo.MaxIndexLatitude}.Indexable())
	assert.False(t, geo.Point{Lat: 86, Lng: 10}.Indexable())
	assert.False(t, geo.Point{Lat: -89.9}.Indexable())
}

func TestCircleIndexable(t *testing.T) {
	assert.True(t, geo.CircleIndexable(london, 500_000))
	assert.True(t, geo.CircleIndexable(geo.Point{Lat: 84.9}, 5_000))
	// 200 km reaches roughly 1.8° north of 85°.
	assert.False(t, geo.CircleIndexable(geo.Point{Lat: 85, Lng: 10}, 200_000))
	assert.False(t, geo.CircleIndexable(geo.Point{Lat: -84, Lng: 10}, 200_000))
}

func TestBoxAround_WrapsAtAntimeridian(t *testing.T) {
	c := geo.Point{Lat: 0, Lng: 179.95}
	box := geo.BoxAround(c, 20_000)

	require.True(t, box.CrossesAntimeridian(), "box %+v", box)
	assert.InDelta(t, 179.77, box.MinLng, 0.01)
	assert.InDelta(t, -179.87, box.MaxLng, 0.01)

	east := geo.Point{Lat: 0, Lng: -179.95}
	require.Less(t, geo.DistanceMeters(c, east), 20_000.0)
	assert.True(t, box.Contains(east))
	assert.True(t, box.Contains(c))
	assert.False(t, box.Contains(geo.Point{Lat: 0, Lng: 0}))
	assert.False(t, box.Contains(geo.Point{Lat: 0, Lng: -170}))

	west := geo.BoxAround(geo.Point{Lat: 10, Lng: -179.99}, 5_000)
	assert.True(t, west.CrossesAntimeridian())
	assert.True(t, west.Contains(geo.Point{Lat: 10, Lng: 179.99}))
}

func TestBoxAround_PoleSpansAllLongitudes(t *testing.T) {
	box := geo.BoxAround(geo.Point{Lat: 89.5, Lng: 10}, 200_000)
	assert.False(t, box.CrossesAntimeridian())
	assert.InDelta(t, 90.0, box.MaxLat, 1e-9)
	assert.True(t, box.Contains(geo.Point{Lat: 89.9, Lng: -170}))
}
