// Package geo holds the coordinate math shared by the durable store fallback
// paths and the geofence evaluator.
package geo

import (
	"errors"
	"fmt"
	"math"

	"github.com/paulmach/orb"
	orbgeo "github.com/paulmach/orb/geo"
	"github.com/paulmach/orb/encoding/wkt"
	"github.com/paulmach/orb/planar"
)

// SRID of every coordinate stored by the service (WGS84).
const SRID = 4326

// MaxIndexLatitude bounds the latitudes the Redis GEO index can store
// (the Web Mercator limit). Valid points beyond it live only in the durable store.
const MaxIndexLatitude = 85.05112878

var (
	ErrInvalidLatitude  = errors.New("latitude must be within [-90, 90]")
	ErrInvalidLongitude = errors.New("longitude must be within [-180, 180]")
	ErrInvalidRing      = errors.New("polygon ring needs at least 3 distinct points")
)

// Point is a WGS84 coordinate.
type Point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

func (p Point) orb() orb.Point { return orb.Point{p.Lng, p.Lat} }

// Validate checks the coordinate ranges.
func (p Point) Validate() error {
	if p.Lat < -90 || p.Lat > 90 {
		return ErrInvalidLatitude
	}
	if p.Lng < -180 || p.Lng > 180 {
		return ErrInvalidLongitude
	}
	return nil
}

// Indexable reports whether p fits the Redis GEO latitude band.
func (p Point) Indexable() bool {
	return p.Lat >= -MaxIndexLatitude && p.Lat <= MaxIndexLatitude
}

// CircleIndexable reports whether every point within radiusMeters of c
// fits the Redis GEO latitude band, so an index query can see all of them.
func CircleIndexable(c Point, radiusMeters float64) bool {
	span := radiusMeters / orb.EarthRadius * 180 / math.Pi
	return math.Abs(c.Lat)+span <= MaxIndexLatitude
}

// DistanceMeters is the haversine great-circle distance between a and b.
func DistanceMeters(a, b Point) float64 {
	return orbgeo.DistanceHaversine(a.orb(), b.orb())
}

// DistanceKm is DistanceMeters in kilometers.
func DistanceKm(a, b Point) float64 { return DistanceMeters(a, b) / 1000 }

// Box is a lat/lng aligned rectangle. Boxes derived from a circle or fence
// may cross the antimeridian, in which case MinLng > MaxLng and the box
// covers [MinLng, 180] plus [-180, MaxLng]. Caller supplied boxes never do.
type Box struct {
	MinLat, MinLng, MaxLat, MaxLng float64
}

// CrossesAntimeridian reports whether b wraps past ±180° longitude.
func (b Box) CrossesAntimeridian() bool { return b.MinLng > b.MaxLng }

// Validate rejects inverted or out-of-range boxes.
func (b Box) Validate() error {
	if err := (Point{Lat: b.MinLat, Lng: b.MinLng}).Validate(); err != nil {
		return err
	}
	if err := (Point{Lat: b.MaxLat, Lng: b.MaxLng}).Validate(); err != nil {
		return err
	}
	if b.MinLat > b.MaxLat || b.MinLng > b.MaxLng {
		return fmt.Errorf("bounding box min corner must be below max corner")
	}
	return nil
}

// Contains reports whether p lies inside or on the edge of b.
func (b Box) Contains(p Point) bool {
	if p.Lat < b.MinLat || p.Lat > b.MaxLat {
		return false
	}
	if b.CrossesAntimeridian() {
		return p.Lng >= b.MinLng || p.Lng <= b.MaxLng
	}
	return p.Lng >= b.MinLng && p.Lng <= b.MaxLng
}

// BoxAround returns the rectangle enclosing a circle of radiusMeters around c.
// Used as an index-friendly prefilter before an exact distance check. A
// circle reaching past ±180° yields a wrapped box (see CrossesAntimeridian);
// one reaching a pole spans every longitude.
func BoxAround(c Point, radiusMeters float64) Box {
	bound := orbgeo.NewBoundAroundPoint(c.orb(), radiusMeters)
	return Box{
		MinLat: clamp(bound.Min.Lat(), -90, 90),
		MinLng: wrapLng(bound.Min.Lon()),
		MaxLat: clamp(bound.Max.Lat(), -90, 90),
		MaxLng: wrapLng(bound.Max.Lon()),
	}
}

func fromBound(b orb.Bound) Box {
	return Box{
		MinLat: clamp(b.Min.Lat(), -90, 90),
		MinLng: clamp(b.Min.Lon(), -180, 180),
		MaxLat: clamp(b.Max.Lat(), -90, 90),
		MaxLng: clamp(b.Max.Lon(), -180, 180),
	}
}

// wrapLng folds a longitude into [-180, 180].
func wrapLng(lng float64) float64 {
	for lng > 180 {
		lng -= 360
	}
	for lng < -180 {
		lng += 360
	}
	return lng
}

// Ring is a polygon outline as GeoJSON-ordered [lng, lat] pairs.
type Ring [][2]float64

func (r Ring) orb() orb.Ring {
	out := make(orb.Ring, 0, len(r)+1)
	for _, p := range r {
		out = append(out, orb.Point{p[0], p[1]})
	}
	if len(out) > 0 && !out[0].Equal(out[len(out)-1]) {
		out = append(out, out[0])
	}
	return out
}

// Validate requires three distinct in-range vertices.
func (r Ring) Validate() error {
	seen := make(map[[2]float64]struct{}, len(r))
	for _, p := range r {
		if err := (Point{Lat: p[1], Lng: p[0]}).Validate(); err != nil {
			return err
		}
		seen[p] = struct{}{}
	}
	if len(seen) < 3 {
		return ErrInvalidRing
	}
	return nil
}

// Contains reports whether p lies inside the ring. Points on the edge count as inside.
func (r Ring) Contains(p Point) bool {
	ring := r.orb()
	if len(ring) < 4 {
		return false
	}
	return planar.RingContains(ring, p.orb()) || onBoundary(ring, p.orb())
}

// Bounds returns the ring's enclosing box.
func (r Ring) Bounds() Box { return fromBound(r.orb().Bound()) }

// WKT renders the ring as a closed POLYGON for PostGIS.
func (r Ring) WKT() string {
	return wkt.MarshalString(orb.Polygon{r.orb()})
}

// PointWKT renders p as an EWKT literal.
func PointWKT(p Point) string {
	return fmt.Sprintf("SRID=%d;%s", SRID, wkt.MarshalString(p.orb()))
}

func onBoundary(ring orb.Ring, p orb.Point) bool {
	for i := 0; i+1 < len(ring); i++ {
		if planar.DistanceFromSegmentSquared(ring[i], ring[i+1], p) < 1e-18 {
			return true
		}
	}
	return false
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
