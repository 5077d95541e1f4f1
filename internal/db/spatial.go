package db

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/oggyb/nearby/internal/geo"
)

// Spatial renders geographic predicates for the connected dialect.
//
//   - postgres: PostGIS on users.location / geofences.boundary
//   - mysql:    ST_Distance_Sphere over the lat/lng columns
//   - sqlite:   the haversine_km function registered in sqlite.go
//
// Every predicate expects the users table to be addressable as "users".
type Spatial struct {
	dialect string
}

// SpatialFor picks the renderer matching db's dialect.
func SpatialFor(db *gorm.DB) Spatial {
	return Spatial{dialect: db.Dialector.Name()}
}

// Native reports whether the store evaluates geofence containment itself.
func (s Spatial) Native() bool { return s.dialect == DialectPostgres }

const pgPoint = "ST_SetSRID(ST_MakePoint(?, ?), 4326)::geography"

// WithinRadius matches users whose last position is within meters of p.
func (s Spatial) WithinRadius(p geo.Point, meters float64) clause.Expr {
	switch s.dialect {
	case DialectPostgres:
		return clause.Expr{
			SQL:  "ST_DWithin(users.location, " + pgPoint + ", ?)",
			Vars: []any{p.Lng, p.Lat, meters},
		}
	case DialectMySQL:
		return clause.Expr{
			SQL: "users.last_latitude IS NOT NULL AND " +
				"ST_Distance_Sphere(POINT(users.last_longitude, users.last_latitude), POINT(?, ?)) <= ?",
			Vars: []any{p.Lng, p.Lat, meters},
		}
	default:
		box := geo.BoxAround(p, meters)
		lng, lngVars := lngRange("users.last_longitude", box)
		vars := append([]any{box.MinLat, box.MaxLat}, lngVars...)
		return clause.Expr{
			SQL: "users.last_latitude BETWEEN ? AND ? AND " + lng +
				" AND haversine_km(users.last_latitude, users.last_longitude, ?, ?) <= ?",
			Vars: append(vars, p.Lat, p.Lng, meters/1000),
		}
	}
}

// lngRange renders the longitude half of a box prefilter. A box wrapping
// past ±180° becomes two ranges.
func lngRange(column string, b geo.Box) (string, []any) {
	if b.CrossesAntimeridian() {
		return "(" + column + " >= ? OR " + column + " <= ?)", []any{b.MinLng, b.MaxLng}
	}
	return column + " BETWEEN ? AND ?", []any{b.MinLng, b.MaxLng}
}

// DistanceKm is a select/order expression for the distance from p in km.
func (s Spatial) DistanceKm(p geo.Point) clause.Expr {
	switch s.dialect {
	case DialectPostgres:
		return clause.Expr{SQL: "ST_Distance(users.location, " + pgPoint + ") / 1000.0", Vars: []any{p.Lng, p.Lat}}
	case DialectMySQL:
		return clause.Expr{
			SQL:  "ST_Distance_Sphere(POINT(users.last_longitude, users.last_latitude), POINT(?, ?)) / 1000.0",
			Vars: []any{p.Lng, p.Lat},
		}
	default:
		return clause.Expr{SQL: "haversine_km(users.last_latitude, users.last_longitude, ?, ?)", Vars: []any{p.Lat, p.Lng}}
	}
}

// WithinBox matches users whose last position lies inside b (edges included).
func (s Spatial) WithinBox(b geo.Box) clause.Expr {
	if s.dialect == DialectPostgres {
		return clause.Expr{
			SQL:  "ST_Covers(ST_MakeEnvelope(?, ?, ?, ?, 4326), users.location::geometry)",
			Vars: []any{b.MinLng, b.MinLat, b.MaxLng, b.MaxLat},
		}
	}
	return clause.Expr{
		SQL:  "users.last_latitude BETWEEN ? AND ? AND users.last_longitude BETWEEN ? AND ?",
		Vars: []any{b.MinLat, b.MaxLat, b.MinLng, b.MaxLng},
	}
}

// FenceContains matches geofences whose boundary contains p. Outside
// Postgres it is only a bounding-box prefilter; callers finish with
// Geofence.Contains.
func (s Spatial) FenceContains(p geo.Point) clause.Expr {
	if s.dialect == DialectPostgres {
		return clause.Expr{
			SQL: "((geofences.kind = 'circle' AND ST_DWithin(" +
				"ST_SetSRID(ST_MakePoint(geofences.center_longitude, geofences.center_latitude), 4326)::geography, " +
				pgPoint + ", geofences.radius_meters)) " +
				"OR (geofences.kind = 'polygon' AND ST_Covers(geofences.boundary, " + pgPoint + ")))",
			Vars: []any{p.Lng, p.Lat, p.Lng, p.Lat},
		}
	}
	// Stored boxes with min_longitude > max_longitude wrap past ±180°.
	return clause.Expr{
		SQL: "geofences.min_latitude <= ? AND geofences.max_latitude >= ? AND (" +
			"(geofences.min_longitude <= geofences.max_longitude " +
			"AND geofences.min_longitude <= ? AND geofences.max_longitude >= ?) OR " +
			"(geofences.min_longitude > geofences.max_longitude " +
			"AND (geofences.min_longitude <= ? OR geofences.max_longitude >= ?)))",
		Vars: []any{p.Lat, p.Lat, p.Lng, p.Lng, p.Lng, p.Lng},
	}
}

// LocationColumns returns the column assignments for a position update.
// Postgres also refreshes the geography column.
func (s Spatial) LocationColumns(p geo.Point) map[string]any {
	cols := map[string]any{
		"last_latitude":  p.Lat,
		"last_longitude": p.Lng,
	}
	if s.dialect == DialectPostgres {
		cols["location"] = gorm.Expr(pgPoint, p.Lng, p.Lat)
	}
	return cols
}

// BoundaryColumn returns the assignment that stores a polygon boundary, or
// nil when the dialect has no geography column.
func (s Spatial) BoundaryColumn(r geo.Ring) (string, any) {
	if s.dialect != DialectPostgres {
		return "", nil
	}
	return "boundary", gorm.Expr("ST_GeogFromText(?)", "SRID=4326;"+r.WKT())
}
