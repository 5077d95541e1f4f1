package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/oggyb/nearby/internal/db"
	"github.com/oggyb/nearby/internal/geo"
)

// GeofenceRepository reads geofences for containment checks. Create exists
// for the admin collaborator and the seed command.
type GeofenceRepository struct {
	db      *gorm.DB
	spatial db.Spatial
}

// NewGeofenceRepository creates a new repository bound to the given DB connection.
func NewGeofenceRepository(database *gorm.DB) *GeofenceRepository {
	return &GeofenceRepository{db: database, spatial: db.SpatialFor(database)}
}

// Create inserts a fence and, on Postgres, its geography boundary.
func (r *GeofenceRepository) Create(ctx context.Context, g *db.Geofence) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(g).Error; err != nil {
			return err
		}
		if g.Kind != db.FencePolygon {
			return nil
		}
		col, val := r.spatial.BoundaryColumn(g.Polygon.Data())
		if col == "" {
			return nil
		}
		return tx.Model(&db.Geofence{}).Where("id = ?", g.ID).UpdateColumn(col, val).Error
	})
}

// Containing returns the active, unexpired fences whose boundary contains p.
//
// Behavior:
//   - Postgres evaluates the boundary with PostGIS.
//   - Other dialects prefilter on the stored bounding box and the exact
//     circle/polygon test runs here.
func (r *GeofenceRepository) Containing(ctx context.Context, p geo.Point, now time.Time) ([]db.Geofence, error) {
	var fences []db.Geofence
	err := r.db.WithContext(ctx).
		Where("geofences.is_active = ?", true).
		Where("(geofences.expires_at IS NULL OR geofences.expires_at > ?)", now).
		Where(r.spatial.FenceContains(p)).
		Order("geofences.id ASC").
		Find(&fences).Error
	if err != nil {
		return nil, err
	}
	if r.spatial.Native() {
		return fences, nil
	}

	inside := fences[:0]
	for _, f := range fences {
		if f.Contains(p) {
			inside = append(inside, f)
		}
	}
	return inside, nil
}

// FindByIDs loads fences regardless of their active flag.
func (r *GeofenceRepository) FindByIDs(ctx context.Context, ids []string) ([]db.Geofence, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var fences []db.Geofence
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&fences).Error
	return fences, err
}

// FindByID loads a fence or returns gorm.ErrRecordNotFound.
func (r *GeofenceRepository) FindByID(ctx context.Context, id string) (*db.Geofence, error) {
	var g db.Geofence
	if err := r.db.WithContext(ctx).Where("id = ?", id).Take(&g).Error; err != nil {
		return nil, err
	}
	return &g, nil
}

// IncrementTriggerCount bumps the counter atomically in the store.
func (r *GeofenceRepository) IncrementTriggerCount(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Model(&db.Geofence{}).
		Where("id = ?", id).
		UpdateColumn("trigger_count", gorm.Expr("trigger_count + ?", 1)).Error
}
