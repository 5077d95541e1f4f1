package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/oggyb/nearby/internal/db"
	"github.com/oggyb/nearby/internal/geo"
)

// discoverable is the visibility/ban gate. It is always evaluated against the
// durable store, never against the geo index.
const discoverable = "users.is_visible = ? AND users.is_active = ? AND users.is_banned = ?"

func discoverableArgs() []any { return []any{true, true, false} }

// UserRepository reads the shared user record and writes the columns this
// service owns (position, last seen, boost window).
type UserRepository struct {
	db      *gorm.DB
	spatial db.Spatial
}

// NewUserRepository creates a new repository bound to the given DB connection.
func NewUserRepository(database *gorm.DB) *UserRepository {
	return &UserRepository{db: database, spatial: db.SpatialFor(database)}
}

// UserDistance is a user row plus its distance from a query center.
type UserDistance struct {
	db.User
	DistanceKm float64
}

// FindByID loads a user. Returns gorm.ErrRecordNotFound when missing.
func (r *UserRepository) FindByID(ctx context.Context, id string) (*db.User, error) {
	var u db.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).Take(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

// FindByIDs loads the given users without any visibility filter.
func (r *UserRepository) FindByIDs(ctx context.Context, ids []string) ([]db.User, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var users []db.User
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&users).Error
	return users, err
}

// FindDiscoverable loads the given users, dropping invisible, inactive and
// banned ones. Order of the result is unspecified.
func (r *UserRepository) FindDiscoverable(ctx context.Context, ids []string) ([]db.User, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var users []db.User
	err := r.db.WithContext(ctx).
		Where("users.id IN ?", ids).
		Where(discoverable, discoverableArgs()...).
		Find(&users).Error
	return users, err
}

// UpdateLocation stores the new position and stamps last update / last seen.
//
// Behavior:
//   - Writes last_latitude/last_longitude (and the geography column on Postgres).
//   - Returns false when no user has that id.
//
// Example:
//
//	found, err := repo.UpdateLocation(ctx, "u1", geo.Point{Lat: 51.5, Lng: -0.12}, now)
func (r *UserRepository) UpdateLocation(ctx context.Context, id string, p geo.Point, at time.Time) (bool, error) {
	cols := r.spatial.LocationColumns(p)
	cols["last_location_update"] = at
	cols["last_seen_at"] = at

	res := r.db.WithContext(ctx).Model(&db.User{}).Where("id = ?", id).Updates(cols)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// WithinRadius answers a radius query from the durable store, nearest first.
// Used when the geo index is unavailable.
func (r *UserRepository) WithinRadius(
	ctx context.Context,
	center geo.Point,
	radiusKm float64,
	limit int,
	excludeID string,
) ([]UserDistance, error) {
	dist := r.spatial.DistanceKm(center)

	query := r.db.WithContext(ctx).
		Model(&db.User{}).
		Select("users.*, "+dist.SQL+" AS distance_km", dist.Vars...).
		Where(r.spatial.WithinRadius(center, radiusKm*1000)).
		Where(discoverable, discoverableArgs()...).
		Order("distance_km ASC").
		Limit(limit)
	if excludeID != "" {
		query = query.Where("users.id <> ?", excludeID)
	}

	var rows []UserDistance
	if err := query.Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// WithinBox returns discoverable users whose position lies inside box.
func (r *UserRepository) WithinBox(ctx context.Context, box geo.Box, limit int) ([]db.User, error) {
	var users []db.User
	err := r.db.WithContext(ctx).
		Where(r.spatial.WithinBox(box)).
		Where(discoverable, discoverableArgs()...).
		Order("users.last_seen_at DESC").
		Order("users.id ASC").
		Limit(limit).
		Find(&users).Error
	return users, err
}

// DiscoveryQuery carries the already-defaulted discovery filters.
type DiscoveryQuery struct {
	RequesterID   string
	MinAge        int
	MaxAge        int
	Gender        string     // empty = any
	Origin        *geo.Point // nil = no distance filter
	MaxDistanceKm float64
	Now           time.Time
	Skip          int
	Limit         int
}

// Discover returns one page of candidates plus the total number of matches.
//
// Behavior:
//   - Excludes the requester and everyone they ever swiped on.
//   - Excludes invisible, inactive, banned and not-yet-onboarded users.
//   - Ordered boosted-now first, then verification_score DESC, then
//     last_seen_at DESC (never-seen last), then id for stability.
func (r *UserRepository) Discover(ctx context.Context, q DiscoveryQuery) ([]db.User, int64, error) {
	base := r.db.WithContext(ctx).
		Model(&db.User{}).
		Where("users.id <> ?", q.RequesterID).
		Where("users.id NOT IN (?)", r.db.Table("swipes").Select("swiped_id").Where("swiper_id = ?", q.RequesterID)).
		Where(discoverable, discoverableArgs()...).
		Where("users.onboarded_at IS NOT NULL").
		Where("users.age >= ? AND users.age <= ?", q.MinAge, q.MaxAge)

	if q.Gender != "" {
		base = base.Where("users.gender = ?", q.Gender)
	}
	if q.Origin != nil {
		base = base.Where(r.spatial.WithinRadius(*q.Origin, q.MaxDistanceKm*1000))
	}
	base = base.Session(&gorm.Session{})

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return nil, 0, nil
	}

	var users []db.User
	err := base.
		Order(clause.OrderBy{Expression: clause.Expr{
			SQL:  "CASE WHEN users.boosted_until > ? THEN 1 ELSE 0 END DESC",
			Vars: []any{q.Now},
		}}).
		Order("users.verification_score DESC").
		Order("CASE WHEN users.last_seen_at IS NULL THEN 1 ELSE 0 END").
		Order("users.last_seen_at DESC").
		Order("users.id ASC").
		Offset(q.Skip).
		Limit(q.Limit).
		Find(&users).Error
	if err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

// ActivateBoost opens a boost window unless one is still running at now.
// The check and the write are one statement, so of two concurrent
// activations only one reports true.
func (r *UserRepository) ActivateBoost(ctx context.Context, id string, now, until time.Time) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&db.User{}).
		Where("id = ?", id).
		Where("(boosted_until IS NULL OR boosted_until <= ?)", now).
		Update("boosted_until", until)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// ForEachLocated walks every user with a known position in id order,
// handing batches of at most size rows to fn.
func (r *UserRepository) ForEachLocated(ctx context.Context, size int, fn func([]db.User) error) error {
	lastID := ""
	for {
		var batch []db.User
		err := r.db.WithContext(ctx).
			Select("id", "last_latitude", "last_longitude", "is_visible", "is_active", "is_banned").
			Where("last_latitude IS NOT NULL AND last_longitude IS NOT NULL").
			Where("id > ?", lastID).
			Order("id ASC").
			Limit(size).
			Find(&batch).Error
		if err != nil {
			return err
		}
		if len(batch) == 0 {
			return nil
		}
		if err := fn(batch); err != nil {
			return err
		}
		if len(batch) < size {
			return nil
		}
		lastID = batch[len(batch)-1].ID
	}
}
