package location

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/oggyb/nearby/internal/app"
	"github.com/oggyb/nearby/internal/cache"
	"github.com/oggyb/nearby/internal/db"
	svcErr "github.com/oggyb/nearby/internal/errors"
	"github.com/oggyb/nearby/internal/geo"
	"github.com/oggyb/nearby/internal/logger"
	"github.com/oggyb/nearby/internal/repository"
	"github.com/oggyb/nearby/internal/service/geofence"
)

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

// Service is the dual-backed position store.
//
// Write protocol for a position update:
//  1. durable store (authoritative; a failure fails the call)
//  2. Redis GEO index (best effort; a failure is logged, reported as
//     IndexSynced=false and repaired by the reconciler)
//  3. geofence evaluation for the new point
type Service struct {
	appCtx  *app.AppContext
	users   *repository.UserRepository
	tracker *geofence.Tracker
}

// NewService creates a location service. tracker must be shared with every
// other caller of geofence checks so per-user ordering holds.
func NewService(appCtx *app.AppContext, tracker *geofence.Tracker) *Service {
	return &Service{
		appCtx:  appCtx,
		users:   repository.NewUserRepository(appCtx.DB),
		tracker: tracker,
	}
}

// UpdateResult reports what happened on each leg of the write protocol.
type UpdateResult struct {
	UpdatedAt          time.Time
	IndexSynced        bool
	GeofencesEvaluated bool
	Events             []geofence.Event
}

// UpdateLocation records userID at p.
//
// Behavior:
//   - Out-of-range coordinates fail with InvalidArgument.
//   - Unknown users fail with NotFound; nothing is written to the index.
//   - Positions beyond the index latitude band are stored durably and
//     evicted from the index; radius queries reaching them use the store.
//   - A geofence evaluation failure is logged and reported through
//     GeofencesEvaluated; the position update itself still succeeds.
//
// Example:
//
//	res, err := svc.UpdateLocation(ctx, "u1", geo.Point{Lat: 51.5074, Lng: -0.1278})
func (s *Service) UpdateLocation(ctx context.Context, userID string, p geo.Point) (*UpdateResult, error) {
	if userID == "" {
		return nil, svcErr.InvalidArgument("user_id is required")
	}
	if err := p.Validate(); err != nil {
		return nil, svcErr.InvalidArgument(err.Error())
	}

	log := logger.FromContext(ctx, s.appCtx.Logger).With("user_id", userID)
	now := s.appCtx.Now()

	found, err := s.users.UpdateLocation(ctx, userID, p, now)
	if err != nil {
		return nil, fmt.Errorf("store location: %w", err)
	}
	if !found {
		return nil, svcErr.NotFound("user not found")
	}

	res := &UpdateResult{UpdatedAt: now, IndexSynced: true}
	if err := s.index(ctx, userID, p); err != nil {
		log.Warn("geo index write failed, waiting for reconcile", "err", err)
		res.IndexSynced = false
	}

	events, err := s.tracker.Check(ctx, userID, p)
	if err != nil {
		log.Error("geofence evaluation failed", "err", err)
		res.Events = events
		return res, nil
	}
	res.GeofencesEvaluated = true
	res.Events = events
	return res, nil
}

func (s *Service) index(ctx context.Context, userID string, p geo.Point) error {
	if !p.Indexable() {
		return s.appCtx.RedisCache.GeoRemove(ctx, s.appCtx.GeoIndexKey(), userID)
	}
	return s.appCtx.RedisCache.GeoAdd(ctx, s.appCtx.GeoIndexKey(), userID, p)
}

// Nearby is one radius query hit.
type Nearby struct {
	User       db.User
	DistanceKm float64
}

// NearbyResult carries the hits nearest first. FromIndex is false when the
// durable store had to answer.
type NearbyResult struct {
	Users     []Nearby
	FromIndex bool
}

// QueryRadius returns discoverable users within radiusKm of center, nearest
// first, excluding excludeID.
//
// Behavior:
//   - Served from the Redis GEO index (limit+1 hits to make room for the
//     requester), then hydrated from the durable store, which drops
//     invisible, inactive and banned users. Index order is preserved.
//   - If hydration leaves fewer than limit users while the index had more
//     members in range, the index is queried again with a larger count.
//   - When the index errors, or the circle reaches past the index latitude
//     band, the durable store answers the same query.
//   - limit <= 0 means DefaultLimit; larger than MaxLimit is capped.
func (s *Service) QueryRadius(ctx context.Context, center geo.Point, radiusKm float64, limit int, excludeID string) (*NearbyResult, error) {
	if err := center.Validate(); err != nil {
		return nil, svcErr.InvalidArgument(err.Error())
	}
	if radiusKm <= 0 {
		return nil, svcErr.InvalidArgument("radius must be positive")
	}
	limit = clampLimit(limit)
	log := logger.FromContext(ctx, s.appCtx.Logger)

	if !geo.CircleIndexable(center, radiusKm*1000) {
		log.Debug("radius leaves the geo index band, querying durable store", "lat", center.Lat, "radius_km", radiusKm)
		return s.queryStore(ctx, center, radiusKm, limit, excludeID)
	}

	// Hidden users still sit in the index until the next reconcile, so a
	// short page is retried with a wider fetch.
	fetch := limit + 1
	for {
		hits, err := s.appCtx.RedisCache.GeoRadius(ctx, s.appCtx.GeoIndexKey(), center, radiusKm, fetch)
		if err != nil {
			log.Warn("geo index unavailable, querying durable store", "err", err)
			return s.queryStore(ctx, center, radiusKm, limit, excludeID)
		}

		out, err := s.hydrate(ctx, hits, limit, excludeID)
		if err != nil {
			return nil, err
		}
		if len(out.Users) >= limit || len(hits) < fetch || fetch >= maxIndexFetch {
			return out, nil
		}
		fetch *= 4
	}
}

const maxIndexFetch = MaxLimit * 8

func (s *Service) hydrate(ctx context.Context, hits []cache.GeoHit, limit int, excludeID string) (*NearbyResult, error) {
	ids := make([]string, 0, len(hits))
	for _, h := range hits {
		if h.UserID != excludeID {
			ids = append(ids, h.UserID)
		}
	}
	users, err := s.users.FindDiscoverable(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("hydrate nearby users: %w", err)
	}
	byID := make(map[string]db.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}

	out := &NearbyResult{FromIndex: true, Users: make([]Nearby, 0, limit)}
	for _, h := range hits {
		u, ok := byID[h.UserID]
		if !ok || h.UserID == excludeID {
			continue
		}
		out.Users = append(out.Users, Nearby{User: u, DistanceKm: h.DistanceKm})
		if len(out.Users) == limit {
			break
		}
	}
	return out, nil
}

func (s *Service) queryStore(ctx context.Context, center geo.Point, radiusKm float64, limit int, excludeID string) (*NearbyResult, error) {
	rows, err := s.users.WithinRadius(ctx, center, radiusKm, limit, excludeID)
	if err != nil {
		return nil, fmt.Errorf("query nearby users: %w", err)
	}
	out := &NearbyResult{Users: make([]Nearby, 0, len(rows))}
	for _, r := range rows {
		out.Users = append(out.Users, Nearby{User: r.User, DistanceKm: r.DistanceKm})
	}
	return out, nil
}

// QueryBoundingBox returns discoverable users inside box, most recently
// seen first. Always served by the durable store.
func (s *Service) QueryBoundingBox(ctx context.Context, box geo.Box, limit int) ([]db.User, error) {
	if err := box.Validate(); err != nil {
		return nil, svcErr.InvalidArgument(err.Error())
	}
	users, err := s.users.WithinBox(ctx, box, clampLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("query bounding box: %w", err)
	}
	return users, nil
}

// RemoveFromIndex evicts userID from the GEO index. The durable position is
// kept; the user simply stops showing up in index-served radius queries.
func (s *Service) RemoveFromIndex(ctx context.Context, userID string) error {
	if userID == "" {
		return svcErr.InvalidArgument("user_id is required")
	}
	if err := s.appCtx.RedisCache.GeoRemove(ctx, s.appCtx.GeoIndexKey(), userID); err != nil {
		return fmt.Errorf("remove from geo index: %w", err)
	}
	return nil
}

// CheckGeofences runs the tracker for an explicit position without storing it.
func (s *Service) CheckGeofences(ctx context.Context, userID string, p geo.Point) ([]geofence.Event, error) {
	if userID == "" {
		return nil, svcErr.InvalidArgument("user_id is required")
	}
	if err := p.Validate(); err != nil {
		return nil, svcErr.InvalidArgument(err.Error())
	}
	if _, err := s.users.FindByID(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, svcErr.NotFound("user not found")
		}
		return nil, err
	}
	return s.tracker.Check(ctx, userID, p)
}

// IsOnline reports whether lastSeen falls inside the online window at now.
func IsOnline(lastSeen *time.Time, now time.Time) bool {
	return db.IsOnline(lastSeen, now)
}

func clampLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultLimit
	case limit > MaxLimit:
		return MaxLimit
	}
	return limit
}
