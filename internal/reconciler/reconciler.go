// Package reconciler periodically rebuilds the Redis geo index from the
// durable store, which stays authoritative.
package reconciler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/oggyb/nearby/internal/app"
	"github.com/oggyb/nearby/internal/cache"
	"github.com/oggyb/nearby/internal/db"
	"github.com/oggyb/nearby/internal/repository"
)

// Stats summarizes one pass.
type Stats struct {
	Indexed int
	Removed int
	// Skipped counts discoverable users beyond the index latitude band.
	// They are kept out of the index and served by the durable store.
	Skipped int
}

// Reconciler repairs drift between users.last_* columns and the geo index:
// discoverable users with a position are re-added, everyone else is evicted.
type Reconciler struct {
	appCtx   *app.AppContext
	users    *repository.UserRepository
	interval time.Duration
	batch    int

	cancel   context.CancelFunc
	stopOnce sync.Once
	doneCh   chan struct{}
}

func New(appCtx *app.AppContext) *Reconciler {
	interval := appCtx.Config.Geo.ReconcileInterval
	if interval <= 0 {
		interval = 10 * time.Minute
	}
	batch := appCtx.Config.Geo.ReconcileBatch
	if batch <= 0 {
		batch = 500
	}
	return &Reconciler{
		appCtx:   appCtx,
		users:    repository.NewUserRepository(appCtx.DB),
		interval: interval,
		batch:    batch,
		doneCh:   make(chan struct{}),
	}
}

// Start runs a pass immediately and then every interval until Stop or ctx
// cancellation.
func (r *Reconciler) Start(ctx context.Context) {
	ctx, r.cancel = context.WithCancel(ctx)
	go r.loop(ctx)
}

// Stop cancels the loop and waits for the running pass to finish.
func (r *Reconciler) Stop() {
	r.stopOnce.Do(func() {
		if r.cancel != nil {
			r.cancel()
			<-r.doneCh
		}
	})
}

// Done returns a channel that is closed when the loop exits.
func (r *Reconciler) Done() <-chan struct{} { return r.doneCh }

func (r *Reconciler) loop(ctx context.Context) {
	defer close(r.doneCh)
	log := r.appCtx.Logger.With("component", "reconciler")

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		start := time.Now()
		stats, err := r.RunOnce(ctx)
		switch {
		case err != nil && ctx.Err() == nil:
			log.Error("geo index reconcile failed", "err", err)
		case err == nil:
			log.Info("geo index reconciled",
				"indexed", stats.Indexed, "removed", stats.Removed, "skipped", stats.Skipped, "took", time.Since(start))
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// RunOnce performs a single pass.
//
// Behavior:
//   - Walks every located user in id order, batch by batch.
//   - Discoverable users are written to the index with their stored position.
//     Positions beyond the index latitude band are skipped, counted and
//     evicted so no stale in-band entry survives.
//   - Hidden, inactive and banned users are evicted.
//   - Index members that no longer map to a discoverable user (deleted
//     accounts) are swept afterwards.
func (r *Reconciler) RunOnce(ctx context.Context) (Stats, error) {
	var stats Stats
	key := r.appCtx.GeoIndexKey()
	rc := r.appCtx.RedisCache

	err := r.users.ForEachLocated(ctx, r.batch, func(users []db.User) error {
		members := make([]cache.GeoMember, 0, len(users))
		var evict []string
		for i := range users {
			p, ok := users[i].Position()
			if !ok || !users[i].Discoverable() {
				evict = append(evict, users[i].ID)
				continue
			}
			members = append(members, cache.GeoMember{UserID: users[i].ID, Point: p})
		}
		skipped, err := rc.GeoAddBatch(ctx, key, members)
		if err != nil {
			return fmt.Errorf("index batch: %w", err)
		}
		if err := rc.GeoRemove(ctx, key, append(evict, skipped...)...); err != nil {
			return fmt.Errorf("evict batch: %w", err)
		}
		stats.Indexed += len(members) - len(skipped)
		stats.Removed += len(evict)
		stats.Skipped += len(skipped)
		return nil
	})
	if err != nil {
		return stats, err
	}

	orphans, err := r.sweep(ctx, key)
	stats.Removed += orphans
	return stats, err
}

func (r *Reconciler) sweep(ctx context.Context, key string) (int, error) {
	rc := r.appCtx.RedisCache
	removed := 0

	var cursor uint64
	for {
		members, next, err := rc.GeoScan(ctx, key, cursor, int64(r.batch))
		if err != nil {
			return removed, fmt.Errorf("scan index: %w", err)
		}
		if len(members) > 0 {
			live, err := r.users.FindDiscoverable(ctx, members)
			if err != nil {
				return removed, fmt.Errorf("load indexed users: %w", err)
			}
			known := make(map[string]struct{}, len(live))
			for _, u := range live {
				known[u.ID] = struct{}{}
			}
			var stale []string
			for _, id := range members {
				if _, ok := known[id]; !ok {
					stale = append(stale, id)
				}
			}
			if err := rc.GeoRemove(ctx, key, stale...); err != nil {
				return removed, fmt.Errorf("evict orphans: %w", err)
			}
			removed += len(stale)
		}
		if next == 0 {
			return removed, nil
		}
		cursor = next
	}
}
