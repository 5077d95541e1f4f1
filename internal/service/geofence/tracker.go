package geofence

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/oggyb/nearby/internal/app"
	"github.com/oggyb/nearby/internal/cache"
	"github.com/oggyb/nearby/internal/db"
	"github.com/oggyb/nearby/internal/geo"
	"github.com/oggyb/nearby/internal/logger"
	"github.com/oggyb/nearby/internal/repository"
	"github.com/oggyb/nearby/internal/utils/keylock"
)

type EventType string

const (
	EventEnter EventType = "enter"
	EventExit  EventType = "exit"
)

// Event is one boundary crossing.
type Event struct {
	Geofence   db.Geofence
	Type       EventType
	OccurredAt time.Time
}

// Tracker turns positions into enter/exit events.
//
// The per-user "inside" state lives in the Redis hash user:{id}:geofences.
// Calls for one user run one at a time in arrival order; calls for
// different users run in parallel. Across instances the HSET/HDEL reply
// decides which caller owns a transition, so it is emitted once.
type Tracker struct {
	appCtx *app.AppContext
	fences *repository.GeofenceRepository
	locks  keylock.Locker
}

func NewTracker(appCtx *app.AppContext) *Tracker {
	return &Tracker{
		appCtx: appCtx,
		fences: repository.NewGeofenceRepository(appCtx.DB),
	}
}

// Check evaluates p for userID and returns the events it produced, enters
// first, each group ordered by fence id.
//
// Behavior:
//   - A fence contained now but not recorded as inside is recorded; an
//     enter event fires when its trigger includes enter.
//   - A fence recorded as inside but not contained now is cleared; an exit
//     event fires when its trigger includes exit. This includes fences that
//     were deactivated or expired in the meantime. Deleted fences are
//     cleared without an event.
//   - Every event bumps the fence's trigger_count and dispatches a
//     geofence notification right after its state flip. When a later flip
//     fails, the error is returned together with the events already fired.
//
// Example:
//
//	events, err := tracker.Check(ctx, "u1", geo.Point{Lat: 51.508, Lng: -0.128})
func (t *Tracker) Check(ctx context.Context, userID string, p geo.Point) ([]Event, error) {
	t.locks.Lock(userID)
	defer t.locks.Unlock(userID)

	now := t.appCtx.Now()
	log := logger.FromContext(ctx, t.appCtx.Logger).With("user_id", userID)

	contained, err := t.fences.Containing(ctx, p, now)
	if err != nil {
		return nil, fmt.Errorf("load containing geofences: %w", err)
	}
	states, err := t.appCtx.RedisCache.GeofenceStates(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load geofence state: %w", err)
	}

	// transitions are dispatched right after their state flip lands
	var events []Event
	fire := func(f db.Geofence, typ EventType) {
		ev := Event{Geofence: f, Type: typ, OccurredAt: now}
		events = append(events, ev)
		if err := t.fences.IncrementTriggerCount(ctx, f.ID); err != nil {
			log.Warn("failed to increment geofence trigger count", "geofence_id", f.ID, "err", err)
		}
		t.appCtx.Notifier.Notify(notificationFor(userID, ev))
		log.Debug("geofence transition", "geofence_id", f.ID, "event", typ)
	}

	inside := make(map[string]struct{}, len(contained))
	for _, f := range contained {
		inside[f.ID] = struct{}{}
		if states[f.ID] == cache.GeofenceInside {
			continue
		}
		owned, err := t.appCtx.RedisCache.MarkInside(ctx, userID, f.ID)
		if err != nil {
			return events, fmt.Errorf("record geofence entry: %w", err)
		}
		if owned && f.Trigger.OnEnter() {
			fire(f, EventEnter)
		}
	}

	var left []string
	for fenceID := range states {
		if _, ok := inside[fenceID]; !ok {
			left = append(left, fenceID)
		}
	}
	if len(left) == 0 {
		return events, nil
	}
	sort.Strings(left)

	known, err := t.fences.FindByIDs(ctx, left)
	if err != nil {
		return events, fmt.Errorf("load exited geofences: %w", err)
	}
	byID := make(map[string]db.Geofence, len(known))
	for _, f := range known {
		byID[f.ID] = f
	}

	for _, fenceID := range left {
		owned, err := t.appCtx.RedisCache.ClearInside(ctx, userID, fenceID)
		if err != nil {
			return events, fmt.Errorf("clear geofence state: %w", err)
		}
		f, exists := byID[fenceID]
		if owned && exists && f.Trigger.OnExit() {
			fire(f, EventExit)
		}
	}
	return events, nil
}

func notificationFor(userID string, ev Event) *db.Notification {
	payload := ev.Geofence.Notification.Data()
	title := payload.Title
	if title == "" {
		title = ev.Geofence.Name
	}

	data := map[string]any{
		"geofenceId": ev.Geofence.ID,
		"event":      string(ev.Type),
	}
	if payload.ActionURL != "" {
		data["actionUrl"] = payload.ActionURL
	}
	if payload.ImageURL != "" {
		data["imageUrl"] = payload.ImageURL
	}
	for k, v := range payload.Data {
		if _, taken := data[k]; !taken {
			data[k] = v
		}
	}

	return &db.Notification{
		UserID: userID,
		Type:   db.NotificationGeofence,
		Title:  title,
		Body:   payload.Body,
		Data:   data,
	}
}
