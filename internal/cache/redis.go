package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/oggyb/nearby/internal/config"
	"github.com/oggyb/nearby/internal/geo"
)

// GeofenceInside is the hash value recorded while a user is inside a fence.
const GeofenceInside = "inside"

type RedisCache struct {
	Client *redis.Client
}

// NewRedisCache initializes Redis client from config.
// Only Addr is mandatory, Password/DB are optional.
func NewRedisCache(cfg *config.Config) *RedisCache {
	opts := &redis.Options{
		Addr: cfg.Redis.Addr,
	}
	if cfg.Redis.Password != "" {
		opts.Password = cfg.Redis.Password
	}
	if cfg.Redis.DB != 0 {
		opts.DB = cfg.Redis.DB
	}
	return &RedisCache{Client: redis.NewClient(opts)}
}

func (c *RedisCache) Ping(ctx context.Context) error {
	return c.Client.Ping(ctx).Err()
}

func (c *RedisCache) Close() error {
	return c.Client.Close()
}

func (c *RedisCache) Get(ctx context.Context, key string) (string, error) {
	val, err := c.Client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil // cache miss
	}
	return val, err
}

func (c *RedisCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	return c.Client.Set(ctx, key, value, ttl).Err()
}

func (c *RedisCache) Del(ctx context.Context, key string) error {
	return c.Client.Del(ctx, key).Err()
}

// --- geo index ---

// GeoMember is one entry of the geo index.
type GeoMember struct {
	UserID string
	Point  geo.Point
}

// GeoHit is a radius query result.
type GeoHit struct {
	UserID     string
	DistanceKm float64
}

// ErrOutsideIndexBand is returned for positions beyond geo.MaxIndexLatitude,
// which Redis GEO cannot store.
var ErrOutsideIndexBand = errors.New("position outside the geo index latitude band")

// GeoAdd upserts a single member position.
func (c *RedisCache) GeoAdd(ctx context.Context, key, userID string, p geo.Point) error {
	if !p.Indexable() {
		return ErrOutsideIndexBand
	}
	return c.Client.GeoAdd(ctx, key, &redis.GeoLocation{
		Name:      userID,
		Longitude: p.Lng,
		Latitude:  p.Lat,
	}).Err()
}

// GeoAddBatch upserts many members in one round trip. Members outside the
// index latitude band are left out and their ids returned as skipped.
func (c *RedisCache) GeoAddBatch(ctx context.Context, key string, members []GeoMember) (skipped []string, err error) {
	locs := make([]*redis.GeoLocation, 0, len(members))
	for _, m := range members {
		if !m.Point.Indexable() {
			skipped = append(skipped, m.UserID)
			continue
		}
		locs = append(locs, &redis.GeoLocation{Name: m.UserID, Longitude: m.Point.Lng, Latitude: m.Point.Lat})
	}
	if len(locs) == 0 {
		return skipped, nil
	}
	return skipped, c.Client.GeoAdd(ctx, key, locs...).Err()
}

// GeoRadius returns up to count members within radiusKm of center, nearest first.
func (c *RedisCache) GeoRadius(ctx context.Context, key string, center geo.Point, radiusKm float64, count int) ([]GeoHit, error) {
	locs, err := c.Client.GeoRadius(ctx, key, center.Lng, center.Lat, &redis.GeoRadiusQuery{
		Radius:   radiusKm,
		Unit:     "km",
		WithDist: true,
		Count:    count,
		Sort:     "ASC",
	}).Result()
	if err != nil {
		return nil, err
	}
	hits := make([]GeoHit, 0, len(locs))
	for _, l := range locs {
		hits = append(hits, GeoHit{UserID: l.Name, DistanceKm: l.Dist})
	}
	return hits, nil
}

// GeoRemove evicts members from the geo index.
func (c *RedisCache) GeoRemove(ctx context.Context, key string, userIDs ...string) error {
	if len(userIDs) == 0 {
		return nil
	}
	members := make([]interface{}, len(userIDs))
	for i, id := range userIDs {
		members[i] = id
	}
	return c.Client.ZRem(ctx, key, members...).Err()
}

// GeoPosition returns the stored position of a member.
func (c *RedisCache) GeoPosition(ctx context.Context, key, userID string) (geo.Point, bool, error) {
	pos, err := c.Client.GeoPos(ctx, key, userID).Result()
	if err != nil {
		return geo.Point{}, false, err
	}
	if len(pos) == 0 || pos[0] == nil {
		return geo.Point{}, false, nil
	}
	return geo.Point{Lat: pos[0].Latitude, Lng: pos[0].Longitude}, true, nil
}

// GeoScan pages through the members of the geo index. A returned cursor of 0
// means the scan is complete.
func (c *RedisCache) GeoScan(ctx context.Context, key string, cursor uint64, count int64) ([]string, uint64, error) {
	pairs, next, err := c.Client.ZScan(ctx, key, cursor, "", count).Result()
	if err != nil {
		return nil, 0, err
	}
	// ZSCAN returns member, score, member, score, ...
	members := make([]string, 0, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		members = append(members, pairs[i])
	}
	return members, next, nil
}

// --- geofence state ---

// KeyForUnreadWaves generates Redis key for a user's unread wave count
func (c *RedisCache) KeyForUnreadWaves(userID string) string {
	return fmt.Sprintf("waves:unread:%s", userID)
}

// KeyForGeofenceState generates Redis key for a user's per-fence state hash
func (c *RedisCache) KeyForGeofenceState(userID string) string {
	return fmt.Sprintf("user:%s:geofences", userID)
}

// GeofenceStates returns fence id -> state for the user.
func (c *RedisCache) GeofenceStates(ctx context.Context, userID string) (map[string]string, error) {
	return c.Client.HGetAll(ctx, c.KeyForGeofenceState(userID)).Result()
}

// MarkInside records the user as inside the fence. It reports true only for
// the caller that actually flipped the state, so a transition has one owner.
func (c *RedisCache) MarkInside(ctx context.Context, userID, fenceID string) (bool, error) {
	added, err := c.Client.HSet(ctx, c.KeyForGeofenceState(userID), fenceID, GeofenceInside).Result()
	if err != nil {
		return false, err
	}
	return added == 1, nil
}

// ClearInside removes the fence from the user's state; true when it was present.
func (c *RedisCache) ClearInside(ctx context.Context, userID, fenceID string) (bool, error) {
	removed, err := c.Client.HDel(ctx, c.KeyForGeofenceState(userID), fenceID).Result()
	if err != nil {
		return false, err
	}
	return removed == 1, nil
}

// --- pub/sub ---

// Publish sends a raw payload on channel.
func (c *RedisCache) Publish(ctx context.Context, channel string, payload []byte) error {
	return c.Client.Publish(ctx, channel, payload).Err()
}

// Subscribe opens a subscription; the caller closes it.
func (c *RedisCache) Subscribe(ctx context.Context, channel string) *redis.PubSub {
	return c.Client.Subscribe(ctx, channel)
}
