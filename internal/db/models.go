package db

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/oggyb/nearby/internal/geo"
)

// Models lists every table the service owns, in dependency order.
func Models() []any {
	return []any{&User{}, &Swipe{}, &Match{}, &Geofence{}, &Notification{}, &Wave{}}
}

func newID() string { return uuid.NewString() }

// SubscriptionTier gates premium features (rewind, boost, likes received).
type SubscriptionTier string

const (
	TierFree    SubscriptionTier = "free"
	TierBasic   SubscriptionTier = "basic"
	TierPremium SubscriptionTier = "premium"
	TierVIP     SubscriptionTier = "vip"
)

// IsPaid reports whether the tier unlocks premium features. Unknown tiers are treated as free.
func (t SubscriptionTier) IsPaid() bool {
	switch t {
	case TierBasic, TierPremium, TierVIP:
		return true
	}
	return false
}

// ProfileDetails is the free-form part of a profile, owned by the profile module.
type ProfileDetails struct {
	Bio       string   `json:"bio,omitempty"`
	Interests []string `json:"interests,omitempty"`
	Photos    []string `json:"photos,omitempty"`
	City      string   `json:"city,omitempty"`
}

// User is the shared user record. The location columns (LastLatitude,
// LastLongitude, LastLocationUpdate, LastSeenAt) are written only by the
// location service; BoostedUntil only by the boost service. Everything else
// belongs to the profile and identity collaborators and is read-only here.
//
// Bool flags have no gorm default so a false value is written as false.
type User struct {
	ID                string `gorm:"primaryKey;size:36"`
	Username          string `gorm:"uniqueIndex;size:64;not null"`
	Email             string `gorm:"uniqueIndex;size:128;not null"`
	PasswordHash      string `gorm:"size:255;not null"`
	DisplayName       string `gorm:"size:100"`
	Age               int    `gorm:"index:idx_users_discovery,priority:4"`
	Gender            string `gorm:"size:16"`
	InterestedIn      string `gorm:"size:16"`
	Profile           datatypes.JSONType[ProfileDetails]
	OnboardedAt       *time.Time
	VerificationScore int              `gorm:"not null;default:0"`
	SubscriptionTier  SubscriptionTier `gorm:"size:16;not null;default:free"`

	IsVisible bool `gorm:"not null;index:idx_users_discovery,priority:1"`
	IsActive  bool `gorm:"not null;index:idx_users_discovery,priority:2"`
	IsBanned  bool `gorm:"not null;index:idx_users_discovery,priority:3"`

	LastLatitude       *float64 `gorm:"index:idx_users_lat_lng,priority:1"`
	LastLongitude      *float64 `gorm:"index:idx_users_lat_lng,priority:2"`
	LastLocationUpdate *time.Time
	LastSeenAt         *time.Time `gorm:"index"`
	BoostedUntil       *time.Time `gorm:"index"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (u *User) BeforeCreate(*gorm.DB) error {
	if u.ID == "" {
		u.ID = newID()
	}
	return nil
}

// Position returns the last known coordinate, if any.
func (u *User) Position() (geo.Point, bool) {
	if u.LastLatitude == nil || u.LastLongitude == nil {
		return geo.Point{}, false
	}
	return geo.Point{Lat: *u.LastLatitude, Lng: *u.LastLongitude}, true
}

// Discoverable is the visibility/ban gate applied to every read that exposes a user.
func (u *User) Discoverable() bool {
	return u.IsVisible && u.IsActive && !u.IsBanned
}

// OnlineWindow is how recent last_seen_at must be for a user to count as online.
const OnlineWindow = 5 * time.Minute

// IsOnline is derived on every read, never stored.
func IsOnline(lastSeen *time.Time, now time.Time) bool {
	return lastSeen != nil && now.Sub(*lastSeen) < OnlineWindow
}

// IsBoosted reports whether the boost window is open at now.
func (u *User) IsBoosted(now time.Time) bool {
	return u.BoostedUntil != nil && now.Before(*u.BoostedUntil)
}

// SwipeKind is the one-directional interest signal.
type SwipeKind string

const (
	SwipeLike      SwipeKind = "like"
	SwipePass      SwipeKind = "pass"
	SwipeSuperLike SwipeKind = "super_like"
)

// Positive reports whether the swipe counts toward a mutual match.
func (k SwipeKind) Positive() bool { return k == SwipeLike || k == SwipeSuperLike }

// Swipe is a single swiper -> swiped decision.
//
// Composite PK: (SwiperID, SwipedID)
//   - At most one swipe per ordered pair; a second insert fails with a
//     duplicate key error.
//
// Indexes:
//   - idx_swipes_swiper_created(swiper_id, created_at DESC)
//     Serves "most recent swipe" for rewind.
//   - idx_swipes_swiped_kind_created(swiped_id, kind, created_at DESC)
//     Serves likes received and the reverse-like lookup.
type Swipe struct {
	SwiperID  string    `gorm:"primaryKey;size:36;index:idx_swipes_swiper_created,priority:1"`
	SwipedID  string    `gorm:"primaryKey;size:36;index:idx_swipes_swiped_kind_created,priority:1"`
	Kind      SwipeKind `gorm:"size:16;not null;index:idx_swipes_swiped_kind_created,priority:2"`
	CreatedAt time.Time `gorm:"autoCreateTime;index:idx_swipes_swiper_created,priority:2,sort:desc;index:idx_swipes_swiped_kind_created,priority:3,sort:desc"`
}

// Match is a mutual like between two users stored in canonical order:
// User1ID < User2ID by string comparison. The unique index on the pair is
// what keeps concurrent mutual likes down to a single row.
type Match struct {
	ID             string    `gorm:"primaryKey;size:36"`
	User1ID        string    `gorm:"size:36;not null;uniqueIndex:uidx_matches_pair,priority:1"`
	User2ID        string    `gorm:"size:36;not null;uniqueIndex:uidx_matches_pair,priority:2;index"`
	User1Unmatched bool      `gorm:"not null"`
	User2Unmatched bool      `gorm:"not null"`
	MatchedAt      time.Time `gorm:"not null;index"`
}

func (m *Match) BeforeCreate(*gorm.DB) error {
	if m.ID == "" {
		m.ID = newID()
	}
	return nil
}

// CanonicalPair orders two ids lower-first.
func CanonicalPair(a, b string) (string, string) {
	if a < b {
		return a, b
	}
	return b, a
}

// HasParticipant reports whether userID is one side of the match.
func (m *Match) HasParticipant(userID string) bool {
	return m.User1ID == userID || m.User2ID == userID
}

// Other returns the participant that is not userID.
func (m *Match) Other(userID string) string {
	if m.User1ID == userID {
		return m.User2ID
	}
	return m.User1ID
}

// UnmatchedBy reports whether userID has hidden the match on their side.
func (m *Match) UnmatchedBy(userID string) bool {
	if m.User1ID == userID {
		return m.User1Unmatched
	}
	return m.User2Unmatched
}

type FenceKind string

const (
	FenceCircle  FenceKind = "circle"
	FencePolygon FenceKind = "polygon"
)

// FenceTrigger selects which transitions of a geofence produce events.
type FenceTrigger string

const (
	TriggerEnter FenceTrigger = "enter"
	TriggerExit  FenceTrigger = "exit"
	TriggerBoth  FenceTrigger = "both"
)

// OnEnter reports whether entering fires an event.
func (t FenceTrigger) OnEnter() bool { return t == TriggerEnter || t == TriggerBoth }

// OnExit reports whether leaving fires an event.
func (t FenceTrigger) OnExit() bool { return t == TriggerExit || t == TriggerBoth }

// FenceNotification is the payload shown to a user crossing the fence.
type FenceNotification struct {
	Title     string         `json:"title"`
	Body      string         `json:"body"`
	ImageURL  string         `json:"imageUrl,omitempty"`
	ActionURL string         `json:"actionUrl,omitempty"`
	Data      map[string]any `json:"data,omitempty"`
}

// Geofence is a named region managed by the admin collaborator.
// Min/Max lat/lng hold the boundary's enclosing box and are refreshed on every
// save; they let any dialect prefilter candidates with plain range predicates.
type Geofence struct {
	ID              string    `gorm:"primaryKey;size:36"`
	Name            string    `gorm:"size:120;not null"`
	Description     string    `gorm:"size:500"`
	Kind            FenceKind `gorm:"size:16;not null"`
	CenterLatitude  float64
	CenterLongitude float64
	RadiusMeters    float64
	Polygon         datatypes.JSONType[geo.Ring]
	Trigger         FenceTrigger `gorm:"size:8;not null"`
	Notification    datatypes.JSONType[FenceNotification]
	IsActive        bool `gorm:"not null;index:idx_geofences_active_bbox,priority:1"`
	ExpiresAt       *time.Time
	TriggerCount    int64   `gorm:"not null;default:0"`
	CreatedBy       string  `gorm:"size:36"`
	MinLatitude     float64 `gorm:"index:idx_geofences_active_bbox,priority:2"`
	MaxLatitude     float64 `gorm:"index:idx_geofences_active_bbox,priority:3"`
	MinLongitude    float64
	MaxLongitude    float64
	CreatedAt       time.Time `gorm:"autoCreateTime"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime"`
}

func (g *Geofence) BeforeCreate(*gorm.DB) error {
	if g.ID == "" {
		g.ID = newID()
	}
	return nil
}

func (g *Geofence) BeforeSave(*gorm.DB) error {
	b := g.Bounds()
	g.MinLatitude, g.MaxLatitude = b.MinLat, b.MaxLat
	g.MinLongitude, g.MaxLongitude = b.MinLng, b.MaxLng
	return nil
}

// Center returns the circle center.
func (g *Geofence) Center() geo.Point {
	return geo.Point{Lat: g.CenterLatitude, Lng: g.CenterLongitude}
}

// Bounds returns the box enclosing the fence boundary.
func (g *Geofence) Bounds() geo.Box {
	if g.Kind == FencePolygon {
		return g.Polygon.Data().Bounds()
	}
	return geo.BoxAround(g.Center(), g.RadiusMeters)
}

// Contains is the exact containment test used when the store cannot evaluate
// geography predicates itself.
func (g *Geofence) Contains(p geo.Point) bool {
	switch g.Kind {
	case FenceCircle:
		return geo.DistanceMeters(g.Center(), p) <= g.RadiusMeters
	case FencePolygon:
		return g.Polygon.Data().Contains(p)
	}
	return false
}

type NotificationType string

const (
	NotificationMatch    NotificationType = "match"
	NotificationGeofence NotificationType = "geofence"
	NotificationWave     NotificationType = "wave"
)

// Notification is the persisted inbox entry; live delivery happens separately.
type Notification struct {
	ID        string           `gorm:"primaryKey;size:36"`
	UserID    string           `gorm:"size:36;not null;index:idx_notifications_user_created,priority:1"`
	Type      NotificationType `gorm:"size:16;not null"`
	Title     string           `gorm:"size:200;not null"`
	Body      string           `gorm:"type:text"`
	Data      datatypes.JSONMap
	IsRead    bool `gorm:"not null"`
	ReadAt    *time.Time
	CreatedAt time.Time `gorm:"autoCreateTime;index:idx_notifications_user_created,priority:2,sort:desc"`
}

func (n *Notification) BeforeCreate(*gorm.DB) error {
	if n.ID == "" {
		n.ID = newID()
	}
	return nil
}

// Wave is a lightweight "hello" between two users, rate limited per ordered pair.
type Wave struct {
	ID         string     `gorm:"primaryKey;size:36"`
	FromUserID string     `gorm:"size:36;not null;index:idx_waves_pair_created,priority:1"`
	ToUserID   string     `gorm:"size:36;not null;index:idx_waves_pair_created,priority:2;index:idx_waves_to_read,priority:1"`
	IsRead     bool       `gorm:"not null;index:idx_waves_to_read,priority:2"`
	ReadAt     *time.Time
	CreatedAt  time.Time `gorm:"autoCreateTime;index:idx_waves_pair_created,priority:3,sort:desc"`
}

func (w *Wave) BeforeCreate(*gorm.DB) error {
	if w.ID == "" {
		w.ID = newID()
	}
	return nil
}
