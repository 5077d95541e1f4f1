package wave

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/oggyb/nearby/internal/app"
	"github.com/oggyb/nearby/internal/db"
	svcErr "github.com/oggyb/nearby/internal/errors"
	"github.com/oggyb/nearby/internal/logger"
	"github.com/oggyb/nearby/internal/repository"
	"github.com/oggyb/nearby/internal/utils/keylock"
)

const (
	// Cooldown is the minimum gap between two waves on the same ordered pair.
	Cooldown = 24 * time.Hour

	DefaultLimit = 50
	MaxLimit     = 100

	unreadTTL = 10 * time.Minute
)

// Service sends and lists waves.
type Service struct {
	appCtx *app.AppContext
	users  *repository.UserRepository
	waves  *repository.WaveRepository
	pairs  keylock.Locker
}

func NewService(appCtx *app.AppContext) *Service {
	return &Service{
		appCtx: appCtx,
		users:  repository.NewUserRepository(appCtx.DB),
		waves:  repository.NewWaveRepository(appCtx.DB),
	}
}

// SendWave records a wave from fromID to toID and notifies the recipient.
//
// Behavior:
//   - Self waves → InvalidOperation; unknown, hidden or banned target → NotFound.
//   - Within Cooldown of the previous wave on the same ordered pair →
//     RateLimited carrying the remaining time.
//   - Sends on one pair are serialized so two racing requests cannot both
//     pass the cooldown check.
func (s *Service) SendWave(ctx context.Context, fromID, toID string) (*db.Wave, error) {
	if fromID == "" || toID == "" {
		return nil, svcErr.InvalidArgument("user_id and target_user_id are required")
	}
	if fromID == toID {
		return nil, svcErr.InvalidOperation("cannot wave at yourself")
	}

	sender, err := s.findUser(ctx, fromID)
	if err != nil {
		return nil, err
	}
	target, err := s.findUser(ctx, toID)
	if err != nil {
		return nil, err
	}
	if !target.Discoverable() {
		return nil, svcErr.NotFound("user not found")
	}

	key := fromID + "|" + toID
	s.pairs.Lock(key)
	defer s.pairs.Unlock(key)

	now := s.appCtx.Now()
	remaining, err := s.remaining(ctx, fromID, toID, now)
	if err != nil {
		return nil, err
	}
	if remaining > 0 {
		return nil, svcErr.RateLimited("already waved at this user", remaining)
	}

	w := &db.Wave{FromUserID: fromID, ToUserID: toID, CreatedAt: now}
	if err := s.waves.Create(ctx, w); err != nil {
		return nil, fmt.Errorf("store wave: %w", err)
	}
	s.forgetUnread(ctx, toID)

	s.appCtx.Notifier.Notify(&db.Notification{
		UserID: toID,
		Type:   db.NotificationWave,
		Title:  "New wave",
		Body:   displayName(sender) + " waved at you",
		Data: map[string]any{
			"waveId":     w.ID,
			"fromUserId": fromID,
		},
	})
	return w, nil
}

// CanSendWave reports whether fromID may wave at toID now, and if not, how
// long until they may.
func (s *Service) CanSendWave(ctx context.Context, fromID, toID string) (bool, time.Duration, error) {
	if fromID == "" || toID == "" {
		return false, 0, svcErr.InvalidArgument("user_id and target_user_id are required")
	}
	if fromID == toID {
		return false, 0, nil
	}
	remaining, err := s.remaining(ctx, fromID, toID, s.appCtx.Now())
	if err != nil {
		return false, 0, err
	}
	return remaining == 0, remaining, nil
}

func (s *Service) remaining(ctx context.Context, fromID, toID string, now time.Time) (time.Duration, error) {
	last, err := s.waves.LatestBetween(ctx, fromID, toID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return 0, nil
		}
		return 0, fmt.Errorf("load last wave: %w", err)
	}
	if left := last.CreatedAt.Add(Cooldown).Sub(now); left > 0 {
		return left, nil
	}
	return 0, nil
}

// Received is a wave plus its sender. From is nil when the sender is no
// longer discoverable.
type Received struct {
	Wave db.Wave
	From *db.User
}

// ReceivedWaves lists waves sent to userID, newest first.
func (s *Service) ReceivedWaves(ctx context.Context, userID string, limit int) ([]Received, error) {
	if userID == "" {
		return nil, svcErr.InvalidArgument("user_id is required")
	}
	switch {
	case limit <= 0:
		limit = DefaultLimit
	case limit > MaxLimit:
		limit = MaxLimit
	}

	waves, err := s.waves.Received(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("list waves: %w", err)
	}

	ids := make([]string, 0, len(waves))
	for _, w := range waves {
		ids = append(ids, w.FromUserID)
	}
	senders, err := s.users.FindDiscoverable(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("load senders: %w", err)
	}
	byID := make(map[string]*db.User, len(senders))
	for i := range senders {
		byID[senders[i].ID] = &senders[i]
	}

	out := make([]Received, 0, len(waves))
	for _, w := range waves {
		out = append(out, Received{Wave: w, From: byID[w.FromUserID]})
	}
	return out, nil
}

// UnreadCount returns how many waves userID has not read yet.
//
// Behavior:
//  1. Reads waves:unread:{id} from Redis.
//  2. On miss (or Redis error) counts in the store and caches the result
//     for unreadTTL.
//  3. Every write that changes the count deletes the key.
func (s *Service) UnreadCount(ctx context.Context, userID string) (int64, error) {
	if userID == "" {
		return 0, svcErr.InvalidArgument("user_id is required")
	}
	log := logger.FromContext(ctx, s.appCtx.Logger)
	key := s.appCtx.RedisCache.KeyForUnreadWaves(userID)

	// try cache first
	cached, err := s.appCtx.RedisCache.Get(ctx, key)
	if err != nil {
		log.Debug("unread wave cache unavailable", "user_id", userID, "err", err)
	} else if cached != "" {
		if n, err := strconv.ParseInt(cached, 10, 64); err == nil {
			return n, nil
		}
	}

	n, err := s.waves.UnreadCount(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("count unread waves: %w", err)
	}
	if err := s.appCtx.RedisCache.Set(ctx, key, strconv.FormatInt(n, 10), unreadTTL); err != nil {
		log.Debug("failed to cache unread wave count", "user_id", userID, "err", err)
	}
	return n, nil
}

func (s *Service) forgetUnread(ctx context.Context, userID string) {
	if err := s.appCtx.RedisCache.Del(ctx, s.appCtx.RedisCache.KeyForUnreadWaves(userID)); err != nil {
		logger.FromContext(ctx, s.appCtx.Logger).Warn("failed to drop unread wave count", "user_id", userID, "err", err)
	}
}

// MarkAsRead flags one wave as read. Only the recipient may do so; any other
// caller gets NotFound.
func (s *Service) MarkAsRead(ctx context.Context, userID, waveID string) error {
	if userID == "" || waveID == "" {
		return svcErr.InvalidArgument("user_id and wave_id are required")
	}
	ok, err := s.waves.MarkRead(ctx, waveID, userID, s.appCtx.Now())
	if err != nil {
		return fmt.Errorf("mark wave read: %w", err)
	}
	if !ok {
		return svcErr.NotFound("wave not found")
	}
	s.forgetUnread(ctx, userID)
	return nil
}

// MarkAllAsRead flags every unread wave of userID and returns how many changed.
func (s *Service) MarkAllAsRead(ctx context.Context, userID string) (int64, error) {
	if userID == "" {
		return 0, svcErr.InvalidArgument("user_id is required")
	}
	n, err := s.waves.MarkAllRead(ctx, userID, s.appCtx.Now())
	if err != nil {
		return 0, fmt.Errorf("mark waves read: %w", err)
	}
	if n > 0 {
		s.forgetUnread(ctx, userID)
	}
	return n, nil
}

func (s *Service) findUser(ctx context.Context, id string) (*db.User, error) {
	u, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, svcErr.NotFound("user not found")
		}
		return nil, fmt.Errorf("load user: %w", err)
	}
	return u, nil
}

func displayName(u *db.User) string {
	if u.DisplayName != "" {
		return u.DisplayName
	}
	return u.Username
}
