package boost

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/oggyb/nearby/internal/app"
	svcErr "github.com/oggyb/nearby/internal/errors"
	"github.com/oggyb/nearby/internal/logger"
	"github.com/oggyb/nearby/internal/repository"
)

// Duration is how long a single activation keeps a profile at the top of discovery.
const Duration = 30 * time.Minute

// Service opens and reports boost windows. It is the only writer of
// users.boosted_until.
type Service struct {
	appCtx *app.AppContext
	users  *repository.UserRepository
}

func NewService(appCtx *app.AppContext) *Service {
	return &Service{appCtx: appCtx, users: repository.NewUserRepository(appCtx.DB)}
}

// ActivateBoost starts a boost for userID and returns when it ends.
//
// Behavior:
//   - Unknown user → NotFound; free tier → Forbidden.
//   - A boost that is still running → Conflict. Boosts never stack or extend.
//   - Two concurrent activations: the conditional update lets only one win,
//     the other gets Conflict.
func (s *Service) ActivateBoost(ctx context.Context, userID string) (time.Time, error) {
	if userID == "" {
		return time.Time{}, svcErr.InvalidArgument("user_id is required")
	}
	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return time.Time{}, svcErr.NotFound("user not found")
		}
		return time.Time{}, fmt.Errorf("load user: %w", err)
	}
	if !u.SubscriptionTier.IsPaid() {
		return time.Time{}, svcErr.Forbidden("boost requires a paid subscription")
	}

	now := s.appCtx.Now()
	if u.IsBoosted(now) {
		return time.Time{}, svcErr.Conflict("boost already active")
	}

	until := now.Add(Duration)
	ok, err := s.users.ActivateBoost(ctx, userID, now, until)
	if err != nil {
		return time.Time{}, fmt.Errorf("activate boost: %w", err)
	}
	if !ok {
		return time.Time{}, svcErr.Conflict("boost already active")
	}

	logger.FromContext(ctx, s.appCtx.Logger).Info("boost activated", "user_id", userID, "until", until)
	return until, nil
}

// Status is the boost state of a user at the time of the call.
type Status struct {
	IsBoosted    bool
	BoostedUntil *time.Time
}

// GetBoostStatus reports whether userID is boosted right now. BoostedUntil is
// nil once the window has passed.
func (s *Service) GetBoostStatus(ctx context.Context, userID string) (*Status, error) {
	if userID == "" {
		return nil, svcErr.InvalidArgument("user_id is required")
	}
	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, svcErr.NotFound("user not found")
		}
		return nil, fmt.Errorf("load user: %w", err)
	}

	if !u.IsBoosted(s.appCtx.Now()) {
		return &Status{}, nil
	}
	until := u.BoostedUntil.UTC()
	return &Status{IsBoosted: true, BoostedUntil: &until}, nil
}
