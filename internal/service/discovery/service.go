package discovery

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/oggyb/nearby/internal/app"
	"github.com/oggyb/nearby/internal/db"
	svcErr "github.com/oggyb/nearby/internal/errors"
	"github.com/oggyb/nearby/internal/logger"
	"github.com/oggyb/nearby/internal/repository"
)

// Filter defaults, applied to zero values.
const (
	DefaultMinAge        = 18
	DefaultMaxAge        = 100
	DefaultMaxDistanceKm = 100
	DefaultLimit         = 10
	MaxLimit             = 50
)

// Filters narrows the candidate feed. Zero fields take the defaults above.
type Filters struct {
	MinAge        int
	MaxAge        int
	MaxDistanceKm float64
	Skip          int
	Limit         int
}

func (f Filters) withDefaults() (Filters, error) {
	if f.MinAge == 0 {
		f.MinAge = DefaultMinAge
	}
	if f.MaxAge == 0 {
		f.MaxAge = DefaultMaxAge
	}
	if f.MaxDistanceKm == 0 {
		f.MaxDistanceKm = DefaultMaxDistanceKm
	}
	if f.Limit == 0 {
		f.Limit = DefaultLimit
	}

	switch {
	case f.MinAge < 0 || f.MaxAge < 0:
		return f, svcErr.InvalidArgument("age bounds must not be negative")
	case f.MinAge > f.MaxAge:
		return f, svcErr.InvalidArgument("min_age must not exceed max_age")
	case f.MaxDistanceKm < 0:
		return f, svcErr.InvalidArgument("max_distance_km must not be negative")
	case f.Skip < 0:
		return f, svcErr.InvalidArgument("skip must not be negative")
	}
	if f.Limit < 1 {
		f.Limit = 1
	}
	if f.Limit > MaxLimit {
		f.Limit = MaxLimit
	}
	return f, nil
}

// Page is one slice of the feed.
type Page struct {
	Profiles []db.User
	Total    int64
	HasMore  bool
}

// Service builds the ranked candidate feed.
type Service struct {
	appCtx *app.AppContext
	users  *repository.UserRepository
}

func NewService(appCtx *app.AppContext) *Service {
	return &Service{appCtx: appCtx, users: repository.NewUserRepository(appCtx.DB)}
}

// GetCandidates returns a page of profiles userID has not swiped on yet.
//
// Behavior:
//   - Excludes self, everyone already swiped on, and invisible, inactive,
//     banned or not onboarded users.
//   - Gender follows the requester's interested_in when it names a gender.
//   - The distance filter applies only when the requester has a position.
//   - Order: boosted now, verification score, last seen (never seen last).
//   - HasMore = skip + len(Profiles) < Total.
//
// Example:
//
//	page, err := svc.GetCandidates(ctx, "u1", discovery.Filters{MaxDistanceKm: 25})
func (s *Service) GetCandidates(ctx context.Context, userID string, f Filters) (*Page, error) {
	if userID == "" {
		return nil, svcErr.InvalidArgument("user_id is required")
	}
	f, err := f.withDefaults()
	if err != nil {
		return nil, err
	}

	requester, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, svcErr.NotFound("user not found")
		}
		return nil, fmt.Errorf("load requester: %w", err)
	}

	q := repository.DiscoveryQuery{
		RequesterID:   userID,
		MinAge:        f.MinAge,
		MaxAge:        f.MaxAge,
		Gender:        genderPreference(requester.InterestedIn),
		MaxDistanceKm: f.MaxDistanceKm,
		Now:           s.appCtx.Now(),
		Skip:          f.Skip,
		Limit:         f.Limit,
	}
	if p, ok := requester.Position(); ok {
		q.Origin = &p
	}

	users, total, err := s.users.Discover(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("discover candidates: %w", err)
	}

	logger.FromContext(ctx, s.appCtx.Logger).Debug("GetCandidates result", "user_id", userID, "returned", len(users), "total", total)

	return &Page{
		Profiles: users,
		Total:    total,
		HasMore:  int64(f.Skip+len(users)) < total,
	}, nil
}

// genderPreference turns interested_in into a gender filter; "everyone"
// style values mean no filter.
func genderPreference(interestedIn string) string {
	switch strings.ToLower(strings.TrimSpace(interestedIn)) {
	case "", "any", "all", "both", "everyone":
		return ""
	}
	return interestedIn
}
