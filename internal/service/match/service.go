package match

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/oggyb/nearby/internal/app"
	"github.com/oggyb/nearby/internal/db"
	svcErr "github.com/oggyb/nearby/internal/errors"
	"github.com/oggyb/nearby/internal/logger"
	"github.com/oggyb/nearby/internal/repository"
	"github.com/oggyb/nearby/internal/utils/pagination"
)

const (
	DefaultLikesLimit = 20
	MaxLikesLimit     = 100
)

// Service implements swipes, matches and the premium swipe features.
type Service struct {
	appCtx  *app.AppContext
	users   *repository.UserRepository
	swipes  *repository.SwipeRepository
	matches *repository.MatchRepository
}

// NewService creates a match service with dependencies from AppContext.
func NewService(appCtx *app.AppContext) *Service {
	return &Service{
		appCtx:  appCtx,
		users:   repository.NewUserRepository(appCtx.DB),
		swipes:  repository.NewSwipeRepository(appCtx.DB),
		matches: repository.NewMatchRepository(appCtx.DB),
	}
}

// SwipeResult reports whether the swipe completed a mutual like.
type SwipeResult struct {
	Matched bool
	Match   *db.Match
	Target  *db.User
}

// Like records a like from swiperID to swipedID.
//
// Behavior:
//   - Self swipes fail with InvalidOperation.
//   - A second swipe on the same ordered pair fails with Conflict, also when
//     two requests race past the existence check.
//   - If swipedID already liked or super-liked swiperID, exactly one match is
//     stored for the pair and both users are notified.
//
// Example:
//
//	res, err := svc.Like(ctx, "u1", "u2") // res.Matched if u2 liked u1 before
func (s *Service) Like(ctx context.Context, swiperID, swipedID string) (*SwipeResult, error) {
	return s.swipe(ctx, swiperID, swipedID, db.SwipeLike)
}

// SuperLike behaves like Like and is stored with its own kind.
func (s *Service) SuperLike(ctx context.Context, swiperID, swipedID string) (*SwipeResult, error) {
	return s.swipe(ctx, swiperID, swipedID, db.SwipeSuperLike)
}

// Pass records a pass. It never produces a match.
func (s *Service) Pass(ctx context.Context, swiperID, swipedID string) (*SwipeResult, error) {
	return s.swipe(ctx, swiperID, swipedID, db.SwipePass)
}

func (s *Service) swipe(ctx context.Context, swiperID, swipedID string, kind db.SwipeKind) (*SwipeResult, error) {
	if swiperID == "" || swipedID == "" {
		return nil, svcErr.InvalidArgument("user_id and target_user_id are required")
	}
	if swiperID == swipedID {
		return nil, svcErr.InvalidOperation("cannot swipe on yourself")
	}

	log := logger.FromContext(ctx, s.appCtx.Logger).With("swiper_id", swiperID, "swiped_id", swipedID, "kind", kind)

	swiper, err := s.findUser(ctx, swiperID)
	if err != nil {
		return nil, err
	}
	target, err := s.findUser(ctx, swipedID)
	if err != nil {
		return nil, err
	}

	exists, err := s.swipes.Exists(ctx, swiperID, swipedID)
	if err != nil {
		return nil, fmt.Errorf("check existing swipe: %w", err)
	}
	if exists {
		return nil, svcErr.Conflict("already swiped on this user")
	}

	now := s.appCtx.Now()
	err = s.swipes.Create(ctx, &db.Swipe{SwiperID: swiperID, SwipedID: swipedID, Kind: kind, CreatedAt: now})
	if err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, svcErr.Conflict("already swiped on this user")
		}
		return nil, fmt.Errorf("store swipe: %w", err)
	}

	res := &SwipeResult{Target: target}
	if !kind.Positive() {
		return res, nil
	}

	mutual, err := s.swipes.HasLiked(ctx, swipedID, swiperID)
	if err != nil {
		return nil, fmt.Errorf("check reverse like: %w", err)
	}
	if !mutual {
		return res, nil
	}

	m, created, err := s.matches.CreateIfAbsent(ctx, swiperID, swipedID, now)
	if err != nil {
		return nil, fmt.Errorf("store match: %w", err)
	}
	res.Matched = true
	res.Match = m

	if created {
		log.Info("new match", "match_id", m.ID)
		s.notifyMatch(m, swiper, target)
	}
	return res, nil
}

func (s *Service) notifyMatch(m *db.Match, a, b *db.User) {
	for _, pair := range [][2]*db.User{{a, b}, {b, a}} {
		to, other := pair[0], pair[1]
		s.appCtx.Notifier.Notify(&db.Notification{
			UserID: to.ID,
			Type:   db.NotificationMatch,
			Title:  "It's a match!",
			Body:   "You and " + displayName(other) + " liked each other",
			Data: map[string]any{
				"matchId":     m.ID,
				"otherUserId": other.ID,
			},
		})
	}
}

func displayName(u *db.User) string {
	if u.DisplayName != "" {
		return u.DisplayName
	}
	return u.Username
}

// Unmatch hides the match on userID's side only.
//
// Behavior:
//   - Unknown match → NotFound; caller not a participant → Forbidden.
//   - The other participant keeps seeing the match until they unmatch too.
//   - Unmatching twice is a no-op.
func (s *Service) Unmatch(ctx context.Context, userID, matchID string) error {
	if userID == "" || matchID == "" {
		return svcErr.InvalidArgument("user_id and match_id are required")
	}
	m, err := s.matches.FindByID(ctx, matchID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return svcErr.NotFound("match not found")
		}
		return fmt.Errorf("load match: %w", err)
	}
	if !m.HasParticipant(userID) {
		return svcErr.Forbidden("not a participant of this match")
	}
	if m.UnmatchedBy(userID) {
		return nil
	}
	if err := s.matches.SetUnmatched(ctx, m, userID); err != nil {
		return fmt.Errorf("unmatch: %w", err)
	}
	return nil
}

// MatchView is a match together with the other participant.
type MatchView struct {
	Match db.Match
	Other db.User
}

// GetMatches lists the matches userID has not unmatched, newest first.
func (s *Service) GetMatches(ctx context.Context, userID string) ([]MatchView, error) {
	if userID == "" {
		return nil, svcErr.InvalidArgument("user_id is required")
	}
	matches, err := s.matches.ListActive(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}
	if len(matches) == 0 {
		return nil, nil
	}

	otherIDs := make([]string, 0, len(matches))
	for _, m := range matches {
		otherIDs = append(otherIDs, m.Other(userID))
	}
	others, err := s.users.FindByIDs(ctx, otherIDs)
	if err != nil {
		return nil, fmt.Errorf("load match profiles: %w", err)
	}
	byID := make(map[string]db.User, len(others))
	for _, u := range others {
		byID[u.ID] = u
	}

	views := make([]MatchView, 0, len(matches))
	for _, m := range matches {
		other, ok := byID[m.Other(userID)]
		if !ok {
			continue
		}
		views = append(views, MatchView{Match: m, Other: other})
	}
	return views, nil
}

// RewindResult describes the undone swipe.
type RewindResult struct {
	Swipe        db.Swipe
	Profile      db.User
	MatchRemoved bool
}

// RewindLastSwipe undoes the caller's most recent swipe.
//
// Behavior:
//   - Free tier → Forbidden; no swipe to undo → NotFound.
//   - Any match between the pair is deleted together with the swipe, in one
//     transaction, so the profile shows up in discovery again.
//
// Example:
//
//	res, err := svc.RewindLastSwipe(ctx, "u1") // res.Profile is the re-surfaced user
func (s *Service) RewindLastSwipe(ctx context.Context, userID string) (*RewindResult, error) {
	user, err := s.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !user.SubscriptionTier.IsPaid() {
		return nil, svcErr.Forbidden("rewind requires a paid subscription")
	}

	last, err := s.swipes.Latest(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, svcErr.NotFound("no swipe to rewind")
		}
		return nil, fmt.Errorf("load last swipe: %w", err)
	}

	profile, err := s.users.FindByID(ctx, last.SwipedID)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("load rewound profile: %w", err)
	}

	res := &RewindResult{Swipe: *last}
	if profile != nil {
		res.Profile = *profile
	}

	err = s.appCtx.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		removed, err := repository.NewMatchRepository(tx).DeletePair(ctx, last.SwiperID, last.SwipedID)
		if err != nil {
			return err
		}
		deleted, err := repository.NewSwipeRepository(tx).Delete(ctx, last.SwiperID, last.SwipedID)
		if err != nil {
			return err
		}
		if deleted == 0 {
			return svcErr.NotFound("no swipe to rewind")
		}
		res.MatchRemoved = removed > 0
		return nil
	})
	if err != nil {
		if svcErr.Is(err, svcErr.KindNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("rewind swipe: %w", err)
	}

	logger.FromContext(ctx, s.appCtx.Logger).Info("swipe rewound", "user_id", userID, "swiped_id", last.SwipedID, "match_removed", res.MatchRemoved)
	return res, nil
}

// ReceivedLike is a like aimed at the caller plus the liker's profile.
type ReceivedLike struct {
	Swipe db.Swipe
	From  db.User
}

// LikesPage is one page of received likes.
type LikesPage struct {
	Likes     []ReceivedLike
	NextToken *string
}

// LikesReceived lists likes and super likes aimed at userID from users they
// are not matched with, newest first.
//
// Behavior:
//   - Free tier → Forbidden.
//   - Cursor pagination over (created_at, swiper_id); a malformed token is
//     InvalidArgument.
//   - Likers that are hidden or banned are left out of the page.
func (s *Service) LikesReceived(ctx context.Context, userID string, token *string, limit int) (*LikesPage, error) {
	user, err := s.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !user.SubscriptionTier.IsPaid() {
		return nil, svcErr.Forbidden("likes received requires a paid subscription")
	}

	switch {
	case limit <= 0:
		limit = DefaultLikesLimit
	case limit > MaxLikesLimit:
		limit = MaxLikesLimit
	}

	swipes, next, err := s.swipes.LikesReceived(ctx, userID, token, limit)
	if err != nil {
		if errors.Is(err, pagination.ErrInvalidToken) {
			return nil, svcErr.InvalidArgument("invalid pagination token")
		}
		return nil, fmt.Errorf("list likes received: %w", err)
	}

	ids := make([]string, 0, len(swipes))
	for _, sw := range swipes {
		ids = append(ids, sw.SwiperID)
	}
	likers, err := s.users.FindDiscoverable(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("load likers: %w", err)
	}
	byID := make(map[string]db.User, len(likers))
	for _, u := range likers {
		byID[u.ID] = u
	}

	page := &LikesPage{NextToken: next, Likes: make([]ReceivedLike, 0, len(swipes))}
	for _, sw := range swipes {
		if u, ok := byID[sw.SwiperID]; ok {
			page.Likes = append(page.Likes, ReceivedLike{Swipe: sw, From: u})
		}
	}
	return page, nil
}

func (s *Service) findUser(ctx context.Context, id string) (*db.User, error) {
	if id == "" {
		return nil, svcErr.InvalidArgument("user_id is required")
	}
	u, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, svcErr.NotFound("user not found")
		}
		return nil, fmt.Errorf("load user: %w", err)
	}
	return u, nil
}
