package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/oggyb/nearby/internal/db"
	"github.com/oggyb/nearby/internal/utils/pagination"
)

// SwipeRepository provides data access methods for the Swipe model.
// It encapsulates all queries related to likes/passes between users.
type SwipeRepository struct {
	db *gorm.DB
}

// NewSwipeRepository creates a new repository bound to the given DB connection.
func NewSwipeRepository(database *gorm.DB) *SwipeRepository {
	return &SwipeRepository{db: database}
}

// Create inserts a swipe.
//
// Behavior:
//   - The composite primary key rejects a second swipe on the same ordered
//     pair; with TranslateError enabled that surfaces as gorm.ErrDuplicatedKey.
//   - Swipes are never updated in place.
//
// Example:
//
//	repo.Create(ctx, &db.Swipe{SwiperID: "a", SwipedID: "b", Kind: db.SwipeLike})
func (r *SwipeRepository) Create(ctx context.Context, s *db.Swipe) error {
	return r.db.WithContext(ctx).Create(s).Error
}

// Exists reports whether swiper already swiped on swiped, whatever the kind.
func (r *SwipeRepository) Exists(ctx context.Context, swiperID, swipedID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db.Swipe{}).
		Where("swiper_id = ? AND swiped_id = ?", swiperID, swipedID).
		Count(&count).Error
	return count > 0, err
}

// HasLiked checks whether swiper liked or super-liked swiped.
//
// Example:
//
//	repo.HasLiked(ctx, "b", "a") // -> true if b already liked a
func (r *SwipeRepository) HasLiked(ctx context.Context, swiperID, swipedID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db.Swipe{}).
		Where("swiper_id = ? AND swiped_id = ?", swiperID, swipedID).
		Where("kind IN ?", []db.SwipeKind{db.SwipeLike, db.SwipeSuperLike}).
		Count(&count).Error
	return count > 0, err
}

// Latest returns the swiper's most recent swipe, or gorm.ErrRecordNotFound.
func (r *SwipeRepository) Latest(ctx context.Context, swiperID string) (*db.Swipe, error) {
	var s db.Swipe
	err := r.db.WithContext(ctx).
		Where("swiper_id = ?", swiperID).
		Order("created_at DESC").
		Order("swiped_id DESC").
		Take(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Delete removes one swipe. Returns the number of deleted rows.
func (r *SwipeRepository) Delete(ctx context.Context, swiperID, swipedID string) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("swiper_id = ? AND swiped_id = ?", swiperID, swipedID).
		Delete(&db.Swipe{})
	return res.RowsAffected, res.Error
}

// LikesReceived returns like/super_like swipes aimed at the user.
//
// Behavior:
//   - Only kind IN (like, super_like) where swiped_id = X.
//   - Excludes swipers the user is already matched with (either side of the
//     canonical pair, regardless of unmatch flags).
//   - Ordered by created_at DESC, swiper_id DESC.
//   - limit <= 0 returns everything; otherwise a cursor is returned when more
//     rows exist.
//
// Example:
//
//	repo.LikesReceived(ctx, "u42", nil, 20)
func (r *SwipeRepository) LikesReceived(
	ctx context.Context,
	userID string,
	paginationToken *string,
	limit int,
) ([]db.Swipe, *string, error) {
	cursor, err := pagination.Decode(getString(paginationToken))
	if err != nil {
		return nil, nil, err
	}

	matched := r.db.
		Table("matches m").
		Select("1").
		Where("(m.user1_id = s.swiped_id AND m.user2_id = s.swiper_id) OR (m.user2_id = s.swiped_id AND m.user1_id = s.swiper_id)")

	query := r.db.WithContext(ctx).
		Table("swipes s").
		Where("s.swiped_id = ?", userID).
		Where("s.kind IN ?", []db.SwipeKind{db.SwipeLike, db.SwipeSuperLike}).
		Where("NOT EXISTS (?)", matched).
		Order("s.created_at DESC, s.swiper_id DESC")

	if !cursor.IsZero() {
		ts := cursor.CreatedAt()
		query = query.Where(
			"(s.created_at < ? OR (s.created_at = ? AND s.swiper_id < ?))",
			ts, ts, cursor.ID,
		)
	}
	if limit > 0 {
		query = query.Limit(limit + 1)
	}

	var swipes []db.Swipe
	if err := query.Find(&swipes).Error; err != nil {
		return nil, nil, err
	}

	var nextToken *string
	if limit > 0 && len(swipes) > limit {
		last := swipes[limit-1]
		token, _ := pagination.Encode(pagination.After(last.SwiperID, last.CreatedAt))
		nextToken = &token
		swipes = swipes[:limit]
	}
	return swipes, nextToken, nil
}

// getString safely dereferences a string pointer for pagination tokens.
func getString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
