package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/oggyb/nearby/internal/db"
)

// MatchRepository stores mutual likes in canonical (lower id first) order.
type MatchRepository struct {
	db *gorm.DB
}

// NewMatchRepository creates a new repository bound to the given DB connection.
func NewMatchRepository(database *gorm.DB) *MatchRepository {
	return &MatchRepository{db: database}
}

// CreateIfAbsent materializes the match for {a, b}.
//
// Behavior:
//   - The pair is canonicalized before insert, so it does not matter which
//     side's like arrived second.
//   - A unique violation on (user1_id, user2_id) means a concurrent request
//     already created the row; that row is returned with created = false.
//
// Example:
//
//	m, created, err := repo.CreateIfAbsent(ctx, "b", "a", now) // stored as (a, b)
func (r *MatchRepository) CreateIfAbsent(ctx context.Context, a, b string, at time.Time) (*db.Match, bool, error) {
	user1, user2 := db.CanonicalPair(a, b)
	m := &db.Match{User1ID: user1, User2ID: user2, MatchedAt: at}

	err := r.db.WithContext(ctx).Create(m).Error
	if err == nil {
		return m, true, nil
	}
	if !IsUniqueViolation(err) {
		return nil, false, err
	}

	existing, err := r.FindPair(ctx, a, b)
	if err != nil {
		return nil, false, err
	}
	return existing, false, nil
}

// FindByID loads a match or returns gorm.ErrRecordNotFound.
func (r *MatchRepository) FindByID(ctx context.Context, id string) (*db.Match, error) {
	var m db.Match
	if err := r.db.WithContext(ctx).Where("id = ?", id).Take(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

// FindPair loads the match between a and b in either order.
func (r *MatchRepository) FindPair(ctx context.Context, a, b string) (*db.Match, error) {
	user1, user2 := db.CanonicalPair(a, b)
	var m db.Match
	err := r.db.WithContext(ctx).
		Where("user1_id = ? AND user2_id = ?", user1, user2).
		Take(&m).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// SetUnmatched flips only userID's side of the match.
func (r *MatchRepository) SetUnmatched(ctx context.Context, m *db.Match, userID string) error {
	column := "user2_unmatched"
	if m.User1ID == userID {
		column = "user1_unmatched"
	}
	return r.db.WithContext(ctx).
		Model(&db.Match{}).
		Where("id = ?", m.ID).
		UpdateColumn(column, true).Error
}

// ListActive returns the matches userID has not unmatched, newest first.
// The other side's flag is irrelevant: unmatching is per participant.
func (r *MatchRepository) ListActive(ctx context.Context, userID string) ([]db.Match, error) {
	var matches []db.Match
	err := r.db.WithContext(ctx).
		Where("(user1_id = ? AND user1_unmatched = ?) OR (user2_id = ? AND user2_unmatched = ?)",
			userID, false, userID, false).
		Order("matched_at DESC").
		Order("id ASC").
		Find(&matches).Error
	return matches, err
}

// DeletePair hard-deletes the match between a and b, if any.
func (r *MatchRepository) DeletePair(ctx context.Context, a, b string) (int64, error) {
	user1, user2 := db.CanonicalPair(a, b)
	res := r.db.WithContext(ctx).
		Where("user1_id = ? AND user2_id = ?", user1, user2).
		Delete(&db.Match{})
	return res.RowsAffected, res.Error
}
