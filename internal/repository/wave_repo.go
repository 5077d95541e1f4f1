package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/oggyb/nearby/internal/db"
)

// WaveRepository stores waves between users.
type WaveRepository struct {
	db *gorm.DB
}

func NewWaveRepository(database *gorm.DB) *WaveRepository {
	return &WaveRepository{db: database}
}

func (r *WaveRepository) Create(ctx context.Context, w *db.Wave) error {
	return r.db.WithContext(ctx).Create(w).Error
}

// LatestBetween returns the most recent wave from -> to, or gorm.ErrRecordNotFound.
func (r *WaveRepository) LatestBetween(ctx context.Context, fromID, toID string) (*db.Wave, error) {
	var w db.Wave
	err := r.db.WithContext(ctx).
		Where("from_user_id = ? AND to_user_id = ?", fromID, toID).
		Order("created_at DESC").
		Take(&w).Error
	if err != nil {
		return nil, err
	}
	return &w, nil
}

// Received returns waves sent to the user, newest first.
func (r *WaveRepository) Received(ctx context.Context, toID string, limit int) ([]db.Wave, error) {
	var waves []db.Wave
	err := r.db.WithContext(ctx).
		Where("to_user_id = ?", toID).
		Order("created_at DESC").
		Order("id ASC").
		Limit(limit).
		Find(&waves).Error
	return waves, err
}

func (r *WaveRepository) UnreadCount(ctx context.Context, toID string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&db.Wave{}).
		Where("to_user_id = ? AND is_read = ?", toID, false).
		Count(&n).Error
	return n, err
}

// MarkRead flags one wave as read. Returns false when the wave does not exist
// or was sent to someone else.
func (r *WaveRepository) MarkRead(ctx context.Context, id, toID string, at time.Time) (bool, error) {
	var w db.Wave
	err := r.db.WithContext(ctx).Where("id = ? AND to_user_id = ?", id, toID).Take(&w).Error
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	if w.IsRead {
		return true, nil
	}
	err = r.db.WithContext(ctx).
		Model(&db.Wave{}).
		Where("id = ?", id).
		Updates(map[string]any{"is_read": true, "read_at": at}).Error
	return err == nil, err
}

// MarkAllRead flags every unread wave of the user; returns how many changed.
func (r *WaveRepository) MarkAllRead(ctx context.Context, toID string, at time.Time) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&db.Wave{}).
		Where("to_user_id = ? AND is_read = ?", toID, false).
		Updates(map[string]any{"is_read": true, "read_at": at})
	return res.RowsAffected, res.Error
}
