package store

import (
	"context"
	"time"

	"github.com/adamb00/CAR-RENTER-ADMIN-sub000/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type NotificationFilter struct {
	State string
	Limit int
}

// ListNotifications returns visible (active or read) notifications, newest first.
func (s *Store) ListNotifications(ctx context.Context, f NotificationFilter) ([]models.Notification, error) {
	q := s.db.WithContext(ctx).Model(&models.Notification{})
	if f.State != "" {
		q = q.Where("state = ?", f.State)
	} else {
		q = q.Where("state IN ?", []models.NotificationState{models.NotificationActive, models.NotificationRead})
	}

	limit := f.Limit
	if limit <= 0 || limit > maxPageSize {
		limit = 50
	}

	var out []models.Notification
	err := q.Order("created_at DESC").Limit(limit).Find(&out).Error
	return out, err
}

func (s *Store) CountUnread(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.Notification{}).
		Where("state = ?", models.NotificationActive).
		Count(&count).Error
	return count, err
}

// MarkNotificationRead reports whether the notification changed state.
func (s *Store) MarkNotificationRead(ctx context.Context, id uint) (bool, error) {
	res := s.db.WithContext(ctx).Model(&models.Notification{}).
		Where("id = ? AND state = ?", id, models.NotificationActive).
		Updates(map[string]any{"state": models.NotificationRead, "read_at": time.Now()})
	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected > 0 {
		return true, nil
	}

	var n models.Notification
	if err := s.db.WithContext(ctx).Select("id").First(&n, id).Error; err != nil {
		return false, translate(err)
	}
	return false, nil
}

func (s *Store) MarkAllNotificationsRead(ctx context.Context) (int64, error) {
	res := s.db.WithContext(ctx).Model(&models.Notification{}).
		Where("state = ?", models.NotificationActive).
		Updates(map[string]any{"state": models.NotificationRead, "read_at": time.Now()})
	return res.RowsAffected, res.Error
}

// CreateNotification inserts n unless its event key already exists.
func (s *Store) CreateNotification(ctx context.Context, n *models.Notification) (bool, error) {
	res := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "event_key"}}, DoNothing: true}).
		Create(n)
	return res.RowsAffected > 0, res.Error
}

// PromotionCandidates returns pending reminders due at or before the cutoff.
func (s *Store) PromotionCandidates(ctx context.Context, cutoff time.Time, limit int) ([]models.Notification, error) {
	var out []models.Notification
	err := s.db.WithContext(ctx).
		Where("type = ? AND state = ?", models.NotificationRentRequest, models.NotificationPending).
		Where("notify_at IS NOT NULL AND notify_at <= ?", cutoff).
		Where("event_key LIKE ?", "%:0").
		Order("notify_at ASC").
		Limit(limit).
		Find(&out).Error
	return out, err
}

// Promote fires a pending reminder and inserts its visible follow-up in one
// transaction. The conditional update makes promotion at-most-once: callers
// that lose the race see promoted == false and nothing is inserted.
func (s *Store) Promote(ctx context.Context, sourceID uint, derived *models.Notification) (bool, error) {
	promoted := false
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Notification{}).
			Where("id = ? AND state = ?", sourceID, models.NotificationPending).
			Update("state", models.NotificationFired)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}

		res = tx.Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "event_key"}}, DoNothing: true}).
			Create(derived)
		if res.Error != nil {
			return res.Error
		}
		promoted = res.RowsAffected > 0
		return nil
	})
	return promoted, err
}
