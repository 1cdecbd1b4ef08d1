package store

import (
	"context"
	"strings"
	"time"

	"github.com/adamb00/CAR-RENTER-ADMIN-sub000/internal/models"
	"gorm.io/datatypes"
)

type BookingFilter struct {
	Query  string
	Status string
	Sort   string
	Order  string
	Page
}

var bookingSortColumns = map[string]string{
	"createdAt":   "created_at",
	"rentalStart": "rental_start",
	"rentalEnd":   "rental_end",
	"status":      "status",
	"code":        "code",
	"contactName": "contact_name",
}

func (s *Store) ListBookings(ctx context.Context, f BookingFilter) ([]models.Booking, int64, error) {
	q := s.db.WithContext(ctx).Model(&models.Booking{})
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if strings.TrimSpace(f.Query) != "" {
		like := likePattern(f.Query)
		q = q.Where("LOWER(code) LIKE ? OR LOWER(contact_name) LIKE ? OR LOWER(contact_email) LIKE ?", like, like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	limit, offset := f.limitOffset()
	var bookings []models.Booking
	err := q.Order(orderBy(bookingSortColumns, f.Sort, f.Order, "created_at DESC")).
		Limit(limit).Offset(offset).
		Find(&bookings).Error
	if err != nil {
		return nil, 0, err
	}
	return bookings, total, nil
}

func (s *Store) GetBooking(ctx context.Context, id uint) (*models.Booking, error) {
	var b models.Booking
	if err := s.db.WithContext(ctx).First(&b, id).Error; err != nil {
		return nil, translate(err)
	}
	return &b, nil
}

// UpdateBookingStatus writes the status, stamping finalized_at when given.
func (s *Store) UpdateBookingStatus(ctx context.Context, id uint, status models.BookingStatus, finalizedAt *time.Time) error {
	updates := map[string]any{"status": status}
	if finalizedAt != nil {
		updates["finalized_at"] = *finalizedAt
	}
	res := s.db.WithContext(ctx).Model(&models.Booking{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) UpdateBookingPayload(ctx context.Context, id uint, raw []byte) error {
	res := s.db.WithContext(ctx).Model(&models.Booking{}).Where("id = ?", id).Update("payload", datatypes.JSON(raw))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
