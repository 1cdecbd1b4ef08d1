package store

import (
	"context"
	"strings"

	"github.com/adamb00/CAR-RENTER-ADMIN-sub000/internal/models"
	"gorm.io/datatypes"
)

type QuoteFilter struct {
	Query  string
	Status string
	Sort   string
	Order  string
	Page
}

var quoteSortColumns = map[string]string{
	"createdAt":   "created_at",
	"rentalStart": "rental_start",
	"status":      "status",
	"code":        "code",
	"name":        "name",
}

func (s *Store) ListQuotes(ctx context.Context, f QuoteFilter) ([]models.Quote, int64, error) {
	q := s.db.WithContext(ctx).Model(&models.Quote{})
	if f.Status != "" {
		if st, ok := models.NormalizeQuoteStatus(f.Status); ok {
			q = q.Where("status IN ?", models.QuoteStatusSpellings(st))
		} else {
			q = q.Where("status = ?", f.Status)
		}
	}
	if strings.TrimSpace(f.Query) != "" {
		like := likePattern(f.Query)
		q = q.Where("LOWER(code) LIKE ? OR LOWER(name) LIKE ? OR LOWER(email) LIKE ?", like, like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	limit, offset := f.limitOffset()
	var quotes []models.Quote
	err := q.Order(orderBy(quoteSortColumns, f.Sort, f.Order, "created_at DESC")).
		Limit(limit).Offset(offset).
		Find(&quotes).Error
	if err != nil {
		return nil, 0, err
	}
	return quotes, total, nil
}

func (s *Store) GetQuote(ctx context.Context, id uint) (*models.Quote, error) {
	var q models.Quote
	if err := s.db.WithContext(ctx).First(&q, id).Error; err != nil {
		return nil, translate(err)
	}
	return &q, nil
}

func (s *Store) UpdateQuoteStatus(ctx context.Context, id uint, status models.QuoteStatus) error {
	res := s.db.WithContext(ctx).Model(&models.Quote{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// SaveBookingRequest stores the snapshot sent to the customer together with
// the quote's new status.
func (s *Store) SaveBookingRequest(ctx context.Context, id uint, raw []byte, status models.QuoteStatus) error {
	res := s.db.WithContext(ctx).Model(&models.Quote{}).Where("id = ?", id).Updates(map[string]any{
		"booking_request_data": datatypes.JSON(raw),
		"status":               status,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
