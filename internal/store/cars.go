package store

import (
	"context"
	"strings"

	"github.com/adamb00/CAR-RENTER-ADMIN-sub000/internal/models"
	"gorm.io/gorm"
)

type CarFilter struct {
	Query  string
	Status string
	Sort   string
	Order  string
	Page
}

var carSortColumns = map[string]string{
	"createdAt":    "created_at",
	"manufacturer": "manufacturer",
	"model":        "model",
	"licensePlate": "license_plate",
	"status":       "status",
	"odometer":     "odometer",
}

func (s *Store) ListCars(ctx context.Context, f CarFilter) ([]models.Car, int64, error) {
	q := s.db.WithContext(ctx).Model(&models.Car{})
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if strings.TrimSpace(f.Query) != "" {
		like := likePattern(f.Query)
		q = q.Where("LOWER(manufacturer) LIKE ? OR LOWER(model) LIKE ? OR LOWER(license_plate) LIKE ?", like, like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	limit, offset := f.limitOffset()
	var cars []models.Car
	err := q.Preload("Colors").
		Order(orderBy(carSortColumns, f.Sort, f.Order, "created_at DESC")).
		Limit(limit).Offset(offset).
		Find(&cars).Error
	if err != nil {
		return nil, 0, err
	}
	return cars, total, nil
}

func (s *Store) GetCar(ctx context.Context, id uint) (*models.Car, error) {
	var car models.Car
	if err := s.db.WithContext(ctx).Preload("Colors").First(&car, id).Error; err != nil {
		return nil, translate(err)
	}
	return &car, nil
}

// PlateTaken reports whether another car already uses the plate.
func (s *Store) PlateTaken(ctx context.Context, plate string, exceptID uint) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.Car{}).
		Where("UPPER(license_plate) = ? AND id <> ?", strings.ToUpper(plate), exceptID).
		Count(&count).Error
	return count > 0, err
}

func (s *Store) CreateCar(ctx context.Context, car *models.Car) error {
	return translate(s.db.WithContext(ctx).Create(car).Error)
}

// UpdateCar saves every column and replaces the color set.
func (s *Store) UpdateCar(ctx context.Context, car *models.Car) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Car{}).Where("id = ?", car.ID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return ErrNotFound
		}
		if err := tx.Omit("Colors").Save(car).Error; err != nil {
			return err
		}
		return tx.Model(car).Association("Colors").Replace(car.Colors)
	})
	return translate(err)
}

// DeleteCar removes the car and its color links.
func (s *Store) DeleteCar(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Select("Colors").Delete(&models.Car{ID: id})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) ListColors(ctx context.Context) ([]models.Color, error) {
	var colors []models.Color
	err := s.db.WithContext(ctx).Order("name ASC").Find(&colors).Error
	return colors, err
}

// ResolveColors returns the colors with the given names, creating missing ones.
func (s *Store) ResolveColors(ctx context.Context, names []string) ([]models.Color, error) {
	seen := make(map[string]bool, len(names))
	var colors []models.Color
	for _, name := range names {
		name = strings.TrimSpace(name)
		key := strings.ToLower(name)
		if name == "" || seen[key] {
			continue
		}
		seen[key] = true

		var c models.Color
		if err := s.db.WithContext(ctx).Where(models.Color{Name: name}).FirstOrCreate(&c).Error; err != nil {
			return nil, err
		}
		colors = append(colors, c)
	}
	return colors, nil
}
