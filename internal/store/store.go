// Package store is the data access layer: gorm queries in, typed view models out.
package store

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

var (
	ErrNotFound = errors.New("record not found")
	ErrConflict = errors.New("record already exists")
)

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrConflict
	}
	return err
}

// Page selects a window of a listing. Pages are 1-based.
type Page struct {
	Page     int
	PageSize int
}

const (
	defaultPageSize = 25
	maxPageSize     = 100
)

func (p Page) limitOffset() (int, int) {
	size := p.PageSize
	if size <= 0 {
		size = defaultPageSize
	}
	if size > maxPageSize {
		size = maxPageSize
	}
	page := p.Page
	if page < 1 {
		page = 1
	}
	return size, (page - 1) * size
}

// orderBy resolves a client sort key against an allow list.
func orderBy(columns map[string]string, sort, order, fallback string) string {
	col, ok := columns[sort]
	if !ok {
		return fallback
	}
	if strings.EqualFold(order, "asc") {
		return col + " ASC"
	}
	return col + " DESC"
}

func likePattern(q string) string {
	q = strings.ToLower(strings.TrimSpace(q))
	q = strings.NewReplacer("%", "", "_", "").Replace(q)
	return "%" + q + "%"
}
