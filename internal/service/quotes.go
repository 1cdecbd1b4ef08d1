package service

import (
	"context"
	"fmt"

	"github.com/adamb00/CAR-RENTER-ADMIN-sub000/internal/models"
	"github.com/adamb00/CAR-RENTER-ADMIN-sub000/internal/store"
)

type QuoteStore interface {
	ListQuotes(ctx context.Context, f store.QuoteFilter) ([]models.Quote, int64, error)
	GetQuote(ctx context.Context, id uint) (*models.Quote, error)
	UpdateQuoteStatus(ctx context.Context, id uint, status models.QuoteStatus) error
}

type QuoteService struct {
	quotes QuoteStore
}

func NewQuoteService(quotes QuoteStore) *QuoteService {
	return &QuoteService{quotes: quotes}
}

func quotePaths(id uint) []string {
	return []string{fmt.Sprintf("/quotes/%d", id), "/"}
}

func (s *QuoteService) List(ctx context.Context, f store.QuoteFilter) ([]store.QuoteView, int64, error) {
	rows, total, err := s.quotes.ListQuotes(ctx, f)
	if err != nil {
		return nil, 0, unexpected(ctx, "list-quotes", err)
	}
	views := make([]store.QuoteView, 0, len(rows))
	for _, q := range rows {
		views = append(views, store.NewQuoteView(q))
	}
	return views, total, nil
}

func (s *QuoteService) Get(ctx context.Context, id uint) (*store.QuoteView, error) {
	q, err := s.quotes.GetQuote(ctx, id)
	if err != nil {
		return nil, lookup(ctx, "get-quote", err, MsgQuoteNotFound)
	}
	v := store.NewQuoteView(*q)
	return &v, nil
}

// UpdateStatus moves a quote along its workflow. Legacy spellings are
// accepted; moving backwards or out of a closed quote is rejected.
func (s *QuoteService) UpdateStatus(ctx context.Context, id uint, status string) (*Result, error) {
	target, ok := models.NormalizeQuoteStatus(status)
	if !ok {
		return nil, fail(ErrValidation, MsgInvalidStatus)
	}
	return transition[models.QuoteStatus]{
		action: "update-quote-status",
		current: func(ctx context.Context) (models.QuoteStatus, error) {
			q, err := s.quotes.GetQuote(ctx, id)
			if err != nil {
				return "", lookup(ctx, "update-quote-status", err, MsgQuoteNotFound)
			}
			from, _ := models.NormalizeQuoteStatus(string(q.Status))
			return from, nil
		},
		target:   target,
		allowed:  func(from models.QuoteStatus) bool { return from.CanMoveTo(target) },
		rejected: MsgStatusBackwards,
		write: func(ctx context.Context) error {
			return s.quotes.UpdateQuoteStatus(ctx, id, target)
		},
		done:       MsgStatusUpdated,
		unchanged:  MsgStatusUnchanged,
		revalidate: quotePaths(id),
	}.run(ctx)
}
