package handlers

import (
	"context"

	"github.com/adamb00/CAR-RENTER-ADMIN-sub000/internal/service"
	"github.com/adamb00/CAR-RENTER-ADMIN-sub000/internal/store"
)

type QuoteHandler struct {
	quotes *service.QuoteService
	email  *service.EmailService
}

func NewQuoteHandler(quotes *service.QuoteService, email *service.EmailService) *QuoteHandler {
	return &QuoteHandler{quotes: quotes, email: email}
}

type ListQuotesInput struct {
	ListParams
}

type QuoteListOutput struct {
	Body struct {
		ListMeta
		Items []store.QuoteView `json:"items"`
	}
}

func (h *QuoteHandler) HandleList(ctx context.Context, input *ListQuotesInput) (*QuoteListOutput, error) {
	items, total, err := h.quotes.List(ctx, store.QuoteFilter{
		Query:  input.Query,
		Status: input.Status,
		Sort:   input.Sort,
		Order:  input.Order,
		Page:   input.page(),
	})
	if err != nil {
		return nil, toHumaError(err)
	}
	out := &QuoteListOutput{}
	out.Body.ListMeta = input.meta(total)
	out.Body.Items = items
	return out, nil
}

type QuoteOutput struct {
	Body *store.QuoteView
}

func (h *QuoteHandler) HandleGet(ctx context.Context, input *IDInput) (*QuoteOutput, error) {
	view, err := h.quotes.Get(ctx, input.ID)
	if err != nil {
		return nil, toHumaError(err)
	}
	return &QuoteOutput{Body: view}, nil
}

func (h *QuoteHandler) HandleUpdateStatus(ctx context.Context, input *StatusInput) (*ActionOutput, error) {
	res, err := h.quotes.UpdateStatus(ctx, input.ID, input.Body.Status)
	if err != nil {
		return nil, toHumaError(err)
	}
	return actionOutput(res), nil
}

type BookingRequestEmailInput struct {
	ID   uint `path:"id" minimum:"1"`
	Body service.BookingRequestInput
}

func (h *QuoteHandler) HandleSendBookingRequest(ctx context.Context, input *BookingRequestEmailInput) (*ActionOutput, error) {
	res, err := h.email.SendBookingRequest(ctx, input.ID, input.Body)
	if err != nil {
		return nil, toHumaError(err)
	}
	return actionOutput(res), nil
}

func (h *QuoteHandler) HandlePreviewBookingRequest(ctx context.Context, input *BookingRequestEmailInput) (*PreviewOutput, error) {
	preview, err := h.email.PreviewBookingRequest(ctx, input.ID, input.Body)
	if err != nil {
		return nil, toHumaError(err)
	}
	return &PreviewOutput{Body: preview}, nil
}
