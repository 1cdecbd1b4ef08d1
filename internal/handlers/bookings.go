package handlers

import (
	"context"

	"github.com/adamb00/CAR-RENTER-ADMIN-sub000/internal/pricing"
	"github.com/adamb00/CAR-RENTER-ADMIN-sub000/internal/service"
	"github.com/adamb00/CAR-RENTER-ADMIN-sub000/internal/store"
)

type BookingHandler struct {
	bookings *service.BookingService
	email    *service.EmailService
}

func NewBookingHandler(bookings *service.BookingService, email *service.EmailService) *BookingHandler {
	return &BookingHandler{bookings: bookings, email: email}
}

type ListBookingsInput struct {
	ListParams
}

type BookingListOutput struct {
	Body struct {
		ListMeta
		Items []store.BookingView `json:"items"`
	}
}

func (h *BookingHandler) HandleList(ctx context.Context, input *ListBookingsInput) (*BookingListOutput, error) {
	items, total, err := h.bookings.List(ctx, store.BookingFilter{
		Query:  input.Query,
		Status: input.Status,
		Sort:   input.Sort,
		Order:  input.Order,
		Page:   input.page(),
	})
	if err != nil {
		return nil, toHumaError(err)
	}
	out := &BookingListOutput{}
	out.Body.ListMeta = input.meta(total)
	out.Body.Items = items
	return out, nil
}

type BookingOutput struct {
	Body *store.BookingView
}

func (h *BookingHandler) HandleGet(ctx context.Context, input *IDInput) (*BookingOutput, error) {
	view, err := h.bookings.Get(ctx, input.ID)
	if err != nil {
		return nil, toHumaError(err)
	}
	return &BookingOutput{Body: view}, nil
}

type SetRegisteredInput struct {
	ID   uint `path:"id" minimum:"1"`
	Body struct {
		Registered bool `json:"registered" doc:"Whether the rental is registered in the fleet system"`
	}
}

func (h *BookingHandler) HandleSetRegistered(ctx context.Context, input *SetRegisteredInput) (*ActionOutput, error) {
	res, err := h.bookings.SetRegistered(ctx, input.ID, input.Body.Registered)
	if err != nil {
		return nil, toHumaError(err)
	}
	return actionOutput(res), nil
}

type StatusInput struct {
	ID   uint `path:"id" minimum:"1"`
	Body struct {
		Status string `json:"status" minLength:"1"`
	}
}

func (h *BookingHandler) HandleUpdateStatus(ctx context.Context, input *StatusInput) (*ActionOutput, error) {
	res, err := h.bookings.UpdateStatus(ctx, input.ID, input.Body.Status)
	if err != nil {
		return nil, toHumaError(err)
	}
	return actionOutput(res), nil
}

type UpdatePricingInput struct {
	ID   uint `path:"id" minimum:"1"`
	Body pricing.Fees
}

func (h *BookingHandler) HandleUpdatePricing(ctx context.Context, input *UpdatePricingInput) (*ActionOutput, error) {
	res, err := h.bookings.UpdatePricing(ctx, input.ID, input.Body)
	if err != nil {
		return nil, toHumaError(err)
	}
	return actionOutput(res), nil
}

func (h *BookingHandler) HandleSendFinalization(ctx context.Context, input *IDInput) (*ActionOutput, error) {
	res, err := h.email.SendFinalization(ctx, input.ID)
	if err != nil {
		return nil, toHumaError(err)
	}
	return actionOutput(res), nil
}

type PreviewOutput struct {
	Body *service.Preview
}

func (h *BookingHandler) HandlePreviewFinalization(ctx context.Context, input *IDInput) (*PreviewOutput, error) {
	preview, err := h.email.PreviewFinalization(ctx, input.ID)
	if err != nil {
		return nil, toHumaError(err)
	}
	return &PreviewOutput{Body: preview}, nil
}
