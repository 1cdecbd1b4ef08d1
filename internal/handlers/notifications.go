package handlers

import (
	"context"

	"github.com/adamb00/CAR-RENTER-ADMIN-sub000/internal/service"
	"github.com/adamb00/CAR-RENTER-ADMIN-sub000/internal/store"
)

type NotificationHandler struct {
	notifications *service.NotificationService
}

func NewNotificationHandler(notifications *service.NotificationService) *NotificationHandler {
	return &NotificationHandler{notifications: notifications}
}

type ListNotificationsInput struct {
	State string `query:"state" doc:"active or read; both when empty"`
	Limit int    `query:"limit" default:"50" minimum:"1" maximum:"100"`
}

type NotificationListOutput struct {
	Body []store.NotificationView
}

func (h *NotificationHandler) HandleList(ctx context.Context, input *ListNotificationsInput) (*NotificationListOutput, error) {
	items, err := h.notifications.List(ctx, store.NotificationFilter{State: input.State, Limit: input.Limit})
	if err != nil {
		return nil, toHumaError(err)
	}
	return &NotificationListOutput{Body: items}, nil
}

type UnreadCountOutput struct {
	Body struct {
		Count int64 `json:"count"`
	}
}

func (h *NotificationHandler) HandleUnreadCount(ctx context.Context, _ *struct{}) (*UnreadCountOutput, error) {
	count, err := h.notifications.UnreadCount(ctx)
	if err != nil {
		return nil, toHumaError(err)
	}
	out := &UnreadCountOutput{}
	out.Body.Count = count
	return out, nil
}

func (h *NotificationHandler) HandleMarkRead(ctx context.Context, input *IDInput) (*ActionOutput, error) {
	res, err := h.notifications.MarkRead(ctx, input.ID)
	if err != nil {
		return nil, toHumaError(err)
	}
	return actionOutput(res), nil
}

func (h *NotificationHandler) HandleMarkAllRead(ctx context.Context, _ *struct{}) (*ActionOutput, error) {
	res, err := h.notifications.MarkAllRead(ctx)
	if err != nil {
		return nil, toHumaError(err)
	}
	return actionOutput(res), nil
}

type PromoteOutput struct {
	Body service.PromotionReport
}

func (h *NotificationHandler) HandlePromote(ctx context.Context, _ *struct{}) (*PromoteOutput, error) {
	report, err := h.notifications.Promote(ctx)
	if err != nil {
		return nil, toHumaError(err)
	}
	return &PromoteOutput{Body: report}, nil
}
