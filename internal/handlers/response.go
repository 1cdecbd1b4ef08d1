package handlers

import (
	"errors"

	"github.com/adamb00/CAR-RENTER-ADMIN-sub000/internal/logger"
	"github.com/adamb00/CAR-RENTER-ADMIN-sub000/internal/service"
	"github.com/adamb00/CAR-RENTER-ADMIN-sub000/internal/store"
	"github.com/danielgtaylor/huma/v2"
)

// ActionBody is the reply of every mutating endpoint.
type ActionBody struct {
	Success    bool     `json:"success"`
	Message    string   `json:"message"`
	Warning    string   `json:"warning,omitempty" doc:"Set when the main step succeeded but a follow-up write failed"`
	Revalidate []string `json:"revalidate,omitempty" doc:"Admin views whose data changed"`
}

type ActionOutput struct {
	Body ActionBody
}

func actionOutput(res *service.Result) *ActionOutput {
	return &ActionOutput{Body: ActionBody{
		Success:    true,
		Message:    res.Message,
		Warning:    res.Warning,
		Revalidate: res.Revalidate,
	}}
}

// toHumaError maps service errors to HTTP errors. Only the admin facing
// message is exposed.
func toHumaError(err error) error {
	msg := service.MsgUnexpected
	var ae *service.ActionError
	if errors.As(err, &ae) {
		msg = ae.Message
	} else {
		logger.Error("unclassified handler error", "error", err)
	}

	switch {
	case errors.Is(err, service.ErrNotFound):
		return huma.Error404NotFound(msg)
	case errors.Is(err, service.ErrInvalidPayload):
		return huma.Error422UnprocessableEntity(msg)
	case errors.Is(err, service.ErrValidation):
		return huma.Error400BadRequest(msg)
	case errors.Is(err, service.ErrConflict):
		return huma.Error409Conflict(msg)
	case errors.Is(err, service.ErrMailNotConfigured):
		return huma.Error503ServiceUnavailable(msg)
	}
	return huma.Error500InternalServerError(msg)
}

// IDInput addresses a single record.
type IDInput struct {
	ID uint `path:"id" minimum:"1"`
}

// ListParams are the table controls shared by every listing.
type ListParams struct {
	Query    string `query:"q" doc:"Free text search"`
	Status   string `query:"status"`
	Sort     string `query:"sort" default:"createdAt"`
	Order    string `query:"order" default:"desc" enum:"asc,desc"`
	Page     int    `query:"page" default:"1" minimum:"1"`
	PageSize int    `query:"pageSize" default:"25" minimum:"1" maximum:"100"`
}

func (p ListParams) page() store.Page {
	return store.Page{Page: p.Page, PageSize: p.PageSize}
}

type ListMeta struct {
	Total    int64 `json:"total"`
	Page     int   `json:"page"`
	PageSize int   `json:"pageSize"`
}

func (p ListParams) meta(total int64) ListMeta {
	return ListMeta{Total: total, Page: p.Page, PageSize: p.PageSize}
}
