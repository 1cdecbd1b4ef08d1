package handlers

import (
	"context"

	"github.com/adamb00/CAR-RENTER-ADMIN-sub000/internal/models"
	"github.com/adamb00/CAR-RENTER-ADMIN-sub000/internal/service"
	"github.com/adamb00/CAR-RENTER-ADMIN-sub000/internal/store"
)

type CarHandler struct {
	cars *service.CarService
}

func NewCarHandler(cars *service.CarService) *CarHandler {
	return &CarHandler{cars: cars}
}

type ListCarsInput struct {
	ListParams
}

type CarListOutput struct {
	Body struct {
		ListMeta
		Items []store.CarView `json:"items"`
	}
}

func (h *CarHandler) HandleList(ctx context.Context, input *ListCarsInput) (*CarListOutput, error) {
	items, total, err := h.cars.List(ctx, store.CarFilter{
		Query:  input.Query,
		Status: input.Status,
		Sort:   input.Sort,
		Order:  input.Order,
		Page:   input.page(),
	})
	if err != nil {
		return nil, toHumaError(err)
	}
	out := &CarListOutput{}
	out.Body.ListMeta = input.meta(total)
	out.Body.Items = items
	return out, nil
}

type CarOutput struct {
	Body *store.CarView
}

func (h *CarHandler) HandleGet(ctx context.Context, input *IDInput) (*CarOutput, error) {
	view, err := h.cars.Get(ctx, input.ID)
	if err != nil {
		return nil, toHumaError(err)
	}
	return &CarOutput{Body: view}, nil
}

type CreateCarInput struct {
	Body service.CarInput
}

type UpdateCarInput struct {
	ID   uint `path:"id" minimum:"1"`
	Body service.CarInput
}

type CarSavedOutput struct {
	Body struct {
		ActionBody
		Car *store.CarView `json:"car"`
	}
}

func carSaved(view *store.CarView, res *service.Result) *CarSavedOutput {
	out := &CarSavedOutput{}
	out.Body.ActionBody = actionOutput(res).Body
	out.Body.Car = view
	return out
}

func (h *CarHandler) HandleCreate(ctx context.Context, input *CreateCarInput) (*CarSavedOutput, error) {
	view, res, err := h.cars.Create(ctx, input.Body)
	if err != nil {
		return nil, toHumaError(err)
	}
	return carSaved(view, res), nil
}

func (h *CarHandler) HandleUpdate(ctx context.Context, input *UpdateCarInput) (*CarSavedOutput, error) {
	view, res, err := h.cars.Update(ctx, input.ID, input.Body)
	if err != nil {
		return nil, toHumaError(err)
	}
	return carSaved(view, res), nil
}

func (h *CarHandler) HandleDelete(ctx context.Context, input *IDInput) (*ActionOutput, error) {
	res, err := h.cars.Delete(ctx, input.ID)
	if err != nil {
		return nil, toHumaError(err)
	}
	return actionOutput(res), nil
}

type ColorsOutput struct {
	Body []models.Color
}

func (h *CarHandler) HandleColors(ctx context.Context, _ *struct{}) (*ColorsOutput, error) {
	colors, err := h.cars.Colors(ctx)
	if err != nil {
		return nil, toHumaError(err)
	}
	if colors == nil {
		colors = []models.Color{}
	}
	return &ColorsOutput{Body: colors}, nil
}
