package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/adamb00/CAR-RENTER-ADMIN-sub000/internal/models"
	"github.com/adamb00/CAR-RENTER-ADMIN-sub000/internal/store"
	"gorm.io/datatypes"
)

const (
	monthsPerYear = 12
	maxCarImages  = 3
)

type CarStore interface {
	ListCars(ctx context.Context, f store.CarFilter) ([]models.Car, int64, error)
	GetCar(ctx context.Context, id uint) (*models.Car, error)
	PlateTaken(ctx context.Context, plate string, exceptID uint) (bool, error)
	CreateCar(ctx context.Context, car *models.Car) error
	UpdateCar(ctx context.Context, car *models.Car) error
	DeleteCar(ctx context.Context, id uint) error
	ListColors(ctx context.Context) ([]models.Color, error)
	ResolveColors(ctx context.Context, names []string) ([]models.Color, error)
}

// Revalidator asks the public site to rebuild pages. Calls must not block.
type Revalidator interface {
	Notify(paths ...string)
}

type CarService struct {
	cars       CarStore
	revalidate Revalidator
}

func NewCarService(cars CarStore, revalidate Revalidator) *CarService {
	return &CarService{cars: cars, revalidate: revalidate}
}

type CarInput struct {
	Manufacturer  string             `json:"manufacturer" validate:"required,max=100"`
	Model         string             `json:"model" validate:"required,max=100"`
	LicensePlate  string             `json:"licensePlate" validate:"required,max=20"`
	Category      string             `json:"category,omitempty" validate:"max=50"`
	BodyType      string             `json:"bodyType,omitempty" validate:"max=50"`
	Fuel          string             `json:"fuel,omitempty" validate:"max=50"`
	Transmission  string             `json:"transmission,omitempty" validate:"max=50"`
	Seats         int                `json:"seats" validate:"min=0,max=99"`
	Luggage       int                `json:"luggage" validate:"min=0,max=99"`
	Status        models.CarStatus   `json:"status,omitempty"`
	Colors        []string           `json:"colors,omitempty" validate:"max=20,dive,max=50"`
	PricingMode   models.PricingMode `json:"pricingMode,omitempty" validate:"omitempty,oneof=monthly tiered"`
	MonthlyPrices []float64          `json:"monthlyPrices,omitempty" validate:"dive,min=0"`
	DailyTiers    []models.DailyTier `json:"dailyTiers,omitempty"`
	Images        []string           `json:"images,omitempty" validate:"dive,url"`
	Odometer      int                `json:"odometer" validate:"min=0"`
	InspectionDue *time.Time         `json:"inspectionDue,omitempty"`
	ServiceDue    *time.Time         `json:"serviceDue,omitempty"`
	Notes         string             `json:"notes,omitempty" validate:"max=2000"`
}

// check validates the input and reports the first problem as an admin
// facing message.
func (in *CarInput) check() error {
	if len(in.Images) > maxCarImages {
		return fail(ErrValidation, MsgTooManyImage)
	}
	if err := validate.Struct(in); err != nil {
		return fail(fmt.Errorf("%w: %v", ErrValidation, err), MsgInvalidCar)
	}
	if in.Status == "" {
		in.Status = models.CarAvailable
	}
	if !in.Status.Valid() {
		return fail(ErrValidation, MsgInvalidStatus)
	}

	switch in.PricingMode {
	case models.PricingMonthly:
		if len(in.MonthlyPrices) != monthsPerYear {
			return fail(ErrValidation, MsgMonthlyPrice)
		}
		in.DailyTiers = nil
	case models.PricingTiered:
		if len(in.DailyTiers) == 0 {
			return fail(ErrValidation, MsgDailyTiers)
		}
		prev := 0
		for _, tier := range in.DailyTiers {
			if tier.MinDays <= prev || tier.DailyPrice < 0 {
				return fail(ErrValidation, MsgDailyTiers)
			}
			prev = tier.MinDays
		}
		in.MonthlyPrices = nil
	default:
		in.MonthlyPrices = nil
		in.DailyTiers = nil
	}
	return nil
}

func normalizePlate(plate string) string {
	return strings.ToUpper(strings.Join(strings.Fields(plate), ""))
}

func carPaths(id uint) []string {
	return []string{"/cars", fmt.Sprintf("/cars/%d", id)}
}

func (s *CarService) List(ctx context.Context, f store.CarFilter) ([]store.CarView, int64, error) {
	rows, total, err := s.cars.ListCars(ctx, f)
	if err != nil {
		return nil, 0, unexpected(ctx, "list-cars", err)
	}
	views := make([]store.CarView, 0, len(rows))
	for _, c := range rows {
		views = append(views, store.NewCarView(c))
	}
	return views, total, nil
}

func (s *CarService) Get(ctx context.Context, id uint) (*store.CarView, error) {
	car, err := s.cars.GetCar(ctx, id)
	if err != nil {
		return nil, lookup(ctx, "get-car", err, MsgCarNotFound)
	}
	v := store.NewCarView(*car)
	return &v, nil
}

func (s *CarService) Colors(ctx context.Context) ([]models.Color, error) {
	colors, err := s.cars.ListColors(ctx)
	if err != nil {
		return nil, unexpected(ctx, "list-colors", err)
	}
	return colors, nil
}

func (s *CarService) Create(ctx context.Context, in CarInput) (*store.CarView, *Result, error) {
	const action = "create-car"
	car, err := s.build(ctx, action, 0, in)
	if err != nil {
		return nil, nil, err
	}
	if err := s.cars.CreateCar(ctx, car); err != nil {
		if errors.Is(err, ErrConflict) {
			return nil, nil, fail(ErrConflict, MsgPlateTaken)
		}
		return nil, nil, unexpected(ctx, action, err)
	}
	return s.saved(car, MsgCarCreated)
}

func (s *CarService) Update(ctx context.Context, id uint, in CarInput) (*store.CarView, *Result, error) {
	const action = "update-car"
	existing, err := s.cars.GetCar(ctx, id)
	if err != nil {
		return nil, nil, lookup(ctx, action, err, MsgCarNotFound)
	}
	car, err := s.build(ctx, action, id, in)
	if err != nil {
		return nil, nil, err
	}
	car.CreatedAt = existing.CreatedAt
	if err := s.cars.UpdateCar(ctx, car); err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			return nil, nil, fail(ErrNotFound, MsgCarNotFound)
		case errors.Is(err, ErrConflict):
			return nil, nil, fail(ErrConflict, MsgPlateTaken)
		}
		return nil, nil, unexpected(ctx, action, err)
	}
	return s.saved(car, MsgCarUpdated)
}

func (s *CarService) Delete(ctx context.Context, id uint) (*Result, error) {
	if err := s.cars.DeleteCar(ctx, id); err != nil {
		return nil, lookup(ctx, "delete-car", err, MsgCarNotFound)
	}
	s.notify(id)
	return &Result{Message: MsgCarDeleted, Revalidate: carPaths(id)}, nil
}

func (s *CarService) build(ctx context.Context, action string, id uint, in CarInput) (*models.Car, error) {
	in.LicensePlate = normalizePlate(in.LicensePlate)
	if err := in.check(); err != nil {
		return nil, err
	}

	taken, err := s.cars.PlateTaken(ctx, in.LicensePlate, id)
	if err != nil {
		return nil, unexpected(ctx, action, err)
	}
	if taken {
		return nil, fail(ErrConflict, MsgPlateTaken)
	}

	colors, err := s.cars.ResolveColors(ctx, in.Colors)
	if err != nil {
		return nil, unexpected(ctx, action, err)
	}

	return &models.Car{
		ID:            id,
		Manufacturer:  strings.TrimSpace(in.Manufacturer),
		ModelName:     strings.TrimSpace(in.Model),
		LicensePlate:  in.LicensePlate,
		Category:      in.Category,
		BodyType:      in.BodyType,
		Fuel:          in.Fuel,
		Transmission:  in.Transmission,
		Seats:         in.Seats,
		Luggage:       in.Luggage,
		Status:        in.Status,
		Colors:        colors,
		PricingMode:   in.PricingMode,
		MonthlyPrices: datatypes.NewJSONSlice(in.MonthlyPrices),
		DailyTiers:    datatypes.NewJSONSlice(in.DailyTiers),
		Images:        datatypes.NewJSONSlice(in.Images),
		Odometer:      in.Odometer,
		InspectionDue: in.InspectionDue,
		ServiceDue:    in.ServiceDue,
		Notes:         in.Notes,
	}, nil
}

func (s *CarService) saved(car *models.Car, message string) (*store.CarView, *Result, error) {
	s.notify(car.ID)
	v := store.NewCarView(*car)
	return &v, &Result{Message: message, Revalidate: carPaths(car.ID)}, nil
}

func (s *CarService) notify(id uint) {
	if s.revalidate != nil {
		s.revalidate.Notify(carPaths(id)...)
	}
}
