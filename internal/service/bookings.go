package service

import (
	"context"
	"fmt"
	"time"

	"github.com/adamb00/CAR-RENTER-ADMIN-sub000/internal/models"
	"github.com/adamb00/CAR-RENTER-ADMIN-sub000/internal/payload"
	"github.com/adamb00/CAR-RENTER-ADMIN-sub000/internal/pricing"
	"github.com/adamb00/CAR-RENTER-ADMIN-sub000/internal/store"
)

type BookingStore interface {
	ListBookings(ctx context.Context, f store.BookingFilter) ([]models.Booking, int64, error)
	GetBooking(ctx context.Context, id uint) (*models.Booking, error)
	UpdateBookingStatus(ctx context.Context, id uint, status models.BookingStatus, finalizedAt *time.Time) error
	UpdateBookingPayload(ctx context.Context, id uint, raw []byte) error
}

type BookingService struct {
	bookings BookingStore
}

func NewBookingService(bookings BookingStore) *BookingService {
	return &BookingService{bookings: bookings}
}

func bookingPaths(id uint) []string {
	return []string{fmt.Sprintf("/bookings/%d", id), "/"}
}

func (s *BookingService) List(ctx context.Context, f store.BookingFilter) ([]store.BookingView, int64, error) {
	rows, total, err := s.bookings.ListBookings(ctx, f)
	if err != nil {
		return nil, 0, unexpected(ctx, "list-bookings", err)
	}
	views := make([]store.BookingView, 0, len(rows))
	for _, b := range rows {
		views = append(views, store.NewBookingView(b))
	}
	return views, total, nil
}

func (s *BookingService) Get(ctx context.Context, id uint) (*store.BookingView, error) {
	b, err := s.bookings.GetBooking(ctx, id)
	if err != nil {
		return nil, lookup(ctx, "get-booking", err, MsgBookingNotFound)
	}
	v := store.NewBookingView(*b)
	return &v, nil
}

func (s *BookingService) currentStatus(action string, id uint) func(context.Context) (models.BookingStatus, error) {
	return func(ctx context.Context) (models.BookingStatus, error) {
		b, err := s.bookings.GetBooking(ctx, id)
		if err != nil {
			return "", lookup(ctx, action, err, MsgBookingNotFound)
		}
		return b.Status, nil
	}
}

// SetRegistered toggles a booking between registered and accepted. Calling
// it for the state the booking is already in writes nothing.
func (s *BookingService) SetRegistered(ctx context.Context, id uint, registered bool) (*Result, error) {
	t := transition[models.BookingStatus]{
		action:     "set-booking-registered",
		current:    s.currentStatus("set-booking-registered", id),
		target:     models.BookingAccepted,
		done:       MsgBookingUnregistered,
		unchanged:  MsgBookingNotRegistered,
		revalidate: bookingPaths(id),
	}
	if registered {
		t.target = models.BookingRegistered
		t.done = MsgBookingRegistered
		t.unchanged = MsgBookingAlreadyRegistered
	}
	t.write = func(ctx context.Context) error {
		return s.bookings.UpdateBookingStatus(ctx, id, t.target, nil)
	}
	return t.run(ctx)
}

func (s *BookingService) UpdateStatus(ctx context.Context, id uint, status string) (*Result, error) {
	target := models.BookingStatus(status)
	if !target.Valid() {
		return nil, fail(ErrValidation, MsgInvalidStatus)
	}
	return transition[models.BookingStatus]{
		action:  "update-booking-status",
		current: s.currentStatus("update-booking-status", id),
		target:  target,
		write: func(ctx context.Context) error {
			return s.bookings.UpdateBookingStatus(ctx, id, target, nil)
		},
		done:       MsgStatusUpdated,
		unchanged:  MsgStatusUnchanged,
		revalidate: bookingPaths(id),
	}.run(ctx)
}

// UpdatePricing replaces the fee overrides stored in the booking payload.
func (s *BookingService) UpdatePricing(ctx context.Context, id uint, fees pricing.Fees) (*Result, error) {
	b, err := s.bookings.GetBooking(ctx, id)
	if err != nil {
		return nil, lookup(ctx, "update-booking-pricing", err, MsgBookingNotFound)
	}
	p, err := payload.ParseBooking(b.Payload)
	if err != nil {
		return nil, fail(ErrInvalidPayload, MsgInvalidPayload)
	}

	p.Pricing = fees.Normalized()
	raw, err := payload.Encode(p)
	if err != nil {
		return nil, fail(ErrInvalidPayload, MsgInvalidPayload)
	}
	if err := s.bookings.UpdateBookingPayload(ctx, id, raw); err != nil {
		return nil, unexpected(ctx, "update-booking-pricing", err)
	}
	return &Result{Message: MsgPricingUpdated, Revalidate: bookingPaths(id)}, nil
}
