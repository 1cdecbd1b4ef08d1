package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/adamb00/CAR-RENTER-ADMIN-sub000/internal/models"
	"github.com/adamb00/CAR-RENTER-ADMIN-sub000/internal/payload"
	"github.com/adamb00/CAR-RENTER-ADMIN-sub000/internal/pricing"
	"github.com/adamb00/CAR-RENTER-ADMIN-sub000/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

type mockBookingStore struct {
	mock.Mock
}

func (m *mockBookingStore) ListBookings(ctx context.Context, f store.BookingFilter) ([]models.Booking, int64, error) {
	args := m.Called(ctx, f)
	rows, _ := args.Get(0).([]models.Booking)
	return rows, args.Get(1).(int64), args.Error(2)
}

func (m *mockBookingStore) GetBooking(ctx context.Context, id uint) (*models.Booking, error) {
	args := m.Called(ctx, id)
	b, _ := args.Get(0).(*models.Booking)
	return b, args.Error(1)
}

func (m *mockBookingStore) UpdateBookingStatus(ctx context.Context, id uint, status models.BookingStatus, finalizedAt *time.Time) error {
	return m.Called(ctx, id, status, finalizedAt).Error(0)
}

func (m *mockBookingStore) UpdateBookingPayload(ctx context.Context, id uint, raw []byte) error {
	return m.Called(ctx, id, raw).Error(0)
}

func TestSetRegisteredWritesOnlyOnChange(t *testing.T) {
	ctx := context.Background()
	booking := &models.Booking{Status: models.BookingAccepted}
	booking.ID = 7

	m := &mockBookingStore{}
	m.On("GetBooking", ctx, uint(7)).Return(booking, nil)
	m.On("UpdateBookingStatus", ctx, uint(7), models.BookingRegistered, mock.Anything).
		Run(func(args mock.Arguments) { booking.Status = args.Get(2).(models.BookingStatus) }).
		Return(nil)

	svc := NewBookingService(m)

	res, err := svc.SetRegistered(ctx, 7, true)
	require.NoError(t, err)
	assert.Equal(t, MsgBookingRegistered, res.Message)
	assert.Equal(t, []string{"/bookings/7", "/"}, res.Revalidate)

	res, err = svc.SetRegistered(ctx, 7, true)
	require.NoError(t, err)
	assert.Equal(t, MsgBookingAlreadyRegistered, res.Message)
	assert.Empty(t, res.Revalidate)

	m.AssertNumberOfCalls(t, "UpdateBookingStatus", 1)
	m.AssertNumberOfCalls(t, "GetBooking", 2)
}

func TestSetRegisteredOnRegisteredBookingNeverWrites(t *testing.T) {
	ctx := context.Background()
	booking := &models.Booking{Status: models.BookingRegistered}

	m := &mockBookingStore{}
	m.On("GetBooking", ctx, uint(3)).Return(booking, nil)
	svc := NewBookingService(m)

	for i := 0; i < 2; i++ {
		res, err := svc.SetRegistered(ctx, 3, true)
		require.NoError(t, err)
		assert.Equal(t, MsgBookingAlreadyRegistered, res.Message)
	}
	m.AssertNotCalled(t, "UpdateBookingStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestSetRegisteredFalse(t *testing.T) {
	ctx := context.Background()
	m := &mockBookingStore{}
	m.On("GetBooking", ctx, uint(1)).Return(&models.Booking{Status: models.BookingRegistered}, nil).Once()
	m.On("GetBooking", ctx, uint(2)).Return(&models.Booking{Status: models.BookingAccepted}, nil).Once()
	m.On("UpdateBookingStatus", ctx, uint(1), models.BookingAccepted, mock.Anything).Return(nil).Once()
	svc := NewBookingService(m)

	res, err := svc.SetRegistered(ctx, 1, false)
	require.NoError(t, err)
	assert.Equal(t, MsgBookingUnregistered, res.Message)

	res, err = svc.SetRegistered(ctx, 2, false)
	require.NoError(t, err)
	assert.Equal(t, MsgBookingNotRegistered, res.Message)

	m.AssertExpectations(t)
}

func TestSetRegisteredErrors(t *testing.T) {
	ctx := context.Background()
	m := &mockBookingStore{}
	m.On("GetBooking", ctx, uint(404)).Return(nil, store.ErrNotFound)
	m.On("GetBooking", ctx, uint(500)).Return(nil, errors.New("connection refused"))
	m.On("GetBooking", ctx, uint(9)).Return(&models.Booking{Status: models.BookingAccepted}, nil)
	m.On("UpdateBookingStatus", ctx, uint(9), mock.Anything, mock.Anything).Return(errors.New("deadlock"))
	svc := NewBookingService(m)

	_, err := svc.SetRegistered(ctx, 404, true)
	requireActionError(t, err, ErrNotFound, MsgBookingNotFound)

	_, err = svc.SetRegistered(ctx, 500, true)
	require.Error(t, err)
	assert.Equal(t, MsgUnexpected, err.Error())

	_, err = svc.SetRegistered(ctx, 9, true)
	require.Error(t, err)
	assert.Equal(t, MsgUnexpected, err.Error())
}

func TestUpdateBookingStatus(t *testing.T) {
	ctx := context.Background()
	s, db := newTestStore(t)
	b := models.Booking{Code: "RR-1", Status: models.BookingNew}
	require.NoError(t, db.Create(&b).Error)
	svc := NewBookingService(s)

	_, err := svc.UpdateStatus(ctx, b.ID, "teleported")
	requireActionError(t, err, ErrValidation, MsgInvalidStatus)

	res, err := svc.UpdateStatus(ctx, b.ID, "cancelled")
	require.NoError(t, err)
	assert.Equal(t, MsgStatusUpdated, res.Message)

	res, err = svc.UpdateStatus(ctx, b.ID, "cancelled")
	require.NoError(t, err)
	assert.Equal(t, MsgStatusUnchanged, res.Message)

	got, err := s.GetBooking(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingCancelled, got.Status)
}

func TestUpdateBookingPricing(t *testing.T) {
	ctx := context.Background()
	s, db := newTestStore(t)
	good := models.Booking{Code: "RR-1", Payload: datatypes.JSON(`{"driver":{"name":"Anna"},"pricing":{"rentalFee":"100"}}`)}
	bad := models.Booking{Code: "RR-2", Payload: datatypes.JSON(`[1,2,3]`)}
	require.NoError(t, db.Create(&good).Error)
	require.NoError(t, db.Create(&bad).Error)
	svc := NewBookingService(s)

	res, err := svc.UpdatePricing(ctx, good.ID, pricing.Fees{RentalFee: " 250 ", Deposit: "300"})
	require.NoError(t, err)
	assert.Equal(t, MsgPricingUpdated, res.Message)

	got, err := s.GetBooking(ctx, good.ID)
	require.NoError(t, err)
	p, err := payload.ParseBooking(got.Payload)
	require.NoError(t, err)
	assert.Equal(t, pricing.Amount("250"), p.Pricing.RentalFee)
	assert.Equal(t, pricing.Amount("300"), p.Pricing.Deposit)
	assert.Equal(t, "Anna", p.Driver.Name)

	_, err = svc.UpdatePricing(ctx, bad.ID, pricing.Fees{RentalFee: "1"})
	requireActionError(t, err, ErrInvalidPayload, MsgInvalidPayload)

	_, err = svc.UpdatePricing(ctx, 999, pricing.Fees{})
	requireActionError(t, err, ErrNotFound, MsgBookingNotFound)
}

func TestListBookingsQuarantinesMalformedPayloads(t *testing.T) {
	ctx := context.Background()
	s, db := newTestStore(t)
	require.NoError(t, db.Create(&models.Booking{Code: "RR-1", Payload: datatypes.JSON(`"oops"`)}).Error)
	svc := NewBookingService(s)

	views, total, err := svc.List(ctx, store.BookingFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, views, 1)
	assert.Nil(t, views[0].Payload)
	assert.NotEmpty(t, views[0].PayloadError)
}
