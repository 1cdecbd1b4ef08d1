package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type BookingStatus string

const (
	BookingNew           BookingStatus = "new"
	BookingFormSubmitted BookingStatus = "form_submitted"
	BookingAccepted      BookingStatus = "accepted"
	BookingRegistered    BookingStatus = "registered"
	BookingCancelled     BookingStatus = "cancelled"
)

var bookingStatuses = map[BookingStatus]bool{
	BookingNew:           true,
	BookingFormSubmitted: true,
	BookingAccepted:      true,
	BookingRegistered:    true,
	BookingCancelled:     true,
}

func (s BookingStatus) Valid() bool {
	return bookingStatuses[s]
}

// Booking is a rent request. Bookings are never deleted.
type Booking struct {
	gorm.Model
	Code         string `gorm:"uniqueIndex"`
	Locale       string
	CarID        *uint `gorm:"index"`
	QuoteID      *uint `gorm:"index"`
	ContactName  string
	ContactEmail string
	ContactPhone string
	RentalStart  time.Time
	RentalEnd    time.Time
	Status       BookingStatus `gorm:"index;default:new"`
	Payload      datatypes.JSON
	FinalizedAt  *time.Time
}
