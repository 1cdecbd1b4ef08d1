package models

import (
	"time"
)

type NotificationType string

const (
	NotificationRentRequest  NotificationType = "rent_request"
	NotificationRentUpdate   NotificationType = "rent_update"
	NotificationQuoteRequest NotificationType = "quote_request"
	NotificationBookingForm  NotificationType = "booking_form"
	NotificationSystem       NotificationType = "system"
)

// NotificationState replaces the old overloaded read flag. Pending rows are
// scheduled reminders, fired rows have been promoted, active rows are shown
// in the dashboard until read.
type NotificationState string

const (
	NotificationPending NotificationState = "pending"
	NotificationFired   NotificationState = "fired"
	NotificationActive  NotificationState = "active"
	NotificationRead    NotificationState = "read"
)

type Tone string

const (
	ToneInfo    Tone = "info"
	ToneWarning Tone = "warning"
	ToneDanger  Tone = "danger"
)

type Notification struct {
	ID          uint             `gorm:"primarykey"`
	EventKey    string           `gorm:"uniqueIndex;size:255"`
	Type        NotificationType `gorm:"index"`
	Title       string
	Description string
	Href        string
	Tone        Tone              `gorm:"default:info"`
	State       NotificationState `gorm:"index;default:active"`
	NotifyAt    *time.Time        `gorm:"index"`
	ReadAt      *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// AllModels lists every model for migrations.
func AllModels() []any {
	return []any{
		&Admin{},
		&APIKey{},
		&Color{},
		&Car{},
		&Quote{},
		&Booking{},
		&Notification{},
	}
}
