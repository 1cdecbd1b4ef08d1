package store

import (
	"time"

	"github.com/adamb00/CAR-RENTER-ADMIN-sub000/internal/models"
	"github.com/adamb00/CAR-RENTER-ADMIN-sub000/internal/payload"
)

type BookingView struct {
	ID           uint                 `json:"id"`
	Code         string               `json:"code"`
	Locale       string               `json:"locale"`
	CarID        *uint                `json:"carId,omitempty"`
	QuoteID      *uint                `json:"quoteId,omitempty"`
	ContactName  string               `json:"contactName"`
	ContactEmail string               `json:"contactEmail"`
	ContactPhone string               `json:"contactPhone,omitempty"`
	RentalStart  time.Time            `json:"rentalStart"`
	RentalEnd    time.Time            `json:"rentalEnd"`
	Status       models.BookingStatus `json:"status"`
	Payload      *payload.Booking     `json:"payload,omitempty"`
	PayloadError string               `json:"payloadError,omitempty"`
	FinalizedAt  *time.Time           `json:"finalizedAt,omitempty"`
	CreatedAt    time.Time            `json:"createdAt"`
	UpdatedAt    time.Time            `json:"updatedAt"`
}

// NewBookingView parses the stored payload. A malformed payload is kept out
// of the view and reported in PayloadError.
func NewBookingView(b models.Booking) BookingView {
	v := BookingView{
		ID:           b.ID,
		Code:         b.Code,
		Locale:       b.Locale,
		CarID:        b.CarID,
		QuoteID:      b.QuoteID,
		ContactName:  b.ContactName,
		ContactEmail: b.ContactEmail,
		ContactPhone: b.ContactPhone,
		RentalStart:  b.RentalStart,
		RentalEnd:    b.RentalEnd,
		Status:       b.Status,
		FinalizedAt:  b.FinalizedAt,
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.UpdatedAt,
	}
	p, err := payload.ParseBooking(b.Payload)
	if err != nil {
		v.PayloadError = err.Error()
	} else {
		v.Payload = p
	}
	return v
}

type QuoteView struct {
	ID                  uint                    `json:"id"`
	Code                string                  `json:"code"`
	Name                string                  `json:"name"`
	Email               string                  `json:"email"`
	Phone               string                  `json:"phone,omitempty"`
	Locale              string                  `json:"locale"`
	CarID               *uint                   `json:"carId,omitempty"`
	CarLabel            string                  `json:"carLabel,omitempty"`
	RentalStart         *time.Time              `json:"rentalStart,omitempty"`
	RentalEnd           *time.Time              `json:"rentalEnd,omitempty"`
	Message             string                  `json:"message,omitempty"`
	Status              models.QuoteStatus      `json:"status"`
	BookingRequest      *payload.BookingRequest `json:"bookingRequestData,omitempty"`
	BookingRequestError string                  `json:"bookingRequestError,omitempty"`
	CreatedAt           time.Time               `json:"createdAt"`
	UpdatedAt           time.Time               `json:"updatedAt"`
}

func NewQuoteView(q models.Quote) QuoteView {
	status, _ := models.NormalizeQuoteStatus(string(q.Status))
	v := QuoteView{
		ID:          q.ID,
		Code:        q.Code,
		Name:        q.Name,
		Email:       q.Email,
		Phone:       q.Phone,
		Locale:      q.Locale,
		CarID:       q.CarID,
		CarLabel:    q.CarLabel,
		RentalStart: q.RentalStart,
		RentalEnd:   q.RentalEnd,
		Message:     q.Message,
		Status:      status,
		CreatedAt:   q.CreatedAt,
		UpdatedAt:   q.UpdatedAt,
	}
	r, err := payload.ParseBookingRequest(q.BookingRequestData)
	if err != nil {
		v.BookingRequestError = err.Error()
	} else {
		v.BookingRequest = r
	}
	return v
}

type CarView struct {
	ID            uint               `json:"id"`
	Manufacturer  string             `json:"manufacturer"`
	Model         string             `json:"model"`
	Label         string             `json:"label"`
	LicensePlate  string             `json:"licensePlate"`
	Category      string             `json:"category,omitempty"`
	BodyType      string             `json:"bodyType,omitempty"`
	Fuel          string             `json:"fuel,omitempty"`
	Transmission  string             `json:"transmission,omitempty"`
	Seats         int                `json:"seats"`
	Luggage       int                `json:"luggage"`
	Status        models.CarStatus   `json:"status"`
	Colors        []string           `json:"colors"`
	PricingMode   models.PricingMode `json:"pricingMode,omitempty"`
	MonthlyPrices []float64          `json:"monthlyPrices,omitempty"`
	DailyTiers    []models.DailyTier `json:"dailyTiers,omitempty"`
	Images        []string           `json:"images"`
	Odometer      int                `json:"odometer"`
	InspectionDue *time.Time         `json:"inspectionDue,omitempty"`
	ServiceDue    *time.Time         `json:"serviceDue,omitempty"`
	Notes         string             `json:"notes,omitempty"`
	CreatedAt     time.Time          `json:"createdAt"`
	UpdatedAt     time.Time          `json:"updatedAt"`
}

func NewCarView(c models.Car) CarView {
	colors := make([]string, 0, len(c.Colors))
	for _, col := range c.Colors {
		colors = append(colors, col.Name)
	}
	images := []string(c.Images)
	if images == nil {
		images = []string{}
	}
	return CarView{
		ID:            c.ID,
		Manufacturer:  c.Manufacturer,
		Model:         c.ModelName,
		Label:         c.Label(),
		LicensePlate:  c.LicensePlate,
		Category:      c.Category,
		BodyType:      c.BodyType,
		Fuel:          c.Fuel,
		Transmission:  c.Transmission,
		Seats:         c.Seats,
		Luggage:       c.Luggage,
		Status:        c.Status,
		Colors:        colors,
		PricingMode:   c.PricingMode,
		MonthlyPrices: c.MonthlyPrices,
		DailyTiers:    c.DailyTiers,
		Images:        images,
		Odometer:      c.Odometer,
		InspectionDue: c.InspectionDue,
		ServiceDue:    c.ServiceDue,
		Notes:         c.Notes,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}

type NotificationView struct {
	ID          uint                     `json:"id"`
	EventKey    string                   `json:"eventKey"`
	Type        models.NotificationType  `json:"type"`
	Title       string                   `json:"title"`
	Description string                   `json:"description,omitempty"`
	Href        string                   `json:"href,omitempty"`
	Tone        models.Tone              `json:"tone"`
	State       models.NotificationState `json:"state"`
	Read        bool                     `json:"read"`
	NotifyAt    *time.Time               `json:"notifyAt,omitempty"`
	CreatedAt   time.Time                `json:"createdAt"`
}

func NewNotificationView(n models.Notification) NotificationView {
	return NotificationView{
		ID:          n.ID,
		EventKey:    n.EventKey,
		Type:        n.Type,
		Title:       n.Title,
		Description: n.Description,
		Href:        n.Href,
		Tone:        n.Tone,
		State:       n.State,
		Read:        n.State == models.NotificationRead,
		NotifyAt:    n.NotifyAt,
		CreatedAt:   n.CreatedAt,
	}
}
