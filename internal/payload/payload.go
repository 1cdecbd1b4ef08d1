// Package payload parses the JSON documents stored alongside bookings and
// quotes into validated, typed values.
package payload

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/adamb00/CAR-RENTER-ADMIN-sub000/internal/pricing"
	"github.com/go-playground/validator/v10"
)

// ErrMalformed is returned when a stored document does not parse or validate.
var ErrMalformed = errors.New("malformed payload")

var validate = validator.New()

type Driver struct {
	Name          string `json:"name,omitempty" validate:"max=200"`
	Email         string `json:"email,omitempty" validate:"omitempty,email"`
	Phone         string `json:"phone,omitempty" validate:"max=50"`
	BirthDate     string `json:"birthDate,omitempty"`
	LicenseNumber string `json:"licenseNumber,omitempty" validate:"max=100"`
	LicenseExpiry string `json:"licenseExpiry,omitempty"`
}

type Delivery struct {
	Type         string `json:"type,omitempty" validate:"omitempty,oneof=office address airport"`
	Address      string `json:"address,omitempty" validate:"max=500"`
	FlightNumber string `json:"flightNumber,omitempty" validate:"max=20"`
	ArrivalTime  string `json:"arrivalTime,omitempty"`
}

// Location returns a printable handover location.
func (d Delivery) Location() string {
	parts := make([]string, 0, 2)
	if a := strings.TrimSpace(d.Address); a != "" {
		parts = append(parts, a)
	}
	if f := strings.TrimSpace(d.FlightNumber); f != "" {
		parts = append(parts, f)
	}
	return strings.Join(parts, ", ")
}

type Invoice struct {
	Name      string `json:"name,omitempty" validate:"max=200"`
	TaxNumber string `json:"taxNumber,omitempty" validate:"max=50"`
	Address   string `json:"address,omitempty" validate:"max=500"`
	Company   bool   `json:"company,omitempty"`
}

// Choice is a checkbox answer. Forms store it as a bool, a string or a
// number; strings are declined by the same words as an insurance selection.
type Choice bool

func (c *Choice) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	switch t := v.(type) {
	case bool:
		*c = Choice(t)
	case string:
		_, ok := pricing.NormalizeInsuranceSelection(t)
		*c = Choice(ok)
	case float64:
		*c = t != 0
	default:
		*c = false
	}
	return nil
}

type Consents struct {
	Insurance *Choice `json:"insurance,omitempty"`
	Terms     Choice  `json:"terms,omitempty"`
	Privacy   Choice  `json:"privacy,omitempty"`
}

// InsuranceAccepted reports an explicit insurance consent.
func (c Consents) InsuranceAccepted() bool {
	return c.Insurance != nil && bool(*c.Insurance)
}

// Booking is the typed form of a booking's JSON payload.
type Booking struct {
	Driver   Driver       `json:"driver"`
	Delivery Delivery     `json:"delivery"`
	Invoice  Invoice      `json:"invoice"`
	Consents Consents     `json:"consents"`
	Pricing  pricing.Fees `json:"pricing"`
	Extras   []string     `json:"extras,omitempty" validate:"max=20,dive,max=100"`
	Note     string       `json:"note,omitempty" validate:"max=2000"`
}

// BookingRequest is the snapshot of what was last sent to the customer in a
// booking request email.
type BookingRequest struct {
	pricing.Fees
	DeliveryLocation string     `json:"deliveryLocation,omitempty" validate:"max=500"`
	Note             string     `json:"note,omitempty" validate:"max=2000"`
	Locale           string     `json:"locale,omitempty"`
	SentAt           *time.Time `json:"sentAt,omitempty"`
}

// ParseBooking decodes and validates a booking payload. An empty or null
// document is an empty payload.
func ParseBooking(raw []byte) (*Booking, error) {
	var b Booking
	if err := decode(raw, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

// ParseBookingRequest decodes and validates a booking request snapshot.
func ParseBookingRequest(raw []byte) (*BookingRequest, error) {
	var r BookingRequest
	if err := decode(raw, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

// DecodeBooking reads a booking payload without applying field rules. Only a
// document that is not a JSON object is rejected; fields of the wrong type
// are left empty. Email sending uses it so that an unrelated bad field never
// blocks a send.
func DecodeBooking(raw []byte) (*Booking, error) {
	var b Booking
	if err := lenientDecode(raw, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

// DecodeBookingRequest is DecodeBooking for booking request snapshots.
func DecodeBookingRequest(raw []byte) (*BookingRequest, error) {
	var r BookingRequest
	if err := lenientDecode(raw, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

// Encode validates v and returns its JSON form.
func Encode(v any) ([]byte, error) {
	if err := validate.Struct(v); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return json.Marshal(v)
}

func lenientDecode(raw []byte, v any) error {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}
	if trimmed[0] != '{' {
		return fmt.Errorf("%w: expected a JSON object", ErrMalformed)
	}
	err := json.Unmarshal(trimmed, v)
	var typeErr *json.UnmarshalTypeError
	if err != nil && !errors.As(err, &typeErr) {
		return fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return nil
}

func decode(raw []byte, v any) error {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}
	if trimmed[0] != '{' {
		return fmt.Errorf("%w: expected a JSON object", ErrMalformed)
	}
	if err := json.Unmarshal(trimmed, v); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if err := validate.Struct(v); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return nil
}
