package models

import (
	"strings"
	"time"

	"gorm.io/datatypes"
)

type CarStatus string

const (
	CarAvailable   CarStatus = "available"
	CarRented      CarStatus = "rented"
	CarMaintenance CarStatus = "maintenance"
	CarInactive    CarStatus = "inactive"
	CarReserved    CarStatus = "reserved"
)

func (s CarStatus) Valid() bool {
	switch s {
	case CarAvailable, CarRented, CarMaintenance, CarInactive, CarReserved:
		return true
	}
	return false
}

type PricingMode string

const (
	PricingMonthly PricingMode = "monthly"
	PricingTiered  PricingMode = "tiered"
)

// DailyTier applies DailyPrice to rentals of at least MinDays days.
type DailyTier struct {
	MinDays    int     `json:"minDays"`
	DailyPrice float64 `json:"dailyPrice"`
}

// Car is a fleet vehicle. Cars are hard deleted together with their color links.
type Car struct {
	ID            uint `gorm:"primarykey"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
	Manufacturer  string
	ModelName     string `gorm:"column:model"`
	LicensePlate  string `gorm:"uniqueIndex"`
	Category      string
	BodyType      string
	Fuel          string
	Transmission  string
	Seats         int
	Luggage       int
	Status        CarStatus `gorm:"index;default:available"`
	Colors        []Color   `gorm:"many2many:car_colors;"`
	PricingMode   PricingMode
	MonthlyPrices datatypes.JSONSlice[float64]
	DailyTiers    datatypes.JSONSlice[DailyTier]
	Images        datatypes.JSONSlice[string]
	Odometer      int
	InspectionDue *time.Time
	ServiceDue    *time.Time
	Notes         string
}

// Label is the customer-facing car name.
func (c Car) Label() string {
	return strings.TrimSpace(c.Manufacturer + " " + c.ModelName)
}

type Color struct {
	ID   uint   `gorm:"primarykey" json:"id"`
	Name string `gorm:"uniqueIndex" json:"name"`
	Hex  string `json:"hex,omitempty"`
}
