package models

import (
	"gorm.io/gorm"
)

// Admin is a staff member allowed into the dashboard.
type Admin struct {
	gorm.Model
	GoogleID string `gorm:"uniqueIndex"`
	Email    string `gorm:"uniqueIndex"`
	Name     string
	Avatar   string
}
