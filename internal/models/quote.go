package models

import (
	"strings"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type QuoteStatus string

const (
	QuoteNew        QuoteStatus = "new"
	QuoteInProgress QuoteStatus = "in_progress"
	QuoteSent       QuoteStatus = "sent"
	QuoteAccepted   QuoteStatus = "accepted"
	QuoteDone       QuoteStatus = "done"
	QuoteCanceled   QuoteStatus = "canceled"
)

// Workflow position of each status. Canceled sits outside the sequence.
var quoteRank = map[QuoteStatus]int{
	QuoteNew:        0,
	QuoteInProgress: 1,
	QuoteSent:       2,
	QuoteAccepted:   3,
	QuoteDone:       4,
	QuoteCanceled:   5,
}

// Older rows were written with these spellings.
var quoteAliases = map[string]QuoteStatus{
	"contacted": QuoteInProgress,
	"pending":   QuoteInProgress,
	"answered":  QuoteDone,
	"resolved":  QuoteDone,
	"cancelled": QuoteCanceled,
}

// NormalizeQuoteStatus maps current and legacy spellings to a QuoteStatus.
func NormalizeQuoteStatus(s string) (QuoteStatus, bool) {
	key := strings.ToLower(strings.TrimSpace(s))
	if alias, ok := quoteAliases[key]; ok {
		return alias, true
	}
	st := QuoteStatus(key)
	_, ok := quoteRank[st]
	return st, ok
}

func (s QuoteStatus) Terminal() bool {
	return s == QuoteDone || s == QuoteCanceled
}

// CanMoveTo reports whether the workflow allows going from s to target.
// Statuses only move forward; canceling is allowed from any open status.
func (s QuoteStatus) CanMoveTo(target QuoteStatus) bool {
	from, _ := NormalizeQuoteStatus(string(s))
	if from == target {
		return true
	}
	if from.Terminal() {
		return false
	}
	if target == QuoteCanceled {
		return true
	}
	return quoteRank[target] > quoteRank[from]
}

// Quote is a customer's contact request, before it becomes a priced booking.
type Quote struct {
	gorm.Model
	Code               string `gorm:"uniqueIndex"`
	Name               string
	Email              string
	Phone              string
	Locale             string
	CarID              *uint `gorm:"index"`
	CarLabel           string
	RentalStart        *time.Time
	RentalEnd          *time.Time
	Message            string
	Status             QuoteStatus `gorm:"index;default:new"`
	BookingRequestData datatypes.JSON
}

// QuoteStatusSpellings lists every stored spelling that normalizes to s.
func QuoteStatusSpellings(s QuoteStatus) []string {
	out := []string{string(s)}
	for legacy, st := range quoteAliases {
		if st == s {
			out = append(out, legacy)
		}
	}
	return out
}
