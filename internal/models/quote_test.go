package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeQuoteStatus(t *testing.T) {
	cases := map[string]QuoteStatus{
		"new":         QuoteNew,
		"contacted":   QuoteInProgress,
		"Pending":     QuoteInProgress,
		"in_progress": QuoteInProgress,
		"answered":    QuoteDone,
		"resolved":    QuoteDone,
		"cancelled":   QuoteCanceled,
		" sent ":      QuoteSent,
	}
	for in, want := range cases {
		got, ok := NormalizeQuoteStatus(in)
		assert.True(t, ok, in)
		assert.Equal(t, want, got, in)
	}

	_, ok := NormalizeQuoteStatus("archived")
	assert.False(t, ok)
}

func TestQuoteStatusCanMoveTo(t *testing.T) {
	assert.True(t, QuoteNew.CanMoveTo(QuoteSent))
	assert.True(t, QuoteSent.CanMoveTo(QuoteAccepted))
	assert.True(t, QuoteSent.CanMoveTo(QuoteSent))
	assert.True(t, QuoteInProgress.CanMoveTo(QuoteCanceled))
	assert.True(t, QuoteStatus("contacted").CanMoveTo(QuoteSent))

	assert.False(t, QuoteSent.CanMoveTo(QuoteNew))
	assert.False(t, QuoteAccepted.CanMoveTo(QuoteSent))
	assert.False(t, QuoteDone.CanMoveTo(QuoteCanceled))
	assert.False(t, QuoteCanceled.CanMoveTo(QuoteInProgress))
	assert.False(t, QuoteStatus("resolved").CanMoveTo(QuoteAccepted))
}

func TestBookingStatusValid(t *testing.T) {
	assert.True(t, BookingRegistered.Valid())
	assert.False(t, BookingStatus("archived").Valid())
}

func TestCarLabel(t *testing.T) {
	assert.Equal(t, "Toyota Corolla", Car{Manufacturer: "Toyota", ModelName: "Corolla"}.Label())
	assert.Equal(t, "Toyota", Car{Manufacturer: "Toyota"}.Label())
}
