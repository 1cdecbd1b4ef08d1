// Package mail assembles and delivers the customer emails: booking request
// offers sent from a quote and finalization confirmations sent from a booking.
package mail

import (
	"strings"
	"time"

	"github.com/adamb00/CAR-RENTER-ADMIN-sub000/internal/i18n"
	"github.com/adamb00/CAR-RENTER-ADMIN-sub000/internal/pricing"
)

type Kind string

const (
	KindBookingRequest Kind = "booking_request"
	KindFinalization   Kind = "finalization"
)

// Content is everything an email shows, already normalized.
type Content struct {
	Kind             Kind
	Copy             i18n.Copy
	RecipientName    string
	Code             string
	CarLabel         string
	Start            time.Time
	End              time.Time
	Fees             pricing.Breakdown
	DeliveryLocation string
	Note             string
	ActionURL        string
	LogoSrc          string
}

// Row is one label/value pair of the summary table.
type Row struct {
	Label    string
	Value    string
	Emphasis bool
}

// Rows is the single ordered list both renderers draw from. Rows without a
// value are dropped. A deposit covered by insurance is spelled out in offers
// and left out of confirmations.
func (c Content) Rows() []Row {
	rows := []Row{
		{Label: c.Copy.BookingCodeLabel, Value: c.Code},
		{Label: c.Copy.CarLabel, Value: c.CarLabel},
		{Label: c.Copy.PeriodLabel, Value: c.period()},
	}

	for _, line := range c.Fees.Lines {
		label := c.Copy.FeeLabel(line.Kind)
		switch {
		case line.Covered && c.Kind == KindFinalization:
			continue
		case line.Covered:
			rows = append(rows, Row{Label: label, Value: c.Copy.CoveredByInsurance})
		default:
			rows = append(rows, Row{Label: label, Value: pricing.Display(line.Amount)})
		}
	}
	if c.Fees.HasTotal {
		rows = append(rows, Row{Label: c.Copy.TotalLabel, Value: pricing.Display(c.Fees.Total), Emphasis: true})
	}

	rows = append(rows,
		Row{Label: c.Copy.DeliveryLocationLabel, Value: c.DeliveryLocation},
		Row{Label: c.Copy.NoteLabel, Value: c.Note},
	)

	out := rows[:0]
	for _, r := range rows {
		r.Value = strings.TrimSpace(r.Value)
		if r.Value != "" {
			out = append(out, r)
		}
	}
	return out
}

func (c Content) Subject() string {
	if c.Kind == KindFinalization {
		return i18n.Subject(c.Copy.FinalizationSubject, c.Code)
	}
	return i18n.Subject(c.Copy.BookingRequestSubject, c.Code)
}

func (c Content) Intro() string {
	if c.Kind == KindFinalization {
		return c.Copy.FinalizationIntro
	}
	return c.Copy.BookingRequestIntro
}

func (c Content) period() string {
	layout := c.Copy.DateLayout
	switch {
	case c.Start.IsZero() && c.End.IsZero():
		return ""
	case c.End.IsZero():
		return c.Start.Format(layout)
	case c.Start.IsZero():
		return c.End.Format(layout)
	}
	return c.Start.Format(layout) + " - " + c.End.Format(layout)
}
