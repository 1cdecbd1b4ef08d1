// Package pricing turns the raw fee fields staff type into booking forms into
// a normalized fee breakdown. Nothing here returns an error: bad input simply
// does not contribute to the total.
package pricing

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Amount is a raw fee field. Only JSON strings carry a value; numbers, bools
// and objects decode to the empty amount.
type Amount string

func (a *Amount) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		*a = ""
		return nil
	}
	*a = Amount(s)
	return nil
}

// Fees holds the five fee fields of a booking or booking request.
type Fees struct {
	RentalFee   Amount `json:"rentalFee,omitempty"`
	Insurance   Amount `json:"insurance,omitempty"`
	Deposit     Amount `json:"deposit,omitempty"`
	DeliveryFee Amount `json:"deliveryFee,omitempty"`
	ExtrasFee   Amount `json:"extrasFee,omitempty"`
}

// Merge returns f with every field that override carries a value for replaced.
func (f Fees) Merge(override Fees) Fees {
	pick := func(base, over Amount) Amount {
		if v, ok := SanitizeValue(over); ok {
			return Amount(v)
		}
		return base
	}
	return Fees{
		RentalFee:   pick(f.RentalFee, override.RentalFee),
		Insurance:   pick(f.Insurance, override.Insurance),
		Deposit:     pick(f.Deposit, override.Deposit),
		DeliveryFee: pick(f.DeliveryFee, override.DeliveryFee),
		ExtrasFee:   pick(f.ExtrasFee, override.ExtrasFee),
	}
}

// Normalized returns a copy with every field trimmed, empty when absent.
func (f Fees) Normalized() Fees {
	get := func(a Amount) Amount {
		v, _ := SanitizeValue(a)
		return Amount(v)
	}
	return Fees{
		RentalFee:   get(f.RentalFee),
		Insurance:   get(f.Insurance),
		Deposit:     get(f.Deposit),
		DeliveryFee: get(f.DeliveryFee),
		ExtrasFee:   get(f.ExtrasFee),
	}
}

// SanitizeValue returns the trimmed string when v is a string (or Amount)
// with non-blank content.
func SanitizeValue(v any) (string, bool) {
	var s string
	switch t := v.(type) {
	case string:
		s = t
	case *string:
		if t == nil {
			return "", false
		}
		s = *t
	case Amount:
		s = string(t)
	default:
		return "", false
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}
	return s, true
}

// ParseAmount reads a staff-typed amount such as "1200,50", "1.234,56",
// "1,234.56" or "300,-". Only digits and separators count; a minus sign is
// honoured before the first digit. The last separator is the decimal point
// unless the same separator repeats with no other kind present, in which case
// every separator groups thousands. Unparseable input yields 0.
func ParseAmount(v string) float64 {
	var b strings.Builder
	negative, digits := false, false
	for _, r := range v {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
			digits = true
		case r == '.' || r == ',':
			b.WriteRune(r)
		case r == '-' && b.Len() == 0:
			negative = true
		}
	}
	if !digits {
		return 0
	}

	s := strings.TrimRight(b.String(), ".,")
	if last := strings.LastIndexAny(s, ".,"); last >= 0 {
		sep := s[last : last+1]
		other := ","
		if sep == "," {
			other = "."
		}
		if strings.Count(s, sep) > 1 && !strings.Contains(s, other) {
			s = stripSeparators(s)
		} else {
			s = stripSeparators(s[:last]) + "." + s[last+1:]
		}
	}

	n, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0
	}
	if negative {
		return -n
	}
	return n
}

func stripSeparators(s string) string {
	return strings.NewReplacer(".", "", ",", "").Replace(s)
}

var declinedInsurance = map[string]bool{
	"":      true,
	"false": true,
	"no":    true,
	"nem":   true,
	"0":     true,
}

// NormalizeInsuranceSelection reports whether insurance was chosen. Explicit
// refusals ("false", "no", "nem", "0") and blanks are absent; anything else is
// returned trimmed.
func NormalizeInsuranceSelection(v string) (string, bool) {
	trimmed := strings.TrimSpace(v)
	if declinedInsurance[strings.ToLower(trimmed)] {
		return "", false
	}
	return trimmed, true
}

// FormatTotal renders a sum as an integer when whole, otherwise with two
// decimals. A zero sum is reported as absent.
func FormatTotal(sum float64) (string, bool) {
	if sum == 0 {
		return "", false
	}
	if sum == math.Trunc(sum) {
		return strconv.FormatFloat(sum, 'f', 0, 64), true
	}
	return strconv.FormatFloat(sum, 'f', 2, 64), true
}

// Currency is appended to every displayed amount.
const Currency = "€"

// Display appends the currency sign to a sanitized amount.
func Display(amount string) string {
	return amount + " " + Currency
}
