// Package i18n holds the static customer-facing copy for outbound email.
package i18n

import (
	"fmt"
	"sort"
	"strings"

	"github.com/adamb00/CAR-RENTER-ADMIN-sub000/internal/pricing"
	"golang.org/x/text/language"
)

// DefaultLocale is used for every email type when a locale cannot be matched.
const DefaultLocale = "en"

// Copy is the fixed set of strings one email locale provides.
type Copy struct {
	Locale string

	BookingRequestSubject string
	FinalizationSubject   string

	GreetingNamed string
	GreetingPlain string

	BookingRequestIntro  string
	BookingRequestAction string
	FinalizationIntro    string
	Outro                string

	BookingCodeLabel      string
	CarLabel              string
	PeriodLabel           string
	RentalFeeLabel        string
	InsuranceLabel        string
	DepositLabel          string
	DeliveryFeeLabel      string
	ExtrasFeeLabel        string
	TotalLabel            string
	DeliveryLocationLabel string
	NoteLabel             string

	CoveredByInsurance string

	Slogan    string
	Signature string

	DateLayout string
}

// Greeting returns the salutation, naming the recipient when a name is known.
func (c Copy) Greeting(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return c.GreetingPlain
	}
	return fmt.Sprintf(c.GreetingNamed, name)
}

// FeeLabel returns the label for a fee line.
func (c Copy) FeeLabel(kind pricing.Kind) string {
	switch kind {
	case pricing.KindRentalFee:
		return c.RentalFeeLabel
	case pricing.KindInsurance:
		return c.InsuranceLabel
	case pricing.KindDeposit:
		return c.DepositLabel
	case pricing.KindDeliveryFee:
		return c.DeliveryFeeLabel
	case pricing.KindExtrasFee:
		return c.ExtrasFeeLabel
	}
	return string(kind)
}

// Subject joins a subject line with a booking or quote code.
func Subject(subject, code string) string {
	code = strings.TrimSpace(code)
	if code == "" {
		return subject
	}
	return subject + " (" + code + ")"
}

// Site locale codes that differ from the ISO 639-1 language code.
var languageAliases = map[string]string{
	"cs": "cz",
	"sv": "se",
	"da": "dk",
	"nb": "no",
	"nn": "no",
}

// NormalizeLocale maps a locale code to a supported locale, falling back to
// DefaultLocale.
func NormalizeLocale(code string) string {
	return NormalizeLocaleOr(code, DefaultLocale)
}

// NormalizeLocaleOr is NormalizeLocale with an explicit fallback. The fallback
// itself must be supported or DefaultLocale is returned.
func NormalizeLocaleOr(code, fallback string) string {
	key := strings.ToLower(strings.TrimSpace(code))
	if _, ok := dictionaries[key]; ok {
		return key
	}

	if key != "" {
		if tag, err := language.Parse(key); err == nil {
			base, _ := tag.Base()
			b := base.String()
			if alias, ok := languageAliases[b]; ok {
				b = alias
			}
			if _, ok := dictionaries[b]; ok {
				return b
			}
		}
	}

	fallback = strings.ToLower(strings.TrimSpace(fallback))
	if _, ok := dictionaries[fallback]; ok {
		return fallback
	}
	return DefaultLocale
}

// For returns the copy for a locale code, normalizing it first.
func For(code string) Copy {
	return dictionaries[NormalizeLocale(code)]
}

// ForOr is For with an explicit fallback locale.
func ForOr(code, fallback string) Copy {
	return dictionaries[NormalizeLocaleOr(code, fallback)]
}

// Supported lists the supported locale codes in sorted order.
func Supported() []string {
	out := make([]string, 0, len(dictionaries))
	for k := range dictionaries {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
