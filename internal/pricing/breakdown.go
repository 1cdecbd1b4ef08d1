package pricing

// Kind identifies a fee line.
type Kind string

const (
	KindRentalFee   Kind = "rental_fee"
	KindInsurance   Kind = "insurance"
	KindDeposit     Kind = "deposit"
	KindDeliveryFee Kind = "delivery_fee"
	KindExtrasFee   Kind = "extras_fee"
)

// Kinds lists fee kinds in display order.
var Kinds = []Kind{KindRentalFee, KindInsurance, KindDeposit, KindDeliveryFee, KindExtrasFee}

// Line is one fee in a breakdown. A line either carries an amount or, for the
// deposit, is covered by insurance.
type Line struct {
	Kind    Kind   `json:"kind"`
	Amount  string `json:"amount,omitempty"`
	Covered bool   `json:"covered,omitempty"`
}

// Breakdown is the canonical list of fee lines plus the total. Renderers
// iterate Lines and never re-derive inclusion rules.
type Breakdown struct {
	Lines            []Line `json:"lines"`
	Total            string `json:"total,omitempty"`
	HasTotal         bool   `json:"hasTotal"`
	InsuranceApplies bool   `json:"insuranceApplies"`
}

// Line returns the line of the given kind.
func (b Breakdown) Line(kind Kind) (Line, bool) {
	for _, l := range b.Lines {
		if l.Kind == kind {
			return l, true
		}
	}
	return Line{}, false
}

// Compute normalizes fees and derives the breakdown. consent is the
// customer's explicit insurance consent; it covers the deposit even when no
// insurance price was entered.
func Compute(fees Fees, consent bool) Breakdown {
	f := fees.Normalized()

	insurance, hasInsurance := NormalizeInsuranceSelection(string(f.Insurance))
	applies := hasInsurance || consent

	var out Breakdown
	out.InsuranceApplies = applies
	var sum float64

	add := func(kind Kind, amount string) {
		if amount == "" {
			return
		}
		out.Lines = append(out.Lines, Line{Kind: kind, Amount: amount})
		sum += ParseAmount(amount)
	}

	add(KindRentalFee, string(f.RentalFee))
	if hasInsurance {
		add(KindInsurance, insurance)
	}
	if f.Deposit != "" {
		if applies {
			out.Lines = append(out.Lines, Line{Kind: KindDeposit, Covered: true})
		} else {
			add(KindDeposit, string(f.Deposit))
		}
	}
	add(KindDeliveryFee, string(f.DeliveryFee))
	add(KindExtrasFee, string(f.ExtrasFee))

	out.Total, out.HasTotal = FormatTotal(sum)
	return out
}
