package payload

import (
	"testing"

	"github.com/adamb00/CAR-RENTER-ADMIN-sub000/internal/pricing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBooking(t *testing.T) {
	t.Run("Full payload", func(t *testing.T) {
		raw := []byte(`{
			"driver": {"name": "Anna Kovács", "email": "anna@example.com"},
			"delivery": {"type": "airport", "address": "Terminal 2", "flightNumber": "W6 2201"},
			"consents": {"insurance": true, "terms": true},
			"pricing": {"rentalFee": "300", "deliveryFee": "50"},
			"extras": ["child seat"]
		}`)
		b, err := ParseBooking(raw)
		require.NoError(t, err)

		assert.Equal(t, "Anna Kovács", b.Driver.Name)
		assert.True(t, b.Consents.InsuranceAccepted())
		assert.Equal(t, pricing.Amount("300"), b.Pricing.RentalFee)
		assert.Equal(t, "Terminal 2, W6 2201", b.Delivery.Location())
	})

	t.Run("Empty and null are empty payloads", func(t *testing.T) {
		for _, raw := range [][]byte{nil, []byte(""), []byte("null"), []byte("  ")} {
			b, err := ParseBooking(raw)
			require.NoError(t, err)
			assert.False(t, b.Consents.InsuranceAccepted())
		}
	})

	t.Run("Non object is malformed", func(t *testing.T) {
		_, err := ParseBooking([]byte(`["a"]`))
		assert.ErrorIs(t, err, ErrMalformed)
	})

	t.Run("Broken JSON is malformed", func(t *testing.T) {
		_, err := ParseBooking([]byte(`{"driver": `))
		assert.ErrorIs(t, err, ErrMalformed)
	})

	t.Run("Invalid email is malformed", func(t *testing.T) {
		_, err := ParseBooking([]byte(`{"driver": {"email": "not-an-email"}}`))
		assert.ErrorIs(t, err, ErrMalformed)
	})

	t.Run("Unknown delivery type is malformed", func(t *testing.T) {
		_, err := ParseBooking([]byte(`{"delivery": {"type": "teleport"}}`))
		assert.ErrorIs(t, err, ErrMalformed)
	})

	t.Run("Numeric fee is ignored", func(t *testing.T) {
		b, err := ParseBooking([]byte(`{"pricing": {"rentalFee": 300, "deposit": "500"}}`))
		require.NoError(t, err)
		assert.Empty(t, b.Pricing.RentalFee)
		assert.Equal(t, pricing.Amount("500"), b.Pricing.Deposit)
	})

	t.Run("Declined consent", func(t *testing.T) {
		b, err := ParseBooking([]byte(`{"consents": {"insurance": false}}`))
		require.NoError(t, err)
		assert.False(t, b.Consents.InsuranceAccepted())
	})
}

func TestConsentValues(t *testing.T) {
	cases := map[string]bool{
		`true`:    true,
		`false`:   false,
		`"true"`:  true,
		`"igen"`:  true,
		`"false"`: false,
		`"no"`:    false,
		`"NEM"`:   false,
		`"0"`:     false,
		`""`:      false,
		`1`:       true,
		`0`:       false,
		`null`:    false,
		`{}`:      false,
	}
	for raw, want := range cases {
		t.Run(raw, func(t *testing.T) {
			b, err := ParseBooking([]byte(`{"consents": {"insurance": ` + raw + `}}`))
			require.NoError(t, err)
			assert.Equal(t, want, b.Consents.InsuranceAccepted())
		})
	}
}

func TestDecodeBooking(t *testing.T) {
	t.Run("Field rules are not applied", func(t *testing.T) {
		raw := []byte(`{
			"driver": {"email": "anna at example"},
			"delivery": {"type": "hotel", "address": "Main street 1"},
			"pricing": {"rentalFee": "300"}
		}`)
		_, err := ParseBooking(raw)
		assert.ErrorIs(t, err, ErrMalformed)

		b, err := DecodeBooking(raw)
		require.NoError(t, err)
		assert.Equal(t, pricing.Amount("300"), b.Pricing.RentalFee)
		assert.Equal(t, "Main street 1", b.Delivery.Location())
	})

	t.Run("Mistyped fields are left empty", func(t *testing.T) {
		b, err := DecodeBooking([]byte(`{"driver": {"name": 42}, "note": "ok", "pricing": {"deposit": "500"}}`))
		require.NoError(t, err)
		assert.Empty(t, b.Driver.Name)
		assert.Equal(t, "ok", b.Note)
		assert.Equal(t, pricing.Amount("500"), b.Pricing.Deposit)
	})

	t.Run("Non object is malformed", func(t *testing.T) {
		_, err := DecodeBooking([]byte(`"oops"`))
		assert.ErrorIs(t, err, ErrMalformed)
		_, err = DecodeBooking([]byte(`{"driver": `))
		assert.ErrorIs(t, err, ErrMalformed)
	})

	t.Run("Snapshot", func(t *testing.T) {
		r, err := DecodeBookingRequest([]byte(`{"deposit": "500", "note": 7}`))
		require.NoError(t, err)
		assert.Equal(t, pricing.Amount("500"), r.Deposit)
		assert.Empty(t, r.Note)
	})
}

func TestParseBookingRequest(t *testing.T) {
	r, err := ParseBookingRequest([]byte(`{"insurance": "200", "deposit": "500", "deliveryLocation": "Airport"}`))
	require.NoError(t, err)

	assert.Equal(t, pricing.Amount("200"), r.Insurance)
	assert.Equal(t, pricing.Amount("500"), r.Deposit)
	assert.Equal(t, "Airport", r.DeliveryLocation)
}

func TestEncodeRoundTrip(t *testing.T) {
	raw, err := Encode(&BookingRequest{Fees: pricing.Fees{RentalFee: "300"}, Note: "see you"})
	require.NoError(t, err)

	r, err := ParseBookingRequest(raw)
	require.NoError(t, err)
	assert.Equal(t, pricing.Amount("300"), r.RentalFee)
	assert.Equal(t, "see you", r.Note)
}
