package billing_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stayfront/hotel_management_app/internal/apperrors"
	"github.com/stayfront/hotel_management_app/internal/utils/billing"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNights(t *testing.T) {
	tests := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
		want     int
	}{
		{"three nights", date(2025, 3, 10), date(2025, 3, 13), 3},
		{"one night", date(2025, 3, 10), date(2025, 3, 11), 1},
		{"same day", date(2025, 3, 10), date(2025, 3, 10), 0},
		{"check-out before check-in", date(2025, 3, 13), date(2025, 3, 10), 0},
		{"partial day rounds up", date(2025, 3, 10), time.Date(2025, 3, 11, 6, 0, 0, 0, time.UTC), 2},
		{"across month boundary", date(2025, 1, 30), date(2025, 2, 2), 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, billing.Nights(tt.checkIn, tt.checkOut))
		})
	}
}

func TestCompute_StandardStay(t *testing.T) {
	// 5000/night for 3 nights at 18% tax, no discount, no extras.
	in := billing.Input{
		CheckInDate:    date(2025, 3, 10),
		CheckOutDate:   date(2025, 3, 13),
		BaseRate:       decimal.NewFromInt(5000),
		TaxRatePercent: decimal.NewFromInt(18),
		AmountPaid:     decimal.NewFromInt(1770),
	}

	q := billing.Compute(in)

	assert.Equal(t, 3, q.Nights)
	assert.True(t, q.RoomCharges.Equal(decimal.NewFromInt(15000)), "room charges: %s", q.RoomCharges)
	assert.True(t, q.DiscountAmount.IsZero())
	assert.True(t, q.Subtotal.Equal(decimal.NewFromInt(15000)))
	assert.True(t, q.TaxAmount.Equal(decimal.NewFromInt(2700)), "tax: %s", q.TaxAmount)
	assert.True(t, q.TotalAmount.Equal(decimal.NewFromInt(17700)), "total: %s", q.TotalAmount)
	assert.True(t, q.BalanceDue.Equal(decimal.NewFromInt(15930)), "balance: %s", q.BalanceDue)
}

func TestCompute_DiscountAppliesBeforeTax(t *testing.T) {
	in := billing.Input{
		CheckInDate:     date(2025, 6, 1),
		CheckOutDate:    date(2025, 6, 3),
		BaseRate:        decimal.NewFromInt(2000),
		DiscountPercent: decimal.NewFromInt(10),
		TaxRatePercent:  decimal.NewFromInt(12),
	}

	q := billing.Compute(in)

	// 4000 - 400 = 3600 subtotal; tax on the discounted figure.
	assert.True(t, q.DiscountAmount.Equal(decimal.NewFromInt(400)))
	assert.True(t, q.Subtotal.Equal(decimal.NewFromInt(3600)))
	assert.True(t, q.TaxAmount.Equal(decimal.NewFromInt(432)))
	assert.True(t, q.TotalAmount.Equal(decimal.NewFromInt(4032)))
}

func TestCompute_ExtrasAddedAfterTax(t *testing.T) {
	in := billing.Input{
		CheckInDate:    date(2025, 6, 1),
		CheckOutDate:   date(2025, 6, 2),
		BaseRate:       decimal.NewFromInt(1000),
		TaxRatePercent: decimal.NewFromInt(10),
		ExtraCharges:   decimal.NewFromInt(250),
	}

	q := billing.Compute(in)

	// Extras ride on top untaxed: 1000 + 100 + 250.
	assert.True(t, q.TotalAmount.Equal(decimal.NewFromInt(1350)))
}

func TestCompute_ZeroNightStayHasNoRoomCharges(t *testing.T) {
	in := billing.Input{
		CheckInDate:    date(2025, 6, 1),
		CheckOutDate:   date(2025, 6, 1),
		BaseRate:       decimal.NewFromInt(5000),
		TaxRatePercent: decimal.NewFromInt(18),
		ExtraCharges:   decimal.NewFromInt(500),
	}

	q := billing.Compute(in)

	assert.Equal(t, 0, q.Nights)
	assert.True(t, q.RoomCharges.IsZero())
	assert.True(t, q.TotalAmount.Equal(decimal.NewFromInt(500)))
}

func TestCompute_OverpaymentYieldsNegativeBalance(t *testing.T) {
	in := billing.Input{
		CheckInDate:    date(2025, 6, 1),
		CheckOutDate:   date(2025, 6, 2),
		BaseRate:       decimal.NewFromInt(1000),
		TaxRatePercent: decimal.Zero,
		AmountPaid:     decimal.NewFromInt(1500),
	}

	q := billing.Compute(in)

	assert.True(t, q.BalanceDue.Equal(decimal.NewFromInt(-500)))
}

func TestCompute_RoundsToTwoDecimals(t *testing.T) {
	in := billing.Input{
		CheckInDate:    date(2025, 6, 1),
		CheckOutDate:   date(2025, 6, 4),
		BaseRate:       decimal.RequireFromString("333.33"),
		TaxRatePercent: decimal.RequireFromString("18"),
	}

	q := billing.Compute(in)

	require.True(t, q.RoomCharges.Equal(decimal.RequireFromString("999.99")))
	assert.True(t, q.TaxAmount.Equal(decimal.RequireFromString("180.00")), "tax: %s", q.TaxAmount)
	assert.True(t, q.TotalAmount.Equal(decimal.RequireFromString("1179.99")), "total: %s", q.TotalAmount)
}

func TestValidate(t *testing.T) {
	base := billing.Input{
		CheckInDate:    date(2025, 6, 1),
		CheckOutDate:   date(2025, 6, 2),
		BaseRate:       decimal.NewFromInt(100),
		TaxRatePercent: decimal.NewFromInt(12),
	}

	t.Run("valid input", func(t *testing.T) {
		assert.NoError(t, billing.Validate(base))
	})

	t.Run("negative base rate", func(t *testing.T) {
		in := base
		in.BaseRate = decimal.NewFromInt(-1)
		assert.ErrorIs(t, billing.Validate(in), apperrors.ErrValidation)
	})

	t.Run("discount above 100", func(t *testing.T) {
		in := base
		in.DiscountPercent = decimal.NewFromInt(101)
		assert.ErrorIs(t, billing.Validate(in), apperrors.ErrValidation)
	})

	t.Run("negative discount", func(t *testing.T) {
		in := base
		in.DiscountPercent = decimal.NewFromInt(-5)
		assert.ErrorIs(t, billing.Validate(in), apperrors.ErrValidation)
	})

	t.Run("negative tax rate", func(t *testing.T) {
		in := base
		in.TaxRatePercent = decimal.NewFromInt(-1)
		assert.ErrorIs(t, billing.Validate(in), apperrors.ErrValidation)
	})
}
