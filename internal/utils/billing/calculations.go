package billing

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/stayfront/hotel_management_app/internal/apperrors"
)

// Input carries everything the quote computation depends on. Tax rate is always
// supplied by the caller (hotel override or application default), never assumed
// here: the two legacy creation flows disagreed on 12% vs 18% and the rate is a
// configuration concern.
type Input struct {
	CheckInDate     time.Time
	CheckOutDate    time.Time
	BaseRate        decimal.Decimal // per night
	DiscountPercent decimal.Decimal // 0..100
	TaxRatePercent  decimal.Decimal
	ExtraCharges    decimal.Decimal
	AmountPaid      decimal.Decimal
}

// Quote is the derived billing breakdown for a stay. All amounts are rounded to
// two decimal places.
type Quote struct {
	Nights         int             `json:"nights"`
	RoomCharges    decimal.Decimal `json:"roomCharges"`
	DiscountAmount decimal.Decimal `json:"discountAmount"`
	Subtotal       decimal.Decimal `json:"subtotal"`
	TaxAmount      decimal.Decimal `json:"taxAmount"`
	ExtraCharges   decimal.Decimal `json:"extraCharges"`
	TotalAmount    decimal.Decimal `json:"totalAmount"`
	AmountPaid     decimal.Decimal `json:"amountPaid"`
	BalanceDue     decimal.Decimal `json:"balanceDue"`
}

var hundred = decimal.NewFromInt(100)

// Nights returns the stay length in nights: the ceiling of the day difference,
// and 0 whenever check-out is not strictly after check-in.
func Nights(checkIn, checkOut time.Time) int {
	d := checkOut.Sub(checkIn)
	if d <= 0 {
		return 0
	}
	nights := int(d.Hours() / 24)
	if d.Hours() > float64(nights)*24 {
		nights++
	}
	return nights
}

// Validate rejects inputs the calculator cannot meaningfully price.
func Validate(in Input) error {
	if in.BaseRate.IsNegative() {
		return fmt.Errorf("%w: base rate must not be negative", apperrors.ErrValidation)
	}
	if in.DiscountPercent.IsNegative() || in.DiscountPercent.GreaterThan(hundred) {
		return fmt.Errorf("%w: discount percent must be between 0 and 100", apperrors.ErrValidation)
	}
	if in.TaxRatePercent.IsNegative() {
		return fmt.Errorf("%w: tax rate must not be negative", apperrors.ErrValidation)
	}
	return nil
}

// Compute derives the full billing breakdown. It is deterministic and
// side-effect free so the front end can re-run it on every input change.
func Compute(in Input) Quote {
	nights := Nights(in.CheckInDate, in.CheckOutDate)

	roomCharges := in.BaseRate.Mul(decimal.NewFromInt(int64(nights)))
	discountAmount := roomCharges.Mul(in.DiscountPercent).Div(hundred)
	subtotal := roomCharges.Sub(discountAmount)
	taxAmount := subtotal.Mul(in.TaxRatePercent).Div(hundred)
	total := subtotal.Add(taxAmount).Add(in.ExtraCharges)
	balance := total.Sub(in.AmountPaid)

	return Quote{
		Nights:         nights,
		RoomCharges:    roomCharges.Round(2),
		DiscountAmount: discountAmount.Round(2),
		Subtotal:       subtotal.Round(2),
		TaxAmount:      taxAmount.Round(2),
		ExtraCharges:   in.ExtraCharges.Round(2),
		TotalAmount:    total.Round(2),
		AmountPaid:     in.AmountPaid.Round(2),
		BalanceDue:     balance.Round(2),
	}
}
