package dto

import (
	"github.com/shopspring/decimal"
)

// QuoteRequest defines the inputs for a stay-cost preview. Dates are
// date-only strings ("2006-01-02").
type QuoteRequest struct {
	CheckInDate     string           `json:"checkInDate" binding:"required"`
	CheckOutDate    string           `json:"checkOutDate" binding:"required"`
	BaseRate        decimal.Decimal  `json:"baseRate" binding:"required"`
	DiscountPercent decimal.Decimal  `json:"discountPercent"`
	TaxRatePercent  *decimal.Decimal `json:"taxRatePercent"`
	ExtraCharges    decimal.Decimal  `json:"extraCharges"`
	AmountPaid      decimal.Decimal  `json:"amountPaid"`
}
