package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DailyRevenueRow is one day of posted folio revenue, broken out by charge type.
type DailyRevenueRow struct {
	Day           time.Time       `json:"day"`
	RoomRevenue   decimal.Decimal `json:"roomRevenue"`
	TaxCollected  decimal.Decimal `json:"taxCollected"`
	OtherRevenue  decimal.Decimal `json:"otherRevenue"`
	TotalRevenue  decimal.Decimal `json:"totalRevenue"`
	PaymentsTaken decimal.Decimal `json:"paymentsTaken"`
}

// StatusCountRow is the number of reservations per lifecycle status, used by
// the dashboard tiles.
type StatusCountRow struct {
	Status ReservationStatus `json:"status"`
	Count  int64             `json:"count"`
}
