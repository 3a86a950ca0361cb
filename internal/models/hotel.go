package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Hotel is the hotels table row.
type Hotel struct {
	HotelID        string           `db:"hotel_id"`
	Name           string           `db:"name"`
	Address        string           `db:"address"`
	City           string           `db:"city"`
	CurrencyCode   string           `db:"currency_code"`
	TaxRatePercent *decimal.Decimal `db:"tax_rate_percent"` // NULL -> application default
	IsActive       bool             `db:"is_active"`
	AuditFields
}

// UserHotel is the user_hotels membership table row.
type UserHotel struct {
	UserID   string    `db:"user_id"`
	HotelID  string    `db:"hotel_id"`
	Role     string    `db:"role"`
	JoinedAt time.Time `db:"joined_at"`
}
