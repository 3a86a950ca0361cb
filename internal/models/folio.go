package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// FolioLine is the folio_lines table row. Rows are insert-only.
type FolioLine struct {
	FolioLineID   string          `db:"folio_line_id"`
	ReservationID string          `db:"reservation_id"`
	ChargeDate    time.Time       `db:"charge_date"`
	Description   string          `db:"description"`
	Amount        decimal.Decimal `db:"amount"`
	ChargeType    string          `db:"charge_type"`
	PostedBy      string          `db:"posted_by"`
	PostedAt      time.Time       `db:"posted_at"`
}

// Payment is the payments table row. Rows are insert-only.
type Payment struct {
	PaymentID     string          `db:"payment_id"`
	ReservationID string          `db:"reservation_id"`
	PaymentDate   time.Time       `db:"payment_date"`
	Amount        decimal.Decimal `db:"amount"`
	Method        string          `db:"method"`
	Reference     string          `db:"reference"`
	PaymentType   string          `db:"payment_type"`
	PostedBy      string          `db:"posted_by"`
	PostedAt      time.Time       `db:"posted_at"`
}
