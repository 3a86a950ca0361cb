package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ChargeType classifies a folio line.
type ChargeType string

const (
	ChargeRoom         ChargeType = "room"
	ChargeTax          ChargeType = "tax"
	ChargeRestaurant   ChargeType = "restaurant"
	ChargeLaundry      ChargeType = "laundry"
	ChargeMinibar      ChargeType = "minibar"
	ChargeMiscellaneus ChargeType = "misc"
)

// IsValid reports whether t is a known charge type.
func (t ChargeType) IsValid() bool {
	switch t {
	case ChargeRoom, ChargeTax, ChargeRestaurant, ChargeLaundry, ChargeMinibar, ChargeMiscellaneus:
		return true
	}
	return false
}

// PaymentMethod is how a payment was collected.
type PaymentMethod string

const (
	MethodCash         PaymentMethod = "cash"
	MethodCard         PaymentMethod = "card"
	MethodBankTransfer PaymentMethod = "bank_transfer"
	MethodUPI          PaymentMethod = "upi"
)

// PaymentType distinguishes deposits from settlement payments and refunds.
type PaymentType string

const (
	PaymentTypeDeposit PaymentType = "deposit"
	PaymentTypePayment PaymentType = "payment"
	PaymentTypeRefund  PaymentType = "refund"
)

// FolioLine is a single charge posted against a reservation's folio.
// Lines are append-only: they are never mutated after posting.
type FolioLine struct {
	FolioLineID   string          `json:"folioLineID"` // Primary Key (UUID)
	ReservationID string          `json:"reservationID"`
	ChargeDate    time.Time       `json:"chargeDate"`
	Description   string          `json:"description"`
	Amount        decimal.Decimal `json:"amount"`
	ChargeType    ChargeType      `json:"chargeType"`
	PostedBy      string          `json:"postedBy"` // UserID reference
	PostedAt      time.Time       `json:"postedAt"`
}

// Payment is a payment posted against a reservation. Append-only.
type Payment struct {
	PaymentID     string          `json:"paymentID"` // Primary Key (UUID)
	ReservationID string          `json:"reservationID"`
	PaymentDate   time.Time       `json:"paymentDate"`
	Amount        decimal.Decimal `json:"amount"`
	Method        PaymentMethod   `json:"method"`
	Reference     string          `json:"reference"`
	PaymentType   PaymentType     `json:"paymentType"`
	PostedBy      string          `json:"postedBy"`
	PostedAt      time.Time       `json:"postedAt"`
}

// Folio is the running ledger of a stay: all charges, all payments, and the balance.
type Folio struct {
	ReservationID string          `json:"reservationID"`
	Lines         []FolioLine     `json:"lines"`
	Payments      []Payment       `json:"payments"`
	TotalCharges  decimal.Decimal `json:"totalCharges"`
	TotalPaid     decimal.Decimal `json:"totalPaid"`
	Balance       decimal.Decimal `json:"balance"`
}

// FolioBalance computes balance = sum(charges) - sum(payments). Refund payments
// carry a negative amount and therefore increase the balance again.
func FolioBalance(lines []FolioLine, payments []Payment) decimal.Decimal {
	balance := decimal.Zero
	for _, l := range lines {
		balance = balance.Add(l.Amount)
	}
	for _, p := range payments {
		balance = balance.Sub(p.Amount)
	}
	return balance
}
