package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/stayfront/hotel_management_app/internal/core/domain"
)

// PostChargeRequest defines the data needed to post a charge to a folio.
// ChargeDate is a date-only string ("2006-01-02"); empty means today.
type PostChargeRequest struct {
	ChargeType  domain.ChargeType `json:"chargeType" binding:"required,oneof=room tax restaurant laundry minibar misc"`
	Description string            `json:"description" binding:"required"`
	Amount      decimal.Decimal   `json:"amount" binding:"required"`
	ChargeDate  string            `json:"chargeDate" binding:"omitempty,dateonly"`
}

// PostPaymentRequest defines the data needed to record a payment.
type PostPaymentRequest struct {
	PaymentType domain.PaymentType   `json:"paymentType" binding:"required,oneof=deposit payment refund"`
	Method      domain.PaymentMethod `json:"method" binding:"required,oneof=cash card bank_transfer upi"`
	Amount      decimal.Decimal      `json:"amount" binding:"required"`
	Reference   string               `json:"reference"`
	PaymentDate string               `json:"paymentDate" binding:"omitempty,dateonly"`
}

// FolioLineResponse defines the data returned for one folio charge line.
type FolioLineResponse struct {
	FolioLineID   string            `json:"folioLineID"`
	ReservationID string            `json:"reservationID"`
	ChargeDate    string            `json:"chargeDate"`
	ChargeType    domain.ChargeType `json:"chargeType"`
	Description   string            `json:"description"`
	Amount        decimal.Decimal   `json:"amount"`
	PostedBy      string            `json:"postedBy"`
	PostedAt      time.Time         `json:"postedAt"`
}

// PaymentResponse defines the data returned for one payment record.
type PaymentResponse struct {
	PaymentID     string               `json:"paymentID"`
	ReservationID string               `json:"reservationID"`
	PaymentDate   string               `json:"paymentDate"`
	PaymentType   domain.PaymentType   `json:"paymentType"`
	Method        domain.PaymentMethod `json:"method"`
	Amount        decimal.Decimal      `json:"amount"`
	Reference     string               `json:"reference,omitempty"`
	PostedBy      string               `json:"postedBy"`
	PostedAt      time.Time            `json:"postedAt"`
}

// FolioResponse is the full guest folio: every charge and payment plus the
// running totals and outstanding balance.
type FolioResponse struct {
	ReservationID string              `json:"reservationID"`
	Lines         []FolioLineResponse `json:"lines"`
	Payments      []PaymentResponse   `json:"payments"`
	TotalCharges  decimal.Decimal     `json:"totalCharges"`
	TotalPaid     decimal.Decimal     `json:"totalPaid"`
	Balance       decimal.Decimal     `json:"balance"`
}

// ToFolioLineResponse converts a domain.FolioLine to its response DTO.
func ToFolioLineResponse(l *domain.FolioLine) FolioLineResponse {
	return FolioLineResponse{
		FolioLineID:   l.FolioLineID,
		ReservationID: l.ReservationID,
		ChargeDate:    l.ChargeDate.Format(dateLayout),
		ChargeType:    l.ChargeType,
		Description:   l.Description,
		Amount:        l.Amount,
		PostedBy:      l.PostedBy,
		PostedAt:      l.PostedAt,
	}
}

// ToPaymentResponse converts a domain.Payment to its response DTO.
func ToPaymentResponse(p *domain.Payment) PaymentResponse {
	return PaymentResponse{
		PaymentID:     p.PaymentID,
		ReservationID: p.ReservationID,
		PaymentDate:   p.PaymentDate.Format(dateLayout),
		PaymentType:   p.PaymentType,
		Method:        p.Method,
		Amount:        p.Amount,
		Reference:     p.Reference,
		PostedBy:      p.PostedBy,
		PostedAt:      p.PostedAt,
	}
}

// ToFolioResponse converts a domain.Folio to its response DTO.
func ToFolioResponse(f *domain.Folio) FolioResponse {
	lines := make([]FolioLineResponse, len(f.Lines))
	for i := range f.Lines {
		lines[i] = ToFolioLineResponse(&f.Lines[i])
	}
	payments := make([]PaymentResponse, len(f.Payments))
	for i := range f.Payments {
		payments[i] = ToPaymentResponse(&f.Payments[i])
	}
	return FolioResponse{
		ReservationID: f.ReservationID,
		Lines:         lines,
		Payments:      payments,
		TotalCharges:  f.TotalCharges,
		TotalPaid:     f.TotalPaid,
		Balance:       f.Balance,
	}
}
