package mapping

import (
	"github.com/stayfront/hotel_management_app/internal/core/domain"
	"github.com/stayfront/hotel_management_app/internal/models"
)

// ToModelFolioLine converts a domain FolioLine to a model FolioLine.
func ToModelFolioLine(d domain.FolioLine) models.FolioLine {
	return models.FolioLine{
		FolioLineID:   d.FolioLineID,
		ReservationID: d.ReservationID,
		ChargeDate:    d.ChargeDate,
		Description:   d.Description,
		Amount:        d.Amount,
		ChargeType:    string(d.ChargeType),
		PostedBy:      d.PostedBy,
		PostedAt:      d.PostedAt,
	}
}

// ToDomainFolioLine converts a model FolioLine to a domain FolioLine.
func ToDomainFolioLine(m models.FolioLine) domain.FolioLine {
	return domain.FolioLine{
		FolioLineID:   m.FolioLineID,
		ReservationID: m.ReservationID,
		ChargeDate:    m.ChargeDate,
		Description:   m.Description,
		Amount:        m.Amount,
		ChargeType:    domain.ChargeType(m.ChargeType),
		PostedBy:      m.PostedBy,
		PostedAt:      m.PostedAt,
	}
}

// ToDomainFolioLineSlice converts a slice of model FolioLines.
func ToDomainFolioLineSlice(ms []models.FolioLine) []domain.FolioLine {
	ds := make([]domain.FolioLine, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainFolioLine(m)
	}
	return ds
}

// ToModelPayment converts a domain Payment to a model Payment.
func ToModelPayment(d domain.Payment) models.Payment {
	return models.Payment{
		PaymentID:     d.PaymentID,
		ReservationID: d.ReservationID,
		PaymentDate:   d.PaymentDate,
		Amount:        d.Amount,
		Method:        string(d.Method),
		Reference:     d.Reference,
		PaymentType:   string(d.PaymentType),
		PostedBy:      d.PostedBy,
		PostedAt:      d.PostedAt,
	}
}

// ToDomainPayment converts a model Payment to a domain Payment.
func ToDomainPayment(m models.Payment) domain.Payment {
	return domain.Payment{
		PaymentID:     m.PaymentID,
		ReservationID: m.ReservationID,
		PaymentDate:   m.PaymentDate,
		Amount:        m.Amount,
		Method:        domain.PaymentMethod(m.Method),
		Reference:     m.Reference,
		PaymentType:   domain.PaymentType(m.PaymentType),
		PostedBy:      m.PostedBy,
		PostedAt:      m.PostedAt,
	}
}

// ToDomainPaymentSlice converts a slice of model Payments.
func ToDomainPaymentSlice(ms []models.Payment) []domain.Payment {
	ds := make([]domain.Payment, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainPayment(m)
	}
	return ds
}
