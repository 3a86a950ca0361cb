package services

import (
	"context"

	"github.com/stayfront/hotel_management_app/internal/core/domain"
	"github.com/stayfront/hotel_management_app/internal/dto"
)

// FolioReaderSvc defines read operations for folio data
type FolioReaderSvc interface {
	// GetFolio retrieves the full folio of a reservation: charges, payments,
	// totals and balance.
	GetFolio(ctx context.Context, hotelID string, reservationID string, requestingUserID string) (*domain.Folio, error)
}

// FolioWriterSvc defines write operations for folio data.
// Charges and payments are append-only; corrections are posted as new lines.
type FolioWriterSvc interface {
	// PostCharge appends a charge line to the reservation's folio.
	PostCharge(ctx context.Context, hotelID string, reservationID string, req dto.PostChargeRequest, postingUserID string) (*domain.FolioLine, error)

	// PostPayment records a payment against the reservation and refreshes the
	// reservation's paid amount and payment status.
	PostPayment(ctx context.Context, hotelID string, reservationID string, req dto.PostPaymentRequest, postingUserID string) (*domain.Payment, error)
}

// FolioSvcFacade combines all folio-related service interfaces
type FolioSvcFacade interface {
	FolioReaderSvc
	FolioWriterSvc
}
