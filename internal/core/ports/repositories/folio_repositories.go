package repositories

import (
	"context"

	"github.com/stayfront/hotel_management_app/internal/core/domain"
)

// FolioReader defines read operations for folio lines and payments.
type FolioReader interface {
	// FindFolioLinesByReservationID retrieves all charges posted against a
	// reservation, oldest first.
	FindFolioLinesByReservationID(ctx context.Context, reservationID string) ([]domain.FolioLine, error)

	// FindPaymentsByReservationID retrieves all payments posted against a
	// reservation, oldest first.
	FindPaymentsByReservationID(ctx context.Context, reservationID string) ([]domain.Payment, error)
}

// FolioWriter defines write operations for folio lines and payments. Both
// tables are append-only; there are no update or delete operations.
type FolioWriter interface {
	// SaveFolioLine appends a charge to the reservation's folio.
	SaveFolioLine(ctx context.Context, line domain.FolioLine) error

	// SavePayment appends a payment to the reservation's folio.
	SavePayment(ctx context.Context, payment domain.Payment) error
}

// FolioRepositoryFacade combines all folio repository interfaces.
type FolioRepositoryFacade interface {
	FolioReader
	FolioWriter
}
