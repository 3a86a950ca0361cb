package repositories

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/stayfront/hotel_management_app/internal/core/domain"
)

// ReservationReader defines read operations for reservation data.
type ReservationReader interface {
	// FindReservationByID retrieves a reservation by its unique identifier,
	// scoped to a hotel.
	FindReservationByID(ctx context.Context, hotelID, reservationID string) (*domain.Reservation, error)

	// ListReservationsByHotel retrieves every reservation for the hotel. The
	// in-memory list pipeline (filter/sort/paginate) runs on top of this.
	ListReservationsByHotel(ctx context.Context, hotelID string) ([]domain.Reservation, error)

	// FindReservationsByIDs retrieves the given reservations, keyed by ID.
	// Missing IDs are simply absent from the map.
	FindReservationsByIDs(ctx context.Context, hotelID string, reservationIDs []string) (map[string]domain.Reservation, error)

	// NextReservationSequence returns the next value of the hotel's
	// reservation-number sequence.
	NextReservationSequence(ctx context.Context, hotelID string) (int64, error)
}

// ReservationWriter defines write operations for reservation data.
type ReservationWriter interface {
	// SaveReservation persists a new reservation.
	SaveReservation(ctx context.Context, reservation domain.Reservation) error

	// UpdateReservation persists changes to an existing reservation.
	UpdateReservation(ctx context.Context, reservation domain.Reservation) error

	// UpdateReservationStatus sets the lifecycle status and audit stamps. The
	// guard checks happen in the service; the repository only persists.
	UpdateReservationStatus(ctx context.Context, hotelID, reservationID string, status domain.ReservationStatus, updatedBy string, updatedAt time.Time) error

	// UpdateReservationSettlement sets the derived payment fields after a folio
	// posting (paid amount and payment status).
	UpdateReservationSettlement(ctx context.Context, reservationID string, paidAmount decimal.Decimal, paymentStatus domain.PaymentStatus, updatedBy string, updatedAt time.Time) error
}

// ReservationRepositoryFacade combines all reservation repository interfaces.
type ReservationRepositoryFacade interface {
	ReservationReader
	ReservationWriter
}

// ReservationRepositoryWithTx extends the facade with transaction capabilities.
type ReservationRepositoryWithTx interface {
	ReservationRepositoryFacade
	TransactionManager
}
