package services

import (
	"context"
	"time"

	"github.com/stayfront/hotel_management_app/internal/core/domain"
	"github.com/stayfront/hotel_management_app/internal/dto"
	"github.com/stayfront/hotel_management_app/internal/utils/billing"
)

// ReservationReaderSvc defines read operations for reservation data
type ReservationReaderSvc interface {
	// GetReservationByID retrieves a specific reservation by its ID.
	GetReservationByID(ctx context.Context, hotelID string, reservationID string, requestingUserID string) (*domain.Reservation, error)

	// ListReservations retrieves a filtered, sorted, paginated list of
	// reservations in a hotel.
	ListReservations(ctx context.Context, hotelID string, userID string, params dto.ListReservationsParams) (*dto.ListReservationsResponse, error)
}

// ReservationWriterSvc defines write operations for reservation data
type ReservationWriterSvc interface {
	// CreateReservation persists a new reservation in confirmed status with
	// its totals computed from the rate inputs.
	CreateReservation(ctx context.Context, hotelID string, req dto.CreateReservationRequest, creatorUserID string) (*domain.Reservation, error)

	// UpdateReservation updates guest and stay details of a non-terminal
	// reservation and recomputes the totals when pricing inputs change.
	UpdateReservation(ctx context.Context, hotelID string, reservationID string, req dto.UpdateReservationRequest, requestingUserID string) (*domain.Reservation, error)
}

// ReservationTransitionSvc defines lifecycle operations on reservations
type ReservationTransitionSvc interface {
	// TransitionReservation moves a reservation to the target status after
	// checking the transition guard. Checkout additionally requires a settled
	// folio balance.
	TransitionReservation(ctx context.Context, hotelID string, reservationID string, target domain.ReservationStatus, requestingUserID string) (*domain.Reservation, error)

	// BulkTransition applies one transition to many reservations. Failures are
	// isolated per item and reported in the response.
	BulkTransition(ctx context.Context, hotelID string, req dto.BulkTransitionRequest, requestingUserID string) (*dto.BulkTransitionResponse, error)

	// MarkNoShows flags confirmed reservations whose check-in date has passed
	// as no_show. Returns the number of reservations flagged.
	MarkNoShows(ctx context.Context, hotelID string, asOf time.Time, requestingUserID string) (int, error)
}

// BillingCalculatorSvc defines stay-cost calculation operations
type BillingCalculatorSvc interface {
	// QuoteStay computes the cost breakdown of a prospective stay without
	// persisting anything. A nil tax rate falls back to the hotel's rate.
	QuoteStay(ctx context.Context, hotelID string, req dto.QuoteRequest, requestingUserID string) (*billing.Quote, error)
}

// ReservationSvcFacade combines all reservation-related service interfaces
// This is a facade for clients that need access to all operations
type ReservationSvcFacade interface {
	ReservationReaderSvc
	ReservationWriterSvc
	ReservationTransitionSvc
	BillingCalculatorSvc
}
