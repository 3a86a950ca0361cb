package repositories

import (
	"context"
	"time"

	"github.com/stayfront/hotel_management_app/internal/core/domain"
)

// HotelReader defines read operations for hotels and memberships.
type HotelReader interface {
	// FindHotelByID retrieves a hotel by its unique identifier.
	FindHotelByID(ctx context.Context, hotelID string) (*domain.Hotel, error)

	// ListHotelsByUser retrieves the hotels the user is a member of.
	ListHotelsByUser(ctx context.Context, userID string) ([]domain.Hotel, error)

	// FindUserHotelRole returns the user's membership in a hotel, or
	// apperrors.ErrNotFound when the user is not a member.
	FindUserHotelRole(ctx context.Context, userID, hotelID string) (*domain.UserHotel, error)

	// ListHotelMembers retrieves the memberships of a hotel.
	ListHotelMembers(ctx context.Context, hotelID string) ([]domain.UserHotel, error)
}

// HotelWriter defines write operations for hotels and memberships.
type HotelWriter interface {
	// SaveHotel persists a new hotel.
	SaveHotel(ctx context.Context, hotel domain.Hotel) error

	// UpdateHotel persists changes to an existing hotel.
	UpdateHotel(ctx context.Context, hotel domain.Hotel) error

	// AddUserToHotel records a membership. Adding an existing member updates
	// the role instead.
	AddUserToHotel(ctx context.Context, membership domain.UserHotel) error

	// RemoveUserFromHotel marks the membership as REMOVED.
	RemoveUserFromHotel(ctx context.Context, userID, hotelID string, removedAt time.Time) error
}

// HotelRepositoryFacade combines all hotel repository interfaces.
type HotelRepositoryFacade interface {
	HotelReader
	HotelWriter
}
