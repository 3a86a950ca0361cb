package services

import (
	"context"

	"github.com/stayfront/hotel_management_app/internal/core/domain"
	"github.com/stayfront/hotel_management_app/internal/dto"
)

// HotelReaderSvc defines read operations for hotel data
type HotelReaderSvc interface {
	// FindHotelByID retrieves a specific hotel by its ID.
	FindHotelByID(ctx context.Context, hotelID string, requestingUserID string) (*domain.Hotel, error)

	// ListUserHotels retrieves the hotels a user belongs to.
	ListUserHotels(ctx context.Context, userID string) ([]domain.Hotel, error)

	// ListHotelMembers retrieves all staff users and their roles for a hotel.
	ListHotelMembers(ctx context.Context, hotelID string, requestingUserID string) ([]domain.UserHotel, error)
}

// HotelWriterSvc defines write operations for hotel data
type HotelWriterSvc interface {
	// CreateHotel persists a new hotel and makes the creator its OWNER.
	CreateHotel(ctx context.Context, req dto.CreateHotelRequest, creatorUserID string) (*domain.Hotel, error)

	// UpdateHotel updates hotel details including the tax rate override.
	UpdateHotel(ctx context.Context, hotelID string, req dto.UpdateHotelRequest, requestingUserID string) (*domain.Hotel, error)
}

// HotelMembershipSvc defines operations for managing hotel staff membership
type HotelMembershipSvc interface {
	// AddUserToHotel grants a user a role on a hotel. Only OWNER can grant
	// OWNER; MANAGER can grant up to MANAGER.
	AddUserToHotel(ctx context.Context, requestingUserID string, hotelID string, req dto.AddMemberRequest) error

	// RemoveUserFromHotel revokes a user's membership of a hotel.
	RemoveUserFromHotel(ctx context.Context, requestingUserID string, targetUserID string, hotelID string) error
}

// HotelAuthorizerSvc defines operations for hotel authorization
type HotelAuthorizerSvc interface {
	// AuthorizeUserAction checks if a user holds at least the required role in
	// a hotel. Returns apperrors.ErrForbidden when they do not.
	AuthorizeUserAction(ctx context.Context, userID string, hotelID string, requiredRole domain.UserHotelRole) error
}

// HotelSvcFacade combines all hotel-related service interfaces
// This is a facade for clients that need access to all operations
type HotelSvcFacade interface {
	HotelReaderSvc
	HotelWriterSvc
	HotelMembershipSvc
	HotelAuthorizerSvc
}
