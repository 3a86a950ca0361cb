package services

import (
	"context"

	"github.com/stayfront/hotel_management_app/internal/core/domain"
	"github.com/stayfront/hotel_management_app/internal/dto"
)

// RoomReaderSvc defines read operations for rooms and room types
type RoomReaderSvc interface {
	// ListRooms retrieves all rooms of a hotel.
	ListRooms(ctx context.Context, hotelID string, requestingUserID string) ([]domain.Room, error)

	// ListRoomTypes retrieves all room types of a hotel.
	ListRoomTypes(ctx context.Context, hotelID string, requestingUserID string) ([]domain.RoomType, error)
}

// RoomWriterSvc defines write operations for rooms and room types
type RoomWriterSvc interface {
	// CreateRoomType persists a new room type.
	CreateRoomType(ctx context.Context, hotelID string, req dto.CreateRoomTypeRequest, creatorUserID string) (*domain.RoomType, error)

	// CreateRoom registers a new room under an existing room type.
	CreateRoom(ctx context.Context, hotelID string, req dto.CreateRoomRequest, creatorUserID string) (*domain.Room, error)

	// UpdateRoomStatus sets the housekeeping status of a room.
	UpdateRoomStatus(ctx context.Context, hotelID string, roomID string, status domain.RoomStatus, requestingUserID string) error
}

// RoomSvcFacade combines all room-related service interfaces
type RoomSvcFacade interface {
	RoomReaderSvc
	RoomWriterSvc
}
