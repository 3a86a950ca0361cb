package repositories

import (
	"context"
	"time"

	"github.com/stayfront/hotel_management_app/internal/core/domain"
)

// RoomReader defines read operations for rooms and room types.
type RoomReader interface {
	// FindRoomByNumber retrieves a room by its number within a hotel.
	FindRoomByNumber(ctx context.Context, hotelID, roomNumber string) (*domain.Room, error)

	// ListRoomsByHotel retrieves all rooms of a hotel.
	ListRoomsByHotel(ctx context.Context, hotelID string) ([]domain.Room, error)

	// ListRoomTypesByHotel retrieves all room types of a hotel.
	ListRoomTypesByHotel(ctx context.Context, hotelID string) ([]domain.RoomType, error)

	// FindRoomTypeByID retrieves a room type by its unique identifier.
	FindRoomTypeByID(ctx context.Context, hotelID, roomTypeID string) (*domain.RoomType, error)

	// CountRoomsByHotel returns the number of rooms in a hotel, used by the
	// occupancy report.
	CountRoomsByHotel(ctx context.Context, hotelID string) (int64, error)
}

// RoomWriter defines write operations for rooms and room types.
type RoomWriter interface {
	// SaveRoom persists a new room.
	SaveRoom(ctx context.Context, room domain.Room) error

	// SaveRoomType persists a new room type.
	SaveRoomType(ctx context.Context, roomType domain.RoomType) error

	// UpdateRoomStatus sets the housekeeping status of a room.
	UpdateRoomStatus(ctx context.Context, hotelID, roomID string, status domain.RoomStatus, updatedBy string, updatedAt time.Time) error
}

// RoomRepositoryFacade combines all room repository interfaces.
type RoomRepositoryFacade interface {
	RoomReader
	RoomWriter
}
