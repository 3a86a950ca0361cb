package domain

import "github.com/shopspring/decimal"

// RoomStatus is the housekeeping state of a physical room.
type RoomStatus string

const (
	RoomAvailable   RoomStatus = "available"
	RoomOccupied    RoomStatus = "occupied"
	RoomCleaning    RoomStatus = "cleaning"
	RoomMaintenance RoomStatus = "maintenance"
)

// IsValid reports whether s is a known room status.
func (s RoomStatus) IsValid() bool {
	switch s {
	case RoomAvailable, RoomOccupied, RoomCleaning, RoomMaintenance:
		return true
	}
	return false
}

// RoomType is a named category of rooms with a default nightly rate.
type RoomType struct {
	RoomTypeID   string          `json:"roomTypeID"` // Primary Key (UUID)
	HotelID      string          `json:"hotelID"`
	Name         string          `json:"name"` // Standard, Deluxe, ...
	Description  string          `json:"description"`
	MaxOccupancy int             `json:"maxOccupancy"`
	BaseRate     decimal.Decimal `json:"baseRate"` // default per-night rate
	AuditFields
}

// Room is a physical, numbered room belonging to a hotel.
type Room struct {
	RoomID     string     `json:"roomID"` // Primary Key (UUID)
	HotelID    string     `json:"hotelID"`
	RoomTypeID string     `json:"roomTypeID"`
	RoomNumber string     `json:"roomNumber"` // unique per hotel
	Floor      string     `json:"floor"`
	Status     RoomStatus `json:"status"`
	AuditFields
}
