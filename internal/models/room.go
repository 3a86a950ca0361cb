package models

import "github.com/shopspring/decimal"

// RoomType is the room_types table row.
type RoomType struct {
	RoomTypeID   string          `db:"room_type_id"`
	HotelID      string          `db:"hotel_id"`
	Name         string          `db:"name"`
	Description  string          `db:"description"`
	MaxOccupancy int             `db:"max_occupancy"`
	BaseRate     decimal.Decimal `db:"base_rate"`
	AuditFields
}

// Room is the rooms table row.
type Room struct {
	RoomID     string `db:"room_id"`
	HotelID    string `db:"hotel_id"`
	RoomTypeID string `db:"room_type_id"`
	RoomNumber string `db:"room_number"`
	Floor      string `db:"floor"`
	Status     string `db:"status"`
	AuditFields
}
