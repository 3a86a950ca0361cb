package dto

import (
	"github.com/shopspring/decimal"

	"github.com/stayfront/hotel_management_app/internal/core/domain"
)

// CreateRoomTypeRequest defines the data needed to create a room type.
type CreateRoomTypeRequest struct {
	Name         string          `json:"name" binding:"required"`
	Description  string          `json:"description"`
	MaxOccupancy int             `json:"maxOccupancy" binding:"required,min=1"`
	BaseRate     decimal.Decimal `json:"baseRate" binding:"required"`
}

// CreateRoomRequest defines the data needed to register a room.
type CreateRoomRequest struct {
	RoomNumber string `json:"roomNumber" binding:"required"`
	RoomTypeID string `json:"roomTypeID" binding:"required"`
	Floor      string `json:"floor"`
}

// UpdateRoomStatusRequest sets the housekeeping status of a room.
type UpdateRoomStatusRequest struct {
	Status domain.RoomStatus `json:"status" binding:"required,oneof=available occupied cleaning maintenance"`
}

// RoomTypeResponse defines the data returned for a room type.
type RoomTypeResponse struct {
	RoomTypeID   string          `json:"roomTypeID"`
	HotelID      string          `json:"hotelID"`
	Name         string          `json:"name"`
	Description  string          `json:"description,omitempty"`
	MaxOccupancy int             `json:"maxOccupancy"`
	BaseRate     decimal.Decimal `json:"baseRate"`
}

// RoomResponse defines the data returned for a room.
type RoomResponse struct {
	RoomID     string            `json:"roomID"`
	HotelID    string            `json:"hotelID"`
	RoomTypeID string            `json:"roomTypeID"`
	RoomNumber string            `json:"roomNumber"`
	Floor      string            `json:"floor,omitempty"`
	Status     domain.RoomStatus `json:"status"`
}

// ToRoomTypeResponse converts a domain.RoomType to its response DTO.
func ToRoomTypeResponse(rt *domain.RoomType) RoomTypeResponse {
	return RoomTypeResponse{
		RoomTypeID:   rt.RoomTypeID,
		HotelID:      rt.HotelID,
		Name:         rt.Name,
		Description:  rt.Description,
		MaxOccupancy: rt.MaxOccupancy,
		BaseRate:     rt.BaseRate,
	}
}

// ToRoomResponse converts a domain.Room to its response DTO.
func ToRoomResponse(r *domain.Room) RoomResponse {
	return RoomResponse{
		RoomID:     r.RoomID,
		HotelID:    r.HotelID,
		RoomTypeID: r.RoomTypeID,
		RoomNumber: r.RoomNumber,
		Floor:      r.Floor,
		Status:     r.Status,
	}
}

// ToRoomResponses converts a slice of domain rooms.
func ToRoomResponses(rs []domain.Room) []RoomResponse {
	res := make([]RoomResponse, len(rs))
	for i := range rs {
		res[i] = ToRoomResponse(&rs[i])
	}
	return res
}

// ToRoomTypeResponses converts a slice of domain room types.
func ToRoomTypeResponses(rts []domain.RoomType) []RoomTypeResponse {
	res := make([]RoomTypeResponse, len(rts))
	for i := range rts {
		res[i] = ToRoomTypeResponse(&rts[i])
	}
	return res
}
