package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/stayfront/hotel_management_app/internal/core/domain"
)

// CreateHotelRequest defines the data needed to create a hotel property.
type CreateHotelRequest struct {
	Name           string           `json:"name" binding:"required"`
	Address        string           `json:"address"`
	City           string           `json:"city"`
	CurrencyCode   string           `json:"currencyCode" binding:"omitempty,len=3"`
	TaxRatePercent *decimal.Decimal `json:"taxRatePercent"` // nil -> configured default
}

// UpdateHotelRequest defines the fields allowed to change on a hotel.
type UpdateHotelRequest struct {
	Name           *string          `json:"name"`
	Address        *string          `json:"address"`
	City           *string          `json:"city"`
	CurrencyCode   *string          `json:"currencyCode" binding:"omitempty,len=3"`
	TaxRatePercent *decimal.Decimal `json:"taxRatePercent"`
}

// AddMemberRequest grants a user a role on a hotel.
type AddMemberRequest struct {
	Username string               `json:"username" binding:"required"`
	Role     domain.UserHotelRole `json:"role" binding:"required,oneof=OWNER MANAGER FRONTDESK READONLY"`
}

// HotelResponse defines the data returned for a hotel.
type HotelResponse struct {
	HotelID        string           `json:"hotelID"`
	Name           string           `json:"name"`
	Address        string           `json:"address,omitempty"`
	City           string           `json:"city,omitempty"`
	CurrencyCode   string           `json:"currencyCode"`
	TaxRatePercent *decimal.Decimal `json:"taxRatePercent,omitempty"`
	IsActive       bool             `json:"isActive"`
	CreatedAt      time.Time        `json:"createdAt"`
}

// HotelMemberResponse defines one staff membership row.
type HotelMemberResponse struct {
	UserID   string               `json:"userID"`
	UserName string               `json:"userName"`
	Role     domain.UserHotelRole `json:"role"`
	JoinedAt time.Time            `json:"joinedAt"`
}

// ToHotelResponse converts a domain.Hotel to its response DTO.
func ToHotelResponse(h *domain.Hotel) HotelResponse {
	return HotelResponse{
		HotelID:        h.HotelID,
		Name:           h.Name,
		Address:        h.Address,
		City:           h.City,
		CurrencyCode:   h.CurrencyCode,
		TaxRatePercent: h.TaxRatePercent,
		IsActive:       h.IsActive,
		CreatedAt:      h.CreatedAt,
	}
}

// ToHotelResponses converts a slice of domain hotels.
func ToHotelResponses(hs []domain.Hotel) []HotelResponse {
	res := make([]HotelResponse, len(hs))
	for i := range hs {
		res[i] = ToHotelResponse(&hs[i])
	}
	return res
}

// ToHotelMemberResponse converts a domain.UserHotel membership row.
func ToHotelMemberResponse(m *domain.UserHotel) HotelMemberResponse {
	return HotelMemberResponse{
		UserID:   m.UserID,
		UserName: m.UserName,
		Role:     m.Role,
		JoinedAt: m.JoinedAt,
	}
}

// ToHotelMemberResponses converts a slice of membership rows.
func ToHotelMemberResponses(ms []domain.UserHotel) []HotelMemberResponse {
	res := make([]HotelMemberResponse, len(ms))
	for i := range ms {
		res[i] = ToHotelMemberResponse(&ms[i])
	}
	return res
}
