package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Hotel is an isolated tenant containing rooms, reservations and folios.
type Hotel struct {
	HotelID        string           `json:"hotelID"` // Primary Key (UUID)
	Name           string           `json:"name"`
	Address        string           `json:"address"`
	City           string           `json:"city"`
	CurrencyCode   string           `json:"currencyCode"`   // e.g. "INR"
	TaxRatePercent *decimal.Decimal `json:"taxRatePercent"` // nil -> application default applies
	IsActive       bool             `json:"isActive"`
	AuditFields
}

// UserHotelRole defines the possible roles a staff user can have within a hotel.
type UserHotelRole string

const (
	RoleOwner     UserHotelRole = "OWNER"
	RoleManager   UserHotelRole = "MANAGER"
	RoleFrontdesk UserHotelRole = "FRONTDESK"
	RoleReadOnly  UserHotelRole = "READONLY"
	RoleRemoved   UserHotelRole = "REMOVED" // for users who have been removed from the hotel
)

// Grants reports whether a user holding role may act at the level of required.
// OWNER > MANAGER > FRONTDESK > READONLY; REMOVED grants nothing.
func (r UserHotelRole) Grants(required UserHotelRole) bool {
	rank := map[UserHotelRole]int{
		RoleReadOnly:  1,
		RoleFrontdesk: 2,
		RoleManager:   3,
		RoleOwner:     4,
	}
	have, ok := rank[r]
	if !ok {
		return false
	}
	want, ok := rank[required]
	if !ok {
		return false
	}
	return have >= want
}

// UserHotel represents the membership of a User in a Hotel.
type UserHotel struct {
	UserID   string        `json:"userID"`
	UserName string        `json:"userName"`
	HotelID  string        `json:"hotelID"`
	Role     UserHotelRole `json:"role"`
	JoinedAt time.Time     `json:"joinedAt"`
}
