package mapping

import (
	"github.com/stayfront/hotel_management_app/internal/core/domain"
	"github.com/stayfront/hotel_management_app/internal/models"
)

// ToModelHotel converts a domain Hotel to a model Hotel.
func ToModelHotel(d domain.Hotel) models.Hotel {
	return models.Hotel{
		HotelID:        d.HotelID,
		Name:           d.Name,
		Address:        d.Address,
		City:           d.City,
		CurrencyCode:   d.CurrencyCode,
		TaxRatePercent: d.TaxRatePercent,
		IsActive:       d.IsActive,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainHotel converts a model Hotel to a domain Hotel.
func ToDomainHotel(m models.Hotel) domain.Hotel {
	return domain.Hotel{
		HotelID:        m.HotelID,
		Name:           m.Name,
		Address:        m.Address,
		City:           m.City,
		CurrencyCode:   m.CurrencyCode,
		TaxRatePercent: m.TaxRatePercent,
		IsActive:       m.IsActive,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainUserHotel converts a membership row to its domain counterpart.
func ToDomainUserHotel(m models.UserHotel) domain.UserHotel {
	return domain.UserHotel{
		UserID:   m.UserID,
		HotelID:  m.HotelID,
		Role:     domain.UserHotelRole(m.Role),
		JoinedAt: m.JoinedAt,
	}
}
