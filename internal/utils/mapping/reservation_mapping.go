package mapping

import (
	"github.com/stayfront/hotel_management_app/internal/core/domain"
	"github.com/stayfront/hotel_management_app/internal/models"
)

// ToModelReservation converts a domain Reservation to a model Reservation.
func ToModelReservation(d domain.Reservation) models.Reservation {
	return models.Reservation{
		ReservationID:     d.ReservationID,
		HotelID:           d.HotelID,
		ReservationNumber: d.ReservationNumber,
		GuestName:         d.GuestName,
		GuestEmail:        d.GuestEmail,
		GuestPhone:        d.GuestPhone,
		IDType:            d.IDType,
		IDNumber:          d.IDNumber,
		Nationality:       d.Nationality,
		CheckInDate:       d.CheckInDate,
		CheckOutDate:      d.CheckOutDate,
		NumAdults:         d.NumAdults,
		NumChildren:       d.NumChildren,
		RoomType:          d.RoomType,
		RoomNumber:        d.RoomNumber,
		BaseRate:          d.BaseRate,
		DiscountPercent:   d.DiscountPercent,
		TaxRatePercent:    d.TaxRatePercent,
		ExtraCharges:      d.ExtraCharges,
		TaxAmount:         d.TaxAmount,
		TotalAmount:       d.TotalAmount,
		DepositAmount:     d.DepositAmount,
		PaidAmount:        d.PaidAmount,
		Status:            models.ReservationStatus(d.Status),
		PaymentStatus:     models.PaymentStatus(d.PaymentStatus),
		SpecialRequests:   d.SpecialRequests,
		AuditFields:       ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainReservation converts a model Reservation to a domain Reservation.
func ToDomainReservation(m models.Reservation) domain.Reservation {
	return domain.Reservation{
		ReservationID:     m.ReservationID,
		HotelID:           m.HotelID,
		ReservationNumber: m.ReservationNumber,
		GuestName:         m.GuestName,
		GuestEmail:        m.GuestEmail,
		GuestPhone:        m.GuestPhone,
		IDType:            m.IDType,
		IDNumber:          m.IDNumber,
		Nationality:       m.Nationality,
		CheckInDate:       m.CheckInDate,
		CheckOutDate:      m.CheckOutDate,
		NumAdults:         m.NumAdults,
		NumChildren:       m.NumChildren,
		RoomType:          m.RoomType,
		RoomNumber:        m.RoomNumber,
		BaseRate:          m.BaseRate,
		DiscountPercent:   m.DiscountPercent,
		TaxRatePercent:    m.TaxRatePercent,
		ExtraCharges:      m.ExtraCharges,
		TaxAmount:         m.TaxAmount,
		TotalAmount:       m.TotalAmount,
		DepositAmount:     m.DepositAmount,
		PaidAmount:        m.PaidAmount,
		Status:            domain.ReservationStatus(m.Status),
		PaymentStatus:     domain.PaymentStatus(m.PaymentStatus),
		SpecialRequests:   m.SpecialRequests,
		AuditFields:       ToDomainAuditFields(m.AuditFields),
	}
}
