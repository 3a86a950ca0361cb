package mapping

import (
	"github.com/stayfront/hotel_management_app/internal/core/domain"
	"github.com/stayfront/hotel_management_app/internal/models"
)

// ToModelRoomType converts a domain RoomType to a model RoomType.
func ToModelRoomType(d domain.RoomType) models.RoomType {
	return models.RoomType{
		RoomTypeID:   d.RoomTypeID,
		HotelID:      d.HotelID,
		Name:         d.Name,
		Description:  d.Description,
		MaxOccupancy: d.MaxOccupancy,
		BaseRate:     d.BaseRate,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainRoomType converts a model RoomType to a domain RoomType.
func ToDomainRoomType(m models.RoomType) domain.RoomType {
	return domain.RoomType{
		RoomTypeID:   m.RoomTypeID,
		HotelID:      m.HotelID,
		Name:         m.Name,
		Description:  m.Description,
		MaxOccupancy: m.MaxOccupancy,
		BaseRate:     m.BaseRate,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelRoom converts a domain Room to a model Room.
func ToModelRoom(d domain.Room) models.Room {
	return models.Room{
		RoomID:      d.RoomID,
		HotelID:     d.HotelID,
		RoomTypeID:  d.RoomTypeID,
		RoomNumber:  d.RoomNumber,
		Floor:       d.Floor,
		Status:      string(d.Status),
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainRoom converts a model Room to a domain Room.
func ToDomainRoom(m models.Room) domain.Room {
	return domain.Room{
		RoomID:      m.RoomID,
		HotelID:     m.HotelID,
		RoomTypeID:  m.RoomTypeID,
		RoomNumber:  m.RoomNumber,
		Floor:       m.Floor,
		Status:      domain.RoomStatus(m.Status),
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainRoomSlice converts a slice of model Rooms.
func ToDomainRoomSlice(ms []models.Room) []domain.Room {
	ds := make([]domain.Room, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainRoom(m)
	}
	return ds
}

// ToDomainRoomTypeSlice converts a slice of model RoomTypes.
func ToDomainRoomTypeSlice(ms []models.RoomType) []domain.RoomType {
	ds := make([]domain.RoomType, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainRoomType(m)
	}
	return ds
}
