package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/stayfront/hotel_management_app/internal/apperrors"
	"github.com/stayfront/hotel_management_app/internal/core/domain"
	portsrepo "github.com/stayfront/hotel_management_app/internal/core/ports/repositories"
	portssvc "github.com/stayfront/hotel_management_app/internal/core/ports/services"
	"github.com/stayfront/hotel_management_app/internal/dto"
	"github.com/stayfront/hotel_management_app/internal/middleware"
)

// RoomService handles business logic for rooms and room types.
type RoomService struct {
	roomRepo portsrepo.RoomRepositoryFacade
	hotelSvc portssvc.HotelAuthorizerSvc
}

// NewRoomService creates a new RoomService.
func NewRoomService(rr portsrepo.RoomRepositoryFacade, authorizer portssvc.HotelAuthorizerSvc) portssvc.RoomSvcFacade {
	return &RoomService{
		roomRepo: rr,
		hotelSvc: authorizer,
	}
}

var _ portssvc.RoomSvcFacade = (*RoomService)(nil)

// ListRooms retrieves all rooms of a hotel.
func (s *RoomService) ListRooms(ctx context.Context, hotelID string, requestingUserID string) ([]domain.Room, error) {
	if err := s.hotelSvc.AuthorizeUserAction(ctx, requestingUserID, hotelID, domain.RoleReadOnly); err != nil {
		return nil, err
	}
	return s.roomRepo.ListRoomsByHotel(ctx, hotelID)
}

// ListRoomTypes retrieves all room types of a hotel.
func (s *RoomService) ListRoomTypes(ctx context.Context, hotelID string, requestingUserID string) ([]domain.RoomType, error) {
	if err := s.hotelSvc.AuthorizeUserAction(ctx, requestingUserID, hotelID, domain.RoleReadOnly); err != nil {
		return nil, err
	}
	return s.roomRepo.ListRoomTypesByHotel(ctx, hotelID)
}

// CreateRoomType persists a new room type.
func (s *RoomService) CreateRoomType(ctx context.Context, hotelID string, req dto.CreateRoomTypeRequest, creatorUserID string) (*domain.RoomType, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.hotelSvc.AuthorizeUserAction(ctx, creatorUserID, hotelID, domain.RoleManager); err != nil {
		return nil, err
	}
	if req.BaseRate.IsNegative() {
		return nil, fmt.Errorf("%w: base rate must not be negative", apperrors.ErrValidation)
	}

	now := time.Now()
	roomType := domain.RoomType{
		RoomTypeID:   uuid.NewString(),
		HotelID:      hotelID,
		Name:         req.Name,
		Description:  req.Description,
		MaxOccupancy: req.MaxOccupancy,
		BaseRate:     req.BaseRate,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}
	if err := s.roomRepo.SaveRoomType(ctx, roomType); err != nil {
		logger.Error("Failed to save room type", slog.String("error", err.Error()), slog.String("hotel_id", hotelID))
		return nil, fmt.Errorf("failed to create room type: %w", err)
	}

	return &roomType, nil
}

// CreateRoom registers a new room under an existing room type.
func (s *RoomService) CreateRoom(ctx context.Context, hotelID string, req dto.CreateRoomRequest, creatorUserID string) (*domain.Room, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.hotelSvc.AuthorizeUserAction(ctx, creatorUserID, hotelID, domain.RoleManager); err != nil {
		return nil, err
	}

	if _, err := s.roomRepo.FindRoomTypeByID(ctx, hotelID, req.RoomTypeID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: room type %s not found", apperrors.ErrValidation, req.RoomTypeID)
		}
		return nil, fmt.Errorf("failed to validate room type: %w", err)
	}

	if _, err := s.roomRepo.FindRoomByNumber(ctx, hotelID, req.RoomNumber); err == nil {
		return nil, fmt.Errorf("%w: room %s already exists", apperrors.ErrDuplicate, req.RoomNumber)
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check room number availability: %w", err)
	}

	now := time.Now()
	room := domain.Room{
		RoomID:     uuid.NewString(),
		HotelID:    hotelID,
		RoomTypeID: req.RoomTypeID,
		RoomNumber: req.RoomNumber,
		Floor:      req.Floor,
		Status:     domain.RoomAvailable,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}
	if err := s.roomRepo.SaveRoom(ctx, room); err != nil {
		logger.Error("Failed to save room", slog.String("error", err.Error()), slog.String("hotel_id", hotelID))
		return nil, fmt.Errorf("failed to create room: %w", err)
	}

	return &room, nil
}

// UpdateRoomStatus sets the housekeeping status of a room.
func (s *RoomService) UpdateRoomStatus(ctx context.Context, hotelID string, roomID string, status domain.RoomStatus, requestingUserID string) error {
	if err := s.hotelSvc.AuthorizeUserAction(ctx, requestingUserID, hotelID, domain.RoleFrontdesk); err != nil {
		return err
	}
	if !status.IsValid() {
		return fmt.Errorf("%w: unknown room status %s", apperrors.ErrValidation, status)
	}
	return s.roomRepo.UpdateRoomStatus(ctx, hotelID, roomID, status, requestingUserID, time.Now())
}
