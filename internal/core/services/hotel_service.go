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

// HotelService handles business logic related to hotels and staff memberships.
type HotelService struct {
	hotelRepo portsrepo.HotelRepositoryFacade
	userRepo  portsrepo.UserReader
}

// NewHotelService creates a new HotelService.
func NewHotelService(hr portsrepo.HotelRepositoryFacade, ur portsrepo.UserReader) portssvc.HotelSvcFacade {
	return &HotelService{
		hotelRepo: hr,
		userRepo:  ur,
	}
}

var _ portssvc.HotelSvcFacade = (*HotelService)(nil)

// CreateHotel creates a new hotel and makes the creator the initial OWNER.
func (s *HotelService) CreateHotel(ctx context.Context, req dto.CreateHotelRequest, creatorUserID string) (*domain.Hotel, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	now := time.Now()
	hotel := domain.Hotel{
		HotelID:        uuid.NewString(),
		Name:           req.Name,
		Address:        req.Address,
		City:           req.City,
		CurrencyCode:   req.CurrencyCode,
		TaxRatePercent: req.TaxRatePercent,
		IsActive:       true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}
	if hotel.CurrencyCode == "" {
		hotel.CurrencyCode = "INR"
	}
	if req.TaxRatePercent != nil && (req.TaxRatePercent.IsNegative() || req.TaxRatePercent.GreaterThan(hundred)) {
		return nil, fmt.Errorf("%w: tax rate must be between 0 and 100", apperrors.ErrValidation)
	}

	if err := s.hotelRepo.SaveHotel(ctx, hotel); err != nil {
		logger.Error("Failed to save hotel in repository", slog.String("error", err.Error()), slog.String("hotel_name", req.Name))
		return nil, fmt.Errorf("failed to create hotel: %w", err)
	}

	membership := domain.UserHotel{
		UserID:   creatorUserID,
		HotelID:  hotel.HotelID,
		Role:     domain.RoleOwner,
		JoinedAt: now,
	}
	if err := s.hotelRepo.AddUserToHotel(ctx, membership); err != nil {
		logger.Error("Failed to add creator as owner of new hotel", slog.String("error", err.Error()), slog.String("hotel_id", hotel.HotelID))
		return nil, fmt.Errorf("failed to add creator membership: %w", err)
	}

	logger.Info("Hotel created successfully", slog.String("hotel_id", hotel.HotelID), slog.String("creator_user_id", creatorUserID))
	return &hotel, nil
}

// UpdateHotel updates hotel details including the tax rate override.
func (s *HotelService) UpdateHotel(ctx context.Context, hotelID string, req dto.UpdateHotelRequest, requestingUserID string) (*domain.Hotel, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.AuthorizeUserAction(ctx, requestingUserID, hotelID, domain.RoleManager); err != nil {
		return nil, err
	}

	hotel, err := s.hotelRepo.FindHotelByID(ctx, hotelID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		hotel.Name = *req.Name
	}
	if req.Address != nil {
		hotel.Address = *req.Address
	}
	if req.City != nil {
		hotel.City = *req.City
	}
	if req.CurrencyCode != nil {
		hotel.CurrencyCode = *req.CurrencyCode
	}
	if req.TaxRatePercent != nil {
		if req.TaxRatePercent.IsNegative() || req.TaxRatePercent.GreaterThan(hundred) {
			return nil, fmt.Errorf("%w: tax rate must be between 0 and 100", apperrors.ErrValidation)
		}
		hotel.TaxRatePercent = req.TaxRatePercent
	}
	hotel.LastUpdatedAt = time.Now()
	hotel.LastUpdatedBy = requestingUserID

	if err := s.hotelRepo.UpdateHotel(ctx, *hotel); err != nil {
		logger.Error("Failed to update hotel in repository", slog.String("error", err.Error()), slog.String("hotel_id", hotelID))
		return nil, fmt.Errorf("failed to update hotel: %w", err)
	}

	return hotel, nil
}

// FindHotelByID retrieves a hotel the requesting user is a member of.
func (s *HotelService) FindHotelByID(ctx context.Context, hotelID string, requestingUserID string) (*domain.Hotel, error) {
	if err := s.AuthorizeUserAction(ctx, requestingUserID, hotelID, domain.RoleReadOnly); err != nil {
		return nil, err
	}
	return s.hotelRepo.FindHotelByID(ctx, hotelID)
}

// ListUserHotels retrieves the hotels a user belongs to.
func (s *HotelService) ListUserHotels(ctx context.Context, userID string) ([]domain.Hotel, error) {
	return s.hotelRepo.ListHotelsByUser(ctx, userID)
}

// ListHotelMembers retrieves all staff users and their roles for a hotel.
func (s *HotelService) ListHotelMembers(ctx context.Context, hotelID string, requestingUserID string) ([]domain.UserHotel, error) {
	if err := s.AuthorizeUserAction(ctx, requestingUserID, hotelID, domain.RoleReadOnly); err != nil {
		return nil, err
	}
	return s.hotelRepo.ListHotelMembers(ctx, hotelID)
}

// AddUserToHotel grants a user a role on a hotel. Granting OWNER requires
// OWNER; everything else requires MANAGER.
func (s *HotelService) AddUserToHotel(ctx context.Context, requestingUserID string, hotelID string, req dto.AddMemberRequest) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	requiredRole := domain.RoleManager
	if req.Role == domain.RoleOwner {
		requiredRole = domain.RoleOwner
	}
	if err := s.AuthorizeUserAction(ctx, requestingUserID, hotelID, requiredRole); err != nil {
		return err
	}

	target, err := s.userRepo.FindUserByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("%w: user %s not found", apperrors.ErrValidation, req.Username)
		}
		return fmt.Errorf("failed to look up user: %w", err)
	}

	membership := domain.UserHotel{
		UserID:   target.UserID,
		UserName: target.Username,
		HotelID:  hotelID,
		Role:     req.Role,
		JoinedAt: time.Now(),
	}
	if err := s.hotelRepo.AddUserToHotel(ctx, membership); err != nil {
		logger.Error("Failed to add user to hotel in repository", slog.String("error", err.Error()), slog.String("target_user_id", target.UserID), slog.String("hotel_id", hotelID))
		return fmt.Errorf("failed to add user to hotel: %w", err)
	}

	logger.Info("User added to hotel", slog.String("target_user_id", target.UserID), slog.String("hotel_id", hotelID), slog.String("role", string(req.Role)))
	return nil
}

// RemoveUserFromHotel revokes a user's membership of a hotel.
func (s *HotelService) RemoveUserFromHotel(ctx context.Context, requestingUserID string, targetUserID string, hotelID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.AuthorizeUserAction(ctx, requestingUserID, hotelID, domain.RoleManager); err != nil {
		return err
	}

	targetMembership, err := s.hotelRepo.FindUserHotelRole(ctx, targetUserID, hotelID)
	if err != nil {
		return err
	}
	// Only an OWNER may remove another OWNER; the last OWNER cannot be removed.
	if targetMembership.Role == domain.RoleOwner {
		if err := s.AuthorizeUserAction(ctx, requestingUserID, hotelID, domain.RoleOwner); err != nil {
			return err
		}
		members, err := s.hotelRepo.ListHotelMembers(ctx, hotelID)
		if err != nil {
			return fmt.Errorf("failed to list hotel members: %w", err)
		}
		owners := 0
		for _, m := range members {
			if m.Role == domain.RoleOwner {
				owners++
			}
		}
		if owners <= 1 {
			return fmt.Errorf("%w: cannot remove the last owner of a hotel", apperrors.ErrValidation)
		}
	}

	if err := s.hotelRepo.RemoveUserFromHotel(ctx, targetUserID, hotelID, time.Now()); err != nil {
		logger.Error("Failed to remove user from hotel", slog.String("error", err.Error()), slog.String("target_user_id", targetUserID), slog.String("hotel_id", hotelID))
		return fmt.Errorf("failed to remove user from hotel: %w", err)
	}

	logger.Info("User removed from hotel", slog.String("target_user_id", targetUserID), slog.String("hotel_id", hotelID))
	return nil
}

// AuthorizeUserAction checks if a user holds at least the required role in a hotel.
func (s *HotelService) AuthorizeUserAction(ctx context.Context, userID string, hotelID string, requiredRole domain.UserHotelRole) error {
	membership, err := s.hotelRepo.FindUserHotelRole(ctx, userID, hotelID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("%w: user is not a member of this hotel", apperrors.ErrForbidden)
		}
		return fmt.Errorf("failed to check hotel membership: %w", err)
	}
	if !membership.Role.Grants(requiredRole) {
		return fmt.Errorf("%w: requires %s role", apperrors.ErrForbidden, requiredRole)
	}
	return nil
}
