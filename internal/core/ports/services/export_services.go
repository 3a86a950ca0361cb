package services

import (
	"context"

	"github.com/stayfront/hotel_management_app/internal/dto"
)

// ExportService defines operations for exporting reservation data
type ExportService interface {
	// ExportReservations encodes the filtered reservation list of a hotel in
	// the requested format. Unsupported formats return apperrors.ErrValidation.
	ExportReservations(ctx context.Context, hotelID string, userID string, params dto.ExportParams) (*dto.ExportResult, error)
}
