package services

import (
	"context"
	"time"

	"github.com/stayfront/hotel_management_app/internal/dto"
)

// ReportingService defines operations for generating back-office reports
type ReportingService interface {
	// DailyRevenue generates the per-day revenue report for a date range.
	DailyRevenue(ctx context.Context, hotelID string, from, to time.Time, userID string) (*dto.DailyRevenueResponse, error)

	// Occupancy generates the occupancy report with ADR and RevPAR for a
	// date range.
	Occupancy(ctx context.Context, hotelID string, from, to time.Time, userID string) (*dto.OccupancyResponse, error)

	// StatusCounts returns the dashboard breakdown of reservations by status.
	StatusCounts(ctx context.Context, hotelID string, userID string) (*dto.StatusCountsResponse, error)
}
