package repositories

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/stayfront/hotel_management_app/internal/core/domain"
)

// ReportingRepository defines the read-only aggregate queries behind the
// owner/manager reports.
type ReportingRepository interface {
	// GetDailyRevenue returns one row per day in [from, to] with folio revenue
	// broken out by charge type, plus payments taken.
	GetDailyRevenue(ctx context.Context, hotelID string, from, to time.Time) ([]domain.DailyRevenueRow, error)

	// GetOccupancy aggregates room-nights occupied and room revenue over
	// reservations whose stay overlaps [from, to].
	GetOccupancy(ctx context.Context, hotelID string, from, to time.Time) (roomNightsOccupied int64, roomRevenue decimal.Decimal, err error)

	// GetStatusCounts returns the number of reservations per lifecycle status.
	GetStatusCounts(ctx context.Context, hotelID string) ([]domain.StatusCountRow, error)
}
