package services

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/stayfront/hotel_management_app/internal/apperrors"
	"github.com/stayfront/hotel_management_app/internal/core/domain"
	portsrepo "github.com/stayfront/hotel_management_app/internal/core/ports/repositories"
	portssvc "github.com/stayfront/hotel_management_app/internal/core/ports/services"
	"github.com/stayfront/hotel_management_app/internal/dto"
)

// reportingService composes the aggregate repository queries into the
// owner/manager reports.
type reportingService struct {
	reportingRepo portsrepo.ReportingRepository
	roomRepo      portsrepo.RoomReader
	hotelSvc      portssvc.HotelAuthorizerSvc
}

// NewReportingService creates a new reporting service.
func NewReportingService(repo portsrepo.ReportingRepository, roomRepo portsrepo.RoomReader, authorizer portssvc.HotelAuthorizerSvc) portssvc.ReportingService {
	return &reportingService{
		reportingRepo: repo,
		roomRepo:      roomRepo,
		hotelSvc:      authorizer,
	}
}

var _ portssvc.ReportingService = (*reportingService)(nil)

func validateRange(from, to time.Time) error {
	if to.Before(from) {
		return fmt.Errorf("%w: report range end must not precede its start", apperrors.ErrValidation)
	}
	return nil
}

// DailyRevenue generates the per-day revenue report for a date range.
func (s *reportingService) DailyRevenue(ctx context.Context, hotelID string, from, to time.Time, userID string) (*dto.DailyRevenueResponse, error) {
	if err := s.hotelSvc.AuthorizeUserAction(ctx, userID, hotelID, domain.RoleManager); err != nil {
		return nil, err
	}
	if err := validateRange(from, to); err != nil {
		return nil, err
	}

	rows, err := s.reportingRepo.GetDailyRevenue(ctx, hotelID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to compute daily revenue: %w", err)
	}

	total := decimal.Zero
	for _, row := range rows {
		total = total.Add(row.TotalRevenue)
	}

	return &dto.DailyRevenueResponse{
		HotelID: hotelID,
		From:    from.Format("2006-01-02"),
		To:      to.Format("2006-01-02"),
		Rows:    rows,
		Total:   total.Round(2),
	}, nil
}

// Occupancy generates the occupancy report with ADR and RevPAR.
//
// ADR = room revenue / room-nights occupied.
// RevPAR = room revenue / room-nights available.
func (s *reportingService) Occupancy(ctx context.Context, hotelID string, from, to time.Time, userID string) (*dto.OccupancyResponse, error) {
	if err := s.hotelSvc.AuthorizeUserAction(ctx, userID, hotelID, domain.RoleManager); err != nil {
		return nil, err
	}
	if err := validateRange(from, to); err != nil {
		return nil, err
	}

	occupied, roomRevenue, err := s.reportingRepo.GetOccupancy(ctx, hotelID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to compute occupancy: %w", err)
	}
	roomCount, err := s.roomRepo.CountRoomsByHotel(ctx, hotelID)
	if err != nil {
		return nil, fmt.Errorf("failed to count rooms: %w", err)
	}

	days := int64(to.Sub(from).Hours()/24) + 1 // inclusive range
	available := roomCount * days

	resp := &dto.OccupancyResponse{
		HotelID:            hotelID,
		From:               from.Format("2006-01-02"),
		To:                 to.Format("2006-01-02"),
		RoomCount:          roomCount,
		RoomNightsTotal:    available,
		RoomNightsOccupied: occupied,
		OccupancyPercent:   decimal.Zero,
		ADR:                decimal.Zero,
		RevPAR:             decimal.Zero,
	}
	if available > 0 {
		resp.OccupancyPercent = decimal.NewFromInt(occupied).Mul(hundred).Div(decimal.NewFromInt(available)).Round(2)
		resp.RevPAR = roomRevenue.Div(decimal.NewFromInt(available)).Round(2)
	}
	if occupied > 0 {
		resp.ADR = roomRevenue.Div(decimal.NewFromInt(occupied)).Round(2)
	}
	return resp, nil
}

// StatusCounts returns the dashboard breakdown of reservations by status.
func (s *reportingService) StatusCounts(ctx context.Context, hotelID string, userID string) (*dto.StatusCountsResponse, error) {
	if err := s.hotelSvc.AuthorizeUserAction(ctx, userID, hotelID, domain.RoleReadOnly); err != nil {
		return nil, err
	}

	counts, err := s.reportingRepo.GetStatusCounts(ctx, hotelID)
	if err != nil {
		return nil, fmt.Errorf("failed to compute status counts: %w", err)
	}
	return &dto.StatusCountsResponse{HotelID: hotelID, Counts: counts}, nil
}
