package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/stayfront/hotel_management_app/internal/apperrors"
	"github.com/stayfront/hotel_management_app/internal/core/domain"
	portssvc "github.com/stayfront/hotel_management_app/internal/core/ports/services"
	"github.com/stayfront/hotel_management_app/internal/core/services"
)

type ReportingServiceTestSuite struct {
	suite.Suite
	mockReportRepo *MockReportingRepository
	mockRoomRepo   *MockRoomRepository
	mockHotelSvc   *MockHotelService
	service        portssvc.ReportingService
	hotelID        string
	userID         string
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.mockReportRepo = new(MockReportingRepository)
	suite.mockRoomRepo = new(MockRoomRepository)
	suite.mockHotelSvc = new(MockHotelService)
	suite.service = services.NewReportingService(suite.mockReportRepo, suite.mockRoomRepo, suite.mockHotelSvc)
	suite.hotelID = uuid.NewString()
	suite.userID = uuid.NewString()
}

func (suite *ReportingServiceTestSuite) TestDailyRevenue_SumsRows() {
	ctx := context.Background()
	from := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC)
	rows := []domain.DailyRevenueRow{
		{Day: from, RoomRevenue: decimal.NewFromInt(15000), TaxCollected: decimal.NewFromInt(2700), TotalRevenue: decimal.NewFromInt(17700)},
		{Day: to, RoomRevenue: decimal.NewFromInt(4000), TotalRevenue: decimal.NewFromInt(4000)},
	}

	suite.mockHotelSvc.On("AuthorizeUserAction", ctx, suite.userID, suite.hotelID, domain.RoleManager).Return(nil).Once()
	suite.mockReportRepo.On("GetDailyRevenue", ctx, suite.hotelID, from, to).Return(rows, nil).Once()

	resp, err := suite.service.DailyRevenue(ctx, suite.hotelID, from, to, suite.userID)

	suite.Require().NoError(err)
	suite.Equal("2025-03-01", resp.From)
	suite.Len(resp.Rows, 2)
	suite.True(resp.Total.Equal(decimal.NewFromInt(21700)), "total: %s", resp.Total)
}

func (suite *ReportingServiceTestSuite) TestDailyRevenue_InvertedRangeRejected() {
	ctx := context.Background()
	from := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	suite.mockHotelSvc.On("AuthorizeUserAction", ctx, suite.userID, suite.hotelID, domain.RoleManager).Return(nil).Once()

	_, err := suite.service.DailyRevenue(ctx, suite.hotelID, from, to, suite.userID)

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
	suite.mockReportRepo.AssertNotCalled(suite.T(), "GetDailyRevenue", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ReportingServiceTestSuite) TestOccupancy_ComputesKPIs() {
	ctx := context.Background()
	// 10 rooms over an inclusive 7-day range: 70 available room-nights.
	from := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 3, 7, 0, 0, 0, 0, time.UTC)

	suite.mockHotelSvc.On("AuthorizeUserAction", ctx, suite.userID, suite.hotelID, domain.RoleManager).Return(nil).Once()
	suite.mockReportRepo.On("GetOccupancy", ctx, suite.hotelID, from, to).Return(int64(35), decimal.NewFromInt(175000), nil).Once()
	suite.mockRoomRepo.On("CountRoomsByHotel", ctx, suite.hotelID).Return(int64(10), nil).Once()

	resp, err := suite.service.Occupancy(ctx, suite.hotelID, from, to, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(int64(70), resp.RoomNightsTotal)
	suite.Equal(int64(35), resp.RoomNightsOccupied)
	suite.True(resp.OccupancyPercent.Equal(decimal.NewFromInt(50)), "occupancy: %s", resp.OccupancyPercent)
	suite.True(resp.ADR.Equal(decimal.NewFromInt(5000)), "adr: %s", resp.ADR)
	suite.True(resp.RevPAR.Equal(decimal.NewFromInt(2500)), "revpar: %s", resp.RevPAR)
}

func (suite *ReportingServiceTestSuite) TestOccupancy_NoRoomsYieldsZeroKPIs() {
	ctx := context.Background()
	from := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 3, 7, 0, 0, 0, 0, time.UTC)

	suite.mockHotelSvc.On("AuthorizeUserAction", ctx, suite.userID, suite.hotelID, domain.RoleManager).Return(nil).Once()
	suite.mockReportRepo.On("GetOccupancy", ctx, suite.hotelID, from, to).Return(int64(0), decimal.Zero, nil).Once()
	suite.mockRoomRepo.On("CountRoomsByHotel", ctx, suite.hotelID).Return(int64(0), nil).Once()

	resp, err := suite.service.Occupancy(ctx, suite.hotelID, from, to, suite.userID)

	suite.Require().NoError(err)
	suite.True(resp.OccupancyPercent.IsZero())
	suite.True(resp.ADR.IsZero())
	suite.True(resp.RevPAR.IsZero())
}

func (suite *ReportingServiceTestSuite) TestStatusCounts_ReadOnlyRoleSuffices() {
	ctx := context.Background()
	counts := []domain.StatusCountRow{
		{Status: domain.StatusConfirmed, Count: 4},
		{Status: domain.StatusCheckedIn, Count: 2},
	}

	suite.mockHotelSvc.On("AuthorizeUserAction", ctx, suite.userID, suite.hotelID, domain.RoleReadOnly).Return(nil).Once()
	suite.mockReportRepo.On("GetStatusCounts", ctx, suite.hotelID).Return(counts, nil).Once()

	resp, err := suite.service.StatusCounts(ctx, suite.hotelID, suite.userID)

	suite.Require().NoError(err)
	suite.Len(resp.Counts, 2)
	suite.mockHotelSvc.AssertExpectations(suite.T())
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
