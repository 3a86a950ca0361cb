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
	"github.com/stayfront/hotel_management_app/internal/dto"
)

type ReservationServiceTestSuite struct {
	suite.Suite
	mockResRepo   *MockReservationRepository
	mockFolioRepo *MockFolioRepository
	mockRoomRepo  *MockRoomRepository
	mockHotelSvc  *MockHotelService
	service       portssvc.ReservationSvcFacade
	hotelID       string
	userID        string
}

func (suite *ReservationServiceTestSuite) SetupTest() {
	suite.mockResRepo = new(MockReservationRepository)
	suite.mockFolioRepo = new(MockFolioRepository)
	suite.mockRoomRepo = new(MockRoomRepository)
	suite.mockHotelSvc = new(MockHotelService)
	suite.service = services.NewReservationService(
		suite.mockResRepo,
		suite.mockFolioRepo,
		suite.mockRoomRepo,
		suite.mockHotelSvc,
		decimal.NewFromInt(12),
		10,
	)
	suite.hotelID = uuid.NewString()
	suite.userID = uuid.NewString()
}

func (suite *ReservationServiceTestSuite) confirmedReservation() *domain.Reservation {
	return &domain.Reservation{
		ReservationID:     uuid.NewString(),
		HotelID:           suite.hotelID,
		ReservationNumber: "RSV-2025-00042",
		GuestName:         "Asha Verma",
		CheckInDate:       time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		CheckOutDate:      time.Date(2025, 3, 13, 0, 0, 0, 0, time.UTC),
		Status:            domain.StatusConfirmed,
		PaymentStatus:     domain.PaymentPending,
	}
}

func (suite *ReservationServiceTestSuite) TestCreateReservation_Success() {
	ctx := context.Background()
	req := dto.CreateReservationRequest{
		GuestName:    "Asha Verma",
		CheckInDate:  "2025-03-10",
		CheckOutDate: "2025-03-13",
		NumAdults:    2,
		RoomType:     "Deluxe",
		BaseRate:     decimal.NewFromInt(5000),
	}
	taxRate := decimal.NewFromInt(18)
	req.TaxRatePercent = &taxRate

	suite.mockHotelSvc.On("AuthorizeUserAction", ctx, suite.userID, suite.hotelID, domain.RoleFrontdesk).Return(nil).Once()
	suite.mockResRepo.On("NextReservationSequence", ctx, suite.hotelID).Return(int64(42), nil).Once()
	suite.mockResRepo.On("SaveReservation", ctx, mock.AnythingOfType("domain.Reservation")).Return(nil).Once()

	created, err := suite.service.CreateReservation(ctx, suite.hotelID, req, suite.userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(created)
	suite.NotEmpty(created.ReservationID)
	suite.Contains(created.ReservationNumber, "-00042")
	suite.Equal(domain.StatusConfirmed, created.Status)
	suite.Equal(domain.PaymentPending, created.PaymentStatus)
	suite.True(created.TotalAmount.Equal(decimal.NewFromInt(17700)), "total: %s", created.TotalAmount)
	suite.True(created.TaxAmount.Equal(decimal.NewFromInt(2700)))
	suite.True(created.PaidAmount.IsZero())
	suite.mockResRepo.AssertExpectations(suite.T())
	suite.mockHotelSvc.AssertExpectations(suite.T())
}

func (suite *ReservationServiceTestSuite) TestCreateReservation_CheckOutBeforeCheckIn() {
	ctx := context.Background()
	req := dto.CreateReservationRequest{
		GuestName:    "Asha Verma",
		CheckInDate:  "2025-03-13",
		CheckOutDate: "2025-03-10",
		NumAdults:    1,
		RoomType:     "Deluxe",
		BaseRate:     decimal.NewFromInt(5000),
	}

	suite.mockHotelSvc.On("AuthorizeUserAction", ctx, suite.userID, suite.hotelID, domain.RoleFrontdesk).Return(nil).Once()

	_, err := suite.service.CreateReservation(ctx, suite.hotelID, req, suite.userID)

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
	suite.mockResRepo.AssertNotCalled(suite.T(), "SaveReservation", mock.Anything, mock.Anything)
}

func (suite *ReservationServiceTestSuite) TestCreateReservation_UnknownRoomNumber() {
	ctx := context.Background()
	taxRate := decimal.NewFromInt(18)
	req := dto.CreateReservationRequest{
		GuestName:      "Asha Verma",
		CheckInDate:    "2025-03-10",
		CheckOutDate:   "2025-03-13",
		NumAdults:      1,
		RoomType:       "Deluxe",
		RoomNumber:     "999",
		BaseRate:       decimal.NewFromInt(5000),
		TaxRatePercent: &taxRate,
	}

	suite.mockHotelSvc.On("AuthorizeUserAction", ctx, suite.userID, suite.hotelID, domain.RoleFrontdesk).Return(nil).Once()
	suite.mockRoomRepo.On("FindRoomByNumber", ctx, suite.hotelID, "999").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.CreateReservation(ctx, suite.hotelID, req, suite.userID)

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ReservationServiceTestSuite) TestCreateReservation_Forbidden() {
	ctx := context.Background()
	req := dto.CreateReservationRequest{
		GuestName:    "Asha Verma",
		CheckInDate:  "2025-03-10",
		CheckOutDate: "2025-03-13",
		NumAdults:    1,
		RoomType:     "Deluxe",
		BaseRate:     decimal.NewFromInt(5000),
	}

	suite.mockHotelSvc.On("AuthorizeUserAction", ctx, suite.userID, suite.hotelID, domain.RoleFrontdesk).Return(apperrors.ErrForbidden).Once()

	_, err := suite.service.CreateReservation(ctx, suite.hotelID, req, suite.userID)

	suite.Require().ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *ReservationServiceTestSuite) TestTransition_ConfirmedToCheckedIn() {
	ctx := context.Background()
	res := suite.confirmedReservation()

	suite.mockHotelSvc.On("AuthorizeUserAction", ctx, suite.userID, suite.hotelID, domain.RoleFrontdesk).Return(nil).Once()
	suite.mockResRepo.On("FindReservationByID", ctx, suite.hotelID, res.ReservationID).Return(res, nil).Once()
	suite.mockResRepo.On("UpdateReservationStatus", ctx, suite.hotelID, res.ReservationID, domain.StatusCheckedIn, suite.userID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	updated, err := suite.service.TransitionReservation(ctx, suite.hotelID, res.ReservationID, domain.StatusCheckedIn, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(domain.StatusCheckedIn, updated.Status)
	suite.mockResRepo.AssertExpectations(suite.T())
}

func (suite *ReservationServiceTestSuite) TestTransition_ConfirmedToCheckedOutRejected() {
	ctx := context.Background()
	res := suite.confirmedReservation()

	suite.mockHotelSvc.On("AuthorizeUserAction", ctx, suite.userID, suite.hotelID, domain.RoleFrontdesk).Return(nil).Once()
	suite.mockResRepo.On("FindReservationByID", ctx, suite.hotelID, res.ReservationID).Return(res, nil).Once()

	_, err := suite.service.TransitionReservation(ctx, suite.hotelID, res.ReservationID, domain.StatusCheckedOut, suite.userID)

	suite.Require().ErrorIs(err, apperrors.ErrInvalidTransition)
	suite.mockResRepo.AssertNotCalled(suite.T(), "UpdateReservationStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ReservationServiceTestSuite) TestTransition_NoShowTargetRejected() {
	ctx := context.Background()
	res := suite.confirmedReservation()

	suite.mockHotelSvc.On("AuthorizeUserAction", ctx, suite.userID, suite.hotelID, domain.RoleFrontdesk).Return(nil).Once()

	_, err := suite.service.TransitionReservation(ctx, suite.hotelID, res.ReservationID, domain.StatusNoShow, suite.userID)

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ReservationServiceTestSuite) TestTransition_CheckoutBlockedByOutstandingBalance() {
	ctx := context.Background()
	res := suite.confirmedReservation()
	res.Status = domain.StatusCheckedIn

	lines := []domain.FolioLine{{Amount: decimal.NewFromInt(17700)}}
	payments := []domain.Payment{{Amount: decimal.NewFromInt(1770)}}

	suite.mockHotelSvc.On("AuthorizeUserAction", ctx, suite.userID, suite.hotelID, domain.RoleFrontdesk).Return(nil).Once()
	suite.mockResRepo.On("FindReservationByID", ctx, suite.hotelID, res.ReservationID).Return(res, nil).Once()
	suite.mockFolioRepo.On("FindFolioLinesByReservationID", ctx, res.ReservationID).Return(lines, nil).Once()
	suite.mockFolioRepo.On("FindPaymentsByReservationID", ctx, res.ReservationID).Return(payments, nil).Once()

	_, err := suite.service.TransitionReservation(ctx, suite.hotelID, res.ReservationID, domain.StatusCheckedOut, suite.userID)

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
	suite.Contains(err.Error(), "15930.00")
	suite.mockResRepo.AssertNotCalled(suite.T(), "UpdateReservationStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ReservationServiceTestSuite) TestTransition_CheckoutAllowedWhenSettled() {
	ctx := context.Background()
	res := suite.confirmedReservation()
	res.Status = domain.StatusCheckedIn

	lines := []domain.FolioLine{{Amount: decimal.NewFromInt(17700)}}
	payments := []domain.Payment{{Amount: decimal.NewFromInt(17700)}}

	suite.mockHotelSvc.On("AuthorizeUserAction", ctx, suite.userID, suite.hotelID, domain.RoleFrontdesk).Return(nil).Once()
	suite.mockResRepo.On("FindReservationByID", ctx, suite.hotelID, res.ReservationID).Return(res, nil).Once()
	suite.mockFolioRepo.On("FindFolioLinesByReservationID", ctx, res.ReservationID).Return(lines, nil).Once()
	suite.mockFolioRepo.On("FindPaymentsByReservationID", ctx, res.ReservationID).Return(payments, nil).Once()
	suite.mockResRepo.On("UpdateReservationStatus", ctx, suite.hotelID, res.ReservationID, domain.StatusCheckedOut, suite.userID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	updated, err := suite.service.TransitionReservation(ctx, suite.hotelID, res.ReservationID, domain.StatusCheckedOut, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(domain.StatusCheckedOut, updated.Status)
}

func (suite *ReservationServiceTestSuite) TestBulkTransition_FailuresAreIsolated() {
	ctx := context.Background()
	good := suite.confirmedReservation()
	terminal := suite.confirmedReservation()
	terminal.Status = domain.StatusCancelled

	suite.mockHotelSvc.On("AuthorizeUserAction", ctx, suite.userID, suite.hotelID, domain.RoleFrontdesk).Return(nil).Once()
	suite.mockResRepo.On("FindReservationByID", ctx, suite.hotelID, good.ReservationID).Return(good, nil).Once()
	suite.mockResRepo.On("UpdateReservationStatus", ctx, suite.hotelID, good.ReservationID, domain.StatusCheckedIn, suite.userID, mock.AnythingOfType("time.Time")).Return(nil).Once()
	suite.mockResRepo.On("FindReservationByID", ctx, suite.hotelID, terminal.ReservationID).Return(terminal, nil).Once()
	suite.mockResRepo.On("FindReservationByID", ctx, suite.hotelID, "missing").Return(nil, apperrors.ErrNotFound).Once()

	resp, err := suite.service.BulkTransition(ctx, suite.hotelID, dto.BulkTransitionRequest{
		ReservationIDs: []string{good.ReservationID, terminal.ReservationID, "missing"},
		TargetStatus:   domain.StatusCheckedIn,
	}, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(1, resp.Succeeded)
	suite.Equal(2, resp.Failed)
	suite.Require().Len(resp.Results, 3)
	suite.True(resp.Results[0].OK)
	suite.False(resp.Results[1].OK)
	suite.NotEmpty(resp.Results[1].Error)
	suite.False(resp.Results[2].OK)
}

func (suite *ReservationServiceTestSuite) TestBulkTransition_AuthorizesOnce() {
	ctx := context.Background()

	suite.mockHotelSvc.On("AuthorizeUserAction", ctx, suite.userID, suite.hotelID, domain.RoleFrontdesk).Return(apperrors.ErrForbidden).Once()

	_, err := suite.service.BulkTransition(ctx, suite.hotelID, dto.BulkTransitionRequest{
		ReservationIDs: []string{"a", "b"},
		TargetStatus:   domain.StatusCancelled,
	}, suite.userID)

	suite.Require().ErrorIs(err, apperrors.ErrForbidden)
	suite.mockResRepo.AssertNotCalled(suite.T(), "FindReservationByID", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ReservationServiceTestSuite) TestMarkNoShows_SweepsPastConfirmedOnly() {
	ctx := context.Background()
	asOf := time.Date(2025, 3, 15, 14, 30, 0, 0, time.UTC)

	past := suite.confirmedReservation() // check-in 2025-03-10, confirmed
	today := suite.confirmedReservation()
	today.CheckInDate = time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
	checkedIn := suite.confirmedReservation()
	checkedIn.Status = domain.StatusCheckedIn
	future := suite.confirmedReservation()
	future.CheckInDate = time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)

	all := []domain.Reservation{*past, *today, *checkedIn, *future}

	suite.mockHotelSvc.On("AuthorizeUserAction", ctx, suite.userID, suite.hotelID, domain.RoleManager).Return(nil).Once()
	suite.mockResRepo.On("ListReservationsByHotel", ctx, suite.hotelID).Return(all, nil).Once()
	suite.mockResRepo.On("UpdateReservationStatus", ctx, suite.hotelID, past.ReservationID, domain.StatusNoShow, suite.userID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	marked, err := suite.service.MarkNoShows(ctx, suite.hotelID, asOf, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(1, marked)
	suite.mockResRepo.AssertExpectations(suite.T())
}

func (suite *ReservationServiceTestSuite) TestListReservations_PaginatesWithDefaults() {
	ctx := context.Background()

	all := make([]domain.Reservation, 25)
	for i := range all {
		all[i] = *suite.confirmedReservation()
	}

	suite.mockHotelSvc.On("AuthorizeUserAction", ctx, suite.userID, suite.hotelID, domain.RoleReadOnly).Return(nil).Once()
	suite.mockResRepo.On("ListReservationsByHotel", ctx, suite.hotelID).Return(all, nil).Once()

	resp, err := suite.service.ListReservations(ctx, suite.hotelID, suite.userID, dto.ListReservationsParams{Page: 3})

	suite.Require().NoError(err)
	suite.Len(resp.Reservations, 5)
	suite.Equal(25, resp.TotalCount)
	suite.Equal(3, resp.TotalPages)
	suite.Equal(10, resp.PageSize)
}

func (suite *ReservationServiceTestSuite) TestQuoteStay_UsesHotelTaxRateWhenNoOverride() {
	ctx := context.Background()
	hotelRate := decimal.NewFromInt(18)
	hotel := &domain.Hotel{HotelID: suite.hotelID, TaxRatePercent: &hotelRate}

	suite.mockHotelSvc.On("AuthorizeUserAction", ctx, suite.userID, suite.hotelID, domain.RoleReadOnly).Return(nil).Once()
	suite.mockHotelSvc.On("FindHotelByID", ctx, suite.hotelID, suite.userID).Return(hotel, nil).Once()

	quote, err := suite.service.QuoteStay(ctx, suite.hotelID, dto.QuoteRequest{
		CheckInDate:  "2025-03-10",
		CheckOutDate: "2025-03-13",
		BaseRate:     decimal.NewFromInt(5000),
		AmountPaid:   decimal.NewFromInt(1770),
	}, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(3, quote.Nights)
	suite.True(quote.TotalAmount.Equal(decimal.NewFromInt(17700)))
	suite.True(quote.BalanceDue.Equal(decimal.NewFromInt(15930)))
}

func (suite *ReservationServiceTestSuite) TestQuoteStay_NonMemberForbidden() {
	ctx := context.Background()
	override := decimal.NewFromInt(18)

	suite.mockHotelSvc.On("AuthorizeUserAction", ctx, suite.userID, suite.hotelID, domain.RoleReadOnly).Return(apperrors.ErrForbidden).Once()

	_, err := suite.service.QuoteStay(ctx, suite.hotelID, dto.QuoteRequest{
		CheckInDate:    "2025-03-10",
		CheckOutDate:   "2025-03-13",
		BaseRate:       decimal.NewFromInt(5000),
		TaxRatePercent: &override,
	}, suite.userID)

	suite.Require().ErrorIs(err, apperrors.ErrForbidden)
	suite.mockHotelSvc.AssertNotCalled(suite.T(), "FindHotelByID", ctx, suite.hotelID, suite.userID)
}

func (suite *ReservationServiceTestSuite) TestUpdateReservation_TerminalRejected() {
	ctx := context.Background()
	res := suite.confirmedReservation()
	res.Status = domain.StatusCheckedOut
	newName := "Someone Else"

	suite.mockHotelSvc.On("AuthorizeUserAction", ctx, suite.userID, suite.hotelID, domain.RoleFrontdesk).Return(nil).Once()
	suite.mockResRepo.On("FindReservationByID", ctx, suite.hotelID, res.ReservationID).Return(res, nil).Once()

	_, err := suite.service.UpdateReservation(ctx, suite.hotelID, res.ReservationID, dto.UpdateReservationRequest{GuestName: &newName}, suite.userID)

	suite.Require().ErrorIs(err, apperrors.ErrInvalidTransition)
}

func TestReservationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReservationServiceTestSuite))
}
