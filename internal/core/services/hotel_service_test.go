package services_test

import (
	"context"
	"testing"

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

type HotelServiceTestSuite struct {
	suite.Suite
	mockHotelRepo *MockHotelRepository
	mockUserRepo  *MockUserRepository
	service       portssvc.HotelSvcFacade
	hotelID       string
	userID        string
}

func (suite *HotelServiceTestSuite) SetupTest() {
	suite.mockHotelRepo = new(MockHotelRepository)
	suite.mockUserRepo = new(MockUserRepository)
	suite.service = services.NewHotelService(suite.mockHotelRepo, suite.mockUserRepo)
	suite.hotelID = uuid.NewString()
	suite.userID = uuid.NewString()
}

func (suite *HotelServiceTestSuite) expectRole(userID string, role domain.UserHotelRole) {
	suite.mockHotelRepo.On("FindUserHotelRole", mock.Anything, userID, suite.hotelID).
		Return(&domain.UserHotel{UserID: userID, HotelID: suite.hotelID, Role: role}, nil).Once()
}

func (suite *HotelServiceTestSuite) TestCreateHotel_CreatorBecomesOwner() {
	ctx := context.Background()
	req := dto.CreateHotelRequest{Name: "Seaview Palace", City: "Kochi"}

	suite.mockHotelRepo.On("SaveHotel", ctx, mock.AnythingOfType("domain.Hotel")).Return(nil).Once()
	suite.mockHotelRepo.On("AddUserToHotel", ctx, mock.MatchedBy(func(m domain.UserHotel) bool {
		return m.UserID == suite.userID && m.Role == domain.RoleOwner
	})).Return(nil).Once()

	hotel, err := suite.service.CreateHotel(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.NotEmpty(hotel.HotelID)
	suite.Equal("INR", hotel.CurrencyCode)
	suite.True(hotel.IsActive)
	suite.mockHotelRepo.AssertExpectations(suite.T())
}

func (suite *HotelServiceTestSuite) TestCreateHotel_TaxRateOutOfRange() {
	ctx := context.Background()
	rate := decimal.NewFromInt(120)
	req := dto.CreateHotelRequest{Name: "Seaview Palace", TaxRatePercent: &rate}

	_, err := suite.service.CreateHotel(ctx, req, suite.userID)

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
	suite.mockHotelRepo.AssertNotCalled(suite.T(), "SaveHotel", mock.Anything, mock.Anything)
}

func (suite *HotelServiceTestSuite) TestUpdateHotel_ManagerCanSetTaxRate() {
	ctx := context.Background()
	rate := decimal.NewFromInt(12)
	req := dto.UpdateHotelRequest{TaxRatePercent: &rate}

	suite.expectRole(suite.userID, domain.RoleManager)
	suite.mockHotelRepo.On("FindHotelByID", ctx, suite.hotelID).
		Return(&domain.Hotel{HotelID: suite.hotelID, Name: "Seaview Palace", CurrencyCode: "INR"}, nil).Once()
	suite.mockHotelRepo.On("UpdateHotel", ctx, mock.MatchedBy(func(h domain.Hotel) bool {
		return h.TaxRatePercent != nil && h.TaxRatePercent.Equal(rate)
	})).Return(nil).Once()

	hotel, err := suite.service.UpdateHotel(ctx, suite.hotelID, req, suite.userID)

	suite.Require().NoError(err)
	suite.True(hotel.TaxRatePercent.Equal(rate))
}

func (suite *HotelServiceTestSuite) TestAddUserToHotel_GrantingOwnerRequiresOwner() {
	ctx := context.Background()
	req := dto.AddMemberRequest{Username: "newowner", Role: domain.RoleOwner}

	// Requesting user is only a MANAGER.
	suite.expectRole(suite.userID, domain.RoleManager)

	err := suite.service.AddUserToHotel(ctx, suite.userID, suite.hotelID, req)

	suite.Require().ErrorIs(err, apperrors.ErrForbidden)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "FindUserByUsername", mock.Anything, mock.Anything)
}

func (suite *HotelServiceTestSuite) TestAddUserToHotel_UnknownUsernameIsValidationError() {
	ctx := context.Background()
	req := dto.AddMemberRequest{Username: "ghost", Role: domain.RoleFrontdesk}

	suite.expectRole(suite.userID, domain.RoleManager)
	suite.mockUserRepo.On("FindUserByUsername", ctx, "ghost").Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.AddUserToHotel(ctx, suite.userID, suite.hotelID, req)

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
}

func (suite *HotelServiceTestSuite) TestAddUserToHotel_Success() {
	ctx := context.Background()
	targetID := uuid.NewString()
	req := dto.AddMemberRequest{Username: "frontdesk1", Role: domain.RoleFrontdesk}

	suite.expectRole(suite.userID, domain.RoleManager)
	suite.mockUserRepo.On("FindUserByUsername", ctx, "frontdesk1").
		Return(&domain.User{UserID: targetID, Username: "frontdesk1"}, nil).Once()
	suite.mockHotelRepo.On("AddUserToHotel", ctx, mock.MatchedBy(func(m domain.UserHotel) bool {
		return m.UserID == targetID && m.Role == domain.RoleFrontdesk && m.HotelID == suite.hotelID
	})).Return(nil).Once()

	err := suite.service.AddUserToHotel(ctx, suite.userID, suite.hotelID, req)

	suite.Require().NoError(err)
	suite.mockHotelRepo.AssertExpectations(suite.T())
}

func (suite *HotelServiceTestSuite) TestRemoveUserFromHotel_LastOwnerProtected() {
	ctx := context.Background()

	// The sole owner tries to remove themselves.
	suite.expectRole(suite.userID, domain.RoleOwner)
	suite.expectRole(suite.userID, domain.RoleOwner)
	suite.expectRole(suite.userID, domain.RoleOwner)
	suite.mockHotelRepo.On("ListHotelMembers", ctx, suite.hotelID).Return([]domain.UserHotel{
		{UserID: suite.userID, Role: domain.RoleOwner},
		{UserID: uuid.NewString(), Role: domain.RoleFrontdesk},
	}, nil).Once()

	err := suite.service.RemoveUserFromHotel(ctx, suite.userID, suite.userID, suite.hotelID)

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
	suite.mockHotelRepo.AssertNotCalled(suite.T(), "RemoveUserFromHotel", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HotelServiceTestSuite) TestRemoveUserFromHotel_OwnerRemovesOwnerWhenAnotherRemains() {
	ctx := context.Background()
	targetID := uuid.NewString()

	suite.expectRole(suite.userID, domain.RoleOwner)
	suite.mockHotelRepo.On("FindUserHotelRole", mock.Anything, targetID, suite.hotelID).
		Return(&domain.UserHotel{UserID: targetID, HotelID: suite.hotelID, Role: domain.RoleOwner}, nil).Once()
	suite.expectRole(suite.userID, domain.RoleOwner)
	suite.mockHotelRepo.On("ListHotelMembers", ctx, suite.hotelID).Return([]domain.UserHotel{
		{UserID: suite.userID, Role: domain.RoleOwner},
		{UserID: targetID, Role: domain.RoleOwner},
	}, nil).Once()
	suite.mockHotelRepo.On("RemoveUserFromHotel", ctx, targetID, suite.hotelID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	err := suite.service.RemoveUserFromHotel(ctx, suite.userID, targetID, suite.hotelID)

	suite.Require().NoError(err)
	suite.mockHotelRepo.AssertExpectations(suite.T())
}

func (suite *HotelServiceTestSuite) TestAuthorizeUserAction_NonMemberForbidden() {
	ctx := context.Background()

	suite.mockHotelRepo.On("FindUserHotelRole", mock.Anything, suite.userID, suite.hotelID).
		Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.AuthorizeUserAction(ctx, suite.userID, suite.hotelID, domain.RoleReadOnly)

	suite.Require().ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *HotelServiceTestSuite) TestAuthorizeUserAction_RoleHierarchy() {
	ctx := context.Background()

	suite.expectRole(suite.userID, domain.RoleFrontdesk)
	suite.NoError(suite.service.AuthorizeUserAction(ctx, suite.userID, suite.hotelID, domain.RoleReadOnly))

	suite.expectRole(suite.userID, domain.RoleFrontdesk)
	suite.Require().ErrorIs(suite.service.AuthorizeUserAction(ctx, suite.userID, suite.hotelID, domain.RoleManager), apperrors.ErrForbidden)
}

func TestHotelServiceTestSuite(t *testing.T) {
	suite.Run(t, new(HotelServiceTestSuite))
}
