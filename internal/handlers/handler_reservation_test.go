package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/stayfront/hotel_management_app/internal/apperrors"
	"github.com/stayfront/hotel_management_app/internal/core/domain"
	portssvc "github.com/stayfront/hotel_management_app/internal/core/ports/services"
	"github.com/stayfront/hotel_management_app/internal/dto"
	"github.com/stayfront/hotel_management_app/internal/middleware"
	"github.com/stayfront/hotel_management_app/internal/utils/billing"
)

// --- Mock ReservationService ---

type MockReservationService struct {
	mock.Mock
}

var _ portssvc.ReservationSvcFacade = (*MockReservationService)(nil)

func (m *MockReservationService) GetReservationByID(ctx context.Context, hotelID string, reservationID string, requestingUserID string) (*domain.Reservation, error) {
	args := m.Called(ctx, hotelID, reservationID, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}

func (m *MockReservationService) ListReservations(ctx context.Context, hotelID string, userID string, params dto.ListReservationsParams) (*dto.ListReservationsResponse, error) {
	args := m.Called(ctx, hotelID, userID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListReservationsResponse), args.Error(1)
}

func (m *MockReservationService) CreateReservation(ctx context.Context, hotelID string, req dto.CreateReservationRequest, creatorUserID string) (*domain.Reservation, error) {
	args := m.Called(ctx, hotelID, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}

func (m *MockReservationService) UpdateReservation(ctx context.Context, hotelID string, reservationID string, req dto.UpdateReservationRequest, requestingUserID string) (*domain.Reservation, error) {
	args := m.Called(ctx, hotelID, reservationID, req, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}

func (m *MockReservationService) TransitionReservation(ctx context.Context, hotelID string, reservationID string, target domain.ReservationStatus, requestingUserID string) (*domain.Reservation, error) {
	args := m.Called(ctx, hotelID, reservationID, target, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}

func (m *MockReservationService) BulkTransition(ctx context.Context, hotelID string, req dto.BulkTransitionRequest, requestingUserID string) (*dto.BulkTransitionResponse, error) {
	args := m.Called(ctx, hotelID, req, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.BulkTransitionResponse), args.Error(1)
}

func (m *MockReservationService) MarkNoShows(ctx context.Context, hotelID string, asOf time.Time, requestingUserID string) (int, error) {
	args := m.Called(ctx, hotelID, asOf, requestingUserID)
	return args.Int(0), args.Error(1)
}

func (m *MockReservationService) QuoteStay(ctx context.Context, hotelID string, req dto.QuoteRequest, requestingUserID string) (*billing.Quote, error) {
	args := m.Called(ctx, hotelID, req, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*billing.Quote), args.Error(1)
}

// --- Mock FolioService ---

type MockFolioService struct {
	mock.Mock
}

var _ portssvc.FolioSvcFacade = (*MockFolioService)(nil)

func (m *MockFolioService) GetFolio(ctx context.Context, hotelID string, reservationID string, requestingUserID string) (*domain.Folio, error) {
	args := m.Called(ctx, hotelID, reservationID, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Folio), args.Error(1)
}

func (m *MockFolioService) PostCharge(ctx context.Context, hotelID string, reservationID string, req dto.PostChargeRequest, postingUserID string) (*domain.FolioLine, error) {
	args := m.Called(ctx, hotelID, reservationID, req, postingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FolioLine), args.Error(1)
}

func (m *MockFolioService) PostPayment(ctx context.Context, hotelID string, reservationID string, req dto.PostPaymentRequest, postingUserID string) (*domain.Payment, error) {
	args := m.Called(ctx, hotelID, reservationID, req, postingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

// --- Test Suite ---

type ReservationHandlerTestSuite struct {
	suite.Suite
	router           *gin.Engine
	mockReservations *MockReservationService
	mockFolio        *MockFolioService
	jwtSecret        string
}

func (suite *ReservationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	registerCustomValidators()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"
	suite.router = gin.New()
	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))

	suite.mockReservations = new(MockReservationService)
	suite.mockFolio = new(MockFolioService)

	hotelGroup := suite.router.Group("/api/v1/hotels/:hotel_id")
	registerReservationRoutes(hotelGroup, suite.mockReservations, suite.mockFolio)
}

func (suite *ReservationHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "hms-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *ReservationHandlerTestSuite) authedRequest(method, url, body, userID string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req, _ := http.NewRequest(method, url, reader)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *ReservationHandlerTestSuite) TestListReservations_Success() {
	hotelID := uuid.NewString()
	userID := uuid.NewString()

	expected := &dto.ListReservationsResponse{
		Reservations: []dto.ReservationResponse{
			{ReservationID: uuid.NewString(), ReservationNumber: "RSV-2025-00042", GuestName: "Asha Verma"},
		},
		TotalCount: 11,
		TotalPages: 3,
		Page:       2,
		PageSize:   5,
	}
	suite.mockReservations.On("ListReservations",
		mock.Anything, hotelID, userID,
		mock.MatchedBy(func(p dto.ListReservationsParams) bool {
			return p.Page == 2 && p.PageSize == 5 && p.Status == "confirmed"
		}),
	).Return(expected, nil).Once()

	url := fmt.Sprintf("/api/v1/hotels/%s/reservations?page=2&pageSize=5&status=confirmed", hotelID)
	w := suite.authedRequest(http.MethodGet, url, "", userID)

	suite.Equal(http.StatusOK, w.Code)
	var body dto.ListReservationsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal(11, body.TotalCount)
	suite.Len(body.Reservations, 1)
	suite.Equal("RSV-2025-00042", body.Reservations[0].ReservationNumber)
	suite.mockReservations.AssertExpectations(suite.T())
}

func (suite *ReservationHandlerTestSuite) TestListReservations_RejectsUnknownStatus() {
	hotelID := uuid.NewString()
	userID := uuid.NewString()

	url := fmt.Sprintf("/api/v1/hotels/%s/reservations?status=sleeping", hotelID)
	w := suite.authedRequest(http.MethodGet, url, "", userID)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockReservations.AssertNotCalled(suite.T(), "ListReservations", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ReservationHandlerTestSuite) TestCreateReservation_MalformedDateRejected() {
	hotelID := uuid.NewString()
	userID := uuid.NewString()

	body := `{"guestName":"Asha Verma","checkInDate":"10-03-2025","checkOutDate":"2025-03-13","numAdults":2,"roomType":"Deluxe","baseRate":"5000"}`
	w := suite.authedRequest(http.MethodPost, fmt.Sprintf("/api/v1/hotels/%s/reservations", hotelID), body, userID)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockReservations.AssertNotCalled(suite.T(), "CreateReservation", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ReservationHandlerTestSuite) TestTransitionReservation_InvalidTransitionMapsToConflict() {
	hotelID := uuid.NewString()
	reservationID := uuid.NewString()
	userID := uuid.NewString()

	suite.mockReservations.On("TransitionReservation",
		mock.Anything, hotelID, reservationID, domain.StatusCheckedOut, userID,
	).Return(nil, fmt.Errorf("%w: cannot move reservation from confirmed to checked_out", apperrors.ErrInvalidTransition)).Once()

	url := fmt.Sprintf("/api/v1/hotels/%s/reservations/%s/transition", hotelID, reservationID)
	w := suite.authedRequest(http.MethodPost, url, `{"targetStatus":"checked_out"}`, userID)

	suite.Equal(http.StatusConflict, w.Code)
	suite.mockReservations.AssertExpectations(suite.T())
}

func (suite *ReservationHandlerTestSuite) TestRoutes_RequireAuthentication() {
	url := fmt.Sprintf("/api/v1/hotels/%s/reservations", uuid.NewString())
	req, _ := http.NewRequest(http.MethodGet, url, nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
}

func TestReservationHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ReservationHandlerTestSuite))
}
