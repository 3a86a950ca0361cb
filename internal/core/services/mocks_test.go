package services_test

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/stayfront/hotel_management_app/internal/core/domain"
	portsrepo "github.com/stayfront/hotel_management_app/internal/core/ports/repositories"
	portssvc "github.com/stayfront/hotel_management_app/internal/core/ports/services"
	"github.com/stayfront/hotel_management_app/internal/dto"
)

// --- Mock ReservationRepository ---

type MockReservationRepository struct {
	mock.Mock
}

var _ portsrepo.ReservationRepositoryWithTx = (*MockReservationRepository)(nil)

func (m *MockReservationRepository) FindReservationByID(ctx context.Context, hotelID, reservationID string) (*domain.Reservation, error) {
	args := m.Called(ctx, hotelID, reservationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}

func (m *MockReservationRepository) ListReservationsByHotel(ctx context.Context, hotelID string) ([]domain.Reservation, error) {
	args := m.Called(ctx, hotelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Reservation), args.Error(1)
}

func (m *MockReservationRepository) FindReservationsByIDs(ctx context.Context, hotelID string, reservationIDs []string) (map[string]domain.Reservation, error) {
	args := m.Called(ctx, hotelID, reservationIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Reservation), args.Error(1)
}

func (m *MockReservationRepository) NextReservationSequence(ctx context.Context, hotelID string) (int64, error) {
	args := m.Called(ctx, hotelID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockReservationRepository) SaveReservation(ctx context.Context, reservation domain.Reservation) error {
	args := m.Called(ctx, reservation)
	return args.Error(0)
}

func (m *MockReservationRepository) UpdateReservation(ctx context.Context, reservation domain.Reservation) error {
	args := m.Called(ctx, reservation)
	return args.Error(0)
}

func (m *MockReservationRepository) UpdateReservationStatus(ctx context.Context, hotelID, reservationID string, status domain.ReservationStatus, updatedBy string, updatedAt time.Time) error {
	args := m.Called(ctx, hotelID, reservationID, status, updatedBy, updatedAt)
	return args.Error(0)
}

func (m *MockReservationRepository) UpdateReservationSettlement(ctx context.Context, reservationID string, paidAmount decimal.Decimal, paymentStatus domain.PaymentStatus, updatedBy string, updatedAt time.Time) error {
	args := m.Called(ctx, reservationID, paidAmount, paymentStatus, updatedBy, updatedAt)
	return args.Error(0)
}

func (m *MockReservationRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *MockReservationRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockReservationRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

// --- Mock FolioRepository ---

type MockFolioRepository struct {
	mock.Mock
}

var _ portsrepo.FolioRepositoryFacade = (*MockFolioRepository)(nil)

func (m *MockFolioRepository) FindFolioLinesByReservationID(ctx context.Context, reservationID string) ([]domain.FolioLine, error) {
	args := m.Called(ctx, reservationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FolioLine), args.Error(1)
}

func (m *MockFolioRepository) FindPaymentsByReservationID(ctx context.Context, reservationID string) ([]domain.Payment, error) {
	args := m.Called(ctx, reservationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payment), args.Error(1)
}

func (m *MockFolioRepository) SaveFolioLine(ctx context.Context, line domain.FolioLine) error {
	args := m.Called(ctx, line)
	return args.Error(0)
}

func (m *MockFolioRepository) SavePayment(ctx context.Context, payment domain.Payment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}

// --- Mock RoomRepository ---

type MockRoomRepository struct {
	mock.Mock
}

var _ portsrepo.RoomRepositoryFacade = (*MockRoomRepository)(nil)

func (m *MockRoomRepository) FindRoomByNumber(ctx context.Context, hotelID, roomNumber string) (*domain.Room, error) {
	args := m.Called(ctx, hotelID, roomNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Room), args.Error(1)
}

func (m *MockRoomRepository) ListRoomsByHotel(ctx context.Context, hotelID string) ([]domain.Room, error) {
	args := m.Called(ctx, hotelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Room), args.Error(1)
}

func (m *MockRoomRepository) ListRoomTypesByHotel(ctx context.Context, hotelID string) ([]domain.RoomType, error) {
	args := m.Called(ctx, hotelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RoomType), args.Error(1)
}

func (m *MockRoomRepository) FindRoomTypeByID(ctx context.Context, hotelID, roomTypeID string) (*domain.RoomType, error) {
	args := m.Called(ctx, hotelID, roomTypeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RoomType), args.Error(1)
}

func (m *MockRoomRepository) CountRoomsByHotel(ctx context.Context, hotelID string) (int64, error) {
	args := m.Called(ctx, hotelID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRoomRepository) SaveRoom(ctx context.Context, room domain.Room) error {
	args := m.Called(ctx, room)
	return args.Error(0)
}

func (m *MockRoomRepository) SaveRoomType(ctx context.Context, roomType domain.RoomType) error {
	args := m.Called(ctx, roomType)
	return args.Error(0)
}

func (m *MockRoomRepository) UpdateRoomStatus(ctx context.Context, hotelID, roomID string, status domain.RoomStatus, updatedBy string, updatedAt time.Time) error {
	args := m.Called(ctx, hotelID, roomID, status, updatedBy, updatedAt)
	return args.Error(0)
}

// --- Mock ReportingRepository ---

type MockReportingRepository struct {
	mock.Mock
}

var _ portsrepo.ReportingRepository = (*MockReportingRepository)(nil)

func (m *MockReportingRepository) GetDailyRevenue(ctx context.Context, hotelID string, from, to time.Time) ([]domain.DailyRevenueRow, error) {
	args := m.Called(ctx, hotelID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DailyRevenueRow), args.Error(1)
}

func (m *MockReportingRepository) GetOccupancy(ctx context.Context, hotelID string, from, to time.Time) (int64, decimal.Decimal, error) {
	args := m.Called(ctx, hotelID, from, to)
	return args.Get(0).(int64), args.Get(1).(decimal.Decimal), args.Error(2)
}

func (m *MockReportingRepository) GetStatusCounts(ctx context.Context, hotelID string) ([]domain.StatusCountRow, error) {
	args := m.Called(ctx, hotelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StatusCountRow), args.Error(1)
}

// --- Mock HotelRepository ---

type MockHotelRepository struct {
	mock.Mock
}

var _ portsrepo.HotelRepositoryFacade = (*MockHotelRepository)(nil)

func (m *MockHotelRepository) FindHotelByID(ctx context.Context, hotelID string) (*domain.Hotel, error) {
	args := m.Called(ctx, hotelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Hotel), args.Error(1)
}

func (m *MockHotelRepository) ListHotelsByUser(ctx context.Context, userID string) ([]domain.Hotel, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Hotel), args.Error(1)
}

func (m *MockHotelRepository) FindUserHotelRole(ctx context.Context, userID, hotelID string) (*domain.UserHotel, error) {
	args := m.Called(ctx, userID, hotelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserHotel), args.Error(1)
}

func (m *MockHotelRepository) ListHotelMembers(ctx context.Context, hotelID string) ([]domain.UserHotel, error) {
	args := m.Called(ctx, hotelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.UserHotel), args.Error(1)
}

func (m *MockHotelRepository) SaveHotel(ctx context.Context, hotel domain.Hotel) error {
	args := m.Called(ctx, hotel)
	return args.Error(0)
}

func (m *MockHotelRepository) UpdateHotel(ctx context.Context, hotel domain.Hotel) error {
	args := m.Called(ctx, hotel)
	return args.Error(0)
}

func (m *MockHotelRepository) AddUserToHotel(ctx context.Context, membership domain.UserHotel) error {
	args := m.Called(ctx, membership)
	return args.Error(0)
}

func (m *MockHotelRepository) RemoveUserFromHotel(ctx context.Context, userID, hotelID string, removedAt time.Time) error {
	args := m.Called(ctx, userID, hotelID, removedAt)
	return args.Error(0)
}

// --- Mock UserRepository ---

type MockUserRepository struct {
	mock.Mock
}

var _ portsrepo.UserRepositoryFacade = (*MockUserRepository)(nil)

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByProviderID(ctx context.Context, provider, providerUserID string) (*domain.User, error) {
	args := m.Called(ctx, provider, providerUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateRefreshToken(ctx context.Context, userID, refreshTokenHash string, expiresAt *time.Time) error {
	args := m.Called(ctx, userID, refreshTokenHash, expiresAt)
	return args.Error(0)
}

func (m *MockUserRepository) MarkUserDeleted(ctx context.Context, userID string, deletedBy string, deletedAt time.Time) error {
	args := m.Called(ctx, userID, deletedBy, deletedAt)
	return args.Error(0)
}

// --- Mock HotelService ---

type MockHotelService struct {
	mock.Mock
}

var _ portssvc.HotelSvcFacade = (*MockHotelService)(nil)

func (m *MockHotelService) FindHotelByID(ctx context.Context, hotelID string, requestingUserID string) (*domain.Hotel, error) {
	args := m.Called(ctx, hotelID, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Hotel), args.Error(1)
}

func (m *MockHotelService) ListUserHotels(ctx context.Context, userID string) ([]domain.Hotel, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Hotel), args.Error(1)
}

func (m *MockHotelService) ListHotelMembers(ctx context.Context, hotelID string, requestingUserID string) ([]domain.UserHotel, error) {
	args := m.Called(ctx, hotelID, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.UserHotel), args.Error(1)
}

func (m *MockHotelService) CreateHotel(ctx context.Context, req dto.CreateHotelRequest, creatorUserID string) (*domain.Hotel, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Hotel), args.Error(1)
}

func (m *MockHotelService) UpdateHotel(ctx context.Context, hotelID string, req dto.UpdateHotelRequest, requestingUserID string) (*domain.Hotel, error) {
	args := m.Called(ctx, hotelID, req, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Hotel), args.Error(1)
}

func (m *MockHotelService) AddUserToHotel(ctx context.Context, requestingUserID string, hotelID string, req dto.AddMemberRequest) error {
	args := m.Called(ctx, requestingUserID, hotelID, req)
	return args.Error(0)
}

func (m *MockHotelService) RemoveUserFromHotel(ctx context.Context, requestingUserID string, targetUserID string, hotelID string) error {
	args := m.Called(ctx, requestingUserID, targetUserID, hotelID)
	return args.Error(0)
}

func (m *MockHotelService) AuthorizeUserAction(ctx context.Context, userID string, hotelID string, requiredRole domain.UserHotelRole) error {
	args := m.Called(ctx, userID, hotelID, requiredRole)
	return args.Error(0)
}
