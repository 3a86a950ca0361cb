package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/stayfront/hotel_management_app/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every pgsql repository onto the shared pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	reservationRepo := newPgxReservationRepository(dbPool)
	folioRepo := newPgxFolioRepository(dbPool)
	hotelRepo := newPgxHotelRepository(dbPool)
	roomRepo := newPgxRoomRepository(dbPool)
	userRepo := newPgxUserRepository(dbPool)
	reportingRepo := newReportingRepository(dbPool)

	return portsrepo.RepositoryProvider{
		ReservationRepo: reservationRepo,
		FolioRepo:       folioRepo,
		HotelRepo:       hotelRepo,
		RoomRepo:        roomRepo,
		UserRepo:        userRepo,
		ReportingRepo:   reportingRepo,
	}
}
