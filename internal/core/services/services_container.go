package services

import (
	portsrepo "github.com/stayfront/hotel_management_app/internal/core/ports/repositories"
	portssvc "github.com/stayfront/hotel_management_app/internal/core/ports/services"
	"github.com/stayfront/hotel_management_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Hotel service first since most other services depend on its authorizer.
	container.Hotel = NewHotelService(repos.HotelRepo, repos.UserRepo)
	hotelAuthorizer := container.Hotel.(portssvc.HotelAuthorizerSvc)

	container.User = NewUserService(repos.UserRepo)
	container.Room = NewRoomService(repos.RoomRepo, hotelAuthorizer)
	container.Reservation = NewReservationService(
		repos.ReservationRepo,
		repos.FolioRepo,
		repos.RoomRepo,
		container.Hotel,
		cfg.DefaultTaxRatePercent,
		cfg.DefaultPageSize,
	)
	container.Folio = NewFolioService(repos.FolioRepo, repos.ReservationRepo, hotelAuthorizer)
	container.Reporting = NewReportingService(repos.ReportingRepo, repos.RoomRepo, hotelAuthorizer)
	container.Export = NewExportService(repos.ReservationRepo, hotelAuthorizer)

	container.Token = NewTokenService(cfg, container.User)
	container.GoogleOAuth = NewGoogleOAuthHandlerService(cfg)

	return container
}
