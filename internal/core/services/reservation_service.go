package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/stayfront/hotel_management_app/internal/apperrors"
	"github.com/stayfront/hotel_management_app/internal/core/domain"
	portsrepo "github.com/stayfront/hotel_management_app/internal/core/ports/repositories"
	portssvc "github.com/stayfront/hotel_management_app/internal/core/ports/services"
	"github.com/stayfront/hotel_management_app/internal/dto"
	"github.com/stayfront/hotel_management_app/internal/middleware"
	"github.com/stayfront/hotel_management_app/internal/utils"
	"github.com/stayfront/hotel_management_app/internal/utils/billing"
	"github.com/stayfront/hotel_management_app/internal/utils/listing"
)

var hundred = decimal.NewFromInt(100)

const dateLayout = "2006-01-02"

// ReservationService handles business logic for the reservation lifecycle,
// pricing and list views.
type ReservationService struct {
	resRepo   portsrepo.ReservationRepositoryWithTx
	folioRepo portsrepo.FolioReader
	roomRepo  portsrepo.RoomReader
	hotelSvc  portssvc.HotelSvcFacade

	defaultTaxRatePercent decimal.Decimal
	defaultPageSize       int
}

// NewReservationService creates a new ReservationService.
func NewReservationService(
	rr portsrepo.ReservationRepositoryWithTx,
	fr portsrepo.FolioReader,
	roomr portsrepo.RoomReader,
	hotelSvc portssvc.HotelSvcFacade,
	defaultTaxRatePercent decimal.Decimal,
	defaultPageSize int,
) portssvc.ReservationSvcFacade {
	if defaultPageSize <= 0 {
		defaultPageSize = 10
	}
	return &ReservationService{
		resRepo:               rr,
		folioRepo:             fr,
		roomRepo:              roomr,
		hotelSvc:              hotelSvc,
		defaultTaxRatePercent: defaultTaxRatePercent,
		defaultPageSize:       defaultPageSize,
	}
}

var _ portssvc.ReservationSvcFacade = (*ReservationService)(nil)

func parseDate(value, field string) (time.Time, error) {
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s must be a YYYY-MM-DD date", apperrors.ErrValidation, field)
	}
	return t, nil
}

// resolveTaxRate picks the effective tax rate: explicit override, then the
// hotel's configured rate, then the application default.
func (s *ReservationService) resolveTaxRate(ctx context.Context, hotelID string, override *decimal.Decimal, requestingUserID string) (decimal.Decimal, error) {
	if override != nil {
		return *override, nil
	}
	hotel, err := s.hotelSvc.FindHotelByID(ctx, hotelID, requestingUserID)
	if err != nil {
		return decimal.Decimal{}, err
	}
	if hotel.TaxRatePercent != nil {
		return *hotel.TaxRatePercent, nil
	}
	return s.defaultTaxRatePercent, nil
}

// CreateReservation persists a new reservation in confirmed status with its
// totals computed from the rate inputs.
func (s *ReservationService) CreateReservation(ctx context.Context, hotelID string, req dto.CreateReservationRequest, creatorUserID string) (*domain.Reservation, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.hotelSvc.AuthorizeUserAction(ctx, creatorUserID, hotelID, domain.RoleFrontdesk); err != nil {
		return nil, err
	}

	checkIn, err := parseDate(req.CheckInDate, "checkInDate")
	if err != nil {
		return nil, err
	}
	checkOut, err := parseDate(req.CheckOutDate, "checkOutDate")
	if err != nil {
		return nil, err
	}
	if !checkOut.After(checkIn) {
		return nil, fmt.Errorf("%w: check-out date must be after check-in date", apperrors.ErrValidation)
	}

	taxRate, err := s.resolveTaxRate(ctx, hotelID, req.TaxRatePercent, creatorUserID)
	if err != nil {
		return nil, err
	}

	in := billing.Input{
		CheckInDate:     checkIn,
		CheckOutDate:    checkOut,
		BaseRate:        req.BaseRate,
		DiscountPercent: req.DiscountPercent,
		TaxRatePercent:  taxRate,
		ExtraCharges:    req.ExtraCharges,
	}
	if err := billing.Validate(in); err != nil {
		return nil, err
	}
	quote := billing.Compute(in)

	if req.RoomNumber != "" {
		if _, err := s.roomRepo.FindRoomByNumber(ctx, hotelID, req.RoomNumber); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("%w: room %s does not exist", apperrors.ErrValidation, req.RoomNumber)
			}
			return nil, fmt.Errorf("failed to validate room number: %w", err)
		}
	}

	seq, err := s.resRepo.NextReservationSequence(ctx, hotelID)
	if err != nil {
		logger.Error("Failed to allocate reservation number", slog.String("error", err.Error()), slog.String("hotel_id", hotelID))
		return nil, fmt.Errorf("failed to allocate reservation number: %w", err)
	}

	now := time.Now()
	reservation := domain.Reservation{
		ReservationID:     uuid.NewString(),
		HotelID:           hotelID,
		ReservationNumber: fmt.Sprintf("RSV-%s-%05d", now.Format("2006"), seq),

		GuestName:   req.GuestName,
		GuestEmail:  req.GuestEmail,
		GuestPhone:  req.GuestPhone,
		IDType:      req.IDType,
		IDNumber:    req.IDNumber,
		Nationality: req.Nationality,

		CheckInDate:  checkIn,
		CheckOutDate: checkOut,
		NumAdults:    req.NumAdults,
		NumChildren:  req.NumChildren,

		RoomType:   req.RoomType,
		RoomNumber: req.RoomNumber,

		BaseRate:        req.BaseRate,
		DiscountPercent: req.DiscountPercent,
		TaxRatePercent:  taxRate,
		ExtraCharges:    req.ExtraCharges.Round(2),
		TaxAmount:       quote.TaxAmount,
		TotalAmount:     quote.TotalAmount,
		DepositAmount:   req.DepositAmount,
		PaidAmount:      decimal.Zero,

		Status:        domain.StatusConfirmed,
		PaymentStatus: domain.PaymentPending,

		SpecialRequests: req.SpecialRequests,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.resRepo.SaveReservation(ctx, reservation); err != nil {
		logger.Error("Failed to save reservation in repository", slog.String("error", err.Error()), slog.String("hotel_id", hotelID))
		return nil, fmt.Errorf("failed to create reservation: %w", err)
	}

	logger.Info("Reservation created",
		slog.String("reservation_id", reservation.ReservationID),
		slog.String("reservation_number", reservation.ReservationNumber),
		slog.String("hotel_id", hotelID))
	return &reservation, nil
}

// GetReservationByID retrieves a reservation scoped to a hotel.
func (s *ReservationService) GetReservationByID(ctx context.Context, hotelID string, reservationID string, requestingUserID string) (*domain.Reservation, error) {
	if err := s.hotelSvc.AuthorizeUserAction(ctx, requestingUserID, hotelID, domain.RoleReadOnly); err != nil {
		return nil, err
	}
	return s.resRepo.FindReservationByID(ctx, hotelID, reservationID)
}

// ListReservations retrieves a filtered, sorted, paginated list of reservations.
func (s *ReservationService) ListReservations(ctx context.Context, hotelID string, userID string, params dto.ListReservationsParams) (*dto.ListReservationsResponse, error) {
	if err := s.hotelSvc.AuthorizeUserAction(ctx, userID, hotelID, domain.RoleReadOnly); err != nil {
		return nil, err
	}

	all, err := s.resRepo.ListReservationsByHotel(ctx, hotelID)
	if err != nil {
		return nil, fmt.Errorf("failed to list reservations: %w", err)
	}

	pageSize := params.PageSize
	if pageSize <= 0 {
		pageSize = s.defaultPageSize
	}

	result := listing.Apply(all,
		params.Filter(time.Now()),
		params.Sort(),
		listing.Page{Number: params.Page, Size: pageSize},
	)

	return &dto.ListReservationsResponse{
		Reservations: dto.ToReservationResponses(result.Items),
		TotalCount:   result.TotalCount,
		TotalPages:   result.TotalPages,
		Page:         result.Page,
		PageSize:     result.PageSize,
	}, nil
}

// UpdateReservation updates guest and stay details of a non-terminal
// reservation and recomputes the totals when pricing inputs change.
func (s *ReservationService) UpdateReservation(ctx context.Context, hotelID string, reservationID string, req dto.UpdateReservationRequest, requestingUserID string) (*domain.Reservation, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.hotelSvc.AuthorizeUserAction(ctx, requestingUserID, hotelID, domain.RoleFrontdesk); err != nil {
		return nil, err
	}

	reservation, err := s.resRepo.FindReservationByID(ctx, hotelID, reservationID)
	if err != nil {
		return nil, err
	}
	if reservation.Status.IsTerminal() {
		return nil, fmt.Errorf("%w: reservation in %s status cannot be modified", apperrors.ErrInvalidTransition, reservation.Status)
	}

	if req.GuestName != nil {
		reservation.GuestName = *req.GuestName
	}
	if req.GuestEmail != nil {
		reservation.GuestEmail = *req.GuestEmail
	}
	if req.GuestPhone != nil {
		reservation.GuestPhone = *req.GuestPhone
	}
	if req.IDType != nil {
		reservation.IDType = *req.IDType
	}
	if req.IDNumber != nil {
		reservation.IDNumber = *req.IDNumber
	}
	if req.Nationality != nil {
		reservation.Nationality = *req.Nationality
	}
	if req.CheckInDate != nil {
		checkIn, err := parseDate(*req.CheckInDate, "checkInDate")
		if err != nil {
			return nil, err
		}
		reservation.CheckInDate = checkIn
	}
	if req.CheckOutDate != nil {
		checkOut, err := parseDate(*req.CheckOutDate, "checkOutDate")
		if err != nil {
			return nil, err
		}
		reservation.CheckOutDate = checkOut
	}
	if !reservation.CheckOutDate.After(reservation.CheckInDate) {
		return nil, fmt.Errorf("%w: check-out date must be after check-in date", apperrors.ErrValidation)
	}
	if req.NumAdults != nil {
		reservation.NumAdults = *req.NumAdults
	}
	if req.NumChildren != nil {
		reservation.NumChildren = *req.NumChildren
	}
	if req.RoomType != nil {
		reservation.RoomType = *req.RoomType
	}
	if req.RoomNumber != nil {
		if *req.RoomNumber != "" {
			if _, err := s.roomRepo.FindRoomByNumber(ctx, hotelID, *req.RoomNumber); err != nil {
				if errors.Is(err, apperrors.ErrNotFound) {
					return nil, fmt.Errorf("%w: room %s does not exist", apperrors.ErrValidation, *req.RoomNumber)
				}
				return nil, fmt.Errorf("failed to validate room number: %w", err)
			}
		}
		reservation.RoomNumber = *req.RoomNumber
	}
	if req.BaseRate != nil {
		reservation.BaseRate = *req.BaseRate
	}
	if req.DiscountPercent != nil {
		reservation.DiscountPercent = *req.DiscountPercent
	}
	if req.TaxRatePercent != nil {
		reservation.TaxRatePercent = *req.TaxRatePercent
	}
	if req.ExtraCharges != nil {
		reservation.ExtraCharges = *req.ExtraCharges
	}
	if req.SpecialRequests != nil {
		reservation.SpecialRequests = *req.SpecialRequests
	}

	in := billing.Input{
		CheckInDate:     reservation.CheckInDate,
		CheckOutDate:    reservation.CheckOutDate,
		BaseRate:        reservation.BaseRate,
		DiscountPercent: reservation.DiscountPercent,
		TaxRatePercent:  reservation.TaxRatePercent,
		ExtraCharges:    reservation.ExtraCharges,
		AmountPaid:      reservation.PaidAmount,
	}
	if err := billing.Validate(in); err != nil {
		return nil, err
	}
	quote := billing.Compute(in)
	reservation.TaxAmount = quote.TaxAmount
	reservation.TotalAmount = quote.TotalAmount
	reservation.ExtraCharges = quote.ExtraCharges

	reservation.LastUpdatedAt = time.Now()
	reservation.LastUpdatedBy = requestingUserID

	if err := s.resRepo.UpdateReservation(ctx, *reservation); err != nil {
		logger.Error("Failed to update reservation in repository", slog.String("error", err.Error()), slog.String("reservation_id", reservationID))
		return nil, fmt.Errorf("failed to update reservation: %w", err)
	}

	return reservation, nil
}

// TransitionReservation moves a reservation to the target status after
// checking the transition guard. Checkout additionally requires a settled
// folio balance.
func (s *ReservationService) TransitionReservation(ctx context.Context, hotelID string, reservationID string, target domain.ReservationStatus, requestingUserID string) (*domain.Reservation, error) {
	if err := s.hotelSvc.AuthorizeUserAction(ctx, requestingUserID, hotelID, domain.RoleFrontdesk); err != nil {
		return nil, err
	}
	return s.transitionLocked(ctx, hotelID, reservationID, target, requestingUserID)
}

// transitionLocked performs the guarded transition without re-authorizing.
// Bulk actions call it per item after a single authorization check.
func (s *ReservationService) transitionLocked(ctx context.Context, hotelID string, reservationID string, target domain.ReservationStatus, requestingUserID string) (*domain.Reservation, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !target.IsValid() || target == domain.StatusNoShow {
		return nil, fmt.Errorf("%w: %s is not a valid transition target", apperrors.ErrValidation, target)
	}

	reservation, err := s.resRepo.FindReservationByID(ctx, hotelID, reservationID)
	if err != nil {
		return nil, err
	}

	if !reservation.Status.CanTransitionTo(target) {
		return nil, fmt.Errorf("%w: cannot move reservation from %s to %s", apperrors.ErrInvalidTransition, reservation.Status, target)
	}

	if target == domain.StatusCheckedOut {
		lines, err := s.folioRepo.FindFolioLinesByReservationID(ctx, reservationID)
		if err != nil {
			return nil, fmt.Errorf("failed to load folio charges: %w", err)
		}
		payments, err := s.folioRepo.FindPaymentsByReservationID(ctx, reservationID)
		if err != nil {
			return nil, fmt.Errorf("failed to load folio payments: %w", err)
		}
		balance := domain.FolioBalance(lines, payments)
		if balance.IsPositive() {
			return nil, fmt.Errorf("%w: folio balance of %s is outstanding, settle before checkout", apperrors.ErrValidation, utils.FormatAmount(balance))
		}
	}

	now := time.Now()
	if err := s.resRepo.UpdateReservationStatus(ctx, hotelID, reservationID, target, requestingUserID, now); err != nil {
		logger.Error("Failed to update reservation status", slog.String("error", err.Error()), slog.String("reservation_id", reservationID), slog.String("target_status", string(target)))
		return nil, fmt.Errorf("failed to update reservation status: %w", err)
	}

	reservation.Status = target
	reservation.LastUpdatedAt = now
	reservation.LastUpdatedBy = requestingUserID

	logger.Info("Reservation transitioned",
		slog.String("reservation_id", reservationID),
		slog.String("status", string(target)))
	return reservation, nil
}

// BulkTransition applies one transition to many reservations. Failures are
// isolated per item and reported in the response.
func (s *ReservationService) BulkTransition(ctx context.Context, hotelID string, req dto.BulkTransitionRequest, requestingUserID string) (*dto.BulkTransitionResponse, error) {
	if err := s.hotelSvc.AuthorizeUserAction(ctx, requestingUserID, hotelID, domain.RoleFrontdesk); err != nil {
		return nil, err
	}

	resp := &dto.BulkTransitionResponse{
		Results: make([]dto.BulkItemResult, 0, len(req.ReservationIDs)),
	}
	for _, id := range req.ReservationIDs {
		_, err := s.transitionLocked(ctx, hotelID, id, req.TargetStatus, requestingUserID)
		item := dto.BulkItemResult{ReservationID: id, OK: err == nil}
		if err != nil {
			item.Error = err.Error()
			resp.Failed++
		} else {
			resp.Succeeded++
		}
		resp.Results = append(resp.Results, item)
	}
	return resp, nil
}

// MarkNoShows flags confirmed reservations whose check-in date has passed as
// no_show. This is the only path that produces the no_show status.
func (s *ReservationService) MarkNoShows(ctx context.Context, hotelID string, asOf time.Time, requestingUserID string) (int, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.hotelSvc.AuthorizeUserAction(ctx, requestingUserID, hotelID, domain.RoleManager); err != nil {
		return 0, err
	}

	all, err := s.resRepo.ListReservationsByHotel(ctx, hotelID)
	if err != nil {
		return 0, fmt.Errorf("failed to list reservations: %w", err)
	}

	cutoff := time.Date(asOf.Year(), asOf.Month(), asOf.Day(), 0, 0, 0, 0, asOf.Location())
	marked := 0
	for i := range all {
		r := &all[i]
		if r.Status != domain.StatusConfirmed || !r.CheckInDate.Before(cutoff) {
			continue
		}
		if err := s.resRepo.UpdateReservationStatus(ctx, hotelID, r.ReservationID, domain.StatusNoShow, requestingUserID, time.Now()); err != nil {
			logger.Error("Failed to mark reservation as no-show", slog.String("error", err.Error()), slog.String("reservation_id", r.ReservationID))
			continue
		}
		marked++
	}

	logger.Info("No-show sweep completed", slog.String("hotel_id", hotelID), slog.Int("marked", marked))
	return marked, nil
}

// QuoteStay computes the cost breakdown of a prospective stay without
// persisting anything.
func (s *ReservationService) QuoteStay(ctx context.Context, hotelID string, req dto.QuoteRequest, requestingUserID string) (*billing.Quote, error) {
	if err := s.hotelSvc.AuthorizeUserAction(ctx, requestingUserID, hotelID, domain.RoleReadOnly); err != nil {
		return nil, err
	}

	checkIn, err := parseDate(req.CheckInDate, "checkInDate")
	if err != nil {
		return nil, err
	}
	checkOut, err := parseDate(req.CheckOutDate, "checkOutDate")
	if err != nil {
		return nil, err
	}

	taxRate, err := s.resolveTaxRate(ctx, hotelID, req.TaxRatePercent, requestingUserID)
	if err != nil {
		return nil, err
	}

	in := billing.Input{
		CheckInDate:     checkIn,
		CheckOutDate:    checkOut,
		BaseRate:        req.BaseRate,
		DiscountPercent: req.DiscountPercent,
		TaxRatePercent:  taxRate,
		ExtraCharges:    req.ExtraCharges,
		AmountPaid:      req.AmountPaid,
	}
	if err := billing.Validate(in); err != nil {
		return nil, err
	}
	quote := billing.Compute(in)
	return &quote, nil
}
