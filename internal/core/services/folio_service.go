package services

import (
	"context"
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
)

// FolioService handles the per-stay ledger: posting charges and payments and
// keeping the reservation's settlement fields in sync.
type FolioService struct {
	folioRepo portsrepo.FolioRepositoryFacade
	resRepo   portsrepo.ReservationRepositoryFacade
	hotelSvc  portssvc.HotelAuthorizerSvc
}

// NewFolioService creates a new FolioService.
func NewFolioService(fr portsrepo.FolioRepositoryFacade, rr portsrepo.ReservationRepositoryFacade, authorizer portssvc.HotelAuthorizerSvc) portssvc.FolioSvcFacade {
	return &FolioService{
		folioRepo: fr,
		resRepo:   rr,
		hotelSvc:  authorizer,
	}
}

var _ portssvc.FolioSvcFacade = (*FolioService)(nil)

// GetFolio retrieves the full folio of a reservation.
func (s *FolioService) GetFolio(ctx context.Context, hotelID string, reservationID string, requestingUserID string) (*domain.Folio, error) {
	if err := s.hotelSvc.AuthorizeUserAction(ctx, requestingUserID, hotelID, domain.RoleReadOnly); err != nil {
		return nil, err
	}
	if _, err := s.resRepo.FindReservationByID(ctx, hotelID, reservationID); err != nil {
		return nil, err
	}

	lines, err := s.folioRepo.FindFolioLinesByReservationID(ctx, reservationID)
	if err != nil {
		return nil, fmt.Errorf("failed to load folio charges: %w", err)
	}
	payments, err := s.folioRepo.FindPaymentsByReservationID(ctx, reservationID)
	if err != nil {
		return nil, fmt.Errorf("failed to load folio payments: %w", err)
	}

	totalCharges := decimal.Zero
	for _, l := range lines {
		totalCharges = totalCharges.Add(l.Amount)
	}
	totalPaid := decimal.Zero
	for _, p := range payments {
		totalPaid = totalPaid.Add(p.Amount)
	}

	return &domain.Folio{
		ReservationID: reservationID,
		Lines:         lines,
		Payments:      payments,
		TotalCharges:  totalCharges.Round(2),
		TotalPaid:     totalPaid.Round(2),
		Balance:       totalCharges.Sub(totalPaid).Round(2),
	}, nil
}

// PostCharge appends a charge line to the reservation's folio. Charges can be
// posted until the reservation reaches a terminal status; corrections are
// posted as new lines with a negative amount.
func (s *FolioService) PostCharge(ctx context.Context, hotelID string, reservationID string, req dto.PostChargeRequest, postingUserID string) (*domain.FolioLine, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.hotelSvc.AuthorizeUserAction(ctx, postingUserID, hotelID, domain.RoleFrontdesk); err != nil {
		return nil, err
	}

	reservation, err := s.resRepo.FindReservationByID(ctx, hotelID, reservationID)
	if err != nil {
		return nil, err
	}
	if reservation.Status.IsTerminal() {
		return nil, fmt.Errorf("%w: cannot post charges to a reservation in %s status", apperrors.ErrInvalidTransition, reservation.Status)
	}
	if !req.ChargeType.IsValid() {
		return nil, fmt.Errorf("%w: unknown charge type %s", apperrors.ErrValidation, req.ChargeType)
	}
	if req.Amount.IsZero() {
		return nil, fmt.Errorf("%w: charge amount must not be zero", apperrors.ErrValidation)
	}

	now := time.Now()
	chargeDate := now
	if req.ChargeDate != "" {
		chargeDate, err = parseDate(req.ChargeDate, "chargeDate")
		if err != nil {
			return nil, err
		}
	}

	line := domain.FolioLine{
		FolioLineID:   uuid.NewString(),
		ReservationID: reservationID,
		ChargeDate:    chargeDate,
		Description:   req.Description,
		Amount:        req.Amount.Round(2),
		ChargeType:    req.ChargeType,
		PostedBy:      postingUserID,
		PostedAt:      now,
	}
	if err := s.folioRepo.SaveFolioLine(ctx, line); err != nil {
		logger.Error("Failed to save folio line", slog.String("error", err.Error()), slog.String("reservation_id", reservationID))
		return nil, fmt.Errorf("failed to post charge: %w", err)
	}

	logger.Info("Charge posted",
		slog.String("reservation_id", reservationID),
		slog.String("charge_type", string(req.ChargeType)),
		slog.String("amount", line.Amount.StringFixed(2)))
	return &line, nil
}

// PostPayment records a payment against the reservation and refreshes the
// reservation's paid amount and payment status. Refunds are stored with a
// negative amount so the balance arithmetic stays a plain sum.
func (s *FolioService) PostPayment(ctx context.Context, hotelID string, reservationID string, req dto.PostPaymentRequest, postingUserID string) (*domain.Payment, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.hotelSvc.AuthorizeUserAction(ctx, postingUserID, hotelID, domain.RoleFrontdesk); err != nil {
		return nil, err
	}

	reservation, err := s.resRepo.FindReservationByID(ctx, hotelID, reservationID)
	if err != nil {
		return nil, err
	}
	if reservation.Status.IsTerminal() {
		return nil, fmt.Errorf("%w: cannot post payments to a reservation in %s status", apperrors.ErrInvalidTransition, reservation.Status)
	}
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: payment amount must be positive", apperrors.ErrValidation)
	}

	amount := req.Amount.Round(2)
	priorPayments, err := s.folioRepo.FindPaymentsByReservationID(ctx, reservationID)
	if err != nil {
		return nil, fmt.Errorf("failed to load folio payments: %w", err)
	}
	paidToDate := decimal.Zero
	for _, p := range priorPayments {
		paidToDate = paidToDate.Add(p.Amount)
	}
	if req.PaymentType == domain.PaymentTypeRefund {
		if amount.GreaterThan(paidToDate) {
			return nil, fmt.Errorf("%w: refund of %s exceeds the %s paid to date", apperrors.ErrValidation, amount.StringFixed(2), paidToDate.StringFixed(2))
		}
		amount = amount.Neg()
	} else if paidToDate.Add(amount).GreaterThan(reservation.TotalAmount) {
		return nil, fmt.Errorf("%w: payment of %s would exceed the reservation total of %s", apperrors.ErrValidation, amount.StringFixed(2), reservation.TotalAmount.StringFixed(2))
	}

	now := time.Now()
	paymentDate := now
	if req.PaymentDate != "" {
		paymentDate, err = parseDate(req.PaymentDate, "paymentDate")
		if err != nil {
			return nil, err
		}
	}

	payment := domain.Payment{
		PaymentID:     uuid.NewString(),
		ReservationID: reservationID,
		PaymentDate:   paymentDate,
		Amount:        amount,
		Method:        req.Method,
		Reference:     req.Reference,
		PaymentType:   req.PaymentType,
		PostedBy:      postingUserID,
		PostedAt:      now,
	}
	if err := s.folioRepo.SavePayment(ctx, payment); err != nil {
		logger.Error("Failed to save payment", slog.String("error", err.Error()), slog.String("reservation_id", reservationID))
		return nil, fmt.Errorf("failed to post payment: %w", err)
	}

	if err := s.refreshSettlement(ctx, reservation, postingUserID, now); err != nil {
		// The payment row is already durable; settlement fields are derived and
		// will be corrected by the next posting.
		logger.Error("Failed to refresh reservation settlement", slog.String("error", err.Error()), slog.String("reservation_id", reservationID))
	}

	logger.Info("Payment posted",
		slog.String("reservation_id", reservationID),
		slog.String("payment_type", string(req.PaymentType)),
		slog.String("amount", amount.StringFixed(2)))
	return &payment, nil
}

// refreshSettlement recomputes the reservation's derived paid amount and
// payment status from the folio.
func (s *FolioService) refreshSettlement(ctx context.Context, reservation *domain.Reservation, updatedBy string, now time.Time) error {
	lines, err := s.folioRepo.FindFolioLinesByReservationID(ctx, reservation.ReservationID)
	if err != nil {
		return fmt.Errorf("failed to load folio charges: %w", err)
	}
	payments, err := s.folioRepo.FindPaymentsByReservationID(ctx, reservation.ReservationID)
	if err != nil {
		return fmt.Errorf("failed to load folio payments: %w", err)
	}

	totalPaid := decimal.Zero
	hasRefund := false
	for _, p := range payments {
		totalPaid = totalPaid.Add(p.Amount)
		if p.PaymentType == domain.PaymentTypeRefund {
			hasRefund = true
		}
	}
	balance := domain.FolioBalance(lines, payments)

	status := domain.PaymentPending
	switch {
	case totalPaid.IsPositive() && !balance.IsPositive():
		status = domain.PaymentPaid
	case totalPaid.IsPositive():
		status = domain.PaymentPartial
	case hasRefund:
		status = domain.PaymentRefunded
	}

	return s.resRepo.UpdateReservationSettlement(ctx, reservation.ReservationID, totalPaid.Round(2), status, updatedBy, now)
}
