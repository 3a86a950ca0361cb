package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/stayfront/hotel_management_app/internal/apperrors"
	"github.com/stayfront/hotel_management_app/internal/core/domain"
	portsrepo "github.com/stayfront/hotel_management_app/internal/core/ports/repositories"
	portssvc "github.com/stayfront/hotel_management_app/internal/core/ports/services"
	"github.com/stayfront/hotel_management_app/internal/dto"
	"github.com/stayfront/hotel_management_app/internal/middleware"
	"github.com/stayfront/hotel_management_app/internal/utils/listing"
)

// exportService encodes filtered reservation lists for download. CSV encoding
// goes through encoding/csv so commas, quotes and newlines in guest data are
// escaped correctly.
type exportService struct {
	resRepo  portsrepo.ReservationReader
	hotelSvc portssvc.HotelAuthorizerSvc
}

// NewExportService creates a new export service.
func NewExportService(rr portsrepo.ReservationReader, authorizer portssvc.HotelAuthorizerSvc) portssvc.ExportService {
	return &exportService{
		resRepo:  rr,
		hotelSvc: authorizer,
	}
}

var _ portssvc.ExportService = (*exportService)(nil)

var csvHeader = []string{
	"reservation_number", "guest_name", "guest_email", "guest_phone",
	"check_in_date", "check_out_date", "nights", "room_type", "room_number",
	"status", "payment_status", "base_rate", "discount_percent",
	"tax_amount", "total_amount", "paid_amount",
}

// ExportReservations encodes a hotel's reservations in the requested format.
// An explicit ID selection narrows the export to those reservations; the list
// filters apply either way, pagination does not.
func (s *exportService) ExportReservations(ctx context.Context, hotelID string, userID string, params dto.ExportParams) (*dto.ExportResult, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.hotelSvc.AuthorizeUserAction(ctx, userID, hotelID, domain.RoleReadOnly); err != nil {
		return nil, err
	}

	format := dto.ExportFormat(params.Format)
	if format == "" {
		format = dto.ExportFormatCSV
	}
	switch format {
	case dto.ExportFormatCSV, dto.ExportFormatJSON:
	default:
		// excel and pdf appear in the format enum for API compatibility with
		// older clients but are not produced server-side.
		return nil, fmt.Errorf("%w: export format %s is not supported", apperrors.ErrValidation, params.Format)
	}

	all, err := s.selectReservations(ctx, hotelID, params.ReservationIDs)
	if err != nil {
		return nil, err
	}

	filter := listing.Filter{
		Search:        params.Search,
		Status:        domain.ReservationStatus(params.Status),
		PaymentStatus: domain.PaymentStatus(params.PaymentStatus),
		RoomType:      params.RoomType,
		DateBucket:    listing.DateBucket(params.DateBucket),
		Now:           time.Now(),
	}
	filtered := make([]domain.Reservation, 0, len(all))
	for i := range all {
		if filter.Matches(&all[i]) {
			filtered = append(filtered, all[i])
		}
	}

	stamp := time.Now().Format("20060102")
	var result *dto.ExportResult
	switch format {
	case dto.ExportFormatCSV:
		data, err := encodeCSV(filtered)
		if err != nil {
			return nil, fmt.Errorf("failed to encode csv export: %w", err)
		}
		result = &dto.ExportResult{
			ContentType: "text/csv",
			Filename:    fmt.Sprintf("reservations_%s.csv", stamp),
			Data:        data,
		}
	case dto.ExportFormatJSON:
		data, err := json.MarshalIndent(dto.ToReservationResponses(filtered), "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to encode json export: %w", err)
		}
		result = &dto.ExportResult{
			ContentType: "application/json",
			Filename:    fmt.Sprintf("reservations_%s.json", stamp),
			Data:        data,
		}
	}

	logger.Info("Reservations exported",
		slog.String("hotel_id", hotelID),
		slog.String("format", string(format)),
		slog.Int("rows", len(filtered)))
	return result, nil
}

// selectReservations resolves the export selection: the explicitly requested
// reservations in request order, or the hotel's full list when no IDs were
// given. Unknown and duplicate IDs are dropped silently so a stale selection
// still exports what remains.
func (s *exportService) selectReservations(ctx context.Context, hotelID string, reservationIDs []string) ([]domain.Reservation, error) {
	if len(reservationIDs) == 0 {
		all, err := s.resRepo.ListReservationsByHotel(ctx, hotelID)
		if err != nil {
			return nil, fmt.Errorf("failed to list reservations for export: %w", err)
		}
		return all, nil
	}

	byID, err := s.resRepo.FindReservationsByIDs(ctx, hotelID, reservationIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load selected reservations for export: %w", err)
	}
	selected := make([]domain.Reservation, 0, len(byID))
	seen := make(map[string]bool, len(reservationIDs))
	for _, id := range reservationIDs {
		if seen[id] {
			continue
		}
		seen[id] = true
		if r, ok := byID[id]; ok {
			selected = append(selected, r)
		}
	}
	return selected, nil
}

func encodeCSV(reservations []domain.Reservation) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeader); err != nil {
		return nil, err
	}
	for i := range reservations {
		r := &reservations[i]
		record := []string{
			r.ReservationNumber,
			r.GuestName,
			r.GuestEmail,
			r.GuestPhone,
			r.CheckInDate.Format("2006-01-02"),
			r.CheckOutDate.Format("2006-01-02"),
			fmt.Sprintf("%d", r.Nights()),
			r.RoomType,
			r.RoomNumber,
			string(r.Status),
			string(r.PaymentStatus),
			r.BaseRate.StringFixed(2),
			r.DiscountPercent.StringFixed(2),
			r.TaxAmount.StringFixed(2),
			r.TotalAmount.StringFixed(2),
			r.PaidAmount.StringFixed(2),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
