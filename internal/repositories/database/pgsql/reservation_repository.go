package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/stayfront/hotel_management_app/internal/apperrors"
	"github.com/stayfront/hotel_management_app/internal/core/domain"
	portsrepo "github.com/stayfront/hotel_management_app/internal/core/ports/repositories"
	"github.com/stayfront/hotel_management_app/internal/models"
	"github.com/stayfront/hotel_management_app/internal/utils/mapping"
)

type PgxReservationRepository struct {
	BaseRepository
}

func newPgxReservationRepository(db *pgxpool.Pool) portsrepo.ReservationRepositoryWithTx {
	return &PgxReservationRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.ReservationRepositoryWithTx = (*PgxReservationRepository)(nil)

const reservationColumns = `reservation_id, hotel_id, reservation_number,
		guest_name, guest_email, guest_phone, id_type, id_number, nationality,
		check_in_date, check_out_date, num_adults, num_children,
		room_type, room_number,
		base_rate, discount_percent, tax_rate_percent, extra_charges,
		tax_amount, total_amount, deposit_amount, paid_amount,
		status, payment_status, special_requests,
		created_at, created_by, last_updated_at, last_updated_by`

func scanReservation(row pgx.Row) (*models.Reservation, error) {
	var m models.Reservation
	err := row.Scan(
		&m.ReservationID,
		&m.HotelID,
		&m.ReservationNumber,
		&m.GuestName,
		&m.GuestEmail,
		&m.GuestPhone,
		&m.IDType,
		&m.IDNumber,
		&m.Nationality,
		&m.CheckInDate,
		&m.CheckOutDate,
		&m.NumAdults,
		&m.NumChildren,
		&m.RoomType,
		&m.RoomNumber,
		&m.BaseRate,
		&m.DiscountPercent,
		&m.TaxRatePercent,
		&m.ExtraCharges,
		&m.TaxAmount,
		&m.TotalAmount,
		&m.DepositAmount,
		&m.PaidAmount,
		&m.Status,
		&m.PaymentStatus,
		&m.SpecialRequests,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *PgxReservationRepository) SaveReservation(ctx context.Context, reservation domain.Reservation) error {
	m := mapping.ToModelReservation(reservation)
	query := `
		INSERT INTO reservations (` + reservationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15,
			$16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28, $29, $30);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ReservationID, m.HotelID, m.ReservationNumber,
		m.GuestName, m.GuestEmail, m.GuestPhone, m.IDType, m.IDNumber, m.Nationality,
		m.CheckInDate, m.CheckOutDate, m.NumAdults, m.NumChildren,
		m.RoomType, m.RoomNumber,
		m.BaseRate, m.DiscountPercent, m.TaxRatePercent, m.ExtraCharges,
		m.TaxAmount, m.TotalAmount, m.DepositAmount, m.PaidAmount,
		string(m.Status), string(m.PaymentStatus), m.SpecialRequests,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return fmt.Errorf("reservation number %s: %w", reservation.ReservationNumber, apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save reservation: %w", err)
	}
	return nil
}

func (r *PgxReservationRepository) FindReservationByID(ctx context.Context, hotelID, reservationID string) (*domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE hotel_id = $1 AND reservation_id = $2;`
	m, err := scanReservation(r.Pool.QueryRow(ctx, query, hotelID, reservationID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find reservation %s: %w", reservationID, err)
	}
	d := mapping.ToDomainReservation(*m)
	return &d, nil
}

func (r *PgxReservationRepository) ListReservationsByHotel(ctx context.Context, hotelID string) ([]domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE hotel_id = $1 ORDER BY created_at DESC, reservation_id;`
	rows, err := r.Pool.Query(ctx, query, hotelID)
	if err != nil {
		return nil, fmt.Errorf("failed to list reservations for hotel %s: %w", hotelID, err)
	}
	defer rows.Close()

	reservations := []domain.Reservation{}
	for rows.Next() {
		m, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan reservation row: %w", err)
		}
		reservations = append(reservations, mapping.ToDomainReservation(*m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating reservation rows: %w", err)
	}
	return reservations, nil
}

func (r *PgxReservationRepository) FindReservationsByIDs(ctx context.Context, hotelID string, reservationIDs []string) (map[string]domain.Reservation, error) {
	if len(reservationIDs) == 0 {
		return map[string]domain.Reservation{}, nil
	}
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE hotel_id = $1 AND reservation_id = ANY($2);`
	rows, err := r.Pool.Query(ctx, query, hotelID, reservationIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to find reservations by IDs: %w", err)
	}
	defer rows.Close()

	result := make(map[string]domain.Reservation, len(reservationIDs))
	for rows.Next() {
		m, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan reservation row: %w", err)
		}
		result[m.ReservationID] = mapping.ToDomainReservation(*m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating reservation rows: %w", err)
	}
	return result, nil
}

func (r *PgxReservationRepository) NextReservationSequence(ctx context.Context, hotelID string) (int64, error) {
	// One counter row per hotel, bumped atomically.
	query := `
		INSERT INTO reservation_sequences (hotel_id, last_value)
		VALUES ($1, 1)
		ON CONFLICT (hotel_id) DO UPDATE SET last_value = reservation_sequences.last_value + 1
		RETURNING last_value;
	`
	var next int64
	if err := r.Pool.QueryRow(ctx, query, hotelID).Scan(&next); err != nil {
		return 0, fmt.Errorf("failed to advance reservation sequence for hotel %s: %w", hotelID, err)
	}
	return next, nil
}

func (r *PgxReservationRepository) UpdateReservation(ctx context.Context, reservation domain.Reservation) error {
	m := mapping.ToModelReservation(reservation)
	query := `
		UPDATE reservations
		SET guest_name = $3, guest_email = $4, guest_phone = $5, id_type = $6, id_number = $7, nationality = $8,
			check_in_date = $9, check_out_date = $10, num_adults = $11, num_children = $12,
			room_type = $13, room_number = $14,
			base_rate = $15, discount_percent = $16, tax_rate_percent = $17, extra_charges = $18,
			tax_amount = $19, total_amount = $20, deposit_amount = $21, paid_amount = $22,
			status = $23, payment_status = $24, special_requests = $25,
			last_updated_at = $26, last_updated_by = $27
		WHERE hotel_id = $1 AND reservation_id = $2;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.HotelID, m.ReservationID,
		m.GuestName, m.GuestEmail, m.GuestPhone, m.IDType, m.IDNumber, m.Nationality,
		m.CheckInDate, m.CheckOutDate, m.NumAdults, m.NumChildren,
		m.RoomType, m.RoomNumber,
		m.BaseRate, m.DiscountPercent, m.TaxRatePercent, m.ExtraCharges,
		m.TaxAmount, m.TotalAmount, m.DepositAmount, m.PaidAmount,
		string(m.Status), string(m.PaymentStatus), m.SpecialRequests,
		m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update reservation %s: %w", reservation.ReservationID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxReservationRepository) UpdateReservationStatus(ctx context.Context, hotelID, reservationID string, status domain.ReservationStatus, updatedBy string, updatedAt time.Time) error {
	query := `
		UPDATE reservations
		SET status = $3, last_updated_at = $4, last_updated_by = $5
		WHERE hotel_id = $1 AND reservation_id = $2;
	`
	tag, err := r.Pool.Exec(ctx, query, hotelID, reservationID, string(status), updatedAt, updatedBy)
	if err != nil {
		return fmt.Errorf("failed to update status of reservation %s: %w", reservationID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxReservationRepository) UpdateReservationSettlement(ctx context.Context, reservationID string, paidAmount decimal.Decimal, paymentStatus domain.PaymentStatus, updatedBy string, updatedAt time.Time) error {
	query := `
		UPDATE reservations
		SET paid_amount = $2, payment_status = $3, last_updated_at = $4, last_updated_by = $5
		WHERE reservation_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, reservationID, paidAmount, string(paymentStatus), updatedAt, updatedBy)
	if err != nil {
		return fmt.Errorf("failed to update settlement of reservation %s: %w", reservationID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
