package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/stayfront/hotel_management_app/internal/core/domain"
	portsrepo "github.com/stayfront/hotel_management_app/internal/core/ports/repositories"
	"github.com/stayfront/hotel_management_app/internal/models"
	"github.com/stayfront/hotel_management_app/internal/utils/mapping"
)

type PgxFolioRepository struct {
	BaseRepository
}

func newPgxFolioRepository(db *pgxpool.Pool) portsrepo.FolioRepositoryFacade {
	return &PgxFolioRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.FolioRepositoryFacade = (*PgxFolioRepository)(nil)

func (r *PgxFolioRepository) SaveFolioLine(ctx context.Context, line domain.FolioLine) error {
	m := mapping.ToModelFolioLine(line)
	query := `
		INSERT INTO folio_lines (folio_line_id, reservation_id, charge_date, description, amount, charge_type, posted_by, posted_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.FolioLineID,
		m.ReservationID,
		m.ChargeDate,
		m.Description,
		m.Amount,
		m.ChargeType,
		m.PostedBy,
		m.PostedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save folio line: %w", err)
	}
	return nil
}

func (r *PgxFolioRepository) FindFolioLinesByReservationID(ctx context.Context, reservationID string) ([]domain.FolioLine, error) {
	query := `
		SELECT folio_line_id, reservation_id, charge_date, description, amount, charge_type, posted_by, posted_at
		FROM folio_lines
		WHERE reservation_id = $1
		ORDER BY posted_at, folio_line_id;
	`
	rows, err := r.Pool.Query(ctx, query, reservationID)
	if err != nil {
		return nil, fmt.Errorf("failed to query folio lines for reservation %s: %w", reservationID, err)
	}
	defer rows.Close()

	lines := []models.FolioLine{}
	for rows.Next() {
		var m models.FolioLine
		if err := rows.Scan(
			&m.FolioLineID,
			&m.ReservationID,
			&m.ChargeDate,
			&m.Description,
			&m.Amount,
			&m.ChargeType,
			&m.PostedBy,
			&m.PostedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan folio line row: %w", err)
		}
		lines = append(lines, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating folio line rows: %w", err)
	}
	return mapping.ToDomainFolioLineSlice(lines), nil
}

func (r *PgxFolioRepository) SavePayment(ctx context.Context, payment domain.Payment) error {
	m := mapping.ToModelPayment(payment)
	query := `
		INSERT INTO payments (payment_id, reservation_id, payment_date, amount, method, reference, payment_type, posted_by, posted_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.PaymentID,
		m.ReservationID,
		m.PaymentDate,
		m.Amount,
		m.Method,
		m.Reference,
		m.PaymentType,
		m.PostedBy,
		m.PostedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save payment: %w", err)
	}
	return nil
}

func (r *PgxFolioRepository) FindPaymentsByReservationID(ctx context.Context, reservationID string) ([]domain.Payment, error) {
	query := `
		SELECT payment_id, reservation_id, payment_date, amount, method, reference, payment_type, posted_by, posted_at
		FROM payments
		WHERE reservation_id = $1
		ORDER BY posted_at, payment_id;
	`
	rows, err := r.Pool.Query(ctx, query, reservationID)
	if err != nil {
		return nil, fmt.Errorf("failed to query payments for reservation %s: %w", reservationID, err)
	}
	defer rows.Close()

	payments := []models.Payment{}
	for rows.Next() {
		var m models.Payment
		if err := rows.Scan(
			&m.PaymentID,
			&m.ReservationID,
			&m.PaymentDate,
			&m.Amount,
			&m.Method,
			&m.Reference,
			&m.PaymentType,
			&m.PostedBy,
			&m.PostedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan payment row: %w", err)
		}
		payments = append(payments, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating payment rows: %w", err)
	}
	return mapping.ToDomainPaymentSlice(payments), nil
}
