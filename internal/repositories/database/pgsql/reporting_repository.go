package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/stayfront/hotel_management_app/internal/core/domain"
	portsrepo "github.com/stayfront/hotel_management_app/internal/core/ports/repositories"
)

// reportingRepository implements the ReportingRepository interface
type reportingRepository struct {
	BaseRepository
}

func newReportingRepository(db *pgxpool.Pool) portsrepo.ReportingRepository {
	return &reportingRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

var _ portsrepo.ReportingRepository = (*reportingRepository)(nil)

// GetDailyRevenue returns one row per day with folio revenue broken out by
// charge type, plus payments taken that day. Days with no activity are absent.
func (r *reportingRepository) GetDailyRevenue(ctx context.Context, hotelID string, from, to time.Time) ([]domain.DailyRevenueRow, error) {
	query := `
		WITH charges AS (
			SELECT
				fl.charge_date::date AS day,
				SUM(CASE WHEN fl.charge_type = 'room' THEN fl.amount ELSE 0 END) AS room_revenue,
				SUM(CASE WHEN fl.charge_type = 'tax' THEN fl.amount ELSE 0 END) AS tax_collected,
				SUM(CASE WHEN fl.charge_type NOT IN ('room', 'tax') THEN fl.amount ELSE 0 END) AS other_revenue,
				SUM(fl.amount) AS total_revenue
			FROM folio_lines fl
			JOIN reservations res ON res.reservation_id = fl.reservation_id
			WHERE res.hotel_id = $1
				AND fl.charge_date::date BETWEEN $2 AND $3
			GROUP BY fl.charge_date::date
		),
		takings AS (
			SELECT
				p.payment_date::date AS day,
				SUM(p.amount) AS payments_taken
			FROM payments p
			JOIN reservations res ON res.reservation_id = p.reservation_id
			WHERE res.hotel_id = $1
				AND p.payment_date::date BETWEEN $2 AND $3
			GROUP BY p.payment_date::date
		)
		SELECT
			COALESCE(c.day, t.day) AS day,
			COALESCE(c.room_revenue, 0),
			COALESCE(c.tax_collected, 0),
			COALESCE(c.other_revenue, 0),
			COALESCE(c.total_revenue, 0),
			COALESCE(t.payments_taken, 0)
		FROM charges c
		FULL OUTER JOIN takings t ON t.day = c.day
		ORDER BY day;
	`

	rows, err := r.Pool.Query(ctx, query, hotelID, from, to)
	if err != nil {
		return nil, fmt.Errorf("error querying daily revenue data: %w", err)
	}
	defer rows.Close()

	result := []domain.DailyRevenueRow{}
	for rows.Next() {
		var row domain.DailyRevenueRow
		if err := rows.Scan(
			&row.Day,
			&row.RoomRevenue,
			&row.TaxCollected,
			&row.OtherRevenue,
			&row.TotalRevenue,
			&row.PaymentsTaken,
		); err != nil {
			return nil, fmt.Errorf("error scanning daily revenue row: %w", err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating daily revenue rows: %w", err)
	}
	return result, nil
}

// GetOccupancy aggregates room-nights occupied and room revenue over
// reservations whose stay overlaps [from, to]. Cancelled and no-show stays do
// not count as occupied.
func (r *reportingRepository) GetOccupancy(ctx context.Context, hotelID string, from, to time.Time) (int64, decimal.Decimal, error) {
	// Each stay contributes the nights falling inside the range. The range end
	// is inclusive, so the clip upper bound is to + 1 day.
	query := `
		SELECT
			COALESCE(SUM(
				GREATEST(0, LEAST(check_out_date::date, ($3::date + 1)) - GREATEST(check_in_date::date, $2::date))
			), 0) AS room_nights,
			COALESCE(SUM(
				base_rate * (1 - discount_percent / 100)
					* GREATEST(0, LEAST(check_out_date::date, ($3::date + 1)) - GREATEST(check_in_date::date, $2::date))
			), 0) AS room_revenue
		FROM reservations
		WHERE hotel_id = $1
			AND status IN ('checked_in', 'checked_out')
			AND check_in_date::date <= $3
			AND check_out_date::date > $2;
	`

	var roomNights int64
	var roomRevenue decimal.Decimal
	err := r.Pool.QueryRow(ctx, query, hotelID, from, to).Scan(&roomNights, &roomRevenue)
	if err != nil {
		return 0, decimal.Zero, fmt.Errorf("error querying occupancy data: %w", err)
	}
	return roomNights, roomRevenue, nil
}

// GetStatusCounts returns the number of reservations per lifecycle status.
func (r *reportingRepository) GetStatusCounts(ctx context.Context, hotelID string) ([]domain.StatusCountRow, error) {
	query := `
		SELECT status, COUNT(*)
		FROM reservations
		WHERE hotel_id = $1
		GROUP BY status
		ORDER BY status;
	`

	rows, err := r.Pool.Query(ctx, query, hotelID)
	if err != nil {
		return nil, fmt.Errorf("error querying status counts: %w", err)
	}
	defer rows.Close()

	result := []domain.StatusCountRow{}
	for rows.Next() {
		var status string
		var count int64
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("error scanning status count row: %w", err)
		}
		result = append(result, domain.StatusCountRow{
			Status: domain.ReservationStatus(status),
			Count:  count,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating status count rows: %w", err)
	}
	return result, nil
}
