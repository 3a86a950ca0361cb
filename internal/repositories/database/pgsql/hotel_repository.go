package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/stayfront/hotel_management_app/internal/apperrors"
	"github.com/stayfront/hotel_management_app/internal/core/domain"
	portsrepo "github.com/stayfront/hotel_management_app/internal/core/ports/repositories"
	"github.com/stayfront/hotel_management_app/internal/models"
	"github.com/stayfront/hotel_management_app/internal/utils/mapping"
)

type PgxHotelRepository struct {
	BaseRepository
}

func newPgxHotelRepository(db *pgxpool.Pool) portsrepo.HotelRepositoryFacade {
	return &PgxHotelRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.HotelRepositoryFacade = (*PgxHotelRepository)(nil)

const hotelColumns = `hotel_id, name, address, city, currency_code, tax_rate_percent, is_active,
		created_at, created_by, last_updated_at, last_updated_by`

func scanHotel(row pgx.Row) (*models.Hotel, error) {
	var m models.Hotel
	err := row.Scan(
		&m.HotelID,
		&m.Name,
		&m.Address,
		&m.City,
		&m.CurrencyCode,
		&m.TaxRatePercent,
		&m.IsActive,
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

func (r *PgxHotelRepository) SaveHotel(ctx context.Context, hotel domain.Hotel) error {
	m := mapping.ToModelHotel(hotel)
	query := `
		INSERT INTO hotels (hotel_id, name, address, city, currency_code, tax_rate_percent, is_active,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.HotelID,
		m.Name,
		m.Address,
		m.City,
		m.CurrencyCode,
		m.TaxRatePercent,
		m.IsActive,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save hotel: %w", err)
	}
	return nil
}

func (r *PgxHotelRepository) FindHotelByID(ctx context.Context, hotelID string) (*domain.Hotel, error) {
	query := `SELECT ` + hotelColumns + ` FROM hotels WHERE hotel_id = $1;`
	m, err := scanHotel(r.Pool.QueryRow(ctx, query, hotelID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find hotel by ID %s: %w", hotelID, err)
	}
	d := mapping.ToDomainHotel(*m)
	return &d, nil
}

func (r *PgxHotelRepository) ListHotelsByUser(ctx context.Context, userID string) ([]domain.Hotel, error) {
	query := `
		SELECT h.hotel_id, h.name, h.address, h.city, h.currency_code, h.tax_rate_percent, h.is_active,
			h.created_at, h.created_by, h.last_updated_at, h.last_updated_by
		FROM hotels h
		JOIN user_hotels uh ON uh.hotel_id = h.hotel_id
		WHERE uh.user_id = $1 AND uh.role != 'REMOVED'
		ORDER BY h.name;
	`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list hotels for user %s: %w", userID, err)
	}
	defer rows.Close()

	hotels := []domain.Hotel{}
	for rows.Next() {
		m, err := scanHotel(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan hotel row: %w", err)
		}
		hotels = append(hotels, mapping.ToDomainHotel(*m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating hotel rows: %w", err)
	}
	return hotels, nil
}

func (r *PgxHotelRepository) UpdateHotel(ctx context.Context, hotel domain.Hotel) error {
	m := mapping.ToModelHotel(hotel)
	query := `
		UPDATE hotels
		SET name = $2, address = $3, city = $4, currency_code = $5, tax_rate_percent = $6, is_active = $7,
			last_updated_at = $8, last_updated_by = $9
		WHERE hotel_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.HotelID,
		m.Name,
		m.Address,
		m.City,
		m.CurrencyCode,
		m.TaxRatePercent,
		m.IsActive,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update hotel %s: %w", hotel.HotelID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxHotelRepository) FindUserHotelRole(ctx context.Context, userID, hotelID string) (*domain.UserHotel, error) {
	query := `
		SELECT user_id, hotel_id, role, joined_at
		FROM user_hotels
		WHERE user_id = $1 AND hotel_id = $2 AND role != 'REMOVED';
	`
	var m models.UserHotel
	err := r.Pool.QueryRow(ctx, query, userID, hotelID).Scan(&m.UserID, &m.HotelID, &m.Role, &m.JoinedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find membership: %w", err)
	}
	d := mapping.ToDomainUserHotel(m)
	return &d, nil
}

func (r *PgxHotelRepository) ListHotelMembers(ctx context.Context, hotelID string) ([]domain.UserHotel, error) {
	query := `
		SELECT user_id, hotel_id, role, joined_at
		FROM user_hotels
		WHERE hotel_id = $1 AND role != 'REMOVED'
		ORDER BY joined_at;
	`
	rows, err := r.Pool.Query(ctx, query, hotelID)
	if err != nil {
		return nil, fmt.Errorf("failed to list members of hotel %s: %w", hotelID, err)
	}
	defer rows.Close()

	members := []domain.UserHotel{}
	for rows.Next() {
		var m models.UserHotel
		if err := rows.Scan(&m.UserID, &m.HotelID, &m.Role, &m.JoinedAt); err != nil {
			return nil, fmt.Errorf("failed to scan membership row: %w", err)
		}
		members = append(members, mapping.ToDomainUserHotel(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating membership rows: %w", err)
	}
	return members, nil
}

func (r *PgxHotelRepository) AddUserToHotel(ctx context.Context, membership domain.UserHotel) error {
	query := `
		INSERT INTO user_hotels (user_id, hotel_id, role, joined_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, hotel_id) DO UPDATE SET
			role = EXCLUDED.role,
			joined_at = CASE WHEN user_hotels.role = 'REMOVED' THEN EXCLUDED.joined_at ELSE user_hotels.joined_at END;
	`
	_, err := r.Pool.Exec(ctx, query, membership.UserID, membership.HotelID, string(membership.Role), membership.JoinedAt)
	if err != nil {
		return fmt.Errorf("failed to add user %s to hotel %s: %w", membership.UserID, membership.HotelID, err)
	}
	return nil
}

func (r *PgxHotelRepository) RemoveUserFromHotel(ctx context.Context, userID, hotelID string, removedAt time.Time) error {
	query := `
		UPDATE user_hotels
		SET role = 'REMOVED', removed_at = $3
		WHERE user_id = $1 AND hotel_id = $2 AND role != 'REMOVED';
	`
	tag, err := r.Pool.Exec(ctx, query, userID, hotelID, removedAt)
	if err != nil {
		return fmt.Errorf("failed to remove user %s from hotel %s: %w", userID, hotelID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
