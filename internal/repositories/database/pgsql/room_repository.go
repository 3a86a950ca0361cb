package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/stayfront/hotel_management_app/internal/apperrors"
	"github.com/stayfront/hotel_management_app/internal/core/domain"
	portsrepo "github.com/stayfront/hotel_management_app/internal/core/ports/repositories"
	"github.com/stayfront/hotel_management_app/internal/models"
	"github.com/stayfront/hotel_management_app/internal/utils/mapping"
)

type PgxRoomRepository struct {
	BaseRepository
}

func newPgxRoomRepository(db *pgxpool.Pool) portsrepo.RoomRepositoryFacade {
	return &PgxRoomRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.RoomRepositoryFacade = (*PgxRoomRepository)(nil)

const roomColumns = `room_id, hotel_id, room_type_id, room_number, floor, status,
		created_at, created_by, last_updated_at, last_updated_by`

func scanRoom(row pgx.Row) (*models.Room, error) {
	var m models.Room
	err := row.Scan(
		&m.RoomID,
		&m.HotelID,
		&m.RoomTypeID,
		&m.RoomNumber,
		&m.Floor,
		&m.Status,
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

func (r *PgxRoomRepository) SaveRoom(ctx context.Context, room domain.Room) error {
	m := mapping.ToModelRoom(room)
	query := `
		INSERT INTO rooms (room_id, hotel_id, room_type_id, room_number, floor, status,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.RoomID,
		m.HotelID,
		m.RoomTypeID,
		m.RoomNumber,
		m.Floor,
		m.Status,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return fmt.Errorf("room number %s: %w", room.RoomNumber, apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save room: %w", err)
	}
	return nil
}

func (r *PgxRoomRepository) FindRoomByNumber(ctx context.Context, hotelID, roomNumber string) (*domain.Room, error) {
	query := `SELECT ` + roomColumns + ` FROM rooms WHERE hotel_id = $1 AND room_number = $2;`
	m, err := scanRoom(r.Pool.QueryRow(ctx, query, hotelID, roomNumber))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find room %s: %w", roomNumber, err)
	}
	d := mapping.ToDomainRoom(*m)
	return &d, nil
}

func (r *PgxRoomRepository) ListRoomsByHotel(ctx context.Context, hotelID string) ([]domain.Room, error) {
	query := `SELECT ` + roomColumns + ` FROM rooms WHERE hotel_id = $1 ORDER BY room_number;`
	rows, err := r.Pool.Query(ctx, query, hotelID)
	if err != nil {
		return nil, fmt.Errorf("failed to list rooms for hotel %s: %w", hotelID, err)
	}
	defer rows.Close()

	roomModels := []models.Room{}
	for rows.Next() {
		m, err := scanRoom(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan room row: %w", err)
		}
		roomModels = append(roomModels, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating room rows: %w", err)
	}
	return mapping.ToDomainRoomSlice(roomModels), nil
}

func (r *PgxRoomRepository) CountRoomsByHotel(ctx context.Context, hotelID string) (int64, error) {
	var count int64
	err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM rooms WHERE hotel_id = $1;`, hotelID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count rooms for hotel %s: %w", hotelID, err)
	}
	return count, nil
}

func (r *PgxRoomRepository) UpdateRoomStatus(ctx context.Context, hotelID, roomID string, status domain.RoomStatus, updatedBy string, updatedAt time.Time) error {
	query := `
		UPDATE rooms
		SET status = $3, last_updated_at = $4, last_updated_by = $5
		WHERE hotel_id = $1 AND room_id = $2;
	`
	tag, err := r.Pool.Exec(ctx, query, hotelID, roomID, string(status), updatedAt, updatedBy)
	if err != nil {
		return fmt.Errorf("failed to update status of room %s: %w", roomID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

const roomTypeColumns = `room_type_id, hotel_id, name, description, max_occupancy, base_rate,
		created_at, created_by, last_updated_at, last_updated_by`

func scanRoomType(row pgx.Row) (*models.RoomType, error) {
	var m models.RoomType
	err := row.Scan(
		&m.RoomTypeID,
		&m.HotelID,
		&m.Name,
		&m.Description,
		&m.MaxOccupancy,
		&m.BaseRate,
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

func (r *PgxRoomRepository) SaveRoomType(ctx context.Context, roomType domain.RoomType) error {
	m := mapping.ToModelRoomType(roomType)
	query := `
		INSERT INTO room_types (room_type_id, hotel_id, name, description, max_occupancy, base_rate,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.RoomTypeID,
		m.HotelID,
		m.Name,
		m.Description,
		m.MaxOccupancy,
		m.BaseRate,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return fmt.Errorf("room type %s: %w", roomType.Name, apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save room type: %w", err)
	}
	return nil
}

func (r *PgxRoomRepository) FindRoomTypeByID(ctx context.Context, hotelID, roomTypeID string) (*domain.RoomType, error) {
	query := `SELECT ` + roomTypeColumns + ` FROM room_types WHERE hotel_id = $1 AND room_type_id = $2;`
	m, err := scanRoomType(r.Pool.QueryRow(ctx, query, hotelID, roomTypeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find room type %s: %w", roomTypeID, err)
	}
	d := mapping.ToDomainRoomType(*m)
	return &d, nil
}

func (r *PgxRoomRepository) ListRoomTypesByHotel(ctx context.Context, hotelID string) ([]domain.RoomType, error) {
	query := `SELECT ` + roomTypeColumns + ` FROM room_types WHERE hotel_id = $1 ORDER BY name;`
	rows, err := r.Pool.Query(ctx, query, hotelID)
	if err != nil {
		return nil, fmt.Errorf("failed to list room types for hotel %s: %w", hotelID, err)
	}
	defer rows.Close()

	typeModels := []models.RoomType{}
	for rows.Next() {
		m, err := scanRoomType(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan room type row: %w", err)
		}
		typeModels = append(typeModels, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating room type rows: %w", err)
	}
	return mapping.ToDomainRoomTypeSlice(typeModels), nil
}
