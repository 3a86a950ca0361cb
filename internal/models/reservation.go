package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReservationStatus mirrors domain.ReservationStatus at the persistence layer.
type ReservationStatus string

// PaymentStatus mirrors domain.PaymentStatus at the persistence layer.
type PaymentStatus string

// Reservation is the reservations table row.
type Reservation struct {
	ReservationID     string `db:"reservation_id"`
	HotelID           string `db:"hotel_id"`
	ReservationNumber string `db:"reservation_number"`

	GuestName   string `db:"guest_name"`
	GuestEmail  string `db:"guest_email"`
	GuestPhone  string `db:"guest_phone"`
	IDType      string `db:"id_type"`
	IDNumber    string `db:"id_number"`
	Nationality string `db:"nationality"`

	CheckInDate  time.Time `db:"check_in_date"`
	CheckOutDate time.Time `db:"check_out_date"`
	NumAdults    int       `db:"num_adults"`
	NumChildren  int       `db:"num_children"`

	RoomType   string `db:"room_type"`
	RoomNumber string `db:"room_number"`

	BaseRate        decimal.Decimal `db:"base_rate"`
	DiscountPercent decimal.Decimal `db:"discount_percent"`
	TaxRatePercent  decimal.Decimal `db:"tax_rate_percent"`
	ExtraCharges    decimal.Decimal `db:"extra_charges"`
	TaxAmount       decimal.Decimal `db:"tax_amount"`
	TotalAmount     decimal.Decimal `db:"total_amount"`
	DepositAmount   decimal.Decimal `db:"deposit_amount"`
	PaidAmount      decimal.Decimal `db:"paid_amount"`

	Status        ReservationStatus `db:"status"`
	PaymentStatus PaymentStatus     `db:"payment_status"`

	SpecialRequests string `db:"special_requests"`
	AuditFields
}
