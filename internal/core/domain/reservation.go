package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReservationStatus is the lifecycle state of a reservation.
type ReservationStatus string

const (
	StatusConfirmed  ReservationStatus = "confirmed"
	StatusCheckedIn  ReservationStatus = "checked_in"
	StatusCheckedOut ReservationStatus = "checked_out"
	StatusCancelled  ReservationStatus = "cancelled"
	StatusNoShow     ReservationStatus = "no_show"
)

// PaymentStatus tracks settlement independently of the lifecycle state.
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPartial  PaymentStatus = "partial"
	PaymentPaid     PaymentStatus = "paid"
	PaymentRefunded PaymentStatus = "refunded"
)

// IsValid reports whether s is a known reservation status.
func (s ReservationStatus) IsValid() bool {
	switch s {
	case StatusConfirmed, StatusCheckedIn, StatusCheckedOut, StatusCancelled, StatusNoShow:
		return true
	}
	return false
}

// IsTerminal reports whether no further transitions are allowed out of s.
func (s ReservationStatus) IsTerminal() bool {
	switch s {
	case StatusCheckedOut, StatusCancelled, StatusNoShow:
		return true
	}
	return false
}

// CanTransitionTo is the pure guard table for the reservation lifecycle.
// no_show is deliberately unreachable here; it is set only through the
// dedicated service operation used by the nightly batch.
func (s ReservationStatus) CanTransitionTo(target ReservationStatus) bool {
	switch s {
	case StatusConfirmed:
		return target == StatusCheckedIn || target == StatusCancelled
	case StatusCheckedIn:
		return target == StatusCheckedOut || target == StatusCancelled
	}
	return false
}

// IsValid reports whether p is a known payment status.
func (p PaymentStatus) IsValid() bool {
	switch p {
	case PaymentPending, PaymentPartial, PaymentPaid, PaymentRefunded:
		return true
	}
	return false
}

// Reservation is the central entity of the back office: one guest stay at one hotel.
type Reservation struct {
	ReservationID     string `json:"reservationID"` // Primary Key (UUID)
	HotelID           string `json:"hotelID"`       // FK -> hotels.hotel_id (tenant scope)
	ReservationNumber string `json:"reservationNumber"`

	// Guest info. Immutable once check-in ID verification has happened, by convention.
	GuestName   string `json:"guestName"`
	GuestEmail  string `json:"guestEmail"`
	GuestPhone  string `json:"guestPhone"`
	IDType      string `json:"idType"`
	IDNumber    string `json:"idNumber"`
	Nationality string `json:"nationality"`

	// Stay window. CheckOutDate is strictly after CheckInDate.
	CheckInDate  time.Time `json:"checkInDate"`
	CheckOutDate time.Time `json:"checkOutDate"`
	NumAdults    int       `json:"numAdults"`
	NumChildren  int       `json:"numChildren"`

	RoomType   string `json:"roomType"`
	RoomNumber string `json:"roomNumber"` // blank until a room is allocated

	BaseRate        decimal.Decimal `json:"baseRate"` // per night
	DiscountPercent decimal.Decimal `json:"discountPercent"`
	TaxRatePercent  decimal.Decimal `json:"taxRatePercent"`
	ExtraCharges    decimal.Decimal `json:"extraCharges"`
	TaxAmount       decimal.Decimal `json:"taxAmount"`   // derived
	TotalAmount     decimal.Decimal `json:"totalAmount"` // derived
	DepositAmount   decimal.Decimal `json:"depositAmount"`
	PaidAmount      decimal.Decimal `json:"paidAmount"`

	Status        ReservationStatus `json:"status"`
	PaymentStatus PaymentStatus     `json:"paymentStatus"`

	SpecialRequests string `json:"specialRequests"`
	AuditFields
}

// Nights returns the stay length in nights, 0 when the window is empty or inverted.
func (r *Reservation) Nights() int {
	d := r.CheckOutDate.Sub(r.CheckInDate)
	if d <= 0 {
		return 0
	}
	nights := int(d.Hours() / 24)
	if d.Hours() > float64(nights)*24 {
		nights++ // partial day rounds up
	}
	return nights
}
