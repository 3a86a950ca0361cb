package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/stayfront/hotel_management_app/internal/core/domain"
	"github.com/stayfront/hotel_management_app/internal/utils/listing"
)

// CreateReservationRequest defines the data needed to create a reservation.
// Dates are date-only strings ("2006-01-02"); parsing and the
// check-out-after-check-in invariant are validated by the service.
type CreateReservationRequest struct {
	GuestName   string `json:"guestName" binding:"required"`
	GuestEmail  string `json:"guestEmail" binding:"omitempty,email"`
	GuestPhone  string `json:"guestPhone"`
	IDType      string `json:"idType"`
	IDNumber    string `json:"idNumber"`
	Nationality string `json:"nationality"`

	CheckInDate  string `json:"checkInDate" binding:"required,dateonly"`
	CheckOutDate string `json:"checkOutDate" binding:"required,dateonly"`
	NumAdults    int    `json:"numAdults" binding:"required,min=1"`
	NumChildren  int    `json:"numChildren" binding:"min=0"`

	RoomType   string `json:"roomType" binding:"required"`
	RoomNumber string `json:"roomNumber"` // optional until allocation

	BaseRate        decimal.Decimal  `json:"baseRate" binding:"required"`
	DiscountPercent decimal.Decimal  `json:"discountPercent"`
	TaxRatePercent  *decimal.Decimal `json:"taxRatePercent"` // nil -> hotel/default rate
	ExtraCharges    decimal.Decimal  `json:"extraCharges"`
	DepositAmount   decimal.Decimal  `json:"depositAmount"`

	SpecialRequests string `json:"specialRequests"`
}

// UpdateReservationRequest defines the fields allowed to change on an existing
// reservation. Pointers distinguish "not provided" from zero values.
type UpdateReservationRequest struct {
	GuestName   *string `json:"guestName"`
	GuestEmail  *string `json:"guestEmail" binding:"omitempty,email"`
	GuestPhone  *string `json:"guestPhone"`
	IDType      *string `json:"idType"`
	IDNumber    *string `json:"idNumber"`
	Nationality *string `json:"nationality"`

	CheckInDate  *string `json:"checkInDate" binding:"omitempty,dateonly"`
	CheckOutDate *string `json:"checkOutDate" binding:"omitempty,dateonly"`
	NumAdults    *int    `json:"numAdults" binding:"omitempty,min=1"`
	NumChildren  *int    `json:"numChildren" binding:"omitempty,min=0"`

	RoomType   *string `json:"roomType"`
	RoomNumber *string `json:"roomNumber"`

	BaseRate        *decimal.Decimal `json:"baseRate"`
	DiscountPercent *decimal.Decimal `json:"discountPercent"`
	TaxRatePercent  *decimal.Decimal `json:"taxRatePercent"`
	ExtraCharges    *decimal.Decimal `json:"extraCharges"`

	SpecialRequests *string `json:"specialRequests"`
}

// TransitionRequest carries the target lifecycle status for a reservation.
type TransitionRequest struct {
	TargetStatus domain.ReservationStatus `json:"targetStatus" binding:"required,oneof=confirmed checked_in checked_out cancelled"`
}

// BulkTransitionRequest applies one transition to a selection of reservations.
type BulkTransitionRequest struct {
	ReservationIDs []string                 `json:"reservationIDs" binding:"required,min=1"`
	TargetStatus   domain.ReservationStatus `json:"targetStatus" binding:"required,oneof=checked_in checked_out cancelled"`
}

// BulkItemResult reports the outcome for one reservation in a bulk action.
type BulkItemResult struct {
	ReservationID string `json:"reservationID"`
	OK            bool   `json:"ok"`
	Error         string `json:"error,omitempty"`
}

// BulkTransitionResponse summarises a bulk action. Per-item failures never
// abort the batch.
type BulkTransitionResponse struct {
	Succeeded int              `json:"succeeded"`
	Failed    int              `json:"failed"`
	Results   []BulkItemResult `json:"results"`
}

// ListReservationsParams defines the query parameters of the reservation list
// views. All filters default to match-all and combine with AND.
type ListReservationsParams struct {
	Search        string `form:"search"`
	Status        string `form:"status" binding:"omitempty,oneof=confirmed checked_in checked_out cancelled no_show"`
	PaymentStatus string `form:"paymentStatus" binding:"omitempty,oneof=pending partial paid refunded"`
	RoomType      string `form:"roomType"`
	DateBucket    string `form:"dateBucket" binding:"omitempty,oneof=today_checkin today_checkout this_week this_month next_month"`
	SortBy        string `form:"sortBy" binding:"omitempty,oneof=created_at check_in_date check_out_date guest_name total_amount status"`
	SortDesc      bool   `form:"sortDesc"`
	Page          int    `form:"page,default=1" binding:"omitempty,min=1"`
	PageSize      int    `form:"pageSize" binding:"omitempty,min=1,max=100"`
}

// Filter converts the bound query params into a listing.Filter anchored at now.
func (p ListReservationsParams) Filter(now time.Time) listing.Filter {
	return listing.Filter{
		Search:        p.Search,
		Status:        domain.ReservationStatus(p.Status),
		PaymentStatus: domain.PaymentStatus(p.PaymentStatus),
		RoomType:      p.RoomType,
		DateBucket:    listing.DateBucket(p.DateBucket),
		Now:           now,
	}
}

// Sort converts the bound query params into a listing.Sort.
func (p ListReservationsParams) Sort() listing.Sort {
	return listing.Sort{Key: listing.SortKey(p.SortBy), Descending: p.SortDesc}
}

// ReservationResponse defines the data returned for a reservation.
type ReservationResponse struct {
	ReservationID     string `json:"reservationID"`
	HotelID           string `json:"hotelID"`
	ReservationNumber string `json:"reservationNumber"`

	GuestName   string `json:"guestName"`
	GuestEmail  string `json:"guestEmail"`
	GuestPhone  string `json:"guestPhone"`
	IDType      string `json:"idType"`
	IDNumber    string `json:"idNumber"`
	Nationality string `json:"nationality"`

	CheckInDate  string `json:"checkInDate"`
	CheckOutDate string `json:"checkOutDate"`
	Nights       int    `json:"nights"`
	NumAdults    int    `json:"numAdults"`
	NumChildren  int    `json:"numChildren"`

	RoomType   string `json:"roomType"`
	RoomNumber string `json:"roomNumber,omitempty"`

	BaseRate        decimal.Decimal `json:"baseRate"`
	DiscountPercent decimal.Decimal `json:"discountPercent"`
	TaxRatePercent  decimal.Decimal `json:"taxRatePercent"`
	ExtraCharges    decimal.Decimal `json:"extraCharges"`
	TaxAmount       decimal.Decimal `json:"taxAmount"`
	TotalAmount     decimal.Decimal `json:"totalAmount"`
	DepositAmount   decimal.Decimal `json:"depositAmount"`
	PaidAmount      decimal.Decimal `json:"paidAmount"`

	Status        domain.ReservationStatus `json:"status"`
	PaymentStatus domain.PaymentStatus     `json:"paymentStatus"`

	SpecialRequests string    `json:"specialRequests,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	LastUpdatedAt   time.Time `json:"lastUpdatedAt"`
}

// ListReservationsResponse is one page of the reservation list plus the totals
// the pagination controls need to compute total pages.
type ListReservationsResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
	TotalCount   int                   `json:"totalCount"`
	TotalPages   int                   `json:"totalPages"`
	Page         int                   `json:"page"`
	PageSize     int                   `json:"pageSize"`
}

const dateLayout = "2006-01-02"

// ToReservationResponse converts a domain.Reservation to its response DTO.
func ToReservationResponse(r *domain.Reservation) ReservationResponse {
	return ReservationResponse{
		ReservationID:     r.ReservationID,
		HotelID:           r.HotelID,
		ReservationNumber: r.ReservationNumber,
		GuestName:         r.GuestName,
		GuestEmail:        r.GuestEmail,
		GuestPhone:        r.GuestPhone,
		IDType:            r.IDType,
		IDNumber:          r.IDNumber,
		Nationality:       r.Nationality,
		CheckInDate:       r.CheckInDate.Format(dateLayout),
		CheckOutDate:      r.CheckOutDate.Format(dateLayout),
		Nights:            r.Nights(),
		NumAdults:         r.NumAdults,
		NumChildren:       r.NumChildren,
		RoomType:          r.RoomType,
		RoomNumber:        r.RoomNumber,
		BaseRate:          r.BaseRate,
		DiscountPercent:   r.DiscountPercent,
		TaxRatePercent:    r.TaxRatePercent,
		ExtraCharges:      r.ExtraCharges,
		TaxAmount:         r.TaxAmount,
		TotalAmount:       r.TotalAmount,
		DepositAmount:     r.DepositAmount,
		PaidAmount:        r.PaidAmount,
		Status:            r.Status,
		PaymentStatus:     r.PaymentStatus,
		SpecialRequests:   r.SpecialRequests,
		CreatedAt:         r.CreatedAt,
		LastUpdatedAt:     r.LastUpdatedAt,
	}
}

// ToReservationResponses converts a slice of domain reservations.
func ToReservationResponses(rs []domain.Reservation) []ReservationResponse {
	res := make([]ReservationResponse, len(rs))
	for i := range rs {
		res[i] = ToReservationResponse(&rs[i])
	}
	return res
}
