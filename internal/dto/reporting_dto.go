package dto

import (
	"github.com/shopspring/decimal"

	"github.com/stayfront/hotel_management_app/internal/core/domain"
)

// ReportParams defines the date range of a report query. Dates are
// date-only strings ("2006-01-02"); both bounds are inclusive.
type ReportParams struct {
	From string `form:"from" binding:"required"`
	To   string `form:"to" binding:"required"`
}

// DailyRevenueResponse is the daily revenue report for a date range.
type DailyRevenueResponse struct {
	HotelID string                   `json:"hotelID"`
	From    string                   `json:"from"`
	To      string                   `json:"to"`
	Rows    []domain.DailyRevenueRow `json:"rows"`
	Total   decimal.Decimal          `json:"total"`
}

// OccupancyResponse is the occupancy report with the standard hotel KPIs.
type OccupancyResponse struct {
	HotelID            string          `json:"hotelID"`
	From               string          `json:"from"`
	To                 string          `json:"to"`
	RoomCount          int64           `json:"roomCount"`
	RoomNightsTotal    int64           `json:"roomNightsTotal"`
	RoomNightsOccupied int64           `json:"roomNightsOccupied"`
	OccupancyPercent   decimal.Decimal `json:"occupancyPercent"`
	ADR                decimal.Decimal `json:"adr"`
	RevPAR             decimal.Decimal `json:"revpar"`
}

// StatusCountsResponse is the dashboard breakdown of reservations by status.
type StatusCountsResponse struct {
	HotelID string                  `json:"hotelID"`
	Counts  []domain.StatusCountRow `json:"counts"`
}
