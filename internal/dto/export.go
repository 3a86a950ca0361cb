package dto

// ExportFormat names a supported export encoding.
type ExportFormat string

const (
	ExportFormatCSV  ExportFormat = "csv"
	ExportFormatJSON ExportFormat = "json"
)

// ExportParams defines the query parameters of the reservation export
// endpoint. When ids are given only those reservations are exported; either
// way the list filters apply before encoding. Pagination does not.
type ExportParams struct {
	Format         string   `form:"format,default=csv" binding:"omitempty,oneof=csv json excel pdf"`
	ReservationIDs []string `form:"ids"`
	Search         string   `form:"search"`
	Status         string   `form:"status" binding:"omitempty,oneof=confirmed checked_in checked_out cancelled no_show"`
	PaymentStatus  string   `form:"paymentStatus" binding:"omitempty,oneof=pending partial paid refunded"`
	RoomType       string   `form:"roomType"`
	DateBucket     string   `form:"dateBucket" binding:"omitempty,oneof=today_checkin today_checkout this_week this_month next_month"`
}

// ExportResult is an encoded export ready to be written to the response.
type ExportResult struct {
	ContentType string
	Filename    string
	Data        []byte
}
