// Package listing is the shared filter/sort/paginate pipeline applied to every
// reservation list view. It is pure and role-agnostic: the admin, owner and
// manager surfaces all consume it identically.
package listing

import (
	"sort"
	"strings"
	"time"

	"github.com/stayfront/hotel_management_app/internal/core/domain"
)

// DateBucket restricts reservations to a named stay-date window.
type DateBucket string

const (
	BucketAll           DateBucket = ""
	BucketTodayCheckin  DateBucket = "today_checkin"
	BucketTodayCheckout DateBucket = "today_checkout"
	BucketThisWeek      DateBucket = "this_week"
	BucketThisMonth     DateBucket = "this_month"
	BucketNextMonth     DateBucket = "next_month"
)

// IsValid reports whether b is a known bucket.
func (b DateBucket) IsValid() bool {
	switch b {
	case BucketAll, BucketTodayCheckin, BucketTodayCheckout, BucketThisWeek, BucketThisMonth, BucketNextMonth:
		return true
	}
	return false
}

// SortKey names a sortable reservation column.
type SortKey string

const (
	SortByCreatedAt    SortKey = "created_at"
	SortByCheckInDate  SortKey = "check_in_date"
	SortByCheckOutDate SortKey = "check_out_date"
	SortByGuestName    SortKey = "guest_name"
	SortByTotalAmount  SortKey = "total_amount"
	SortByStatus       SortKey = "status"
)

// IsValid reports whether k is a known sort key.
func (k SortKey) IsValid() bool {
	switch k {
	case SortByCreatedAt, SortByCheckInDate, SortByCheckOutDate, SortByGuestName, SortByTotalAmount, SortByStatus:
		return true
	}
	return false
}

// Filter is a conjunction of independent predicates. Zero values mean "match all".
type Filter struct {
	Search        string // case-insensitive substring over guest name/email/phone, reservation number, room number
	Status        domain.ReservationStatus
	PaymentStatus domain.PaymentStatus
	RoomType      string // substring match
	DateBucket    DateBucket
	// Now anchors the date-bucket windows; injected so the pipeline stays deterministic.
	Now time.Time
}

// Sort is a single-key comparator specification.
type Sort struct {
	Key        SortKey
	Descending bool
}

// Page is a 1-based page request.
type Page struct {
	Number int
	Size   int
}

// Result is one page of the filtered, sorted reservation list plus the totals
// the pagination controls need.
type Result struct {
	Items      []domain.Reservation
	TotalCount int
	TotalPages int
	Page       int
	PageSize   int
}

// Apply runs filter, then sort, then pagination. It never mutates its input and
// is idempotent: re-applying with unchanged inputs yields the same page.
func Apply(items []domain.Reservation, f Filter, s Sort, p Page) Result {
	filtered := make([]domain.Reservation, 0, len(items))
	for _, r := range items {
		if f.Matches(&r) {
			filtered = append(filtered, r)
		}
	}

	sortReservations(filtered, s)

	if p.Size <= 0 {
		p.Size = 10
	}
	if p.Number <= 0 {
		p.Number = 1
	}

	total := len(filtered)
	totalPages := (total + p.Size - 1) / p.Size

	start := (p.Number - 1) * p.Size
	if start > total {
		start = total // page beyond the last is an empty page, not an error
	}
	end := start + p.Size
	if end > total {
		end = total
	}

	return Result{
		Items:      filtered[start:end],
		TotalCount: total,
		TotalPages: totalPages,
		Page:       p.Number,
		PageSize:   p.Size,
	}
}

// Matches evaluates the predicate conjunction against one reservation.
func (f Filter) Matches(r *domain.Reservation) bool {
	if f.Status != "" && r.Status != f.Status {
		return false
	}
	if f.PaymentStatus != "" && r.PaymentStatus != f.PaymentStatus {
		return false
	}
	if f.RoomType != "" && !strings.Contains(strings.ToLower(r.RoomType), strings.ToLower(f.RoomType)) {
		return false
	}
	if f.Search != "" && !matchesSearch(r, f.Search) {
		return false
	}
	if f.DateBucket != BucketAll && !f.inBucket(r) {
		return false
	}
	return true
}

func matchesSearch(r *domain.Reservation, term string) bool {
	term = strings.ToLower(term)
	for _, field := range []string{r.GuestName, r.GuestEmail, r.GuestPhone, r.ReservationNumber, r.RoomNumber} {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}

func (f Filter) inBucket(r *domain.Reservation) bool {
	now := f.Now
	if now.IsZero() {
		now = time.Now()
	}
	today := truncateDay(now)

	switch f.DateBucket {
	case BucketTodayCheckin:
		return truncateDay(r.CheckInDate).Equal(today)
	case BucketTodayCheckout:
		return truncateDay(r.CheckOutDate).Equal(today)
	case BucketThisWeek:
		// Week runs Monday..Sunday.
		offset := (int(now.Weekday()) + 6) % 7
		weekStart := today.AddDate(0, 0, -offset)
		weekEnd := weekStart.AddDate(0, 0, 7)
		ci := truncateDay(r.CheckInDate)
		return !ci.Before(weekStart) && ci.Before(weekEnd)
	case BucketThisMonth:
		monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		monthEnd := monthStart.AddDate(0, 1, 0)
		ci := truncateDay(r.CheckInDate)
		return !ci.Before(monthStart) && ci.Before(monthEnd)
	case BucketNextMonth:
		nextStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, 1, 0)
		nextEnd := nextStart.AddDate(0, 1, 0)
		ci := truncateDay(r.CheckInDate)
		return !ci.Before(nextStart) && ci.Before(nextEnd)
	}
	return true
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// sortReservations orders in place with a stable sort so equal keys keep their
// pre-sort relative order across direction toggles.
func sortReservations(items []domain.Reservation, s Sort) {
	if s.Key == "" {
		return
	}
	less := lessFunc(s.Key)
	if less == nil {
		return
	}
	sort.SliceStable(items, func(i, j int) bool {
		if s.Descending {
			return less(&items[j], &items[i])
		}
		return less(&items[i], &items[j])
	})
}

func lessFunc(key SortKey) func(a, b *domain.Reservation) bool {
	switch key {
	case SortByCreatedAt:
		return func(a, b *domain.Reservation) bool { return a.CreatedAt.Before(b.CreatedAt) }
	case SortByCheckInDate:
		return func(a, b *domain.Reservation) bool { return a.CheckInDate.Before(b.CheckInDate) }
	case SortByCheckOutDate:
		return func(a, b *domain.Reservation) bool { return a.CheckOutDate.Before(b.CheckOutDate) }
	case SortByGuestName:
		return func(a, b *domain.Reservation) bool {
			return strings.ToLower(a.GuestName) < strings.ToLower(b.GuestName)
		}
	case SortByTotalAmount:
		return func(a, b *domain.Reservation) bool { return a.TotalAmount.LessThan(b.TotalAmount) }
	case SortByStatus:
		return func(a, b *domain.Reservation) bool { return a.Status < b.Status }
	}
	return nil
}
