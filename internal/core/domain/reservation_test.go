package domain_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/stayfront/hotel_management_app/internal/core/domain"
)

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	assert.NoError(t, err)
	return d
}

func TestReservationStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name string
		from domain.ReservationStatus
		to   domain.ReservationStatus
		want bool
	}{
		{"confirmed to checked_in", domain.StatusConfirmed, domain.StatusCheckedIn, true},
		{"confirmed to cancelled", domain.StatusConfirmed, domain.StatusCancelled, true},
		{"confirmed to checked_out skips check-in", domain.StatusConfirmed, domain.StatusCheckedOut, false},
		{"checked_in to checked_out", domain.StatusCheckedIn, domain.StatusCheckedOut, true},
		{"checked_in to cancelled", domain.StatusCheckedIn, domain.StatusCancelled, true},
		{"checked_in back to confirmed", domain.StatusCheckedIn, domain.StatusConfirmed, false},
		{"checked_out is terminal", domain.StatusCheckedOut, domain.StatusCheckedIn, false},
		{"cancelled is terminal", domain.StatusCancelled, domain.StatusConfirmed, false},
		{"no_show is terminal", domain.StatusNoShow, domain.StatusConfirmed, false},
		{"nothing transitions into no_show directly", domain.StatusConfirmed, domain.StatusNoShow, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestReservationStatus_IsTerminal(t *testing.T) {
	assert.False(t, domain.StatusConfirmed.IsTerminal())
	assert.False(t, domain.StatusCheckedIn.IsTerminal())
	assert.True(t, domain.StatusCheckedOut.IsTerminal())
	assert.True(t, domain.StatusCancelled.IsTerminal())
	assert.True(t, domain.StatusNoShow.IsTerminal())
}

func TestFolioBalance_RefundsIncreaseBalance(t *testing.T) {
	lines := []domain.FolioLine{
		{Amount: dec(t, "15000")},
		{Amount: dec(t, "2700")},
	}
	payments := []domain.Payment{
		{Amount: dec(t, "10000"), PaymentType: domain.PaymentTypePayment},
		{Amount: dec(t, "-2000"), PaymentType: domain.PaymentTypeRefund},
	}

	balance := domain.FolioBalance(lines, payments)

	// 17700 charged, 10000 paid, 2000 refunded back out.
	assert.True(t, balance.Equal(dec(t, "9700")), "balance: %s", balance)
}

func TestReservation_Nights(t *testing.T) {
	r := domain.Reservation{
		CheckInDate:  time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		CheckOutDate: time.Date(2025, 3, 13, 0, 0, 0, 0, time.UTC),
	}
	assert.Equal(t, 3, r.Nights())
}
