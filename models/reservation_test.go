package models

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pacificreef/errors"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func testReservation(status ReservationStatus) *Reservation {
	return &Reservation{
		ID:           1,
		Status:       status,
		CheckInDate:  date(2025, time.July, 10),
		CheckOutDate: date(2025, time.July, 13),
		Room: &Room{
			Number: "101",
			Type:   RoomTypeStandard,
			Price:  decimal.NewFromInt(100),
			Status: RoomStatusAvailable,
		},
	}
}

func TestNights(t *testing.T) {
	r := testReservation(ReservationStatusPending)
	assert.Equal(t, int64(3), r.Nights())

	r.CheckOutDate = r.CheckInDate
	assert.Equal(t, int64(0), r.Nights())

	r.CheckOutDate = time.Time{}
	assert.Equal(t, int64(0), r.Nights())
}

func TestCalculateTotalAmount(t *testing.T) {
	r := testReservation(ReservationStatusPending)

	amount, err := r.CalculateTotalAmount()
	require.NoError(t, err)
	assert.True(t, amount.Equal(decimal.NewFromInt(300)), "3 nights at 100 should be 300, got %s", amount)
}

func TestCalculateTotalAmountIncomplete(t *testing.T) {
	// Without a room or dates the amount is speculatively zero, not an
	// error.
	r := &Reservation{}
	amount, err := r.CalculateTotalAmount()
	require.NoError(t, err)
	assert.True(t, amount.IsZero())

	r = testReservation(ReservationStatusPending)
	r.Room = nil
	amount, err = r.CalculateTotalAmount()
	require.NoError(t, err)
	assert.True(t, amount.IsZero())
}

func TestCalculateTotalAmountInvalidRange(t *testing.T) {
	r := testReservation(ReservationStatusPending)
	r.CheckOutDate = r.CheckInDate

	_, err := r.CalculateTotalAmount()
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeValidation))
}

func TestConfirm(t *testing.T) {
	r := testReservation(ReservationStatusPending)
	now := date(2025, time.July, 1)

	require.NoError(t, r.Confirm(now))
	assert.Equal(t, ReservationStatusConfirmed, r.Status)

	err := r.Confirm(now)
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidState))
}

func TestCheckInOnArrivalDay(t *testing.T) {
	r := testReservation(ReservationStatusConfirmed)
	now := date(2025, time.July, 10).Add(15 * time.Hour)

	require.NoError(t, r.CheckIn(now))
	assert.Equal(t, ReservationStatusCheckedIn, r.Status)
	require.NotNil(t, r.CheckedInAt)
	assert.Equal(t, now, *r.CheckedInAt)
	assert.Equal(t, RoomStatusOccupied, r.Room.Status)
}

func TestCheckInWrongDay(t *testing.T) {
	r := testReservation(ReservationStatusConfirmed)
	now := date(2025, time.July, 9)

	err := r.CheckIn(now)
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidState))
	assert.Equal(t, ReservationStatusConfirmed, r.Status)
	assert.Nil(t, r.CheckedInAt)
}

func TestCheckInPendingLeavesRoomUntouched(t *testing.T) {
	r := testReservation(ReservationStatusPending)
	now := date(2025, time.July, 10)

	err := r.CheckIn(now)
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidState))
	assert.Equal(t, RoomStatusAvailable, r.Room.Status)
}

func TestCheckOutReleasesRoom(t *testing.T) {
	r := testReservation(ReservationStatusConfirmed)
	checkInAt := date(2025, time.July, 10).Add(14 * time.Hour)
	checkOutAt := date(2025, time.July, 13).Add(11 * time.Hour)

	require.NoError(t, r.CheckIn(checkInAt))
	require.NoError(t, r.CheckOut(checkOutAt))

	assert.Equal(t, ReservationStatusCompleted, r.Status)
	assert.Equal(t, RoomStatusAvailable, r.Room.Status)
	require.NotNil(t, r.CheckedInAt)
	require.NotNil(t, r.CheckedOutAt)
	assert.True(t, r.CheckedInAt.Before(*r.CheckedOutAt))
}

func TestCancelWithReason(t *testing.T) {
	r := testReservation(ReservationStatusConfirmed)
	now := date(2025, time.July, 5)

	require.NoError(t, r.Cancel("change of plans", now))
	assert.Equal(t, ReservationStatusCancelled, r.Status)
	assert.Equal(t, "change of plans", r.CancellationReason)
	require.NotNil(t, r.CancelledAt)
	assert.Equal(t, now, *r.CancelledAt)

	// Cancelled is terminal.
	err := r.Confirm(now)
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidState))
}

func TestCancelCheckedInForbidden(t *testing.T) {
	r := testReservation(ReservationStatusCheckedIn)
	err := r.Cancel("too late", date(2025, time.July, 11))
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidState))
	assert.Equal(t, ReservationStatusCheckedIn, r.Status)
}

func TestTransitionTable(t *testing.T) {
	// Arrival day so that confirmed -> checked-in is permitted.
	now := date(2025, time.July, 10)

	cases := []struct {
		status   ReservationStatus
		confirm  bool
		checkIn  bool
		checkOut bool
		cancel   bool
	}{
		{ReservationStatusPending, true, false, false, true},
		{ReservationStatusConfirmed, false, true, false, true},
		{ReservationStatusCheckedIn, false, false, true, false},
		{ReservationStatusCompleted, false, false, false, false},
		{ReservationStatusCancelled, false, false, false, false},
		{ReservationStatusNoShow, false, false, false, false},
	}

	for _, tc := range cases {
		t.Run(string(tc.status), func(t *testing.T) {
			assert.Equal(t, tc.confirm, testReservation(tc.status).Confirm(now) == nil, "confirm")
			assert.Equal(t, tc.checkIn, testReservation(tc.status).CheckIn(now) == nil, "check-in")
			assert.Equal(t, tc.checkOut, testReservation(tc.status).CheckOut(now) == nil, "check-out")
			assert.Equal(t, tc.cancel, testReservation(tc.status).Cancel("reason", now) == nil, "cancel")
		})
	}
}

func TestStatusIsTerminal(t *testing.T) {
	assert.False(t, ReservationStatusPending.IsTerminal())
	assert.False(t, ReservationStatusConfirmed.IsTerminal())
	assert.False(t, ReservationStatusCheckedIn.IsTerminal())
	assert.True(t, ReservationStatusCompleted.IsTerminal())
	assert.True(t, ReservationStatusCancelled.IsTerminal())
	assert.True(t, ReservationStatusNoShow.IsTerminal())
}

func TestGuestAndRoomFallbacks(t *testing.T) {
	r := &Reservation{}
	assert.Equal(t, "Unknown Guest", r.GuestName())
	assert.Equal(t, "Unknown Room", r.RoomNumber())

	r.User = &User{FirstName: "Ada", LastName: "Lovelace"}
	r.Room = &Room{Number: "204"}
	assert.Equal(t, "Ada Lovelace", r.GuestName())
	assert.Equal(t, "204", r.RoomNumber())
}
