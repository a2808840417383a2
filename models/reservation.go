package models

import (
	"time"

	"github.com/shopspring/decimal"

	"pacificreef/errors"
)

// ReservationStatus is the lifecycle status of a reservation.
type ReservationStatus string

const (
	ReservationStatusPending   ReservationStatus = "PENDING"
	ReservationStatusConfirmed ReservationStatus = "CONFIRMED"
	ReservationStatusCheckedIn ReservationStatus = "CHECKED_IN"
	ReservationStatusCompleted ReservationStatus = "COMPLETED"
	ReservationStatusCancelled ReservationStatus = "CANCELLED"
	// ReservationStatusNoShow is terminal. No in-core transition sets
	// it; the business policy for automatic no-shows is undefined.
	ReservationStatusNoShow ReservationStatus = "NO_SHOW"
)

var reservationStatusDisplayNames = map[ReservationStatus]string{
	ReservationStatusPending:   "Pending Confirmation",
	ReservationStatusConfirmed: "Confirmed",
	ReservationStatusCheckedIn: "Checked In",
	ReservationStatusCompleted: "Completed",
	ReservationStatusCancelled: "Cancelled",
	ReservationStatusNoShow:    "No Show",
}

func (s ReservationStatus) IsValid() bool {
	_, ok := reservationStatusDisplayNames[s]
	return ok
}

func (s ReservationStatus) DisplayName() string {
	return reservationStatusDisplayNames[s]
}

// IsTerminal reports whether no further transition is defined from s.
func (s ReservationStatus) IsTerminal() bool {
	return s == ReservationStatusCompleted || s == ReservationStatusCancelled || s == ReservationStatusNoShow
}

type Reservation struct {
	ID                 uint              `json:"id" gorm:"primaryKey"`
	UserID             uint              `json:"userId" gorm:"not null"`
	User               *User             `json:"user,omitempty" gorm:"foreignKey:UserID"`
	RoomID             uint              `json:"roomId" gorm:"not null"`
	Room               *Room             `json:"room,omitempty" gorm:"foreignKey:RoomID"`
	CheckInDate        time.Time         `json:"checkInDate" gorm:"type:date;not null"`
	CheckOutDate       time.Time         `json:"checkOutDate" gorm:"type:date;not null"`
	GuestCount         int               `json:"guestCount" gorm:"not null;default:1"`
	TotalAmount        decimal.Decimal   `json:"totalAmount" gorm:"type:numeric(10,2);not null"`
	Status             ReservationStatus `json:"status" gorm:"type:varchar(20);not null;default:'PENDING'"`
	SpecialRequests    string            `json:"specialRequests,omitempty" gorm:"type:text"`
	ConfirmationCode   string            `json:"confirmationCode" gorm:"uniqueIndex"`
	CheckedInAt        *time.Time        `json:"checkedInAt,omitempty"`
	CheckedOutAt       *time.Time        `json:"checkedOutAt,omitempty"`
	CreatedAt          time.Time         `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt          time.Time         `gorm:"autoUpdateTime" json:"updatedAt"`
	CancelledAt        *time.Time        `json:"cancelledAt,omitempty"`
	CancellationReason string            `json:"cancellationReason,omitempty"`
}

// Nights is the whole-day difference between check-out and check-in.
func (r *Reservation) Nights() int64 {
	if r.CheckInDate.IsZero() || r.CheckOutDate.IsZero() {
		return 0
	}
	return int64(r.CheckOutDate.Sub(r.CheckInDate).Hours() / 24)
}

// CalculateTotalAmount computes nights x nightly rate. While room or
// dates are still unset it returns zero without error (speculative
// computation before the reservation is complete); once both are set a
// non-positive night count is a validation error.
func (r *Reservation) CalculateTotalAmount() (decimal.Decimal, error) {
	if r.Room == nil || r.CheckInDate.IsZero() || r.CheckOutDate.IsZero() {
		return decimal.Zero, nil
	}

	nights := r.Nights()
	if nights <= 0 {
		return decimal.Zero, errors.NewAppError(errors.ErrCodeValidation,
			"check-out date must be after check-in date", nil)
	}

	return r.Room.Price.Mul(decimal.NewFromInt(nights)), nil
}

// IsActive reports whether the reservation currently holds the room.
func (r *Reservation) IsActive() bool {
	return r.Status == ReservationStatusConfirmed || r.Status == ReservationStatusCheckedIn
}

// CanCheckIn reports whether check-in is allowed at the given time:
// confirmed, arrival day, and not already checked in.
func (r *Reservation) CanCheckIn(now time.Time) bool {
	return r.Status == ReservationStatusConfirmed &&
		sameDay(now, r.CheckInDate) &&
		r.CheckedInAt == nil
}

// CanCheckOut reports whether check-out is allowed.
func (r *Reservation) CanCheckOut() bool {
	return r.Status == ReservationStatusCheckedIn && r.CheckedOutAt == nil
}

// CanCancel reports whether cancellation is allowed.
func (r *Reservation) CanCancel() bool {
	return r.Status == ReservationStatusPending || r.Status == ReservationStatusConfirmed
}

// Confirm moves a pending reservation to CONFIRMED.
func (r *Reservation) Confirm(now time.Time) error {
	return GetReservationState(r.Status).Confirm(r, now)
}

// CheckIn moves a confirmed reservation to CHECKED_IN and marks the
// linked room occupied.
func (r *Reservation) CheckIn(now time.Time) error {
	return GetReservationState(r.Status).CheckIn(r, now)
}

// CheckOut moves a checked-in reservation to COMPLETED and releases the
// linked room.
func (r *Reservation) CheckOut(now time.Time) error {
	return GetReservationState(r.Status).CheckOut(r, now)
}

// Cancel moves a pending or confirmed reservation to CANCELLED.
func (r *Reservation) Cancel(reason string, now time.Time) error {
	return GetReservationState(r.Status).Cancel(r, reason, now)
}

// GuestName returns the guest's full name when the user is loaded.
func (r *Reservation) GuestName() string {
	if r.User != nil {
		return r.User.FullName()
	}
	return "Unknown Guest"
}

// RoomNumber returns the room number when the room is loaded.
func (r *Reservation) RoomNumber() string {
	if r.Room != nil {
		return r.Room.Number
	}
	return "Unknown Room"
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
