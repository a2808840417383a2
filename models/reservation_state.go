package models

import (
	"time"

	"pacificreef/errors"
)

// ReservationState defines the operations available on a reservation in
// a given lifecycle status. States that forbid an operation return an
// INVALID_STATE error and leave the reservation untouched.
type ReservationState interface {
	Confirm(r *Reservation, now time.Time) error
	CheckIn(r *Reservation, now time.Time) error
	CheckOut(r *Reservation, now time.Time) error
	Cancel(r *Reservation, reason string, now time.Time) error
}

func invalidState(message string) error {
	return errors.NewAppError(errors.ErrCodeInvalidState, message, nil)
}

func cancelReservation(r *Reservation, reason string, now time.Time) {
	r.Status = ReservationStatusCancelled
	cancelledAt := now
	r.CancelledAt = &cancelledAt
	r.CancellationReason = reason
	r.UpdatedAt = now
}

// PendingState: initial status, waiting for confirmation.
type PendingState struct{}

func (s *PendingState) Confirm(r *Reservation, now time.Time) error {
	r.Status = ReservationStatusConfirmed
	r.UpdatedAt = now
	return nil
}

func (s *PendingState) CheckIn(r *Reservation, now time.Time) error {
	return invalidState("only confirmed reservations can be checked in")
}

func (s *PendingState) CheckOut(r *Reservation, now time.Time) error {
	return invalidState("reservation is not checked in")
}

func (s *PendingState) Cancel(r *Reservation, reason string, now time.Time) error {
	cancelReservation(r, reason, now)
	return nil
}

// ConfirmedState: confirmed, waiting for arrival.
type ConfirmedState struct{}

func (s *ConfirmedState) Confirm(r *Reservation, now time.Time) error {
	return invalidState("reservation already confirmed")
}

func (s *ConfirmedState) CheckIn(r *Reservation, now time.Time) error {
	if !r.CanCheckIn(now) {
		return invalidState("reservation cannot be checked in")
	}
	r.Status = ReservationStatusCheckedIn
	checkedInAt := now
	r.CheckedInAt = &checkedInAt
	r.UpdatedAt = now
	if r.Room != nil {
		r.Room.MarkAsOccupied()
	}
	return nil
}

func (s *ConfirmedState) CheckOut(r *Reservation, now time.Time) error {
	return invalidState("reservation is not checked in")
}

func (s *ConfirmedState) Cancel(r *Reservation, reason string, now time.Time) error {
	cancelReservation(r, reason, now)
	return nil
}

// CheckedInState: guest is in the room.
type CheckedInState struct{}

func (s *CheckedInState) Confirm(r *Reservation, now time.Time) error {
	return invalidState("reservation already checked in")
}

func (s *CheckedInState) CheckIn(r *Reservation, now time.Time) error {
	return invalidState("reservation already checked in")
}

func (s *CheckedInState) CheckOut(r *Reservation, now time.Time) error {
	if !r.CanCheckOut() {
		return invalidState("reservation cannot be checked out")
	}
	r.Status = ReservationStatusCompleted
	checkedOutAt := now
	r.CheckedOutAt = &checkedOutAt
	r.UpdatedAt = now
	if r.Room != nil {
		r.Room.MarkAsAvailable()
	}
	return nil
}

func (s *CheckedInState) Cancel(r *Reservation, reason string, now time.Time) error {
	return invalidState("cannot cancel a checked-in reservation")
}

// CompletedState: terminal.
type CompletedState struct{}

func (s *CompletedState) Confirm(r *Reservation, now time.Time) error {
	return invalidState("reservation already completed")
}

func (s *CompletedState) CheckIn(r *Reservation, now time.Time) error {
	return invalidState("reservation already completed")
}

func (s *CompletedState) CheckOut(r *Reservation, now time.Time) error {
	return invalidState("reservation already completed")
}

func (s *CompletedState) Cancel(r *Reservation, reason string, now time.Time) error {
	return invalidState("cannot cancel a completed reservation")
}

// CancelledState: terminal.
type CancelledState struct{}

func (s *CancelledState) Confirm(r *Reservation, now time.Time) error {
	return invalidState("cannot confirm a cancelled reservation")
}

func (s *CancelledState) CheckIn(r *Reservation, now time.Time) error {
	return invalidState("cannot check in a cancelled reservation")
}

func (s *CancelledState) CheckOut(r *Reservation, now time.Time) error {
	return invalidState("cannot check out a cancelled reservation")
}

func (s *CancelledState) Cancel(r *Reservation, reason string, now time.Time) error {
	return invalidState("reservation already cancelled")
}

// NoShowState: terminal.
type NoShowState struct{}

func (s *NoShowState) Confirm(r *Reservation, now time.Time) error {
	return invalidState("cannot confirm a no-show reservation")
}

func (s *NoShowState) CheckIn(r *Reservation, now time.Time) error {
	return invalidState("cannot check in a no-show reservation")
}

func (s *NoShowState) CheckOut(r *Reservation, now time.Time) error {
	return invalidState("cannot check out a no-show reservation")
}

func (s *NoShowState) Cancel(r *Reservation, reason string, now time.Time) error {
	return invalidState("cannot cancel a no-show reservation")
}

// GetReservationState returns the state object for a status.
func GetReservationState(status ReservationStatus) ReservationState {
	switch status {
	case ReservationStatusPending:
		return &PendingState{}
	case ReservationStatusConfirmed:
		return &ConfirmedState{}
	case ReservationStatusCheckedIn:
		return &CheckedInState{}
	case ReservationStatusCompleted:
		return &CompletedState{}
	case ReservationStatusCancelled:
		return &CancelledState{}
	case ReservationStatusNoShow:
		return &NoShowState{}
	default:
		return &PendingState{}
	}
}
