package builders

import (
	"time"

	"pacificreef/models"
)

// ReservationBuilder assembles a reservation step by step.
type ReservationBuilder struct {
	reservation *models.Reservation
}

// NewReservationBuilder creates a builder for a reservation with a
// single guest.
func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		reservation: &models.Reservation{
			GuestCount: 1,
			Status:     models.ReservationStatusPending,
		},
	}
}

// WithUser sets the guest.
func (b *ReservationBuilder) WithUser(user *models.User) *ReservationBuilder {
	b.reservation.User = user
	b.reservation.UserID = user.ID
	return b
}

// WithRoom sets the room.
func (b *ReservationBuilder) WithRoom(room *models.Room) *ReservationBuilder {
	b.reservation.Room = room
	b.reservation.RoomID = room.ID
	return b
}

// WithStay sets the check-in and check-out dates.
func (b *ReservationBuilder) WithStay(checkIn, checkOut time.Time) *ReservationBuilder {
	b.reservation.CheckInDate = checkIn
	b.reservation.CheckOutDate = checkOut
	return b
}

// WithGuestCount sets the number of guests.
func (b *ReservationBuilder) WithGuestCount(count int) *ReservationBuilder {
	b.reservation.GuestCount = count
	return b
}

// WithSpecialRequests sets the free-text requests.
func (b *ReservationBuilder) WithSpecialRequests(requests string) *ReservationBuilder {
	b.reservation.SpecialRequests = requests
	return b
}

// WithStatus sets the lifecycle status.
func (b *ReservationBuilder) WithStatus(status models.ReservationStatus) *ReservationBuilder {
	b.reservation.Status = status
	return b
}

// Build returns the assembled reservation.
func (b *ReservationBuilder) Build() *models.Reservation {
	return b.reservation
}
