package commands

import (
	"gorm.io/gorm"

	"pacificreef/models"
)

// ReservationCommand is a persistence operation on a reservation.
// Reservations are never deleted in normal flow, so only create and
// update commands exist.
type ReservationCommand interface {
	Execute() error
}

// CreateReservationCommand persists a new reservation.
type CreateReservationCommand struct {
	reservation *models.Reservation
	db          *gorm.DB
}

func NewCreateReservationCommand(reservation *models.Reservation, db *gorm.DB) *CreateReservationCommand {
	return &CreateReservationCommand{
		reservation: reservation,
		db:          db,
	}
}

func (c *CreateReservationCommand) Execute() error {
	return c.db.Create(c.reservation).Error
}

// UpdateReservationCommand saves changes to an existing reservation.
type UpdateReservationCommand struct {
	reservation *models.Reservation
	db          *gorm.DB
}

func NewUpdateReservationCommand(reservation *models.Reservation, db *gorm.DB) *UpdateReservationCommand {
	return &UpdateReservationCommand{
		reservation: reservation,
		db:          db,
	}
}

func (c *UpdateReservationCommand) Execute() error {
	return c.db.Save(c.reservation).Error
}
