package validator

import (
	"regexp"
	"time"

	"github.com/shopspring/decimal"

	"pacificreef/errors"
	"pacificreef/models"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// ValidateRoom checks the creation invariants: non-blank number within
// the length limit, known type, positive price.
func ValidateRoom(room *models.Room) error {
	if room.Number == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "room number is required", nil)
	}

	if len(room.Number) > models.MaxRoomNumberLength {
		return errors.NewAppError(errors.ErrCodeValidation, "room number must not exceed 10 characters", nil)
	}

	if !room.Type.IsValid() {
		return errors.NewAppError(errors.ErrCodeValidation, "invalid room type", nil)
	}

	if !room.Price.IsPositive() {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "price must be greater than 0", nil)
	}

	return nil
}

// ValidateReservationDates checks the date invariants at creation time:
// check-in today or later, check-out strictly after check-in.
func ValidateReservationDates(checkIn, checkOut time.Time, today time.Time) error {
	if checkIn.IsZero() {
		return errors.NewAppError(errors.ErrCodeRequiredField, "check-in date is required", nil)
	}

	if checkOut.IsZero() {
		return errors.NewAppError(errors.ErrCodeRequiredField, "check-out date is required", nil)
	}

	startOfToday := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, checkIn.Location())
	if checkIn.Before(startOfToday) {
		return errors.NewAppError(errors.ErrCodeValidation, "check-in date must be today or in the future", nil)
	}

	if !checkOut.After(checkIn) {
		return errors.NewAppError(errors.ErrCodeValidation, "check-out date must be after check-in date", nil)
	}

	return nil
}

// ValidateTotalAmount checks that a reservation amount is positive.
func ValidateTotalAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "total amount must be greater than 0", nil)
	}
	return nil
}

// ValidateUser checks registration input.
func ValidateUser(user *models.User) error {
	if user.Username == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "username is required", nil)
	}

	if user.Email == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "email is required", nil)
	}

	if !emailRegex.MatchString(user.Email) {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "invalid email", nil)
	}

	if user.Role < 0 || user.Role > 1 {
		return errors.NewAppError(errors.ErrCodeInvalidRole, "invalid role", nil)
	}

	return nil
}
