package services

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"gorm.io/gorm"

	"pacificreef/builders"
	"pacificreef/commands"
	"pacificreef/dto"
	"pacificreef/errors"
	"pacificreef/models"
	"pacificreef/services/logger"
	"pacificreef/validator"
)

const reservationDateLayout = "2006-01-02"

// ReservationService owns the reservation lifecycle: creation with
// price computation and confirmation codes, and the confirm / check-in
// / check-out / cancel transitions with their room side effects.
type ReservationService struct {
	db       *gorm.DB
	logger   logger.Logger
	clock    Clock
	rng      *rand.Rand
	notifier *ReservationNotifier
}

type ReservationServiceOptions struct {
	DB       *gorm.DB
	Logger   logger.Logger
	Clock    Clock
	Rand     *rand.Rand
	Notifier *ReservationNotifier
}

func NewReservationService(opts ReservationServiceOptions) *ReservationService {
	if opts.Clock == nil {
		opts.Clock = SystemClock()
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if opts.Logger == nil {
		opts.Logger = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &ReservationService{
		db:       opts.DB,
		logger:   opts.Logger,
		clock:    opts.Clock,
		rng:      opts.Rand,
		notifier: opts.Notifier,
	}
}

// generateConfirmationCode derives a code from the wall clock plus a
// small random suffix. Uniqueness rests on the DB constraint; a
// collision is possible and acceptable at demo scale.
func (s *ReservationService) generateConfirmationCode() string {
	return fmt.Sprintf("PR%d%03d", s.clock.Now().UnixMilli(), s.rng.Intn(1000))
}

// Create validates the requested stay, computes the price from the
// room's nightly rate and persists a PENDING reservation.
func (s *ReservationService) Create(ctx context.Context, req dto.CreateReservationRequest) (*models.Reservation, error) {
	checkIn, err := time.Parse(reservationDateLayout, req.CheckInDate)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeInvalidFormat, "invalid check-in date, expected YYYY-MM-DD", err)
	}

	checkOut, err := time.Parse(reservationDateLayout, req.CheckOutDate)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeInvalidFormat, "invalid check-out date, expected YYYY-MM-DD", err)
	}

	if err := validator.ValidateReservationDates(checkIn, checkOut, s.clock.Now()); err != nil {
		return nil, err
	}

	var user models.User
	if err := s.db.WithContext(ctx).First(&user, req.UserID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewAppError(errors.ErrCodeNotFound, "user not found", err)
		}
		return nil, errors.NewAppError(errors.ErrCodeDBError, "failed to load user", err)
	}

	var room models.Room
	if err := s.db.WithContext(ctx).First(&room, req.RoomID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewAppError(errors.ErrCodeNotFound, "room not found", err)
		}
		return nil, errors.NewAppError(errors.ErrCodeDBError, "failed to load room", err)
	}

	guestCount := req.GuestCount
	if guestCount <= 0 {
		guestCount = 1
	}

	reservation := builders.NewReservationBuilder().
		WithUser(&user).
		WithRoom(&room).
		WithStay(checkIn, checkOut).
		WithGuestCount(guestCount).
		WithSpecialRequests(req.SpecialRequests).
		WithStatus(models.ReservationStatusPending).
		Build()

	if req.TotalAmount != nil {
		reservation.TotalAmount = *req.TotalAmount
	} else {
		amount, err := reservation.CalculateTotalAmount()
		if err != nil {
			return nil, err
		}
		reservation.TotalAmount = amount
	}

	if err := validator.ValidateTotalAmount(reservation.TotalAmount); err != nil {
		return nil, err
	}

	if reservation.ConfirmationCode == "" {
		reservation.ConfirmationCode = s.generateConfirmationCode()
	}

	// User and Room rows already exist; persist the reservation only.
	if err := commands.NewCreateReservationCommand(reservation, s.db.WithContext(ctx).Omit("User", "Room")).Execute(); err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "failed to create reservation", err)
	}

	s.logger.Info("reservation %s created for room %s", reservation.ConfirmationCode, room.Number)
	s.notifier.NotifyStatusChange(reservation)

	return reservation, nil
}

// GetByID loads a reservation with its user and room.
func (s *ReservationService) GetByID(ctx context.Context, id uint) (*models.Reservation, error) {
	var reservation models.Reservation
	err := s.db.WithContext(ctx).Preload("User").Preload("Room").First(&reservation, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewAppError(errors.ErrCodeNotFound, "reservation not found", err)
		}
		return nil, errors.NewAppError(errors.ErrCodeDBError, "failed to load reservation", err)
	}
	return &reservation, nil
}

// List returns a page of reservations with the total count.
func (s *ReservationService) List(ctx context.Context, page, limit int) ([]models.Reservation, int64, error) {
	var (
		reservations []models.Reservation
		total        int64
	)

	if err := s.db.WithContext(ctx).Model(&models.Reservation{}).Count(&total).Error; err != nil {
		return nil, 0, errors.NewAppError(errors.ErrCodeDBError, "failed to count reservations", err)
	}

	err := s.db.WithContext(ctx).
		Preload("User").Preload("Room").
		Order("created_at DESC").
		Offset(page * limit).Limit(limit).
		Find(&reservations).Error
	if err != nil {
		return nil, 0, errors.NewAppError(errors.ErrCodeDBError, "failed to list reservations", err)
	}

	return reservations, total, nil
}

// ListByUser returns a guest's reservation history.
func (s *ReservationService) ListByUser(ctx context.Context, userID uint) ([]models.Reservation, error) {
	var reservations []models.Reservation
	err := s.db.WithContext(ctx).
		Preload("Room").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&reservations).Error
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "failed to list reservations", err)
	}
	return reservations, nil
}

// Confirm transitions PENDING -> CONFIRMED.
func (s *ReservationService) Confirm(ctx context.Context, id uint) (*models.Reservation, error) {
	return s.transition(ctx, id, func(r *models.Reservation, now time.Time) error {
		return r.Confirm(now)
	})
}

// CheckIn transitions CONFIRMED -> CHECKED_IN on the arrival day and
// marks the room occupied.
func (s *ReservationService) CheckIn(ctx context.Context, id uint) (*models.Reservation, error) {
	return s.transition(ctx, id, func(r *models.Reservation, now time.Time) error {
		return r.CheckIn(now)
	})
}

// CheckOut transitions CHECKED_IN -> COMPLETED and releases the room.
func (s *ReservationService) CheckOut(ctx context.Context, id uint) (*models.Reservation, error) {
	return s.transition(ctx, id, func(r *models.Reservation, now time.Time) error {
		return r.CheckOut(now)
	})
}

// Cancel transitions PENDING/CONFIRMED -> CANCELLED with a reason.
func (s *ReservationService) Cancel(ctx context.Context, id uint, reason string) (*models.Reservation, error) {
	return s.transition(ctx, id, func(r *models.Reservation, now time.Time) error {
		return r.Cancel(reason, now)
	})
}

// transition loads the reservation with its room, applies the state
// change and persists reservation and room in one transaction. The
// room write is a plain field update; concurrent transitions on the
// same room are last-writer-wins.
func (s *ReservationService) transition(ctx context.Context, id uint, apply func(*models.Reservation, time.Time) error) (*models.Reservation, error) {
	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "failed to begin transaction", tx.Error)
	}

	var reservation models.Reservation
	if err := tx.Preload("User").Preload("Room").First(&reservation, id).Error; err != nil {
		tx.Rollback()
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewAppError(errors.ErrCodeNotFound, "reservation not found", err)
		}
		return nil, errors.NewAppError(errors.ErrCodeDBError, "failed to load reservation", err)
	}

	if err := apply(&reservation, s.clock.Now()); err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := commands.NewUpdateReservationCommand(&reservation, tx.Omit("User", "Room")).Execute(); err != nil {
		tx.Rollback()
		return nil, errors.NewAppError(errors.ErrCodeDBError, "failed to update reservation", err)
	}

	if reservation.Room != nil {
		if err := tx.Save(reservation.Room).Error; err != nil {
			tx.Rollback()
			return nil, errors.NewAppError(errors.ErrCodeDBError, "failed to update room", err)
		}
	}

	if err := tx.Commit().Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "failed to commit transaction", err)
	}

	s.logger.Info("reservation %s moved to %s", reservation.ConfirmationCode, reservation.Status)
	s.notifier.NotifyStatusChange(&reservation)

	return &reservation, nil
}
