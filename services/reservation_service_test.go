package services

import (
	"context"
	"fmt"
	"math/rand"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pacificreef/dto"
	"pacificreef/errors"
)

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

func TestGenerateConfirmationCode(t *testing.T) {
	now := time.Date(2025, time.July, 1, 12, 0, 0, 0, time.UTC)
	s := NewReservationService(ReservationServiceOptions{
		Clock: fixedClock{now: now},
		Rand:  rand.New(rand.NewSource(42)),
	})

	code := s.generateConfirmationCode()

	assert.True(t, regexp.MustCompile(`^PR\d{16}$`).MatchString(code), "unexpected code %q", code)
	assert.Contains(t, code, fmt.Sprintf("PR%d", now.UnixMilli()))
}

func TestCreateRejectsMalformedDates(t *testing.T) {
	s := NewReservationService(ReservationServiceOptions{})

	_, err := s.Create(context.Background(), dto.CreateReservationRequest{
		UserID:       1,
		RoomID:       1,
		CheckInDate:  "01/07/2025",
		CheckOutDate: "2025-07-03",
	})
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidFormat))

	_, err = s.Create(context.Background(), dto.CreateReservationRequest{
		UserID:       1,
		RoomID:       1,
		CheckInDate:  "2025-07-01",
		CheckOutDate: "not-a-date",
	})
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidFormat))
}

func TestCreateRejectsPastCheckIn(t *testing.T) {
	s := NewReservationService(ReservationServiceOptions{
		Clock: fixedClock{now: time.Date(2025, time.July, 10, 9, 0, 0, 0, time.UTC)},
	})

	_, err := s.Create(context.Background(), dto.CreateReservationRequest{
		UserID:       1,
		RoomID:       1,
		CheckInDate:  "2025-07-09",
		CheckOutDate: "2025-07-12",
	})
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeValidation))
}

func TestCreateRejectsZeroNightStay(t *testing.T) {
	s := NewReservationService(ReservationServiceOptions{
		Clock: fixedClock{now: time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC)},
	})

	_, err := s.Create(context.Background(), dto.CreateReservationRequest{
		UserID:       1,
		RoomID:       1,
		CheckInDate:  "2025-07-10",
		CheckOutDate: "2025-07-10",
	})
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeValidation))
}
