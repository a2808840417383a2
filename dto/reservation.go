package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"pacificreef/models"
)

// CreateReservationRequest is the payload for creating a reservation.
// Dates use the 2006-01-02 layout. TotalAmount overrides the computed
// nights x rate price when supplied.
type CreateReservationRequest struct {
	UserID          uint             `json:"userId" binding:"required"`
	RoomID          uint             `json:"roomId" binding:"required"`
	CheckInDate     string           `json:"checkInDate" binding:"required"`
	CheckOutDate    string           `json:"checkOutDate" binding:"required"`
	GuestCount      int              `json:"guestCount"`
	SpecialRequests string           `json:"specialRequests"`
	TotalAmount     *decimal.Decimal `json:"totalAmount"`
}

type CancelReservationRequest struct {
	Reason string `json:"reason"`
}

type ReservationResponse struct {
	ID                 uint            `json:"id"`
	ConfirmationCode   string          `json:"confirmationCode"`
	UserID             uint            `json:"userId"`
	GuestName          string          `json:"guestName"`
	RoomID             uint            `json:"roomId"`
	RoomNumber         string          `json:"roomNumber"`
	CheckInDate        string          `json:"checkInDate"`
	CheckOutDate       string          `json:"checkOutDate"`
	Nights             int64           `json:"nights"`
	GuestCount         int             `json:"guestCount"`
	TotalAmount        decimal.Decimal `json:"totalAmount"`
	Status             string          `json:"status"`
	StatusDisplay      string          `json:"statusDisplay"`
	SpecialRequests    string          `json:"specialRequests,omitempty"`
	CheckedInAt        *time.Time      `json:"checkedInAt,omitempty"`
	CheckedOutAt       *time.Time      `json:"checkedOutAt,omitempty"`
	CancelledAt        *time.Time      `json:"cancelledAt,omitempty"`
	CancellationReason string          `json:"cancellationReason,omitempty"`
	CreatedAt          time.Time       `json:"createdAt"`
	UpdatedAt          time.Time       `json:"updatedAt"`
}

const dateLayout = "2006-01-02"

// NewReservationResponse maps a reservation model to its response shape.
func NewReservationResponse(r *models.Reservation) ReservationResponse {
	return ReservationResponse{
		ID:                 r.ID,
		ConfirmationCode:   r.ConfirmationCode,
		UserID:             r.UserID,
		GuestName:          r.GuestName(),
		RoomID:             r.RoomID,
		RoomNumber:         r.RoomNumber(),
		CheckInDate:        r.CheckInDate.Format(dateLayout),
		CheckOutDate:       r.CheckOutDate.Format(dateLayout),
		Nights:             r.Nights(),
		GuestCount:         r.GuestCount,
		TotalAmount:        r.TotalAmount,
		Status:             string(r.Status),
		StatusDisplay:      r.Status.DisplayName(),
		SpecialRequests:    r.SpecialRequests,
		CheckedInAt:        r.CheckedInAt,
		CheckedOutAt:       r.CheckedOutAt,
		CancelledAt:        r.CancelledAt,
		CancellationReason: r.CancellationReason,
		CreatedAt:          r.CreatedAt,
		UpdatedAt:          r.UpdatedAt,
	}
}
