package services

import (
	"encoding/json"

	"github.com/olahol/melody"

	"pacificreef/models"
	"pacificreef/services/logger"
)

// ReservationEvent is the payload broadcast to staff dashboards when a
// reservation changes status.
type ReservationEvent struct {
	ConfirmationCode string `json:"confirmationCode"`
	RoomNumber       string `json:"roomNumber"`
	Status           string `json:"status"`
	StatusDisplay    string `json:"statusDisplay"`
}

// ReservationNotifier broadcasts reservation lifecycle events over the
// websocket hub. Broadcast failures are logged, never propagated.
type ReservationNotifier struct {
	melody *melody.Melody
	logger logger.Logger
}

func NewReservationNotifier(m *melody.Melody, log logger.Logger) *ReservationNotifier {
	return &ReservationNotifier{
		melody: m,
		logger: log,
	}
}

// NotifyStatusChange broadcasts the reservation's current status.
func (n *ReservationNotifier) NotifyStatusChange(r *models.Reservation) {
	if n == nil || n.melody == nil {
		return
	}

	event := ReservationEvent{
		ConfirmationCode: r.ConfirmationCode,
		RoomNumber:       r.RoomNumber(),
		Status:           string(r.Status),
		StatusDisplay:    r.Status.DisplayName(),
	}

	payload, err := json.Marshal(event)
	if err != nil {
		n.logger.Error("failed to marshal reservation event: %v", err)
		return
	}

	if err := n.melody.Broadcast(payload); err != nil {
		n.logger.Error("failed to broadcast reservation event: %v", err)
	}
}
