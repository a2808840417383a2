package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"pacificreef/models"
)

// CreateRoomRequest is the payload for creating a room. Occupancy and
// bed metadata default from the room type when omitted.
type CreateRoomRequest struct {
	Number             string          `json:"number" binding:"required"`
	Type               string          `json:"type" binding:"required"`
	Price              decimal.Decimal `json:"price" binding:"required"`
	Description        string          `json:"description"`
	MaxOccupancy       int             `json:"maxOccupancy"`
	BedCount           int             `json:"bedCount"`
	BedType            string          `json:"bedType"`
	HasBalcony         bool            `json:"hasBalcony"`
	HasSeaView         bool            `json:"hasSeaView"`
	HasWifi            *bool           `json:"hasWifi"`
	HasAirConditioning *bool           `json:"hasAirConditioning"`
	HasMinibar         bool            `json:"hasMinibar"`
	HasSafe            bool            `json:"hasSafe"`
	FloorNumber        int             `json:"floorNumber"`
	Amenities          []string        `json:"amenities"`
}

// RoomStatusRequest updates a room's occupancy status directly
// (maintenance marking and the like).
type RoomStatusRequest struct {
	ID     uint   `json:"id" binding:"required"`
	Status string `json:"status" binding:"required"`
}

type RoomResponse struct {
	ID          uint            `json:"id"`
	Number      string          `json:"number"`
	DisplayName string          `json:"displayName"`
	Type        string          `json:"type"`
	Price       decimal.Decimal `json:"price"`
	Status      string          `json:"status"`
	Description string          `json:"description,omitempty"`
	FloorNumber int             `json:"floorNumber"`
	Features    []string        `json:"features"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// NewRoomResponse maps a room model to its response shape.
func NewRoomResponse(room *models.Room) RoomResponse {
	return RoomResponse{
		ID:          room.ID,
		Number:      room.Number,
		DisplayName: room.DisplayName(),
		Type:        string(room.Type),
		Price:       room.Price,
		Status:      string(room.Status),
		Description: room.Description,
		FloorNumber: room.FloorNumber,
		Features:    room.Features(),
		CreatedAt:   room.CreatedAt,
		UpdatedAt:   room.UpdatedAt,
	}
}
