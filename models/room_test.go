package models

import (
	"testing"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestNewRoomDefaults(t *testing.T) {
	cases := []struct {
		roomType     RoomType
		maxOccupancy int
		bedCount     int
		bedType      string
	}{
		{RoomTypeStandard, 2, 1, "Queen"},
		{RoomTypeDeluxe, 3, 1, "King"},
		{RoomTypeSuite, 4, 2, "King"},
		{RoomTypePenthouse, 6, 3, "King"},
	}

	for _, tc := range cases {
		t.Run(string(tc.roomType), func(t *testing.T) {
			room := NewRoom("101", tc.roomType, decimal.NewFromInt(150))

			assert.Equal(t, RoomStatusAvailable, room.Status)
			assert.True(t, room.HasWifi)
			assert.True(t, room.HasAirConditioning)
			assert.Equal(t, tc.maxOccupancy, room.MaxOccupancy)
			assert.Equal(t, tc.bedCount, room.BedCount)
			assert.Equal(t, tc.bedType, room.BedType)
		})
	}
}

func TestApplyTypeDefaultsKeepsExplicitValues(t *testing.T) {
	room := &Room{Type: RoomTypeSuite, MaxOccupancy: 8, BedType: "Twin"}
	room.ApplyTypeDefaults()

	assert.Equal(t, 8, room.MaxOccupancy)
	assert.Equal(t, "Twin", room.BedType)
	assert.Equal(t, 2, room.BedCount)
}

func TestRoomDisplayName(t *testing.T) {
	room := NewRoom("305", RoomTypeDeluxe, decimal.NewFromInt(200))
	assert.Equal(t, "Deluxe Room 305", room.DisplayName())
}

func TestRoomFeaturesOrder(t *testing.T) {
	room := NewRoom("101", RoomTypeSuite, decimal.NewFromInt(400))
	room.HasBalcony = true
	room.HasSeaView = true
	room.HasMinibar = true
	room.HasSafe = true
	room.Amenities = pq.StringArray{"Jacuzzi", "Espresso Machine"}

	assert.Equal(t, []string{
		"Free WiFi",
		"Air Conditioning",
		"Balcony",
		"Sea View",
		"Minibar",
		"Safe",
		"Jacuzzi",
		"Espresso Machine",
	}, room.Features())
}

func TestRoomFeaturesMinimal(t *testing.T) {
	room := &Room{Type: RoomTypeStandard}
	assert.Empty(t, room.Features())
}

func TestMarkOverwritesAnyStatus(t *testing.T) {
	room := NewRoom("101", RoomTypeStandard, decimal.NewFromInt(100))
	room.Status = RoomStatusOutOfOrder

	room.MarkAsOccupied()
	assert.True(t, room.IsOccupied())

	room.MarkAsUnderMaintenance()
	assert.True(t, room.IsUnderMaintenance())

	room.MarkAsAvailable()
	assert.True(t, room.IsAvailable())
}

func TestRoomStatusValidity(t *testing.T) {
	assert.True(t, RoomStatusCleaning.IsValid())
	assert.False(t, RoomStatus("HAUNTED").IsValid())
	assert.Equal(t, "Under Maintenance", RoomStatusMaintenance.DisplayName())
}
