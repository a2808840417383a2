package models

import (
	"time"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

// RoomType classifies rooms. Each type carries default occupancy and
// bed metadata applied when a room is created without explicit values.
type RoomType string

const (
	RoomTypeStandard  RoomType = "STANDARD"
	RoomTypeDeluxe    RoomType = "DELUXE"
	RoomTypeSuite     RoomType = "SUITE"
	RoomTypePenthouse RoomType = "PENTHOUSE"
)

type roomTypeInfo struct {
	DisplayName         string
	DefaultMaxOccupancy int
	DefaultBedCount     int
	DefaultBedType      string
}

var roomTypeTable = map[RoomType]roomTypeInfo{
	RoomTypeStandard:  {"Standard", 2, 1, "Queen"},
	RoomTypeDeluxe:    {"Deluxe", 3, 1, "King"},
	RoomTypeSuite:     {"Suite", 4, 2, "King"},
	RoomTypePenthouse: {"Penthouse", 6, 3, "King"},
}

func (t RoomType) IsValid() bool {
	_, ok := roomTypeTable[t]
	return ok
}

func (t RoomType) DisplayName() string {
	return roomTypeTable[t].DisplayName
}

func (t RoomType) DefaultMaxOccupancy() int {
	return roomTypeTable[t].DefaultMaxOccupancy
}

func (t RoomType) DefaultBedCount() int {
	return roomTypeTable[t].DefaultBedCount
}

func (t RoomType) DefaultBedType() string {
	return roomTypeTable[t].DefaultBedType
}

// RoomStatus is the occupancy status of a room.
type RoomStatus string

const (
	RoomStatusAvailable   RoomStatus = "AVAILABLE"
	RoomStatusOccupied    RoomStatus = "OCCUPIED"
	RoomStatusMaintenance RoomStatus = "MAINTENANCE"
	RoomStatusCleaning    RoomStatus = "CLEANING"
	RoomStatusOutOfOrder  RoomStatus = "OUT_OF_ORDER"
)

var roomStatusDisplayNames = map[RoomStatus]string{
	RoomStatusAvailable:   "Available",
	RoomStatusOccupied:    "Occupied",
	RoomStatusMaintenance: "Under Maintenance",
	RoomStatusCleaning:    "Being Cleaned",
	RoomStatusOutOfOrder:  "Out of Order",
}

func (s RoomStatus) IsValid() bool {
	_, ok := roomStatusDisplayNames[s]
	return ok
}

func (s RoomStatus) DisplayName() string {
	return roomStatusDisplayNames[s]
}

// MaxRoomNumberLength is the length limit on Room.Number.
const MaxRoomNumberLength = 10

type Room struct {
	ID                 uint            `json:"id" gorm:"primaryKey"`
	Number             string          `json:"number" gorm:"uniqueIndex;size:10;not null"`
	Type               RoomType        `json:"type" gorm:"type:varchar(20);not null"`
	Price              decimal.Decimal `json:"price" gorm:"type:numeric(10,2);not null"`
	Status             RoomStatus      `json:"status" gorm:"type:varchar(20);not null;default:'AVAILABLE'"`
	Description        string          `json:"description" gorm:"type:text"`
	MaxOccupancy       int             `json:"maxOccupancy"`
	BedCount           int             `json:"bedCount"`
	BedType            string          `json:"bedType" gorm:"size:50"`
	HasBalcony         bool            `json:"hasBalcony" gorm:"default:false"`
	HasSeaView         bool            `json:"hasSeaView" gorm:"default:false"`
	HasWifi            bool            `json:"hasWifi" gorm:"default:true"`
	HasAirConditioning bool            `json:"hasAirConditioning" gorm:"default:true"`
	HasMinibar         bool            `json:"hasMinibar" gorm:"default:false"`
	HasSafe            bool            `json:"hasSafe" gorm:"default:false"`
	FloorNumber        int             `json:"floorNumber"`
	Amenities          pq.StringArray  `json:"amenities" gorm:"type:text[]"`
	CreatedAt          time.Time       `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt          time.Time       `gorm:"autoUpdateTime" json:"updatedAt"`
}

// NewRoom creates a room with status AVAILABLE, the standard feature
// flags and occupancy defaults derived from the type.
func NewRoom(number string, roomType RoomType, price decimal.Decimal) *Room {
	r := &Room{
		Number:             number,
		Type:               roomType,
		Price:              price,
		Status:             RoomStatusAvailable,
		HasWifi:            true,
		HasAirConditioning: true,
	}
	r.ApplyTypeDefaults()
	return r
}

// ApplyTypeDefaults fills occupancy and bed metadata from the room type
// for any field not explicitly set.
func (r *Room) ApplyTypeDefaults() {
	if !r.Type.IsValid() {
		return
	}
	if r.MaxOccupancy == 0 {
		r.MaxOccupancy = r.Type.DefaultMaxOccupancy()
	}
	if r.BedCount == 0 {
		r.BedCount = r.Type.DefaultBedCount()
	}
	if r.BedType == "" {
		r.BedType = r.Type.DefaultBedType()
	}
}

func (r *Room) IsAvailable() bool {
	return r.Status == RoomStatusAvailable
}

func (r *Room) IsOccupied() bool {
	return r.Status == RoomStatusOccupied
}

func (r *Room) IsUnderMaintenance() bool {
	return r.Status == RoomStatusMaintenance
}

// Status mutators overwrite from any source state. The room status is
// shared mutable state between reservations; last writer wins.

func (r *Room) MarkAsOccupied() {
	r.Status = RoomStatusOccupied
	r.UpdatedAt = time.Now()
}

func (r *Room) MarkAsAvailable() {
	r.Status = RoomStatusAvailable
	r.UpdatedAt = time.Now()
}

func (r *Room) MarkAsUnderMaintenance() {
	r.Status = RoomStatusMaintenance
	r.UpdatedAt = time.Now()
}

// DisplayName formats the room as "<Type> Room <number>".
func (r *Room) DisplayName() string {
	return r.Type.DisplayName() + " Room " + r.Number
}

// Features lists enabled amenity flags as display strings followed by
// the free-text amenities, in fixed order.
func (r *Room) Features() []string {
	features := []string{}
	if r.HasWifi {
		features = append(features, "Free WiFi")
	}
	if r.HasAirConditioning {
		features = append(features, "Air Conditioning")
	}
	if r.HasBalcony {
		features = append(features, "Balcony")
	}
	if r.HasSeaView {
		features = append(features, "Sea View")
	}
	if r.HasMinibar {
		features = append(features, "Minibar")
	}
	if r.HasSafe {
		features = append(features, "Safe")
	}
	features = append(features, r.Amenities...)
	return features
}
