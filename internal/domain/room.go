package domain

import "time"

// RoomType represents the category of a hotel room
type RoomType string

const (
	RoomTypeStandard RoomType = "standard"
	RoomTypeJunior   RoomType = "junior"
	RoomTypeMaster   RoomType = "master"
)

// Valid returns true if the room type is one of the known categories
func (t RoomType) Valid() bool {
	switch t {
	case RoomTypeStandard, RoomTypeJunior, RoomTypeMaster:
		return true
	default:
		return false
	}
}

// Room represents a hotel room available for booking.
// The room number is the identity: upserting a room with an existing
// number replaces the old record entirely.
type Room struct {
	Number        int64
	Type          RoomType
	PricePerNight int64
	CreatedAt     time.Time
}
