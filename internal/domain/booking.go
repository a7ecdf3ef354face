package domain

import "time"

// Booking represents a committed stay. Immutable once created.
//
// RoomType, PricePerNight and UserBalanceAtBooking are snapshots taken
// at booking time: later edits of the room or the user never affect an
// existing booking.
type Booking struct {
	ID         int64
	UserID     int64
	RoomNumber int64

	// Denormalized data for history
	RoomType             RoomType
	PricePerNight        int64
	UserBalanceAtBooking int64

	CheckIn  time.Time
	CheckOut time.Time

	Nights     int
	TotalPrice int64

	CreatedAt time.Time
}

// Overlaps returns true if the booking's stay intersects the half-open
// range [checkIn, checkOut). Boundary touch is not an overlap, so a
// check-in on another booking's check-out day is allowed.
func (b *Booking) Overlaps(checkIn, checkOut time.Time) bool {
	return RangesOverlap(b.CheckIn, b.CheckOut, checkIn, checkOut)
}
