package book_room

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-HotelService/internal/domain"
)

// validateDates проверяет даты заезда и выезда.
// Сравнение выполняется по дням: время суток отбрасывается.
func validateDates(checkIn, checkOut time.Time) error {
	if checkIn.IsZero() || checkOut.IsZero() {
		return fmt.Errorf("%w: check-in and check-out dates are required", ErrInvalidDate)
	}

	if !domain.TruncateToDay(checkIn).Before(domain.TruncateToDay(checkOut)) {
		return fmt.Errorf("%w: check-in date must be before check-out date", ErrInvalidDate)
	}

	return nil
}

// roomIsAvailable проверяет, что диапазон [checkIn, checkOut) не
// пересекается ни с одним существующим бронированием номера.
// Границы сравниваются строго: выезд в день чужого заезда допустим.
func roomIsAvailable(checkIn, checkOut time.Time, bookings []*domain.Booking) bool {
	for _, booking := range bookings {
		if booking.Overlaps(checkIn, checkOut) {
			return false
		}
	}
	return true
}
