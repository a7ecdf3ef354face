package check_availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	roomRepo "github.com/m04kA/SMC-HotelService/internal/infra/storage/room"
)

// UseCase use case проверки доступности номера на диапазон дат.
// Только читает состояние, ничего не бронирует.
type UseCase struct {
	bookingRepo BookingRepository
	roomRepo    RoomRepository
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, roomRepo RoomRepository, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		roomRepo:    roomRepo,
		logger:      logger,
	}
}

// Execute выполняет use case проверки доступности
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckAvailability: room=%d, checkIn=%s, checkOut=%s",
		req.RoomNumber, req.CheckIn.Format(domain.DateFormat), req.CheckOut.Format(domain.DateFormat))

	// 1. Валидация дат
	if err := validateDates(req.CheckIn, req.CheckOut); err != nil {
		uc.logger.Warn("CheckAvailability: date validation failed: %v", err)
		return nil, err
	}

	checkIn := domain.TruncateToDay(req.CheckIn)
	checkOut := domain.TruncateToDay(req.CheckOut)

	// 2. Проверяем существование номера
	room, err := uc.roomRepo.GetByNumber(ctx, req.RoomNumber)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			uc.logger.Warn("CheckAvailability: room number=%d not found", req.RoomNumber)
			return nil, fmt.Errorf("%w: number %d", ErrRoomNotFound, req.RoomNumber)
		}
		uc.logger.Error("CheckAvailability: failed to get room number=%d: %v", req.RoomNumber, err)
		return nil, fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
	}

	// 3. Ищем пересечения с существующими бронированиями
	bookings, err := uc.bookingRepo.ListByRoom(ctx, req.RoomNumber)
	if err != nil {
		uc.logger.Error("CheckAvailability: failed to list bookings for room number=%d: %v", req.RoomNumber, err)
		return nil, fmt.Errorf("%w: failed to list bookings: %v", ErrInternal, err)
	}

	available := true
	for _, booking := range bookings {
		if booking.Overlaps(checkIn, checkOut) {
			available = false
			break
		}
	}

	nights := domain.Nights(checkIn, checkOut)

	return &Response{
		RoomNumber:    room.Number,
		CheckIn:       checkIn,
		CheckOut:      checkOut,
		Available:     available,
		Nights:        nights,
		PricePerNight: room.PricePerNight,
		TotalPrice:    int64(nights) * room.PricePerNight,
		RoomType:      string(room.Type),
	}, nil
}

// validateDates проверяет даты заезда и выезда по дням
func validateDates(checkIn, checkOut time.Time) error {
	if checkIn.IsZero() || checkOut.IsZero() {
		return fmt.Errorf("%w: check-in and check-out dates are required", ErrInvalidDate)
	}

	if !domain.TruncateToDay(checkIn).Before(domain.TruncateToDay(checkOut)) {
		return fmt.Errorf("%w: check-in date must be before check-out date", ErrInvalidDate)
	}

	return nil
}
