package book_room

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	roomRepo "github.com/m04kA/SMC-HotelService/internal/infra/storage/room"
	userRepo "github.com/m04kA/SMC-HotelService/internal/infra/storage/user"
	"github.com/m04kA/SMC-HotelService/pkg/metrics"
)

// UseCase use case бронирования номера.
//
// Порядок проверок фиксирован, первая нарушенная проверка выигрывает:
// даты → пользователь → номер → доступность → баланс. При любой ошибке
// состояние не меняется: все проверки завершаются до первой мутации.
type UseCase struct {
	bookingRepo BookingRepository
	roomRepo    RoomRepository
	userRepo    UserRepository
	lockManager LockManager
	metrics     Metrics
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	roomRepo RoomRepository,
	userRepo UserRepository,
	lockManager LockManager,
	m Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		roomRepo:    roomRepo,
		userRepo:    userRepo,
		lockManager: lockManager,
		metrics:     m,
		logger:      logger,
	}
}

// Execute выполняет use case бронирования номера.
// Проверки и мутации выполняются в одной критической секции, чтобы на
// номер и диапазон дат могла выиграть не более одной брони.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("BookRoom: user=%d, room=%d, checkIn=%s, checkOut=%s",
		req.UserID, req.RoomNumber,
		req.CheckIn.Format(domain.DateFormat), req.CheckOut.Format(domain.DateFormat))

	result, err := uc.execute(ctx, req)
	if err != nil {
		uc.incBooking(resultLabel(err))
		return nil, err
	}

	uc.incBooking(metrics.ResultCreated)
	uc.logger.Info("BookRoom: successfully created booking id=%d, total=%d", result.ID, result.TotalPrice)
	return result, nil
}

func (uc *UseCase) execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация дат (чистая проверка, блокировка не нужна)
	if err := validateDates(req.CheckIn, req.CheckOut); err != nil {
		uc.logger.Warn("BookRoom: date validation failed: %v", err)
		return nil, err
	}

	// Даты сравниваются и хранятся только с точностью до дня
	checkIn := domain.TruncateToDay(req.CheckIn)
	checkOut := domain.TruncateToDay(req.CheckOut)

	var result *domain.Booking

	err := uc.lockManager.DoSerializable(ctx, func(lockCtx context.Context) error {
		// 2. Проверяем существование пользователя
		user, err := uc.userRepo.GetByID(lockCtx, req.UserID)
		if err != nil {
			if errors.Is(err, userRepo.ErrUserNotFound) {
				uc.logger.Warn("BookRoom: user id=%d not found", req.UserID)
				return fmt.Errorf("%w: id %d", ErrUserNotFound, req.UserID)
			}
			uc.logger.Error("BookRoom: failed to get user id=%d: %v", req.UserID, err)
			return fmt.Errorf("%w: failed to get user: %v", ErrInternal, err)
		}

		// 3. Проверяем существование номера
		room, err := uc.roomRepo.GetByNumber(lockCtx, req.RoomNumber)
		if err != nil {
			if errors.Is(err, roomRepo.ErrRoomNotFound) {
				uc.logger.Warn("BookRoom: room number=%d not found", req.RoomNumber)
				return fmt.Errorf("%w: number %d", ErrRoomNotFound, req.RoomNumber)
			}
			uc.logger.Error("BookRoom: failed to get room number=%d: %v", req.RoomNumber, err)
			return fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
		}

		// 4. Проверяем доступность номера на запрошенный диапазон
		existing, err := uc.bookingRepo.ListByRoom(lockCtx, req.RoomNumber)
		if err != nil {
			uc.logger.Error("BookRoom: failed to list bookings for room number=%d: %v", req.RoomNumber, err)
			return fmt.Errorf("%w: failed to list bookings: %v", ErrInternal, err)
		}

		if !roomIsAvailable(checkIn, checkOut, existing) {
			uc.logger.Warn("BookRoom: room number=%d not available for %s - %s",
				req.RoomNumber, checkIn.Format(domain.DateFormat), checkOut.Format(domain.DateFormat))
			return fmt.Errorf("%w: number %d", ErrRoomNotAvailable, req.RoomNumber)
		}

		// 5. Считаем стоимость и проверяем баланс
		nights := domain.Nights(checkIn, checkOut)
		totalPrice := int64(nights) * room.PricePerNight

		if !user.HasSufficientBalance(totalPrice) {
			uc.logger.Warn("BookRoom: insufficient balance for user id=%d: required=%d, available=%d",
				req.UserID, totalPrice, user.Balance)
			return &InsufficientBalanceError{Required: totalPrice, Available: user.Balance}
		}

		// 6. Создаем бронирование со снапшотами номера и баланса ДО списания
		booking := &domain.Booking{
			UserID:     user.ID,
			RoomNumber: room.Number,
			// Снапшоты: последующие изменения номера и баланса
			// не влияют на созданное бронирование
			RoomType:             room.Type,
			PricePerNight:        room.PricePerNight,
			UserBalanceAtBooking: user.Balance,
			CheckIn:              checkIn,
			CheckOut:             checkOut,
			Nights:               nights,
			TotalPrice:           totalPrice,
		}

		created, err := uc.bookingRepo.Create(lockCtx, booking)
		if err != nil {
			uc.logger.Error("BookRoom: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		// 7. Списываем стоимость с баланса пользователя
		if err := uc.userRepo.SetBalance(lockCtx, user.ID, user.Balance-totalPrice); err != nil {
			uc.logger.Error("BookRoom: failed to debit user id=%d: %v", user.ID, err)
			return fmt.Errorf("%w: failed to debit user balance: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	return &Response{
		ID:                   result.ID,
		UserID:               result.UserID,
		RoomNumber:           result.RoomNumber,
		CheckIn:              result.CheckIn,
		CheckOut:             result.CheckOut,
		Nights:               result.Nights,
		TotalPrice:           result.TotalPrice,
		RoomType:             string(result.RoomType),
		PricePerNight:        result.PricePerNight,
		UserBalanceAtBooking: result.UserBalanceAtBooking,
		CreatedAt:            result.CreatedAt,
	}, nil
}

func (uc *UseCase) incBooking(result string) {
	if uc.metrics != nil {
		uc.metrics.IncBooking(result)
	}
}

// resultLabel переводит ошибку бронирования в метку метрики
func resultLabel(err error) string {
	switch {
	case errors.Is(err, ErrInvalidDate):
		return metrics.ResultInvalidDate
	case errors.Is(err, ErrUserNotFound):
		return metrics.ResultUserNotFound
	case errors.Is(err, ErrRoomNotFound):
		return metrics.ResultRoomNotFound
	case errors.Is(err, ErrRoomNotAvailable):
		return metrics.ResultRoomNotAvailable
	case errors.Is(err, ErrInsufficientBalance):
		return metrics.ResultInsufficientBalance
	default:
		return metrics.ResultError
	}
}
