package book_room

import (
	"context"

	"github.com/m04kA/SMC-HotelService/internal/domain"
)

// RoomRepository интерфейс репозитория номеров
type RoomRepository interface {
	GetByNumber(ctx context.Context, number int64) (*domain.Room, error)
}

// UserRepository интерфейс репозитория пользователей
type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	SetBalance(ctx context.Context, id int64, balance int64) error
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	ListByRoom(ctx context.Context, roomNumber int64) ([]*domain.Booking, error)
}

// LockManager сериализует критическую секцию бронирования.
// Вся последовательность проверок и мутаций выполняется как одна
// атомарная операция: на номер и диапазон дат выигрывает не более
// одной брони.
type LockManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Metrics интерфейс для доменных метрик бронирований
type Metrics interface {
	IncBooking(result string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
