package book_room

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDate возвращается при нулевых датах или когда заезд
	// не раньше выезда (сравнение по дням)
	ErrInvalidDate = errors.New("book_room: invalid date range")

	// ErrUserNotFound возвращается, когда пользователь не найден
	ErrUserNotFound = errors.New("book_room: user not found")

	// ErrRoomNotFound возвращается, когда номер не найден
	ErrRoomNotFound = errors.New("book_room: room not found")

	// ErrRoomNotAvailable возвращается, когда диапазон дат пересекается
	// с существующим бронированием этого номера
	ErrRoomNotAvailable = errors.New("book_room: room is not available for the specified period")

	// ErrInsufficientBalance возвращается, когда стоимость проживания
	// превышает баланс пользователя
	ErrInsufficientBalance = errors.New("book_room: insufficient balance")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("book_room: internal error")
)

// InsufficientBalanceError несет требуемую и доступную суммы для
// диагностики. Сопоставляется с ErrInsufficientBalance через errors.Is.
type InsufficientBalanceError struct {
	Required  int64
	Available int64
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("%v: required %d, available %d", ErrInsufficientBalance, e.Required, e.Available)
}

func (e *InsufficientBalanceError) Unwrap() error {
	return ErrInsufficientBalance
}
