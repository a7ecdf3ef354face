package check_availability

import "errors"

var (
	// ErrInvalidDate возвращается при нулевых датах или когда заезд
	// не раньше выезда
	ErrInvalidDate = errors.New("check_availability: invalid date range")

	// ErrRoomNotFound возвращается, когда номер не найден
	ErrRoomNotFound = errors.New("check_availability: room not found")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("check_availability: internal error")
)
