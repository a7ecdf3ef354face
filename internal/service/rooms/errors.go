package rooms

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	// (неизвестная категория номера, отрицательная цена)
	ErrInvalidInput = errors.New("rooms: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("rooms: internal error")
)
