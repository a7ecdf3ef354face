package users

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	// (отрицательный баланс)
	ErrInvalidInput = errors.New("users: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("users: internal error")
)
