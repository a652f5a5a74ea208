package accounts

import "errors"

var (
	// ErrDuplicateEmail возвращается при регистрации с занятым email
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrInvalidCredentials возвращается при неудачной аутентификации
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
