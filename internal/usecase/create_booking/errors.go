package create_booking

import "errors"

var (
	// ErrEmptyServices возвращается при попытке создать бронирование без услуг
	ErrEmptyServices = errors.New("create_booking: at least one service must be selected")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
