package technicians

import "errors"

var (
	// ErrTechnicianNotFound возвращается, когда техник не найден
	ErrTechnicianNotFound = errors.New("technician not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
