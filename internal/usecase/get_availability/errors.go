package get_availability

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных (ID услуги или дата)
	ErrInvalidInput = errors.New("get_availability: invalid input data")

	// ErrServiceNotFound возвращается, когда услуга не найдена в каталоге
	ErrServiceNotFound = errors.New("get_availability: service not found")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_availability: internal error")
)
