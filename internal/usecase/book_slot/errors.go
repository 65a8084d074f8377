package book_slot

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных (ID, дата или время)
	ErrInvalidInput = errors.New("book_slot: invalid input data")

	// ErrSlotTaken возвращается, когда на слот уже есть активная запись
	ErrSlotTaken = errors.New("book_slot: time slot already booked")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("book_slot: internal error")
)
