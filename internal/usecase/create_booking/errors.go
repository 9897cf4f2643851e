package create_booking

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInvalidWindow возвращается при некорректном временном окне
	ErrInvalidWindow = errors.New("create_booking: invalid time window")

	// ErrSlotNotFound возвращается, когда слот не найден
	ErrSlotNotFound = errors.New("create_booking: slot not found")

	// ErrSlotNotAvailable возвращается, когда слот занят в запрошенном окне
	ErrSlotNotAvailable = errors.New("create_booking: slot is not available in the requested window")

	// ErrInternal возвращается при внутренних ошибках
	ErrInternal = errors.New("create_booking: internal error")
)

// ConflictError несёт идентификатор бронирования, с которым пересекается
// запрошенное окно. Разворачивается в ErrSlotNotAvailable, поэтому
// обработчики могут использовать и errors.Is, и errors.As.
type ConflictError struct {
	BookingID int64
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%v: conflicting booking id=%d", ErrSlotNotAvailable, e.BookingID)
}

func (e *ConflictError) Unwrap() error {
	return ErrSlotNotAvailable
}
