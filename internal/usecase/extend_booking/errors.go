package extend_booking

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("extend_booking: invalid input data")

	// ErrInvalidWindow возвращается при некорректном новом времени окончания
	ErrInvalidWindow = errors.New("extend_booking: invalid time window")

	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("extend_booking: booking not found")

	// ErrAccessDenied возвращается, когда пользователь не владелец бронирования
	ErrAccessDenied = errors.New("extend_booking: access denied")

	// ErrAlreadyTerminal возвращается при попытке продлить бронирование
	// в терминальном статусе
	ErrAlreadyTerminal = errors.New("extend_booking: booking is already in a terminal status")

	// ErrSlotNotAvailable возвращается, когда продлённое окно пересекается
	// с чужим бронированием
	ErrSlotNotAvailable = errors.New("extend_booking: slot is not available in the extended window")

	// ErrInternal возвращается при внутренних ошибках
	ErrInternal = errors.New("extend_booking: internal error")
)

// ConflictError несёт идентификатор бронирования, мешающего продлению.
// Разворачивается в ErrSlotNotAvailable.
type ConflictError struct {
	BookingID int64
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%v: conflicting booking id=%d", ErrSlotNotAvailable, e.BookingID)
}

func (e *ConflictError) Unwrap() error {
	return ErrSlotNotAvailable
}
