package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("bookings: booking not found")

	// ErrAccessDenied возвращается, когда пользователь не владелец бронирования
	ErrAccessDenied = errors.New("bookings: access denied")

	// ErrAlreadyTerminal возвращается при попытке изменить бронирование,
	// уже находящееся в терминальном статусе (cancelled/completed)
	ErrAlreadyTerminal = errors.New("bookings: booking is already in a terminal status")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("bookings: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("bookings: internal error")
)
