package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// TerminalStatuses список терминальных статусов бронирования.
// Из них нет перехода обратно в active.
var TerminalStatuses = []BookingStatus{
	StatusCancelled,
	StatusCompleted,
}

// ValidStatuses список всех допустимых статусов бронирования
var ValidStatuses = []BookingStatus{
	StatusActive,
	StatusCancelled,
	StatusCompleted,
}
