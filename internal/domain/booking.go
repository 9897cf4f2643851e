package domain

import (
	"time"

	"github.com/m04kA/SMC-ParkingService/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusActive    BookingStatus = "active"
	StatusCancelled BookingStatus = "cancelled"
	StatusCompleted BookingStatus = "completed"
)

// Booking represents a parking slot reservation in the system.
// Записи append-only: после создания меняется только статус,
// продление моделируется как cancel + новая запись.
type Booking struct {
	ID          int64
	SlotID      int64
	UserID      int64
	BookingDate time.Time
	StartTime   types.TimeString
	EndTime     types.TimeString
	Status      BookingStatus

	CancelledAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking still occupies its window
func (b *Booking) IsActive() bool {
	return b.Status == StatusActive
}

// IsTerminal returns true if the booking reached a terminal status.
// Из терминального статуса возврата в active нет.
func (b *Booking) IsTerminal() bool {
	return b.Status == StatusCancelled || b.Status == StatusCompleted
}

// Window returns the booking's time window
func (b *Booking) Window() TimeWindow {
	return TimeWindow{
		Date:  b.BookingDate,
		Start: b.StartTime,
		End:   b.EndTime,
	}
}

// ElapsedBy returns true if the booking's window has fully passed
// relative to the given date and time-of-day
func (b *Booking) ElapsedBy(date time.Time, now types.TimeString) bool {
	y1, m1, d1 := b.BookingDate.Date()
	y2, m2, d2 := date.Date()

	bd := time.Date(y1, m1, d1, 0, 0, 0, 0, time.UTC)
	nd := time.Date(y2, m2, d2, 0, 0, 0, 0, time.UTC)

	if bd.Before(nd) {
		return true
	}
	if bd.After(nd) {
		return false
	}
	return !now.IsBefore(b.EndTime)
}
