package bookings

import (
	"context"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByUserID(ctx context.Context, userID int64, status *domain.BookingStatus) ([]*domain.Booking, error)
	UpdateStatusIfActive(ctx context.Context, id int64, status domain.BookingStatus) error
}

// Metrics доменные счётчики
type Metrics interface {
	IncBookingsCancelled()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
