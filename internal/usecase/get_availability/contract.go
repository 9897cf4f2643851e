package get_availability

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	List(ctx context.Context) ([]*domain.Slot, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetActiveByDate(ctx context.Context, date time.Time) ([]*domain.Booking, error)
}

// TimeProvider источник текущего времени
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
