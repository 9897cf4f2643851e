package maintenance

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ParkingService/pkg/types"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	CompleteElapsed(ctx context.Context, today time.Time, now types.TimeString) (int64, error)
}

// TimeProvider источник текущего времени
type TimeProvider interface {
	Now() time.Time
}

// Metrics доменные счётчики
type Metrics interface {
	AddBookingsSwept(n int64)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
