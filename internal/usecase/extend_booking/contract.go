package extend_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetActiveBySlotAndDate(ctx context.Context, slotID int64, date time.Time) ([]*domain.Booking, error)
	UpdateStatusIfActive(ctx context.Context, id int64, status domain.BookingStatus) error
	Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error)
}

// TransactionManager интерфейс менеджера транзакций
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// SlotLocker пер-слотовая блокировка внутри процесса
type SlotLocker interface {
	Lock(slotID int64)
	Unlock(slotID int64)
}

// Metrics доменные счётчики
type Metrics interface {
	IncBookingsExtended()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
