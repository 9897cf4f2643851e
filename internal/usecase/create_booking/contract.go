package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error)
	GetActiveBySlotAndDate(ctx context.Context, slotID int64, date time.Time) ([]*domain.Booking, error)
}

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

// TransactionManager интерфейс менеджера транзакций
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// SlotLocker пер-слотовая блокировка внутри процесса.
// Сериализует конкурентные резервации одного слота до входа в транзакцию.
type SlotLocker interface {
	Lock(slotID int64)
	Unlock(slotID int64)
}

// Metrics доменные счётчики
type Metrics interface {
	IncBookingsCreated()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
