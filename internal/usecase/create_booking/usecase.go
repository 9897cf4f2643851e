package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// UseCase создание бронирования слота.
//
// Конкурентные резервации одного слота сериализуются дважды:
// пер-слотовым мьютексом внутри процесса и serializable-транзакцией
// с FOR UPDATE на чтении активных броней. Проверка пересечения и
// вставка выполняются в одной транзакции, поэтому из N конкурентных
// запросов на пересекающиеся окна успешным будет ровно один.
type UseCase struct {
	bookingRepo BookingRepository
	slotRepo    SlotRepository
	txManager   TransactionManager
	slotLocks   SlotLocker
	metrics     Metrics
	logger      Logger
}

// NewUseCase создает новый экземпляр usecase создания бронирования
func NewUseCase(
	bookingRepo BookingRepository,
	slotRepo SlotRepository,
	txManager TransactionManager,
	slotLocks SlotLocker,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		slotRepo:    slotRepo,
		txManager:   txManager,
		slotLocks:   slotLocks,
		metrics:     metrics,
		logger:      logger,
	}
}

// Execute создает бронирование слота на запрошенное окно
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("Execute: creating booking for user=%d, slot=%d, date=%s, window=%s-%s",
		req.UserID, req.SlotID, req.Date, req.StartTime, req.EndTime)

	if err := validate(req); err != nil {
		uc.logger.Warn("Execute: validation failed for user=%d: %v", req.UserID, err)
		return nil, err
	}

	window, err := req.toDomainWindow()
	if err != nil {
		return nil, fmt.Errorf("%w: parse booking date: %v", ErrInvalidWindow, err)
	}

	exists, err := uc.slotRepo.Exists(ctx, req.SlotID)
	if err != nil {
		uc.logger.Error("Execute: check slot=%d existence: %v", req.SlotID, err)
		return nil, fmt.Errorf("%w: Execute - check slot existence: %v", ErrInternal, err)
	}
	if !exists {
		uc.logger.Warn("Execute: slot=%d not found", req.SlotID)
		return nil, ErrSlotNotFound
	}

	uc.slotLocks.Lock(req.SlotID)
	defer uc.slotLocks.Unlock(req.SlotID)

	var created *domain.Booking
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		active, err := uc.bookingRepo.GetActiveBySlotAndDate(txCtx, req.SlotID, window.Date)
		if err != nil {
			return fmt.Errorf("%w: Execute - load active bookings: %v", ErrInternal, err)
		}

		if conflict := domain.FirstConflict(active, window, 0); conflict != nil {
			return &ConflictError{BookingID: conflict.ID}
		}

		booking := &domain.Booking{
			SlotID:      req.SlotID,
			UserID:      req.UserID,
			BookingDate: window.Date,
			StartTime:   window.Start,
			EndTime:     window.End,
			Status:      domain.StatusActive,
		}

		created, err = uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			return fmt.Errorf("%w: Execute - create booking: %v", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		var conflictErr *ConflictError
		if errors.As(err, &conflictErr) {
			uc.logger.Warn("Execute: slot=%d not available for user=%d, conflicting booking=%d",
				req.SlotID, req.UserID, conflictErr.BookingID)
			return nil, err
		}
		uc.logger.Error("Execute: transaction failed for user=%d, slot=%d: %v", req.UserID, req.SlotID, err)
		return nil, err
	}

	uc.metrics.IncBookingsCreated()
	uc.logger.Info("Execute: successfully created booking id=%d for user=%d, slot=%d",
		created.ID, req.UserID, req.SlotID)
	return fromDomainBooking(created), nil
}
