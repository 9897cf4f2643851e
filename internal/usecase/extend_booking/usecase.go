package extend_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/booking"
)

// UseCase продление бронирования: конец окна сдвигается на более
// позднее время, начало и дата не меняются.
//
// Журнал бронирований append-only, поэтому продление выполняется
// заменой: исходная бронь переводится в cancelled, в той же
// serializable-транзакции создаётся новая с тем же началом и новым
// концом. При конфликте транзакция откатывается и исходная бронь
// остаётся активной без изменений.
type UseCase struct {
	bookingRepo BookingRepository
	txManager   TransactionManager
	slotLocks   SlotLocker
	metrics     Metrics
	logger      Logger
}

// NewUseCase создает новый экземпляр usecase продления бронирования
func NewUseCase(
	bookingRepo BookingRepository,
	txManager TransactionManager,
	slotLocks SlotLocker,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		txManager:   txManager,
		slotLocks:   slotLocks,
		metrics:     metrics,
		logger:      logger,
	}
}

// Execute продлевает бронирование до нового времени окончания
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("Execute: extending booking id=%d to %s by user=%d", req.BookingID, req.NewEnd, req.UserID)

	newEnd, err := validate(req)
	if err != nil {
		uc.logger.Warn("Execute: validation failed for booking id=%d: %v", req.BookingID, err)
		return nil, err
	}

	current, err := uc.bookingRepo.GetByID(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Warn("Execute: booking id=%d not found", req.BookingID)
			return nil, ErrBookingNotFound
		}
		uc.logger.Error("Execute: load booking id=%d: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: Execute - load booking: %v", ErrInternal, err)
	}

	if current.UserID != req.UserID {
		uc.logger.Warn("Execute: access denied for user=%d to booking id=%d", req.UserID, req.BookingID)
		return nil, ErrAccessDenied
	}

	if current.IsTerminal() {
		uc.logger.Warn("Execute: booking id=%d is already terminal, status=%s", req.BookingID, current.Status)
		return nil, ErrAlreadyTerminal
	}

	if !current.EndTime.IsBefore(newEnd) {
		uc.logger.Warn("Execute: new end %s does not extend booking id=%d (current end %s)",
			newEnd, req.BookingID, current.EndTime)
		return nil, fmt.Errorf("%w: new end %s must be later than current end %s", ErrInvalidWindow, newEnd, current.EndTime)
	}

	uc.slotLocks.Lock(current.SlotID)
	defer uc.slotLocks.Unlock(current.SlotID)

	extendedWindow := domain.TimeWindow{
		Date:  current.BookingDate,
		Start: current.StartTime,
		End:   newEnd,
	}

	var created *domain.Booking
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		active, err := uc.bookingRepo.GetActiveBySlotAndDate(txCtx, current.SlotID, current.BookingDate)
		if err != nil {
			return fmt.Errorf("%w: Execute - load active bookings: %v", ErrInternal, err)
		}

		if conflict := domain.FirstConflict(active, extendedWindow, current.ID); conflict != nil {
			return &ConflictError{BookingID: conflict.ID}
		}

		err = uc.bookingRepo.UpdateStatusIfActive(txCtx, current.ID, domain.StatusCancelled)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotActive) {
				// Бронь завершили или отменили между чтением и транзакцией
				return ErrAlreadyTerminal
			}
			return fmt.Errorf("%w: Execute - cancel original booking: %v", ErrInternal, err)
		}

		replacement := &domain.Booking{
			SlotID:      current.SlotID,
			UserID:      current.UserID,
			BookingDate: current.BookingDate,
			StartTime:   current.StartTime,
			EndTime:     newEnd,
			Status:      domain.StatusActive,
		}

		created, err = uc.bookingRepo.Create(txCtx, replacement)
		if err != nil {
			return fmt.Errorf("%w: Execute - create replacement booking: %v", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		var conflictErr *ConflictError
		if errors.As(err, &conflictErr) {
			uc.logger.Warn("Execute: booking id=%d cannot be extended, conflicting booking=%d",
				req.BookingID, conflictErr.BookingID)
			return nil, err
		}
		if errors.Is(err, ErrAlreadyTerminal) {
			return nil, ErrAlreadyTerminal
		}
		uc.logger.Error("Execute: transaction failed for booking id=%d: %v", req.BookingID, err)
		return nil, err
	}

	uc.metrics.IncBookingsExtended()
	uc.logger.Info("Execute: successfully extended booking id=%d, replacement id=%d, new end=%s",
		req.BookingID, created.ID, newEnd)
	return fromDomainBooking(created, current.ID), nil
}
