package get_availability

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/pkg/types"
)

// UseCase снимок доступности слотов на дату.
//
// Слот доступен, если у него нет активных бронирований на дату,
// окно которых ещё не прошло: для сегодняшней даты уже истёкшие
// брони (конец <= текущего времени) слот не занимают, даже если
// sweep ещё не перевёл их в completed.
type UseCase struct {
	slotRepo     SlotRepository
	bookingRepo  BookingRepository
	timeProvider TimeProvider
	logger       Logger
}

// RealTimeProvider возвращает текущее время в заданной таймзоне парковки
type RealTimeProvider struct {
	Location *time.Location
}

func (p RealTimeProvider) Now() time.Time {
	return time.Now().In(p.Location)
}

// NewUseCase создает новый экземпляр usecase снимка доступности
func NewUseCase(
	slotRepo SlotRepository,
	bookingRepo BookingRepository,
	timeProvider TimeProvider,
	logger Logger,
) *UseCase {
	return &UseCase{
		slotRepo:     slotRepo,
		bookingRepo:  bookingRepo,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Execute возвращает доступность всех слотов на указанную дату
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: request is nil", ErrInvalidInput)
	}

	date, err := time.Parse(domain.DateFormat, req.Date)
	if err != nil {
		uc.logger.Warn("Execute: invalid date=%s: %v", req.Date, err)
		return nil, fmt.Errorf("%w: date must be in format %s", ErrInvalidInput, domain.DateFormat)
	}

	slots, err := uc.slotRepo.List(ctx)
	if err != nil {
		uc.logger.Error("Execute: list slots: %v", err)
		return nil, fmt.Errorf("%w: Execute - list slots: %v", ErrInternal, err)
	}

	bookings, err := uc.bookingRepo.GetActiveByDate(ctx, date)
	if err != nil {
		uc.logger.Error("Execute: load active bookings for date=%s: %v", req.Date, err)
		return nil, fmt.Errorf("%w: Execute - load active bookings: %v", ErrInternal, err)
	}

	now := uc.timeProvider.Now()
	queryIsToday := now.Format(domain.DateFormat) == req.Date
	nowTime := types.TimeString(now.Format(domain.TimeFormat))

	occupied := make(map[int64]bool, len(bookings))
	for _, b := range bookings {
		if queryIsToday && b.ElapsedBy(now, nowTime) {
			// Окно уже прошло, sweep переведёт бронь в completed
			continue
		}
		occupied[b.SlotID] = true
	}

	resp := &Response{
		Date:  req.Date,
		Slots: make([]SlotAvailability, 0, len(slots)),
		Total: len(slots),
	}

	for _, slot := range slots {
		available := !occupied[slot.ID]
		if available {
			resp.Available++
		} else {
			resp.Booked++
		}
		resp.Slots = append(resp.Slots, SlotAvailability{
			SlotID:    slot.ID,
			Label:     slot.Label,
			Available: available,
		})
	}

	uc.logger.Info("Execute: availability for date=%s: %d/%d slots available", req.Date, resp.Available, resp.Total)
	return resp, nil
}
