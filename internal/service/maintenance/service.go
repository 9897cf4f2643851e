package maintenance

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/pkg/types"
)

// Service фоновое обслуживание бронирований: перевод истёкших
// активных броней в completed. Запускается по расписанию и один раз
// при старте сервиса; каждый запуск идемпотентен.
type Service struct {
	bookingRepo  BookingRepository
	timeProvider TimeProvider
	metrics      Metrics
	logger       Logger
}

// RealTimeProvider возвращает текущее время в заданной таймзоне парковки
type RealTimeProvider struct {
	Location *time.Location
}

func (p RealTimeProvider) Now() time.Time {
	return time.Now().In(p.Location)
}

// NewService создает новый экземпляр сервиса обслуживания
func NewService(bookingRepo BookingRepository, timeProvider TimeProvider, metrics Metrics, logger Logger) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		timeProvider: timeProvider,
		metrics:      metrics,
		logger:       logger,
	}
}

// SweepElapsed переводит в completed все активные бронирования,
// окно которых полностью прошло. Возвращает количество завершённых.
func (s *Service) SweepElapsed(ctx context.Context) (int64, error) {
	now := s.timeProvider.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	nowTime := types.NewTimeString(now)

	completed, err := s.bookingRepo.CompleteElapsed(ctx, today, nowTime)
	if err != nil {
		s.logger.Error("SweepElapsed: repository error: %v", err)
		return 0, fmt.Errorf("%w: SweepElapsed - repository error: %v", ErrInternal, err)
	}

	if completed > 0 {
		s.metrics.AddBookingsSwept(completed)
		s.logger.Info("SweepElapsed: completed %d elapsed bookings as of %s %s", completed, today.Format(domain.DateFormat), nowTime)
	}

	return completed, nil
}

// Run выполняет один проход sweep'а, проглатывая ошибку.
// Используется как cron job: сбой одного прохода не должен
// останавливать процесс, следующий запуск повторит работу.
func (s *Service) Run(ctx context.Context) {
	if _, err := s.SweepElapsed(ctx); err != nil {
		s.logger.Warn("Run: sweep pass failed, will retry on next tick: %v", err)
	}
}
