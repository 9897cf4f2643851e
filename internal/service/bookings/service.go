package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-ParkingService/internal/service/bookings/models"
)

// Service сервис для работы с существующими бронированиями:
// просмотр, история пользователя и отмена. Создание и продление
// живут в отдельных usecase, потому что требуют пер-слотовой блокировки.
type Service struct {
	bookingRepo BookingRepository
	metrics     Metrics
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, metrics Metrics, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		metrics:     metrics,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID.
// Пользователь может видеть только собственные бронирования.
func (s *Service) GetByID(ctx context.Context, id int64, userID int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for user=%d", id, userID)

	b, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if b.UserID != userID {
		s.logger.Warn("GetByID: access denied for user=%d to booking id=%d", userID, id)
		return nil, ErrAccessDenied
	}

	return models.FromDomainBooking(b), nil
}

// GetUserBookings получает историю бронирований пользователя,
// сначала самые свежие. Опционально фильтрует по статусу.
func (s *Service) GetUserBookings(ctx context.Context, req *models.GetUserBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetUserBookings: fetching bookings for user=%d, status=%v", req.UserID, req.Status)

	var domainStatus *domain.BookingStatus
	if req.Status != nil {
		status, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetUserBookings: invalid status=%s for user=%d", *req.Status, req.UserID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	bookings, err := s.bookingRepo.GetByUserID(ctx, req.UserID, domainStatus)
	if err != nil {
		s.logger.Error("GetUserBookings: repository error for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: GetUserBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserBookings: successfully fetched %d bookings for user=%d", len(bookings), req.UserID)
	return models.FromDomainBookingList(bookings), nil
}

// Cancel отменяет бронирование.
// Порядок проверок: существование -> владение -> терминальность.
// Сам перевод статуса выполняется compare-and-set'ом в хранилище,
// поэтому гонка с конкурентной отменой или sweep'ом разрешается
// корректно: второй участник получает ErrAlreadyTerminal.
func (s *Service) Cancel(ctx context.Context, bookingID int64, req *models.CancelBookingRequest) error {
	s.logger.Info("Cancel: cancelling booking id=%d by user=%d", bookingID, req.UserID)

	b, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%d not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if b.UserID != req.UserID {
		s.logger.Warn("Cancel: access denied for user=%d to cancel booking id=%d", req.UserID, bookingID)
		return ErrAccessDenied
	}

	if b.IsTerminal() {
		s.logger.Warn("Cancel: booking id=%d is already terminal, status=%s", bookingID, b.Status)
		return ErrAlreadyTerminal
	}

	err = s.bookingRepo.UpdateStatusIfActive(ctx, bookingID, domain.StatusCancelled)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotActive) {
			// Проиграли гонку конкурентной отмене или sweep'у
			s.logger.Warn("Cancel: booking id=%d became terminal concurrently", bookingID)
			return ErrAlreadyTerminal
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.metrics.IncBookingsCancelled()
	s.logger.Info("Cancel: successfully cancelled booking id=%d", bookingID)
	return nil
}
