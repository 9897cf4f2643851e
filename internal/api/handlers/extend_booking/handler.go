package extend_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	"github.com/m04kA/SMC-ParkingService/internal/api/middleware"
	extendBooking "github.com/m04kA/SMC-ParkingService/internal/usecase/extend_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidBookingID   = "некорректный идентификатор бронирования"
	msgInvalidNewEnd      = "некорректное новое время окончания"
	msgBookingNotFound    = "бронирование не найдено"
	msgAccessDenied       = "нет доступа к этому бронированию"
	msgAlreadyTerminal    = "бронирование уже завершено или отменено"
	msgSlotNotAvailable   = "парковочное место занято в продлённое время"
	msgUnauthorized       = "требуется аутентификация"
)

type Handler struct {
	useCase ExtendBookingUseCase
	logger  Logger
}

func NewHandler(useCase ExtendBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/bookings/{bookingId}/extend
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	vars := mux.Vars(r)
	bookingID, err := strconv.ParseInt(vars["bookingId"], 10, 64)
	if err != nil || bookingID <= 0 {
		h.logger.Warn("PATCH /bookings/{id}/extend - Invalid booking id: %s", vars["bookingId"])
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req ExtendBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /bookings/{id}/extend - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &extendBooking.Request{
		BookingID: bookingID,
		UserID:    userID,
		NewEnd:    req.NewEndTime,
	})
	if err != nil {
		var conflictErr *extendBooking.ConflictError
		switch {
		case errors.As(err, &conflictErr):
			h.logger.Warn("PATCH /bookings/{id}/extend - Slot not available: booking_id=%d, conflicting_booking_id=%d",
				bookingID, conflictErr.BookingID)
			handlers.RespondJSON(w, http.StatusConflict, ConflictResponse{
				Error:                msgSlotNotAvailable,
				ConflictingBookingID: conflictErr.BookingID,
			})

		case errors.Is(err, extendBooking.ErrBookingNotFound):
			h.logger.Warn("PATCH /bookings/{id}/extend - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, extendBooking.ErrAccessDenied):
			h.logger.Warn("PATCH /bookings/{id}/extend - Access denied: booking_id=%d, user_id=%d", bookingID, userID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, extendBooking.ErrAlreadyTerminal):
			h.logger.Warn("PATCH /bookings/{id}/extend - Already terminal: booking_id=%d", bookingID)
			handlers.RespondError(w, http.StatusConflict, msgAlreadyTerminal)

		case errors.Is(err, extendBooking.ErrInvalidWindow), errors.Is(err, extendBooking.ErrInvalidInput):
			h.logger.Warn("PATCH /bookings/{id}/extend - Invalid new end: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondBadRequest(w, msgInvalidNewEnd)

		default:
			h.logger.Error("PATCH /bookings/{id}/extend - Failed to extend booking: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /bookings/{id}/extend - Booking extended successfully: booking_id=%d, replacement_id=%d",
		bookingID, result.ID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
