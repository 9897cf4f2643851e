package cancel_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	"github.com/m04kA/SMC-ParkingService/internal/api/middleware"
	"github.com/m04kA/SMC-ParkingService/internal/service/bookings"
	"github.com/m04kA/SMC-ParkingService/internal/service/bookings/models"
)

const (
	msgInvalidBookingID = "некорректный идентификатор бронирования"
	msgBookingNotFound  = "бронирование не найдено"
	msgAccessDenied     = "нет доступа к этому бронированию"
	msgAlreadyTerminal  = "бронирование уже завершено или отменено"
	msgUnauthorized     = "требуется аутентификация"
)

type Handler struct {
	service BookingsService
	logger  Logger
}

func NewHandler(service BookingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/bookings/{bookingId}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	vars := mux.Vars(r)
	bookingID, err := strconv.ParseInt(vars["bookingId"], 10, 64)
	if err != nil || bookingID <= 0 {
		h.logger.Warn("PATCH /bookings/{id}/cancel - Invalid booking id: %s", vars["bookingId"])
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	err = h.service.Cancel(r.Context(), bookingID, &models.CancelBookingRequest{UserID: userID})
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("PATCH /bookings/{id}/cancel - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("PATCH /bookings/{id}/cancel - Access denied: booking_id=%d, user_id=%d", bookingID, userID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, bookings.ErrAlreadyTerminal):
			h.logger.Warn("PATCH /bookings/{id}/cancel - Already terminal: booking_id=%d", bookingID)
			handlers.RespondError(w, http.StatusConflict, msgAlreadyTerminal)

		default:
			h.logger.Error("PATCH /bookings/{id}/cancel - Failed to cancel booking: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /bookings/{id}/cancel - Booking cancelled successfully: booking_id=%d, user_id=%d", bookingID, userID)
	handlers.RespondJSON(w, http.StatusOK, map[string]string{"status": "cancelled"})
}
