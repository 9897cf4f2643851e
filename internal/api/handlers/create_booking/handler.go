package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	"github.com/m04kA/SMC-ParkingService/internal/api/middleware"
	createBooking "github.com/m04kA/SMC-ParkingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidWindow      = "некорректное временное окно бронирования"
	msgSlotNotFound       = "парковочное место не найдено"
	msgSlotNotAvailable   = "парковочное место занято в выбранное время"
	msgUnauthorized       = "требуется аутентификация"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(userID))
	if err != nil {
		var conflictErr *createBooking.ConflictError
		switch {
		case errors.As(err, &conflictErr):
			h.logger.Warn("POST /bookings - Slot not available: user_id=%d, slot_id=%d, conflicting_booking_id=%d",
				userID, req.SlotID, conflictErr.BookingID)
			handlers.RespondJSON(w, http.StatusConflict, ConflictResponse{
				Error:                msgSlotNotAvailable,
				ConflictingBookingID: conflictErr.BookingID,
			})

		case errors.Is(err, createBooking.ErrSlotNotAvailable):
			h.logger.Warn("POST /bookings - Slot not available: user_id=%d, slot_id=%d", userID, req.SlotID)
			handlers.RespondError(w, http.StatusConflict, msgSlotNotAvailable)

		case errors.Is(err, createBooking.ErrSlotNotFound):
			h.logger.Warn("POST /bookings - Slot not found: slot_id=%d", req.SlotID)
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, createBooking.ErrInvalidWindow), errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid window: user_id=%d, slot_id=%d, error=%v", userID, req.SlotID, err)
			handlers.RespondBadRequest(w, msgInvalidWindow)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: user_id=%d, slot_id=%d, error=%v",
				userID, req.SlotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, user_id=%d, slot_id=%d",
		result.ID, userID, req.SlotID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
