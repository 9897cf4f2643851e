package list_slots

import (
	"net/http"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
)

type Handler struct {
	slotRepo SlotRepository
	logger   Logger
}

func NewHandler(slotRepo SlotRepository, logger Logger) *Handler {
	return &Handler{
		slotRepo: slotRepo,
		logger:   logger,
	}
}

// Handle GET /api/v1/slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	slots, err := h.slotRepo.List(r.Context())
	if err != nil {
		h.logger.Error("GET /slots - Failed to list slots: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, fromDomainSlots(slots))
}
