package list_slots

import "github.com/m04kA/SMC-ParkingService/internal/domain"

// SlotResponse HTTP модель парковочного места
type SlotResponse struct {
	ID    int64  `json:"id"`
	Label string `json:"label"`
}

// SlotListResponse список парковочных мест
type SlotListResponse struct {
	Slots []SlotResponse `json:"slots"`
	Total int            `json:"total"`
}

func fromDomainSlots(slots []*domain.Slot) *SlotListResponse {
	resp := &SlotListResponse{
		Slots: make([]SlotResponse, 0, len(slots)),
		Total: len(slots),
	}
	for _, s := range slots {
		resp.Slots = append(resp.Slots, SlotResponse{
			ID:    s.ID,
			Label: s.Label,
		})
	}
	return resp
}
