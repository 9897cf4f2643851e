package create_booking

import (
	createBooking "github.com/m04kA/SMC-ParkingService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	SlotID      int64  `json:"slotId"`
	BookingDate string `json:"bookingDate"` // "2025-10-15"
	StartTime   string `json:"startTime"`   // "09:00"
	EndTime     string `json:"endTime"`     // "17:00"
}

// ConflictResponse ответ при пересечении с существующим бронированием
type ConflictResponse struct {
	Error                string `json:"error"`
	ConflictingBookingID int64  `json:"conflictingBookingId"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(userID int64) *createBooking.Request {
	return &createBooking.Request{
		UserID:    userID,
		SlotID:    r.SlotID,
		Date:      r.BookingDate,
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
	}
}
