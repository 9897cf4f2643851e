package extend_booking

import (
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// Request запрос на продление бронирования
type Request struct {
	BookingID int64
	UserID    int64
	NewEnd    string // "19:00"
}

// Response ответ с бронированием, покрывающим продлённое окно.
// Продление реализовано заменой: исходная бронь отменяется,
// создаётся новая с тем же началом и новым концом.
type Response struct {
	ID          int64  `json:"id"`
	SlotID      int64  `json:"slotId"`
	UserID      int64  `json:"userId"`
	BookingDate string `json:"bookingDate"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	Status      string `json:"status"`

	ReplacedBookingID int64 `json:"replacedBookingId"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func fromDomainBooking(b *domain.Booking, replacedID int64) *Response {
	return &Response{
		ID:                b.ID,
		SlotID:            b.SlotID,
		UserID:            b.UserID,
		BookingDate:       b.BookingDate.Format(domain.DateFormat),
		StartTime:         b.StartTime.String(),
		EndTime:           b.EndTime.String(),
		Status:            string(b.Status),
		ReplacedBookingID: replacedID,
		CreatedAt:         b.CreatedAt,
		UpdatedAt:         b.UpdatedAt,
	}
}
