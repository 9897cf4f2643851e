package create_booking

import (
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/pkg/types"
)

// Request запрос на создание бронирования
type Request struct {
	UserID    int64
	SlotID    int64
	Date      string // "2025-10-15"
	StartTime string // "09:00"
	EndTime   string // "17:00"
}

// Response ответ с созданным бронированием
type Response struct {
	ID          int64  `json:"id"`
	SlotID      int64  `json:"slotId"`
	UserID      int64  `json:"userId"`
	BookingDate string `json:"bookingDate"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	Status      string `json:"status"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// toDomainWindow собирает доменное временное окно из запроса.
// Ошибки формата дат/времени здесь не возникают: запрос уже прошёл validate.
func (r *Request) toDomainWindow() (domain.TimeWindow, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return domain.TimeWindow{}, err
	}

	return domain.TimeWindow{
		Date:  date,
		Start: types.TimeString(r.StartTime),
		End:   types.TimeString(r.EndTime),
	}, nil
}

func fromDomainBooking(b *domain.Booking) *Response {
	return &Response{
		ID:          b.ID,
		SlotID:      b.SlotID,
		UserID:      b.UserID,
		BookingDate: b.BookingDate.Format(domain.DateFormat),
		StartTime:   b.StartTime.String(),
		EndTime:     b.EndTime.String(),
		Status:      string(b.Status),
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}
