package create_booking

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/pkg/types"
)

// validate проверяет запрос на создание бронирования
func validate(req *Request) error {
	if req == nil {
		return fmt.Errorf("%w: request is nil", ErrInvalidInput)
	}

	if req.UserID <= 0 {
		return fmt.Errorf("%w: user id must be positive", ErrInvalidInput)
	}

	if req.SlotID <= 0 {
		return fmt.Errorf("%w: slot id must be positive", ErrInvalidInput)
	}

	date, err := time.Parse(domain.DateFormat, req.Date)
	if err != nil {
		return fmt.Errorf("%w: date must be in format %s", ErrInvalidWindow, domain.DateFormat)
	}

	window := domain.TimeWindow{
		Date:  date,
		Start: types.TimeString(req.StartTime),
		End:   types.TimeString(req.EndTime),
	}
	if err := window.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidWindow, err)
	}

	return nil
}
