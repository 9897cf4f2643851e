package extend_booking

import (
	"fmt"

	"github.com/m04kA/SMC-ParkingService/pkg/types"
)

// validate проверяет запрос на продление и возвращает распарсенное
// новое время окончания
func validate(req *Request) (types.TimeString, error) {
	if req == nil {
		return "", fmt.Errorf("%w: request is nil", ErrInvalidInput)
	}

	if req.BookingID <= 0 {
		return "", fmt.Errorf("%w: booking id must be positive", ErrInvalidInput)
	}

	if req.UserID <= 0 {
		return "", fmt.Errorf("%w: user id must be positive", ErrInvalidInput)
	}

	newEnd, err := types.NewTimeStringFromString(req.NewEnd)
	if err != nil {
		return "", fmt.Errorf("%w: new end: %v", ErrInvalidWindow, err)
	}

	return newEnd, nil
}
