package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ParkingService/pkg/types"
)

var (
	// ErrInvalidWindow возвращается при некорректном временном окне
	ErrInvalidWindow = errors.New("domain: invalid time window")
)

// TimeWindow окно бронирования: дата плюс время начала и конца.
// Время интерпретируется в фиксированной таймзоне парковки,
// окна через полночь не поддерживаются.
type TimeWindow struct {
	Date  time.Time
	Start types.TimeString
	End   types.TimeString
}

// Validate проверяет, что окно корректно: дата задана, времена в формате
// "HH:MM" и Start строго раньше End (нулевая длительность запрещена)
func (w TimeWindow) Validate() error {
	if w.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidWindow)
	}
	if err := w.Start.Validate(); err != nil {
		return fmt.Errorf("%w: start: %v", ErrInvalidWindow, err)
	}
	if err := w.End.Validate(); err != nil {
		return fmt.Errorf("%w: end: %v", ErrInvalidWindow, err)
	}
	if !w.Start.IsBefore(w.End) {
		return fmt.Errorf("%w: start %s must be before end %s", ErrInvalidWindow, w.Start, w.End)
	}
	return nil
}

// Overlaps возвращает true, если окна пересекаются.
// Интервалы полуоткрытые: бронь до 17:00 не конфликтует с бронью с 17:00.
// Окна на разные даты не пересекаются никогда.
func (w TimeWindow) Overlaps(other TimeWindow) bool {
	if !sameDate(w.Date, other.Date) {
		return false
	}
	return w.Start.IsBefore(other.End) && other.Start.IsBefore(w.End)
}

func sameDate(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
