package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-ParkingService/pkg/types"
)

func booking(id int64, d time.Time, start, end string, status BookingStatus) *Booking {
	return &Booking{
		ID:          id,
		SlotID:      1,
		UserID:      100,
		BookingDate: d,
		StartTime:   types.TimeString(start),
		EndTime:     types.TimeString(end),
		Status:      status,
	}
}

func TestFirstConflict(t *testing.T) {
	day := date(2024, time.June, 1)

	existing := []*Booking{
		booking(1, day, "09:00", "11:00", StatusActive),
		booking(2, day, "13:00", "15:00", StatusActive),
		booking(3, day, "16:00", "18:00", StatusCancelled),
	}

	t.Run("overlap with first booking", func(t *testing.T) {
		conflict := FirstConflict(existing, window(day, "10:00", "12:00"), 0)
		assert.NotNil(t, conflict)
		assert.Equal(t, int64(1), conflict.ID)
	})

	t.Run("gap between bookings is free", func(t *testing.T) {
		assert.Nil(t, FirstConflict(existing, window(day, "11:00", "13:00"), 0))
	})

	t.Run("cancelled booking does not conflict", func(t *testing.T) {
		assert.Nil(t, FirstConflict(existing, window(day, "16:00", "18:00"), 0))
	})

	t.Run("earliest conflict wins", func(t *testing.T) {
		conflict := FirstConflict(existing, window(day, "10:00", "14:00"), 0)
		assert.NotNil(t, conflict)
		assert.Equal(t, int64(1), conflict.ID)
	})

	t.Run("excluded booking is skipped", func(t *testing.T) {
		assert.Nil(t, FirstConflict(existing, window(day, "09:00", "11:00"), 1))
	})

	t.Run("exclusion does not hide other conflicts", func(t *testing.T) {
		conflict := FirstConflict(existing, window(day, "09:00", "14:00"), 1)
		assert.NotNil(t, conflict)
		assert.Equal(t, int64(2), conflict.ID)
	})

	t.Run("empty set never conflicts", func(t *testing.T) {
		assert.Nil(t, FirstConflict(nil, window(day, "00:00", "23:59"), 0))
	})
}

func TestBooking_ElapsedBy(t *testing.T) {
	day := date(2024, time.June, 1)
	b := booking(1, day, "09:00", "11:00", StatusActive)

	assert.True(t, b.ElapsedBy(date(2024, time.June, 2), "00:00"), "past date")
	assert.False(t, b.ElapsedBy(date(2024, time.May, 31), "23:59"), "future date")
	assert.False(t, b.ElapsedBy(day, "10:59"), "window still running")
	assert.True(t, b.ElapsedBy(day, "11:00"), "end time reached")
	assert.True(t, b.ElapsedBy(day, "12:00"), "window passed")
}

func TestBooking_StatusPredicates(t *testing.T) {
	day := date(2024, time.June, 1)

	active := booking(1, day, "09:00", "11:00", StatusActive)
	assert.True(t, active.IsActive())
	assert.False(t, active.IsTerminal())

	cancelled := booking(2, day, "09:00", "11:00", StatusCancelled)
	assert.False(t, cancelled.IsActive())
	assert.True(t, cancelled.IsTerminal())

	completed := booking(3, day, "09:00", "11:00", StatusCompleted)
	assert.False(t, completed.IsActive())
	assert.True(t, completed.IsTerminal())
}
