package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-ParkingService/pkg/types"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func window(d time.Time, start, end string) TimeWindow {
	return TimeWindow{
		Date:  d,
		Start: types.TimeString(start),
		End:   types.TimeString(end),
	}
}

func TestTimeWindow_Validate(t *testing.T) {
	day := date(2024, time.June, 1)

	tests := []struct {
		name    string
		window  TimeWindow
		wantErr bool
	}{
		{name: "valid window", window: window(day, "09:00", "12:00")},
		{name: "full day", window: window(day, "00:00", "23:59")},
		{name: "zero date", window: window(time.Time{}, "09:00", "12:00"), wantErr: true},
		{name: "start equals end", window: window(day, "09:00", "09:00"), wantErr: true},
		{name: "start after end", window: window(day, "12:00", "09:00"), wantErr: true},
		{name: "malformed start", window: window(day, "9:00", "12:00"), wantErr: true},
		{name: "malformed end", window: window(day, "09:00", "25:00"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.window.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidWindow)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTimeWindow_Overlaps(t *testing.T) {
	day := date(2024, time.June, 1)
	otherDay := date(2024, time.June, 2)

	tests := []struct {
		name string
		a    TimeWindow
		b    TimeWindow
		want bool
	}{
		{name: "identical windows", a: window(day, "09:00", "12:00"), b: window(day, "09:00", "12:00"), want: true},
		{name: "partial overlap", a: window(day, "09:00", "12:00"), b: window(day, "10:00", "14:00"), want: true},
		{name: "containment", a: window(day, "09:00", "17:00"), b: window(day, "10:00", "11:00"), want: true},
		{name: "touching boundaries do not overlap", a: window(day, "09:00", "12:00"), b: window(day, "12:00", "15:00"), want: false},
		{name: "disjoint", a: window(day, "09:00", "10:00"), b: window(day, "14:00", "15:00"), want: false},
		{name: "same times different dates", a: window(day, "09:00", "12:00"), b: window(otherDay, "09:00", "12:00"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Overlaps(tt.b))
			assert.Equal(t, tt.want, tt.b.Overlaps(tt.a), "overlap must be symmetric")
		})
	}
}
