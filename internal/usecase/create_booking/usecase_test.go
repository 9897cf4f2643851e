package create_booking

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/pkg/slotlock"
)

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

// fakeBookingRepo потокобезопасное in-memory хранилище бронирований
type fakeBookingRepo struct {
	mu       sync.Mutex
	nextID   int64
	bookings []*domain.Booking
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{nextID: 1}
}

func (r *fakeBookingRepo) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	b.ID = r.nextID
	r.nextID++
	b.CreatedAt = time.Now()
	b.UpdatedAt = b.CreatedAt

	stored := *b
	r.bookings = append(r.bookings, &stored)
	return b, nil
}

func (r *fakeBookingRepo) GetActiveBySlotAndDate(_ context.Context, slotID int64, date time.Time) ([]*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := make([]*domain.Booking, 0)
	for _, b := range r.bookings {
		if b.SlotID == slotID && b.BookingDate.Equal(date) && b.Status == domain.StatusActive {
			result = append(result, b)
		}
	}
	return result, nil
}

type fakeSlotRepo struct {
	known map[int64]bool
}

func (r *fakeSlotRepo) Exists(_ context.Context, id int64) (bool, error) {
	return r.known[id], nil
}

// fakeTxManager выполняет функцию без настоящей транзакции:
// атомарность в тестах обеспечивается пер-слотовой блокировкой
type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeMetrics struct {
	mu      sync.Mutex
	created int
}

func (m *fakeMetrics) IncBookingsCreated() {
	m.mu.Lock()
	m.created++
	m.mu.Unlock()
}

func newTestUseCase(repo *fakeBookingRepo) (*UseCase, *fakeMetrics) {
	m := &fakeMetrics{}
	uc := NewUseCase(
		repo,
		&fakeSlotRepo{known: map[int64]bool{1: true, 2: true}},
		fakeTxManager{},
		slotlock.New(),
		m,
		noopLogger{},
	)
	return uc, m
}

func validRequest() *Request {
	return &Request{
		UserID:    100,
		SlotID:    1,
		Date:      "2024-06-01",
		StartTime: "09:00",
		EndTime:   "11:00",
	}
}

func TestUseCase_Execute_Success(t *testing.T) {
	uc, m := newTestUseCase(newFakeBookingRepo())

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, int64(1), resp.SlotID)
	assert.Equal(t, int64(100), resp.UserID)
	assert.Equal(t, "2024-06-01", resp.BookingDate)
	assert.Equal(t, "09:00", resp.StartTime)
	assert.Equal(t, "11:00", resp.EndTime)
	assert.Equal(t, string(domain.StatusActive), resp.Status)
	assert.Equal(t, 1, m.created)
}

func TestUseCase_Execute_ConflictCarriesBookingID(t *testing.T) {
	uc, m := newTestUseCase(newFakeBookingRepo())

	first, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	overlapping := validRequest()
	overlapping.UserID = 200
	overlapping.StartTime = "10:00"
	overlapping.EndTime = "12:00"

	_, err = uc.Execute(context.Background(), overlapping)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSlotNotAvailable)

	var conflictErr *ConflictError
	require.ErrorAs(t, err, &conflictErr)
	assert.Equal(t, first.ID, conflictErr.BookingID)
	assert.Equal(t, 1, m.created, "conflict must not count as a created booking")
}

func TestUseCase_Execute_HalfOpenBoundary(t *testing.T) {
	uc, _ := newTestUseCase(newFakeBookingRepo())

	morning := validRequest()
	morning.StartTime = "09:00"
	morning.EndTime = "12:00"
	_, err := uc.Execute(context.Background(), morning)
	require.NoError(t, err)

	// Окно, начинающееся ровно в конце предыдущего, не конфликтует
	afternoon := validRequest()
	afternoon.UserID = 200
	afternoon.StartTime = "12:00"
	afternoon.EndTime = "15:00"
	_, err = uc.Execute(context.Background(), afternoon)
	require.NoError(t, err)
}

func TestUseCase_Execute_DifferentSlotsDoNotConflict(t *testing.T) {
	uc, _ := newTestUseCase(newFakeBookingRepo())

	_, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	other := validRequest()
	other.SlotID = 2
	_, err = uc.Execute(context.Background(), other)
	require.NoError(t, err)
}

func TestUseCase_Execute_UnknownSlot(t *testing.T) {
	uc, _ := newTestUseCase(newFakeBookingRepo())

	req := validRequest()
	req.SlotID = 99

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrSlotNotFound)
}

func TestUseCase_Execute_InvalidWindow(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{name: "start after end", mutate: func(r *Request) { r.StartTime = "15:00"; r.EndTime = "09:00" }},
		{name: "start equals end", mutate: func(r *Request) { r.StartTime = "09:00"; r.EndTime = "09:00" }},
		{name: "malformed time", mutate: func(r *Request) { r.StartTime = "9am" }},
		{name: "malformed date", mutate: func(r *Request) { r.Date = "01.06.2024" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, _ := newTestUseCase(newFakeBookingRepo())
			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidWindow)
		})
	}
}

func TestUseCase_Execute_ConcurrentReserveSameWindow(t *testing.T) {
	repo := newFakeBookingRepo()
	uc, m := newTestUseCase(repo)

	const callers = 20
	var wg sync.WaitGroup
	var successes, conflicts int32
	var mu sync.Mutex

	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(userID int64) {
			defer wg.Done()

			req := validRequest()
			req.UserID = userID

			_, err := uc.Execute(context.Background(), req)

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				successes++
			case errors.Is(err, ErrSlotNotAvailable):
				conflicts++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}(int64(100 + i))
	}
	wg.Wait()

	assert.Equal(t, int32(1), successes, "exactly one concurrent reserve must win")
	assert.Equal(t, int32(callers-1), conflicts)

	active, err := repo.GetActiveBySlotAndDate(context.Background(), 1, time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Len(t, active, 1, "store must hold a single active booking")
	assert.Equal(t, 1, m.created)
}
