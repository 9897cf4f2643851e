package extend_booking

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-ParkingService/pkg/slotlock"
	"github.com/m04kA/SMC-ParkingService/pkg/types"
)

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

type fakeBookingRepo struct {
	mu       sync.Mutex
	nextID   int64
	bookings map[int64]*domain.Booking
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{nextID: 1, bookings: make(map[int64]*domain.Booking)}
}

func (r *fakeBookingRepo) add(slotID, userID int64, date time.Time, start, end string, status domain.BookingStatus) *domain.Booking {
	r.mu.Lock()
	defer r.mu.Unlock()

	b := &domain.Booking{
		ID:          r.nextID,
		SlotID:      slotID,
		UserID:      userID,
		BookingDate: date,
		StartTime:   types.TimeString(start),
		EndTime:     types.TimeString(end),
		Status:      status,
	}
	r.nextID++
	r.bookings[b.ID] = b
	return b
}

func (r *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	copied := *b
	return &copied, nil
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

func (r *fakeBookingRepo) UpdateStatusIfActive(_ context.Context, id int64, status domain.BookingStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.bookings[id]
	if !ok || b.Status != domain.StatusActive {
		return bookingRepo.ErrBookingNotActive
	}
	b.Status = status
	return nil
}

func (r *fakeBookingRepo) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	b.ID = r.nextID
	r.nextID++
	b.CreatedAt = time.Now()
	b.UpdatedAt = b.CreatedAt

	stored := *b
	r.bookings[b.ID] = &stored
	return b, nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeMetrics struct {
	extended int
}

func (m *fakeMetrics) IncBookingsExtended() {
	m.extended++
}

func newTestUseCase(repo *fakeBookingRepo) (*UseCase, *fakeMetrics) {
	m := &fakeMetrics{}
	return NewUseCase(repo, fakeTxManager{}, slotlock.New(), m, noopLogger{}), m
}

var testDate = time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)

func TestUseCase_Execute_Success(t *testing.T) {
	repo := newFakeBookingRepo()
	original := repo.add(1, 100, testDate, "09:00", "11:00", domain.StatusActive)
	uc, m := newTestUseCase(repo)

	resp, err := uc.Execute(context.Background(), &Request{
		BookingID: original.ID,
		UserID:    100,
		NewEnd:    "13:00",
	})

	require.NoError(t, err)
	assert.Equal(t, 1, m.extended)
	assert.Equal(t, original.ID, resp.ReplacedBookingID)
	assert.NotEqual(t, original.ID, resp.ID)
	assert.Equal(t, "09:00", resp.StartTime)
	assert.Equal(t, "13:00", resp.EndTime)
	assert.Equal(t, string(domain.StatusActive), resp.Status)

	// Исходная бронь отменена, активна только замена
	old, err := repo.GetByID(context.Background(), original.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, old.Status)

	active, err := repo.GetActiveBySlotAndDate(context.Background(), 1, testDate)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, resp.ID, active[0].ID)
}

func TestUseCase_Execute_ConflictLeavesOriginalUntouched(t *testing.T) {
	repo := newFakeBookingRepo()
	original := repo.add(1, 100, testDate, "09:00", "11:00", domain.StatusActive)
	neighbor := repo.add(1, 200, testDate, "12:00", "14:00", domain.StatusActive)
	uc, m := newTestUseCase(repo)

	_, err := uc.Execute(context.Background(), &Request{
		BookingID: original.ID,
		UserID:    100,
		NewEnd:    "13:00",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.Zero(t, m.extended, "failed extension must not be counted")

	var conflictErr *ConflictError
	require.ErrorAs(t, err, &conflictErr)
	assert.Equal(t, neighbor.ID, conflictErr.BookingID)

	// Продление атомарно: при отказе исходная бронь не меняется
	unchanged, err := repo.GetByID(context.Background(), original.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusActive, unchanged.Status)
	assert.Equal(t, types.TimeString("11:00"), unchanged.EndTime)
}

func TestUseCase_Execute_ExtendUpToNeighborBoundary(t *testing.T) {
	repo := newFakeBookingRepo()
	original := repo.add(1, 100, testDate, "09:00", "11:00", domain.StatusActive)
	repo.add(1, 200, testDate, "12:00", "14:00", domain.StatusActive)
	uc, _ := newTestUseCase(repo)

	resp, err := uc.Execute(context.Background(), &Request{
		BookingID: original.ID,
		UserID:    100,
		NewEnd:    "12:00",
	})

	require.NoError(t, err)
	assert.Equal(t, "12:00", resp.EndTime)
}

func TestUseCase_Execute_NotFound(t *testing.T) {
	uc, _ := newTestUseCase(newFakeBookingRepo())

	_, err := uc.Execute(context.Background(), &Request{BookingID: 42, UserID: 100, NewEnd: "13:00"})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestUseCase_Execute_AccessDenied(t *testing.T) {
	repo := newFakeBookingRepo()
	original := repo.add(1, 100, testDate, "09:00", "11:00", domain.StatusActive)
	uc, _ := newTestUseCase(repo)

	_, err := uc.Execute(context.Background(), &Request{BookingID: original.ID, UserID: 999, NewEnd: "13:00"})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestUseCase_Execute_AlreadyTerminal(t *testing.T) {
	repo := newFakeBookingRepo()
	cancelled := repo.add(1, 100, testDate, "09:00", "11:00", domain.StatusCancelled)
	uc, _ := newTestUseCase(repo)

	_, err := uc.Execute(context.Background(), &Request{BookingID: cancelled.ID, UserID: 100, NewEnd: "13:00"})
	assert.ErrorIs(t, err, ErrAlreadyTerminal)
}

func TestUseCase_Execute_NewEndMustExtend(t *testing.T) {
	repo := newFakeBookingRepo()
	original := repo.add(1, 100, testDate, "09:00", "11:00", domain.StatusActive)
	uc, _ := newTestUseCase(repo)

	for _, newEnd := range []string{"11:00", "10:00", "9pm"} {
		_, err := uc.Execute(context.Background(), &Request{BookingID: original.ID, UserID: 100, NewEnd: newEnd})
		assert.ErrorIs(t, err, ErrInvalidWindow, "newEnd=%s", newEnd)
	}
}
