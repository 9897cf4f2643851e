package maintenance

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ParkingService/pkg/types"
)

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

type fakeBookingRepo struct {
	gotToday time.Time
	gotNow   types.TimeString
	result   int64
	err      error
	calls    int
}

func (r *fakeBookingRepo) CompleteElapsed(_ context.Context, today time.Time, now types.TimeString) (int64, error) {
	r.calls++
	r.gotToday = today
	r.gotNow = now
	return r.result, r.err
}

type fixedTimeProvider struct {
	now time.Time
}

func (p fixedTimeProvider) Now() time.Time {
	return p.now
}

type fakeMetrics struct {
	swept int64
}

func (m *fakeMetrics) AddBookingsSwept(n int64) {
	m.swept += n
}

func TestService_SweepElapsed(t *testing.T) {
	repo := &fakeBookingRepo{result: 3}
	m := &fakeMetrics{}
	now := time.Date(2024, time.June, 1, 14, 30, 0, 0, time.UTC)
	svc := NewService(repo, fixedTimeProvider{now: now}, m, noopLogger{})

	completed, err := svc.SweepElapsed(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(3), completed)
	assert.Equal(t, int64(3), m.swept)
	assert.Equal(t, time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC), repo.gotToday)
	assert.Equal(t, types.TimeString("14:30"), repo.gotNow)
}

func TestService_SweepElapsed_NothingToComplete(t *testing.T) {
	repo := &fakeBookingRepo{result: 0}
	m := &fakeMetrics{}
	svc := NewService(repo, fixedTimeProvider{now: time.Now()}, m, noopLogger{})

	completed, err := svc.SweepElapsed(context.Background())

	require.NoError(t, err)
	assert.Zero(t, completed)
	assert.Zero(t, m.swept)
}

func TestService_SweepElapsed_RepositoryError(t *testing.T) {
	repo := &fakeBookingRepo{err: errors.New("connection refused")}
	svc := NewService(repo, fixedTimeProvider{now: time.Now()}, &fakeMetrics{}, noopLogger{})

	_, err := svc.SweepElapsed(context.Background())
	assert.ErrorIs(t, err, ErrInternal)
}

func TestService_Run_SwallowsErrors(t *testing.T) {
	repo := &fakeBookingRepo{err: errors.New("connection refused")}
	svc := NewService(repo, fixedTimeProvider{now: time.Now()}, &fakeMetrics{}, noopLogger{})

	// Не должен паниковать и должен дойти до репозитория
	svc.Run(context.Background())
	assert.Equal(t, 1, repo.calls)
}
