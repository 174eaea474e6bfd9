package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/Leganyst/barber-booking/internal/model"
)

type failingNotifier struct {
	panicOnStatus bool
}

func (failingNotifier) NotifyBookingCreated(context.Context, model.Booking) error {
	return errors.New("smtp down")
}

func (n failingNotifier) NotifyStatusChanged(context.Context, model.Booking, model.BookingStatus, model.BookingStatus) error {
	if n.panicOnStatus {
		panic("boom")
	}
	return errors.New("smtp down")
}

type blockingNotifier struct {
	release chan struct{}
	done    chan error
}

func (n blockingNotifier) NotifyBookingCreated(ctx context.Context, _ model.Booking) error {
	select {
	case <-n.release:
		n.done <- ctx.Err()
	case <-ctx.Done():
		n.done <- ctx.Err()
	}
	return nil
}

func (blockingNotifier) NotifyStatusChanged(context.Context, model.Booking, model.BookingStatus, model.BookingStatus) error {
	return nil
}

func TestNotifierFailureDoesNotRollback(t *testing.T) {
	env := newTestEnv(t)
	core, logs := observer.New(zapcore.WarnLevel)
	env.svc.notify = NewDispatcher(failingNotifier{panicOnStatus: true}, zap.New(core), time.Second)
	ctx := context.Background()

	b, err := env.svc.RequestBooking(ctx, BookingRequest{
		Customer: "alice", Service: "haircut", Barber: "joe", Date: "2024-06-01", Time: "10:00",
	})
	require.NoError(t, err)

	_, err = env.svc.SetStatus(ctx, b.ID, "confirmed")
	require.NoError(t, err)
	env.settle()

	stored, err := env.svc.GetBooking(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, model.BookingStatusConfirmed, stored.Status)

	entries := logs.FilterMessage("notification failed").All()
	require.Len(t, entries, 2)
	events := []string{
		entries[0].ContextMap()["event"].(string),
		entries[1].ContextMap()["event"].(string),
	}
	assert.ElementsMatch(t, []string{"booking_created", "booking_status_changed"}, events)
	for _, e := range entries {
		assert.Equal(t, b.ID.String(), e.ContextMap()["booking_id"])
	}
}

func TestDispatcher_DoesNotBlockCaller(t *testing.T) {
	n := blockingNotifier{release: make(chan struct{}), done: make(chan error, 1)}
	d := NewDispatcher(n, zap.NewNop(), time.Minute)

	ctx, cancel := context.WithCancel(context.Background())
	d.BookingCreated(ctx, model.Booking{})
	// отмена запроса не должна обрывать доставку
	cancel()
	close(n.release)

	d.Wait()
	assert.NoError(t, <-n.done)
}

func TestDispatcher_Timeout(t *testing.T) {
	n := blockingNotifier{release: make(chan struct{}), done: make(chan error, 1)}
	d := NewDispatcher(n, zap.NewNop(), 20*time.Millisecond)

	d.BookingCreated(context.Background(), model.Booking{})
	d.Wait()
	assert.ErrorIs(t, <-n.done, context.DeadlineExceeded)
}

func TestNewDispatcher_Defaults(t *testing.T) {
	d := NewDispatcher(nil, zap.NewNop(), 0)
	assert.Equal(t, DefaultNotifyTimeout, d.timeout)
	d.StatusChanged(context.Background(), model.Booking{}, model.BookingStatusPending, model.BookingStatusConfirmed)
	d.Wait()
}
