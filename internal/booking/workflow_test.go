package booking

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/Leganyst/barber-booking/internal/model"
	"github.com/Leganyst/barber-booking/internal/repository"
	"github.com/Leganyst/barber-booking/internal/utils"
)

func TestSetStatus_NotifiesOnChange(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	b := env.book(t, "alice", "joe", "2024-06-01", "10:00")

	got, err := env.svc.SetStatus(ctx, b.ID, "confirmed")
	require.NoError(t, err)
	assert.Equal(t, model.BookingStatusConfirmed, got.Status)
	env.settle()

	changes := env.notifier.Changes()
	require.Len(t, changes, 1)
	assert.Equal(t, statusChange{ID: b.ID.String(), From: model.BookingStatusPending, To: model.BookingStatusConfirmed}, changes[0])
}

func TestSetStatus_SameStatusIsNoop(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	b := env.book(t, "alice", "joe", "2024-06-01", "10:00")

	first, err := env.svc.SetStatus(ctx, b.ID, "confirmed")
	require.NoError(t, err)
	second, err := env.svc.SetStatus(ctx, b.ID, "confirmed")
	require.NoError(t, err)
	third, err := env.svc.SetStatus(ctx, b.ID, "confirmed")
	require.NoError(t, err)
	env.settle()

	assert.Equal(t, first.Status, second.Status)
	assert.Equal(t, second.Status, third.Status)
	assert.Equal(t, first.UpdatedAt.Unix(), third.UpdatedAt.Unix())
	assert.Len(t, env.notifier.Changes(), 1)
}

func TestSetStatus_AnyTransitionAllowed(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	b := env.book(t, "alice", "joe", "2024-06-01", "10:00")

	for _, st := range []string{"completed", "pending", "cancelled", "confirmed", "pending"} {
		got, err := env.svc.SetStatus(ctx, b.ID, st)
		require.NoError(t, err, st)
		assert.Equal(t, model.BookingStatus(st), got.Status)
	}
	env.settle()
	assert.Len(t, env.notifier.Changes(), 5)
}

func TestSetStatus_Errors(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	b := env.book(t, "alice", "joe", "2024-06-01", "10:00")

	_, err := env.svc.SetStatus(ctx, b.ID, "done")
	require.ErrorIs(t, err, ErrValidation)

	// литералы регистрозависимы
	_, err = env.svc.SetStatus(ctx, b.ID, "Confirmed")
	require.ErrorIs(t, err, ErrValidation)

	_, err = env.svc.SetStatus(ctx, uuid.New(), "confirmed")
	require.ErrorIs(t, err, ErrNotFound)

	env.settle()
	assert.Empty(t, env.notifier.Changes())
}

func TestSetStatus_ReactivateIntoTakenSlot(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	first := env.book(t, "alice", "joe", "2024-06-01", "10:00")
	_, err := env.svc.SetStatus(ctx, first.ID, "cancelled")
	require.NoError(t, err)
	env.book(t, "bob", "joe", "2024-06-01", "10:00")

	_, err = env.svc.SetStatus(ctx, first.ID, "confirmed")
	require.ErrorIs(t, err, ErrSlotTaken)

	stored, err := env.svc.GetBooking(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, model.BookingStatusCancelled, stored.Status)
}

func TestSetSchedule(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	b := env.book(t, "alice", "joe", "2024-06-01", "10:00")

	moved, err := env.svc.SetSchedule(ctx, b.ID, "02/06/2024", "11:30")
	require.NoError(t, err)
	assert.Equal(t, "2024-06-02", utils.FormatDate(moved.Date))
	assert.Equal(t, datatypes.NewTime(11, 30, 0, 0), moved.Time)
	assert.Equal(t, model.BookingStatusPending, moved.Status)

	// старый слот освободился
	env.book(t, "bob", "joe", "2024-06-01", "10:00")

	env.settle()
	assert.Empty(t, env.notifier.Changes())
}

func TestSetSchedule_OntoActiveSlotRejectedByStorage(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.book(t, "alice", "joe", "2024-06-01", "10:00")
	b := env.book(t, "bob", "joe", "2024-06-01", "11:00")

	_, err := env.svc.SetSchedule(ctx, b.ID, "2024-06-01", "10:00")
	require.ErrorIs(t, err, ErrSlotTaken)

	_, err = env.svc.SetSchedule(ctx, b.ID, "2024-06-01", "")
	require.ErrorIs(t, err, ErrValidation)

	_, err = env.svc.SetSchedule(ctx, uuid.New(), "2024-06-01", "12:00")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateBooking(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	b := env.book(t, "alice", "joe", "2024-06-01", "10:00")

	upd := BookingUpdate{
		Customer: "alice",
		Service:  "beard trim",
		Barber:   "ann",
		Date:     "2024-06-03",
		Time:     "09:15",
		Note:     "updated",
	}
	got, err := env.svc.UpdateBooking(ctx, b.ID, upd)
	require.NoError(t, err)
	assert.Equal(t, "beard trim", got.Service)
	assert.Equal(t, "ann", got.Barber)
	assert.Equal(t, model.BookingStatusPending, got.Status)
	env.settle()
	assert.Empty(t, env.notifier.Changes(), "status untouched")

	upd.Status = "pending"
	_, err = env.svc.UpdateBooking(ctx, b.ID, upd)
	require.NoError(t, err)
	env.settle()
	assert.Empty(t, env.notifier.Changes(), "same status")

	upd.Status = "confirmed"
	got, err = env.svc.UpdateBooking(ctx, b.ID, upd)
	require.NoError(t, err)
	assert.Equal(t, model.BookingStatusConfirmed, got.Status)
	env.settle()
	require.Len(t, env.notifier.Changes(), 1)

	upd.Status = "unknown"
	_, err = env.svc.UpdateBooking(ctx, b.ID, upd)
	require.ErrorIs(t, err, ErrValidation)

	upd.Status = ""
	upd.Service = ""
	_, err = env.svc.UpdateBooking(ctx, b.ID, upd)
	require.ErrorIs(t, err, ErrValidation)

	upd.Service = "haircut"
	_, err = env.svc.UpdateBooking(ctx, uuid.New(), upd)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteBooking(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	b := env.book(t, "alice", "joe", "2024-06-01", "10:00")

	require.NoError(t, env.svc.DeleteBooking(ctx, b.ID))
	_, err := env.svc.GetBooking(ctx, b.ID)
	require.ErrorIs(t, err, ErrBookingNotFound)

	require.ErrorIs(t, env.svc.DeleteBooking(ctx, b.ID), ErrNotFound)

	env.settle()
	assert.Empty(t, env.notifier.Changes())
}

// interleavedBookings выполняет hook перед записью статуса или переноса,
// имитируя параллельный запрос, успевший между чтением и записью.
type interleavedBookings struct {
	*repository.GormBookingRepository
	beforeStatus   func()
	beforeSchedule func()
}

func (r *interleavedBookings) UpdateStatus(ctx context.Context, id uuid.UUID, from, to model.BookingStatus) (bool, error) {
	if hook := r.beforeStatus; hook != nil {
		r.beforeStatus = nil
		hook()
	}
	return r.GormBookingRepository.UpdateStatus(ctx, id, from, to)
}

func (r *interleavedBookings) UpdateSchedule(ctx context.Context, id uuid.UUID, date datatypes.Date, tm datatypes.Time) error {
	if hook := r.beforeSchedule; hook != nil {
		r.beforeSchedule = nil
		hook()
	}
	return r.GormBookingRepository.UpdateSchedule(ctx, id, date, tm)
}

func (e *testEnv) interleaved() (*Service, *interleavedBookings) {
	repo := &interleavedBookings{GormBookingRepository: e.bookings}
	return NewService(repo, e.reviews, e.svc.notify, zap.NewNop()), repo
}

func TestSetSchedule_KeepsConcurrentStatusChange(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	b := env.book(t, "alice", "joe", "2024-06-01", "10:00")

	svc, repo := env.interleaved()
	repo.beforeSchedule = func() {
		_, err := env.svc.SetStatus(ctx, b.ID, "completed")
		require.NoError(t, err)
	}

	moved, err := svc.SetSchedule(ctx, b.ID, "2024-06-02", "11:00")
	require.NoError(t, err)
	assert.Equal(t, model.BookingStatusCompleted, moved.Status)
	assert.Equal(t, "2024-06-02", utils.FormatDate(moved.Date))

	stored, err := env.svc.GetBooking(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, model.BookingStatusCompleted, stored.Status)

	env.settle()
	changes := env.notifier.Changes()
	require.Len(t, changes, 1)
	assert.Equal(t, model.BookingStatusCompleted, changes[0].To)
}

func TestSetStatus_KeepsConcurrentReschedule(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	b := env.book(t, "alice", "joe", "2024-06-01", "10:00")

	svc, repo := env.interleaved()
	repo.beforeStatus = func() {
		_, err := env.svc.SetSchedule(ctx, b.ID, "2024-06-02", "11:00")
		require.NoError(t, err)
	}

	got, err := svc.SetStatus(ctx, b.ID, "confirmed")
	require.NoError(t, err)
	assert.Equal(t, model.BookingStatusConfirmed, got.Status)
	assert.Equal(t, "2024-06-02", utils.FormatDate(got.Date))
	assert.Equal(t, datatypes.NewTime(11, 0, 0, 0), got.Time)

	stored, err := env.svc.GetBooking(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, "2024-06-02", utils.FormatDate(stored.Date))
	assert.Equal(t, model.BookingStatusConfirmed, stored.Status)
}

func TestSetStatus_ConcurrentSameStatusNotifiesOnce(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	b := env.book(t, "alice", "joe", "2024-06-01", "10:00")

	svc, repo := env.interleaved()
	repo.beforeStatus = func() {
		_, err := env.svc.SetStatus(ctx, b.ID, "confirmed")
		require.NoError(t, err)
	}

	got, err := svc.SetStatus(ctx, b.ID, "confirmed")
	require.NoError(t, err)
	assert.Equal(t, model.BookingStatusConfirmed, got.Status)

	env.settle()
	assert.Len(t, env.notifier.Changes(), 1)
}

func TestSetStatus_ConcurrentDifferentStatusConflicts(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	b := env.book(t, "alice", "joe", "2024-06-01", "10:00")

	svc, repo := env.interleaved()
	repo.beforeStatus = func() {
		_, err := env.svc.SetStatus(ctx, b.ID, "cancelled")
		require.NoError(t, err)
	}

	_, err := svc.SetStatus(ctx, b.ID, "confirmed")
	require.ErrorIs(t, err, ErrStatusChanged)
	require.ErrorIs(t, err, ErrConflict)

	stored, err := env.svc.GetBooking(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, model.BookingStatusCancelled, stored.Status)

	env.settle()
	changes := env.notifier.Changes()
	require.Len(t, changes, 1)
	assert.Equal(t, model.BookingStatusCancelled, changes[0].To)
}

func TestSetStatus_ParallelCallsNotifyOnce(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	b := env.book(t, "alice", "joe", "2024-06-01", "10:00")

	const workers = 8
	var wg sync.WaitGroup
	errs := make([]error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = env.svc.SetStatus(ctx, b.ID, "confirmed")
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		require.NoError(t, err)
	}
	env.settle()
	assert.Len(t, env.notifier.Changes(), 1)
}
