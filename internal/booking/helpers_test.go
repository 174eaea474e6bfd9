package booking

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Leganyst/barber-booking/internal/db"
	"github.com/Leganyst/barber-booking/internal/model"
	"github.com/Leganyst/barber-booking/internal/repository"
)

type statusChange struct {
	ID       string
	From, To model.BookingStatus
}

type recordingNotifier struct {
	mu      sync.Mutex
	created []model.Booking
	changes []statusChange
}

func (n *recordingNotifier) NotifyBookingCreated(_ context.Context, b model.Booking) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.created = append(n.created, b)
	return nil
}

func (n *recordingNotifier) NotifyStatusChanged(_ context.Context, b model.Booking, from, to model.BookingStatus) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.changes = append(n.changes, statusChange{ID: b.ID.String(), From: from, To: to})
	return nil
}

func (n *recordingNotifier) Created() []model.Booking {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]model.Booking(nil), n.created...)
}

func (n *recordingNotifier) Changes() []statusChange {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]statusChange(nil), n.changes...)
}

type testEnv struct {
	svc      *Service
	db       *gorm.DB
	bookings *repository.GormBookingRepository
	reviews  *repository.GormReviewRepository
	notifier *recordingNotifier
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	gdb, err := db.NewInMemory()
	require.NoError(t, err)
	require.NoError(t, model.AutoMigrate(gdb))

	env := &testEnv{
		db:       gdb,
		bookings: repository.NewGormBookingRepository(gdb),
		reviews:  repository.NewGormReviewRepository(gdb),
		notifier: &recordingNotifier{},
	}
	env.svc = NewService(env.bookings, env.reviews, NewDispatcher(env.notifier, zap.NewNop(), 0), zap.NewNop())
	return env
}

// settle дожидается фоновых уведомлений.
func (e *testEnv) settle() {
	e.svc.notify.Wait()
}

func (e *testEnv) book(t *testing.T, customer, barber, date, tm string) *model.Booking {
	t.Helper()
	b, err := e.svc.RequestBooking(context.Background(), BookingRequest{
		Customer: customer,
		Service:  "haircut",
		Barber:   barber,
		Date:     date,
		Time:     tm,
	})
	require.NoError(t, err)
	return b
}

func (e *testEnv) completed(t *testing.T, customer, service, date, tm string) *model.Booking {
	t.Helper()
	b, err := e.svc.RequestBooking(context.Background(), BookingRequest{
		Customer: customer,
		Service:  service,
		Barber:   "joe",
		Date:     date,
		Time:     tm,
	})
	require.NoError(t, err)
	b, err = e.svc.SetStatus(context.Background(), b.ID, "completed")
	require.NoError(t, err)
	return b
}

func (e *testEnv) activeCount(t *testing.T, barber string) int64 {
	t.Helper()
	var n int64
	require.NoError(t, e.db.Model(&model.Booking{}).
		Where("barber = ? AND status <> ?", barber, model.BookingStatusCancelled).
		Count(&n).Error)
	return n
}
