package booking

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/Leganyst/barber-booking/internal/model"
)

const DefaultNotifyTimeout = 10 * time.Second

// Dispatcher отправляет уведомления в фоне: вызывающий не ждёт доставки,
// ошибки и паники нотификатора только логируются.
type Dispatcher struct {
	notifier Notifier
	log      *zap.Logger
	timeout  time.Duration

	wg sync.WaitGroup
}

func NewDispatcher(n Notifier, log *zap.Logger, timeout time.Duration) *Dispatcher {
	if n == nil {
		n = NopNotifier{}
	}
	if timeout <= 0 {
		timeout = DefaultNotifyTimeout
	}
	return &Dispatcher{notifier: n, log: log, timeout: timeout}
}

func (d *Dispatcher) BookingCreated(ctx context.Context, b model.Booking) {
	d.dispatch(ctx, "booking_created", b, func(ctx context.Context) error {
		return d.notifier.NotifyBookingCreated(ctx, b)
	})
}

func (d *Dispatcher) StatusChanged(ctx context.Context, b model.Booking, from, to model.BookingStatus) {
	d.dispatch(ctx, "booking_status_changed", b, func(ctx context.Context) error {
		return d.notifier.NotifyStatusChanged(ctx, b, from, to)
	})
}

// Wait дожидается всех отправок, вызывается при остановке.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}

func (d *Dispatcher) dispatch(ctx context.Context, event string, b model.Booking, send func(context.Context) error) {
	// запрос может завершиться раньше доставки
	ctx = context.WithoutCancel(ctx)

	d.wg.Add(1)
	go func() {
		defer d.wg.Done()

		ctx, cancel := context.WithTimeout(ctx, d.timeout)
		defer cancel()

		if err := safeSend(ctx, send); err != nil {
			d.log.Warn("notification failed",
				zap.String("event", event),
				zap.String("booking_id", b.ID.String()),
				zap.Error(err),
			)
		}
	}()
}

func safeSend(ctx context.Context, send func(context.Context) error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("notifier panic: %v", r)
		}
	}()
	return send(ctx)
}
