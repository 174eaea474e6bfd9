package notify

import (
	"context"
	"errors"

	"github.com/Leganyst/barber-booking/internal/booking"
	"github.com/Leganyst/barber-booking/internal/model"
)

// Multi рассылает событие всем нотификаторам по очереди. Ошибка одного
// не мешает остальным, ошибки собираются вместе.
type Multi []booking.Notifier

func (m Multi) NotifyBookingCreated(ctx context.Context, b model.Booking) error {
	var errs []error
	for _, n := range m {
		if err := n.NotifyBookingCreated(ctx, b); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (m Multi) NotifyStatusChanged(ctx context.Context, b model.Booking, from, to model.BookingStatus) error {
	var errs []error
	for _, n := range m {
		if err := n.NotifyStatusChanged(ctx, b, from, to); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

var (
	_ booking.Notifier = Multi(nil)
	_ booking.Notifier = (*LogNotifier)(nil)
	_ booking.Notifier = (*AMQPNotifier)(nil)
	_ booking.Notifier = (*AuditNotifier)(nil)
)
