package booking

import (
	"context"

	"github.com/Leganyst/barber-booking/internal/model"
)

// Notifier получает события брони. Ошибка доставки не откатывает
// изменение, её только логируют.
type Notifier interface {
	NotifyBookingCreated(ctx context.Context, b model.Booking) error
	NotifyStatusChanged(ctx context.Context, b model.Booking, from, to model.BookingStatus) error
}

// NopNotifier ничего не делает.
type NopNotifier struct{}

func (NopNotifier) NotifyBookingCreated(context.Context, model.Booking) error { return nil }

func (NopNotifier) NotifyStatusChanged(context.Context, model.Booking, model.BookingStatus, model.BookingStatus) error {
	return nil
}
