package notify

import (
	"context"

	"go.uber.org/zap"

	"github.com/Leganyst/barber-booking/internal/model"
	"github.com/Leganyst/barber-booking/internal/utils"
)

// LogNotifier пишет события в лог. Включён всегда, даже без брокера.
type LogNotifier struct {
	log *zap.Logger
}

func NewLogNotifier(log *zap.Logger) *LogNotifier {
	return &LogNotifier{log: log.Named("notify")}
}

func (n *LogNotifier) NotifyBookingCreated(_ context.Context, b model.Booking) error {
	n.log.Info("new booking",
		zap.String("booking_id", b.ID.String()),
		zap.String("customer", b.Customer),
		zap.String("service", b.Service),
		zap.String("slot", utils.FormatSlotForUser(b.Date, b.Time, b.Barber)),
	)
	return nil
}

func (n *LogNotifier) NotifyStatusChanged(_ context.Context, b model.Booking, from, to model.BookingStatus) error {
	n.log.Info("booking status changed",
		zap.String("booking_id", b.ID.String()),
		zap.String("customer", b.Customer),
		zap.String("from", from.String()),
		zap.String("to", to.String()),
		zap.String("slot", utils.FormatSlotForUser(b.Date, b.Time, b.Barber)),
	)
	return nil
}
