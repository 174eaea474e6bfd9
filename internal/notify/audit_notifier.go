package notify

import (
	"context"
	"fmt"
	"time"

	"gorm.io/datatypes"

	"github.com/Leganyst/barber-booking/internal/model"
	"github.com/Leganyst/barber-booking/internal/repository"
)

// AuditNotifier сохраняет события брони в таблицу events.
type AuditNotifier struct {
	events repository.EventRepository
	now    func() time.Time
}

func NewAuditNotifier(events repository.EventRepository) *AuditNotifier {
	return &AuditNotifier{events: events, now: time.Now}
}

func (n *AuditNotifier) NotifyBookingCreated(ctx context.Context, b model.Booking) error {
	return n.record(ctx, model.EventTypeBookingCreated, b, createdMessage(b, n.now()))
}

func (n *AuditNotifier) NotifyStatusChanged(ctx context.Context, b model.Booking, from, to model.BookingStatus) error {
	return n.record(ctx, model.EventTypeBookingStatusChanged, b, statusMessage(b, from, to, n.now()))
}

func (n *AuditNotifier) record(ctx context.Context, typ model.EventType, b model.Booking, msg Message) error {
	details, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal event details: %w", err)
	}
	id := b.ID
	ev := &model.Event{
		EventType: typ,
		Actor:     b.Customer,
		BookingID: &id,
		Details:   datatypes.JSON(details),
	}
	if err := n.events.Create(ctx, ev); err != nil {
		return fmt.Errorf("save %s event: %w", typ, err)
	}
	return nil
}
