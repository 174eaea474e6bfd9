package notify

import (
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/Leganyst/barber-booking/internal/model"
	"github.com/Leganyst/barber-booking/internal/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Ключи маршрутизации и имена событий.
const (
	RoutingBookingCreated       = "booking.created"
	RoutingBookingStatusChanged = "booking.status_changed"
)

// Message — тело события брони для внешних потребителей.
type Message struct {
	Event      string    `json:"event"`
	BookingID  string    `json:"booking_id"`
	Customer   string    `json:"customer"`
	Email      string    `json:"customer_email,omitempty"` // для письма-подтверждения
	Service    string    `json:"service"`
	Barber     string    `json:"barber"`
	Date       string    `json:"date"`
	Time       string    `json:"time"`
	Note       string    `json:"note,omitempty"`
	Status     string    `json:"status"`
	OldStatus  string    `json:"old_status,omitempty"`
	NewStatus  string    `json:"new_status,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

func newMessage(event string, b model.Booking, now time.Time) Message {
	return Message{
		Event:      event,
		BookingID:  b.ID.String(),
		Customer:   b.Customer,
		Service:    b.Service,
		Barber:     b.Barber,
		Date:       utils.FormatDate(b.Date),
		Time:       utils.FormatTime(b.Time),
		Note:       b.Note,
		Status:     b.Status.String(),
		OccurredAt: now.UTC(),
	}
}

func createdMessage(b model.Booking, now time.Time) Message {
	return newMessage(RoutingBookingCreated, b, now)
}

func statusMessage(b model.Booking, from, to model.BookingStatus, now time.Time) Message {
	m := newMessage(RoutingBookingStatusChanged, b, now)
	m.OldStatus = from.String()
	m.NewStatus = to.String()
	return m
}
