package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type BookingStatus string

// Литералы статусов совпадают с тем, что уже лежит в отчётах и UI — не менять.
const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusCompleted BookingStatus = "completed"
)

// BookingStatuses — фиксированный набор, порядок используется в статистике.
var BookingStatuses = []BookingStatus{
	BookingStatusPending,
	BookingStatusConfirmed,
	BookingStatusCancelled,
	BookingStatusCompleted,
}

func (s BookingStatus) IsValid() bool {
	for _, known := range BookingStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// IsActive — активная бронь держит слот.
func (s BookingStatus) IsActive() bool {
	return s != BookingStatusCancelled
}

func (s BookingStatus) String() string {
	return string(s)
}

func ParseBookingStatus(raw string) (BookingStatus, error) {
	s := BookingStatus(strings.TrimSpace(raw))
	if !s.IsValid() {
		return "", fmt.Errorf("unknown booking status %q", raw)
	}
	return s, nil
}

const NoteMaxLen = 500

// bookings
//
// Слот (barber, slot_date, slot_time) уникален среди неотменённых броней —
// это держит частичный уникальный индекс, а не код.
type Booking struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey"`

	Customer string `gorm:"type:varchar(255);not null;index"`
	Service  string `gorm:"type:varchar(255);not null;index"`

	Barber string         `gorm:"type:varchar(255);not null;uniqueIndex:idx_bookings_active_slot,priority:1,where:status <> 'cancelled'"`
	Date   datatypes.Date `gorm:"column:slot_date;not null;index;uniqueIndex:idx_bookings_active_slot,priority:2,where:status <> 'cancelled'"`
	Time   datatypes.Time `gorm:"column:slot_time;not null;uniqueIndex:idx_bookings_active_slot,priority:3,where:status <> 'cancelled'"`

	Note   string        `gorm:"type:varchar(500)"`
	Status BookingStatus `gorm:"type:varchar(32);not null;default:'pending';index"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// BeforeCreate — id генерим сами, чтобы схема одинаково жила на postgres и sqlite.
func (b *Booking) BeforeCreate(*gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	if b.Status == "" {
		b.Status = BookingStatusPending
	}
	return nil
}
