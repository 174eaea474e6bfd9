package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Тип события аудита.
type EventType string

const (
	EventTypeBookingCreated       EventType = "booking_created"
	EventTypeBookingStatusChanged EventType = "booking_status_changed"
)

// events — события аудита
type Event struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey"`

	EventType EventType `gorm:"type:varchar(64);not null;index"`

	CreatedAt time.Time `gorm:"not null;index"`

	Actor     string     `gorm:"type:varchar(255)"`
	BookingID *uuid.UUID `gorm:"type:uuid;index"`

	// Снимок брони и переход статуса.
	Details datatypes.JSON
}

func (e *Event) BeforeCreate(*gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}
