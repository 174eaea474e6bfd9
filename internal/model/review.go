package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	MinRating = 1
	MaxRating = 5
)

// reviews — не больше одного отзыва на бронь (uniqueIndex на booking_id).
// Service и Barber — снимок брони на момент создания отзыва.
type Review struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey"`

	BookingID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Reviewer  string    `gorm:"type:varchar(255);not null;index"`

	Service string `gorm:"type:varchar(255);not null;index"`
	Barber  string `gorm:"type:varchar(255)"`

	Rating  int    `gorm:"not null;check:chk_reviews_rating,rating >= 1 AND rating <= 5"`
	Comment string `gorm:"type:text"`

	CreatedAt time.Time `gorm:"not null;index"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (r *Review) BeforeCreate(*gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
