package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// users
type User struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey"`

	Username     string `gorm:"type:varchar(255);not null;uniqueIndex"`
	PasswordHash string `gorm:"type:varchar(255);not null"`

	// Роли через запятую, как хранились исходно: "user", "ADMIN,staff".
	Role string `gorm:"type:varchar(255);not null;default:'USER'"`

	FullName string `gorm:"type:varchar(255)"`
	Email    string `gorm:"type:varchar(255);index"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (u *User) BeforeCreate(*gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
