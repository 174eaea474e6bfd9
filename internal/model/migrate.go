package model

import "gorm.io/gorm"

// AutoMigrate выполняет миграцию всех сущностей: брони, отзывы, пользователи, аудит.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&Booking{},
		&Review{},
		&Event{},
	)
}
