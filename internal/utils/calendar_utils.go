package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/datatypes"
)

var (
	ErrInvalidDate = errors.New("invalid date")
	ErrInvalidTime = errors.New("invalid time")
)

// Основной формат — ISO, второй остался от формы переноса записи.
var dateLayouts = []string{
	time.DateOnly,
	"02/01/2006",
}

// Часы допускают одну цифру: "9:30".
var timeLayouts = []string{
	"15:04",
	"15:04:05",
}

// ParseDate разбирает календарную дату. Результат — полночь UTC,
// даты сравниваются только на равенство.
func ParseDate(raw string) (datatypes.Date, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return datatypes.Date{}, ErrInvalidDate
	}
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, raw, time.UTC); err == nil {
			return datatypes.Date(t), nil
		}
	}
	return datatypes.Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, raw)
}

// ParseTimeOfDay принимает "H:mm" и "H:mm:ss".
func ParseTimeOfDay(raw string) (datatypes.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, ErrInvalidTime
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return datatypes.NewTime(t.Hour(), t.Minute(), t.Second(), 0), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidTime, raw)
}

// DateOf — дата без времени и часового пояса.
func DateOf(t time.Time) datatypes.Date {
	y, m, d := t.Date()
	return datatypes.Date(time.Date(y, m, d, 0, 0, 0, 0, time.UTC))
}

func FormatDate(d datatypes.Date) string {
	return time.Time(d).Format(time.DateOnly)
}

// FormatTime — "ЧЧ:ММ", секунды только если они есть.
func FormatTime(t datatypes.Time) string {
	d := time.Duration(t)
	h := int(d / time.Hour)
	m := int(d % time.Hour / time.Minute)
	s := int(d % time.Minute / time.Second)
	if s != 0 {
		return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", h, m)
}

// ===== Форматирование слота для пользователя =====

var ruWeekdays = map[time.Weekday]string{
	time.Monday:    "Понедельник",
	time.Tuesday:   "Вторник",
	time.Wednesday: "Среда",
	time.Thursday:  "Четверг",
	time.Friday:    "Пятница",
	time.Saturday:  "Суббота",
	time.Sunday:    "Воскресенье",
}

// FormatSlotForUser форматирует слот в человекочитаемую строку:
// "Суббота, 01.06.2024, 10:00". Если barber не пуст, он добавляется в конце.
func FormatSlotForUser(d datatypes.Date, t datatypes.Time, barber string) string {
	day := time.Time(d)
	base := fmt.Sprintf("%s, %s, %s", ruWeekdays[day.Weekday()], day.Format("02.01.2006"), FormatTime(t))
	if barber != "" {
		return fmt.Sprintf("%s (мастер: %s)", base, barber)
	}
	return base
}
