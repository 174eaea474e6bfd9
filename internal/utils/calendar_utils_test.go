package utils

import (
	"errors"
	"strings"
	"testing"
	"time"

	"gorm.io/datatypes"
)

func mustDate(t *testing.T, year int, month time.Month, day int) datatypes.Date {
	t.Helper()
	return datatypes.Date(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

//
// Разбор даты
//

func TestParseDate_ISO(t *testing.T) {
	got, err := ParseDate("2024-06-01")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !time.Time(got).Equal(time.Time(mustDate(t, 2024, 6, 1))) {
		t.Fatalf("got %v", time.Time(got))
	}
}

func TestParseDate_SlashFallback(t *testing.T) {
	got, err := ParseDate(" 01/06/2024 ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if FormatDate(got) != "2024-06-01" {
		t.Fatalf("got %s", FormatDate(got))
	}
}

func TestParseDate_Invalid(t *testing.T) {
	for _, raw := range []string{"", "2024-13-01", "tomorrow", "2024/06/01"} {
		if _, err := ParseDate(raw); !errors.Is(err, ErrInvalidDate) {
			t.Fatalf("ParseDate(%q): expected ErrInvalidDate, got %v", raw, err)
		}
	}
}

//
// Разбор времени
//

func TestParseTimeOfDay(t *testing.T) {
	cases := map[string]datatypes.Time{
		"10:00":    datatypes.NewTime(10, 0, 0, 0),
		"9:30":     datatypes.NewTime(9, 30, 0, 0),
		"10:00:00": datatypes.NewTime(10, 0, 0, 0),
		"18:45:15": datatypes.NewTime(18, 45, 15, 0),
	}
	for raw, want := range cases {
		got, err := ParseTimeOfDay(raw)
		if err != nil {
			t.Fatalf("ParseTimeOfDay(%q): %v", raw, err)
		}
		if got != want {
			t.Fatalf("ParseTimeOfDay(%q) = %v, want %v", raw, got, want)
		}
	}
}

func TestParseTimeOfDay_Invalid(t *testing.T) {
	for _, raw := range []string{"", "25:00", "10", "10:7", "noon"} {
		if _, err := ParseTimeOfDay(raw); !errors.Is(err, ErrInvalidTime) {
			t.Fatalf("ParseTimeOfDay(%q): expected ErrInvalidTime, got %v", raw, err)
		}
	}
}

//
// Форматирование
//

func TestFormatTime(t *testing.T) {
	if got := FormatTime(datatypes.NewTime(9, 5, 0, 0)); got != "09:05" {
		t.Fatalf("got %q", got)
	}
	if got := FormatTime(datatypes.NewTime(9, 5, 7, 0)); got != "09:05:07" {
		t.Fatalf("got %q", got)
	}
}

func TestDateOf_DropsClock(t *testing.T) {
	loc := time.FixedZone("MSK", 3*60*60)
	d := DateOf(time.Date(2024, 6, 1, 23, 30, 0, 0, loc))
	if FormatDate(d) != "2024-06-01" {
		t.Fatalf("got %s", FormatDate(d))
	}
	if time.Time(d).Location() != time.UTC {
		t.Fatalf("expected UTC")
	}
}

func TestFormatSlotForUser(t *testing.T) {
	// 01.06.2024 — суббота
	str := FormatSlotForUser(mustDate(t, 2024, 6, 1), datatypes.NewTime(10, 0, 0, 0), "")
	if str != "Суббота, 01.06.2024, 10:00" {
		t.Fatalf("unexpected format: %q", str)
	}

	withBarber := FormatSlotForUser(mustDate(t, 2024, 6, 1), datatypes.NewTime(10, 0, 0, 0), "joe")
	if !strings.HasSuffix(withBarber, "(мастер: joe)") {
		t.Fatalf("expected barber suffix, got %q", withBarber)
	}
}
