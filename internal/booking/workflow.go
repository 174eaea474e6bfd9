package booking

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Leganyst/barber-booking/internal/model"
	"github.com/Leganyst/barber-booking/internal/repository"
	"github.com/Leganyst/barber-booking/internal/utils"
)

// BookingUpdate — полное административное редактирование брони.
// Status пустой — статус не меняется.
type BookingUpdate struct {
	Customer string `json:"customer" validate:"required,max=255"`
	Service  string `json:"service" validate:"required,max=255"`
	Barber   string `json:"barber" validate:"required,max=255"`
	Date     string `json:"date" validate:"required"`
	Time     string `json:"time" validate:"required"`
	Note     string `json:"note" validate:"max=500"`
	Status   string `json:"status"`
}

func (s *Service) GetBooking(ctx context.Context, id uuid.UUID) (*model.Booking, error) {
	b, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("get booking: %w", err)
	}
	return b, nil
}

// SetStatus переводит бронь в любой из известных статусов. Таблицы
// переходов нет: администратор может вернуть бронь в любой статус.
// Повтор с тем же статусом ничего не пишет и не уведомляет.
//
// Статус меняется условным UPDATE по прежнему значению, поэтому из двух
// одновременных смен уведомление отправит только та, что реально записала.
func (s *Service) SetStatus(ctx context.Context, id uuid.UUID, raw string) (*model.Booking, error) {
	to, err := model.ParseBookingStatus(raw)
	if err != nil {
		return nil, invalid("%v", err)
	}

	b, err := s.GetBooking(ctx, id)
	if err != nil {
		return nil, err
	}

	from := b.Status
	if from == to {
		return b, nil
	}

	changed, err := s.bookings.UpdateStatus(ctx, id, from, to)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrSlotTaken
		}
		return nil, fmt.Errorf("update booking status: %w", err)
	}

	// перечитываем: перенос мог пройти параллельно
	cur, err := s.GetBooking(ctx, id)
	if err != nil {
		return nil, err
	}
	if !changed {
		if cur.Status == to {
			return cur, nil
		}
		return nil, ErrStatusChanged
	}

	s.log.Info("booking status changed",
		zap.String("booking_id", cur.ID.String()),
		zap.String("from", from.String()),
		zap.String("to", to.String()),
	)
	s.notify.StatusChanged(ctx, *cur, from, to)

	return cur, nil
}

// SetSchedule переносит бронь на другие дату и время. Пишутся только
// дата и время, статус не затрагивается. Занятость нового слота заранее
// не проверяется; точное совпадение с активной бронью всё равно отклонит
// уникальный индекс.
func (s *Service) SetSchedule(ctx context.Context, id uuid.UUID, rawDate, rawTime string) (*model.Booking, error) {
	date, err := utils.ParseDate(rawDate)
	if err != nil {
		return nil, invalid("date: %v", err)
	}
	tm, err := utils.ParseTimeOfDay(rawTime)
	if err != nil {
		return nil, invalid("time: %v", err)
	}

	if err := s.bookings.UpdateSchedule(ctx, id, date, tm); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return nil, ErrBookingNotFound
		case errors.Is(err, repository.ErrDuplicate):
			return nil, ErrSlotTaken
		}
		return nil, fmt.Errorf("reschedule booking: %w", err)
	}

	s.log.Info("booking rescheduled",
		zap.String("booking_id", id.String()),
		zap.String("slot", utils.FormatDate(date)+" "+utils.FormatTime(tm)),
	)
	return s.GetBooking(ctx, id)
}

// UpdateBooking перезаписывает все поля брони. Уведомление уходит,
// только если статус действительно изменился.
func (s *Service) UpdateBooking(ctx context.Context, id uuid.UUID, upd BookingUpdate) (*model.Booking, error) {
	upd.Customer = strings.TrimSpace(upd.Customer)
	upd.Service = strings.TrimSpace(upd.Service)
	upd.Barber = strings.TrimSpace(upd.Barber)
	upd.Note = strings.TrimSpace(upd.Note)
	if err := s.validate.Struct(upd); err != nil {
		return nil, fromValidator(err)
	}

	var to model.BookingStatus
	if strings.TrimSpace(upd.Status) != "" {
		parsed, err := model.ParseBookingStatus(upd.Status)
		if err != nil {
			return nil, invalid("%v", err)
		}
		to = parsed
	}

	date, err := utils.ParseDate(upd.Date)
	if err != nil {
		return nil, invalid("date: %v", err)
	}
	tm, err := utils.ParseTimeOfDay(upd.Time)
	if err != nil {
		return nil, invalid("time: %v", err)
	}

	b, err := s.GetBooking(ctx, id)
	if err != nil {
		return nil, err
	}

	from := b.Status
	b.Customer = upd.Customer
	b.Service = upd.Service
	b.Barber = upd.Barber
	b.Date = date
	b.Time = tm
	b.Note = upd.Note
	if to != "" {
		b.Status = to
	}

	if err := s.save(ctx, b); err != nil {
		return nil, err
	}

	if to != "" && to != from {
		s.notify.StatusChanged(ctx, *b, from, to)
	}
	return b, nil
}

// DeleteBooking удаляет бронь в обход статусов, без уведомлений.
func (s *Service) DeleteBooking(ctx context.Context, id uuid.UUID) error {
	if err := s.bookings.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrBookingNotFound
		}
		return fmt.Errorf("delete booking: %w", err)
	}
	s.log.Info("booking deleted", zap.String("booking_id", id.String()))
	return nil
}

func (s *Service) save(ctx context.Context, b *model.Booking) error {
	if err := s.bookings.Update(ctx, b); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return ErrSlotTaken
		}
		return fmt.Errorf("update booking: %w", err)
	}
	return nil
}
