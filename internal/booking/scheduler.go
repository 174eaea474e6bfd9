package booking

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/Leganyst/barber-booking/internal/model"
	"github.com/Leganyst/barber-booking/internal/repository"
	"github.com/Leganyst/barber-booking/internal/utils"
)

// BookingRequest — запрос клиента на запись.
type BookingRequest struct {
	Customer string `json:"customer" validate:"required,max=255"`
	Service  string `json:"service" validate:"required,max=255"`
	Barber   string `json:"barber" validate:"required,max=255"`
	Date     string `json:"date" validate:"required"`
	Time     string `json:"time" validate:"required"`
	Note     string `json:"note" validate:"max=500"`
}

func (r *BookingRequest) trim() {
	r.Customer = strings.TrimSpace(r.Customer)
	r.Service = strings.TrimSpace(r.Service)
	r.Barber = strings.TrimSpace(r.Barber)
	r.Date = strings.TrimSpace(r.Date)
	r.Time = strings.TrimSpace(r.Time)
	r.Note = strings.TrimSpace(r.Note)
}

// RequestBooking создаёт бронь в статусе pending.
//
// Проверка занятости слота перед вставкой только даёт быстрый понятный ответ;
// гонку двух одновременных запросов решает уникальный индекс, проигравший
// получает тот же ErrSlotTaken.
func (s *Service) RequestBooking(ctx context.Context, req BookingRequest) (*model.Booking, error) {
	req.trim()
	if err := s.validate.Struct(req); err != nil {
		return nil, fromValidator(err)
	}

	date, err := utils.ParseDate(req.Date)
	if err != nil {
		return nil, invalid("date: %v", err)
	}
	tm, err := utils.ParseTimeOfDay(req.Time)
	if err != nil {
		return nil, invalid("time: %v", err)
	}

	existing, err := s.bookings.FindActiveBySlot(ctx, req.Barber, date, tm)
	if err != nil {
		return nil, fmt.Errorf("check slot: %w", err)
	}
	if existing != nil {
		return nil, ErrSlotTaken
	}

	b := &model.Booking{
		Customer: req.Customer,
		Service:  req.Service,
		Barber:   req.Barber,
		Date:     date,
		Time:     tm,
		Note:     req.Note,
		Status:   model.BookingStatusPending,
	}
	if err := s.bookings.Create(ctx, b); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrSlotTaken
		}
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.log.Info("booking created",
		zap.String("booking_id", b.ID.String()),
		zap.String("barber", b.Barber),
		zap.String("slot", utils.FormatDate(b.Date)+" "+utils.FormatTime(b.Time)),
	)
	s.notify.BookingCreated(ctx, *b)

	return b, nil
}
