package booking

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/Leganyst/barber-booking/internal/model"
	"github.com/Leganyst/barber-booking/internal/repository"
	"github.com/Leganyst/barber-booking/internal/utils"
)

// ListFilter — фильтры админского списка броней. Все поля необязательные,
// Date важнее StartDate/EndDate.
type ListFilter struct {
	Status    string
	Barber    string
	Date      string
	StartDate string
	EndDate   string
	Query     string
}

// Stats — количество броней на день по статусам.
type Stats struct {
	Date      datatypes.Date `json:"date"`
	Total     int64          `json:"total"`
	Pending   int64          `json:"pending"`
	Confirmed int64          `json:"confirmed"`
	Completed int64          `json:"completed"`
	Cancelled int64          `json:"cancelled"`
}

// CustomerBookings — брони клиента, те, на которые он уже оставил отзыв,
// и те, на которые отзыв оставить можно.
type CustomerBookings struct {
	Bookings  []model.Booking
	Reviewed  map[uuid.UUID]bool
	CanReview map[uuid.UUID]bool
}

func (s *Service) ListBookings(ctx context.Context, f ListFilter) ([]model.Booking, error) {
	var rf repository.BookingFilter

	if raw := strings.TrimSpace(f.Status); raw != "" {
		st, err := model.ParseBookingStatus(raw)
		if err != nil {
			return nil, invalid("%v", err)
		}
		rf.Status = &st
	}
	rf.Barber = f.Barber
	rf.Query = f.Query

	var err error
	if rf.Date, err = optionalDate(f.Date); err != nil {
		return nil, err
	}
	if rf.From, err = optionalDate(f.StartDate); err != nil {
		return nil, err
	}
	if rf.To, err = optionalDate(f.EndDate); err != nil {
		return nil, err
	}

	bookings, err := s.bookings.List(ctx, rf)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	return bookings, nil
}

// Stats считает брони на дату, пустая дата — сегодня по UTC.
func (s *Service) Stats(ctx context.Context, rawDate string) (Stats, error) {
	var day datatypes.Date
	if strings.TrimSpace(rawDate) == "" {
		day = utils.DateOf(s.now().UTC())
	} else {
		d, err := utils.ParseDate(rawDate)
		if err != nil {
			return Stats{}, invalid("date: %v", err)
		}
		day = d
	}

	total, err := s.bookings.CountByDate(ctx, day)
	if err != nil {
		return Stats{}, fmt.Errorf("count bookings: %w", err)
	}
	out := Stats{Date: day, Total: total}

	for _, st := range model.BookingStatuses {
		n, err := s.bookings.CountByStatusAndDate(ctx, st, day)
		if err != nil {
			return Stats{}, fmt.Errorf("count %s bookings: %w", st, err)
		}
		switch st {
		case model.BookingStatusPending:
			out.Pending = n
		case model.BookingStatusConfirmed:
			out.Confirmed = n
		case model.BookingStatusCompleted:
			out.Completed = n
		case model.BookingStatusCancelled:
			out.Cancelled = n
		}
	}
	return out, nil
}

// Services — названия услуг, встречающиеся в бронях.
func (s *Service) Services(ctx context.Context) ([]string, error) {
	services, err := s.bookings.DistinctServices(ctx)
	if err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	return services, nil
}

// GetOwnedBooking — бронь для страницы клиента; чужая бронь запрещена.
func (s *Service) GetOwnedBooking(ctx context.Context, id uuid.UUID, customer string) (*model.Booking, error) {
	b, err := s.GetBooking(ctx, id)
	if err != nil {
		return nil, err
	}
	if b.Customer != customer {
		return nil, ErrNotOwner
	}
	return b, nil
}

func (s *Service) ListCustomerBookings(ctx context.Context, customer string) (CustomerBookings, error) {
	customer = strings.TrimSpace(customer)
	if customer == "" {
		return CustomerBookings{}, invalid("customer is required")
	}

	bookings, err := s.bookings.ListByCustomer(ctx, customer)
	if err != nil {
		return CustomerBookings{}, fmt.Errorf("list customer bookings: %w", err)
	}

	ids := make([]uuid.UUID, 0, len(bookings))
	for _, b := range bookings {
		ids = append(ids, b.ID)
	}
	reviewed, err := s.reviews.ReviewedBookingIDs(ctx, customer, ids)
	if err != nil {
		return CustomerBookings{}, fmt.Errorf("reviewed bookings: %w", err)
	}

	canReview := make(map[uuid.UUID]bool, len(bookings))
	for i := range bookings {
		b := &bookings[i]
		canReview[b.ID] = reviewable(b, customer, reviewed[b.ID])
	}

	return CustomerBookings{Bookings: bookings, Reviewed: reviewed, CanReview: canReview}, nil
}

func optionalDate(raw string) (*time.Time, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	d, err := utils.ParseDate(raw)
	if err != nil {
		return nil, invalid("date: %v", err)
	}
	t := time.Time(d)
	return &t, nil
}
