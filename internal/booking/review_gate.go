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
)

// CreateReview оставляет отзыв на завершённую бронь её владельцем.
//
// Несуществующая бронь отвечает так же, как чужая: ErrReviewNotAllowed.
// Один отзыв на бронь держит уникальный индекс reviews.booking_id,
// проверка перед вставкой только отвечает раньше.
func (s *Service) CreateReview(
	ctx context.Context,
	reviewer string,
	bookingID uuid.UUID,
	rating int,
	comment string,
) (*model.Review, error) {
	if rating < model.MinRating || rating > model.MaxRating {
		return nil, invalid("rating must be between %d and %d", model.MinRating, model.MaxRating)
	}
	comment = strings.TrimSpace(comment)

	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrReviewNotAllowed
		}
		return nil, fmt.Errorf("get booking: %w", err)
	}
	if !eligible(b, reviewer) {
		return nil, ErrReviewNotAllowed
	}

	exists, err := s.reviews.ExistsByBooking(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("check review: %w", err)
	}
	if exists {
		return nil, ErrAlreadyReviewed
	}

	// service и barber — снимок брони на момент отзыва
	r := &model.Review{
		BookingID: b.ID,
		Reviewer:  reviewer,
		Service:   b.Service,
		Barber:    b.Barber,
		Rating:    rating,
		Comment:   comment,
	}
	if err := s.reviews.Create(ctx, r); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrAlreadyReviewed
		}
		return nil, fmt.Errorf("create review: %w", err)
	}

	s.log.Info("review created",
		zap.String("booking_id", b.ID.String()),
		zap.String("service", r.Service),
		zap.Int("rating", rating),
	)
	return r, nil
}

// CanReview — можно ли показывать пользователю форму отзыва.
func (s *Service) CanReview(ctx context.Context, bookingID uuid.UUID, user string) (bool, error) {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("get booking: %w", err)
	}
	if !eligible(b, user) {
		return false, nil
	}
	reviewed, err := s.reviews.ExistsByBookingAndUser(ctx, bookingID, user)
	if err != nil {
		return false, fmt.Errorf("check review: %w", err)
	}
	return reviewable(b, user, reviewed), nil
}

func eligible(b *model.Booking, user string) bool {
	return b.Status == model.BookingStatusCompleted && user != "" && b.Customer == user
}

// reviewable — правило CanReview при уже известном факте отзыва.
func reviewable(b *model.Booking, user string, reviewed bool) bool {
	return eligible(b, user) && !reviewed
}
