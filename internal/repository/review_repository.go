package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Leganyst/barber-booking/internal/model"
)

// RatingTotals — сумма и число оценок. Среднее считает вызывающий,
// чтобы округление не зависело от СУБД.
type RatingTotals struct {
	Service string
	Total   int64
	Reviews int64
}

type ReviewRepository interface {
	// ErrDuplicate, если на бронь уже есть отзыв.
	Create(ctx context.Context, review *model.Review) error
	ExistsByBooking(ctx context.Context, bookingID uuid.UUID) (bool, error)
	ExistsByBookingAndUser(ctx context.Context, bookingID uuid.UUID, reviewer string) (bool, error)
	// Отзывы по услуге, новые сначала.
	ListByService(ctx context.Context, service string, limit, offset int) ([]model.Review, int64, error)
	AverageAndCount(ctx context.Context, service string) (RatingTotals, error)
	// По всем услугам, по имени услуги.
	AverageByService(ctx context.Context) ([]RatingTotals, error)
	// Какие из bookingIDs reviewer уже оценил.
	ReviewedBookingIDs(ctx context.Context, reviewer string, bookingIDs []uuid.UUID) (map[uuid.UUID]bool, error)
}

type GormReviewRepository struct {
	db *gorm.DB
}

func NewGormReviewRepository(db *gorm.DB) *GormReviewRepository {
	return &GormReviewRepository{db: db}
}

func (r *GormReviewRepository) Create(ctx context.Context, review *model.Review) error {
	return translate(r.db.WithContext(ctx).Create(review).Error)
}

func (r *GormReviewRepository) ExistsByBooking(ctx context.Context, bookingID uuid.UUID) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&model.Review{}).
		Where("booking_id = ?", bookingID).
		Count(&n).Error
	return n > 0, translate(err)
}

func (r *GormReviewRepository) ExistsByBookingAndUser(
	ctx context.Context,
	bookingID uuid.UUID,
	reviewer string,
) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&model.Review{}).
		Where("booking_id = ? AND reviewer = ?", bookingID, reviewer).
		Count(&n).Error
	return n > 0, translate(err)
}

func (r *GormReviewRepository) ListByService(
	ctx context.Context,
	service string,
	limit, offset int,
) ([]model.Review, int64, error) {
	var (
		reviews []model.Review
		total   int64
	)

	q := r.db.WithContext(ctx).
		Model(&model.Review{}).
		Where("service = ?", service).
		Session(&gorm.Session{})

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, translate(err)
	}

	if err := q.
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&reviews).Error; err != nil {
		return nil, 0, translate(err)
	}

	return reviews, total, nil
}

func (r *GormReviewRepository) AverageAndCount(ctx context.Context, service string) (RatingTotals, error) {
	out := RatingTotals{Service: service}
	err := r.db.WithContext(ctx).
		Model(&model.Review{}).
		Select("COALESCE(SUM(rating), 0) AS total, COUNT(*) AS reviews").
		Where("service = ?", service).
		Scan(&out).Error
	out.Service = service
	return out, translate(err)
}

func (r *GormReviewRepository) AverageByService(ctx context.Context) ([]RatingTotals, error) {
	var rows []RatingTotals
	err := r.db.WithContext(ctx).
		Model(&model.Review{}).
		Select("service, SUM(rating) AS total, COUNT(*) AS reviews").
		Group("service").
		Order("service ASC").
		Scan(&rows).Error
	return rows, translate(err)
}

func (r *GormReviewRepository) ReviewedBookingIDs(
	ctx context.Context,
	reviewer string,
	bookingIDs []uuid.UUID,
) (map[uuid.UUID]bool, error) {
	out := make(map[uuid.UUID]bool, len(bookingIDs))
	if len(bookingIDs) == 0 {
		return out, nil
	}
	var ids []uuid.UUID
	err := r.db.WithContext(ctx).
		Model(&model.Review{}).
		Where("reviewer = ? AND booking_id IN ?", reviewer, bookingIDs).
		Pluck("booking_id", &ids).Error
	if err != nil {
		return nil, translate(err)
	}
	for _, id := range ids {
		out[id] = true
	}
	return out, nil
}
