package repository

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/Leganyst/barber-booking/internal/model"
)

// BookingFilter — фильтр админского списка. Date важнее диапазона From/To.
type BookingFilter struct {
	Status *model.BookingStatus
	Barber string
	Date   *time.Time
	From   *time.Time
	To     *time.Time
	Query  string
}

type BookingRepository interface {
	// Создать бронь. ErrDuplicate, если слот уже занят активной бронью.
	Create(ctx context.Context, booking *model.Booking) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Booking, error)
	// Сохранить все поля брони. Только для полного редактирования из админки.
	Update(ctx context.Context, booking *model.Booking) error
	// Сменить статус, если он всё ещё from. false — статус уже другой или брони нет.
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to model.BookingStatus) (bool, error)
	// Перенести бронь, остальные поля не трогаются.
	UpdateSchedule(ctx context.Context, id uuid.UUID, date datatypes.Date, tm datatypes.Time) error
	Delete(ctx context.Context, id uuid.UUID) error
	// Активная бронь на слот или nil.
	FindActiveBySlot(ctx context.Context, barber string, date datatypes.Date, tm datatypes.Time) (*model.Booking, error)
	ListByCustomer(ctx context.Context, customer string) ([]model.Booking, error)
	CountByDate(ctx context.Context, date datatypes.Date) (int64, error)
	CountByStatusAndDate(ctx context.Context, status model.BookingStatus, date datatypes.Date) (int64, error)
	List(ctx context.Context, f BookingFilter) ([]model.Booking, error)
	DistinctServices(ctx context.Context) ([]string, error)
}

// Реализация на GORM.
type GormBookingRepository struct {
	db *gorm.DB
}

func NewGormBookingRepository(db *gorm.DB) *GormBookingRepository {
	return &GormBookingRepository{db: db}
}

func (r *GormBookingRepository) Create(ctx context.Context, booking *model.Booking) error {
	return translate(r.db.WithContext(ctx).Create(booking).Error)
}

func (r *GormBookingRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Booking, error) {
	var b model.Booking
	if err := r.db.WithContext(ctx).First(&b, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &b, nil
}

func (r *GormBookingRepository) Update(ctx context.Context, booking *model.Booking) error {
	return translate(r.db.WithContext(ctx).Save(booking).Error)
}

func (r *GormBookingRepository) UpdateStatus(
	ctx context.Context,
	id uuid.UUID,
	from, to model.BookingStatus,
) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&model.Booking{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	if res.Error != nil {
		return false, translate(res.Error)
	}
	return res.RowsAffected > 0, nil
}

func (r *GormBookingRepository) UpdateSchedule(
	ctx context.Context,
	id uuid.UUID,
	date datatypes.Date,
	tm datatypes.Time,
) error {
	res := r.db.WithContext(ctx).
		Model(&model.Booking{}).
		Where("id = ?", id).
		Updates(map[string]any{"slot_date": date, "slot_time": tm})
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *GormBookingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&model.Booking{}, "id = ?", id)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *GormBookingRepository) FindActiveBySlot(
	ctx context.Context,
	barber string,
	date datatypes.Date,
	tm datatypes.Time,
) (*model.Booking, error) {
	var bookings []model.Booking
	err := r.db.WithContext(ctx).
		Where("barber = ? AND slot_date = ? AND slot_time = ? AND status <> ?",
			barber, date, tm, model.BookingStatusCancelled).
		Limit(1).
		Find(&bookings).Error
	if err != nil {
		return nil, translate(err)
	}
	if len(bookings) == 0 {
		return nil, nil
	}
	return &bookings[0], nil
}

func (r *GormBookingRepository) ListByCustomer(ctx context.Context, customer string) ([]model.Booking, error) {
	var bookings []model.Booking
	err := r.db.WithContext(ctx).
		Where("customer = ?", customer).
		Order("slot_date DESC, slot_time DESC").
		Find(&bookings).Error
	return bookings, translate(err)
}

func (r *GormBookingRepository) CountByDate(ctx context.Context, date datatypes.Date) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&model.Booking{}).
		Where("slot_date = ?", date).
		Count(&n).Error
	return n, translate(err)
}

func (r *GormBookingRepository) CountByStatusAndDate(
	ctx context.Context,
	status model.BookingStatus,
	date datatypes.Date,
) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&model.Booking{}).
		Where("status = ? AND slot_date = ?", status, date).
		Count(&n).Error
	return n, translate(err)
}

func (r *GormBookingRepository) List(ctx context.Context, f BookingFilter) ([]model.Booking, error) {
	q := r.db.WithContext(ctx).Model(&model.Booking{})

	if f.Status != nil {
		q = q.Where("status = ?", *f.Status)
	}
	if b := strings.TrimSpace(f.Barber); b != "" {
		q = q.Where("LOWER(barber) LIKE ?", "%"+strings.ToLower(b)+"%")
	}

	switch {
	case f.Date != nil:
		q = q.Where("slot_date = ?", datatypes.Date(*f.Date))
	default:
		if f.From != nil {
			q = q.Where("slot_date >= ?", datatypes.Date(*f.From))
		}
		if f.To != nil {
			q = q.Where("slot_date <= ?", datatypes.Date(*f.To))
		}
	}

	if text := strings.TrimSpace(f.Query); text != "" {
		like := "%" + strings.ToLower(text) + "%"
		cond := r.db.Where("LOWER(customer) LIKE ?", like).
			Or("LOWER(service) LIKE ?", like).
			Or("LOWER(barber) LIKE ?", like).
			Or("LOWER(note) LIKE ?", like)
		// по id ищем только точным совпадением
		if id, err := uuid.Parse(text); err == nil {
			cond = cond.Or("id = ?", id)
		}
		q = q.Where(cond)
	}

	var bookings []model.Booking
	err := q.Order("slot_date ASC, slot_time ASC").Find(&bookings).Error
	return bookings, translate(err)
}

func (r *GormBookingRepository) DistinctServices(ctx context.Context) ([]string, error) {
	var services []string
	err := r.db.WithContext(ctx).
		Model(&model.Booking{}).
		Distinct().
		Order("service ASC").
		Pluck("service", &services).Error
	return services, translate(err)
}
