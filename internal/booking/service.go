package booking

import (
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/Leganyst/barber-booking/internal/repository"
)

// Service — ядро записи: планировщик, смена статусов, отзывы и
// выборки для админки. Хранилище и нотификатор приходят снаружи.
type Service struct {
	bookings repository.BookingRepository
	reviews  repository.ReviewRepository
	notify   *Dispatcher
	validate *validator.Validate
	log      *zap.Logger

	now func() time.Time
}

func NewService(
	bookings repository.BookingRepository,
	reviews repository.ReviewRepository,
	notify *Dispatcher,
	log *zap.Logger,
) *Service {
	return &Service{
		bookings: bookings,
		reviews:  reviews,
		notify:   notify,
		validate: newValidator(),
		log:      log,
		now:      time.Now,
	}
}

// В сообщениях об ошибках поля называются так же, как в API.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	return v
}
