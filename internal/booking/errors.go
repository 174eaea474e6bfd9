package booking

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Виды ошибок ядра. Конкретные ошибки оборачивают один из них,
// проверка — через errors.Is.
var (
	ErrValidation = errors.New("validation failed")
	ErrConflict   = errors.New("conflict")
	ErrNotFound   = errors.New("not found")
	ErrForbidden  = errors.New("forbidden")
)

var (
	ErrSlotTaken        = fmt.Errorf("%w: slot already taken", ErrConflict)
	ErrAlreadyReviewed  = fmt.Errorf("%w: already reviewed", ErrConflict)
	ErrStatusChanged    = fmt.Errorf("%w: booking status was changed concurrently", ErrConflict)
	ErrReviewNotAllowed = fmt.Errorf("%w: only the completed booking's owner may review", ErrForbidden)
	ErrBookingNotFound  = fmt.Errorf("%w: booking", ErrNotFound)
	ErrNotOwner         = fmt.Errorf("%w: booking belongs to another customer", ErrForbidden)
)

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrValidation}, args...)...)
}

// fromValidator превращает ошибки validator в ErrValidation с именами полей.
func fromValidator(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return invalid("%v", err)
	}
	fe := verrs[0]
	switch fe.Tag() {
	case "required":
		return invalid("%s is required", fe.Field())
	case "max":
		return invalid("%s must be at most %s characters", fe.Field(), fe.Param())
	case "min", "gte", "lte":
		return invalid("%s is out of range", fe.Field())
	default:
		return invalid("%s is invalid", fe.Field())
	}
}
