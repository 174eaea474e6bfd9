package service

import (
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/Leganyst/barber-booking/internal/booking"
)

// Тексты, которые видит пользователь.
const (
	msgSlotTaken  = "slot already taken, please choose another time"
	msgNotAllowed = "not allowed"
)

// toStatus переводит ошибки ядра в gRPC-коды. Причину отказа в отзыве
// наружу не отдаём: чужая бронь и незавершённая выглядят одинаково.
func toStatus(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, booking.ErrValidation):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, booking.ErrSlotTaken):
		return status.Error(codes.AlreadyExists, msgSlotTaken)
	case errors.Is(err, booking.ErrStatusChanged):
		return status.Error(codes.Aborted, err.Error())
	case errors.Is(err, booking.ErrConflict):
		return status.Error(codes.AlreadyExists, err.Error())
	case errors.Is(err, booking.ErrNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, booking.ErrForbidden):
		return status.Error(codes.PermissionDenied, msgNotAllowed)
	default:
		return status.Errorf(codes.Internal, "internal error: %v", err)
	}
}
