package service

import (
	"errors"
	"fmt"
	"testing"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/Leganyst/barber-booking/internal/booking"
)

func TestToStatus(t *testing.T) {
	cases := []struct {
		err  error
		code codes.Code
		msg  string
	}{
		{booking.ErrSlotTaken, codes.AlreadyExists, msgSlotTaken},
		{fmt.Errorf("wrap: %w", booking.ErrSlotTaken), codes.AlreadyExists, msgSlotTaken},
		{booking.ErrAlreadyReviewed, codes.AlreadyExists, booking.ErrAlreadyReviewed.Error()},
		{booking.ErrStatusChanged, codes.Aborted, booking.ErrStatusChanged.Error()},
		{booking.ErrReviewNotAllowed, codes.PermissionDenied, msgNotAllowed},
		{booking.ErrNotOwner, codes.PermissionDenied, msgNotAllowed},
		{booking.ErrBookingNotFound, codes.NotFound, booking.ErrBookingNotFound.Error()},
		{fmt.Errorf("%w: rating", booking.ErrValidation), codes.InvalidArgument, "validation failed: rating"},
		{errors.New("disk full"), codes.Internal, "internal error: disk full"},
	}
	for _, c := range cases {
		st, ok := status.FromError(toStatus(c.err))
		if !ok {
			t.Fatalf("toStatus(%v) is not a status error", c.err)
		}
		if st.Code() != c.code || st.Message() != c.msg {
			t.Fatalf("toStatus(%v) = %s %q, want %s %q", c.err, st.Code(), st.Message(), c.code, c.msg)
		}
	}

	if toStatus(nil) != nil {
		t.Fatal("nil error must stay nil")
	}
}
