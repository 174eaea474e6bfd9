package service

import (
	"context"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	barberpb "github.com/Leganyst/barber-booking/internal/api/barber/v1"
	"github.com/Leganyst/barber-booking/internal/booking"
	"github.com/Leganyst/barber-booking/internal/model"
	"github.com/Leganyst/barber-booking/internal/utils"
)

// BarberService — gRPC-обёртка над ядром записи.
type BarberService struct {
	barberpb.UnimplementedBarberServiceServer

	core *booking.Service
}

func NewBarberService(core *booking.Service) *BarberService {
	return &BarberService{core: core}
}

func (s *BarberService) CreateBooking(
	ctx context.Context,
	req *barberpb.CreateBookingRequest,
) (*barberpb.BookingResponse, error) {
	b, err := s.core.RequestBooking(ctx, booking.BookingRequest{
		Customer: req.Customer,
		Service:  req.Service,
		Barber:   req.Barber,
		Date:     req.Date,
		Time:     req.Time,
		Note:     req.Note,
	})
	if err != nil {
		return nil, toStatus(err)
	}
	return &barberpb.BookingResponse{Booking: mapBooking(b)}, nil
}

func (s *BarberService) GetBooking(
	ctx context.Context,
	req *barberpb.GetBookingRequest,
) (*barberpb.BookingResponse, error) {
	id, err := parseID(req.ID)
	if err != nil {
		return nil, err
	}

	if req.Customer == "" {
		b, err := s.core.GetBooking(ctx, id)
		if err != nil {
			return nil, toStatus(err)
		}
		return &barberpb.BookingResponse{Booking: mapBooking(b)}, nil
	}

	b, err := s.core.GetOwnedBooking(ctx, id, req.Customer)
	if err != nil {
		return nil, toStatus(err)
	}
	canReview, err := s.core.CanReview(ctx, id, req.Customer)
	if err != nil {
		return nil, toStatus(err)
	}
	return &barberpb.BookingResponse{Booking: mapBooking(b), CanReview: canReview}, nil
}

func (s *BarberService) ListMyBookings(
	ctx context.Context,
	req *barberpb.ListMyBookingsRequest,
) (*barberpb.ListMyBookingsResponse, error) {
	res, err := s.core.ListCustomerBookings(ctx, req.Customer)
	if err != nil {
		return nil, toStatus(err)
	}

	resp := &barberpb.ListMyBookingsResponse{
		Bookings: make([]*barberpb.MyBooking, 0, len(res.Bookings)),
	}
	for i := range res.Bookings {
		b := &res.Bookings[i]
		resp.Bookings = append(resp.Bookings, &barberpb.MyBooking{
			Booking:   mapBooking(b),
			Reviewed:  res.Reviewed[b.ID],
			CanReview: res.CanReview[b.ID],
		})
	}
	return resp, nil
}

func (s *BarberService) SetStatus(
	ctx context.Context,
	req *barberpb.SetStatusRequest,
) (*barberpb.BookingResponse, error) {
	id, err := parseID(req.ID)
	if err != nil {
		return nil, err
	}
	b, err := s.core.SetStatus(ctx, id, req.Status)
	if err != nil {
		return nil, toStatus(err)
	}
	return &barberpb.BookingResponse{Booking: mapBooking(b)}, nil
}

func (s *BarberService) SetSchedule(
	ctx context.Context,
	req *barberpb.SetScheduleRequest,
) (*barberpb.BookingResponse, error) {
	id, err := parseID(req.ID)
	if err != nil {
		return nil, err
	}
	b, err := s.core.SetSchedule(ctx, id, req.Date, req.Time)
	if err != nil {
		return nil, toStatus(err)
	}
	return &barberpb.BookingResponse{Booking: mapBooking(b)}, nil
}

func (s *BarberService) UpdateBooking(
	ctx context.Context,
	req *barberpb.UpdateBookingRequest,
) (*barberpb.BookingResponse, error) {
	id, err := parseID(req.ID)
	if err != nil {
		return nil, err
	}
	b, err := s.core.UpdateBooking(ctx, id, booking.BookingUpdate{
		Customer: req.Customer,
		Service:  req.Service,
		Barber:   req.Barber,
		Date:     req.Date,
		Time:     req.Time,
		Note:     req.Note,
		Status:   req.Status,
	})
	if err != nil {
		return nil, toStatus(err)
	}
	return &barberpb.BookingResponse{Booking: mapBooking(b)}, nil
}

func (s *BarberService) DeleteBooking(
	ctx context.Context,
	req *barberpb.DeleteBookingRequest,
) (*barberpb.Empty, error) {
	id, err := parseID(req.ID)
	if err != nil {
		return nil, err
	}
	if err := s.core.DeleteBooking(ctx, id); err != nil {
		return nil, toStatus(err)
	}
	return &barberpb.Empty{}, nil
}

func (s *BarberService) ListBookings(
	ctx context.Context,
	req *barberpb.ListBookingsRequest,
) (*barberpb.ListBookingsResponse, error) {
	bookings, err := s.core.ListBookings(ctx, booking.ListFilter{
		Status:    req.Status,
		Barber:    req.Barber,
		Date:      req.Date,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Query:     req.Q,
	})
	if err != nil {
		return nil, toStatus(err)
	}

	resp := &barberpb.ListBookingsResponse{Bookings: make([]*barberpb.Booking, 0, len(bookings))}
	for i := range bookings {
		resp.Bookings = append(resp.Bookings, mapBooking(&bookings[i]))
	}
	return resp, nil
}

func (s *BarberService) GetStats(
	ctx context.Context,
	req *barberpb.GetStatsRequest,
) (*barberpb.StatsResponse, error) {
	st, err := s.core.Stats(ctx, req.Date)
	if err != nil {
		return nil, toStatus(err)
	}
	return &barberpb.StatsResponse{
		Date:      utils.FormatDate(st.Date),
		Total:     st.Total,
		Pending:   st.Pending,
		Confirmed: st.Confirmed,
		Completed: st.Completed,
		Cancelled: st.Cancelled,
	}, nil
}

func (s *BarberService) ListServices(
	ctx context.Context,
	_ *barberpb.ListServicesRequest,
) (*barberpb.ListServicesResponse, error) {
	services, err := s.core.Services(ctx)
	if err != nil {
		return nil, toStatus(err)
	}
	if services == nil {
		services = []string{}
	}
	return &barberpb.ListServicesResponse{Services: services}, nil
}

func (s *BarberService) CreateReview(
	ctx context.Context,
	req *barberpb.CreateReviewRequest,
) (*barberpb.ReviewResponse, error) {
	// кривой id — та же «нельзя», что и чужая бронь
	id, err := uuid.Parse(req.BookingID)
	if err != nil {
		return nil, status.Error(codes.PermissionDenied, msgNotAllowed)
	}
	r, err := s.core.CreateReview(ctx, req.Reviewer, id, req.Rating, req.Comment)
	if err != nil {
		return nil, toStatus(err)
	}
	return &barberpb.ReviewResponse{Review: mapReview(r)}, nil
}

func (s *BarberService) ListServiceReviews(
	ctx context.Context,
	req *barberpb.ListServiceReviewsRequest,
) (*barberpb.ListServiceReviewsResponse, error) {
	page, err := s.core.ListServiceReviews(ctx, req.Service, req.Page, req.Size)
	if err != nil {
		return nil, toStatus(err)
	}

	resp := &barberpb.ListServiceReviewsResponse{
		Items:   make([]*barberpb.Review, 0, len(page.Items)),
		Page:    page.Page,
		Size:    page.PageSize,
		Total:   page.Total,
		HasNext: page.HasNext,
		HasPrev: page.HasPrev,
	}
	for i := range page.Items {
		resp.Items = append(resp.Items, mapReview(&page.Items[i]))
	}
	return resp, nil
}

func (s *BarberService) GetServiceRating(
	ctx context.Context,
	req *barberpb.GetServiceRatingRequest,
) (*barberpb.ServiceRating, error) {
	if req.Service == "" {
		return nil, status.Error(codes.InvalidArgument, "service is required")
	}
	sum, err := s.core.ServiceSummary(ctx, req.Service)
	if err != nil {
		return nil, toStatus(err)
	}
	return mapSummary(sum), nil
}

func (s *BarberService) ListServiceRatings(
	ctx context.Context,
	_ *barberpb.ListServiceRatingsRequest,
) (*barberpb.ListServiceRatingsResponse, error) {
	sums, err := s.core.AllServiceSummaries(ctx)
	if err != nil {
		return nil, toStatus(err)
	}
	resp := &barberpb.ListServiceRatingsResponse{Ratings: make([]*barberpb.ServiceRating, 0, len(sums))}
	for _, sum := range sums {
		resp.Ratings = append(resp.Ratings, mapSummary(sum))
	}
	return resp, nil
}

func parseID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, status.Error(codes.InvalidArgument, "id must be a valid UUID")
	}
	return id, nil
}

func mapBooking(b *model.Booking) *barberpb.Booking {
	if b == nil {
		return nil
	}
	return &barberpb.Booking{
		ID:        b.ID.String(),
		Customer:  b.Customer,
		Service:   b.Service,
		Barber:    b.Barber,
		Date:      utils.FormatDate(b.Date),
		Time:      utils.FormatTime(b.Time),
		Note:      b.Note,
		Status:    b.Status.String(),
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

func mapReview(r *model.Review) *barberpb.Review {
	if r == nil {
		return nil
	}
	return &barberpb.Review{
		ID:        r.ID.String(),
		BookingID: r.BookingID.String(),
		Reviewer:  r.Reviewer,
		Service:   r.Service,
		Barber:    r.Barber,
		Rating:    r.Rating,
		Comment:   r.Comment,
		CreatedAt: r.CreatedAt,
	}
}

func mapSummary(s booking.Summary) *barberpb.ServiceRating {
	return &barberpb.ServiceRating{
		Service: s.Service,
		Average: s.Average,
		Count:   s.Count,
	}
}
