package barberpb

import (
	"context"

	"google.golang.org/grpc"

	"github.com/Leganyst/barber-booking/internal/api/rpc"
)

// BarberServiceClient — клиент API записи.
type BarberServiceClient interface {
	CreateBooking(ctx context.Context, in *CreateBookingRequest, opts ...grpc.CallOption) (*BookingResponse, error)
	GetBooking(ctx context.Context, in *GetBookingRequest, opts ...grpc.CallOption) (*BookingResponse, error)
	ListMyBookings(ctx context.Context, in *ListMyBookingsRequest, opts ...grpc.CallOption) (*ListMyBookingsResponse, error)
	CreateReview(ctx context.Context, in *CreateReviewRequest, opts ...grpc.CallOption) (*ReviewResponse, error)
	SetStatus(ctx context.Context, in *SetStatusRequest, opts ...grpc.CallOption) (*BookingResponse, error)
	SetSchedule(ctx context.Context, in *SetScheduleRequest, opts ...grpc.CallOption) (*BookingResponse, error)
	UpdateBooking(ctx context.Context, in *UpdateBookingRequest, opts ...grpc.CallOption) (*BookingResponse, error)
	DeleteBooking(ctx context.Context, in *DeleteBookingRequest, opts ...grpc.CallOption) (*Empty, error)
	ListBookings(ctx context.Context, in *ListBookingsRequest, opts ...grpc.CallOption) (*ListBookingsResponse, error)
	GetStats(ctx context.Context, in *GetStatsRequest, opts ...grpc.CallOption) (*StatsResponse, error)
	ListServices(ctx context.Context, in *ListServicesRequest, opts ...grpc.CallOption) (*ListServicesResponse, error)
	ListServiceReviews(ctx context.Context, in *ListServiceReviewsRequest, opts ...grpc.CallOption) (*ListServiceReviewsResponse, error)
	GetServiceRating(ctx context.Context, in *GetServiceRatingRequest, opts ...grpc.CallOption) (*ServiceRating, error)
	ListServiceRatings(ctx context.Context, in *ListServiceRatingsRequest, opts ...grpc.CallOption) (*ListServiceRatingsResponse, error)
}

type barberServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewBarberServiceClient(cc grpc.ClientConnInterface) BarberServiceClient {
	return &barberServiceClient{cc: cc}
}

func (c *barberServiceClient) CreateBooking(ctx context.Context, in *CreateBookingRequest, opts ...grpc.CallOption) (*BookingResponse, error) {
	return rpc.Invoke[BookingResponse](ctx, c.cc, BarberService_CreateBooking_FullMethodName, in, opts...)
}

func (c *barberServiceClient) GetBooking(ctx context.Context, in *GetBookingRequest, opts ...grpc.CallOption) (*BookingResponse, error) {
	return rpc.Invoke[BookingResponse](ctx, c.cc, BarberService_GetBooking_FullMethodName, in, opts...)
}

func (c *barberServiceClient) ListMyBookings(ctx context.Context, in *ListMyBookingsRequest, opts ...grpc.CallOption) (*ListMyBookingsResponse, error) {
	return rpc.Invoke[ListMyBookingsResponse](ctx, c.cc, BarberService_ListMyBookings_FullMethodName, in, opts...)
}

func (c *barberServiceClient) CreateReview(ctx context.Context, in *CreateReviewRequest, opts ...grpc.CallOption) (*ReviewResponse, error) {
	return rpc.Invoke[ReviewResponse](ctx, c.cc, BarberService_CreateReview_FullMethodName, in, opts...)
}

func (c *barberServiceClient) SetStatus(ctx context.Context, in *SetStatusRequest, opts ...grpc.CallOption) (*BookingResponse, error) {
	return rpc.Invoke[BookingResponse](ctx, c.cc, BarberService_SetStatus_FullMethodName, in, opts...)
}

func (c *barberServiceClient) SetSchedule(ctx context.Context, in *SetScheduleRequest, opts ...grpc.CallOption) (*BookingResponse, error) {
	return rpc.Invoke[BookingResponse](ctx, c.cc, BarberService_SetSchedule_FullMethodName, in, opts...)
}

func (c *barberServiceClient) UpdateBooking(ctx context.Context, in *UpdateBookingRequest, opts ...grpc.CallOption) (*BookingResponse, error) {
	return rpc.Invoke[BookingResponse](ctx, c.cc, BarberService_UpdateBooking_FullMethodName, in, opts...)
}

func (c *barberServiceClient) DeleteBooking(ctx context.Context, in *DeleteBookingRequest, opts ...grpc.CallOption) (*Empty, error) {
	return rpc.Invoke[Empty](ctx, c.cc, BarberService_DeleteBooking_FullMethodName, in, opts...)
}

func (c *barberServiceClient) ListBookings(ctx context.Context, in *ListBookingsRequest, opts ...grpc.CallOption) (*ListBookingsResponse, error) {
	return rpc.Invoke[ListBookingsResponse](ctx, c.cc, BarberService_ListBookings_FullMethodName, in, opts...)
}

func (c *barberServiceClient) GetStats(ctx context.Context, in *GetStatsRequest, opts ...grpc.CallOption) (*StatsResponse, error) {
	return rpc.Invoke[StatsResponse](ctx, c.cc, BarberService_GetStats_FullMethodName, in, opts...)
}

func (c *barberServiceClient) ListServices(ctx context.Context, in *ListServicesRequest, opts ...grpc.CallOption) (*ListServicesResponse, error) {
	return rpc.Invoke[ListServicesResponse](ctx, c.cc, BarberService_ListServices_FullMethodName, in, opts...)
}

func (c *barberServiceClient) ListServiceReviews(ctx context.Context, in *ListServiceReviewsRequest, opts ...grpc.CallOption) (*ListServiceReviewsResponse, error) {
	return rpc.Invoke[ListServiceReviewsResponse](ctx, c.cc, BarberService_ListServiceReviews_FullMethodName, in, opts...)
}

func (c *barberServiceClient) GetServiceRating(ctx context.Context, in *GetServiceRatingRequest, opts ...grpc.CallOption) (*ServiceRating, error) {
	return rpc.Invoke[ServiceRating](ctx, c.cc, BarberService_GetServiceRating_FullMethodName, in, opts...)
}

func (c *barberServiceClient) ListServiceRatings(ctx context.Context, in *ListServiceRatingsRequest, opts ...grpc.CallOption) (*ListServiceRatingsResponse, error) {
	return rpc.Invoke[ListServiceRatingsResponse](ctx, c.cc, BarberService_ListServiceRatings_FullMethodName, in, opts...)
}
