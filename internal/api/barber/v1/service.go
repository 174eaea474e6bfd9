package barberpb

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/Leganyst/barber-booking/internal/api/rpc"
)

const ServiceName = "barber.v1.BarberService"

const (
	BarberService_CreateBooking_FullMethodName      = "/barber.v1.BarberService/CreateBooking"
	BarberService_GetBooking_FullMethodName         = "/barber.v1.BarberService/GetBooking"
	BarberService_ListMyBookings_FullMethodName     = "/barber.v1.BarberService/ListMyBookings"
	BarberService_SetStatus_FullMethodName          = "/barber.v1.BarberService/SetStatus"
	BarberService_SetSchedule_FullMethodName        = "/barber.v1.BarberService/SetSchedule"
	BarberService_UpdateBooking_FullMethodName      = "/barber.v1.BarberService/UpdateBooking"
	BarberService_DeleteBooking_FullMethodName      = "/barber.v1.BarberService/DeleteBooking"
	BarberService_ListBookings_FullMethodName       = "/barber.v1.BarberService/ListBookings"
	BarberService_GetStats_FullMethodName           = "/barber.v1.BarberService/GetStats"
	BarberService_ListServices_FullMethodName       = "/barber.v1.BarberService/ListServices"
	BarberService_CreateReview_FullMethodName       = "/barber.v1.BarberService/CreateReview"
	BarberService_ListServiceReviews_FullMethodName = "/barber.v1.BarberService/ListServiceReviews"
	BarberService_GetServiceRating_FullMethodName   = "/barber.v1.BarberService/GetServiceRating"
	BarberService_ListServiceRatings_FullMethodName = "/barber.v1.BarberService/ListServiceRatings"
)

// BarberServiceServer — серверная часть API записи.
type BarberServiceServer interface {
	// Клиент
	CreateBooking(context.Context, *CreateBookingRequest) (*BookingResponse, error)
	GetBooking(context.Context, *GetBookingRequest) (*BookingResponse, error)
	ListMyBookings(context.Context, *ListMyBookingsRequest) (*ListMyBookingsResponse, error)
	CreateReview(context.Context, *CreateReviewRequest) (*ReviewResponse, error)

	// Админка
	SetStatus(context.Context, *SetStatusRequest) (*BookingResponse, error)
	SetSchedule(context.Context, *SetScheduleRequest) (*BookingResponse, error)
	UpdateBooking(context.Context, *UpdateBookingRequest) (*BookingResponse, error)
	DeleteBooking(context.Context, *DeleteBookingRequest) (*Empty, error)
	ListBookings(context.Context, *ListBookingsRequest) (*ListBookingsResponse, error)
	GetStats(context.Context, *GetStatsRequest) (*StatsResponse, error)
	ListServices(context.Context, *ListServicesRequest) (*ListServicesResponse, error)

	// Отзывы
	ListServiceReviews(context.Context, *ListServiceReviewsRequest) (*ListServiceReviewsResponse, error)
	GetServiceRating(context.Context, *GetServiceRatingRequest) (*ServiceRating, error)
	ListServiceRatings(context.Context, *ListServiceRatingsRequest) (*ListServiceRatingsResponse, error)
}

// UnimplementedBarberServiceServer встраивается в реализацию, чтобы
// новые методы не ломали сборку.
type UnimplementedBarberServiceServer struct{}

func (UnimplementedBarberServiceServer) CreateBooking(context.Context, *CreateBookingRequest) (*BookingResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateBooking not implemented")
}
func (UnimplementedBarberServiceServer) GetBooking(context.Context, *GetBookingRequest) (*BookingResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetBooking not implemented")
}
func (UnimplementedBarberServiceServer) ListMyBookings(context.Context, *ListMyBookingsRequest) (*ListMyBookingsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListMyBookings not implemented")
}
func (UnimplementedBarberServiceServer) CreateReview(context.Context, *CreateReviewRequest) (*ReviewResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateReview not implemented")
}
func (UnimplementedBarberServiceServer) SetStatus(context.Context, *SetStatusRequest) (*BookingResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method SetStatus not implemented")
}
func (UnimplementedBarberServiceServer) SetSchedule(context.Context, *SetScheduleRequest) (*BookingResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method SetSchedule not implemented")
}
func (UnimplementedBarberServiceServer) UpdateBooking(context.Context, *UpdateBookingRequest) (*BookingResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method UpdateBooking not implemented")
}
func (UnimplementedBarberServiceServer) DeleteBooking(context.Context, *DeleteBookingRequest) (*Empty, error) {
	return nil, status.Error(codes.Unimplemented, "method DeleteBooking not implemented")
}
func (UnimplementedBarberServiceServer) ListBookings(context.Context, *ListBookingsRequest) (*ListBookingsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListBookings not implemented")
}
func (UnimplementedBarberServiceServer) GetStats(context.Context, *GetStatsRequest) (*StatsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetStats not implemented")
}
func (UnimplementedBarberServiceServer) ListServices(context.Context, *ListServicesRequest) (*ListServicesResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListServices not implemented")
}
func (UnimplementedBarberServiceServer) ListServiceReviews(context.Context, *ListServiceReviewsRequest) (*ListServiceReviewsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListServiceReviews not implemented")
}
func (UnimplementedBarberServiceServer) GetServiceRating(context.Context, *GetServiceRatingRequest) (*ServiceRating, error) {
	return nil, status.Error(codes.Unimplemented, "method GetServiceRating not implemented")
}
func (UnimplementedBarberServiceServer) ListServiceRatings(context.Context, *ListServiceRatingsRequest) (*ListServiceRatingsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListServiceRatings not implemented")
}

type srv = BarberServiceServer

var BarberService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*BarberServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		rpc.Unary(ServiceName, "CreateBooking", srv.CreateBooking),
		rpc.Unary(ServiceName, "GetBooking", srv.GetBooking),
		rpc.Unary(ServiceName, "ListMyBookings", srv.ListMyBookings),
		rpc.Unary(ServiceName, "SetStatus", srv.SetStatus),
		rpc.Unary(ServiceName, "SetSchedule", srv.SetSchedule),
		rpc.Unary(ServiceName, "UpdateBooking", srv.UpdateBooking),
		rpc.Unary(ServiceName, "DeleteBooking", srv.DeleteBooking),
		rpc.Unary(ServiceName, "ListBookings", srv.ListBookings),
		rpc.Unary(ServiceName, "GetStats", srv.GetStats),
		rpc.Unary(ServiceName, "ListServices", srv.ListServices),
		rpc.Unary(ServiceName, "CreateReview", srv.CreateReview),
		rpc.Unary(ServiceName, "ListServiceReviews", srv.ListServiceReviews),
		rpc.Unary(ServiceName, "GetServiceRating", srv.GetServiceRating),
		rpc.Unary(ServiceName, "ListServiceRatings", srv.ListServiceRatings),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "barber/v1/barber.json",
}

func RegisterBarberServiceServer(s grpc.ServiceRegistrar, impl BarberServiceServer) {
	s.RegisterService(&BarberService_ServiceDesc, impl)
}
