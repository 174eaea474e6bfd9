package service

import (
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	barberpb "github.com/Leganyst/barber-booking/internal/api/barber/v1"
	identitypb "github.com/Leganyst/barber-booking/internal/api/identity/v1"
)

// NewGRPCServer собирает gRPC-сервер со всеми сервисами, health и reflection.
func NewGRPCServer(
	log *zap.Logger,
	barberSvc barberpb.BarberServiceServer,
	identitySvc identitypb.IdentityServiceServer,
) (*grpc.Server, *health.Server) {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(LoggingInterceptor(log.Named("grpc"))))

	barberpb.RegisterBarberServiceServer(srv, barberSvc)
	identitypb.RegisterIdentityServiceServer(srv, identitySvc)

	hs := health.NewServer()
	healthpb.RegisterHealthServer(srv, hs)
	hs.SetServingStatus(barberpb.ServiceName, healthpb.HealthCheckResponse_SERVING)
	hs.SetServingStatus(identitypb.ServiceName, healthpb.HealthCheckResponse_SERVING)

	reflection.Register(srv)

	return srv, hs
}
