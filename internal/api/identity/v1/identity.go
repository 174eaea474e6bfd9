// Package identitypb — API ролей пользователей для внешнего шлюза авторизации.
package identitypb

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/Leganyst/barber-booking/internal/api/rpc"
)

const ServiceName = "barber.v1.IdentityService"

const IdentityService_GetUserRoles_FullMethodName = "/barber.v1.IdentityService/GetUserRoles"

type GetUserRolesRequest struct {
	Username string `json:"username"`
}

type GetUserRolesResponse struct {
	Username string   `json:"username"`
	Roles    []string `json:"roles"`
}

type IdentityServiceServer interface {
	GetUserRoles(context.Context, *GetUserRolesRequest) (*GetUserRolesResponse, error)
}

type UnimplementedIdentityServiceServer struct{}

func (UnimplementedIdentityServiceServer) GetUserRoles(context.Context, *GetUserRolesRequest) (*GetUserRolesResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetUserRoles not implemented")
}

var IdentityService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*IdentityServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		rpc.Unary(ServiceName, "GetUserRoles", IdentityServiceServer.GetUserRoles),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "identity/v1/identity.json",
}

func RegisterIdentityServiceServer(s grpc.ServiceRegistrar, impl IdentityServiceServer) {
	s.RegisterService(&IdentityService_ServiceDesc, impl)
}

type IdentityServiceClient interface {
	GetUserRoles(ctx context.Context, in *GetUserRolesRequest, opts ...grpc.CallOption) (*GetUserRolesResponse, error)
}

type identityServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewIdentityServiceClient(cc grpc.ClientConnInterface) IdentityServiceClient {
	return &identityServiceClient{cc: cc}
}

func (c *identityServiceClient) GetUserRoles(ctx context.Context, in *GetUserRolesRequest, opts ...grpc.CallOption) (*GetUserRolesResponse, error) {
	return rpc.Invoke[GetUserRolesResponse](ctx, c.cc, IdentityService_GetUserRoles_FullMethodName, in, opts...)
}
