package rpc

import (
	"context"

	"google.golang.org/grpc"
)

// Unary собирает grpc.MethodDesc для метода с типизированными запросом и ответом.
func Unary[S any, Req any, Resp any](
	service, method string,
	call func(srv S, ctx context.Context, req *Req) (*Resp, error),
) grpc.MethodDesc {
	fullMethod := "/" + service + "/" + method
	return grpc.MethodDesc{
		MethodName: method,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(Req)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(S), ctx, in)
			}
			info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
			handler := func(ctx context.Context, req any) (any, error) {
				return call(srv.(S), ctx, req.(*Req))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

// Invoke — клиентский вызов через JSON-кодек.
func Invoke[Resp any](
	ctx context.Context,
	cc grpc.ClientConnInterface,
	fullMethod string,
	in any,
	opts ...grpc.CallOption,
) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := cc.Invoke(ctx, fullMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
